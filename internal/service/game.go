package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"malalingo/internal/domain"
	"malalingo/internal/game"
	"malalingo/internal/words"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoWords     = errors.New("no words available")
	ErrNoRound     = errors.New("no active round")
	ErrStaleRound  = errors.New("round is no longer active")
	ErrUnknownItem = errors.New("unknown item")
)

// WordSource provides the word matching dataset
type WordSource interface {
	Fetch(ctx context.Context) ([]domain.WordEntry, error)
}

// MatchBoard is a snapshot of a matching round for rendering
type MatchBoard struct {
	Round             string
	Malayalam         []domain.VocabularyItem
	English           []domain.VocabularyItem
	Matched           map[int]bool
	SelectedMalayalam *domain.VocabularyItem
	SelectedEnglish   *domain.VocabularyItem
	Score             domain.Score
	Complete          bool
	Outcome           game.Outcome
}

// FlipCard is one card of a flip round
type FlipCard struct {
	Entry   domain.WordEntry
	Flipped bool
}

// FlipBoard is a snapshot of a flip round for rendering
type FlipBoard struct {
	Round    string
	Cards    []FlipCard
	Revealed int
	Total    int
}

type matchRound struct {
	id        string
	engine    *game.MatchingEngine
	malayalam []domain.VocabularyItem
	english   []domain.VocabularyItem
}

type flipRound struct {
	id      string
	engine  *game.FlipEngine[int]
	entries []domain.WordEntry
}

// GameService keeps one matching round and one flip round per user
type GameService struct {
	source WordSource
	logger *zap.Logger

	mu       sync.Mutex
	matching map[int64]*matchRound
	flipping map[int64]*flipRound
}

// NewGameService creates a new game service
func NewGameService(source WordSource, logger *zap.Logger) *GameService {
	return &GameService{
		source:   source,
		logger:   logger,
		matching: make(map[int64]*matchRound),
		flipping: make(map[int64]*flipRound),
	}
}

func (s *GameService) fetch(ctx context.Context) ([]domain.WordEntry, error) {
	entries, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch words: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoWords
	}
	return entries, nil
}

// StartMatching loads fresh words and starts a new matching round
func (s *GameService) StartMatching(ctx context.Context, userID int64) (*MatchBoard, error) {
	entries, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	malayalam, english := words.Shuffle(entries)
	engine := game.NewMatchingEngine()
	engine.SetTotal(len(entries))

	r := &matchRound{
		id:        uuid.NewString(),
		engine:    engine,
		malayalam: malayalam,
		english:   english,
	}

	s.mu.Lock()
	s.matching[userID] = r
	board := r.board(game.OutcomePending)
	s.mu.Unlock()

	s.logger.Info("Matching round started",
		zap.Int64("user_id", userID),
		zap.String("round", r.id),
		zap.Int("pairs", len(entries)),
	)
	return board, nil
}

// PickMatch selects an item of the given side in the user's matching round
func (s *GameService) PickMatch(userID int64, roundID string, side domain.Side, itemID int) (*MatchBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.matchRound(userID, roundID)
	if err != nil {
		return nil, err
	}

	column := r.english
	if side == domain.SideMalayalam {
		column = r.malayalam
	}
	for _, item := range column {
		if item.ID == itemID {
			return r.board(r.engine.Select(item)), nil
		}
	}
	return nil, ErrUnknownItem
}

// ResetMatching clears the user's matching round, keeping its words
func (s *GameService) ResetMatching(userID int64, roundID string) (*MatchBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.matchRound(userID, roundID)
	if err != nil {
		return nil, err
	}
	r.engine.Reset()
	return r.board(game.OutcomePending), nil
}

func (s *GameService) matchRound(userID int64, roundID string) (*matchRound, error) {
	r, ok := s.matching[userID]
	if !ok {
		return nil, ErrNoRound
	}
	if r.id != roundID {
		return nil, ErrStaleRound
	}
	return r, nil
}

func (r *matchRound) board(outcome game.Outcome) *MatchBoard {
	matched := make(map[int]bool)
	for _, m := range r.engine.Matches() {
		matched[m.ID] = true
	}

	b := &MatchBoard{
		Round:     r.id,
		Malayalam: r.malayalam,
		English:   r.english,
		Matched:   matched,
		Score:     r.engine.Score(),
		Complete:  r.engine.IsComplete(),
		Outcome:   outcome,
	}
	if item, ok := r.engine.SelectedMalayalam(); ok {
		b.SelectedMalayalam = &item
	}
	if item, ok := r.engine.SelectedEnglish(); ok {
		b.SelectedEnglish = &item
	}
	return b
}

// StartFlip loads fresh words and starts a new flip round
func (s *GameService) StartFlip(ctx context.Context, userID int64) (*FlipBoard, error) {
	entries, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	r := &flipRound{
		id:      uuid.NewString(),
		engine:  game.NewFlipEngine[int](),
		entries: entries,
	}

	s.mu.Lock()
	s.flipping[userID] = r
	board := r.board()
	s.mu.Unlock()

	s.logger.Info("Flip round started",
		zap.Int64("user_id", userID),
		zap.String("round", r.id),
		zap.Int("cards", len(entries)),
	)
	return board, nil
}

// FlipCard toggles a card in the user's flip round
func (s *GameService) FlipCard(userID int64, roundID string, cardID int) (*FlipBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.flipRound(userID, roundID)
	if err != nil {
		return nil, err
	}
	for _, e := range r.entries {
		if e.ID == cardID {
			r.engine.Flip(cardID)
			return r.board(), nil
		}
	}
	return nil, ErrUnknownItem
}

// ResetFlip turns every card of the user's flip round face down
func (s *GameService) ResetFlip(userID int64, roundID string) (*FlipBoard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.flipRound(userID, roundID)
	if err != nil {
		return nil, err
	}
	r.engine.Reset()
	return r.board(), nil
}

func (s *GameService) flipRound(userID int64, roundID string) (*flipRound, error) {
	r, ok := s.flipping[userID]
	if !ok {
		return nil, ErrNoRound
	}
	if r.id != roundID {
		return nil, ErrStaleRound
	}
	return r, nil
}

func (r *flipRound) board() *FlipBoard {
	cards := make([]FlipCard, 0, len(r.entries))
	for _, e := range r.entries {
		cards = append(cards, FlipCard{Entry: e, Flipped: r.engine.IsFlipped(e.ID)})
	}
	return &FlipBoard{
		Round:    r.id,
		Cards:    cards,
		Revealed: r.engine.FlippedCount(),
		Total:    len(r.entries),
	}
}
