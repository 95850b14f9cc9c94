package game

import (
	"malalingo/internal/domain"
)

// Outcome describes what a selection did to the engine
type Outcome string

const (
	OutcomeIgnored    Outcome = "ignored"
	OutcomePending    Outcome = "pending"
	OutcomeMatched    Outcome = "matched"
	OutcomeMismatched Outcome = "mismatched"
)

// MatchingEngine pairs Malayalam and English items by shared ID.
// It holds one pending selection per side and the ordered set of matches.
type MatchingEngine struct {
	matches           []domain.VocabularyItem
	selectedMalayalam *domain.VocabularyItem
	selectedEnglish   *domain.VocabularyItem
	total             int
}

// NewMatchingEngine creates an engine in its initial state
func NewMatchingEngine() *MatchingEngine {
	return &MatchingEngine{}
}

// IsMatched reports whether an item with this ID is already matched
func (e *MatchingEngine) IsMatched(itemID int) bool {
	for _, m := range e.matches {
		if m.ID == itemID {
			return true
		}
	}
	return false
}

// SelectMalayalam puts item into the Malayalam slot and reconciles
func (e *MatchingEngine) SelectMalayalam(item domain.VocabularyItem) Outcome {
	if e.IsMatched(item.ID) {
		return OutcomeIgnored
	}
	e.selectedMalayalam = &item
	return e.reconcile()
}

// SelectEnglish puts item into the English slot and reconciles
func (e *MatchingEngine) SelectEnglish(item domain.VocabularyItem) Outcome {
	if e.IsMatched(item.ID) {
		return OutcomeIgnored
	}
	e.selectedEnglish = &item
	return e.reconcile()
}

// Select routes item to the slot of its own side
func (e *MatchingEngine) Select(item domain.VocabularyItem) Outcome {
	if item.Side == domain.SideMalayalam {
		return e.SelectMalayalam(item)
	}
	return e.SelectEnglish(item)
}

// reconcile compares the two slots once both are filled.
// The Malayalam occupant is the one recorded as the match.
func (e *MatchingEngine) reconcile() Outcome {
	if e.selectedMalayalam == nil || e.selectedEnglish == nil {
		return OutcomePending
	}

	outcome := OutcomeMismatched
	if e.selectedMalayalam.ID == e.selectedEnglish.ID {
		e.matches = append(e.matches, *e.selectedMalayalam)
		outcome = OutcomeMatched
	}

	// Slots are cleared whatever the result
	e.selectedMalayalam = nil
	e.selectedEnglish = nil
	return outcome
}

// Reset clears matches and both slots. The injected total is kept.
func (e *MatchingEngine) Reset() {
	e.matches = nil
	e.selectedMalayalam = nil
	e.selectedEnglish = nil
}

// Matches returns a copy of the matched items in match order
func (e *MatchingEngine) Matches() []domain.VocabularyItem {
	out := make([]domain.VocabularyItem, len(e.matches))
	copy(out, e.matches)
	return out
}

// SelectedMalayalam returns the pending Malayalam selection, if any
func (e *MatchingEngine) SelectedMalayalam() (domain.VocabularyItem, bool) {
	if e.selectedMalayalam == nil {
		return domain.VocabularyItem{}, false
	}
	return *e.selectedMalayalam, true
}

// SelectedEnglish returns the pending English selection, if any
func (e *MatchingEngine) SelectedEnglish() (domain.VocabularyItem, bool) {
	if e.selectedEnglish == nil {
		return domain.VocabularyItem{}, false
	}
	return *e.selectedEnglish, true
}

// SetTotal injects the number of pairs in the current dataset
func (e *MatchingEngine) SetTotal(total int) {
	e.total = total
}

// Score returns matched count against the injected total
func (e *MatchingEngine) Score() domain.Score {
	return domain.Score{Current: len(e.matches), Total: e.total}
}

// IsComplete reports whether every pair of a non-empty dataset is matched
func (e *MatchingEngine) IsComplete() bool {
	s := e.Score()
	return s.Total > 0 && s.Current == s.Total
}
