package service

import (
	"context"
	"fmt"
	"testing"

	"malalingo/internal/domain"
	"malalingo/internal/game"
	"malalingo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGameService(t *testing.T, entries []domain.WordEntry, err error) (*GameService, *testutil.MockWordSource) {
	t.Helper()
	source := new(testutil.MockWordSource)
	source.On("Fetch", mock.Anything).Return(entries, err)
	return NewGameService(source, testutil.NewTestLogger()), source
}

func TestGameService_StartMatching(t *testing.T) {
	tests := []struct {
		name          string
		entries       []domain.WordEntry
		mockError     error
		expectedErr   error
		expectedError bool
	}{
		{
			name:    "round started",
			entries: testutil.NewTestDataset(),
		},
		{
			name:          "empty dataset",
			entries:       []domain.WordEntry{},
			expectedErr:   ErrNoWords,
			expectedError: true,
		},
		{
			name:          "fetch error",
			mockError:     fmt.Errorf("backend down"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, source := newTestGameService(t, tt.entries, tt.mockError)

			board, err := svc.StartMatching(context.Background(), 1)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Nil(t, board)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, board.Round)
				assert.Len(t, board.Malayalam, 3)
				assert.Len(t, board.English, 3)
				assert.Equal(t, domain.Score{Current: 0, Total: 3}, board.Score)
				assert.False(t, board.Complete)
			}
			source.AssertExpectations(t)
		})
	}
}

func TestGameService_PickMatch(t *testing.T) {
	svc, _ := newTestGameService(t, testutil.NewTestDataset(), nil)
	board, err := svc.StartMatching(context.Background(), 1)
	require.NoError(t, err)
	round := board.Round

	// First pick waits for the other side
	board, err = svc.PickMatch(1, round, domain.SideMalayalam, 1)
	require.NoError(t, err)
	assert.Equal(t, game.OutcomePending, board.Outcome)
	require.NotNil(t, board.SelectedMalayalam)
	assert.Equal(t, 1, board.SelectedMalayalam.ID)

	// Wrong partner clears both slots
	board, err = svc.PickMatch(1, round, domain.SideEnglish, 2)
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeMismatched, board.Outcome)
	assert.Nil(t, board.SelectedMalayalam)
	assert.Nil(t, board.SelectedEnglish)
	assert.Equal(t, 0, board.Score.Current)

	// Matching every pair completes the round
	for _, id := range []int{1, 2, 3} {
		_, err = svc.PickMatch(1, round, domain.SideEnglish, id)
		require.NoError(t, err)
		board, err = svc.PickMatch(1, round, domain.SideMalayalam, id)
		require.NoError(t, err)
		assert.Equal(t, game.OutcomeMatched, board.Outcome)
	}
	assert.True(t, board.Complete)
	assert.Equal(t, domain.Score{Current: 3, Total: 3}, board.Score)
	assert.True(t, board.Matched[2])

	// Matched items are ignored
	board, err = svc.PickMatch(1, round, domain.SideEnglish, 1)
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeIgnored, board.Outcome)
}

func TestGameService_PickMatchErrors(t *testing.T) {
	svc, _ := newTestGameService(t, testutil.NewTestDataset(), nil)

	_, err := svc.PickMatch(1, "missing", domain.SideEnglish, 1)
	assert.ErrorIs(t, err, ErrNoRound)

	board, err := svc.StartMatching(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.PickMatch(1, "old-round", domain.SideEnglish, 1)
	assert.ErrorIs(t, err, ErrStaleRound)

	_, err = svc.PickMatch(1, board.Round, domain.SideEnglish, 99)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestGameService_ResetMatching(t *testing.T) {
	svc, _ := newTestGameService(t, testutil.NewTestDataset(), nil)
	board, err := svc.StartMatching(context.Background(), 1)
	require.NoError(t, err)

	_, _ = svc.PickMatch(1, board.Round, domain.SideMalayalam, 1)
	_, _ = svc.PickMatch(1, board.Round, domain.SideEnglish, 1)
	_, _ = svc.PickMatch(1, board.Round, domain.SideMalayalam, 2)

	board, err = svc.ResetMatching(1, board.Round)
	require.NoError(t, err)
	assert.Equal(t, domain.Score{Current: 0, Total: 3}, board.Score)
	assert.Nil(t, board.SelectedMalayalam)
	assert.Empty(t, board.Matched)
}

func TestGameService_NewRoundMakesOldOneStale(t *testing.T) {
	svc, _ := newTestGameService(t, testutil.NewTestDataset(), nil)

	first, err := svc.StartMatching(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.StartMatching(context.Background(), 1)
	require.NoError(t, err)

	assert.NotEqual(t, first.Round, second.Round)
	_, err = svc.PickMatch(1, first.Round, domain.SideMalayalam, 1)
	assert.ErrorIs(t, err, ErrStaleRound)
}

func TestGameService_Flip(t *testing.T) {
	svc, _ := newTestGameService(t, testutil.NewTestDataset(), nil)

	board, err := svc.StartFlip(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, board.Total)
	assert.Equal(t, 0, board.Revealed)
	round := board.Round

	board, err = svc.FlipCard(1, round, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, board.Revealed)
	for _, c := range board.Cards {
		assert.Equal(t, c.Entry.ID == 2, c.Flipped)
	}

	board, err = svc.FlipCard(1, round, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, board.Revealed)

	_, _ = svc.FlipCard(1, round, 1)
	_, _ = svc.FlipCard(1, round, 3)
	board, err = svc.ResetFlip(1, round)
	require.NoError(t, err)
	assert.Equal(t, 0, board.Revealed)

	_, err = svc.FlipCard(1, round, 99)
	assert.ErrorIs(t, err, ErrUnknownItem)
	_, err = svc.FlipCard(1, "old-round", 1)
	assert.ErrorIs(t, err, ErrStaleRound)
	_, err = svc.FlipCard(2, round, 1)
	assert.ErrorIs(t, err, ErrNoRound)
}

func TestGameService_RoundsArePerUser(t *testing.T) {
	svc, _ := newTestGameService(t, testutil.NewTestDataset(), nil)

	a, err := svc.StartMatching(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.StartMatching(context.Background(), 2)
	require.NoError(t, err)

	_, err = svc.PickMatch(2, a.Round, domain.SideMalayalam, 1)
	assert.ErrorIs(t, err, ErrStaleRound)
}
