package game

import (
	"testing"

	"malalingo/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testDataset() []domain.WordEntry {
	return []domain.WordEntry{
		{ID: 1, Malayalam: "vellam", English: "water"},
		{ID: 2, Malayalam: "pazham", English: "banana"},
	}
}

func ml(e domain.WordEntry) domain.VocabularyItem { return e.Item(domain.SideMalayalam) }
func en(e domain.WordEntry) domain.VocabularyItem { return e.Item(domain.SideEnglish) }

func assertSlotsEmpty(t *testing.T, e *MatchingEngine) {
	t.Helper()
	_, okML := e.SelectedMalayalam()
	_, okEN := e.SelectedEnglish()
	assert.False(t, okML, "malayalam slot should be empty")
	assert.False(t, okEN, "english slot should be empty")
}

func TestMatchingEngine_CorrectPair(t *testing.T) {
	data := testDataset()

	tests := []struct {
		name   string
		first  domain.VocabularyItem
		second domain.VocabularyItem
	}{
		{name: "malayalam then english", first: ml(data[0]), second: en(data[0])},
		{name: "english then malayalam", first: en(data[0]), second: ml(data[0])},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewMatchingEngine()

			assert.Equal(t, OutcomePending, e.Select(tt.first))
			assert.Equal(t, OutcomeMatched, e.Select(tt.second))

			// The Malayalam occupant is always the recorded representative
			assert.Equal(t, []domain.VocabularyItem{ml(data[0])}, e.Matches())
			assert.True(t, e.IsMatched(1))
			assert.Equal(t, 1, e.Score().Current)
			assertSlotsEmpty(t, e)
		})
	}
}

func TestMatchingEngine_WrongPair(t *testing.T) {
	data := testDataset()
	e := NewMatchingEngine()

	assert.Equal(t, OutcomePending, e.SelectMalayalam(ml(data[0])))
	assert.Equal(t, OutcomeMismatched, e.SelectEnglish(en(data[1])))

	assert.Empty(t, e.Matches())
	assertSlotsEmpty(t, e)

	// The wrong guess is not remembered, so a fresh pair matches normally
	assert.Equal(t, OutcomePending, e.SelectEnglish(en(data[0])))
	assert.Equal(t, OutcomeMatched, e.SelectMalayalam(ml(data[0])))
	assert.Equal(t, []domain.VocabularyItem{ml(data[0])}, e.Matches())
}

func TestMatchingEngine_MatchedItemIsIgnored(t *testing.T) {
	data := testDataset()
	e := NewMatchingEngine()
	e.SelectMalayalam(ml(data[0]))
	e.SelectEnglish(en(data[0]))

	assert.Equal(t, OutcomeIgnored, e.SelectMalayalam(ml(data[0])))
	assert.Equal(t, OutcomeIgnored, e.SelectEnglish(en(data[0])))
	assertSlotsEmpty(t, e)
	assert.Len(t, e.Matches(), 1)
}

func TestMatchingEngine_SameSideOverwrites(t *testing.T) {
	data := testDataset()
	e := NewMatchingEngine()

	e.SelectMalayalam(ml(data[0]))
	e.SelectMalayalam(ml(data[1]))

	selected, ok := e.SelectedMalayalam()
	assert.True(t, ok)
	assert.Equal(t, 2, selected.ID)

	assert.Equal(t, OutcomeMatched, e.SelectEnglish(en(data[1])))
	assert.Equal(t, 2, e.Matches()[0].ID)
}

func TestMatchingEngine_UnknownIDNeverMatches(t *testing.T) {
	e := NewMatchingEngine()
	assert.False(t, e.IsMatched(42))

	e.SelectMalayalam(domain.VocabularyItem{ID: 42, Text: "x", Side: domain.SideMalayalam})
	assert.Equal(t, OutcomeMismatched, e.SelectEnglish(domain.VocabularyItem{ID: 43, Text: "y", Side: domain.SideEnglish}))
	assert.False(t, e.IsMatched(42))
}

func TestMatchingEngine_Reset(t *testing.T) {
	data := testDataset()
	e := NewMatchingEngine()
	e.SetTotal(2)

	e.SelectMalayalam(ml(data[0]))
	e.SelectEnglish(en(data[0]))
	e.SelectMalayalam(ml(data[1]))

	e.Reset()
	assert.Empty(t, e.Matches())
	assertSlotsEmpty(t, e)
	assert.Equal(t, domain.Score{Current: 0, Total: 2}, e.Score())

	// Idempotent
	e.Reset()
	assert.Empty(t, e.Matches())
	assertSlotsEmpty(t, e)
}

func TestMatchingEngine_IsComplete(t *testing.T) {
	data := testDataset()

	tests := []struct {
		name     string
		total    int
		pairs    []domain.WordEntry
		expected bool
	}{
		{name: "no total injected", total: 0, pairs: nil, expected: false},
		{name: "partially matched", total: 2, pairs: data[:1], expected: false},
		{name: "all matched", total: 2, pairs: data, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewMatchingEngine()
			e.SetTotal(tt.total)
			for _, p := range tt.pairs {
				e.SelectMalayalam(ml(p))
				e.SelectEnglish(en(p))
			}
			assert.Equal(t, tt.expected, e.IsComplete())
		})
	}
}

func TestMatchingEngine_MatchesReturnsCopy(t *testing.T) {
	data := testDataset()
	e := NewMatchingEngine()
	e.SelectMalayalam(ml(data[0]))
	e.SelectEnglish(en(data[0]))

	got := e.Matches()
	got[0].Text = "changed"
	assert.Equal(t, "vellam", e.Matches()[0].Text)
}
