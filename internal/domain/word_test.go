package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordEntry_Item(t *testing.T) {
	entry := WordEntry{ID: 1, English: "water", Malayalam: "vellam"}

	tests := []struct {
		name     string
		side     Side
		expected VocabularyItem
	}{
		{
			name:     "malayalam side",
			side:     SideMalayalam,
			expected: VocabularyItem{ID: 1, Text: "vellam", Side: SideMalayalam},
		},
		{
			name:     "english side",
			side:     SideEnglish,
			expected: VocabularyItem{ID: 1, Text: "water", Side: SideEnglish},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, entry.Item(tt.side))
		})
	}
}

func TestSide_Opposite(t *testing.T) {
	assert.Equal(t, SideEnglish, SideMalayalam.Opposite())
	assert.Equal(t, SideMalayalam, SideEnglish.Opposite())
}
