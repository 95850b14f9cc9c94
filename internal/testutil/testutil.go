package testutil

import (
	"malalingo/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a word matching entry
func NewTestEntry(id int, malayalam, english string) domain.WordEntry {
	return domain.WordEntry{
		ID:        id,
		Malayalam: malayalam,
		English:   english,
	}
}

// NewTestDataset returns a small dataset of three pairs
func NewTestDataset() []domain.WordEntry {
	return []domain.WordEntry{
		NewTestEntry(1, "vellam", "water"),
		NewTestEntry(2, "pazham", "banana"),
		NewTestEntry(3, "veedu", "house"),
	}
}
