package domain

// Side identifies which vocabulary column an item belongs to
type Side string

const (
	SideMalayalam Side = "malayalam"
	SideEnglish   Side = "english"
)

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideMalayalam {
		return SideEnglish
	}
	return SideMalayalam
}

// VocabularyItem is one word shown in a game column.
// Two items with the same ID on opposite sides form a correct pair.
type VocabularyItem struct {
	ID   int
	Text string
	Side Side
}

// WordEntry is a row of the word matching dataset as served by the backend
type WordEntry struct {
	ID              int    `json:"id"`
	English         string `json:"english_word"`
	Malayalam       string `json:"malayalam_word"`
	DifficultyLevel *int   `json:"difficulty_level,omitempty"`
	Category        string `json:"category,omitempty"`
}

// Item returns the entry's word for the given side
func (e WordEntry) Item(side Side) VocabularyItem {
	text := e.English
	if side == SideMalayalam {
		text = e.Malayalam
	}
	return VocabularyItem{ID: e.ID, Text: text, Side: side}
}

// Score is the matching game progress
type Score struct {
	Current int
	Total   int
}
