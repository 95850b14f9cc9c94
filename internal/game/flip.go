package game

// FlipEngine keeps a revealed flag per card. Unknown cards are face down.
type FlipEngine[K comparable] struct {
	flipped map[K]bool
}

// NewFlipEngine creates an engine with every card face down
func NewFlipEngine[K comparable]() *FlipEngine[K] {
	return &FlipEngine[K]{flipped: make(map[K]bool)}
}

// Flip toggles the card and returns its new state
func (e *FlipEngine[K]) Flip(cardID K) bool {
	if e.flipped == nil {
		e.flipped = make(map[K]bool)
	}
	e.flipped[cardID] = !e.flipped[cardID]
	return e.flipped[cardID]
}

// IsFlipped reports whether the card is revealed
func (e *FlipEngine[K]) IsFlipped(cardID K) bool {
	return e.flipped[cardID]
}

// FlippedCount returns the number of revealed cards
func (e *FlipEngine[K]) FlippedCount() int {
	n := 0
	for _, v := range e.flipped {
		if v {
			n++
		}
	}
	return n
}

// Reset turns every card face down
func (e *FlipEngine[K]) Reset() {
	e.flipped = make(map[K]bool)
}
