package poker

import "fmt"

// HandCapacity is the number of cards a player holds after every refill.
const HandCapacity = 8

// HoldingHand is the bounded set of cards available to the player. Insertion
// order is kept for display; it has no effect on scoring.
type HoldingHand struct {
	cards    []Card
	capacity int
}

// NewHoldingHand returns an empty hand holding at most capacity cards.
func NewHoldingHand(capacity int) *HoldingHand {
	return &HoldingHand{cards: make([]Card, 0, capacity), capacity: capacity}
}

// Add appends a card, failing with ErrCapacityExceeded when the hand is full.
func (h *HoldingHand) Add(c Card) error {
	if len(h.cards) >= h.capacity {
		return fmt.Errorf("%w: hand holds %d cards", ErrCapacityExceeded, h.capacity)
	}
	h.cards = append(h.cards, c)
	return nil
}

func (h *HoldingHand) Len() int { return len(h.cards) }

func (h *HoldingHand) Cap() int { return h.capacity }

// Free returns how many more cards fit in the hand.
func (h *HoldingHand) Free() int { return h.capacity - len(h.cards) }

// Cards returns a copy of the held cards in insertion order.
func (h *HoldingHand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Select returns the cards at indices, in the order the indices are given,
// without removing them.
func (h *HoldingHand) Select(indices []int) ([]Card, error) {
	if err := checkSelection(indices, len(h.cards)); err != nil {
		return nil, err
	}
	out := make([]Card, len(indices))
	for i, idx := range indices {
		out[i] = h.cards[idx]
	}
	return out, nil
}

// Take removes the cards at indices and returns them in the order the
// indices are given. Removal runs from the highest index down so the
// remaining positions stay valid while removing.
func (h *HoldingHand) Take(indices []int) ([]Card, error) {
	taken, err := h.Select(indices)
	if err != nil {
		return nil, err
	}
	for _, idx := range sortedDescending(indices) {
		h.cards = append(h.cards[:idx], h.cards[idx+1:]...)
	}
	return taken, nil
}

// Refill draws from d until the hand is full or the deck is empty.
func (h *HoldingHand) Refill(d *PokerDeck) ([]Card, error) {
	var drawn []Card
	for h.Free() > 0 && d.Remaining() > 0 {
		c, err := d.DrawCard()
		if err != nil {
			return drawn, err
		}
		h.cards = append(h.cards, c)
		drawn = append(drawn, c)
	}
	return drawn, nil
}
