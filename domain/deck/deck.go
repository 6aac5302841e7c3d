// Package deck implements the draw pile shared by every round: a fixed-size
// set of card numbers that is shuffled once and then only shrinks.
package deck

import (
	"errors"
	"fmt"
)

// StandardSize is the number of cards in a full deck.
const StandardSize = 52

var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered pile of distinct card numbers in the range 1..DeckSize.
// Cards are drawn from the top (index 0). The pile never grows except on Reset.
type Deck struct {
	DeckSize int
	cards    []int
}

// New returns a full, unshuffled deck of the given size.
func New(size int) *Deck {
	d := &Deck{DeckSize: size}
	d.Reset()
	return d
}

// FromCards rebuilds a deck from a previously recorded pile, top card first.
// Every number must be in 1..size and appear at most once.
func FromCards(size int, cards []int) (*Deck, error) {
	if len(cards) > size {
		return nil, fmt.Errorf("deck holds %d cards, size is %d", len(cards), size)
	}
	seen := make(map[int]bool, len(cards))
	for i, c := range cards {
		if c < 1 || c > size {
			return nil, fmt.Errorf("card %d at position %d out of range 1..%d", c, i, size)
		}
		if seen[c] {
			return nil, fmt.Errorf("card %d appears twice", c)
		}
		seen[c] = true
	}
	out := make([]int, len(cards))
	copy(out, cards)
	return &Deck{DeckSize: size, cards: out}, nil
}

// Reset refills the deck with every card in ascending order.
func (d *Deck) Reset() {
	d.cards = make([]int, d.DeckSize)
	for i := range d.cards {
		d.cards[i] = i + 1
	}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (int, error) {
	if len(d.cards) == 0 {
		return 0, ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undealt cards, top first.
func (d *Deck) Cards() []int {
	out := make([]int, len(d.cards))
	copy(out, d.cards)
	return out
}
