package poker

import (
	"crypto/cipher"
	"errors"

	"github.com/luca-patrignani/joker-poker/domain/deck"
)

// PokerDeck wraps a generic deck of card numbers and converts them to Cards.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a full 52-card deck shuffled with stream. A nil stream
// uses an unpredictable one.
func NewPokerDeck(stream cipher.Stream) *PokerDeck {
	d := &PokerDeck{Deck: deck.New(deck.StandardSize)}
	d.Shuffle(stream)
	return d
}

// NewOrderedPokerDeck builds a deck whose draw order is exactly cards, first
// card on top. Cards must be distinct.
func NewOrderedPokerDeck(cards []Card) (*PokerDeck, error) {
	raw := make([]int, len(cards))
	for i, c := range cards {
		raw[i] = CardToInt(c)
	}
	d, err := deck.FromCards(deck.StandardSize, raw)
	if err != nil {
		return nil, err
	}
	return &PokerDeck{Deck: d}, nil
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 2-14 within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Two through Ace)
//   - 14-26: Diamonds (Two through Ace)
//   - 27-39: Hearts (Two through Ace)
//   - 40-52: Spades (Two through Ace)
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := uint8((rawCard - 1) / 13)
	rank := uint8((rawCard-1)%13 + 2)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank()) - 1
}

// DrawCard removes the top card of the deck.
func (d *PokerDeck) DrawCard() (Card, error) {
	c, err := d.Deck.Draw()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(c)
}

// RemainingCards returns the undealt cards, top first.
func (d *PokerDeck) RemainingCards() []Card {
	raw := d.Deck.Cards()
	out := make([]Card, 0, len(raw))
	for _, r := range raw {
		// numbers in a deck.Deck are always 1..52
		c, _ := IntToCard(r)
		out = append(out, c)
	}
	return out
}
