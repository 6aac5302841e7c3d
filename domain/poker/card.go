package poker

import (
	"fmt"
	"strconv"
	"strings"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣
	Diamond = 1 // ♦
	Heart   = 2 // ♥
	Spade   = 3 // ♠
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 14 // A (always high)
)

// Card represents a playing card with suit and rank.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 2-14: two through ace
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 2-14 (2-10=face value, Jack=11, Queen=12, King=13, Ace=14)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank < 2 || rank > 14 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// MustCard is NewCard for literals known to be valid. It panics otherwise.
func MustCard(suit uint8, rank uint8) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (2-14: two through ace).
func (c Card) Rank() uint8 {
	return c.rank
}

// Chips returns the chip value the card contributes when played:
// face value for 2-10, 10 for J/Q/K and 11 for an ace.
func (c Card) Chips() int {
	switch {
	case c.rank == Ace:
		return 11
	case c.rank >= Jack:
		return 10
	default:
		return int(c.rank)
	}
}

// IsOdd reports whether the rank counts as odd (A, 9, 7, 5, 3).
func (c Card) IsOdd() bool {
	return c.rank == Ace || (c.rank <= 10 && c.rank%2 == 1)
}

// IsEven reports whether the rank counts as even (10, 8, 6, 4, 2).
func (c Card) IsEven() bool {
	return c.rank <= 10 && c.rank%2 == 0
}

func rankLabel(rank uint8) string {
	switch rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(rank))
	}
}

var suitSymbols = [4]string{"♣", "♦", "♥", "♠"}

// suit letters used by the persistence tokens, indexed by suit constant
var suitLetters = [4]string{"C", "D", "H", "S"}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	if c.suit > 3 {
		return rankLabel(c.rank) + "?"
	}
	return rankLabel(c.rank) + suitSymbols[c.suit]
}

// Code returns the canonical token of the card: rank (2-10, J, Q, K, A)
// followed by the suit letter (H, C, S, D), e.g. "10H" or "AS".
func (c Card) Code() string {
	if c.suit > 3 {
		return rankLabel(c.rank) + "?"
	}
	return rankLabel(c.rank) + suitLetters[c.suit]
}

// ParseCard decodes a card token produced by Code. Parsing is case-insensitive
// and ignores surrounding spaces. Unknown tokens yield ErrUnknownIdentifier.
func ParseCard(token string) (Card, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) < 2 {
		return Card{}, fmt.Errorf("%w: card %q", ErrUnknownIdentifier, token)
	}
	rankPart, suitPart := t[:len(t)-1], t[len(t)-1:]

	suit := -1
	for i, l := range suitLetters {
		if l == suitPart {
			suit = i
		}
	}
	if suit < 0 {
		return Card{}, fmt.Errorf("%w: card %q", ErrUnknownIdentifier, token)
	}

	var rank uint8
	switch rankPart {
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		n, err := strconv.Atoi(rankPart)
		if err != nil || n < 2 || n > 10 || strconv.Itoa(n) != rankPart {
			return Card{}, fmt.Errorf("%w: card %q", ErrUnknownIdentifier, token)
		}
		rank = uint8(n)
	}
	return NewCard(uint8(suit), rank)
}

// ParseCards decodes a list of card tokens, stopping at the first bad one.
func ParseCards(tokens []string) ([]Card, error) {
	out := make([]Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CardCodes encodes cards into their canonical tokens.
func CardCodes(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Code()
	}
	return out
}
