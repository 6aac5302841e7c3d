package poker

import (
	"fmt"
	"strings"
)

// Timing tells when a joker's effect fires.
type Timing string

const (
	// OnCardPlay jokers fire once per played card, before any AfterHandPlay joker.
	OnCardPlay Timing = "on_card_play"
	// AfterHandPlay jokers fire once per scored hand, after all cards.
	AfterHandPlay Timing = "after_hand_play"
	// Passive jokers never fire while scoring; they adjust round counters at setup.
	Passive Timing = "passive"
)

// JokerKind identifies one of the closed set of jokers.
type JokerKind uint8

const (
	PlainJoker JokerKind = iota
	GreedyJoker
	LustyJoker
	WrathfulJoker
	GluttonousJoker
	OddToddJoker
	EvenStevenJoker
	ScholarJoker
	AbstractJoker
	HalfJoker
	JollyJoker
	SlyJoker
	DrunkardJoker
	BurglarJoker
)

type jokerInfo struct {
	code   string
	name   string
	text   string
	timing Timing
}

var jokerTable = map[JokerKind]jokerInfo{
	PlainJoker:      {"joker", "Joker", "+4 Mult", AfterHandPlay},
	GreedyJoker:     {"greedy", "Greedy Joker", "+3 Mult for each played Diamond", OnCardPlay},
	LustyJoker:      {"lusty", "Lusty Joker", "+3 Mult for each played Heart", OnCardPlay},
	WrathfulJoker:   {"wrathful", "Wrathful Joker", "+3 Mult for each played Spade", OnCardPlay},
	GluttonousJoker: {"gluttonous", "Gluttonous Joker", "+3 Mult for each played Club", OnCardPlay},
	OddToddJoker:    {"odd_todd", "Odd Todd", "+31 Chips for each played A, 9, 7, 5 or 3", OnCardPlay},
	EvenStevenJoker: {"even_steven", "Even Steven", "+4 Mult for each played 10, 8, 6, 4 or 2", OnCardPlay},
	ScholarJoker:    {"scholar", "Scholar", "+20 Chips and +4 Mult for each played Ace", OnCardPlay},
	AbstractJoker:   {"abstract", "Abstract Joker", "+3 Mult for each Joker held", AfterHandPlay},
	HalfJoker:       {"half", "Half Joker", "+20 Mult if 3 or fewer cards are played", AfterHandPlay},
	JollyJoker:      {"jolly", "Jolly Joker", "+8 Mult if the hand is a Pair", AfterHandPlay},
	SlyJoker:        {"sly", "Sly Joker", "+50 Chips if the hand is a Pair", AfterHandPlay},
	DrunkardJoker:   {"drunkard", "Drunkard", "+1 discard each round", Passive},
	BurglarJoker:    {"burglar", "Burglar", "+3 hands each round, lose all discards", Passive},
}

// Joker is a held modifier. Its behavior is fully determined by its kind.
type Joker struct {
	Kind JokerKind
}

// NewJoker returns the joker of the given kind, or ErrUnknownIdentifier.
func NewJoker(kind JokerKind) (Joker, error) {
	if _, ok := jokerTable[kind]; !ok {
		return Joker{}, fmt.Errorf("%w: joker kind %d", ErrUnknownIdentifier, kind)
	}
	return Joker{Kind: kind}, nil
}

// JokerKinds lists every known kind in declaration order.
func JokerKinds() []JokerKind {
	out := make([]JokerKind, 0, len(jokerTable))
	for k := PlainJoker; k <= BurglarJoker; k++ {
		out = append(out, k)
	}
	return out
}

// ParseJoker decodes a joker token such as "abstract" or "ODD_TODD".
func ParseJoker(token string) (Joker, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for kind, info := range jokerTable {
		if info.code == t {
			return Joker{Kind: kind}, nil
		}
	}
	return Joker{}, fmt.Errorf("%w: joker %q", ErrUnknownIdentifier, token)
}

func (j Joker) Code() string   { return jokerTable[j.Kind].code }
func (j Joker) Name() string   { return jokerTable[j.Kind].name }
func (j Joker) Text() string   { return jokerTable[j.Kind].text }
func (j Joker) Timing() Timing { return jokerTable[j.Kind].timing }

func (j Joker) String() string { return j.Name() }

// Interact applies the joker's scoring effect to ctx. OnCardPlay jokers look
// at card only; AfterHandPlay jokers receive the last processed card (or the
// zero Card when nothing was played) and may inspect ctx. Passive jokers do
// nothing here.
func (j Joker) Interact(ctx *ScoreContext, card Card) {
	switch j.Kind {
	case PlainJoker:
		ctx.Mult += 4
	case GreedyJoker:
		if card.suit == Diamond {
			ctx.Mult += 3
		}
	case LustyJoker:
		if card.suit == Heart {
			ctx.Mult += 3
		}
	case WrathfulJoker:
		if card.suit == Spade {
			ctx.Mult += 3
		}
	case GluttonousJoker:
		if card.suit == Club {
			ctx.Mult += 3
		}
	case OddToddJoker:
		if card.IsOdd() {
			ctx.Chips += 31
		}
	case EvenStevenJoker:
		if card.IsEven() {
			ctx.Mult += 4
		}
	case ScholarJoker:
		if card.rank == Ace {
			ctx.Chips += 20
			ctx.Mult += 4
		}
	case AbstractJoker:
		ctx.Mult += 3 * len(ctx.Jokers)
	case HalfJoker:
		if len(ctx.Played) <= 3 {
			ctx.Mult += 20
		}
	case JollyJoker:
		if ctx.Hand == Pair {
			ctx.Mult += 8
		}
	case SlyJoker:
		if ctx.Hand == Pair {
			ctx.Chips += 50
		}
	}
}

// Counters are the per-round budgets a Passive joker may adjust.
type Counters struct {
	Plays    int
	Discards int
}

// Adjust applies a Passive joker to the round budgets. Other timings return
// c unchanged.
func (j Joker) Adjust(c Counters) Counters {
	switch j.Kind {
	case DrunkardJoker:
		c.Discards++
	case BurglarJoker:
		c.Plays += 3
		c.Discards = 0
	}
	return c
}
