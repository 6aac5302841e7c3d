package poker

import (
	"fmt"
	"sort"

	"github.com/paulhankin/poker"
)

// HandType is a classified poker pattern, ordered from weakest to strongest.
type HandType int

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var handNames = map[HandType]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (t HandType) String() string {
	if n, ok := handNames[t]; ok {
		return n
	}
	return fmt.Sprintf("HandType(%d)", int(t))
}

// base chips and multiplier of every pattern, before card chips are added
var handTable = map[HandType]struct{ chips, mult int }{
	HighCard:      {5, 1},
	Pair:          {10, 2},
	TwoPair:       {20, 2},
	ThreeOfAKind:  {30, 3},
	Straight:      {30, 4},
	Flush:         {35, 4},
	FullHouse:     {40, 4},
	FourOfAKind:   {60, 7},
	StraightFlush: {100, 8},
	RoyalFlush:    {100, 8},
}

// HandResult is the classification of a played set of cards.
type HandResult struct {
	Type  HandType
	Name  string
	Chips int
	Mult  int
}

// Classify returns the strongest pattern formed by cards (1 to 5 of them).
// Chips are the pattern's base chips plus the chip value of every played
// card; Mult is the pattern's base multiplier. The result depends only on
// the multiset of cards.
func Classify(cards []Card) HandResult {
	t := classifyType(cards)
	base := handTable[t]
	chips := base.chips
	for _, c := range cards {
		chips += c.Chips()
	}
	return HandResult{Type: t, Name: t.String(), Chips: chips, Mult: base.mult}
}

func classifyType(cards []Card) HandType {
	groups := rankGroups(cards)
	flush := isFlush(cards)
	straight := isStraight(cards)

	switch {
	case flush && straight:
		if lowestRank(cards) == 10 {
			return RoyalFlush
		}
		return StraightFlush
	case groups[0] >= 4:
		return FourOfAKind
	case len(cards) >= 5 && groups[0] == 3 && len(groups) > 1 && groups[1] == 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case groups[0] >= 3:
		return ThreeOfAKind
	case countGroups(groups, 2) >= 2:
		return TwoPair
	case countGroups(groups, 2) == 1:
		return Pair
	}
	return HighCard
}

// rankGroups returns the size of every rank group, largest first.
func rankGroups(cards []Card) []int {
	counts := make(map[uint8]int, len(cards))
	for _, c := range cards {
		counts[c.rank]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	if len(groups) == 0 {
		return []int{0}
	}
	return groups
}

func countGroups(groups []int, size int) int {
	n := 0
	for _, g := range groups {
		if g == size {
			n++
		}
	}
	return n
}

func isFlush(cards []Card) bool {
	if len(cards) != 5 {
		return false
	}
	for _, c := range cards[1:] {
		if c.suit != cards[0].suit {
			return false
		}
	}
	return true
}

// isStraight requires exactly five consecutive ranks; the ace only counts high.
func isStraight(cards []Card) bool {
	if len(cards) != 5 {
		return false
	}
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = int(c.rank)
	}
	sort.Ints(ranks)
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

func lowestRank(cards []Card) uint8 {
	low := cards[0].rank
	for _, c := range cards[1:] {
		if c.rank < low {
			low = c.rank
		}
	}
	return low
}

// toLibraryCard converts a Card to the evaluator library representation,
// where the ace is rank 1.
func toLibraryCard(c Card) (poker.Card, error) {
	var s poker.Suit
	switch c.suit {
	case Club:
		s = poker.Club
	case Diamond:
		s = poker.Diamond
	case Heart:
		s = poker.Heart
	case Spade:
		s = poker.Spade
	default:
		var zero poker.Card
		return zero, fmt.Errorf("invalid suit %d", c.suit)
	}
	r := poker.Rank(c.rank)
	if c.rank == Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

func toLibraryFive(cards []Card) ([5]poker.Card, error) {
	var five [5]poker.Card
	if len(cards) != 5 {
		return five, fmt.Errorf("need exactly 5 cards, got %d", len(cards))
	}
	for i, c := range cards {
		pc, err := toLibraryCard(c)
		if err != nil {
			return five, err
		}
		five[i] = pc
	}
	return five, nil
}

// Describe returns the standard poker description of exactly five cards,
// for example "pair of eights".
func Describe(cards []Card) (string, error) {
	five, err := toLibraryFive(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(five[:])
}

// Suggest picks the strongest subset of at most five cards from hand. With
// five or more cards every 5-card subset is ranked by standard poker strength
// and ties are broken by the score the subset would classify to. With fewer
// cards the whole hand is selected. The result is a list of hand indices in
// ascending order, ready to pass to Round.PlayCards.
func Suggest(hand []Card) ([]int, error) {
	n := len(hand)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty hand", ErrInvalidSelection)
	}
	if n < 5 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}

	var (
		best      []int
		bestScore int16
		bestValue int
		choose    [5]int
		subset    = make([]Card, 5)
		firstErr  error
	)
	var rec func(start, k int)
	rec = func(start, k int) {
		if firstErr != nil {
			return
		}
		if k == 5 {
			for i := 0; i < 5; i++ {
				subset[i] = hand[choose[i]]
			}
			five, err := toLibraryFive(subset)
			if err != nil {
				firstErr = err
				return
			}
			score := poker.Eval5(&five)
			res := Classify(subset)
			value := res.Chips * res.Mult
			if best == nil || score > bestScore || (score == bestScore && value > bestValue) {
				bestScore = score
				bestValue = value
				best = append(best[:0], choose[:]...)
			}
			return
		}
		for i := start; i <= n-(5-k); i++ {
			choose[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)
	if firstErr != nil {
		return nil, firstErr
	}
	return best, nil
}
