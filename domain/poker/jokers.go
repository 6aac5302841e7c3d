package poker

import "fmt"

// MaxJokers is the number of jokers a player can hold at once.
const MaxJokers = 5

// Jokers is the ordered collection of held jokers. Order is insertion order
// and decides application order within a scoring phase.
type Jokers struct {
	held []Joker
}

// NewJokers returns a collection holding js in order. It fails without
// creating anything when js exceeds MaxJokers or contains an unknown kind.
func NewJokers(js ...Joker) (*Jokers, error) {
	if len(js) > MaxJokers {
		return nil, fmt.Errorf("%w: %d jokers, max %d", ErrCapacityExceeded, len(js), MaxJokers)
	}
	for _, j := range js {
		if _, err := NewJoker(j.Kind); err != nil {
			return nil, err
		}
	}
	held := make([]Joker, len(js), MaxJokers)
	copy(held, js)
	return &Jokers{held: held}, nil
}

// ParseJokers builds a collection from joker tokens.
func ParseJokers(tokens []string) (*Jokers, error) {
	js := make([]Joker, 0, len(tokens))
	for _, tok := range tokens {
		j, err := ParseJoker(tok)
		if err != nil {
			return nil, err
		}
		js = append(js, j)
	}
	return NewJokers(js...)
}

// Add appends j. A full collection is left untouched and ErrCapacityExceeded returned.
func (js *Jokers) Add(j Joker) error {
	if _, err := NewJoker(j.Kind); err != nil {
		return err
	}
	if len(js.held) >= MaxJokers {
		return fmt.Errorf("%w: already holding %d jokers", ErrCapacityExceeded, MaxJokers)
	}
	js.held = append(js.held, j)
	return nil
}

// Remove deletes and returns the joker at index i, keeping the others in order.
func (js *Jokers) Remove(i int) (Joker, error) {
	if i < 0 || i >= len(js.held) {
		return Joker{}, fmt.Errorf("%w: joker index %d out of range [0,%d)", ErrInvalidSelection, i, len(js.held))
	}
	j := js.held[i]
	js.held = append(js.held[:i], js.held[i+1:]...)
	return j, nil
}

// All returns a copy of the held jokers in order.
func (js *Jokers) All() []Joker {
	out := make([]Joker, len(js.held))
	copy(out, js.held)
	return out
}

func (js *Jokers) Len() int { return len(js.held) }

func (js *Jokers) Cap() int { return MaxJokers }

// Codes returns the joker tokens in held order.
func (js *Jokers) Codes() []string {
	out := make([]string, len(js.held))
	for i, j := range js.held {
		out[i] = j.Code()
	}
	return out
}

// adjust runs every Passive joker over c in held order.
func (js *Jokers) adjust(c Counters) Counters {
	for _, j := range js.held {
		if j.Timing() == Passive {
			c = j.Adjust(c)
		}
	}
	return c
}
