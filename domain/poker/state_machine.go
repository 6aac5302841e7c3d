package poker

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luca-patrignani/joker-poker/domain/deck"
)

// Snapshot is the primitive form of a Round used by persistence layers.
// Deck lists the undealt cards top first; Hand and Jokers keep their order.
type Snapshot struct {
	ID           string   `json:"id"`
	Target       int      `json:"target"`
	PlaysLeft    int      `json:"plays_left"`
	DiscardsLeft int      `json:"discards_left"`
	Score        int      `json:"score"`
	State        State    `json:"state"`
	Deck         []string `json:"deck"`
	Hand         []string `json:"hand"`
	Jokers       []string `json:"jokers"`
}

// Snapshot captures the round in primitive fields.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		ID:           r.id,
		Target:       r.target,
		PlaysLeft:    r.playsLeft,
		DiscardsLeft: r.discardsLeft,
		Score:        r.score,
		State:        r.state,
		Deck:         CardCodes(r.deck.RemainingCards()),
		Hand:         CardCodes(r.hand.Cards()),
		Jokers:       r.jokers.Codes(),
	}
}

// Restore rebuilds a Round from a snapshot. Unknown card or joker tokens
// yield ErrUnknownIdentifier; inconsistent counters, duplicated cards or
// oversized collections yield ErrInvalidRoundParameters. Passive jokers are
// not applied again: the counters already include them. An empty State is
// derived from the counters.
func Restore(s Snapshot) (*Round, error) {
	deckCards, err := ParseCards(s.Deck)
	if err != nil {
		return nil, err
	}
	handCards, err := ParseCards(s.Hand)
	if err != nil {
		return nil, err
	}
	jokers, err := ParseJokers(s.Jokers)
	if err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRoundParameters, err)
		}
		return nil, err
	}

	state := s.State
	if state == "" {
		state = deriveState(s)
	}
	if err := checkSnapshot(s, state, deckCards, handCards); err != nil {
		return nil, err
	}

	raw := make([]int, len(deckCards))
	for i, c := range deckCards {
		raw[i] = CardToInt(c)
	}
	d, err := deck.FromCards(deck.StandardSize, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoundParameters, err)
	}

	hand := NewHoldingHand(HandCapacity)
	for _, c := range handCards {
		if err := hand.Add(c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRoundParameters, err)
		}
	}

	id := s.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &Round{
		id:           id,
		deck:         &PokerDeck{Deck: d},
		hand:         hand,
		jokers:       jokers,
		target:       s.Target,
		playsLeft:    s.PlaysLeft,
		discardsLeft: s.DiscardsLeft,
		score:        s.Score,
		state:        state,
	}, nil
}

// deriveState mirrors the transitions of PlayCards. A round is won only by
// scoring, so a fresh round with target 0 is still in progress.
func deriveState(s Snapshot) State {
	switch {
	case s.Score > 0 && s.Score >= s.Target:
		return Won
	case s.PlaysLeft == 0, len(s.Hand) == 0 && len(s.Deck) == 0:
		return Lost
	}
	return InProgress
}

// checkSnapshot collects every consistency problem of s at once.
func checkSnapshot(s Snapshot, state State, deckCards, handCards []Card) error {
	var errs []error
	if s.Target < 0 {
		errs = append(errs, fmt.Errorf("negative target %d", s.Target))
	}
	if s.PlaysLeft < 0 || s.DiscardsLeft < 0 || s.Score < 0 {
		errs = append(errs, fmt.Errorf("negative counter (plays %d, discards %d, score %d)", s.PlaysLeft, s.DiscardsLeft, s.Score))
	}
	switch state {
	case InProgress, Won, Lost:
		if want := deriveState(s); state != want {
			errs = append(errs, fmt.Errorf("state %s contradicts counters (score %d, target %d, plays %d), expected %s", state, s.Score, s.Target, s.PlaysLeft, want))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown state %q", state))
	}
	if len(handCards) > HandCapacity {
		errs = append(errs, fmt.Errorf("hand holds %d cards, capacity %d", len(handCards), HandCapacity))
	}
	seen := make(map[Card]bool, len(deckCards)+len(handCards))
	for _, c := range append(append([]Card{}, deckCards...), handCards...) {
		if seen[c] {
			errs = append(errs, fmt.Errorf("card %s appears twice", c.Code()))
		}
		seen[c] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRoundParameters, errors.Join(errs...))
	}
	return nil
}

// Encode serializes the snapshot as JSON.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidRoundParameters, err)
	}
	return s, nil
}
