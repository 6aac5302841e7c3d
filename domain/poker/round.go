package poker

import (
	"fmt"

	"github.com/google/uuid"
)

// State is the lifecycle stage of a Round.
type State string

const (
	InProgress State = "in_progress"
	Won        State = "won"
	Lost       State = "lost"
)

// Terminal reports whether no further action can change the round.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// RoundConfig carries the budgets a round starts with, before Passive jokers.
type RoundConfig struct {
	Target   int
	Plays    int
	Discards int
}

// Round is one attempt at reaching a target score with a limited number of
// plays and discards.
type Round struct {
	id           string
	deck         *PokerDeck
	hand         *HoldingHand
	jokers       *Jokers
	target       int
	playsLeft    int
	discardsLeft int
	score        int
	state        State
}

// PlayResult describes a successful PlayCards call.
type PlayResult struct {
	Cards []Card
	Hand  HandResult
	Score int
	Total int
	State State
	Drawn []Card
}

// NewRound validates cfg, applies the Passive jokers in held order to the
// budgets and deals the opening hand from d. jokers may be nil.
func NewRound(cfg RoundConfig, d *PokerDeck, jokers *Jokers) (*Round, error) {
	switch {
	case cfg.Target < 0:
		return nil, fmt.Errorf("%w: target score %d is negative", ErrInvalidRoundParameters, cfg.Target)
	case cfg.Plays < 1:
		return nil, fmt.Errorf("%w: play budget %d must be at least 1", ErrInvalidRoundParameters, cfg.Plays)
	case cfg.Discards < 0:
		return nil, fmt.Errorf("%w: discard budget %d is negative", ErrInvalidRoundParameters, cfg.Discards)
	case d == nil || d.Deck == nil:
		return nil, fmt.Errorf("%w: missing deck", ErrInvalidRoundParameters)
	}
	if jokers == nil {
		jokers, _ = NewJokers()
	}

	budget := jokers.adjust(Counters{Plays: cfg.Plays, Discards: cfg.Discards})
	r := &Round{
		id:           uuid.NewString(),
		deck:         d,
		hand:         NewHoldingHand(HandCapacity),
		jokers:       jokers,
		target:       cfg.Target,
		playsLeft:    budget.Plays,
		discardsLeft: budget.Discards,
		state:        InProgress,
	}
	if _, err := r.hand.Refill(d); err != nil {
		return nil, err
	}
	return r, nil
}

// PlayCards plays the cards at indices: they are removed from the hand,
// classified and scored with the held jokers. The score is added to the
// total, one play is spent and the hand is refilled. The round is lost once
// plays run out, or when deck and hand are both empty short of the target.
// Any error leaves the round unchanged.
func (r *Round) PlayCards(indices []int) (PlayResult, error) {
	if err := CheckRoundLogic(ActionPlay, indices, r); err != nil {
		return PlayResult{}, err
	}

	played, err := r.hand.Take(indices)
	if err != nil {
		return PlayResult{}, err
	}
	result := Classify(played)
	delta := ComputeScore(result, played, r.jokers.All())

	r.score += delta
	r.playsLeft--
	drawn, err := r.hand.Refill(r.deck)
	if err != nil {
		return PlayResult{}, err
	}

	switch {
	case r.score >= r.target:
		r.state = Won
	case r.playsLeft == 0, r.hand.Len() == 0:
		r.state = Lost
	}

	return PlayResult{
		Cards: played,
		Hand:  result,
		Score: delta,
		Total: r.score,
		State: r.state,
		Drawn: drawn,
	}, nil
}

// DiscardCards throws away the cards at indices, spends one discard and
// refills the hand. Discarding never ends the round, so a discard that would
// leave nothing to play is rejected.
func (r *Round) DiscardCards(indices []int) ([]Card, error) {
	if err := CheckRoundLogic(ActionDiscard, indices, r); err != nil {
		return nil, err
	}
	discarded, err := r.hand.Take(indices)
	if err != nil {
		return nil, err
	}
	r.discardsLeft--
	if _, err := r.hand.Refill(r.deck); err != nil {
		return nil, err
	}
	return discarded, nil
}

func (r *Round) ID() string        { return r.id }
func (r *Round) State() State      { return r.state }
func (r *Round) Target() int       { return r.target }
func (r *Round) Score() int        { return r.score }
func (r *Round) PlaysLeft() int    { return r.playsLeft }
func (r *Round) DiscardsLeft() int { return r.discardsLeft }
func (r *Round) DeckLeft() int     { return r.deck.Remaining() }

// Hand returns a copy of the holding hand.
func (r *Round) Hand() []Card { return r.hand.Cards() }

// Jokers returns a copy of the held jokers in order.
func (r *Round) Jokers() []Joker { return r.jokers.All() }

// Modifiers returns the live joker collection the round scores with.
// Changes made through it apply from the next play.
func (r *Round) Modifiers() *Jokers { return r.jokers }
