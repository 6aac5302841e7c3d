// Package game chains rounds into a run: each cleared round raises the
// blind, reshuffles the deck and carries the held jokers over.
package game

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luca-patrignani/joker-poker/domain/deck"
	"github.com/luca-patrignani/joker-poker/domain/poker"
)

var (
	ErrRoundNotWon = errors.New("current round is not won")
	ErrRunOver     = errors.New("run is over")
)

// Status is the progress of a run as seen from its current round.
type Status string

const (
	Playing Status = "playing"
	Cleared Status = "cleared" // round won, next ante available
	Victory Status = "victory"
	Defeat  Status = "defeat"
)

// RunConfig holds the rules shared by every round of a run.
type RunConfig struct {
	BaseBlind       int
	BlindMultiplier int
	Antes           int
	Plays           int
	Discards        int
	// Seed makes every deck of the run reproducible. Empty means random.
	Seed []byte
}

func (c RunConfig) validate() error {
	switch {
	case c.BaseBlind < 0:
		return fmt.Errorf("%w: base blind %d is negative", poker.ErrInvalidRoundParameters, c.BaseBlind)
	case c.BlindMultiplier < 1:
		return fmt.Errorf("%w: blind multiplier %d must be at least 1", poker.ErrInvalidRoundParameters, c.BlindMultiplier)
	case c.Antes < 1:
		return fmt.Errorf("%w: a run needs at least one ante, got %d", poker.ErrInvalidRoundParameters, c.Antes)
	}
	return nil
}

// Blind returns the target score of the given ante (0 based):
// BaseBlind * BlindMultiplier^ante.
func (c RunConfig) Blind(ante int) int {
	target := c.BaseBlind
	for i := 0; i < ante; i++ {
		target *= c.BlindMultiplier
	}
	return target
}

// Run is a sequence of rounds played with one set of jokers.
type Run struct {
	id     string
	cfg    RunConfig
	ante   int
	jokers *poker.Jokers
	round  *poker.Round
}

// NewRun starts the first ante. jokers may be nil.
func NewRun(cfg RunConfig, jokers *poker.Jokers) (*Run, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if jokers == nil {
		jokers, _ = poker.NewJokers()
	}
	r := &Run{
		id:     uuid.NewString(),
		cfg:    cfg,
		jokers: jokers,
	}
	if err := r.deal(); err != nil {
		return nil, err
	}
	return r, nil
}

// ResumeRun rebuilds a run from the ante it was in and a snapshot of its
// current round. The jokers of the snapshot become the run's jokers.
func ResumeRun(cfg RunConfig, id string, ante int, s poker.Snapshot) (*Run, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if ante < 0 || ante >= cfg.Antes {
		return nil, fmt.Errorf("%w: ante %d outside [0,%d)", poker.ErrInvalidRoundParameters, ante, cfg.Antes)
	}
	round, err := poker.Restore(s)
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	return &Run{
		id:     id,
		cfg:    cfg,
		ante:   ante,
		jokers: round.Modifiers(),
		round:  round,
	}, nil
}

// anteStream returns the shuffle stream of one ante. A seeded run derives
// a distinct stream per ante so a resumed run deals the same later decks.
func anteStream(seed []byte, ante int) cipher.Stream {
	if len(seed) == 0 {
		return deck.RandomStream()
	}
	return deck.SeededStream(fmt.Appendf(append([]byte{}, seed...), "/ante/%d", ante))
}

func (r *Run) deal() error {
	round, err := poker.NewRound(poker.RoundConfig{
		Target:   r.cfg.Blind(r.ante),
		Plays:    r.cfg.Plays,
		Discards: r.cfg.Discards,
	}, poker.NewPokerDeck(anteStream(r.cfg.Seed, r.ante)), r.jokers)
	if err != nil {
		return err
	}
	r.round = round
	return nil
}

// Advance moves to the next ante after a won round, dealing a fresh shuffled
// deck and re-applying Passive jokers.
func (r *Run) Advance() (*poker.Round, error) {
	switch r.Status() {
	case Victory, Defeat:
		return nil, ErrRunOver
	case Playing:
		return nil, ErrRoundNotWon
	}
	r.ante++
	if err := r.deal(); err != nil {
		r.ante--
		return nil, err
	}
	return r.round, nil
}

// Status derives the run progress from the current round.
func (r *Run) Status() Status {
	switch r.round.State() {
	case poker.Lost:
		return Defeat
	case poker.Won:
		if r.ante == r.cfg.Antes-1 {
			return Victory
		}
		return Cleared
	}
	return Playing
}

// AddJoker gives the player a new joker. Scoring jokers count from the next
// play; Passive ones from the next round.
func (r *Run) AddJoker(j poker.Joker) error {
	if r.Status() == Victory || r.Status() == Defeat {
		return ErrRunOver
	}
	return r.jokers.Add(j)
}

// RemoveJoker sells the joker at index i.
func (r *Run) RemoveJoker(i int) (poker.Joker, error) {
	return r.jokers.Remove(i)
}

func (r *Run) ID() string            { return r.id }
func (r *Run) Ante() int             { return r.ante }
func (r *Run) Config() RunConfig     { return r.cfg }
func (r *Run) Current() *poker.Round { return r.round }
func (r *Run) Jokers() []poker.Joker { return r.jokers.All() }
func (r *Run) Blind() int            { return r.cfg.Blind(r.ante) }
