// Package application wires a run, its action journal and the save store
// behind the operations a front end needs.
package application

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/game"
	"github.com/luca-patrignani/joker-poker/ledger"
	"github.com/luca-patrignani/joker-poker/storage"
)

var (
	ErrNoRun   = errors.New("no run in progress")
	ErrNoStore = errors.New("no save store configured")

	ErrJournalIncomplete = errors.New("action journal is incomplete")
)

// GameOrchestrator has clear responsibilities:
//   - run:     game rules across antes
//   - manager: validates and applies actions on the current round
//   - journal: immutable log of applied actions
//   - repo:    save slots
type GameOrchestrator struct {
	cfg     game.RunConfig
	run     *game.Run
	manager *poker.RoundManager
	journal *ledger.Blockchain
	repo    storage.Repository
	logger  *slog.Logger

	// record appends to journal; journalErr holds the first append failure.
	record     func(poker.Action, poker.Snapshot, int) (ledger.Block, error)
	journalErr error
}

// NewGameOrchestrator prepares an orchestrator without a run. repo may be
// nil, in which case Save and Resume fail with ErrNoStore.
func NewGameOrchestrator(cfg game.RunConfig, repo storage.Repository, logger *slog.Logger) *GameOrchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameOrchestrator{cfg: cfg, repo: repo, logger: logger}
}

// Start begins a fresh run holding jokers (may be nil).
func (o *GameOrchestrator) Start(jokers *poker.Jokers) error {
	run, err := game.NewRun(o.cfg, jokers)
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	o.attach(run)
	o.logger.Info("run started", "run", run.ID(), "antes", o.cfg.Antes, "blind", run.Blind())
	return nil
}

func (o *GameOrchestrator) attach(run *game.Run) {
	o.run = run
	o.manager = poker.NewRoundManager(run.Current(), o.logger)
	o.journal = ledger.NewBlockchain(run.ID())
	o.record = func(a poker.Action, s poker.Snapshot, ante int) (ledger.Block, error) {
		return o.journal.Append(a, s, ante)
	}
	o.journalErr = nil
}

// Play plays the cards at the given hand indices.
func (o *GameOrchestrator) Play(indices []int) (poker.PlayResult, error) {
	out, err := o.apply(poker.ActionPlay, indices)
	if err != nil {
		return poker.PlayResult{}, err
	}
	switch o.run.Status() {
	case game.Cleared:
		o.logger.Info("ante cleared", "run", o.run.ID(), "ante", o.run.Ante()+1)
	case game.Victory:
		o.logger.Info("run won", "run", o.run.ID())
	case game.Defeat:
		o.logger.Info("run lost", "run", o.run.ID(), "ante", o.run.Ante()+1)
	}
	return *out.Play, nil
}

// Discard throws away the cards at the given hand indices.
func (o *GameOrchestrator) Discard(indices []int) ([]poker.Card, error) {
	out, err := o.apply(poker.ActionDiscard, indices)
	if err != nil {
		return nil, err
	}
	return out.Discarded, nil
}

// apply validates and applies an action, then journals it. The journal write
// happens after the round has changed: a failure there is logged and makes
// Save refuse, but the outcome is still returned.
func (o *GameOrchestrator) apply(t poker.ActionType, indices []int) (poker.Outcome, error) {
	if o.run == nil {
		return poker.Outcome{}, ErrNoRun
	}
	a := poker.Action{RoundID: o.manager.Round.ID(), Type: t, Indices: indices}
	out, err := o.manager.Apply(a)
	if err != nil {
		return poker.Outcome{}, err
	}
	if _, err := o.record(a, o.manager.Round.Snapshot(), o.run.Ante()); err != nil {
		o.logger.Error("journal append failed", "run", o.run.ID(), "action", string(t), "error", err.Error())
		if o.journalErr == nil {
			o.journalErr = fmt.Errorf("%w: %w", ErrJournalIncomplete, err)
		}
	}
	return out, nil
}

// Next advances to the following ante once the current round is won.
func (o *GameOrchestrator) Next() (*poker.Round, error) {
	if o.run == nil {
		return nil, ErrNoRun
	}
	round, err := o.run.Advance()
	if err != nil {
		return nil, err
	}
	o.manager = poker.NewRoundManager(round, o.logger)
	o.logger.Info("ante started", "run", o.run.ID(), "ante", o.run.Ante()+1, "blind", o.run.Blind())
	return round, nil
}

// Suggest returns the indices of the strongest cards in the current hand.
func (o *GameOrchestrator) Suggest() ([]int, error) {
	if o.run == nil {
		return nil, ErrNoRun
	}
	return poker.Suggest(o.manager.Round.Hand())
}

// AddJoker gives the player a joker for the rest of the run.
func (o *GameOrchestrator) AddJoker(j poker.Joker) error {
	if o.run == nil {
		return ErrNoRun
	}
	if err := o.run.AddJoker(j); err != nil {
		return err
	}
	o.logger.Info("joker added", "run", o.run.ID(), "joker", j.Code())
	return nil
}

// Save stores the current run under slot.
func (o *GameOrchestrator) Save(slot string) error {
	if o.repo == nil {
		return ErrNoStore
	}
	if o.run == nil {
		return ErrNoRun
	}
	if o.journalErr != nil {
		return fmt.Errorf("refusing to save: %w", o.journalErr)
	}
	if err := o.journal.Verify(); err != nil {
		o.logger.Error("journal corrupted", "run", o.run.ID(), "error", err.Error())
		return fmt.Errorf("refusing to save: %w", err)
	}
	s := storage.Save{RunID: o.run.ID(), Ante: o.run.Ante(), Round: o.manager.Round.Snapshot()}
	if err := o.repo.Save(slot, s); err != nil {
		o.logger.Error("save failed", "slot", slot, "error", err.Error())
		return err
	}
	o.logger.Info("run saved", "run", o.run.ID(), "slot", slot)
	return nil
}

// Resume replaces the current run with the one stored under slot.
// The journal restarts from the restored state.
func (o *GameOrchestrator) Resume(slot string) error {
	if o.repo == nil {
		return ErrNoStore
	}
	s, err := o.repo.Load(slot)
	if err != nil {
		return err
	}
	run, err := game.ResumeRun(o.cfg, s.RunID, s.Ante, s.Round)
	if err != nil {
		o.logger.Error("save is not resumable", "slot", slot, "error", err.Error())
		return fmt.Errorf("failed to resume slot %q: %w", slot, err)
	}
	o.attach(run)
	o.logger.Info("run resumed", "run", run.ID(), "slot", slot, "ante", run.Ante()+1)
	return nil
}

// Run returns the current run, or nil before Start or Resume.
func (o *GameOrchestrator) Run() *game.Run { return o.run }

// Journal returns the action journal of the current run.
func (o *GameOrchestrator) Journal() *ledger.Blockchain { return o.journal }
