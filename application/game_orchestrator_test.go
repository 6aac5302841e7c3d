package application

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/game"
	"github.com/luca-patrignani/joker-poker/ledger"
	"github.com/luca-patrignani/joker-poker/storage"
)

func newTestOrchestrator(t *testing.T, cfg game.RunConfig) (*GameOrchestrator, *bytes.Buffer) {
	t.Helper()
	db, err := storage.OpenAndMigrate(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("OpenAndMigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewGameOrchestrator(cfg, storage.NewSQLiteRepository(db), logger), &logs
}

func easyConfig() game.RunConfig {
	return game.RunConfig{BaseBlind: 0, BlindMultiplier: 2, Antes: 2, Plays: 3, Discards: 2, Seed: []byte("orchestrator")}
}

func TestOperationsNeedARun(t *testing.T) {
	o, _ := newTestOrchestrator(t, easyConfig())
	if _, err := o.Play([]int{0}); !errors.Is(err, ErrNoRun) {
		t.Errorf("Play error = %v", err)
	}
	if _, err := o.Discard([]int{0}); !errors.Is(err, ErrNoRun) {
		t.Errorf("Discard error = %v", err)
	}
	if _, err := o.Next(); !errors.Is(err, ErrNoRun) {
		t.Errorf("Next error = %v", err)
	}
	if err := o.Save("main"); !errors.Is(err, ErrNoRun) {
		t.Errorf("Save error = %v", err)
	}
	if _, err := o.Suggest(); !errors.Is(err, ErrNoRun) {
		t.Errorf("Suggest error = %v", err)
	}
}

func TestPlayThroughRun(t *testing.T) {
	o, logs := newTestOrchestrator(t, easyConfig())
	if err := o.Start(nil); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := o.Discard([]int{0, 1}); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	idx, err := o.Suggest()
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	res, err := o.Play(idx)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.State != poker.Won || o.Run().Status() != game.Cleared {
		t.Fatalf("state %s status %s", res.State, o.Run().Status())
	}
	if got := o.Journal().Len(); got != 3 {
		t.Errorf("journal has %d blocks, want 3", got)
	}

	if _, err := o.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := o.Play([]int{0}); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if o.Run().Status() != game.Victory {
		t.Errorf("status = %s", o.Run().Status())
	}
	if err := o.Journal().Verify(); err != nil {
		t.Errorf("journal does not verify: %v", err)
	}

	for _, msg := range []string{"run started", "ante cleared", "ante started", "run won"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("log is missing %q", msg)
		}
	}
}

func TestRejectedActionIsNotJournaled(t *testing.T) {
	o, _ := newTestOrchestrator(t, easyConfig())
	if err := o.Start(nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := o.Play([]int{0, 0}); !errors.Is(err, poker.ErrInvalidSelection) {
		t.Errorf("Play error = %v", err)
	}
	if got := o.Journal().Len(); got != 1 {
		t.Errorf("journal has %d blocks after a rejected action", got)
	}
}

func TestJournalFailureKeepsOutcome(t *testing.T) {
	cfg := easyConfig()
	cfg.BaseBlind = 1_000_000
	o, logs := newTestOrchestrator(t, cfg)
	if err := o.Start(nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	o.record = func(poker.Action, poker.Snapshot, int) (ledger.Block, error) {
		return ledger.Block{}, errors.New("disk full")
	}

	hand := o.Run().Current().Hand()
	cards, err := o.Discard([]int{0})
	if err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if len(cards) != 1 || cards[0] != hand[0] || o.Run().Current().DiscardsLeft() != cfg.Discards-1 {
		t.Errorf("discard outcome %v, discards left %d", cards, o.Run().Current().DiscardsLeft())
	}
	if !strings.Contains(logs.String(), "journal append failed") {
		t.Error("journal failure was not logged")
	}
	if err := o.Save("main"); !errors.Is(err, ErrJournalIncomplete) {
		t.Errorf("Save error = %v, want ErrJournalIncomplete", err)
	}

	if err := o.Start(nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := o.Save("main"); err != nil {
		t.Errorf("Save on a fresh run: %v", err)
	}
}

func TestSaveAndResume(t *testing.T) {
	cfg := easyConfig()
	cfg.BaseBlind = 1_000_000
	o, _ := newTestOrchestrator(t, cfg)
	js, _ := poker.NewJokers(poker.Joker{Kind: poker.GreedyJoker})
	if err := o.Start(js); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := o.AddJoker(poker.Joker{Kind: poker.SlyJoker}); err != nil {
		t.Fatalf("AddJoker: %v", err)
	}
	if _, err := o.Discard([]int{3}); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	before := o.Run().Current().Snapshot()
	runID := o.Run().ID()

	if err := o.Save("main"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := o.Start(nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := o.Resume("main"); err != nil {
		t.Fatalf("Resume: %v", err)
	}

	after := o.Run().Current().Snapshot()
	if o.Run().ID() != runID {
		t.Errorf("resumed run id %s, want %s", o.Run().ID(), runID)
	}
	if after.Score != before.Score || after.DiscardsLeft != before.DiscardsLeft || strings.Join(after.Hand, " ") != strings.Join(before.Hand, " ") {
		t.Errorf("resumed round differs:\nbefore %+v\nafter  %+v", before, after)
	}
	if got := strings.Join(after.Jokers, " "); got != "greedy sly" {
		t.Errorf("jokers after resume = %q", got)
	}
	if o.Journal().Len() != 1 {
		t.Errorf("resumed journal should restart at genesis")
	}

	if err := o.Resume("missing"); !errors.Is(err, storage.ErrSlotNotFound) {
		t.Errorf("Resume missing slot error = %v", err)
	}
}

func TestSaveWithoutStore(t *testing.T) {
	o := NewGameOrchestrator(easyConfig(), nil, nil)
	if err := o.Start(nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := o.Save("main"); !errors.Is(err, ErrNoStore) {
		t.Errorf("Save error = %v", err)
	}
	if err := o.Resume("main"); !errors.Is(err, ErrNoStore) {
		t.Errorf("Resume error = %v", err)
	}
}
