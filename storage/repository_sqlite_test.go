package storage

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	db, err := OpenAndMigrate(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("OpenAndMigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewSQLiteRepository(db)
}

func testSnapshot(t *testing.T) poker.Snapshot {
	t.Helper()
	cards, err := poker.ParseCards([]string{"AS", "AD", "AC", "AH", "2C", "3D", "4H", "5S", "7C", "8D", "9H"})
	if err != nil {
		t.Fatalf("ParseCards: %v", err)
	}
	d, err := poker.NewOrderedPokerDeck(cards)
	if err != nil {
		t.Fatalf("NewOrderedPokerDeck: %v", err)
	}
	js, err := poker.ParseJokers([]string{"greedy", "odd_todd"})
	if err != nil {
		t.Fatalf("ParseJokers: %v", err)
	}
	r, err := poker.NewRound(poker.RoundConfig{Target: 600, Plays: 4, Discards: 3}, d, js)
	if err != nil {
		t.Fatalf("NewRound: %v", err)
	}
	if _, err := r.DiscardCards([]int{6, 7}); err != nil {
		t.Fatalf("DiscardCards: %v", err)
	}
	return r.Snapshot()
}

func TestSaveAndLoad(t *testing.T) {
	repo := newTestRepository(t)
	snap := testSnapshot(t)

	if err := repo.Save("main", Save{RunID: "run-1", Ante: 2, Round: snap}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Load("main")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.RunID != "run-1" || got.Ante != 2 {
		t.Errorf("run %q ante %d", got.RunID, got.Ante)
	}
	if !reflect.DeepEqual(got.Round, snap) {
		t.Errorf("snapshot mismatch:\ngot  %+v\nwant %+v", got.Round, snap)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}
	if _, err := poker.Restore(got.Round); err != nil {
		t.Errorf("loaded snapshot does not restore: %v", err)
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	repo := newTestRepository(t)
	snap := testSnapshot(t)

	if err := repo.Save("main", Save{RunID: "run-1", Round: snap}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	snap.Score = 250
	if err := repo.Save("main", Save{RunID: "run-1", Ante: 1, Round: snap}); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err := repo.Load("main")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Round.Score != 250 || got.Ante != 1 {
		t.Errorf("score %d ante %d after overwrite", got.Round.Score, got.Ante)
	}
	slots, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(slots) != 1 {
		t.Errorf("List() = %v, want a single slot", slots)
	}
}

func TestListAndDelete(t *testing.T) {
	repo := newTestRepository(t)
	snap := testSnapshot(t)
	for _, slot := range []string{"zeta", "alpha", "mid"} {
		if err := repo.Save(slot, Save{Round: snap}); err != nil {
			t.Fatalf("Save(%q): %v", slot, err)
		}
	}
	slots, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(slots, []string{"alpha", "mid", "zeta"}) {
		t.Errorf("List() = %v", slots)
	}

	if err := repo.Delete("mid"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Load("mid"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("Load after delete error = %v", err)
	}
	if err := repo.Delete("mid"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("second Delete error = %v", err)
	}
}

func TestSlotErrors(t *testing.T) {
	repo := newTestRepository(t)
	if _, err := repo.Load("missing"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("Load error = %v", err)
	}
	if err := repo.Save("  ", Save{}); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("Save with blank slot error = %v", err)
	}
}
