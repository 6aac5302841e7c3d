package ledger

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// newTestRound builds a round from a fixed card order so snapshots are stable.
func newTestRound(t *testing.T) *poker.Round {
	t.Helper()
	cards, err := poker.ParseCards([]string{"AS", "AD", "AC", "AH", "2C", "3D", "4H", "5S", "7C", "8D", "9H", "JS"})
	if err != nil {
		t.Fatalf("failed to parse cards: %v", err)
	}
	d, err := poker.NewOrderedPokerDeck(cards)
	if err != nil {
		t.Fatalf("failed to prepare deck: %v", err)
	}
	r, err := poker.NewRound(poker.RoundConfig{Target: 10000, Plays: 4, Discards: 3}, d, nil)
	if err != nil {
		t.Fatalf("failed to create round: %v", err)
	}
	return r
}

func TestNewBlockchainGenesis(t *testing.T) {
	bc := NewBlockchain("run-1")
	if bc.Len() != 1 {
		t.Fatalf("expected 1 block (genesis), got %d", bc.Len())
	}
	genesis := bc.GetLatest()
	if genesis.Index != 0 {
		t.Fatalf("genesis index should be 0, got %d", genesis.Index)
	}
	if genesis.PrevHash != "0" {
		t.Fatalf("genesis PrevHash should be '0', got %s", genesis.PrevHash)
	}
	if genesis.Action.Type != genesisAction {
		t.Fatalf("genesis action type should be 'genesis', got %s", genesis.Action.Type)
	}
	if genesis.Hash == "" {
		t.Fatal("genesis block should have a hash")
	}
	if genesis.Metadata.RunID != "run-1" {
		t.Fatalf("genesis run id = %q", genesis.Metadata.RunID)
	}
	if err := bc.Verify(); err != nil {
		t.Fatalf("fresh blockchain should verify: %v", err)
	}
}

func TestAppendValidBlock(t *testing.T) {
	bc := NewBlockchain("run-1")
	r := newTestRound(t)
	m := poker.NewRoundManager(r, nil)

	action := m.ActionDiscard(4, 5)
	if _, err := m.Apply(action); err != nil {
		t.Fatalf("failed to apply action: %v", err)
	}
	newBlock, err := bc.Append(action, r.Snapshot(), 0, map[string]string{"note": "first"})
	if err != nil {
		t.Fatalf("unexpected error appending valid block: %v", err)
	}

	if bc.Len() != 2 {
		t.Fatalf("expected 2 blocks after append, got %d", bc.Len())
	}
	if newBlock.Index != 1 {
		t.Fatalf("new block index should be 1, got %d", newBlock.Index)
	}
	genesis, _ := bc.GetByIndex(0)
	if newBlock.PrevHash != genesis.Hash {
		t.Fatal("new block's PrevHash should match previous block's hash")
	}
	if newBlock.Snapshot.DiscardsLeft != 2 {
		t.Fatalf("snapshot should record 2 discards left, got %d", newBlock.Snapshot.DiscardsLeft)
	}
	if newBlock.Metadata.RunID != "run-1" || newBlock.Metadata.Extra["note"] != "first" {
		t.Fatalf("unexpected metadata %+v", newBlock.Metadata)
	}
	if err := bc.Verify(); err != nil {
		t.Fatalf("chain should verify: %v", err)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(bc *Blockchain)
	}{
		{"changed score", func(bc *Blockchain) { bc.blocks[1].Snapshot.Score = 99999 }},
		{"changed action", func(bc *Blockchain) { bc.blocks[2].Action.Indices = []int{0} }},
		{"broken link", func(bc *Blockchain) { bc.blocks[2].PrevHash = "deadbeef" }},
		{"bad index", func(bc *Blockchain) { bc.blocks[2].Index = 7 }},
		{"genesis edited", func(bc *Blockchain) { bc.blocks[0].Metadata.RunID = "other" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bc := NewBlockchain("run-1")
			r := newTestRound(t)
			m := poker.NewRoundManager(r, nil)
			for _, a := range []poker.Action{m.ActionPlay(4), m.ActionPlay(0, 1)} {
				if _, err := m.Apply(a); err != nil {
					t.Fatalf("failed to apply action: %v", err)
				}
				if _, err := bc.Append(a, r.Snapshot(), 0); err != nil {
					t.Fatalf("failed to append: %v", err)
				}
			}
			if err := bc.Verify(); err != nil {
				t.Fatalf("untouched chain should verify: %v", err)
			}
			tt.tamper(bc)
			if err := bc.Verify(); err == nil {
				t.Fatal("tampered chain should not verify")
			}
		})
	}
}

func TestGetByIndexOutOfRange(t *testing.T) {
	bc := NewBlockchain("run-1")
	for _, i := range []int{-1, 1} {
		if _, err := bc.GetByIndex(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("GetByIndex(%d) error = %v", i, err)
		}
	}
}

func TestActionsSkipGenesis(t *testing.T) {
	bc := NewBlockchain("run-1")
	if len(bc.Actions()) != 0 {
		t.Fatal("fresh chain should have no actions")
	}
	r := newTestRound(t)
	a := poker.Action{RoundID: r.ID(), Type: poker.ActionPlay, Indices: []int{0}}
	if _, err := bc.Append(a, r.Snapshot(), 0); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	actions := bc.Actions()
	if len(actions) != 1 || actions[0].Type != poker.ActionPlay {
		t.Fatalf("Actions() = %+v", actions)
	}
}
