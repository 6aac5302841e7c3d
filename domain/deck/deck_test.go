package deck

import (
	"errors"
	"testing"
)

func TestNewDeckIsComplete(t *testing.T) {
	d := New(StandardSize)
	if d.Remaining() != StandardSize {
		t.Fatalf("expected %d cards, got %d", StandardSize, d.Remaining())
	}
	seen := map[int]bool{}
	for _, c := range d.Cards() {
		if c < 1 || c > StandardSize {
			t.Fatalf("card %d out of range", c)
		}
		if seen[c] {
			t.Fatalf("card %d appears twice", c)
		}
		seen[c] = true
	}
}

func TestDrawShrinksByOne(t *testing.T) {
	d := New(3)
	for want := 2; want >= 0; want-- {
		if _, err := d.Draw(); err != nil {
			t.Fatal(err)
		}
		if d.Remaining() != want {
			t.Fatalf("expected %d remaining, got %d", want, d.Remaining())
		}
	}
	if _, err := d.Draw(); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
	d.Reset()
	if d.Remaining() != 3 {
		t.Fatalf("expected reset to refill, got %d", d.Remaining())
	}
}

func TestCardsReturnsCopy(t *testing.T) {
	d := New(5)
	cards := d.Cards()
	cards[0] = 99
	if top, _ := d.Draw(); top != 1 {
		t.Fatalf("deck mutated through Cards(): top is %d", top)
	}
}

func TestFromCards(t *testing.T) {
	tests := []struct {
		name    string
		cards   []int
		wantErr bool
	}{
		{name: "valid partial pile", cards: []int{5, 1, 52}},
		{name: "empty pile", cards: []int{}},
		{name: "duplicate card", cards: []int{5, 5}, wantErr: true},
		{name: "zero card", cards: []int{0}, wantErr: true},
		{name: "card above size", cards: []int{53}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromCards(StandardSize, tt.cards)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Remaining() != len(tt.cards) {
				t.Fatalf("expected %d cards, got %d", len(tt.cards), d.Remaining())
			}
		})
	}
}
