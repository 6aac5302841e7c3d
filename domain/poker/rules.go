package poker

import (
	"fmt"
	"sort"
)

const (
	MinSelection = 1
	MaxSelection = 5
)

// checkSelection verifies that indices pick between MinSelection and
// MaxSelection distinct, occupied positions of a hand holding handLen cards.
func checkSelection(indices []int, handLen int) error {
	if len(indices) < MinSelection || len(indices) > MaxSelection {
		return fmt.Errorf("%w: select between %d and %d cards, got %d", ErrInvalidSelection, MinSelection, MaxSelection, len(indices))
	}
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= handLen {
			return fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSelection, idx, handLen)
		}
		if seen[idx] {
			return fmt.Errorf("%w: index %d selected twice", ErrInvalidSelection, idx)
		}
		seen[idx] = true
	}
	return nil
}

// CheckRoundLogic verifies that action a can be applied to r right now.
// It never mutates r.
func CheckRoundLogic(a ActionType, indices []int, r *Round) error {
	if r.state != InProgress {
		return fmt.Errorf("%w: round is %s", ErrRoundOver, r.state)
	}
	switch a {
	case ActionPlay:
		if r.playsLeft <= 0 {
			return fmt.Errorf("%w: no plays remaining", ErrRoundOver)
		}
	case ActionDiscard:
		if r.discardsLeft <= 0 {
			return ErrNoDiscardsRemaining
		}
	default:
		return fmt.Errorf("unknown action %q", a)
	}
	if err := checkSelection(indices, r.hand.Len()); err != nil {
		return err
	}
	if a == ActionDiscard && len(indices) == r.hand.Len() && r.DeckLeft() == 0 {
		return fmt.Errorf("%w: discard would empty the hand with no cards left to draw", ErrInvalidSelection)
	}
	return nil
}

func sortedDescending(indices []int) []int {
	out := make([]int, len(indices))
	copy(out, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
