package main

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// parseIndices reads a selection typed by the player, such as "1, 3 5".
// Positions are shown starting at 1 and returned starting at 0.
func parseIndices(input string, handLen int) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no cards selected")
	}
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		var pos int
		if _, err := fmt.Sscanf(f, "%d", &pos); err != nil || fmt.Sprint(pos) != f {
			return nil, fmt.Errorf("%q is not a card position", f)
		}
		if pos < 1 || pos > handLen {
			return nil, fmt.Errorf("position %d is outside 1..%d", pos, handLen)
		}
		indices = append(indices, pos-1)
	}
	return indices, nil
}

// offerJokers picks up to n jokers the player does not hold yet. The offer
// rotates with the ante so every shop shows different kinds.
func offerJokers(held []poker.Joker, ante, n int) []poker.Joker {
	owned := make(map[poker.JokerKind]bool, len(held))
	for _, j := range held {
		owned[j.Kind] = true
	}
	kinds := poker.JokerKinds()
	offer := make([]poker.Joker, 0, n)
	for i := 0; i < len(kinds) && len(offer) < n; i++ {
		k := kinds[(ante*n+i)%len(kinds)]
		if !owned[k] {
			offer = append(offer, poker.Joker{Kind: k})
		}
	}
	return offer
}
