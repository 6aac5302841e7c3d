package poker

// ScoreContext is the running state of a single scoring pass.
type ScoreContext struct {
	Chips  int
	Mult   int
	Played []Card
	Jokers []Joker
	Hand   HandType
}

// ComputeScore applies jokers to the classified hand and returns chips × mult.
// OnCardPlay jokers run for every played card in play order, in held order
// per card; AfterHandPlay jokers then run once each in held order. Passive
// jokers are skipped. The function reads nothing but its arguments.
func ComputeScore(result HandResult, played []Card, jokers []Joker) int {
	ctx := &ScoreContext{
		Chips:  result.Chips,
		Mult:   result.Mult,
		Played: played,
		Jokers: jokers,
		Hand:   result.Type,
	}

	var last Card
	for _, c := range played {
		for _, j := range jokers {
			if j.Timing() == OnCardPlay {
				j.Interact(ctx, c)
			}
		}
		last = c
	}

	for _, j := range jokers {
		if j.Timing() == AfterHandPlay {
			j.Interact(ctx, last)
		}
	}

	return ctx.Chips * ctx.Mult
}
