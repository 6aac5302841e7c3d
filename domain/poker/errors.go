package poker

import "errors"

var (
	ErrInvalidSelection       = errors.New("invalid card selection")
	ErrNoDiscardsRemaining    = errors.New("no discards remaining")
	ErrCapacityExceeded       = errors.New("capacity exceeded")
	ErrInvalidRoundParameters = errors.New("invalid round parameters")
	ErrUnknownIdentifier      = errors.New("unknown identifier")
	ErrRoundOver              = errors.New("round is over")
)
