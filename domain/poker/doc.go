// Package poker implements the rules core of a single-player joker-poker
// card battler: hand classification, the joker scoring pipeline and the round
// state machine that ties a deck, a bounded holding hand and the held jokers
// together.
//
// # Core Types
//
// Card: an immutable playing card with suit and rank (ace high).
//
// HoldingHand: the bounded set of cards the player can play or discard.
//
// Joker: a named modifier with a timing (OnCardPlay, AfterHandPlay, Passive).
// Jokers is the bounded, ordered collection the player holds.
//
// Round: a target score, a play budget and a discard budget. It ends Won when
// the accumulated score reaches the target and Lost when plays run out or
// nothing is left to play.
//
// # Scoring
//
// Classify maps the played cards to a HandResult (pattern, chips, mult).
// ComputeScore starts from that pair, applies every OnCardPlay joker to each
// played card in order, then every AfterHandPlay joker once, and returns
// chips × mult.
//
// # Persistence
//
// Round.Snapshot and Restore convert a round to and from primitive fields
// (counters plus card and joker tokens); the package does no file I/O.
package poker
