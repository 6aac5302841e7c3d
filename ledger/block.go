package ledger

import "github.com/luca-patrignani/joker-poker/domain/poker"

// Block records one applied action and the round state it produced.
type Block struct {
	Index     int            `json:"index"`
	Timestamp int64          `json:"timestamp"`
	PrevHash  string         `json:"prev_hash"`
	Hash      string         `json:"hash"`
	Action    poker.Action   `json:"action"`
	Snapshot  poker.Snapshot `json:"snapshot"`
	Metadata  Metadata       `json:"metadata"`
}

type Metadata struct {
	RunID string            `json:"run_id"`
	Ante  int               `json:"ante"`
	Extra map[string]string `json:"extra,omitempty"`
}
