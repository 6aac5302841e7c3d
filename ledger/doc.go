// Package ledger implements an append-only journal of the actions applied
// during a run.
//
// # Core Components
//
// Blockchain: an append-only log of applied plays and discards with
// SHA-256 hash chaining for tamper detection.
//
// Block: a single applied action together with the snapshot of the round
// right after it and a link to the previous block.
//
// # Usage
//
// Create a blockchain when a run starts, append a block after every
// successful action and call Verify before trusting a replayed history.
// Any edit to a recorded action or snapshot breaks the hash chain.
package ledger
