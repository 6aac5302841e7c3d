package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// genesisAction is the placeholder action type of block 0.
const genesisAction poker.ActionType = "genesis"

var ErrIndexOutOfRange = errors.New("index out of range")

type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewBlockchain creates a blockchain holding only the genesis block for the
// given run. The genesis block has index 0 and previous hash "0".
func NewBlockchain(runID string) *Blockchain {
	bc := &Blockchain{
		blocks: make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Action:    poker.Action{Type: genesisAction},
		Metadata:  Metadata{RunID: runID},
	}
	genesis.Hash = calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Append records an applied action and the round snapshot taken right after
// it. The extra parameter can optionally carry free-form metadata.
func (bc *Blockchain) Append(a poker.Action, s poker.Snapshot, ante int, extra ...map[string]string) (Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Action:    a,
		Snapshot:  s,
		Metadata: Metadata{
			RunID: latest.Metadata.RunID,
			Ante:  ante,
			Extra: extraMsg,
		},
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}

	bc.blocks = append(bc.blocks, newBlock)
	return newBlock, nil
}

// GetLatest returns the most recently added block.
func (bc *Blockchain) GetLatest() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1]
}

// GetByIndex returns a copy of the block at index.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return bc.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// Actions returns the recorded actions in order, without the genesis block.
func (bc *Blockchain) Actions() []poker.Action {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]poker.Action, 0, len(bc.blocks)-1)
	for _, b := range bc.blocks[1:] {
		out = append(out, b.Action)
	}
	return out
}

// Verify checks the genesis block and then every block's index continuity,
// previous hash link and own hash.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}

	genesis := bc.blocks[0]
	if genesis.PrevHash != "0" || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	if current.Metadata.RunID != previous.Metadata.RunID {
		return fmt.Errorf("run changed from %s to %s", previous.Metadata.RunID, current.Metadata.RunID)
	}
	return nil
}

// calculateHash computes the SHA256 of a block from its index, timestamp,
// previous hash, JSON-encoded action and snapshot, run id and ante.
func calculateHash(block Block) string {
	actionBytes, _ := json.Marshal(block.Action)
	snapshotBytes, _ := json.Marshal(block.Snapshot)

	data := fmt.Sprintf("%d%d%s%s%s%s%d",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(actionBytes),
		string(snapshotBytes),
		block.Metadata.RunID,
		block.Metadata.Ante,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
