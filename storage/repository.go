// Package storage persists runs in named save slots.
package storage

import (
	"errors"
	"time"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

var (
	ErrSlotNotFound = errors.New("save slot not found")
	ErrInvalidSlot  = errors.New("invalid save slot name")
)

// Save is everything needed to resume a run: where it was and the state of
// its current round.
type Save struct {
	RunID     string
	Ante      int
	Round     poker.Snapshot
	UpdatedAt time.Time
}

type Repository interface {
	// Save creates or overwrites the slot.
	Save(slot string, s Save) error
	// Load returns ErrSlotNotFound when nothing is stored under slot.
	Load(slot string) (Save, error)
	Delete(slot string) error
	// List returns slot names in alphabetical order.
	List() ([]string, error)
}
