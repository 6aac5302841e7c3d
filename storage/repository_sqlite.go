package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luca-patrignani/joker-poker/domain/poker"
)

// SaveSlot is the table row of one save. Card and joker lists are stored as
// space separated tokens.
type SaveSlot struct {
	ID           uint   `gorm:"primaryKey"`
	Slot         string `gorm:"uniqueIndex;not null"`
	RunID        string
	Ante         int
	RoundID      string
	Target       int
	PlaysLeft    int
	DiscardsLeft int
	Score        int
	State        string
	Deck         string
	Hand         string
	Jokers       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Save(slot string, s Save) error {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return ErrInvalidSlot
	}
	row := toRow(slot, s)
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"run_id", "ante", "round_id", "target", "plays_left", "discards_left",
			"score", "state", "deck", "hand", "jokers", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save slot %q: %w", slot, err)
	}
	return nil
}

func (r *sqliteRepository) Load(slot string) (Save, error) {
	var row SaveSlot
	err := r.db.Where("slot = ?", strings.TrimSpace(slot)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Save{}, fmt.Errorf("%w: %q", ErrSlotNotFound, slot)
		}
		return Save{}, fmt.Errorf("failed to load slot %q: %w", slot, err)
	}
	return fromRow(row), nil
}

func (r *sqliteRepository) Delete(slot string) error {
	res := r.db.Where("slot = ?", strings.TrimSpace(slot)).Delete(&SaveSlot{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete slot %q: %w", slot, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %q", ErrSlotNotFound, slot)
	}
	return nil
}

func (r *sqliteRepository) List() ([]string, error) {
	var slots []string
	if err := r.db.Model(&SaveSlot{}).Order("slot").Pluck("slot", &slots).Error; err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	return slots, nil
}

func toRow(slot string, s Save) SaveSlot {
	return SaveSlot{
		Slot:         slot,
		RunID:        s.RunID,
		Ante:         s.Ante,
		RoundID:      s.Round.ID,
		Target:       s.Round.Target,
		PlaysLeft:    s.Round.PlaysLeft,
		DiscardsLeft: s.Round.DiscardsLeft,
		Score:        s.Round.Score,
		State:        string(s.Round.State),
		Deck:         strings.Join(s.Round.Deck, " "),
		Hand:         strings.Join(s.Round.Hand, " "),
		Jokers:       strings.Join(s.Round.Jokers, " "),
	}
}

func fromRow(row SaveSlot) Save {
	return Save{
		RunID:     row.RunID,
		Ante:      row.Ante,
		UpdatedAt: row.UpdatedAt,
		Round: poker.Snapshot{
			ID:           row.RoundID,
			Target:       row.Target,
			PlaysLeft:    row.PlaysLeft,
			DiscardsLeft: row.DiscardsLeft,
			Score:        row.Score,
			State:        poker.State(row.State),
			Deck:         splitTokens(row.Deck),
			Hand:         splitTokens(row.Hand),
			Jokers:       splitTokens(row.Jokers),
		},
	}
}

func splitTokens(s string) []string {
	return append([]string{}, strings.Fields(s)...)
}
