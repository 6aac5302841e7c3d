package storage

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the sqlite database at dataSourceName and makes sure
// the save table exists. Use "file::memory:" for a throwaway store.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open save store: %w", err)
	}

	if err := db.AutoMigrate(&SaveSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate save store: %w", err)
	}
	return db, nil
}
