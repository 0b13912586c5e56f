package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a GORM connection to the embedded SQLite store at path.
// The file is created on first use.
func Connect(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("db: path is required")
	}
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", path, err)
	}
	return gormDB, nil
}
