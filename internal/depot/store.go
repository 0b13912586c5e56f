// Package depot persists and retrieves the four depot record types: rake
// events, truck assignments, exception cases, and the activity log.
//
// Cross-entity links are by identifier value only; nothing here enforces
// referential integrity, and each operation is an independent atomic write.
package depot

import (
	"fmt"
	"time"

	"github.com/skathpalia/urms/internal/models"
	"gorm.io/gorm"
)

// Default read limits for list operations.
const (
	defaultAssignmentLimit = 50
	defaultCaseLimit       = 100
	defaultActivityLimit   = 100
)

// Store wraps the embedded relational store behind per-entity operations.
// Every method is self-contained and safe to call repeatedly; no state is
// held between calls beyond the connection pool inside gorm.DB.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open GORM connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying connection for read-only dashboard queries.
func (s *Store) DB() *gorm.DB { return s.db }

// LogActivity appends an entry to the audit trail.
func (s *Store) LogActivity(level models.LogLevel, source, message string) error {
	entry := models.ActivityLogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Source:    source,
		Message:   message,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("depot: log activity: %w", err)
	}
	return nil
}

// RecentActivity returns the newest activity entries, newest first.
// A limit <= 0 uses the default of 100.
func (s *Store) RecentActivity(limit int) ([]models.ActivityLogEntry, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	var entries []models.ActivityLogEntry
	if err := s.db.Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("depot: list activity: %w", err)
	}
	return entries, nil
}
