package models

import "time"

// LogLevel is the severity of an activity log entry.
type LogLevel string

const (
	LevelInfo LogLevel = "INFO"
	LevelWarn LogLevel = "WARN"
)

// ActivityLogEntry is one audit trail record. Entries are appended as a side
// effect of every mutating store operation and never updated or deleted.
type ActivityLogEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"index"`
	Level     LogLevel  `gorm:"size:8"`
	Source    string    `gorm:"size:32"`
	Message   string    `gorm:"type:text"`
}

// TableName pins the table name; gorm would otherwise pluralize the struct name.
func (ActivityLogEntry) TableName() string { return "activity_log" }
