package models

import "time"

// RakeEvent is one railway rake (train consist) under depot management.
// The wagon list is persisted as delimited text in WagonLedger; the ledger
// package is the only place that encodes or decodes it.
type RakeEvent struct {
	RakeID         string `gorm:"primaryKey;size:64"`
	FNR            string `gorm:"size:32"`
	CreatedAt      time.Time
	CurrentStation string `gorm:"size:128"`
	ETA            *time.Time
	WagonLedger    string `gorm:"column:wagon_ledger_text;type:text"`
	Raw            string `gorm:"type:text"`
}

// TableName pins the table name; gorm would otherwise pluralize the struct name.
func (RakeEvent) TableName() string { return "rake_events" }
