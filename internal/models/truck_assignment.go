package models

import "time"

// TruckAssignment is a dispatch directive linking trucks to a rake.
// Rows are immutable once created; RakeID is not checked against rake_events.
type TruckAssignment struct {
	ID        string `gorm:"primaryKey;size:36"`
	RakeID    string `gorm:"size:64;index"`
	TruckIDs  string `gorm:"column:truck_ids_csv;type:text"`
	LaneFrom  string `gorm:"size:64"`
	Reason    string `gorm:"type:text"`
	CreatedAt time.Time
}
