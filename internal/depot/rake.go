package depot

import (
	"errors"
	"fmt"
	"time"

	"github.com/skathpalia/urms/internal/ledger"
	"github.com/skathpalia/urms/internal/models"
	"github.com/skathpalia/urms/internal/risk"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RakeInput holds the caller-supplied fields for creating or replacing a rake.
type RakeInput struct {
	RakeID         string
	FNR            string
	CurrentStation string
	ETA            *time.Time
	Wagons         []ledger.Wagon
	Raw            string
}

// UpsertRake creates or fully replaces the rake record keyed by RakeID.
// Replacement is last-write-wins over every column, never a merge. An
// activity entry is appended afterwards as an independent write; if that
// write fails the rake record still stands.
func (s *Store) UpsertRake(in RakeInput) (*models.RakeEvent, error) {
	if in.RakeID == "" {
		return nil, fmt.Errorf("depot: rake ID is required")
	}

	event := models.RakeEvent{
		RakeID:         in.RakeID,
		FNR:            in.FNR,
		CreatedAt:      time.Now().UTC(),
		CurrentStation: in.CurrentStation,
		ETA:            in.ETA,
		WagonLedger:    ledger.Encode(in.Wagons),
		Raw:            in.Raw,
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "rake_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"fnr", "created_at", "current_station", "eta", "wagon_ledger_text", "raw",
		}),
	}).Create(&event)
	if result.Error != nil {
		return nil, fmt.Errorf("depot: upsert rake %s: %w", in.RakeID, result.Error)
	}

	_ = s.LogActivity(models.LevelInfo, "FOIS_SIM", fmt.Sprintf("Inserted/Updated rake %s", in.RakeID))

	return &event, nil
}

// GetRake retrieves a rake by ID. A missing rake returns (nil, nil), not an
// error; callers must check for absence before dereferencing.
func (s *Store) GetRake(rakeID string) (*models.RakeEvent, error) {
	var event models.RakeEvent
	if err := s.db.Where("rake_id = ?", rakeID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("depot: get rake %s: %w", rakeID, err)
	}
	return &event, nil
}

// ListRakes returns all rake records. No ordering is promised here; callers
// sort by derived pending count or risk for display.
func (s *Store) ListRakes() ([]models.RakeEvent, error) {
	var events []models.RakeEvent
	if err := s.db.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("depot: list rakes: %w", err)
	}
	return events, nil
}

// RakeSummary is a rake record with its ledger decoded and risk derived.
type RakeSummary struct {
	Event         models.RakeEvent
	Wagons        []ledger.Wagon
	Pending       int
	Unloaded      int
	Tier          risk.Tier
	ProjectedCost int
}

// Summarize decodes a rake's wagon ledger and derives its risk estimate.
func Summarize(event models.RakeEvent) RakeSummary {
	wagons := ledger.Decode(event.WagonLedger)
	pending := ledger.CountPending(wagons)
	tier, cost := risk.Estimate(pending)
	return RakeSummary{
		Event:         event,
		Wagons:        wagons,
		Pending:       pending,
		Unloaded:      ledger.CountUnloaded(wagons),
		Tier:          tier,
		ProjectedCost: cost,
	}
}
