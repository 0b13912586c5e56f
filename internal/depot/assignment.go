package depot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skathpalia/urms/internal/models"
	"gorm.io/gorm"
)

// CreateAssignment inserts an immutable truck-assignment row with a generated
// ID. The rake is not checked for existence. Truck order is preserved.
func (s *Store) CreateAssignment(rakeID string, truckIDs []string, laneFrom, reason string) (*models.TruckAssignment, error) {
	if rakeID == "" {
		return nil, fmt.Errorf("depot: rake ID is required")
	}
	if len(truckIDs) == 0 {
		return nil, fmt.Errorf("depot: at least one truck ID is required")
	}

	assignment := models.TruckAssignment{
		ID:        uuid.NewString(),
		RakeID:    rakeID,
		TruckIDs:  strings.Join(truckIDs, ","),
		LaneFrom:  laneFrom,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&assignment).Error; err != nil {
		return nil, fmt.Errorf("depot: create assignment: %w", err)
	}

	_ = s.LogActivity(models.LevelInfo, "ASSIGN", fmt.Sprintf("Assigned %d trucks to %s", len(truckIDs), rakeID))

	return &assignment, nil
}

// GetAssignment retrieves an assignment by its generated ID. A missing
// assignment returns (nil, nil).
func (s *Store) GetAssignment(id string) (*models.TruckAssignment, error) {
	var assignment models.TruckAssignment
	if err := s.db.Where("id = ?", id).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("depot: get assignment %s: %w", id, err)
	}
	return &assignment, nil
}

// ListAssignments returns the newest assignments first. A limit <= 0 uses
// the default of 50.
func (s *Store) ListAssignments(limit int) ([]models.TruckAssignment, error) {
	if limit <= 0 {
		limit = defaultAssignmentLimit
	}
	var assignments []models.TruckAssignment
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("depot: list assignments: %w", err)
	}
	return assignments, nil
}

// SplitTrucks expands the stored CSV back into the ordered truck ID list.
func SplitTrucks(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	trucks := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			trucks = append(trucks, p)
		}
	}
	return trucks
}
