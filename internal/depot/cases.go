package depot

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skathpalia/urms/internal/models"
	"gorm.io/gorm"
)

// casePrefix gives case IDs a human-readable handle: CASE-xxxxxxxx.
const casePrefix = "CASE-"

// CaseInput holds the fields for reporting a wagon-level anomaly.
type CaseInput struct {
	RakeID     string
	WagonNo    string
	Type       models.CaseType
	ReportedBy string
	Details    string
}

// CreateCase inserts an immutable exception-case row with a generated
// CASE-xxxxxxxx identifier. Neither the rake nor the wagon is checked for
// existence.
func (s *Store) CreateCase(in CaseInput) (*models.ExceptionCase, error) {
	if in.RakeID == "" {
		return nil, fmt.Errorf("depot: rake ID is required")
	}
	if _, err := models.ParseCaseType(string(in.Type)); err != nil {
		return nil, err
	}

	exc := models.ExceptionCase{
		CaseID:     casePrefix + uuid.NewString()[:8],
		RakeID:     in.RakeID,
		WagonNo:    in.WagonNo,
		CaseType:   in.Type,
		ReportedBy: in.ReportedBy,
		ReportedAt: time.Now().UTC(),
		Details:    in.Details,
	}
	if err := s.db.Create(&exc).Error; err != nil {
		return nil, fmt.Errorf("depot: create case: %w", err)
	}

	_ = s.LogActivity(models.LevelWarn, "CASE",
		fmt.Sprintf("%s for %s:%s by %s", in.Type, in.RakeID, in.WagonNo, in.ReportedBy))

	return &exc, nil
}

// GetCase retrieves a case by its generated ID. A missing case returns
// (nil, nil).
func (s *Store) GetCase(caseID string) (*models.ExceptionCase, error) {
	var exc models.ExceptionCase
	if err := s.db.Where("case_id = ?", caseID).First(&exc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("depot: get case %s: %w", caseID, err)
	}
	return &exc, nil
}

// ListCases returns the newest cases first. A limit <= 0 uses the default
// of 100.
func (s *Store) ListCases(limit int) ([]models.ExceptionCase, error) {
	if limit <= 0 {
		limit = defaultCaseLimit
	}
	var cases []models.ExceptionCase
	if err := s.db.Order("reported_at DESC").Limit(limit).Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("depot: list cases: %w", err)
	}
	return cases, nil
}
