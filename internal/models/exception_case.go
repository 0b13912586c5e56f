package models

import (
	"fmt"
	"strings"
	"time"
)

// CaseType classifies a reported wagon-level anomaly.
type CaseType string

const (
	CaseShortage     CaseType = "SHORTAGE"
	CaseDamage       CaseType = "DAMAGE"
	CaseMissingWagon CaseType = "MISSING_WAGON"
	CaseOther        CaseType = "OTHER"
)

// CaseTypes lists all valid case types in display order.
var CaseTypes = []CaseType{CaseShortage, CaseDamage, CaseMissingWagon, CaseOther}

// ParseCaseType validates a case type string, case-insensitively.
func ParseCaseType(s string) (CaseType, error) {
	ct := CaseType(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range CaseTypes {
		if ct == valid {
			return ct, nil
		}
	}
	return "", fmt.Errorf("models: invalid case type %q", s)
}

// ExceptionCase is a reported wagon-level anomaly. Immutable once created;
// RakeID and WagonNo are references by value only, never enforced.
type ExceptionCase struct {
	CaseID     string   `gorm:"primaryKey;size:40"`
	RakeID     string   `gorm:"size:64;index"`
	WagonNo    string   `gorm:"size:32"`
	CaseType   CaseType `gorm:"size:16"`
	ReportedBy string   `gorm:"size:64"`
	ReportedAt time.Time
	Details    string `gorm:"type:text"`
}

func (ExceptionCase) TableName() string { return "cases" }
