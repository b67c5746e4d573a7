package school

import (
	"strings"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/shared"
)

// AcademicYear is one school year, e.g. "2025-2026". Its label feeds the
// receipt number year code.
type AcademicYear struct {
	shared.SchoolAggregateRoot
	Label     string `json:"label"`
	IsCurrent bool   `json:"is_current"`
}

// NewAcademicYear creates a new academic year for a school
func NewAcademicYear(schoolID, createdBy uuid.UUID, label string) (*AcademicYear, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError("INVALID_LABEL", "Academic year label cannot be empty")
	}
	if len(label) > 20 {
		return nil, shared.NewDomainError("INVALID_LABEL", "Academic year label cannot exceed 20 characters")
	}
	return &AcademicYear{
		SchoolAggregateRoot: shared.NewSchoolAggregateRootWithCreator(schoolID, createdBy),
		Label:               label,
	}, nil
}

// MarkCurrent flags this year as the school's current one
func (y *AcademicYear) MarkCurrent() {
	y.IsCurrent = true
	y.Touch()
}
