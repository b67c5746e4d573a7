package school

import (
	"strings"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/shared"
)

// SchoolClass is a class/grade group students enroll into. Class-scoped
// pricings reference it.
type SchoolClass struct {
	shared.SchoolAggregateRoot
	Name  string `json:"name"`
	Level string `json:"level"`
}

// NewSchoolClass creates a new class for a school
func NewSchoolClass(schoolID, createdBy uuid.UUID, name, level string) (*SchoolClass, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Class name cannot be empty")
	}
	return &SchoolClass{
		SchoolAggregateRoot: shared.NewSchoolAggregateRootWithCreator(schoolID, createdBy),
		Name:                name,
		Level:               strings.TrimSpace(level),
	}, nil
}
