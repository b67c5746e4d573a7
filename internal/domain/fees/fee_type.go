package fees

import (
	"strings"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/shared"
)

// FeeType is a chargeable item in a school's catalog (tuition, transport,
// canteen...). A fee type is never hard-deleted: historical pricings keep a
// foreign key into it, so deactivation only flips IsActive.
type FeeType struct {
	shared.SchoolAggregateRoot
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// NewFeeType creates a new fee type for a school
func NewFeeType(schoolID, createdBy uuid.UUID, code, name string) (*FeeType, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	name = strings.TrimSpace(name)

	if schoolID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SCHOOL", "School ID cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Fee type code cannot be empty")
	}
	if len(code) > 30 {
		return nil, shared.NewDomainError("INVALID_CODE", "Fee type code cannot exceed 30 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Fee type name cannot be empty")
	}

	return &FeeType{
		SchoolAggregateRoot: shared.NewSchoolAggregateRootWithCreator(schoolID, createdBy),
		Code:                code,
		Name:                name,
		IsActive:            true,
	}, nil
}

// Rename changes the display name
func (ft *FeeType) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Fee type name cannot be empty")
	}
	ft.Name = name
	ft.Touch()
	return nil
}

// Deactivate soft-deletes the fee type. Existing pricings and payments that
// reference it are untouched.
func (ft *FeeType) Deactivate() {
	ft.IsActive = false
	ft.Touch()
}
