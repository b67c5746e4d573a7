package shared

import (
	"github.com/google/uuid"
)

// SchoolAggregateRoot provides common fields for aggregate roots scoped to a
// school. Every row in the system belongs to exactly one school; repositories
// filter on SchoolID for every read and write.
type SchoolAggregateRoot struct {
	BaseEntity
	SchoolID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index"`
}

// NewSchoolAggregateRoot creates a new school-scoped aggregate root
func NewSchoolAggregateRoot(schoolID uuid.UUID) SchoolAggregateRoot {
	return SchoolAggregateRoot{
		BaseEntity: NewBaseEntity(),
		SchoolID:   schoolID,
	}
}

// NewSchoolAggregateRootWithCreator creates a new school-scoped aggregate root
// stamped with the creating user
func NewSchoolAggregateRootWithCreator(schoolID, createdBy uuid.UUID) SchoolAggregateRoot {
	return SchoolAggregateRoot{
		BaseEntity: NewBaseEntity(),
		SchoolID:   schoolID,
		CreatedBy:  &createdBy,
	}
}

// SetCreatedBy sets the creator user ID
func (s *SchoolAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	s.CreatedBy = &userID
}

// BelongsTo reports whether the aggregate belongs to the given school
func (s *SchoolAggregateRoot) BelongsTo(schoolID uuid.UUID) bool {
	return s.SchoolID == schoolID
}
