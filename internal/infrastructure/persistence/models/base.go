package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// SchoolAggregateModel provides common persistence fields for school-scoped
// aggregate roots. Every tenant-owned row carries school_id and the creator.
// Models whose unique indexes must include school_id declare the column
// themselves instead, so the composite index tags stay on one struct.
type SchoolAggregateModel struct {
	BaseModel
	SchoolID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
}

// FromDomainSchoolAggregateRoot populates SchoolAggregateModel from domain SchoolAggregateRoot
func (m *SchoolAggregateModel) FromDomainSchoolAggregateRoot(a shared.SchoolAggregateRoot) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.SchoolID = a.SchoolID
	m.CreatedBy = a.CreatedBy
}

// PopulateSchoolAggregateRoot populates a domain SchoolAggregateRoot from the model
func (m *SchoolAggregateModel) PopulateSchoolAggregateRoot(a *shared.SchoolAggregateRoot) {
	a.BaseEntity.ID = m.ID
	a.BaseEntity.CreatedAt = m.CreatedAt
	a.BaseEntity.UpdatedAt = m.UpdatedAt
	a.SchoolID = m.SchoolID
	a.CreatedBy = m.CreatedBy
}
