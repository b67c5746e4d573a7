package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skolair/backend/internal/domain/fees"
)

// FeeTypeModel is the persistence model for the FeeType aggregate root.
// SchoolID is declared on the model itself, not via SchoolAggregateModel, so
// it can lead the composite unique index that scopes codes per school.
type FeeTypeModel struct {
	BaseModel
	SchoolID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_fee_type_school_code,priority:1"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	Code      string     `gorm:"type:varchar(30);not null;uniqueIndex:idx_fee_type_school_code,priority:2"`
	Name      string     `gorm:"type:varchar(200);not null"`
	IsActive  bool       `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (FeeTypeModel) TableName() string {
	return "fee_types"
}

// ToDomain converts the persistence model to a domain FeeType entity.
func (m *FeeTypeModel) ToDomain() *fees.FeeType {
	ft := &fees.FeeType{
		Code:     m.Code,
		Name:     m.Name,
		IsActive: m.IsActive,
	}
	ft.BaseEntity = m.BaseModel.ToDomain()
	ft.SchoolID = m.SchoolID
	ft.CreatedBy = m.CreatedBy
	return ft
}

// FromDomain populates the persistence model from a domain FeeType entity.
func (m *FeeTypeModel) FromDomain(ft *fees.FeeType) {
	m.FromDomainBaseEntity(ft.BaseEntity)
	m.SchoolID = ft.SchoolID
	m.CreatedBy = ft.CreatedBy
	m.Code = ft.Code
	m.Name = ft.Name
	m.IsActive = ft.IsActive
}

// FeeTypeModelFromDomain creates a new persistence model from a domain FeeType.
func FeeTypeModelFromDomain(ft *fees.FeeType) *FeeTypeModel {
	m := &FeeTypeModel{}
	m.FromDomain(ft)
	return m
}

// PricingModel is the persistence model for the Pricing aggregate root.
// The partial unique index keeping one active pricing per (school, fee type,
// year, class) tuple lives in the SQL migrations; GORM tags cannot express it.
type PricingModel struct {
	SchoolAggregateModel
	FeeTypeID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	YearID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClassID     *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"type:varchar(500)"`
	IsActive    bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (PricingModel) TableName() string {
	return "pricings"
}

// ToDomain converts the persistence model to a domain Pricing entity.
func (m *PricingModel) ToDomain() *fees.Pricing {
	p := &fees.Pricing{
		FeeTypeID:   m.FeeTypeID,
		YearID:      m.YearID,
		ClassID:     m.ClassID,
		Amount:      m.Amount,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
	m.PopulateSchoolAggregateRoot(&p.SchoolAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain Pricing entity.
func (m *PricingModel) FromDomain(p *fees.Pricing) {
	m.FromDomainSchoolAggregateRoot(p.SchoolAggregateRoot)
	m.FeeTypeID = p.FeeTypeID
	m.YearID = p.YearID
	m.ClassID = p.ClassID
	m.Amount = p.Amount
	m.Description = p.Description
	m.IsActive = p.IsActive
}

// PricingModelFromDomain creates a new persistence model from a domain Pricing.
func PricingModelFromDomain(p *fees.Pricing) *PricingModel {
	m := &PricingModel{}
	m.FromDomain(p)
	return m
}

// InstallmentModel is the persistence model for installments.
type InstallmentModel struct {
	BaseModel
	PricingID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_installment_pricing_position,priority:1"`
	SchoolID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DueDate   time.Time       `gorm:"not null"`
	Position  int             `gorm:"not null;uniqueIndex:idx_installment_pricing_position,priority:2"`
}

// TableName returns the table name for GORM
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToDomain converts the persistence model to a domain Installment entity.
func (m *InstallmentModel) ToDomain() *fees.Installment {
	return &fees.Installment{
		BaseEntity: m.BaseModel.ToDomain(),
		PricingID:  m.PricingID,
		SchoolID:   m.SchoolID,
		Name:       m.Name,
		Amount:     m.Amount,
		DueDate:    m.DueDate,
		Position:   m.Position,
	}
}

// FromDomain populates the persistence model from a domain Installment entity.
func (m *InstallmentModel) FromDomain(i *fees.Installment) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.PricingID = i.PricingID
	m.SchoolID = i.SchoolID
	m.Name = i.Name
	m.Amount = i.Amount
	m.DueDate = i.DueDate
	m.Position = i.Position
}

// InstallmentModelFromDomain creates a new persistence model from a domain Installment.
func InstallmentModelFromDomain(i *fees.Installment) *InstallmentModel {
	m := &InstallmentModel{}
	m.FromDomain(i)
	return m
}

// PaymentModel is the persistence model for the Payment aggregate root.
// SchoolID is declared on the model itself so it can lead the composite
// unique index that scopes receipt numbers per school.
type PaymentModel struct {
	BaseModel
	SchoolID           uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_payment_school_receipt,priority:1"`
	CreatedBy          *uuid.UUID         `gorm:"type:uuid"`
	StudentID          uuid.UUID          `gorm:"type:uuid;not null;index"`
	EnrollmentID       uuid.UUID          `gorm:"type:uuid;not null;index"`
	PricingID          uuid.UUID          `gorm:"type:uuid;not null;index"`
	YearID             uuid.UUID          `gorm:"type:uuid;not null;index"`
	ReceiptNumber      string             `gorm:"type:varchar(30);not null;uniqueIndex:idx_payment_school_receipt,priority:2"`
	Amount             decimal.Decimal    `gorm:"type:decimal(18,2);not null"`
	PaymentDate        time.Time          `gorm:"not null;index"`
	Method             fees.PaymentMethod `gorm:"type:varchar(20);not null"`
	Reference          string             `gorm:"type:varchar(100)"`
	Notes              string             `gorm:"type:text"`
	Status             fees.PaymentStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	CancellationReason string             `gorm:"type:varchar(500)"`
	CancelledAt        *time.Time
	CancelledBy        *uuid.UUID `gorm:"type:uuid"`
	ModifiedBy         *uuid.UUID `gorm:"type:uuid"`
	ModifiedAt         *time.Time
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *fees.Payment {
	p := &fees.Payment{
		StudentID:          m.StudentID,
		EnrollmentID:       m.EnrollmentID,
		PricingID:          m.PricingID,
		YearID:             m.YearID,
		ReceiptNumber:      m.ReceiptNumber,
		Amount:             m.Amount,
		PaymentDate:        m.PaymentDate,
		Method:             m.Method,
		Reference:          m.Reference,
		Notes:              m.Notes,
		Status:             m.Status,
		CancellationReason: m.CancellationReason,
		CancelledAt:        m.CancelledAt,
		CancelledBy:        m.CancelledBy,
		ModifiedBy:         m.ModifiedBy,
		ModifiedAt:         m.ModifiedAt,
	}
	p.BaseEntity = m.BaseModel.ToDomain()
	p.SchoolID = m.SchoolID
	p.CreatedBy = m.CreatedBy
	return p
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *fees.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.SchoolID = p.SchoolID
	m.CreatedBy = p.CreatedBy
	m.StudentID = p.StudentID
	m.EnrollmentID = p.EnrollmentID
	m.PricingID = p.PricingID
	m.YearID = p.YearID
	m.ReceiptNumber = p.ReceiptNumber
	m.Amount = p.Amount
	m.PaymentDate = p.PaymentDate
	m.Method = p.Method
	m.Reference = p.Reference
	m.Notes = p.Notes
	m.Status = p.Status
	m.CancellationReason = p.CancellationReason
	m.CancelledAt = p.CancelledAt
	m.CancelledBy = p.CancelledBy
	m.ModifiedBy = p.ModifiedBy
	m.ModifiedAt = p.ModifiedAt
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *fees.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// PaymentAmendmentModel is the persistence model for the append-only payment
// audit log.
type PaymentAmendmentModel struct {
	BaseModel
	SchoolID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	PaymentID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Changes   fees.FieldChanges `gorm:"type:jsonb;not null;default:'[]'"`
	EditedBy  uuid.UUID         `gorm:"type:uuid;not null"`
	EditedAt  time.Time         `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PaymentAmendmentModel) TableName() string {
	return "payment_amendments"
}

// ToDomain converts the persistence model to a domain PaymentAmendment entity.
func (m *PaymentAmendmentModel) ToDomain() *fees.PaymentAmendment {
	return &fees.PaymentAmendment{
		BaseEntity: m.BaseModel.ToDomain(),
		SchoolID:   m.SchoolID,
		PaymentID:  m.PaymentID,
		Changes:    m.Changes,
		EditedBy:   m.EditedBy,
		EditedAt:   m.EditedAt,
	}
}

// FromDomain populates the persistence model from a domain PaymentAmendment entity.
func (m *PaymentAmendmentModel) FromDomain(a *fees.PaymentAmendment) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.SchoolID = a.SchoolID
	m.PaymentID = a.PaymentID
	m.Changes = a.Changes
	m.EditedBy = a.EditedBy
	m.EditedAt = a.EditedAt
}

// PaymentAmendmentModelFromDomain creates a new persistence model from a domain PaymentAmendment.
func PaymentAmendmentModelFromDomain(a *fees.PaymentAmendment) *PaymentAmendmentModel {
	m := &PaymentAmendmentModel{}
	m.FromDomain(a)
	return m
}

// ReceiptCounterModel is the persistence model for per-school, per-year
// receipt sequences. The unique (school_id, year_id) index is what the
// allocation upsert conflicts on.
type ReceiptCounterModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	SchoolID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_receipt_counter_school_year,priority:1"`
	YearID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_receipt_counter_school_year,priority:2"`
	Counter   int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReceiptCounterModel) TableName() string {
	return "receipt_counters"
}

// ToDomain converts the persistence model to a domain ReceiptCounter.
func (m *ReceiptCounterModel) ToDomain() *fees.ReceiptCounter {
	return &fees.ReceiptCounter{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		YearID:    m.YearID,
		Counter:   m.Counter,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
