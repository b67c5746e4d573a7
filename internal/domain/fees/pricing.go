package fees

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skolair/backend/internal/domain/shared"
)

// Pricing is a priced instance of a fee type for an academic year, optionally
// scoped to a single class. A pricing with ClassID == nil is a global rule for
// the year; a class-scoped pricing applies in addition to the global one, not
// instead of it.
type Pricing struct {
	shared.SchoolAggregateRoot
	FeeTypeID   uuid.UUID       `json:"fee_type_id"`
	YearID      uuid.UUID       `json:"year_id"`
	ClassID     *uuid.UUID      `json:"class_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
}

// NewPricing creates a new pricing rule
func NewPricing(
	schoolID, createdBy, feeTypeID, yearID uuid.UUID,
	classID *uuid.UUID,
	amount decimal.Decimal,
	description string,
) (*Pricing, error) {
	if schoolID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SCHOOL", "School ID cannot be empty")
	}
	if feeTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FEE_TYPE", "Fee type ID cannot be empty")
	}
	if yearID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_YEAR", "Academic year ID cannot be empty")
	}
	if classID != nil && *classID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLASS", "Class ID cannot be empty when provided")
	}
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	return &Pricing{
		SchoolAggregateRoot: shared.NewSchoolAggregateRootWithCreator(schoolID, createdBy),
		FeeTypeID:           feeTypeID,
		YearID:              yearID,
		ClassID:             classID,
		Amount:              amount,
		Description:         strings.TrimSpace(description),
		IsActive:            true,
	}, nil
}

// IsGlobal reports whether the pricing applies to every class of the year
func (p *Pricing) IsGlobal() bool {
	return p.ClassID == nil
}

// AppliesToClass reports whether the pricing applies to a student enrolled in
// the given class: global pricings always apply, class-scoped ones only to
// their own class.
func (p *Pricing) AppliesToClass(classID uuid.UUID) bool {
	return p.ClassID == nil || *p.ClassID == classID
}

// Deactivate soft-deletes the pricing, preserving installments and payments
// that reference it.
func (p *Pricing) Deactivate() {
	p.IsActive = false
	p.Touch()
}
