package fees

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeTypeRepository persists fee types
type FeeTypeRepository interface {
	FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*FeeType, error)
	FindAllForSchool(ctx context.Context, schoolID uuid.UUID, includeInactive bool) ([]FeeType, error)
	ExistsByCode(ctx context.Context, schoolID uuid.UUID, code string) (bool, error)
	Save(ctx context.Context, feeType *FeeType) error
}

// PricingFilter narrows pricing list queries
type PricingFilter struct {
	FeeTypeID       *uuid.UUID
	YearID          *uuid.UUID
	ClassID         *uuid.UUID
	IncludeInactive bool
}

// PricingRepository persists pricing rules
type PricingRepository interface {
	FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*Pricing, error)
	FindAllForSchool(ctx context.Context, schoolID uuid.UUID, filter PricingFilter) ([]Pricing, error)
	// FindApplicable returns the active pricings a student enrolled in classID
	// is subject to for a year: the global ones plus the class-scoped ones.
	FindApplicable(ctx context.Context, schoolID, yearID, classID uuid.UUID) ([]Pricing, error)
	// ExistsActive reports whether an active pricing already exists for the
	// exact (feeTypeID, yearID, classID) tuple.
	ExistsActive(ctx context.Context, schoolID, feeTypeID, yearID uuid.UUID, classID *uuid.UUID) (bool, error)
	Save(ctx context.Context, pricing *Pricing) error
}

// InstallmentRepository persists installment plans
type InstallmentRepository interface {
	FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*Installment, error)
	FindByPricing(ctx context.Context, schoolID, pricingID uuid.UUID) ([]Installment, error)
	// SumByPricing returns the amount total over a pricing's installments,
	// excluding excludeID when non-nil (the row being replaced by an update).
	SumByPricing(ctx context.Context, schoolID, pricingID uuid.UUID, excludeID *uuid.UUID) (decimal.Decimal, error)
	SaveBatch(ctx context.Context, installments []*Installment) error
	Save(ctx context.Context, installment *Installment) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

// PaymentFilter narrows payment list queries
type PaymentFilter struct {
	StudentID *uuid.UUID
	YearID    *uuid.UUID
	ClassID   *uuid.UUID
	PricingID *uuid.UUID
	Cancelled *bool
	FromDate  *time.Time
	ToDate    *time.Time
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// PaymentRepository persists the payment ledger and its amendment log
type PaymentRepository interface {
	// CreateWithReceiptNumber inserts the payment and allocates its receipt
	// number in one transaction: the (school, year) counter upsert-increment
	// and the row insert commit together or not at all.
	CreateWithReceiptNumber(ctx context.Context, payment *Payment, yearLabel string) error
	// SaveWithAmendment persists an amended payment and appends its audit
	// record in one transaction.
	SaveWithAmendment(ctx context.Context, payment *Payment, amendment *PaymentAmendment) error
	Save(ctx context.Context, payment *Payment) error
	FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*Payment, error)
	FindAllForSchool(ctx context.Context, schoolID uuid.UUID, filter PaymentFilter) ([]Payment, error)
	CountForSchool(ctx context.Context, schoolID uuid.UUID, filter PaymentFilter) (int64, error)
	// SumLive aggregates the non-cancelled amounts a student has paid against
	// a pricing. Balances re-aggregate on every call; nothing is cached.
	SumLive(ctx context.Context, schoolID, studentID, pricingID uuid.UUID) (decimal.Decimal, error)
	CountLive(ctx context.Context, schoolID, studentID, pricingID uuid.UUID) (int64, error)
	FindAmendments(ctx context.Context, schoolID, paymentID uuid.UUID) ([]PaymentAmendment, error)
}
