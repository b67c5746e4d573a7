package fees

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skolair/backend/internal/domain/shared"
)

// Installment is a scheduled partial amount of a Pricing. Installments are
// ordered by Position, unique per pricing, and their amounts may never sum to
// more than the pricing total.
type Installment struct {
	shared.BaseEntity
	PricingID uuid.UUID       `json:"pricing_id"`
	SchoolID  uuid.UUID       `json:"school_id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   time.Time       `json:"due_date"`
	Position  int             `json:"position"`
}

// NewInstallment creates a new installment for a pricing. Position 0 means
// "assign for me": the service places it after the existing ones.
func NewInstallment(schoolID, pricingID uuid.UUID, name string, amount decimal.Decimal, dueDate time.Time, position int) (*Installment, error) {
	name = strings.TrimSpace(name)
	if pricingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRICING", "Pricing ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Installment name cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Installment due date is required")
	}
	if position < 0 {
		return nil, shared.NewDomainError("INVALID_POSITION", "Installment position cannot be negative")
	}

	return &Installment{
		BaseEntity: shared.NewBaseEntity(),
		PricingID:  pricingID,
		SchoolID:   schoolID,
		Name:       name,
		Amount:     amount,
		DueDate:    dueDate,
		Position:   position,
	}, nil
}

// Update changes the mutable fields of an installment
func (i *Installment) Update(name string, amount decimal.Decimal, dueDate time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Installment name cannot be empty")
	}
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	if dueDate.IsZero() {
		return shared.NewDomainError("INVALID_DUE_DATE", "Installment due date is required")
	}
	i.Name = name
	i.Amount = amount
	i.DueDate = dueDate
	i.Touch()
	return nil
}

// CheckInstallmentCap enforces the plan invariant: the sum of the existing
// installments (excluding any row being replaced) plus the candidate amounts
// must not exceed the pricing total. Returns INSTALLMENT_OVERFLOW otherwise.
func CheckInstallmentCap(pricingAmount, existingSum decimal.Decimal, candidates ...decimal.Decimal) error {
	total := existingSum
	for _, c := range candidates {
		total = total.Add(c)
	}
	if total.GreaterThan(pricingAmount) {
		return shared.ErrInstallmentOverflow
	}
	return nil
}
