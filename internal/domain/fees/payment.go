package fees

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skolair/backend/internal/domain/shared"
)

// PaymentStatus represents the lifecycle state of a payment
type PaymentStatus string

const (
	PaymentStatusActive    PaymentStatus = "ACTIVE"    // Just created
	PaymentStatusAmended   PaymentStatus = "AMENDED"   // One or more field edits, history retained
	PaymentStatusCancelled PaymentStatus = "CANCELLED" // Terminal; excluded from every balance
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusActive, PaymentStatusAmended, PaymentStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// IsLive reports whether the payment counts toward balances
func (s PaymentStatus) IsLive() bool {
	return s == PaymentStatusActive || s == PaymentStatusAmended
}

// PaymentMethod represents how the money was received
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodMobileMoney  PaymentMethod = "MOBILE_MONEY"
	PaymentMethodCheck        PaymentMethod = "CHECK"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodMobileMoney,
		PaymentMethodCheck, PaymentMethodOther:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Payment records money received against a Pricing for a student. Once issued,
// the receipt number is immutable and never reused, even after cancellation.
type Payment struct {
	shared.SchoolAggregateRoot
	StudentID          uuid.UUID       `json:"student_id"`
	EnrollmentID       uuid.UUID       `json:"enrollment_id"`
	PricingID          uuid.UUID       `json:"pricing_id"`
	YearID             uuid.UUID       `json:"year_id"` // Denormalized from the pricing
	ReceiptNumber      string          `json:"receipt_number"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentDate        time.Time       `json:"payment_date"`
	Method             PaymentMethod   `json:"method"`
	Reference          string          `json:"reference"` // External transaction ref, optional
	Notes              string          `json:"notes"`
	Status             PaymentStatus   `json:"status"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CancelledBy        *uuid.UUID      `json:"cancelled_by,omitempty"`
	ModifiedBy         *uuid.UUID      `json:"modified_by,omitempty"`
	ModifiedAt         *time.Time      `json:"modified_at,omitempty"`
}

// NewPayment creates a new payment in the ACTIVE state. The receipt number is
// assigned by the ledger inside the insert transaction, not here.
func NewPayment(
	schoolID, createdBy, studentID, enrollmentID, pricingID, yearID uuid.UUID,
	amount decimal.Decimal,
	method PaymentMethod,
	paymentDate time.Time,
	reference, notes string,
) (*Payment, error) {
	if schoolID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SCHOOL", "School ID cannot be empty")
	}
	if studentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STUDENT", "Student ID cannot be empty")
	}
	if enrollmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ENROLLMENT", "Enrollment ID cannot be empty")
	}
	if pricingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRICING", "Pricing ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if !method.IsValid() {
		return nil, shared.ErrInvalidMethod
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	return &Payment{
		SchoolAggregateRoot: shared.NewSchoolAggregateRootWithCreator(schoolID, createdBy),
		StudentID:           studentID,
		EnrollmentID:        enrollmentID,
		PricingID:           pricingID,
		YearID:              yearID,
		Amount:              amount,
		PaymentDate:         paymentDate,
		Method:              method,
		Reference:           strings.TrimSpace(reference),
		Notes:               strings.TrimSpace(notes),
		Status:              PaymentStatusActive,
	}, nil
}

// IsCancelled reports whether the payment has reached its terminal state
func (p *Payment) IsCancelled() bool {
	return p.Status == PaymentStatusCancelled
}

// AmendmentInput carries the fields an amendment may change. Nil pointers mean
// "leave as is".
type AmendmentInput struct {
	Amount      *decimal.Decimal
	PaymentDate *time.Time
	Method      *PaymentMethod
	Reference   *string
	Notes       *string
}

// Amend applies field edits to a live payment and returns the append-only
// change record for the audit trail. Returns ALREADY_CANCELLED for terminal
// payments; an amendment that changes nothing is rejected so every log row
// carries at least one diff.
func (p *Payment) Amend(modifiedBy uuid.UUID, in AmendmentInput) (*PaymentAmendment, error) {
	if p.IsCancelled() {
		return nil, shared.ErrAlreadyCancelled
	}
	if modifiedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Modifying user ID is required")
	}

	var changes []FieldChange

	if in.Amount != nil && !in.Amount.Equal(p.Amount) {
		if !in.Amount.IsPositive() {
			return nil, shared.ErrInvalidAmount
		}
		changes = append(changes, FieldChange{Field: "amount", Old: p.Amount.String(), New: in.Amount.String()})
		p.Amount = *in.Amount
	}
	if in.PaymentDate != nil && !in.PaymentDate.Equal(p.PaymentDate) {
		if in.PaymentDate.IsZero() {
			return nil, shared.NewDomainError("INVALID_DATE", "Payment date cannot be empty")
		}
		changes = append(changes, FieldChange{Field: "payment_date", Old: p.PaymentDate.Format(time.RFC3339), New: in.PaymentDate.Format(time.RFC3339)})
		p.PaymentDate = *in.PaymentDate
	}
	if in.Method != nil && *in.Method != p.Method {
		if !in.Method.IsValid() {
			return nil, shared.ErrInvalidMethod
		}
		changes = append(changes, FieldChange{Field: "method", Old: p.Method.String(), New: in.Method.String()})
		p.Method = *in.Method
	}
	if in.Reference != nil && strings.TrimSpace(*in.Reference) != p.Reference {
		ref := strings.TrimSpace(*in.Reference)
		changes = append(changes, FieldChange{Field: "reference", Old: p.Reference, New: ref})
		p.Reference = ref
	}
	if in.Notes != nil && strings.TrimSpace(*in.Notes) != p.Notes {
		notes := strings.TrimSpace(*in.Notes)
		changes = append(changes, FieldChange{Field: "notes", Old: p.Notes, New: notes})
		p.Notes = notes
	}

	if len(changes) == 0 {
		return nil, shared.NewDomainError("NO_CHANGES", "Amendment does not change any field")
	}

	now := time.Now()
	p.Status = PaymentStatusAmended
	p.ModifiedBy = &modifiedBy
	p.ModifiedAt = &now
	p.UpdatedAt = now

	return NewPaymentAmendment(p.SchoolID, p.ID, modifiedBy, changes), nil
}

// Cancel moves the payment to its terminal state. The row is kept for audit
// and so the receipt number is never reissued. Cancelling twice is rejected
// with ALREADY_CANCELLED and leaves the row untouched.
func (p *Payment) Cancel(cancelledBy uuid.UUID, reason string) error {
	if p.IsCancelled() {
		return shared.ErrAlreadyCancelled
	}
	if cancelledBy == uuid.Nil {
		return shared.NewDomainError("INVALID_USER", "Cancelling user ID is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Cancellation reason is required")
	}

	now := time.Now()
	p.Status = PaymentStatusCancelled
	p.CancellationReason = reason
	p.CancelledAt = &now
	p.CancelledBy = &cancelledBy
	p.UpdatedAt = now
	return nil
}
