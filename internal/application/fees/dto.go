package fees

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skolair/backend/internal/domain/fees"
)

// CreateFeeTypeRequest represents a request to create a fee type
type CreateFeeTypeRequest struct {
	Code      string `json:"code" binding:"required,min=1,max=30"`
	Name      string `json:"name" binding:"required,min=1,max=200"`
	CreatedBy uuid.UUID
}

// UpdateFeeTypeRequest represents a request to rename a fee type
type UpdateFeeTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// FeeTypeResponse represents a fee type in API responses
type FeeTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"school_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToFeeTypeResponse converts a domain FeeType to FeeTypeResponse
func ToFeeTypeResponse(ft *fees.FeeType) FeeTypeResponse {
	return FeeTypeResponse{
		ID:        ft.ID,
		SchoolID:  ft.SchoolID,
		Code:      ft.Code,
		Name:      ft.Name,
		IsActive:  ft.IsActive,
		CreatedAt: ft.CreatedAt,
		UpdatedAt: ft.UpdatedAt,
	}
}

// CreatePricingRequest represents a request to price a fee type for a year
type CreatePricingRequest struct {
	FeeTypeID   uuid.UUID       `json:"fee_type_id" binding:"required"`
	YearID      uuid.UUID       `json:"year_id" binding:"required"`
	ClassID     *uuid.UUID      `json:"class_id"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
	CreatedBy   uuid.UUID
}

// PricingResponse represents a pricing rule in API responses
type PricingResponse struct {
	ID          uuid.UUID       `json:"id"`
	SchoolID    uuid.UUID       `json:"school_id"`
	FeeTypeID   uuid.UUID       `json:"fee_type_id"`
	YearID      uuid.UUID       `json:"year_id"`
	ClassID     *uuid.UUID      `json:"class_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToPricingResponse converts a domain Pricing to PricingResponse
func ToPricingResponse(p *fees.Pricing) PricingResponse {
	return PricingResponse{
		ID:          p.ID,
		SchoolID:    p.SchoolID,
		FeeTypeID:   p.FeeTypeID,
		YearID:      p.YearID,
		ClassID:     p.ClassID,
		Amount:      p.Amount,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PricingListFilter represents filter options for pricing lists
type PricingListFilter struct {
	FeeTypeID       *uuid.UUID `form:"fee_type_id"`
	YearID          *uuid.UUID `form:"year_id"`
	ClassID         *uuid.UUID `form:"class_id"`
	IncludeInactive bool       `form:"include_inactive"`
}

// InstallmentInput is one installment inside a batch definition. Position is
// optional; when omitted (or conflicting) the whole batch is numbered after
// the existing plan.
type InstallmentInput struct {
	Name     string          `json:"name" binding:"required,min=1,max=100"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	DueDate  time.Time       `json:"due_date" binding:"required"`
	Position *int            `json:"position" binding:"omitempty,min=1"`
}

// AddInstallmentsRequest defines installments for a pricing in one call
type AddInstallmentsRequest struct {
	Installments []InstallmentInput `json:"installments" binding:"required,min=1,dive"`
}

// UpdateInstallmentRequest represents a request to edit an installment
type UpdateInstallmentRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=100"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	DueDate time.Time       `json:"due_date" binding:"required"`
}

// InstallmentResponse represents an installment in API responses
type InstallmentResponse struct {
	ID        uuid.UUID       `json:"id"`
	PricingID uuid.UUID       `json:"pricing_id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   time.Time       `json:"due_date"`
	Position  int             `json:"position"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToInstallmentResponse converts a domain Installment to InstallmentResponse
func ToInstallmentResponse(i *fees.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:        i.ID,
		PricingID: i.PricingID,
		Name:      i.Name,
		Amount:    i.Amount,
		DueDate:   i.DueDate,
		Position:  i.Position,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// CreatePaymentRequest represents a request to record a payment
type CreatePaymentRequest struct {
	StudentID    uuid.UUID       `json:"student_id" binding:"required"`
	EnrollmentID uuid.UUID       `json:"enrollment_id" binding:"required"`
	PricingID    uuid.UUID       `json:"pricing_id" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Method       string          `json:"method" binding:"required,payment_method"`
	PaymentDate  time.Time       `json:"payment_date"`
	Reference    string          `json:"reference" binding:"max=100"`
	Notes        string          `json:"notes" binding:"max=1000"`
	CreatedBy    uuid.UUID
}

// UpdatePaymentRequest carries the amendable fields of a payment. Nil fields
// are left untouched.
type UpdatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *time.Time       `json:"payment_date"`
	Method      *string          `json:"method" binding:"omitempty,payment_method"`
	Reference   *string          `json:"reference" binding:"omitempty,max=100"`
	Notes       *string          `json:"notes" binding:"omitempty,max=1000"`
	ModifiedBy  uuid.UUID
}

// CancelPaymentRequest represents a request to cancel a payment
type CancelPaymentRequest struct {
	Reason      string `json:"reason" binding:"required,min=1,max=500"`
	CancelledBy uuid.UUID
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID                 uuid.UUID       `json:"id"`
	SchoolID           uuid.UUID       `json:"school_id"`
	StudentID          uuid.UUID       `json:"student_id"`
	EnrollmentID       uuid.UUID       `json:"enrollment_id"`
	PricingID          uuid.UUID       `json:"pricing_id"`
	YearID             uuid.UUID       `json:"year_id"`
	ReceiptNumber      string          `json:"receipt_number"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentDate        time.Time       `json:"payment_date"`
	Method             string          `json:"method"`
	Reference          string          `json:"reference"`
	Notes              string          `json:"notes"`
	Status             string          `json:"status"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CancelledBy        *uuid.UUID      `json:"cancelled_by,omitempty"`
	ModifiedBy         *uuid.UUID      `json:"modified_by,omitempty"`
	ModifiedAt         *time.Time      `json:"modified_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToPaymentResponse converts a domain Payment to PaymentResponse
func ToPaymentResponse(p *fees.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		SchoolID:           p.SchoolID,
		StudentID:          p.StudentID,
		EnrollmentID:       p.EnrollmentID,
		PricingID:          p.PricingID,
		YearID:             p.YearID,
		ReceiptNumber:      p.ReceiptNumber,
		Amount:             p.Amount,
		PaymentDate:        p.PaymentDate,
		Method:             p.Method.String(),
		Reference:          p.Reference,
		Notes:              p.Notes,
		Status:             p.Status.String(),
		CancellationReason: p.CancellationReason,
		CancelledAt:        p.CancelledAt,
		CancelledBy:        p.CancelledBy,
		ModifiedBy:         p.ModifiedBy,
		ModifiedAt:         p.ModifiedAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// PaymentListFilter represents filter options for payment lists
type PaymentListFilter struct {
	StudentID *uuid.UUID `form:"student_id"`
	YearID    *uuid.UUID `form:"year_id"`
	ClassID   *uuid.UUID `form:"class_id"`
	PricingID *uuid.UUID `form:"pricing_id"`
	Cancelled *bool      `form:"cancelled"`
	FromDate  *time.Time `form:"from_date" time_format:"2006-01-02"`
	ToDate    *time.Time `form:"to_date" time_format:"2006-01-02"`
	SortBy    string     `form:"sort_by"`
	SortOrder string     `form:"sort_order"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AmendmentResponse represents one audit record of a payment edit
type AmendmentResponse struct {
	ID        uuid.UUID          `json:"id"`
	PaymentID uuid.UUID          `json:"payment_id"`
	Changes   []fees.FieldChange `json:"changes"`
	EditedBy  uuid.UUID          `json:"edited_by"`
	EditedAt  time.Time          `json:"edited_at"`
}

// ToAmendmentResponse converts a domain PaymentAmendment to AmendmentResponse
func ToAmendmentResponse(a *fees.PaymentAmendment) AmendmentResponse {
	return AmendmentResponse{
		ID:        a.ID,
		PaymentID: a.PaymentID,
		Changes:   a.Changes,
		EditedBy:  a.EditedBy,
		EditedAt:  a.EditedAt,
	}
}

// BalanceResult is a student's position against one pricing, computed on
// demand from the live ledger rows. Balance may be negative (overpayment).
type BalanceResult struct {
	StudentID    uuid.UUID       `json:"student_id"`
	PricingID    uuid.UUID       `json:"pricing_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Balance      decimal.Decimal `json:"balance"`
	PaymentCount int64           `json:"payment_count"`
}

// PricingBalance is one line of a student's year position
type PricingBalance struct {
	PricingID    uuid.UUID       `json:"pricing_id"`
	FeeTypeID    uuid.UUID       `json:"fee_type_id"`
	FeeTypeName  string          `json:"fee_type_name"`
	Description  string          `json:"description"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Balance      decimal.Decimal `json:"balance"`
	PaymentCount int64           `json:"payment_count"`
}

// StudentYearBalance aggregates a student's position across every pricing
// applicable to their enrollment for a year.
type StudentYearBalance struct {
	StudentID uuid.UUID        `json:"student_id"`
	YearID    uuid.UUID        `json:"year_id"`
	ClassID   uuid.UUID        `json:"class_id"`
	Lines     []PricingBalance `json:"lines"`
	TotalDue  decimal.Decimal  `json:"total_due"`
	TotalPaid decimal.Decimal  `json:"total_paid"`
	Balance   decimal.Decimal  `json:"balance"`
}
