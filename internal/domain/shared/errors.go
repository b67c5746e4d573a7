package shared

// DomainError represents a domain-level error with a machine-readable code.
// Handlers map codes to HTTP statuses; services never downgrade one silently.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Caller is not permitted to perform this operation")
	ErrDuplicateCode       = NewDomainError("DUPLICATE_CODE", "A fee type with this code already exists for the school")
	ErrDuplicatePricing    = NewDomainError("DUPLICATE_PRICING", "An active pricing already exists for this fee type, year and class")
	ErrDuplicateEnrollment = NewDomainError("DUPLICATE_ENROLLMENT", "The student already has an active enrollment for this year")
	ErrInstallmentOverflow = NewDomainError("INSTALLMENT_OVERFLOW", "Installment amounts would exceed the pricing total")
	ErrInvalidAmount       = NewDomainError("INVALID_AMOUNT", "Amount must be a positive value")
	ErrInvalidMethod       = NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	ErrAlreadyCancelled    = NewDomainError("ALREADY_CANCELLED", "Payment has already been cancelled")
	ErrNoActiveEnrollment  = NewDomainError("NO_ACTIVE_ENROLLMENT", "Student has no active enrollment for this year")
)
