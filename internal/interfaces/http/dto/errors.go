package dto

import (
	"net/http"
	"strings"
)

// Transport-level error codes
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Conflicts with existing state map to 409 and broken business rules to 422.
var errorCodeHTTPStatus = map[string]int{
	"NOT_FOUND": http.StatusNotFound,

	ErrCodeUnauthorized: http.StatusUnauthorized,
	"FORBIDDEN":         http.StatusForbidden,

	"DUPLICATE_CODE":       http.StatusConflict,
	"DUPLICATE_PRICING":    http.StatusConflict,
	"DUPLICATE_ENROLLMENT": http.StatusConflict,

	"INSTALLMENT_OVERFLOW": http.StatusUnprocessableEntity,
	"ALREADY_CANCELLED":    http.StatusUnprocessableEntity,
	"NO_ACTIVE_ENROLLMENT": http.StatusUnprocessableEntity,

	"NO_CHANGES":      http.StatusBadRequest,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code. Every
// INVALID_* validation code maps to 400; unknown codes default to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
