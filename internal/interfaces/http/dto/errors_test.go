package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"FORBIDDEN", http.StatusForbidden},
		{"UNAUTHORIZED", http.StatusUnauthorized},
		{"DUPLICATE_CODE", http.StatusConflict},
		{"DUPLICATE_PRICING", http.StatusConflict},
		{"DUPLICATE_ENROLLMENT", http.StatusConflict},
		{"INSTALLMENT_OVERFLOW", http.StatusUnprocessableEntity},
		{"ALREADY_CANCELLED", http.StatusUnprocessableEntity},
		{"NO_ACTIVE_ENROLLMENT", http.StatusUnprocessableEntity},
		{"INVALID_AMOUNT", http.StatusBadRequest},
		{"INVALID_PAYMENT_METHOD", http.StatusBadRequest},
		{"INVALID_ENROLLMENT", http.StatusBadRequest},
		{"BAD_REQUEST", http.StatusBadRequest},
		{"VALIDATION_ERROR", http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}
