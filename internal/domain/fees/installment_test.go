package fees

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/skolair/backend/internal/domain/shared"
)

func TestNewInstallment(t *testing.T) {
	due := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates installment", func(t *testing.T) {
		inst, err := NewInstallment(uuid.New(), uuid.New(), "First term", decimal.NewFromInt(200), due, 1)
		require.NoError(t, err)
		assert.Equal(t, "First term", inst.Name)
		assert.Equal(t, 1, inst.Position)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewInstallment(uuid.New(), uuid.New(), "First term", decimal.Zero, due, 1)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
	})

	t.Run("rejects missing due date", func(t *testing.T) {
		_, err := NewInstallment(uuid.New(), uuid.New(), "First term", decimal.NewFromInt(200), time.Time{}, 1)
		assert.Error(t, err)
	})
}

func TestCheckInstallmentCap(t *testing.T) {
	pricing := decimal.NewFromInt(500)

	tests := []struct {
		name        string
		existingSum decimal.Decimal
		candidates  []decimal.Decimal
		wantErr     bool
	}{
		{"first two fit", decimal.Zero, []decimal.Decimal{decimal.NewFromInt(200), decimal.NewFromInt(200)}, false},
		{"third overflows", decimal.NewFromInt(400), []decimal.Decimal{decimal.NewFromInt(200)}, true},
		{"exact total is allowed", decimal.NewFromInt(400), []decimal.Decimal{decimal.NewFromInt(100)}, false},
		{"batch overflow rejected as a whole", decimal.Zero, []decimal.Decimal{decimal.NewFromInt(300), decimal.NewFromInt(300)}, true},
		{"single over cap", decimal.Zero, []decimal.Decimal{decimal.NewFromInt(501)}, true},
		{"no candidates", decimal.NewFromInt(500), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckInstallmentCap(pricing, tt.existingSum, tt.candidates...)
			if tt.wantErr {
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "INSTALLMENT_OVERFLOW", domainErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInstallment_Update(t *testing.T) {
	due := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	inst, err := NewInstallment(uuid.New(), uuid.New(), "First term", decimal.NewFromInt(200), due, 1)
	require.NoError(t, err)

	t.Run("updates fields", func(t *testing.T) {
		newDue := due.AddDate(0, 1, 0)
		require.NoError(t, inst.Update("Term one", decimal.NewFromInt(250), newDue))
		assert.Equal(t, "Term one", inst.Name)
		assert.True(t, decimal.NewFromInt(250).Equal(inst.Amount))
		assert.Equal(t, newDue, inst.DueDate)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		err := inst.Update("Term one", decimal.NewFromInt(-1), due)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
	})
}
