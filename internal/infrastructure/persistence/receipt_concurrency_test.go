package persistence

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/infrastructure/persistence/models"
)

// newSQLiteDB opens a file-backed sqlite database restricted to a single
// connection so concurrent transactions serialize instead of hitting
// SQLITE_BUSY.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "receipts.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.ReceiptCounterModel{},
		&models.PaymentModel{},
		&models.FeeTypeModel{},
		&models.AcademicYearModel{},
	))
	return db
}

// TestReceiptNumber_ConcurrentAllocation drives N concurrent payment creations
// for the same school and year and verifies every receipt number comes out
// unique and gap-free.
func TestReceiptNumber_ConcurrentAllocation(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormPaymentRepository(db)

	schoolID := uuid.New()
	yearID := uuid.New()
	const n = 20

	var wg sync.WaitGroup
	results := make(chan string, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payment, err := fees.NewPayment(
				schoolID, uuid.New(), uuid.New(), uuid.New(), uuid.New(), yearID,
				decimal.NewFromInt(100),
				fees.PaymentMethodCash,
				time.Now(),
				"", "",
			)
			if err != nil {
				errs <- err
				return
			}
			if err := repo.CreateWithReceiptNumber(context.Background(), payment, "2025-2026"); err != nil {
				errs <- err
				return
			}
			results <- payment.ReceiptNumber
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}

	seen := make(map[string]bool, n)
	for receipt := range results {
		assert.False(t, seen[receipt], "duplicate receipt number %s", receipt)
		seen[receipt] = true
	}
	require.Len(t, seen, n)

	// Sequence must be gap-free from 0001 to n.
	for i := 1; i <= n; i++ {
		expected := fmt.Sprintf("REC-2526-%04d", i)
		assert.True(t, seen[expected], "missing receipt number %s", expected)
	}

	var counter models.ReceiptCounterModel
	require.NoError(t, db.First(&counter, "school_id = ? AND year_id = ?", schoolID, yearID).Error)
	assert.Equal(t, int64(n), counter.Counter)
}

// TestReceiptNumber_SeparateSequences verifies that different school and year
// pairs each start their own sequence at 1.
func TestReceiptNumber_SeparateSequences(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewGormPaymentRepository(db)

	schoolA := uuid.New()
	schoolB := uuid.New()
	yearID := uuid.New()

	createPayment := func(schoolID uuid.UUID, label string) string {
		payment, err := fees.NewPayment(
			schoolID, uuid.New(), uuid.New(), uuid.New(), uuid.New(), yearID,
			decimal.NewFromInt(100),
			fees.PaymentMethodCash,
			time.Now(),
			"", "",
		)
		require.NoError(t, err)
		require.NoError(t, repo.CreateWithReceiptNumber(context.Background(), payment, label))
		return payment.ReceiptNumber
	}

	assert.Equal(t, "REC-2526-0001", createPayment(schoolA, "2025-2026"))
	assert.Equal(t, "REC-2526-0002", createPayment(schoolA, "2025-2026"))
	assert.Equal(t, "REC-2526-0001", createPayment(schoolB, "2025-2026"))
}
