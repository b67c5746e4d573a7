package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skolair/backend/internal/domain/fees"
)

// newMockPaymentRepository creates a GormPaymentRepository with a mocked SQL connection
func newMockPaymentRepository(t *testing.T) (*GormPaymentRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormPaymentRepository(gormDB), mock, mockDB
}

func newDomainPayment(t *testing.T, schoolID uuid.UUID) *fees.Payment {
	t.Helper()
	payment, err := fees.NewPayment(
		schoolID, uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		decimal.NewFromInt(250),
		fees.PaymentMethodCash,
		time.Now(),
		"", "",
	)
	require.NoError(t, err)
	return payment
}

func TestGormPaymentRepository_CreateWithReceiptNumber(t *testing.T) {
	t.Run("allocates counter and inserts payment in one transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		payment := newDomainPayment(t, uuid.New())

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO receipt_counters`).
			WillReturnRows(sqlmock.NewRows([]string{"counter"}).AddRow(int64(7)))
		mock.ExpectExec(`INSERT INTO "payments"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithReceiptNumber(context.Background(), payment, "2025-2026")

		require.NoError(t, err)
		assert.Equal(t, "REC-2526-0007", payment.ReceiptNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back counter allocation when insert fails", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		payment := newDomainPayment(t, uuid.New())

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO receipt_counters`).
			WillReturnRows(sqlmock.NewRows([]string{"counter"}).AddRow(int64(1)))
		mock.ExpectExec(`INSERT INTO "payments"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.CreateWithReceiptNumber(context.Background(), payment, "2025-2026")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_SaveWithAmendment(t *testing.T) {
	t.Run("saves payment and amendment atomically", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		schoolID := uuid.New()
		payment := newDomainPayment(t, schoolID)
		payment.ReceiptNumber = "REC-2526-0001"
		amendment := fees.NewPaymentAmendment(schoolID, payment.ID, uuid.New(), []fees.FieldChange{
			{Field: "amount", Old: "250", New: "300"},
		})

		// The payment carries its ID already, so GORM updates it in place
		// before inserting the audit row.
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "payments"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "payment_amendments"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SaveWithAmendment(context.Background(), payment, amendment)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_FindByIDForSchool(t *testing.T) {
	t.Run("finds payment within school", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()
		schoolID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "school_id", "receipt_number", "amount", "method", "status"}).
			AddRow(paymentID, schoolID, "REC-2526-0001", decimal.NewFromInt(250), "CASH", "ACTIVE")

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE id = \$1 AND school_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(paymentID, schoolID, 1).
			WillReturnRows(rows)

		payment, err := repo.FindByIDForSchool(context.Background(), schoolID, paymentID)

		require.NoError(t, err)
		require.NotNil(t, payment)
		assert.Equal(t, "REC-2526-0001", payment.ReceiptNumber)
		assert.Equal(t, fees.PaymentStatusActive, payment.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns nil for payment belonging to another school", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "payments"`).
			WillReturnError(gorm.ErrRecordNotFound)

		payment, err := repo.FindByIDForSchool(context.Background(), uuid.New(), uuid.New())

		require.NoError(t, err)
		assert.Nil(t, payment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_SumLive(t *testing.T) {
	t.Run("sums non-cancelled payments", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT SUM\(amount\) FROM "payments"`).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("550.00"))

		sum, err := repo.SumLive(context.Background(), uuid.New(), uuid.New(), uuid.New())

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(550).Equal(sum))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns zero when no payments exist", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT SUM\(amount\) FROM "payments"`).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))

		sum, err := repo.SumLive(context.Background(), uuid.New(), uuid.New(), uuid.New())

		require.NoError(t, err)
		assert.True(t, sum.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_FindAmendments(t *testing.T) {
	t.Run("returns audit log newest first", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		schoolID := uuid.New()
		paymentID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "school_id", "payment_id", "changes", "edited_by", "edited_at"}).
			AddRow(uuid.New(), schoolID, paymentID, []byte(`[{"field":"amount","old":"250","new":"300"}]`), uuid.New(), time.Now())

		mock.ExpectQuery(`SELECT \* FROM "payment_amendments" WHERE school_id = \$1 AND payment_id = \$2 ORDER BY edited_at desc`).
			WithArgs(schoolID, paymentID).
			WillReturnRows(rows)

		amendments, err := repo.FindAmendments(context.Background(), schoolID, paymentID)

		require.NoError(t, err)
		require.Len(t, amendments, 1)
		require.Len(t, amendments[0].Changes, 1)
		assert.Equal(t, "amount", amendments[0].Changes[0].Field)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
