package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// receiptAllocationSQL increments the (school, year) receipt counter in one
// statement, creating the row on first use. The conflict target is the unique
// (school_id, year_id) index; RETURNING hands back the freshly allocated
// value. Works on both postgres and sqlite.
const receiptAllocationSQL = `
INSERT INTO receipt_counters (id, school_id, year_id, counter, created_at, updated_at)
VALUES (?, ?, ?, 1, ?, ?)
ON CONFLICT (school_id, year_id)
DO UPDATE SET counter = receipt_counters.counter + 1, updated_at = ?
RETURNING counter`

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// CreateWithReceiptNumber inserts the payment and allocates its receipt number
// in one transaction. The counter upsert takes a row lock, so a concurrent
// create for the same school and year serializes behind it; if the insert
// fails the counter increment rolls back with it and the number is reissued
// to the next caller.
func (r *GormPaymentRepository) CreateWithReceiptNumber(ctx context.Context, payment *fees.Payment, yearLabel string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		var counter int64
		if err := tx.Raw(receiptAllocationSQL,
			uuid.New(), payment.SchoolID, payment.YearID, now, now, now,
		).Scan(&counter).Error; err != nil {
			return err
		}

		payment.ReceiptNumber = fees.FormatReceiptNumber(yearLabel, counter)

		model := models.PaymentModelFromDomain(payment)
		return tx.Create(model).Error
	})
}

// SaveWithAmendment persists an amended payment and appends its audit record
// in one transaction, so the ledger never shows an edit without its history
// row.
func (r *GormPaymentRepository) SaveWithAmendment(ctx context.Context, payment *fees.Payment, amendment *fees.PaymentAmendment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(models.PaymentModelFromDomain(payment)).Error; err != nil {
			return err
		}
		return tx.Create(models.PaymentAmendmentModelFromDomain(amendment)).Error
	})
}

// Save updates a payment without touching the audit log (cancellation)
func (r *GormPaymentRepository) Save(ctx context.Context, payment *fees.Payment) error {
	model := models.PaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByIDForSchool finds a payment by ID scoped to a school
func (r *GormPaymentRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*fees.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormPaymentRepository) applyFilter(query *gorm.DB, filter fees.PaymentFilter) *gorm.DB {
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.YearID != nil {
		query = query.Where("year_id = ?", *filter.YearID)
	}
	if filter.PricingID != nil {
		query = query.Where("pricing_id = ?", *filter.PricingID)
	}
	if filter.ClassID != nil {
		query = query.Where(
			"enrollment_id IN (SELECT id FROM enrollments WHERE class_id = ?)",
			*filter.ClassID,
		)
	}
	if filter.Cancelled != nil {
		if *filter.Cancelled {
			query = query.Where("status = ?", fees.PaymentStatusCancelled)
		} else {
			query = query.Where("status <> ?", fees.PaymentStatusCancelled)
		}
	}
	if filter.FromDate != nil {
		query = query.Where("payment_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("payment_date <= ?", *filter.ToDate)
	}
	return query
}

// FindAllForSchool lists payments with filtering and pagination
func (r *GormPaymentRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID, filter fees.PaymentFilter) ([]fees.Payment, error) {
	var paymentModels []models.PaymentModel
	query := r.applyFilter(r.db.WithContext(ctx).Where("school_id = ?", schoolID), filter)

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if filter.Page > 0 {
			query = query.Offset((filter.Page - 1) * filter.PageSize)
		}
	}

	sortField := ValidateSortField(filter.SortBy, PaymentSortFields, "payment_date")
	sortOrder := ValidateSortOrder(filter.SortOrder)
	if err := query.Order(sortField + " " + sortOrder + ", receipt_number desc").Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]fees.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// CountForSchool counts payments matching the filter
func (r *GormPaymentRepository) CountForSchool(ctx context.Context, schoolID uuid.UUID, filter fees.PaymentFilter) (int64, error) {
	var count int64
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.PaymentModel{}).Where("school_id = ?", schoolID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumLive totals a student's non-cancelled payments against a pricing.
// Nothing is cached; callers always see the current ledger.
func (r *GormPaymentRepository) SumLive(ctx context.Context, schoolID, studentID, pricingID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("school_id = ? AND student_id = ? AND pricing_id = ? AND status <> ?",
			schoolID, studentID, pricingID, fees.PaymentStatusCancelled).
		Select("SUM(amount)").Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// CountLive counts a student's non-cancelled payments against a pricing
func (r *GormPaymentRepository) CountLive(ctx context.Context, schoolID, studentID, pricingID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("school_id = ? AND student_id = ? AND pricing_id = ? AND status <> ?",
			schoolID, studentID, pricingID, fees.PaymentStatusCancelled).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAmendments returns a payment's audit log, newest first
func (r *GormPaymentRepository) FindAmendments(ctx context.Context, schoolID, paymentID uuid.UUID) ([]fees.PaymentAmendment, error) {
	var amendmentModels []models.PaymentAmendmentModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ? AND payment_id = ?", schoolID, paymentID).
		Order("edited_at desc").
		Find(&amendmentModels).Error; err != nil {
		return nil, err
	}

	amendments := make([]fees.PaymentAmendment, len(amendmentModels))
	for i, model := range amendmentModels {
		amendments[i] = *model.ToDomain()
	}
	return amendments, nil
}
