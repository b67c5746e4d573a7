package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInstallmentRepository implements InstallmentRepository using GORM
type GormInstallmentRepository struct {
	db *gorm.DB
}

// NewGormInstallmentRepository creates a new GormInstallmentRepository
func NewGormInstallmentRepository(db *gorm.DB) *GormInstallmentRepository {
	return &GormInstallmentRepository{db: db}
}

// FindByIDForSchool finds an installment by ID scoped to a school
func (r *GormInstallmentRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*fees.Installment, error) {
	var model models.InstallmentModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPricing lists a pricing's plan ordered by position
func (r *GormInstallmentRepository) FindByPricing(ctx context.Context, schoolID, pricingID uuid.UUID) ([]fees.Installment, error) {
	var installmentModels []models.InstallmentModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ? AND pricing_id = ?", schoolID, pricingID).
		Order("position asc").
		Find(&installmentModels).Error; err != nil {
		return nil, err
	}

	installments := make([]fees.Installment, len(installmentModels))
	for i, model := range installmentModels {
		installments[i] = *model.ToDomain()
	}
	return installments, nil
}

// SumByPricing totals the plan's amounts, excluding excludeID when non-nil
// so updates can check the cap against the other rows only.
func (r *GormInstallmentRepository) SumByPricing(ctx context.Context, schoolID, pricingID uuid.UUID, excludeID *uuid.UUID) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Model(&models.InstallmentModel{}).
		Where("school_id = ? AND pricing_id = ?", schoolID, pricingID)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var sum decimal.NullDecimal
	if err := query.Select("SUM(amount)").Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// SaveBatch inserts a batch of installments in one transaction
func (r *GormInstallmentRepository) SaveBatch(ctx context.Context, installments []*fees.Installment) error {
	if len(installments) == 0 {
		return nil
	}
	installmentModels := make([]*models.InstallmentModel, len(installments))
	for i, installment := range installments {
		installmentModels[i] = models.InstallmentModelFromDomain(installment)
	}
	return r.db.WithContext(ctx).Create(installmentModels).Error
}

// Save creates or updates an installment
func (r *GormInstallmentRepository) Save(ctx context.Context, installment *fees.Installment) error {
	model := models.InstallmentModelFromDomain(installment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an installment
func (r *GormInstallmentRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.InstallmentModel{}, "id = ? AND school_id = ?", id, schoolID).Error
}
