package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPricingRepository implements PricingRepository using GORM
type GormPricingRepository struct {
	db *gorm.DB
}

// NewGormPricingRepository creates a new GormPricingRepository
func NewGormPricingRepository(db *gorm.DB) *GormPricingRepository {
	return &GormPricingRepository{db: db}
}

// FindByIDForSchool finds a pricing by ID scoped to a school
func (r *GormPricingRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*fees.Pricing, error) {
	var model models.PricingModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForSchool lists a school's pricings with optional filters
func (r *GormPricingRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID, filter fees.PricingFilter) ([]fees.Pricing, error) {
	var pricingModels []models.PricingModel
	query := r.db.WithContext(ctx).Where("school_id = ?", schoolID)

	if filter.FeeTypeID != nil {
		query = query.Where("fee_type_id = ?", *filter.FeeTypeID)
	}
	if filter.YearID != nil {
		query = query.Where("year_id = ?", *filter.YearID)
	}
	if filter.ClassID != nil {
		query = query.Where("class_id = ?", *filter.ClassID)
	}
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("created_at desc").Find(&pricingModels).Error; err != nil {
		return nil, err
	}

	pricings := make([]fees.Pricing, len(pricingModels))
	for i, model := range pricingModels {
		pricings[i] = *model.ToDomain()
	}
	return pricings, nil
}

// FindApplicable returns the active pricings a student enrolled in classID is
// subject to for a year: global rows (class_id IS NULL) plus the class's own.
func (r *GormPricingRepository) FindApplicable(ctx context.Context, schoolID, yearID, classID uuid.UUID) ([]fees.Pricing, error) {
	var pricingModels []models.PricingModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ? AND year_id = ? AND is_active = ?", schoolID, yearID, true).
		Where("class_id IS NULL OR class_id = ?", classID).
		Order("created_at asc").
		Find(&pricingModels).Error; err != nil {
		return nil, err
	}

	pricings := make([]fees.Pricing, len(pricingModels))
	for i, model := range pricingModels {
		pricings[i] = *model.ToDomain()
	}
	return pricings, nil
}

// ExistsActive reports whether an active pricing already exists for the exact
// (fee type, year, class) tuple. A nil classID matches only the global row.
func (r *GormPricingRepository) ExistsActive(ctx context.Context, schoolID, feeTypeID, yearID uuid.UUID, classID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PricingModel{}).
		Where("school_id = ? AND fee_type_id = ? AND year_id = ? AND is_active = ?", schoolID, feeTypeID, yearID, true)
	if classID == nil {
		query = query.Where("class_id IS NULL")
	} else {
		query = query.Where("class_id = ?", *classID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a pricing
func (r *GormPricingRepository) Save(ctx context.Context, pricing *fees.Pricing) error {
	model := models.PricingModelFromDomain(pricing)
	return r.db.WithContext(ctx).Save(model).Error
}
