package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormFeeTypeRepository implements FeeTypeRepository using GORM
type GormFeeTypeRepository struct {
	db *gorm.DB
}

// NewGormFeeTypeRepository creates a new GormFeeTypeRepository
func NewGormFeeTypeRepository(db *gorm.DB) *GormFeeTypeRepository {
	return &GormFeeTypeRepository{db: db}
}

// FindByIDForSchool finds a fee type by ID scoped to a school. Rows belonging
// to other schools come back as nil, not as an error.
func (r *GormFeeTypeRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*fees.FeeType, error) {
	var model models.FeeTypeModel
	if err := r.db.WithContext(ctx).
		First(&model, "id = ? AND school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForSchool lists a school's fee types, active only unless asked
func (r *GormFeeTypeRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID, includeInactive bool) ([]fees.FeeType, error) {
	var feeTypeModels []models.FeeTypeModel
	query := r.db.WithContext(ctx).Where("school_id = ?", schoolID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("code asc").Find(&feeTypeModels).Error; err != nil {
		return nil, err
	}

	feeTypes := make([]fees.FeeType, len(feeTypeModels))
	for i, model := range feeTypeModels {
		feeTypes[i] = *model.ToDomain()
	}
	return feeTypes, nil
}

// ExistsByCode reports whether the school already uses a fee type code
func (r *GormFeeTypeRepository) ExistsByCode(ctx context.Context, schoolID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FeeTypeModel{}).
		Where("school_id = ? AND code = ?", schoolID, code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a fee type
func (r *GormFeeTypeRepository) Save(ctx context.Context, feeType *fees.FeeType) error {
	model := models.FeeTypeModelFromDomain(feeType)
	return r.db.WithContext(ctx).Save(model).Error
}
