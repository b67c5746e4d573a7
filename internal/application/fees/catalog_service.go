package fees

import (
	"context"

	"github.com/google/uuid"
	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/domain/school"
	"github.com/skolair/backend/internal/domain/shared"
)

// CatalogService manages the fee catalog: fee types and their per-year,
// per-class pricings.
type CatalogService struct {
	feeTypeRepo fees.FeeTypeRepository
	pricingRepo fees.PricingRepository
	yearRepo    school.AcademicYearRepository
	classRepo   school.SchoolClassRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	feeTypeRepo fees.FeeTypeRepository,
	pricingRepo fees.PricingRepository,
	yearRepo school.AcademicYearRepository,
	classRepo school.SchoolClassRepository,
) *CatalogService {
	return &CatalogService{
		feeTypeRepo: feeTypeRepo,
		pricingRepo: pricingRepo,
		yearRepo:    yearRepo,
		classRepo:   classRepo,
	}
}

// CreateFeeType adds a fee type to the school's catalog. The code must be
// unique within the school.
func (s *CatalogService) CreateFeeType(ctx context.Context, schoolID uuid.UUID, req CreateFeeTypeRequest) (*FeeTypeResponse, error) {
	feeType, err := fees.NewFeeType(schoolID, req.CreatedBy, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.feeTypeRepo.ExistsByCode(ctx, schoolID, feeType.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrDuplicateCode
	}

	if err := s.feeTypeRepo.Save(ctx, feeType); err != nil {
		return nil, err
	}

	response := ToFeeTypeResponse(feeType)
	return &response, nil
}

// UpdateFeeType renames a fee type
func (s *CatalogService) UpdateFeeType(ctx context.Context, schoolID, feeTypeID uuid.UUID, req UpdateFeeTypeRequest) (*FeeTypeResponse, error) {
	feeType, err := s.feeTypeRepo.FindByIDForSchool(ctx, schoolID, feeTypeID)
	if err != nil {
		return nil, err
	}
	if feeType == nil {
		return nil, shared.ErrNotFound
	}

	if err := feeType.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.feeTypeRepo.Save(ctx, feeType); err != nil {
		return nil, err
	}

	response := ToFeeTypeResponse(feeType)
	return &response, nil
}

// DeactivateFeeType soft-deletes a fee type. Pricings and payments that
// reference it are kept.
func (s *CatalogService) DeactivateFeeType(ctx context.Context, schoolID, feeTypeID uuid.UUID) error {
	feeType, err := s.feeTypeRepo.FindByIDForSchool(ctx, schoolID, feeTypeID)
	if err != nil {
		return err
	}
	if feeType == nil {
		return shared.ErrNotFound
	}

	feeType.Deactivate()
	return s.feeTypeRepo.Save(ctx, feeType)
}

// GetFeeType retrieves a fee type by ID
func (s *CatalogService) GetFeeType(ctx context.Context, schoolID, feeTypeID uuid.UUID) (*FeeTypeResponse, error) {
	feeType, err := s.feeTypeRepo.FindByIDForSchool(ctx, schoolID, feeTypeID)
	if err != nil {
		return nil, err
	}
	if feeType == nil {
		return nil, shared.ErrNotFound
	}

	response := ToFeeTypeResponse(feeType)
	return &response, nil
}

// ListFeeTypes lists the school's fee types
func (s *CatalogService) ListFeeTypes(ctx context.Context, schoolID uuid.UUID, includeInactive bool) ([]FeeTypeResponse, error) {
	feeTypes, err := s.feeTypeRepo.FindAllForSchool(ctx, schoolID, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]FeeTypeResponse, 0, len(feeTypes))
	for i := range feeTypes {
		responses = append(responses, ToFeeTypeResponse(&feeTypes[i]))
	}
	return responses, nil
}

// CreatePricing prices a fee type for an academic year, either globally or
// for one class. At most one active pricing may exist per (fee type, year,
// class) tuple.
func (s *CatalogService) CreatePricing(ctx context.Context, schoolID uuid.UUID, req CreatePricingRequest) (*PricingResponse, error) {
	feeType, err := s.feeTypeRepo.FindByIDForSchool(ctx, schoolID, req.FeeTypeID)
	if err != nil {
		return nil, err
	}
	if feeType == nil {
		return nil, shared.ErrNotFound
	}

	year, err := s.yearRepo.FindByIDForSchool(ctx, schoolID, req.YearID)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, shared.ErrNotFound
	}

	if req.ClassID != nil {
		class, err := s.classRepo.FindByIDForSchool(ctx, schoolID, *req.ClassID)
		if err != nil {
			return nil, err
		}
		if class == nil {
			return nil, shared.ErrNotFound
		}
	}

	exists, err := s.pricingRepo.ExistsActive(ctx, schoolID, req.FeeTypeID, req.YearID, req.ClassID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrDuplicatePricing
	}

	pricing, err := fees.NewPricing(schoolID, req.CreatedBy, req.FeeTypeID, req.YearID, req.ClassID, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.pricingRepo.Save(ctx, pricing); err != nil {
		return nil, err
	}

	response := ToPricingResponse(pricing)
	return &response, nil
}

// DeactivatePricing soft-deletes a pricing. Its installments and payments
// stay queryable for history.
func (s *CatalogService) DeactivatePricing(ctx context.Context, schoolID, pricingID uuid.UUID) error {
	pricing, err := s.pricingRepo.FindByIDForSchool(ctx, schoolID, pricingID)
	if err != nil {
		return err
	}
	if pricing == nil {
		return shared.ErrNotFound
	}

	pricing.Deactivate()
	return s.pricingRepo.Save(ctx, pricing)
}

// GetPricing retrieves a pricing by ID
func (s *CatalogService) GetPricing(ctx context.Context, schoolID, pricingID uuid.UUID) (*PricingResponse, error) {
	pricing, err := s.pricingRepo.FindByIDForSchool(ctx, schoolID, pricingID)
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, shared.ErrNotFound
	}

	response := ToPricingResponse(pricing)
	return &response, nil
}

// ListPricings lists pricings with optional filters
func (s *CatalogService) ListPricings(ctx context.Context, schoolID uuid.UUID, filter PricingListFilter) ([]PricingResponse, error) {
	pricings, err := s.pricingRepo.FindAllForSchool(ctx, schoolID, fees.PricingFilter{
		FeeTypeID:       filter.FeeTypeID,
		YearID:          filter.YearID,
		ClassID:         filter.ClassID,
		IncludeInactive: filter.IncludeInactive,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]PricingResponse, 0, len(pricings))
	for i := range pricings {
		responses = append(responses, ToPricingResponse(&pricings[i]))
	}
	return responses, nil
}
