package fees

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainfees "github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/domain/shared"
)

func newCatalogService() (*CatalogService, *MockFeeTypeRepository, *MockPricingRepository, *MockAcademicYearRepository, *MockSchoolClassRepository) {
	feeTypeRepo := new(MockFeeTypeRepository)
	pricingRepo := new(MockPricingRepository)
	yearRepo := new(MockAcademicYearRepository)
	classRepo := new(MockSchoolClassRepository)
	svc := NewCatalogService(feeTypeRepo, pricingRepo, yearRepo, classRepo)
	return svc, feeTypeRepo, pricingRepo, yearRepo, classRepo
}

func TestCatalogService_CreateFeeType(t *testing.T) {
	schoolID := uuid.New()

	t.Run("creates fee type", func(t *testing.T) {
		svc, feeTypeRepo, _, _, _ := newCatalogService()
		feeTypeRepo.On("ExistsByCode", mock.Anything, schoolID, "TUITION").Return(false, nil)
		feeTypeRepo.On("Save", mock.Anything, mock.AnythingOfType("*fees.FeeType")).Return(nil)

		resp, err := svc.CreateFeeType(context.Background(), schoolID, CreateFeeTypeRequest{
			Code: "tuition", Name: "Frais de scolarité", CreatedBy: uuid.New(),
		})
		require.NoError(t, err)
		assert.Equal(t, "TUITION", resp.Code)
		assert.True(t, resp.IsActive)
		feeTypeRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		svc, feeTypeRepo, _, _, _ := newCatalogService()
		feeTypeRepo.On("ExistsByCode", mock.Anything, schoolID, "TUITION").Return(true, nil)

		_, err := svc.CreateFeeType(context.Background(), schoolID, CreateFeeTypeRequest{
			Code: "TUITION", Name: "Tuition", CreatedBy: uuid.New(),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_CODE", domainErr.Code)
		feeTypeRepo.AssertNotCalled(t, "Save")
	})
}

func TestCatalogService_DeactivateFeeType(t *testing.T) {
	schoolID := uuid.New()

	t.Run("soft deletes", func(t *testing.T) {
		svc, feeTypeRepo, _, _, _ := newCatalogService()
		feeType, err := domainfees.NewFeeType(schoolID, uuid.New(), "TUITION", "Tuition")
		require.NoError(t, err)

		feeTypeRepo.On("FindByIDForSchool", mock.Anything, schoolID, feeType.ID).Return(feeType, nil)
		feeTypeRepo.On("Save", mock.Anything, feeType).Return(nil)

		require.NoError(t, svc.DeactivateFeeType(context.Background(), schoolID, feeType.ID))
		assert.False(t, feeType.IsActive)
	})

	t.Run("not found for another school's fee type", func(t *testing.T) {
		svc, feeTypeRepo, _, _, _ := newCatalogService()
		id := uuid.New()
		feeTypeRepo.On("FindByIDForSchool", mock.Anything, schoolID, id).Return(nil, nil)

		err := svc.DeactivateFeeType(context.Background(), schoolID, id)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestCatalogService_CreatePricing(t *testing.T) {
	schoolID := uuid.New()

	setup := func(t *testing.T) (*CatalogService, *MockFeeTypeRepository, *MockPricingRepository, *MockAcademicYearRepository, CreatePricingRequest) {
		t.Helper()
		svc, feeTypeRepo, pricingRepo, yearRepo, _ := newCatalogService()
		feeType, err := domainfees.NewFeeType(schoolID, uuid.New(), "TUITION", "Tuition")
		require.NoError(t, err)
		year := newTestYear(schoolID, "2025-2026")

		req := CreatePricingRequest{
			FeeTypeID: feeType.ID,
			YearID:    year.ID,
			Amount:    decimal.NewFromInt(500),
			CreatedBy: uuid.New(),
		}
		feeTypeRepo.On("FindByIDForSchool", mock.Anything, schoolID, feeType.ID).Return(feeType, nil)
		yearRepo.On("FindByIDForSchool", mock.Anything, schoolID, year.ID).Return(year, nil)
		return svc, feeTypeRepo, pricingRepo, yearRepo, req
	}

	t.Run("creates global pricing", func(t *testing.T) {
		svc, _, pricingRepo, _, req := setup(t)
		pricingRepo.On("ExistsActive", mock.Anything, schoolID, req.FeeTypeID, req.YearID, (*uuid.UUID)(nil)).Return(false, nil)
		pricingRepo.On("Save", mock.Anything, mock.AnythingOfType("*fees.Pricing")).Return(nil)

		resp, err := svc.CreatePricing(context.Background(), schoolID, req)
		require.NoError(t, err)
		assert.Nil(t, resp.ClassID)
		assert.True(t, decimal.NewFromInt(500).Equal(resp.Amount))
	})

	t.Run("rejects duplicate active pricing", func(t *testing.T) {
		svc, _, pricingRepo, _, req := setup(t)
		pricingRepo.On("ExistsActive", mock.Anything, schoolID, req.FeeTypeID, req.YearID, (*uuid.UUID)(nil)).Return(true, nil)

		_, err := svc.CreatePricing(context.Background(), schoolID, req)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_PRICING", domainErr.Code)
		pricingRepo.AssertNotCalled(t, "Save")
	})

	t.Run("unknown fee type is not found", func(t *testing.T) {
		svc, feeTypeRepo, _, _, _ := newCatalogService()
		feeTypeID := uuid.New()
		feeTypeRepo.On("FindByIDForSchool", mock.Anything, schoolID, feeTypeID).Return(nil, nil)

		_, err := svc.CreatePricing(context.Background(), schoolID, CreatePricingRequest{
			FeeTypeID: feeTypeID, YearID: uuid.New(), Amount: decimal.NewFromInt(500),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}
