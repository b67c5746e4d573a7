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

func newBalanceService() (*BalanceService, *MockPaymentRepository, *MockPricingRepository, *MockFeeTypeRepository, *MockEnrollmentRepository) {
	paymentRepo := new(MockPaymentRepository)
	pricingRepo := new(MockPricingRepository)
	feeTypeRepo := new(MockFeeTypeRepository)
	enrollRepo := new(MockEnrollmentRepository)
	return NewBalanceService(paymentRepo, pricingRepo, feeTypeRepo, enrollRepo), paymentRepo, pricingRepo, feeTypeRepo, enrollRepo
}

func TestBalanceService_CalculateBalance(t *testing.T) {
	schoolID := uuid.New()
	studentID := uuid.New()

	t.Run("partial payment leaves a positive balance", func(t *testing.T) {
		svc, paymentRepo, pricingRepo, _, _ := newBalanceService()
		pricing := newTestPricing(schoolID, 500)

		pricingRepo.On("FindByIDForSchool", mock.Anything, schoolID, pricing.ID).Return(pricing, nil)
		paymentRepo.On("SumLive", mock.Anything, schoolID, studentID, pricing.ID).Return(decimal.NewFromInt(300), nil)
		paymentRepo.On("CountLive", mock.Anything, schoolID, studentID, pricing.ID).Return(int64(1), nil)

		result, err := svc.CalculateBalance(context.Background(), schoolID, studentID, pricing.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(200).Equal(result.Balance))
		assert.Equal(t, int64(1), result.PaymentCount)
	})

	t.Run("overpayment yields a negative balance", func(t *testing.T) {
		svc, paymentRepo, pricingRepo, _, _ := newBalanceService()
		pricing := newTestPricing(schoolID, 500)

		// Two live payments of 300 and 250 against a 500 pricing.
		pricingRepo.On("FindByIDForSchool", mock.Anything, schoolID, pricing.ID).Return(pricing, nil)
		paymentRepo.On("SumLive", mock.Anything, schoolID, studentID, pricing.ID).Return(decimal.NewFromInt(550), nil)
		paymentRepo.On("CountLive", mock.Anything, schoolID, studentID, pricing.ID).Return(int64(2), nil)

		result, err := svc.CalculateBalance(context.Background(), schoolID, studentID, pricing.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(-50).Equal(result.Balance))
		assert.True(t, decimal.NewFromInt(550).Equal(result.TotalPaid))
	})

	t.Run("cancelled payments stop counting", func(t *testing.T) {
		svc, paymentRepo, pricingRepo, _, _ := newBalanceService()
		pricing := newTestPricing(schoolID, 500)

		// Same ledger after the 300 payment was cancelled.
		pricingRepo.On("FindByIDForSchool", mock.Anything, schoolID, pricing.ID).Return(pricing, nil)
		paymentRepo.On("SumLive", mock.Anything, schoolID, studentID, pricing.ID).Return(decimal.NewFromInt(250), nil)
		paymentRepo.On("CountLive", mock.Anything, schoolID, studentID, pricing.ID).Return(int64(1), nil)

		result, err := svc.CalculateBalance(context.Background(), schoolID, studentID, pricing.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(250).Equal(result.Balance))
	})

	t.Run("unknown pricing is not found", func(t *testing.T) {
		svc, _, pricingRepo, _, _ := newBalanceService()
		pricingID := uuid.New()
		pricingRepo.On("FindByIDForSchool", mock.Anything, schoolID, pricingID).Return(nil, nil)

		_, err := svc.CalculateBalance(context.Background(), schoolID, studentID, pricingID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestBalanceService_CalculateStudentYearBalance(t *testing.T) {
	schoolID := uuid.New()
	studentID := uuid.New()
	yearID := uuid.New()

	t.Run("aggregates global and class scoped pricings", func(t *testing.T) {
		svc, paymentRepo, pricingRepo, feeTypeRepo, enrollRepo := newBalanceService()
		enrollment := newTestEnrollment(schoolID, studentID, yearID)

		tuition := newTestPricing(schoolID, 500)
		canteen, err := domainfees.NewPricing(schoolID, uuid.New(), uuid.New(), yearID, &enrollment.ClassID, decimal.NewFromInt(150), "canteen")
		require.NoError(t, err)

		tuitionType, err := domainfees.NewFeeType(schoolID, uuid.New(), "TUITION", "Tuition")
		require.NoError(t, err)
		tuitionType.ID = tuition.FeeTypeID
		canteenType, err := domainfees.NewFeeType(schoolID, uuid.New(), "CANTEEN", "Canteen")
		require.NoError(t, err)
		canteenType.ID = canteen.FeeTypeID
		feeTypeRepo.On("FindByIDForSchool", mock.Anything, schoolID, tuition.FeeTypeID).Return(tuitionType, nil)
		feeTypeRepo.On("FindByIDForSchool", mock.Anything, schoolID, canteen.FeeTypeID).Return(canteenType, nil)

		enrollRepo.On("FindActiveByStudentAndYear", mock.Anything, schoolID, studentID, yearID).Return(enrollment, nil)
		pricingRepo.On("FindApplicable", mock.Anything, schoolID, yearID, enrollment.ClassID).Return([]domainfees.Pricing{*tuition, *canteen}, nil)
		paymentRepo.On("SumLive", mock.Anything, schoolID, studentID, tuition.ID).Return(decimal.NewFromInt(300), nil)
		paymentRepo.On("CountLive", mock.Anything, schoolID, studentID, tuition.ID).Return(int64(1), nil)
		paymentRepo.On("SumLive", mock.Anything, schoolID, studentID, canteen.ID).Return(decimal.Zero, nil)
		paymentRepo.On("CountLive", mock.Anything, schoolID, studentID, canteen.ID).Return(int64(0), nil)

		result, err := svc.CalculateStudentYearBalance(context.Background(), schoolID, studentID, yearID)
		require.NoError(t, err)
		require.Len(t, result.Lines, 2)
		assert.True(t, decimal.NewFromInt(650).Equal(result.TotalDue))
		assert.True(t, decimal.NewFromInt(300).Equal(result.TotalPaid))
		assert.True(t, decimal.NewFromInt(350).Equal(result.Balance))
		assert.Equal(t, enrollment.ClassID, result.ClassID)
	})

	t.Run("no active enrollment", func(t *testing.T) {
		svc, _, _, _, enrollRepo := newBalanceService()
		enrollRepo.On("FindActiveByStudentAndYear", mock.Anything, schoolID, studentID, yearID).Return(nil, nil)

		_, err := svc.CalculateStudentYearBalance(context.Background(), schoolID, studentID, yearID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NO_ACTIVE_ENROLLMENT", domainErr.Code)
	})

	t.Run("no applicable pricings yields zero totals", func(t *testing.T) {
		svc, _, pricingRepo, _, enrollRepo := newBalanceService()
		enrollment := newTestEnrollment(schoolID, studentID, yearID)

		enrollRepo.On("FindActiveByStudentAndYear", mock.Anything, schoolID, studentID, yearID).Return(enrollment, nil)
		pricingRepo.On("FindApplicable", mock.Anything, schoolID, yearID, enrollment.ClassID).Return([]domainfees.Pricing{}, nil)

		result, err := svc.CalculateStudentYearBalance(context.Background(), schoolID, studentID, yearID)
		require.NoError(t, err)
		assert.Empty(t, result.Lines)
		assert.True(t, result.Balance.IsZero())
	})
}
