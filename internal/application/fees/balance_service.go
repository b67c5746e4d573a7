package fees

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/domain/school"
	"github.com/skolair/backend/internal/domain/shared"
)

// BalanceService computes what a student still owes. Balances are never
// stored: every call re-aggregates the live ledger rows, so a cancelled or
// amended payment is reflected immediately.
type BalanceService struct {
	paymentRepo fees.PaymentRepository
	pricingRepo fees.PricingRepository
	feeTypeRepo fees.FeeTypeRepository
	enrollRepo  school.EnrollmentRepository
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(
	paymentRepo fees.PaymentRepository,
	pricingRepo fees.PricingRepository,
	feeTypeRepo fees.FeeTypeRepository,
	enrollRepo school.EnrollmentRepository,
) *BalanceService {
	return &BalanceService{
		paymentRepo: paymentRepo,
		pricingRepo: pricingRepo,
		feeTypeRepo: feeTypeRepo,
		enrollRepo:  enrollRepo,
	}
}

// CalculateBalance returns a student's position against one pricing.
// A negative balance means the student has overpaid; that is a valid state.
func (s *BalanceService) CalculateBalance(ctx context.Context, schoolID, studentID, pricingID uuid.UUID) (*BalanceResult, error) {
	pricing, err := s.pricingRepo.FindByIDForSchool(ctx, schoolID, pricingID)
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, shared.ErrNotFound
	}

	totalPaid, err := s.paymentRepo.SumLive(ctx, schoolID, studentID, pricingID)
	if err != nil {
		return nil, err
	}
	count, err := s.paymentRepo.CountLive(ctx, schoolID, studentID, pricingID)
	if err != nil {
		return nil, err
	}

	return &BalanceResult{
		StudentID:    studentID,
		PricingID:    pricingID,
		TotalAmount:  pricing.Amount,
		TotalPaid:    totalPaid,
		Balance:      pricing.Amount.Sub(totalPaid),
		PaymentCount: count,
	}, nil
}

// CalculateStudentYearBalance returns a student's position across every
// pricing applicable to their active enrollment for the year: the global
// pricings plus the ones scoped to the enrolled class.
func (s *BalanceService) CalculateStudentYearBalance(ctx context.Context, schoolID, studentID, yearID uuid.UUID) (*StudentYearBalance, error) {
	enrollment, err := s.enrollRepo.FindActiveByStudentAndYear(ctx, schoolID, studentID, yearID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, shared.ErrNoActiveEnrollment
	}

	pricings, err := s.pricingRepo.FindApplicable(ctx, schoolID, yearID, enrollment.ClassID)
	if err != nil {
		return nil, err
	}

	result := &StudentYearBalance{
		StudentID: studentID,
		YearID:    yearID,
		ClassID:   enrollment.ClassID,
		Lines:     make([]PricingBalance, 0, len(pricings)),
		TotalDue:  decimal.Zero,
		TotalPaid: decimal.Zero,
		Balance:   decimal.Zero,
	}

	for i := range pricings {
		p := &pricings[i]
		totalPaid, err := s.paymentRepo.SumLive(ctx, schoolID, studentID, p.ID)
		if err != nil {
			return nil, err
		}
		count, err := s.paymentRepo.CountLive(ctx, schoolID, studentID, p.ID)
		if err != nil {
			return nil, err
		}

		feeTypeName := ""
		if feeType, err := s.feeTypeRepo.FindByIDForSchool(ctx, schoolID, p.FeeTypeID); err == nil && feeType != nil {
			feeTypeName = feeType.Name
		}

		result.Lines = append(result.Lines, PricingBalance{
			PricingID:    p.ID,
			FeeTypeID:    p.FeeTypeID,
			FeeTypeName:  feeTypeName,
			Description:  p.Description,
			TotalAmount:  p.Amount,
			TotalPaid:    totalPaid,
			Balance:      p.Amount.Sub(totalPaid),
			PaymentCount: count,
		})
		result.TotalDue = result.TotalDue.Add(p.Amount)
		result.TotalPaid = result.TotalPaid.Add(totalPaid)
	}

	result.Balance = result.TotalDue.Sub(result.TotalPaid)
	return result, nil
}
