package fees

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	domainfees "github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/domain/school"
)

type MockFeeTypeRepository struct {
	mock.Mock
}

func (m *MockFeeTypeRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*domainfees.FeeType, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainfees.FeeType), args.Error(1)
}

func (m *MockFeeTypeRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID, includeInactive bool) ([]domainfees.FeeType, error) {
	args := m.Called(ctx, schoolID, includeInactive)
	return args.Get(0).([]domainfees.FeeType), args.Error(1)
}

func (m *MockFeeTypeRepository) ExistsByCode(ctx context.Context, schoolID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, schoolID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeeTypeRepository) Save(ctx context.Context, feeType *domainfees.FeeType) error {
	args := m.Called(ctx, feeType)
	return args.Error(0)
}

type MockPricingRepository struct {
	mock.Mock
}

func (m *MockPricingRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*domainfees.Pricing, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainfees.Pricing), args.Error(1)
}

func (m *MockPricingRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID, filter domainfees.PricingFilter) ([]domainfees.Pricing, error) {
	args := m.Called(ctx, schoolID, filter)
	return args.Get(0).([]domainfees.Pricing), args.Error(1)
}

func (m *MockPricingRepository) FindApplicable(ctx context.Context, schoolID, yearID, classID uuid.UUID) ([]domainfees.Pricing, error) {
	args := m.Called(ctx, schoolID, yearID, classID)
	return args.Get(0).([]domainfees.Pricing), args.Error(1)
}

func (m *MockPricingRepository) ExistsActive(ctx context.Context, schoolID, feeTypeID, yearID uuid.UUID, classID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, schoolID, feeTypeID, yearID, classID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPricingRepository) Save(ctx context.Context, pricing *domainfees.Pricing) error {
	args := m.Called(ctx, pricing)
	return args.Error(0)
}

type MockInstallmentRepository struct {
	mock.Mock
}

func (m *MockInstallmentRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*domainfees.Installment, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainfees.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) FindByPricing(ctx context.Context, schoolID, pricingID uuid.UUID) ([]domainfees.Installment, error) {
	args := m.Called(ctx, schoolID, pricingID)
	return args.Get(0).([]domainfees.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) SumByPricing(ctx context.Context, schoolID, pricingID uuid.UUID, excludeID *uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, schoolID, pricingID, excludeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockInstallmentRepository) SaveBatch(ctx context.Context, installments []*domainfees.Installment) error {
	args := m.Called(ctx, installments)
	return args.Error(0)
}

func (m *MockInstallmentRepository) Save(ctx context.Context, installment *domainfees.Installment) error {
	args := m.Called(ctx, installment)
	return args.Error(0)
}

func (m *MockInstallmentRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	args := m.Called(ctx, schoolID, id)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreateWithReceiptNumber(ctx context.Context, payment *domainfees.Payment, yearLabel string) error {
	args := m.Called(ctx, payment, yearLabel)
	return args.Error(0)
}

func (m *MockPaymentRepository) SaveWithAmendment(ctx context.Context, payment *domainfees.Payment, amendment *domainfees.PaymentAmendment) error {
	args := m.Called(ctx, payment, amendment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *domainfees.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*domainfees.Payment, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainfees.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID, filter domainfees.PaymentFilter) ([]domainfees.Payment, error) {
	args := m.Called(ctx, schoolID, filter)
	return args.Get(0).([]domainfees.Payment), args.Error(1)
}

func (m *MockPaymentRepository) CountForSchool(ctx context.Context, schoolID uuid.UUID, filter domainfees.PaymentFilter) (int64, error) {
	args := m.Called(ctx, schoolID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) SumLive(ctx context.Context, schoolID, studentID, pricingID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, schoolID, studentID, pricingID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) CountLive(ctx context.Context, schoolID, studentID, pricingID uuid.UUID) (int64, error) {
	args := m.Called(ctx, schoolID, studentID, pricingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) FindAmendments(ctx context.Context, schoolID, paymentID uuid.UUID) ([]domainfees.PaymentAmendment, error) {
	args := m.Called(ctx, schoolID, paymentID)
	return args.Get(0).([]domainfees.PaymentAmendment), args.Error(1)
}

type MockAcademicYearRepository struct {
	mock.Mock
}

func (m *MockAcademicYearRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*school.AcademicYear, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*school.AcademicYear), args.Error(1)
}

func (m *MockAcademicYearRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]school.AcademicYear, error) {
	args := m.Called(ctx, schoolID)
	return args.Get(0).([]school.AcademicYear), args.Error(1)
}

func (m *MockAcademicYearRepository) Save(ctx context.Context, year *school.AcademicYear) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

type MockSchoolClassRepository struct {
	mock.Mock
}

func (m *MockSchoolClassRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*school.SchoolClass, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*school.SchoolClass), args.Error(1)
}

func (m *MockSchoolClassRepository) FindAllForSchool(ctx context.Context, schoolID uuid.UUID) ([]school.SchoolClass, error) {
	args := m.Called(ctx, schoolID)
	return args.Get(0).([]school.SchoolClass), args.Error(1)
}

func (m *MockSchoolClassRepository) Save(ctx context.Context, class *school.SchoolClass) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) FindByIDForSchool(ctx context.Context, schoolID, id uuid.UUID) (*school.Enrollment, error) {
	args := m.Called(ctx, schoolID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*school.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindActiveByStudentAndYear(ctx context.Context, schoolID, studentID, yearID uuid.UUID) (*school.Enrollment, error) {
	args := m.Called(ctx, schoolID, studentID, yearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*school.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) FindByStudent(ctx context.Context, schoolID, studentID uuid.UUID) ([]school.Enrollment, error) {
	args := m.Called(ctx, schoolID, studentID)
	return args.Get(0).([]school.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) Save(ctx context.Context, enrollment *school.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

// test fixture helpers

func newTestPricing(schoolID uuid.UUID, amount int64) *domainfees.Pricing {
	pricing, err := domainfees.NewPricing(schoolID, uuid.New(), uuid.New(), uuid.New(), nil, decimal.NewFromInt(amount), "tuition")
	if err != nil {
		panic(err)
	}
	return pricing
}

func newTestEnrollment(schoolID, studentID, yearID uuid.UUID) *school.Enrollment {
	enrollment, err := school.NewEnrollment(schoolID, uuid.New(), studentID, uuid.New(), yearID)
	if err != nil {
		panic(err)
	}
	return enrollment
}

func newTestYear(schoolID uuid.UUID, label string) *school.AcademicYear {
	year, err := school.NewAcademicYear(schoolID, uuid.New(), label)
	if err != nil {
		panic(err)
	}
	return year
}
