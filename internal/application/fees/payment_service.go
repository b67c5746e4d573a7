package fees

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/domain/school"
	"github.com/skolair/backend/internal/domain/shared"
)

// PaymentService records payments, edits them with a full audit trail, and
// cancels them. Receipt numbers are allocated by the repository inside the
// insert transaction, so two concurrent creates can never share one.
type PaymentService struct {
	paymentRepo fees.PaymentRepository
	pricingRepo fees.PricingRepository
	yearRepo    school.AcademicYearRepository
	enrollRepo  school.EnrollmentRepository
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo fees.PaymentRepository,
	pricingRepo fees.PricingRepository,
	yearRepo school.AcademicYearRepository,
	enrollRepo school.EnrollmentRepository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		pricingRepo: pricingRepo,
		yearRepo:    yearRepo,
		enrollRepo:  enrollRepo,
		logger:      logger,
	}
}

// CreatePayment records a payment against a pricing and issues the next
// sequential receipt number for the school and year. Paying more than the
// pricing total is allowed; it only logs a warning, since legitimate
// overpayments (advances, rounding) exist.
func (s *PaymentService) CreatePayment(ctx context.Context, schoolID uuid.UUID, req CreatePaymentRequest) (*PaymentResponse, error) {
	pricing, err := s.pricingRepo.FindByIDForSchool(ctx, schoolID, req.PricingID)
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, shared.ErrNotFound
	}

	enrollment, err := s.enrollRepo.FindByIDForSchool(ctx, schoolID, req.EnrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, shared.ErrNotFound
	}
	if enrollment.StudentID != req.StudentID {
		return nil, shared.NewDomainError("INVALID_ENROLLMENT", "Enrollment does not belong to this student")
	}

	year, err := s.yearRepo.FindByIDForSchool(ctx, schoolID, pricing.YearID)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, shared.ErrNotFound
	}

	payment, err := fees.NewPayment(
		schoolID, req.CreatedBy, req.StudentID, req.EnrollmentID, req.PricingID, pricing.YearID,
		req.Amount, fees.PaymentMethod(req.Method), req.PaymentDate, req.Reference, req.Notes,
	)
	if err != nil {
		return nil, err
	}

	alreadyPaid, err := s.paymentRepo.SumLive(ctx, schoolID, req.StudentID, req.PricingID)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.CreateWithReceiptNumber(ctx, payment, year.Label); err != nil {
		return nil, err
	}

	if alreadyPaid.Add(payment.Amount).GreaterThan(pricing.Amount) {
		s.logger.Warn("payment exceeds pricing total",
			zap.String("school_id", schoolID.String()),
			zap.String("student_id", req.StudentID.String()),
			zap.String("pricing_id", req.PricingID.String()),
			zap.String("receipt_number", payment.ReceiptNumber),
			zap.String("pricing_amount", pricing.Amount.String()),
			zap.String("total_paid", alreadyPaid.Add(payment.Amount).String()),
		)
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// UpdatePayment amends a live payment and appends the change set to the
// payment's audit log in the same transaction.
func (s *PaymentService) UpdatePayment(ctx context.Context, schoolID, paymentID uuid.UUID, req UpdatePaymentRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByIDForSchool(ctx, schoolID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, shared.ErrNotFound
	}

	in := fees.AmendmentInput{
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Reference:   req.Reference,
		Notes:       req.Notes,
	}
	if req.Method != nil {
		method := fees.PaymentMethod(*req.Method)
		in.Method = &method
	}

	amendment, err := payment.Amend(req.ModifiedBy, in)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.SaveWithAmendment(ctx, payment, amendment); err != nil {
		return nil, err
	}

	if req.Amount != nil {
		s.warnIfOverpaid(ctx, payment)
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// CancelPayment soft-cancels a payment. The row and its receipt number are
// kept; the amount simply stops counting toward balances.
func (s *PaymentService) CancelPayment(ctx context.Context, schoolID, paymentID uuid.UUID, req CancelPaymentRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByIDForSchool(ctx, schoolID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, shared.ErrNotFound
	}

	if err := payment.Cancel(req.CancelledBy, req.Reason); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, schoolID, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByIDForSchool(ctx, schoolID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, shared.ErrNotFound
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// ListPayments lists payments with filtering and pagination
func (s *PaymentService) ListPayments(ctx context.Context, schoolID uuid.UUID, filter PaymentListFilter) (*shared.Paginated[PaymentResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := fees.PaymentFilter{
		StudentID: filter.StudentID,
		YearID:    filter.YearID,
		ClassID:   filter.ClassID,
		PricingID: filter.PricingID,
		Cancelled: filter.Cancelled,
		FromDate:  filter.FromDate,
		ToDate:    filter.ToDate,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}

	payments, err := s.paymentRepo.FindAllForSchool(ctx, schoolID, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.paymentRepo.CountForSchool(ctx, schoolID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i]))
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListAmendments returns a payment's audit log, newest first
func (s *PaymentService) ListAmendments(ctx context.Context, schoolID, paymentID uuid.UUID) ([]AmendmentResponse, error) {
	payment, err := s.paymentRepo.FindByIDForSchool(ctx, schoolID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, shared.ErrNotFound
	}

	amendments, err := s.paymentRepo.FindAmendments(ctx, schoolID, paymentID)
	if err != nil {
		return nil, err
	}

	responses := make([]AmendmentResponse, 0, len(amendments))
	for i := range amendments {
		responses = append(responses, ToAmendmentResponse(&amendments[i]))
	}
	return responses, nil
}

func (s *PaymentService) warnIfOverpaid(ctx context.Context, payment *fees.Payment) {
	pricing, err := s.pricingRepo.FindByIDForSchool(ctx, payment.SchoolID, payment.PricingID)
	if err != nil || pricing == nil {
		return
	}
	totalPaid, err := s.paymentRepo.SumLive(ctx, payment.SchoolID, payment.StudentID, payment.PricingID)
	if err != nil {
		return
	}
	if totalPaid.GreaterThan(pricing.Amount) {
		s.logger.Warn("amended payment pushes total over pricing amount",
			zap.String("school_id", payment.SchoolID.String()),
			zap.String("student_id", payment.StudentID.String()),
			zap.String("pricing_id", payment.PricingID.String()),
			zap.String("receipt_number", payment.ReceiptNumber),
			zap.String("pricing_amount", pricing.Amount.String()),
			zap.String("total_paid", totalPaid.String()),
		)
	}
}
