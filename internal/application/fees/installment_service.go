package fees

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skolair/backend/internal/domain/fees"
	"github.com/skolair/backend/internal/domain/shared"
)

// InstallmentService manages the installment plans attached to pricings
type InstallmentService struct {
	pricingRepo     fees.PricingRepository
	installmentRepo fees.InstallmentRepository
}

// NewInstallmentService creates a new InstallmentService
func NewInstallmentService(
	pricingRepo fees.PricingRepository,
	installmentRepo fees.InstallmentRepository,
) *InstallmentService {
	return &InstallmentService{
		pricingRepo:     pricingRepo,
		installmentRepo: installmentRepo,
	}
}

// AddInstallments appends a batch of installments to a pricing's plan. The
// whole batch is checked against the pricing total before anything is saved:
// if the batch would push the plan over the total, nothing is added. Explicit
// positions are honored when every row carries one and none collides; any
// conflict makes the whole batch continue after the existing plan in the
// order given.
func (s *InstallmentService) AddInstallments(ctx context.Context, schoolID, pricingID uuid.UUID, req AddInstallmentsRequest) ([]InstallmentResponse, error) {
	pricing, err := s.pricingRepo.FindByIDForSchool(ctx, schoolID, pricingID)
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, shared.ErrNotFound
	}

	existingSum, err := s.installmentRepo.SumByPricing(ctx, schoolID, pricingID, nil)
	if err != nil {
		return nil, err
	}

	existing, err := s.installmentRepo.FindByPricing(ctx, schoolID, pricingID)
	if err != nil {
		return nil, err
	}

	maxPosition := 0
	taken := make(map[int]bool, len(existing))
	for i := range existing {
		taken[existing[i].Position] = true
		if existing[i].Position > maxPosition {
			maxPosition = existing[i].Position
		}
	}

	explicit := len(req.Installments) > 0
	seen := make(map[int]bool, len(req.Installments))
	for _, in := range req.Installments {
		if in.Position == nil || *in.Position < 1 || taken[*in.Position] || seen[*in.Position] {
			explicit = false
			break
		}
		seen[*in.Position] = true
	}

	installments := make([]*fees.Installment, 0, len(req.Installments))
	for idx, in := range req.Installments {
		position := maxPosition + idx + 1
		if explicit {
			position = *in.Position
		}
		installment, err := fees.NewInstallment(schoolID, pricingID, in.Name, in.Amount, in.DueDate, position)
		if err != nil {
			return nil, err
		}
		installments = append(installments, installment)
	}

	amounts := make([]decimal.Decimal, 0, len(installments))
	for _, i := range installments {
		amounts = append(amounts, i.Amount)
	}
	if err := fees.CheckInstallmentCap(pricing.Amount, existingSum, amounts...); err != nil {
		return nil, err
	}

	if err := s.installmentRepo.SaveBatch(ctx, installments); err != nil {
		return nil, err
	}

	responses := make([]InstallmentResponse, 0, len(installments))
	for _, i := range installments {
		responses = append(responses, ToInstallmentResponse(i))
	}
	return responses, nil
}

// UpdateInstallment edits one installment. The cap check excludes the row
// being replaced so raising one amount while lowering another works.
func (s *InstallmentService) UpdateInstallment(ctx context.Context, schoolID, installmentID uuid.UUID, req UpdateInstallmentRequest) (*InstallmentResponse, error) {
	installment, err := s.installmentRepo.FindByIDForSchool(ctx, schoolID, installmentID)
	if err != nil {
		return nil, err
	}
	if installment == nil {
		return nil, shared.ErrNotFound
	}

	pricing, err := s.pricingRepo.FindByIDForSchool(ctx, schoolID, installment.PricingID)
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, shared.ErrNotFound
	}

	otherSum, err := s.installmentRepo.SumByPricing(ctx, schoolID, installment.PricingID, &installment.ID)
	if err != nil {
		return nil, err
	}
	if err := fees.CheckInstallmentCap(pricing.Amount, otherSum, req.Amount); err != nil {
		return nil, err
	}

	if err := installment.Update(req.Name, req.Amount, req.DueDate); err != nil {
		return nil, err
	}
	if err := s.installmentRepo.Save(ctx, installment); err != nil {
		return nil, err
	}

	response := ToInstallmentResponse(installment)
	return &response, nil
}

// DeleteInstallment removes an installment from the plan. Deleting only ever
// lowers the plan sum, so no cap check is needed.
func (s *InstallmentService) DeleteInstallment(ctx context.Context, schoolID, installmentID uuid.UUID) error {
	installment, err := s.installmentRepo.FindByIDForSchool(ctx, schoolID, installmentID)
	if err != nil {
		return err
	}
	if installment == nil {
		return shared.ErrNotFound
	}
	return s.installmentRepo.Delete(ctx, schoolID, installmentID)
}

// ListInstallments returns a pricing's plan ordered by position
func (s *InstallmentService) ListInstallments(ctx context.Context, schoolID, pricingID uuid.UUID) ([]InstallmentResponse, error) {
	pricing, err := s.pricingRepo.FindByIDForSchool(ctx, schoolID, pricingID)
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, shared.ErrNotFound
	}

	installments, err := s.installmentRepo.FindByPricing(ctx, schoolID, pricingID)
	if err != nil {
		return nil, err
	}

	responses := make([]InstallmentResponse, 0, len(installments))
	for i := range installments {
		responses = append(responses, ToInstallmentResponse(&installments[i]))
	}
	return responses, nil
}
