package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/repository"
)

// InvestmentService handles business logic for assets declared outside the
// brokerage (gold, deposits, real estate, retirement accounts).
type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
}

// NewInvestmentService creates a new InvestmentService with the provided repository dependencies.
func NewInvestmentService(
	investmentRepo *repository.InvestmentRepository,
) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
	}
}

// GetAllInvestments retrieves all declared investments.
func (s *InvestmentService) GetAllInvestments() ([]model.Investment, error) {
	return s.investmentRepo.GetInvestments()
}

// GetInvestment retrieves a single investment by its ID.
func (s *InvestmentService) GetInvestment(id string) (model.Investment, error) {
	return s.investmentRepo.GetInvestmentOnID(id)
}

// CreateInvestment stores a new investment record with a generated ID.
func (s *InvestmentService) CreateInvestment(req request.CreateInvestmentRequest) (*model.Investment, error) {
	now := time.Now()
	investment := &model.Investment{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Type:      req.Type,
		Amount:    req.Amount,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.investmentRepo.CreateInvestment(*investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return investment, nil
}

// UpdateInvestment applies the provided fields to an existing investment.
// Only non-nil request fields are changed.
func (s *InvestmentService) UpdateInvestment(id string, req request.UpdateInvestmentRequest) (*model.Investment, error) {
	investment, err := s.investmentRepo.GetInvestmentOnID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		investment.Name = *req.Name
	}
	if req.Type != nil {
		investment.Type = *req.Type
	}
	if req.Amount != nil {
		investment.Amount = *req.Amount
	}
	if req.Notes != nil {
		investment.Notes = *req.Notes
	}
	investment.UpdatedAt = time.Now()

	if err := s.investmentRepo.UpdateInvestment(investment); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &investment, nil
}

// DeleteInvestment removes an investment by its ID.
func (s *InvestmentService) DeleteInvestment(id string) error {
	return s.investmentRepo.DeleteInvestment(id)
}
