package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/repository"
)

// ExpenseService handles business logic for recurring expense records.
type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService with the provided repository dependencies.
func NewExpenseService(
	expenseRepo *repository.ExpenseRepository,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
	}
}

// GetAllExpenses retrieves all declared expenses.
func (s *ExpenseService) GetAllExpenses() ([]model.Expense, error) {
	return s.expenseRepo.GetExpenses()
}

// GetExpense retrieves a single expense by its ID.
func (s *ExpenseService) GetExpense(id string) (model.Expense, error) {
	return s.expenseRepo.GetExpenseOnID(id)
}

// CreateExpense stores a new expense record with a generated ID.
// Frequency is stored lowercased so analysis never sees mixed casings.
func (s *ExpenseService) CreateExpense(req request.CreateExpenseRequest) (*model.Expense, error) {
	now := time.Now()
	expense := &model.Expense{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Type:      req.Type,
		Amount:    req.Amount,
		Frequency: strings.ToLower(strings.TrimSpace(req.Frequency)),
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.expenseRepo.CreateExpense(*expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

// UpdateExpense applies the provided fields to an existing expense.
// Only non-nil request fields are changed.
func (s *ExpenseService) UpdateExpense(id string, req request.UpdateExpenseRequest) (*model.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseOnID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		expense.Name = *req.Name
	}
	if req.Type != nil {
		expense.Type = *req.Type
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Frequency != nil {
		expense.Frequency = strings.ToLower(strings.TrimSpace(*req.Frequency))
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.UpdatedAt = time.Now()

	if err := s.expenseRepo.UpdateExpense(expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &expense, nil
}

// DeleteExpense removes an expense by its ID.
func (s *ExpenseService) DeleteExpense(id string) error {
	return s.expenseRepo.DeleteExpense(id)
}
