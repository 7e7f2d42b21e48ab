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

// GoalService handles business logic for planned future expenses.
type GoalService struct {
	goalRepo *repository.GoalRepository
}

// NewGoalService creates a new GoalService with the provided repository dependencies.
func NewGoalService(
	goalRepo *repository.GoalRepository,
) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
	}
}

// GetAllGoals retrieves all declared goals.
func (s *GoalService) GetAllGoals() ([]model.Goal, error) {
	return s.goalRepo.GetGoals()
}

// GetGoal retrieves a single goal by its ID.
func (s *GoalService) GetGoal(id string) (model.Goal, error) {
	return s.goalRepo.GetGoalOnID(id)
}

// CreateGoal stores a new goal record with a generated ID. The timeframe is
// stored as typed; parsing happens at analysis time so a wording the parser
// does not understand degrades gracefully instead of being rejected.
func (s *GoalService) CreateGoal(req request.CreateGoalRequest) (*model.Goal, error) {
	now := time.Now()
	goal := &model.Goal{
		ID:        uuid.New().String(),
		Purpose:   req.Purpose,
		Amount:    req.Amount,
		Timeframe: strings.TrimSpace(req.Timeframe),
		Priority:  strings.ToLower(strings.TrimSpace(req.Priority)),
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.goalRepo.CreateGoal(*goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// UpdateGoal applies the provided fields to an existing goal.
// Only non-nil request fields are changed.
func (s *GoalService) UpdateGoal(id string, req request.UpdateGoalRequest) (*model.Goal, error) {
	goal, err := s.goalRepo.GetGoalOnID(id)
	if err != nil {
		return nil, err
	}

	if req.Purpose != nil {
		goal.Purpose = *req.Purpose
	}
	if req.Amount != nil {
		goal.Amount = *req.Amount
	}
	if req.Timeframe != nil {
		goal.Timeframe = strings.TrimSpace(*req.Timeframe)
	}
	if req.Priority != nil {
		goal.Priority = strings.ToLower(strings.TrimSpace(*req.Priority))
	}
	if req.Notes != nil {
		goal.Notes = *req.Notes
	}
	goal.UpdatedAt = time.Now()

	if err := s.goalRepo.UpdateGoal(goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &goal, nil
}

// DeleteGoal removes a goal by its ID.
func (s *GoalService) DeleteGoal(id string) error {
	return s.goalRepo.DeleteGoal(id)
}
