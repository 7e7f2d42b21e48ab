package validation

import (
	"strings"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
)

var ValidPriorities = map[string]bool{
	"high": true, "medium": true, "low": true,
}

// ValidateCreateGoal checks the request body for declaring a future expense.
// Timeframe is free text ("6 months", "2 years") and is parsed leniently at
// analysis time, so it is not validated here beyond being present or absent.
func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Purpose) == "" {
		errors["purpose"] = "purpose is required"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be greater than zero"
	}

	if req.Priority != "" && !ValidPriorities[strings.ToLower(strings.TrimSpace(req.Priority))] {
		errors["priority"] = "priority must be one of: high, medium, low"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateGoal checks the request body for updating a goal.
func ValidateUpdateGoal(req request.UpdateGoalRequest) error {
	errors := make(map[string]string)

	if req.Purpose == nil && req.Amount == nil && req.Timeframe == nil && req.Priority == nil && req.Notes == nil {
		errors["body"] = "at least one field must be provided"
	}

	if req.Purpose != nil && strings.TrimSpace(*req.Purpose) == "" {
		errors["purpose"] = "purpose cannot be empty"
	}

	if req.Amount != nil && *req.Amount <= 0 {
		errors["amount"] = "amount must be greater than zero"
	}

	if req.Priority != nil && *req.Priority != "" && !ValidPriorities[strings.ToLower(strings.TrimSpace(*req.Priority))] {
		errors["priority"] = "priority must be one of: high, medium, low"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
