package validation

import (
	"strings"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
)

var ValidFrequencies = map[string]bool{
	"monthly": true, "quarterly": true, "yearly": true, "one-time": true,
}

// ValidateCreateExpense checks the request body for declaring a recurring expense.
func ValidateCreateExpense(req request.CreateExpenseRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be greater than zero"
	}

	if !ValidFrequencies[strings.ToLower(strings.TrimSpace(req.Frequency))] {
		errors["frequency"] = "frequency must be one of: monthly, quarterly, yearly, one-time"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateExpense checks the request body for updating an expense.
func ValidateUpdateExpense(req request.UpdateExpenseRequest) error {
	errors := make(map[string]string)

	if req.Name == nil && req.Type == nil && req.Amount == nil && req.Frequency == nil && req.Notes == nil {
		errors["body"] = "at least one field must be provided"
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if req.Amount != nil && *req.Amount <= 0 {
		errors["amount"] = "amount must be greater than zero"
	}

	if req.Frequency != nil && !ValidFrequencies[strings.ToLower(strings.TrimSpace(*req.Frequency))] {
		errors["frequency"] = "frequency must be one of: monthly, quarterly, yearly, one-time"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
