package validation

import (
	"strings"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
)

// ValidateCreateInvestment checks the request body for declaring an external
// investment. The asset type is deliberately not restricted to a fixed list:
// unrecognised types are grouped under "others" during analysis.
func ValidateCreateInvestment(req request.CreateInvestmentRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be greater than zero"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateInvestment checks the request body for updating an investment.
func ValidateUpdateInvestment(req request.UpdateInvestmentRequest) error {
	errors := make(map[string]string)

	if req.Name == nil && req.Type == nil && req.Amount == nil && req.Notes == nil {
		errors["body"] = "at least one field must be provided"
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if req.Amount != nil && *req.Amount <= 0 {
		errors["amount"] = "amount must be greater than zero"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
