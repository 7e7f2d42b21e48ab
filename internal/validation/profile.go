package validation

import (
	"strings"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
)

var ValidRiskTolerances = map[string]bool{
	"conservative": true, "moderate": true, "aggressive": true,
}

// ValidateSaveProfile checks the request body for saving the user profile.
func ValidateSaveProfile(req request.SaveProfileRequest) error {
	errors := make(map[string]string)

	if req.Age <= 0 || req.Age > 120 {
		errors["age"] = "age must be between 1 and 120"
	}

	if req.RiskTolerance != "" && !ValidRiskTolerances[strings.ToLower(strings.TrimSpace(req.RiskTolerance))] {
		errors["riskTolerance"] = "riskTolerance must be one of: conservative, moderate, aggressive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
