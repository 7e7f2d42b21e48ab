package validation

import (
	"strings"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
)

// ValidateExchangeToken checks the request body for completing the brokerage
// login flow.
func ValidateExchangeToken(req request.ExchangeTokenRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.RequestToken) == "" {
		errors["requestToken"] = "requestToken is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
