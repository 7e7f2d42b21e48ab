package request

// SaveProfileRequest is the request body for creating or replacing the user
// profile. The profile is a single record; saving twice overwrites.
type SaveProfileRequest struct {
	Age            int      `json:"age"`
	City           string   `json:"city,omitempty"`
	RiskTolerance  string   `json:"riskTolerance"` // RiskTolerance is one of: conservative, moderate, aggressive.
	FinancialGoals []string `json:"financialGoals,omitempty"`
}
