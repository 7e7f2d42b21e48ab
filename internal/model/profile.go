package model

import "time"

// Profile represents the investor context used to flavour analysis runs.
// A single profile row exists per installation; FinancialGoals is stored as
// a JSON array in the database.
type Profile struct {
	ID             string    `json:"id"`
	Age            int       `json:"age"`
	City           string    `json:"city"`
	RiskTolerance  string    `json:"riskTolerance"`
	FinancialGoals []string  `json:"financialGoals"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
