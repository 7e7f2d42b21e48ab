package request

// CreateInvestmentRequest is the request body for declaring a new external investment.
type CreateInvestmentRequest struct {
	Name   string  `json:"name"`   // Name is a free-form label (e.g. "Sovereign Gold Bonds").
	Type   string  `json:"type"`   // Type is the asset class (gold, fixed_deposit, real_estate, ...).
	Amount float64 `json:"amount"` // Amount is the current value in rupees.
	Notes  string  `json:"notes,omitempty"`
}

// UpdateInvestmentRequest is the request body for updating an existing investment.
// All fields are optional (pointers). Only provided fields are updated.
type UpdateInvestmentRequest struct {
	Name   *string  `json:"name,omitempty"`
	Type   *string  `json:"type,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}
