package request

// CreateGoalRequest is the request body for declaring a planned future expense.
type CreateGoalRequest struct {
	Purpose   string  `json:"purpose"`   // Purpose is the goal category (house, education, retirement, ...).
	Amount    float64 `json:"amount"`    // Amount is the target in rupees.
	Timeframe string  `json:"timeframe"` // Timeframe is free text like "6 months" or "2 years".
	Priority  string  `json:"priority"`  // Priority is one of: high, medium, low.
	Notes     string  `json:"notes,omitempty"`
}

// UpdateGoalRequest is the request body for updating an existing goal.
// All fields are optional (pointers). Only provided fields are updated.
type UpdateGoalRequest struct {
	Purpose   *string  `json:"purpose,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Timeframe *string  `json:"timeframe,omitempty"`
	Priority  *string  `json:"priority,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}
