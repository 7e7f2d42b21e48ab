package request

// CreateExpenseRequest is the request body for declaring a recurring expense.
type CreateExpenseRequest struct {
	Name      string  `json:"name"`      // Name is a free-form label (e.g. "Rent").
	Type      string  `json:"type"`      // Type is the expense category (housing, food, transport, ...).
	Amount    float64 `json:"amount"`    // Amount is the cost per occurrence in rupees.
	Frequency string  `json:"frequency"` // Frequency is one of: monthly, quarterly, yearly, one-time.
	Notes     string  `json:"notes,omitempty"`
}

// UpdateExpenseRequest is the request body for updating an existing expense.
// All fields are optional (pointers). Only provided fields are updated.
type UpdateExpenseRequest struct {
	Name      *string  `json:"name,omitempty"`
	Type      *string  `json:"type,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
	Frequency *string  `json:"frequency,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}
