package model

import "time"

// Expense represents a recurring outflow declared by the user.
// Frequency is one of monthly, quarterly, yearly or one-time.
type Expense struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Frequency string    `json:"frequency"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
