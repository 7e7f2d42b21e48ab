package model

import "time"

// Goal represents a planned future expense with a target horizon.
// Timeframe is stored as the user typed it ("6 months", "2 years"); it is
// parsed into a structured value at the analysis boundary, never here.
type Goal struct {
	ID        string    `json:"id"`
	Purpose   string    `json:"purpose"`
	Amount    float64   `json:"amount"`
	Timeframe string    `json:"timeframe"`
	Priority  string    `json:"priority"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
