package model

import "time"

// ReportRecord is a stored analysis report row. The full report is kept as
// its JSON encoding; the table is trimmed so at most the configured number of
// recent reports survive.
type ReportRecord struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	Payload     []byte    `json:"-"`
}
