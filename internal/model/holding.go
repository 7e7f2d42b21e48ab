package model

import "time"

// EquityHolding represents a directly held stock position mirrored from the
// last brokerage sync. The mirror is replaced wholesale on every sync; rows
// are never edited by hand.
type EquityHolding struct {
	ID           string    `json:"id"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	Exchange     string    `json:"exchange,omitempty"`
	ISIN         string    `json:"isin,omitempty"`
	Quantity     float64   `json:"quantity"`
	AverageCost  float64   `json:"averageCost"`
	CurrentPrice float64   `json:"currentPrice"`
	Sector       string    `json:"sector,omitempty"`
	SyncedAt     time.Time `json:"syncedAt"`
}

// FundHolding represents a mutual fund position mirrored from the last
// brokerage sync.
type FundHolding struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Folio          string    `json:"folio,omitempty"`
	Units          float64   `json:"units"`
	AverageNAV     float64   `json:"averageNav"`
	InvestedAmount float64   `json:"investedAmount"`
	CurrentValue   float64   `json:"currentValue"`
	Category       string    `json:"category,omitempty"`
	SyncedAt       time.Time `json:"syncedAt"`
}

// HoldingsOverview bundles both holding families for API responses.
type HoldingsOverview struct {
	Equities []EquityHolding `json:"equities"`
	Funds    []FundHolding   `json:"funds"`
	SyncedAt *time.Time      `json:"syncedAt,omitempty"`
}
