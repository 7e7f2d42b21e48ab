package repository

import (
	"database/sql"
	"fmt"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
)

// HoldingRepository provides data access methods for the equity_holding and
// fund_holding tables. Both tables mirror the last brokerage sync, so writes
// replace the entire mirror inside one transaction rather than editing rows.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetEquityHoldings retrieves the mirrored equity holdings ordered by symbol.
// Returns an empty slice when no sync has run yet.
func (s *HoldingRepository) GetEquityHoldings() ([]model.EquityHolding, error) {
	query := `
          SELECT id, symbol, name, exchange, isin, quantity, average_cost, current_price, sector, synced_at
          FROM equity_holding
          ORDER BY symbol
      `
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query equity_holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.EquityHolding{}

	for rows.Next() {
		var h model.EquityHolding

		err := rows.Scan(
			&h.ID,
			&h.Symbol,
			&h.Name,
			&h.Exchange,
			&h.ISIN,
			&h.Quantity,
			&h.AverageCost,
			&h.CurrentPrice,
			&h.Sector,
			&h.SyncedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan equity_holding results: %w", err)
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equity_holding table: %w", err)
	}

	return holdings, nil
}

// GetFundHoldings retrieves the mirrored mutual fund holdings ordered by name.
// Returns an empty slice when no sync has run yet.
func (s *HoldingRepository) GetFundHoldings() ([]model.FundHolding, error) {
	query := `
          SELECT id, name, folio, units, average_nav, invested_amount, current_value, category, synced_at
          FROM fund_holding
          ORDER BY name
      `
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.FundHolding{}

	for rows.Next() {
		var h model.FundHolding

		err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.Folio,
			&h.Units,
			&h.AverageNAV,
			&h.InvestedAmount,
			&h.CurrentValue,
			&h.Category,
			&h.SyncedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund_holding results: %w", err)
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_holding table: %w", err)
	}

	return holdings, nil
}

// ReplaceHoldings swaps the entire holdings mirror for the given sets inside
// a single transaction, so readers never observe a half-synced state.
func (s *HoldingRepository) ReplaceHoldings(equities []model.EquityHolding, funds []model.FundHolding) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin holdings transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM equity_holding"); err != nil {
		return fmt.Errorf("failed to clear equity_holding table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM fund_holding"); err != nil {
		return fmt.Errorf("failed to clear fund_holding table: %w", err)
	}

	if err := insertEquityHoldings(tx, equities); err != nil {
		return err
	}
	if err := insertFundHoldings(tx, funds); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit holdings transaction: %w", err)
	}

	return nil
}

func insertEquityHoldings(tx *sql.Tx, holdings []model.EquityHolding) error {
	query := `
          INSERT INTO equity_holding (id, symbol, name, exchange, isin, quantity, average_cost, current_price, sector, synced_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `
	for _, h := range holdings {
		_, err := tx.Exec(query,
			h.ID,
			h.Symbol,
			h.Name,
			h.Exchange,
			h.ISIN,
			h.Quantity,
			h.AverageCost,
			h.CurrentPrice,
			h.Sector,
			h.SyncedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert equity holding %s: %w", h.Symbol, err)
		}
	}
	return nil
}

func insertFundHoldings(tx *sql.Tx, holdings []model.FundHolding) error {
	query := `
          INSERT INTO fund_holding (id, name, folio, units, average_nav, invested_amount, current_value, category, synced_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
      `
	for _, h := range holdings {
		_, err := tx.Exec(query,
			h.ID,
			h.Name,
			h.Folio,
			h.Units,
			h.AverageNAV,
			h.InvestedAmount,
			h.CurrentValue,
			h.Category,
			h.SyncedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert fund holding %s: %w", h.Name, err)
		}
	}
	return nil
}
