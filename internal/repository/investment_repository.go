package repository

import (
	"database/sql"
	"fmt"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
)

// InvestmentRepository provides data access methods for the
// external_investment table.
type InvestmentRepository struct {
	db *sql.DB
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// GetInvestments retrieves all external investments ordered by creation time.
// Returns an empty slice when none exist.
func (s *InvestmentRepository) GetInvestments() ([]model.Investment, error) {
	query := `
          SELECT id, name, type, amount, notes, created_at, updated_at
          FROM external_investment
          ORDER BY created_at
      `
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query external_investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}

	for rows.Next() {
		var inv model.Investment

		err := rows.Scan(
			&inv.ID,
			&inv.Name,
			&inv.Type,
			&inv.Amount,
			&inv.Notes,
			&inv.CreatedAt,
			&inv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan external_investment results: %w", err)
		}

		investments = append(investments, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating external_investment table: %w", err)
	}

	return investments, nil
}

// GetInvestmentOnID retrieves a single external investment by ID.
func (s *InvestmentRepository) GetInvestmentOnID(id string) (model.Investment, error) {
	query := `
          SELECT id, name, type, amount, notes, created_at, updated_at
          FROM external_investment
          WHERE id = ?
      `
	var inv model.Investment

	err := s.db.QueryRow(query, id).Scan(
		&inv.ID,
		&inv.Name,
		&inv.Type,
		&inv.Amount,
		&inv.Notes,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to query external investment: %w", err)
	}

	return inv, nil
}

// CreateInvestment inserts a new external investment row.
func (s *InvestmentRepository) CreateInvestment(inv model.Investment) error {
	query := `
          INSERT INTO external_investment (id, name, type, amount, notes, created_at, updated_at)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `
	_, err := s.db.Exec(query,
		inv.ID,
		inv.Name,
		inv.Type,
		inv.Amount,
		inv.Notes,
		inv.CreatedAt,
		inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert external investment: %w", err)
	}

	return nil
}

// UpdateInvestment updates an existing external investment row.
// Returns apperrors.ErrInvestmentNotFound when no row matches the ID.
func (s *InvestmentRepository) UpdateInvestment(inv model.Investment) error {
	query := `
          UPDATE external_investment
          SET name = ?, type = ?, amount = ?, notes = ?, updated_at = ?
          WHERE id = ?
      `
	result, err := s.db.Exec(query,
		inv.Name,
		inv.Type,
		inv.Amount,
		inv.Notes,
		inv.UpdatedAt,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update external investment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}

// DeleteInvestment removes an external investment row.
// Returns apperrors.ErrInvestmentNotFound when no row matches the ID.
func (s *InvestmentRepository) DeleteInvestment(id string) error {
	result, err := s.db.Exec("DELETE FROM external_investment WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete external investment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}
