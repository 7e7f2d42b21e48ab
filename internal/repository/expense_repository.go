package repository

import (
	"database/sql"
	"fmt"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
)

// ExpenseRepository provides data access methods for the recurring_expense table.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository with the provided database connection.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// GetExpenses retrieves all recurring expenses ordered by creation time.
// Returns an empty slice when none exist.
func (s *ExpenseRepository) GetExpenses() ([]model.Expense, error) {
	query := `
          SELECT id, name, type, amount, frequency, notes, created_at, updated_at
          FROM recurring_expense
          ORDER BY created_at
      `
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring_expense table: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}

	for rows.Next() {
		var exp model.Expense

		err := rows.Scan(
			&exp.ID,
			&exp.Name,
			&exp.Type,
			&exp.Amount,
			&exp.Frequency,
			&exp.Notes,
			&exp.CreatedAt,
			&exp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring_expense results: %w", err)
		}

		expenses = append(expenses, exp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring_expense table: %w", err)
	}

	return expenses, nil
}

// GetExpenseOnID retrieves a single recurring expense by ID.
func (s *ExpenseRepository) GetExpenseOnID(id string) (model.Expense, error) {
	query := `
          SELECT id, name, type, amount, frequency, notes, created_at, updated_at
          FROM recurring_expense
          WHERE id = ?
      `
	var exp model.Expense

	err := s.db.QueryRow(query, id).Scan(
		&exp.ID,
		&exp.Name,
		&exp.Type,
		&exp.Amount,
		&exp.Frequency,
		&exp.Notes,
		&exp.CreatedAt,
		&exp.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Expense{}, apperrors.ErrExpenseNotFound
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to query recurring expense: %w", err)
	}

	return exp, nil
}

// CreateExpense inserts a new recurring expense row.
func (s *ExpenseRepository) CreateExpense(exp model.Expense) error {
	query := `
          INSERT INTO recurring_expense (id, name, type, amount, frequency, notes, created_at, updated_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?)
      `
	_, err := s.db.Exec(query,
		exp.ID,
		exp.Name,
		exp.Type,
		exp.Amount,
		exp.Frequency,
		exp.Notes,
		exp.CreatedAt,
		exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert recurring expense: %w", err)
	}

	return nil
}

// UpdateExpense updates an existing recurring expense row.
// Returns apperrors.ErrExpenseNotFound when no row matches the ID.
func (s *ExpenseRepository) UpdateExpense(exp model.Expense) error {
	query := `
          UPDATE recurring_expense
          SET name = ?, type = ?, amount = ?, frequency = ?, notes = ?, updated_at = ?
          WHERE id = ?
      `
	result, err := s.db.Exec(query,
		exp.Name,
		exp.Type,
		exp.Amount,
		exp.Frequency,
		exp.Notes,
		exp.UpdatedAt,
		exp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrExpenseNotFound
	}

	return nil
}

// DeleteExpense removes a recurring expense row.
// Returns apperrors.ErrExpenseNotFound when no row matches the ID.
func (s *ExpenseRepository) DeleteExpense(id string) error {
	result, err := s.db.Exec("DELETE FROM recurring_expense WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete recurring expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrExpenseNotFound
	}

	return nil
}
