package repository

import (
	"database/sql"
	"fmt"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
)

// GoalRepository provides data access methods for the future_expense table.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// GetGoals retrieves all future expenses ordered by creation time.
// Returns an empty slice when none exist.
func (s *GoalRepository) GetGoals() ([]model.Goal, error) {
	query := `
          SELECT id, purpose, amount, timeframe, priority, notes, created_at, updated_at
          FROM future_expense
          ORDER BY created_at
      `
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query future_expense table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}

	for rows.Next() {
		var g model.Goal

		err := rows.Scan(
			&g.ID,
			&g.Purpose,
			&g.Amount,
			&g.Timeframe,
			&g.Priority,
			&g.Notes,
			&g.CreatedAt,
			&g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan future_expense results: %w", err)
		}

		goals = append(goals, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating future_expense table: %w", err)
	}

	return goals, nil
}

// GetGoalOnID retrieves a single future expense by ID.
func (s *GoalRepository) GetGoalOnID(id string) (model.Goal, error) {
	query := `
          SELECT id, purpose, amount, timeframe, priority, notes, created_at, updated_at
          FROM future_expense
          WHERE id = ?
      `
	var g model.Goal

	err := s.db.QueryRow(query, id).Scan(
		&g.ID,
		&g.Purpose,
		&g.Amount,
		&g.Timeframe,
		&g.Priority,
		&g.Notes,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Goal{}, apperrors.ErrGoalNotFound
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to query future expense: %w", err)
	}

	return g, nil
}

// CreateGoal inserts a new future expense row.
func (s *GoalRepository) CreateGoal(g model.Goal) error {
	query := `
          INSERT INTO future_expense (id, purpose, amount, timeframe, priority, notes, created_at, updated_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?)
      `
	_, err := s.db.Exec(query,
		g.ID,
		g.Purpose,
		g.Amount,
		g.Timeframe,
		g.Priority,
		g.Notes,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert future expense: %w", err)
	}

	return nil
}

// UpdateGoal updates an existing future expense row.
// Returns apperrors.ErrGoalNotFound when no row matches the ID.
func (s *GoalRepository) UpdateGoal(g model.Goal) error {
	query := `
          UPDATE future_expense
          SET purpose = ?, amount = ?, timeframe = ?, priority = ?, notes = ?, updated_at = ?
          WHERE id = ?
      `
	result, err := s.db.Exec(query,
		g.Purpose,
		g.Amount,
		g.Timeframe,
		g.Priority,
		g.Notes,
		g.UpdatedAt,
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update future expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

// DeleteGoal removes a future expense row.
// Returns apperrors.ErrGoalNotFound when no row matches the ID.
func (s *GoalRepository) DeleteGoal(id string) error {
	result, err := s.db.Exec("DELETE FROM future_expense WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete future expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}
