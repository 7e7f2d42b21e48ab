package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
)

// ProfileRepository provides data access methods for the user_profile table.
// The table holds at most one row; FinancialGoals round-trips through a JSON
// array column.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository with the provided database connection.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetProfile retrieves the profile row.
// Returns apperrors.ErrProfileNotFound when no profile has been saved yet.
func (s *ProfileRepository) GetProfile() (model.Profile, error) {
	query := `
          SELECT id, age, city, risk_tolerance, financial_goals, created_at, updated_at
          FROM user_profile
          LIMIT 1
      `
	var (
		p        model.Profile
		goalsRaw string
	)

	err := s.db.QueryRow(query).Scan(
		&p.ID,
		&p.Age,
		&p.City,
		&p.RiskTolerance,
		&goalsRaw,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Profile{}, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to query user profile: %w", err)
	}

	if err := json.Unmarshal([]byte(goalsRaw), &p.FinancialGoals); err != nil {
		return model.Profile{}, fmt.Errorf("failed to decode financial goals: %w", err)
	}

	return p, nil
}

// SaveProfile inserts the profile row or replaces the existing one.
func (s *ProfileRepository) SaveProfile(p model.Profile) error {
	goalsRaw, err := json.Marshal(p.FinancialGoals)
	if err != nil {
		return fmt.Errorf("failed to encode financial goals: %w", err)
	}

	query := `
          INSERT INTO user_profile (id, age, city, risk_tolerance, financial_goals, created_at, updated_at)
          VALUES (?, ?, ?, ?, ?, ?, ?)
          ON CONFLICT(id) DO UPDATE SET
              age = excluded.age,
              city = excluded.city,
              risk_tolerance = excluded.risk_tolerance,
              financial_goals = excluded.financial_goals,
              updated_at = excluded.updated_at
      `
	_, err = s.db.Exec(query,
		p.ID,
		p.Age,
		p.City,
		p.RiskTolerance,
		string(goalsRaw),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user profile: %w", err)
	}

	return nil
}
