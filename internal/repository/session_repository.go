package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
)

// SessionRepository provides data access methods for the broker_session
// table. A single session row exists at a time; connecting again replaces it.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository with the provided database connection.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetSession retrieves the stored broker session.
// Returns apperrors.ErrBrokerSessionNotFound when no session exists.
func (s *SessionRepository) GetSession() (model.BrokerSession, error) {
	query := `
          SELECT id, user_id, user_name, encrypted_token, connected_at, last_synced_at
          FROM broker_session
          LIMIT 1
      `
	var (
		session    model.BrokerSession
		lastSynced sql.NullTime
	)

	err := s.db.QueryRow(query).Scan(
		&session.ID,
		&session.UserID,
		&session.UserName,
		&session.EncryptedToken,
		&session.ConnectedAt,
		&lastSynced,
	)
	if err == sql.ErrNoRows {
		return model.BrokerSession{}, apperrors.ErrBrokerSessionNotFound
	}
	if err != nil {
		return model.BrokerSession{}, fmt.Errorf("failed to query broker session: %w", err)
	}

	if lastSynced.Valid {
		t := lastSynced.Time
		session.LastSyncedAt = &t
	}

	return session, nil
}

// SaveSession replaces any stored session with the given one.
func (s *SessionRepository) SaveSession(session model.BrokerSession) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin session transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM broker_session"); err != nil {
		return fmt.Errorf("failed to clear broker_session table: %w", err)
	}

	query := `
          INSERT INTO broker_session (id, user_id, user_name, encrypted_token, connected_at, last_synced_at)
          VALUES (?, ?, ?, ?, ?, ?)
      `
	_, err = tx.Exec(query,
		session.ID,
		session.UserID,
		session.UserName,
		session.EncryptedToken,
		session.ConnectedAt,
		session.LastSyncedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert broker session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session transaction: %w", err)
	}

	return nil
}

// TouchLastSynced records a successful holdings sync on the stored session.
func (s *SessionRepository) TouchLastSynced(id string, syncedAt time.Time) error {
	result, err := s.db.Exec(
		"UPDATE broker_session SET last_synced_at = ? WHERE id = ?",
		syncedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update broker session sync time: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBrokerSessionNotFound
	}

	return nil
}

// DeleteSession removes the stored broker session, if any.
func (s *SessionRepository) DeleteSession() error {
	if _, err := s.db.Exec("DELETE FROM broker_session"); err != nil {
		return fmt.Errorf("failed to delete broker session: %w", err)
	}
	return nil
}
