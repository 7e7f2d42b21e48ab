package repository

import (
	"database/sql"
	"fmt"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
)

// ReportRepository provides data access methods for the analysis_report
// table: the durable copy of the bounded report history. Inserting trims the
// table in the same transaction so it never holds more than the cap.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new ReportRepository with the provided database connection.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// InsertReport stores a report and deletes the oldest rows beyond keep.
// Both statements run in one transaction, so a crash cannot leave the table
// over the cap with the new report missing.
func (s *ReportRepository) InsertReport(record model.ReportRecord, keep int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin report transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
          INSERT INTO analysis_report (id, generated_at, payload)
          VALUES (?, ?, ?)
      `
	if _, err := tx.Exec(query, record.ID, record.GeneratedAt, string(record.Payload)); err != nil {
		return fmt.Errorf("failed to insert analysis report: %w", err)
	}

	trim := `
          DELETE FROM analysis_report
          WHERE id NOT IN (
              SELECT id FROM analysis_report
              ORDER BY generated_at DESC, id DESC
              LIMIT ?
          )
      `
	if _, err := tx.Exec(trim, keep); err != nil {
		return fmt.Errorf("failed to trim analysis reports: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report transaction: %w", err)
	}

	return nil
}

// RecentReports retrieves up to limit stored reports, newest first.
// Returns an empty slice when no reports exist.
func (s *ReportRepository) RecentReports(limit int) ([]model.ReportRecord, error) {
	query := `
          SELECT id, generated_at, payload
          FROM analysis_report
          ORDER BY generated_at DESC, id DESC
          LIMIT ?
      `
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis_report table: %w", err)
	}
	defer rows.Close()

	records := []model.ReportRecord{}

	for rows.Next() {
		var (
			record  model.ReportRecord
			payload string
		)

		if err := rows.Scan(&record.ID, &record.GeneratedAt, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan analysis_report results: %w", err)
		}
		record.Payload = []byte(payload)

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analysis_report table: %w", err)
	}

	return records, nil
}

// CountReports returns the number of stored reports.
func (s *ReportRepository) CountReports() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM analysis_report").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analysis reports: %w", err)
	}
	return count, nil
}
