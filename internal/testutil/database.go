package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- User-declared external investments
		CREATE TABLE external_investment (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(50) NOT NULL,
			amount DECIMAL(15,2) NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		-- Recurring expenses
		CREATE TABLE recurring_expense (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(50) NOT NULL,
			amount DECIMAL(15,2) NOT NULL DEFAULT 0,
			frequency VARCHAR(20) NOT NULL DEFAULT 'monthly',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		-- Planned future expenses
		CREATE TABLE future_expense (
			id VARCHAR(36) PRIMARY KEY,
			purpose VARCHAR(50) NOT NULL,
			amount DECIMAL(15,2) NOT NULL DEFAULT 0,
			timeframe VARCHAR(100) NOT NULL DEFAULT '',
			priority VARCHAR(20) NOT NULL DEFAULT 'medium',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		-- Singleton user profile
		CREATE TABLE user_profile (
			id VARCHAR(36) PRIMARY KEY,
			age INTEGER NOT NULL DEFAULT 0,
			city VARCHAR(100) NOT NULL DEFAULT '',
			risk_tolerance VARCHAR(20) NOT NULL DEFAULT 'moderate',
			financial_goals TEXT NOT NULL DEFAULT '[]',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		-- Mirrored brokerage equity holdings
		CREATE TABLE equity_holding (
			id VARCHAR(36) PRIMARY KEY,
			symbol VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			exchange VARCHAR(20) NOT NULL DEFAULT '',
			isin VARCHAR(20) NOT NULL DEFAULT '',
			quantity DECIMAL(15,4) NOT NULL DEFAULT 0,
			average_cost DECIMAL(15,4) NOT NULL DEFAULT 0,
			current_price DECIMAL(15,4) NOT NULL DEFAULT 0,
			sector VARCHAR(100) NOT NULL DEFAULT '',
			synced_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		-- Mirrored brokerage mutual fund holdings
		CREATE TABLE fund_holding (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			folio VARCHAR(50) NOT NULL DEFAULT '',
			units DECIMAL(15,4) NOT NULL DEFAULT 0,
			average_nav DECIMAL(15,4) NOT NULL DEFAULT 0,
			invested_amount DECIMAL(15,2) NOT NULL DEFAULT 0,
			current_value DECIMAL(15,2) NOT NULL DEFAULT 0,
			category VARCHAR(100) NOT NULL DEFAULT '',
			synced_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		-- Brokerage session (single row)
		CREATE TABLE broker_session (
			id VARCHAR(36) PRIMARY KEY,
			user_id VARCHAR(100) NOT NULL,
			user_name VARCHAR(255) NOT NULL DEFAULT '',
			encrypted_token TEXT NOT NULL,
			connected_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_synced_at TIMESTAMP
		);

		-- Persisted analysis reports (bounded history)
		CREATE TABLE analysis_report (
			id VARCHAR(36) PRIMARY KEY,
			generated_at TIMESTAMP NOT NULL,
			payload TEXT NOT NULL
		);

		-- Indexes for performance
		CREATE INDEX idx_equity_holding_symbol ON equity_holding(symbol);
		CREATE INDEX idx_analysis_report_generated_at ON analysis_report(generated_at);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables.
// Useful for reusing the same database across multiple tests.
//
// Example usage:
//
//	func TestMultipleThings(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//
//	    t.Run("First test", func(t *testing.T) {
//	        // Create data
//	        testutil.CleanDatabase(t, db)  // Clean after
//	    })
//
//	    t.Run("Second test", func(t *testing.T) {
//	        // Fresh clean database
//	    })
//	}
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []string{
		"analysis_report",
		"broker_session",
		"fund_holding",
		"equity_holding",
		"user_profile",
		"future_expense",
		"recurring_expense",
		"external_investment",
	}

	for _, table := range tables {
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
//
// Example usage:
//
//	count := testutil.CountRows(t, db, "external_investment")
//	assert.Equal(t, 2, count)
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "external_investment", 2)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
