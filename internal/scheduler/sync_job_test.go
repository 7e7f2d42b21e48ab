package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/testutil"
)

// TestHoldingsSyncJob_Run tests the scheduled holdings refresh.
//
// WHY: The job runs unattended. A disconnected broker is an everyday state
// (the user simply has not linked an account), so it must not be reported as
// a job failure that pages anyone.
func TestHoldingsSyncJob_Run(t *testing.T) {
	t.Run("skips quietly when no broker session exists", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient()
		bs := testutil.NewTestBrokerService(t, db, mock)
		job := NewHoldingsSyncJob(bs, zerolog.Nop())

		// Execute
		err := job.Run()

		// Assert
		if err != nil {
			t.Errorf("Run() returned unexpected error: %v", err)
		}
		if mock.CallCount != 0 {
			t.Errorf("Expected no brokerage calls, got %d", mock.CallCount)
		}
		testutil.AssertRowCount(t, db, "equity_holding", 0)
	})

	t.Run("refreshes the mirror when a session exists", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient()
		bs := testutil.NewTestBrokerService(t, db, mock)

		if _, err := bs.ExchangeToken(context.Background(), "login"); err != nil {
			t.Fatalf("ExchangeToken() returned unexpected error: %v", err)
		}

		job := NewHoldingsSyncJob(bs, zerolog.Nop())

		// Execute
		err := job.Run()

		// Assert
		if err != nil {
			t.Fatalf("Run() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "equity_holding", 2)
		testutil.AssertRowCount(t, db, "fund_holding", 1)
	})

	t.Run("reports sync failures", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient()
		bs := testutil.NewTestBrokerService(t, db, mock)

		if _, err := bs.ExchangeToken(context.Background(), "login"); err != nil {
			t.Fatalf("ExchangeToken() returned unexpected error: %v", err)
		}
		mock.WithError(errors.New("brokerage unavailable"))

		job := NewHoldingsSyncJob(bs, zerolog.Nop())

		// Execute
		err := job.Run()

		// Assert
		if err == nil {
			t.Error("Expected the sync failure to surface")
		}
	})
}

func TestHoldingsSyncJob_Name(t *testing.T) {
	job := NewHoldingsSyncJob(nil, zerolog.Nop())
	if job.Name() != "holdings_sync" {
		t.Errorf("Expected job name 'holdings_sync', got '%s'", job.Name())
	}
}
