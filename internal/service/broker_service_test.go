package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/kite"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/testutil"
)

// TestBrokerService_ExchangeToken tests the login completion flow.
//
// WHY: The access token is the only credential the backend holds for the
// brokerage. It must never reach the database in plaintext, and a repeated
// login must replace the previous session rather than accumulate rows.
func TestBrokerService_ExchangeToken(t *testing.T) {
	t.Run("stores a sealed session and reports connected", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient()
		svc := testutil.NewTestBrokerService(t, db, mock)

		// Execute
		status, err := svc.ExchangeToken(context.Background(), "request-token-from-redirect")

		// Assert
		if err != nil {
			t.Fatalf("ExchangeToken() returned unexpected error: %v", err)
		}

		if !status.Connected {
			t.Error("Expected connected status")
		}
		if status.UserID != "AB1234" || status.UserName != "Test User" {
			t.Errorf("Expected the brokerage identity, got %+v", status)
		}

		// The stored token must be sealed, not the plaintext access token.
		var storedToken string
		if err := db.QueryRow("SELECT encrypted_token FROM broker_session").Scan(&storedToken); err != nil {
			t.Fatalf("Failed to read stored session: %v", err)
		}
		if storedToken == mock.MockSession.AccessToken {
			t.Error("Access token was stored in plaintext")
		}
		if storedToken == "" {
			t.Error("Expected a sealed token, got an empty string")
		}
	})

	t.Run("a second login replaces the session", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient()
		svc := testutil.NewTestBrokerService(t, db, mock)

		// Execute
		if _, err := svc.ExchangeToken(context.Background(), "first-login"); err != nil {
			t.Fatalf("ExchangeToken() returned unexpected error: %v", err)
		}
		if _, err := svc.ExchangeToken(context.Background(), "second-login"); err != nil {
			t.Fatalf("ExchangeToken() returned unexpected error: %v", err)
		}

		// Assert
		testutil.AssertRowCount(t, db, "broker_session", 1)
	})

	t.Run("fails without brokerage credentials", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBrokerService(t, db, nil)

		// Execute
		_, err := svc.ExchangeToken(context.Background(), "request-token")

		// Assert
		if !errors.Is(err, apperrors.ErrBrokerNotConfigured) {
			t.Errorf("Expected ErrBrokerNotConfigured, got %v", err)
		}
	})

	t.Run("propagates brokerage rejections", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient().WithError(errors.New("brokerage error TokenException: Token is invalid"))
		svc := testutil.NewTestBrokerService(t, db, mock)

		// Execute
		_, err := svc.ExchangeToken(context.Background(), "stale-token")

		// Assert
		if err == nil {
			t.Fatal("Expected an error from the brokerage")
		}
		testutil.AssertRowCount(t, db, "broker_session", 0)
	})
}

// TestBrokerService_SyncHoldings tests the holdings mirror refresh.
//
// WHY: Sync is the pipeline that feeds equity and fund data into analysis.
// It must unseal the stored token, replace the mirror wholesale and stamp the
// sync time; a partial replace would leave analysis on mixed-vintage data.
func TestBrokerService_SyncHoldings(t *testing.T) {
	t.Run("mirrors holdings with sector and category enrichment", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient()
		svc := testutil.NewTestBrokerService(t, db, mock)

		if _, err := svc.ExchangeToken(context.Background(), "login"); err != nil {
			t.Fatalf("ExchangeToken() returned unexpected error: %v", err)
		}

		// Execute
		overview, err := svc.SyncHoldings(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("SyncHoldings() returned unexpected error: %v", err)
		}

		if len(overview.Equities) != 2 {
			t.Fatalf("Expected 2 equities, got %d", len(overview.Equities))
		}
		if len(overview.Funds) != 1 {
			t.Fatalf("Expected 1 fund, got %d", len(overview.Funds))
		}
		if overview.SyncedAt == nil {
			t.Error("Expected a sync timestamp")
		}

		for _, h := range overview.Equities {
			if h.Symbol == "RELIANCE" && h.Sector != "Energy" {
				t.Errorf("Expected RELIANCE enriched with the Energy sector, got %q", h.Sector)
			}
		}

		fund := overview.Funds[0]
		if fund.Category != "Flexi Cap" {
			t.Errorf("Expected the fund categorised as Flexi Cap, got %q", fund.Category)
		}
		if fund.InvestedAmount != 25000 || fund.CurrentValue != 31000 {
			t.Errorf("Expected derived fund amounts 25000/31000, got %v/%v", fund.InvestedAmount, fund.CurrentValue)
		}

		testutil.AssertRowCount(t, db, "equity_holding", 2)
		testutil.AssertRowCount(t, db, "fund_holding", 1)
	})

	t.Run("replaces the mirror wholesale on the next sync", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient()
		svc := testutil.NewTestBrokerService(t, db, mock)

		if _, err := svc.ExchangeToken(context.Background(), "login"); err != nil {
			t.Fatalf("ExchangeToken() returned unexpected error: %v", err)
		}
		if _, err := svc.SyncHoldings(context.Background()); err != nil {
			t.Fatalf("SyncHoldings() returned unexpected error: %v", err)
		}

		// The portfolio shrinks to a single position.
		mock.WithHoldings([]kite.Holding{
			{TradingSymbol: "TCS", Exchange: "NSE", Quantity: 5, AveragePrice: 3200, LastPrice: 3400},
		}).WithMFHoldings([]kite.MFHolding{})

		// Execute
		overview, err := svc.SyncHoldings(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("SyncHoldings() returned unexpected error: %v", err)
		}

		if len(overview.Equities) != 1 || overview.Equities[0].Symbol != "TCS" {
			t.Errorf("Expected only TCS after the second sync, got %+v", overview.Equities)
		}

		testutil.AssertRowCount(t, db, "equity_holding", 1)
		testutil.AssertRowCount(t, db, "fund_holding", 0)
	})

	t.Run("stamps the session with the sync time", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient()
		svc := testutil.NewTestBrokerService(t, db, mock)

		if _, err := svc.ExchangeToken(context.Background(), "login"); err != nil {
			t.Fatalf("ExchangeToken() returned unexpected error: %v", err)
		}

		// Execute
		if _, err := svc.SyncHoldings(context.Background()); err != nil {
			t.Fatalf("SyncHoldings() returned unexpected error: %v", err)
		}

		// Assert
		status, err := svc.Status()
		if err != nil {
			t.Fatalf("Status() returned unexpected error: %v", err)
		}
		if status.LastSyncedAt == nil {
			t.Error("Expected LastSyncedAt to be stamped after a sync")
		}
	})

	t.Run("fails without a stored session", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBrokerService(t, db, testutil.NewMockKiteClient())

		// Execute
		_, err := svc.SyncHoldings(context.Background())

		// Assert
		if !errors.Is(err, apperrors.ErrBrokerSessionNotFound) {
			t.Errorf("Expected ErrBrokerSessionNotFound, got %v", err)
		}
	})

	t.Run("rejects a token sealed under an unknown key", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBrokerService(t, db, testutil.NewMockKiteClient())

		// A session row whose token this service's keyring cannot open.
		testutil.NewBrokerSession().Build(t, db)

		// Execute
		_, err := svc.SyncHoldings(context.Background())

		// Assert
		if !errors.Is(err, apperrors.ErrFailedToOpenToken) {
			t.Errorf("Expected ErrFailedToOpenToken, got %v", err)
		}
	})
}

// TestBrokerService_Status tests connection state reporting.
func TestBrokerService_Status(t *testing.T) {
	t.Run("disconnected is a normal state, not an error", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBrokerService(t, db, testutil.NewMockKiteClient())

		// Execute
		status, err := svc.Status()

		// Assert
		if err != nil {
			t.Fatalf("Status() returned unexpected error: %v", err)
		}
		if status.Connected {
			t.Error("Expected disconnected status with no session")
		}
		if status.UserID != "" || status.LastSyncedAt != nil {
			t.Errorf("Expected an empty status, got %+v", status)
		}
	})
}

// TestBrokerService_Disconnect tests the session teardown.
//
// WHY: Disconnecting must invalidate the token at the brokerage and remove
// the local session, but keep the holdings mirror so analysis continues on
// last-known data.
func TestBrokerService_Disconnect(t *testing.T) {
	t.Run("removes the session but keeps the holdings mirror", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		mock := testutil.NewMockKiteClient()
		svc := testutil.NewTestBrokerService(t, db, mock)

		if _, err := svc.ExchangeToken(context.Background(), "login"); err != nil {
			t.Fatalf("ExchangeToken() returned unexpected error: %v", err)
		}
		if _, err := svc.SyncHoldings(context.Background()); err != nil {
			t.Fatalf("SyncHoldings() returned unexpected error: %v", err)
		}

		// Execute
		if err := svc.Disconnect(context.Background()); err != nil {
			t.Fatalf("Disconnect() returned unexpected error: %v", err)
		}

		// Assert
		if !mock.Invalidated {
			t.Error("Expected the brokerage session to be invalidated")
		}

		status, err := svc.Status()
		if err != nil {
			t.Fatalf("Status() returned unexpected error: %v", err)
		}
		if status.Connected {
			t.Error("Expected disconnected status after Disconnect")
		}

		testutil.AssertRowCount(t, db, "broker_session", 0)
		testutil.AssertRowCount(t, db, "equity_holding", 2)
		testutil.AssertRowCount(t, db, "fund_holding", 1)
	})

	t.Run("fails without a stored session", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBrokerService(t, db, testutil.NewMockKiteClient())

		// Execute
		err := svc.Disconnect(context.Background())

		// Assert
		if !errors.Is(err, apperrors.ErrBrokerSessionNotFound) {
			t.Errorf("Expected ErrBrokerSessionNotFound, got %v", err)
		}
	})
}

// TestBrokerService_GetHoldings tests mirror reads.
func TestBrokerService_GetHoldings(t *testing.T) {
	t.Run("returns an empty overview before the first sync", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBrokerService(t, db, testutil.NewMockKiteClient())

		// Execute
		overview, err := svc.GetHoldings()

		// Assert
		if err != nil {
			t.Fatalf("GetHoldings() returned unexpected error: %v", err)
		}
		if len(overview.Equities) != 0 || len(overview.Funds) != 0 {
			t.Errorf("Expected an empty mirror, got %+v", overview)
		}
		if overview.SyncedAt != nil {
			t.Error("Expected no sync timestamp before the first sync")
		}
	})

	t.Run("serves the mirror without contacting the brokerage", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		testutil.CreateEquityHolding(t, db, "INFY", 20, 1500, 1450)
		testutil.CreateFundHolding(t, db, "Axis Small Cap Fund", 20000, 26000)

		mock := testutil.NewMockKiteClient()
		svc := testutil.NewTestBrokerService(t, db, mock)

		// Execute
		overview, err := svc.GetHoldings()

		// Assert
		if err != nil {
			t.Fatalf("GetHoldings() returned unexpected error: %v", err)
		}
		if len(overview.Equities) != 1 || len(overview.Funds) != 1 {
			t.Errorf("Expected the seeded mirror, got %+v", overview)
		}
		if mock.CallCount != 0 {
			t.Errorf("Expected no brokerage calls, got %d", mock.CallCount)
		}
	})
}
