package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/testutil"
)

func TestHoldingsHandler_GetHoldings(t *testing.T) {
	setupHandler := func(t *testing.T) (*HoldingsHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		bs := testutil.NewTestBrokerService(t, db, testutil.NewMockKiteClient())
		return NewHoldingsHandler(bs), db
	}

	t.Run("returns empty overview before any sync", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/holdings", nil)
		w := httptest.NewRecorder()

		handler.GetHoldings(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var overview model.HoldingsOverview
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&overview)

		if len(overview.Equities) != 0 || len(overview.Funds) != 0 {
			t.Errorf("Expected empty overview, got %+v", overview)
		}
		if overview.SyncedAt != nil {
			t.Error("Expected no sync timestamp before the first sync")
		}
	})

	t.Run("returns mirrored holdings", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateEquityHolding(t, db, "TCS", 5, 3200, 3400)
		testutil.CreateEquityHolding(t, db, "INFY", 20, 1500, 1450)
		testutil.CreateFundHolding(t, db, "UTI Nifty 50 Index Fund", 60000, 66000)

		req := httptest.NewRequest(http.MethodGet, "/api/holdings", nil)
		w := httptest.NewRecorder()

		handler.GetHoldings(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var overview model.HoldingsOverview
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&overview)

		if len(overview.Equities) != 2 {
			t.Errorf("Expected 2 equities, got %d", len(overview.Equities))
		}
		if len(overview.Funds) != 1 {
			t.Errorf("Expected 1 fund, got %d", len(overview.Funds))
		}

		// Equities come back ordered by symbol.
		if overview.Equities[0].Symbol != "INFY" || overview.Equities[1].Symbol != "TCS" {
			t.Errorf("Expected symbol order INFY, TCS, got %+v", overview.Equities)
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/holdings", nil)
		w := httptest.NewRecorder()

		handler.GetHoldings(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}
