package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/analysis"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/testutil"
)

func TestAnalysisHandler_RunAnalysis(t *testing.T) {
	setupHandler := func(t *testing.T) (*AnalysisHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAnalysisService(t, db)
		return NewAnalysisHandler(as), db
	}

	t.Run("returns a report for stored holdings", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateEquityHolding(t, db, "RELIANCE", 10, 2400, 2500)
		testutil.CreateFundHolding(t, db, "Parag Parikh Flexi Cap Fund", 25000, 31000)

		req := httptest.NewRequest(http.MethodPost, "/api/analysis", nil)
		w := httptest.NewRecorder()

		handler.RunAnalysis(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var report analysis.AnalysisReport
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&report)

		if report.Performance.CurrentValue != 56000 {
			t.Errorf("Expected current value 56000, got %v", report.Performance.CurrentValue)
		}
		if len(report.Allocation) == 0 {
			t.Error("Expected allocation entries in the report")
		}

		testutil.AssertRowCount(t, db, "analysis_report", 1)
	})

	t.Run("analyses an empty book without error", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/analysis", nil)
		w := httptest.NewRecorder()

		handler.RunAnalysis(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/analysis", nil)
		w := httptest.NewRecorder()

		handler.RunAnalysis(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAnalysisHandler_History(t *testing.T) {
	setupHandler := func(t *testing.T) (*AnalysisHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		as := testutil.NewTestAnalysisService(t, db)
		return NewAnalysisHandler(as), db
	}

	t.Run("returns empty array when no reports exist", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/analysis/history", nil)
		w := httptest.NewRecorder()

		handler.History(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var reports []analysis.AnalysisReport
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&reports)

		if reports == nil {
			t.Error("Expected non-nil array, got nil")
		}
		if len(reports) != 0 {
			t.Errorf("Expected empty array, got %d reports", len(reports))
		}
	})

	t.Run("returns generated reports", func(t *testing.T) {
		handler, db := setupHandler(t)
		testutil.CreateInvestment(t, db, "gold", 50000)

		runReq := httptest.NewRequest(http.MethodPost, "/api/analysis", nil)
		runW := httptest.NewRecorder()
		handler.RunAnalysis(runW, runReq)
		if runW.Code != http.StatusOK {
			t.Fatalf("Failed to generate report: %d: %s", runW.Code, runW.Body.String())
		}

		req := httptest.NewRequest(http.MethodGet, "/api/analysis/history", nil)
		w := httptest.NewRecorder()

		handler.History(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var reports []analysis.AnalysisReport
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&reports)

		if len(reports) != 1 {
			t.Errorf("Expected 1 report, got %d", len(reports))
		}
	})
}
