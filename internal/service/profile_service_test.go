package service_test

import (
	"errors"
	"testing"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/testutil"
)

// TestProfileService_SaveProfile tests the single-record save semantics.
//
// WHY: The profile is a singleton; saving twice must replace the record while
// keeping its identity stable. A second row or a changed ID would break
// clients that cached the first response.
func TestProfileService_SaveProfile(t *testing.T) {
	t.Run("creates the profile on first save", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		req := request.SaveProfileRequest{
			Age:            31,
			City:           "Bengaluru",
			RiskTolerance:  "moderate",
			FinancialGoals: []string{"wealth creation", "early retirement"},
		}

		// Execute
		saved, err := svc.SaveProfile(req)

		// Assert
		if err != nil {
			t.Fatalf("SaveProfile() returned unexpected error: %v", err)
		}

		if saved.ID == "" {
			t.Error("Expected a generated ID")
		}
		if len(saved.FinancialGoals) != 2 {
			t.Errorf("Expected 2 financial goals, got %v", saved.FinancialGoals)
		}

		testutil.AssertRowCount(t, db, "user_profile", 1)
	})

	t.Run("replaces the profile in full on resave, keeping its identity", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		first, err := svc.SaveProfile(request.SaveProfileRequest{
			Age:           31,
			City:          "Bengaluru",
			RiskTolerance: "moderate",
		})
		if err != nil {
			t.Fatalf("SaveProfile() returned unexpected error: %v", err)
		}

		// Execute
		second, err := svc.SaveProfile(request.SaveProfileRequest{
			Age:           32,
			City:          "Pune",
			RiskTolerance: "Aggressive",
		})

		// Assert
		if err != nil {
			t.Fatalf("SaveProfile() returned unexpected error: %v", err)
		}

		if second.ID != first.ID {
			t.Errorf("Expected the ID to survive a resave, got %s then %s", first.ID, second.ID)
		}
		if !second.CreatedAt.Equal(first.CreatedAt) {
			t.Errorf("Expected CreatedAt to survive a resave, got %v then %v", first.CreatedAt, second.CreatedAt)
		}
		if second.Age != 32 || second.City != "Pune" {
			t.Errorf("Expected the new values, got %+v", second)
		}
		if second.RiskTolerance != "aggressive" {
			t.Errorf("Expected risk tolerance lowercased, got %q", second.RiskTolerance)
		}

		testutil.AssertRowCount(t, db, "user_profile", 1)
	})

	t.Run("round-trips the financial goals through storage", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		if _, err := svc.SaveProfile(request.SaveProfileRequest{
			Age:            40,
			RiskTolerance:  "conservative",
			FinancialGoals: []string{"children's education"},
		}); err != nil {
			t.Fatalf("SaveProfile() returned unexpected error: %v", err)
		}

		// Execute
		stored, err := svc.GetProfile()

		// Assert
		if err != nil {
			t.Fatalf("GetProfile() returned unexpected error: %v", err)
		}
		if len(stored.FinancialGoals) != 1 || stored.FinancialGoals[0] != "children's education" {
			t.Errorf("Expected goals to round-trip, got %v", stored.FinancialGoals)
		}
	})

	t.Run("nil goals are stored as an empty list", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		// Execute
		saved, err := svc.SaveProfile(request.SaveProfileRequest{Age: 25, RiskTolerance: "moderate"})

		// Assert
		if err != nil {
			t.Fatalf("SaveProfile() returned unexpected error: %v", err)
		}
		if saved.FinancialGoals == nil {
			t.Error("Expected an empty goals slice, got nil")
		}
	})
}

// TestProfileService_GetProfile tests retrieval before any save.
func TestProfileService_GetProfile(t *testing.T) {
	t.Run("returns not found before the first save", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db)

		// Execute
		_, err := svc.GetProfile()

		// Assert
		if !errors.Is(err, apperrors.ErrProfileNotFound) {
			t.Errorf("Expected ErrProfileNotFound, got %v", err)
		}
	})
}
