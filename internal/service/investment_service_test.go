package service_test

import (
	"errors"
	"testing"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/testutil"
)

// TestInvestmentService_GetAllInvestments tests the GetAllInvestments method.
//
// WHY: Declared investments feed both the dashboard and the analysis snapshot.
// This ensures the service correctly returns all records from the database,
// including the empty-database edge case.
func TestInvestmentService_GetAllInvestments(t *testing.T) {
	t.Run("returns empty slice when no investments exist", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInvestmentService(t, db)

		// Execute
		investments, err := svc.GetAllInvestments()

		// Assert
		if err != nil {
			t.Fatalf("GetAllInvestments() returned unexpected error: %v", err)
		}

		if len(investments) != 0 {
			t.Errorf("Expected empty slice, got %d investments", len(investments))
		}
	})

	t.Run("returns all declared investments", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInvestmentService(t, db)

		// Create test data
		gold := testutil.CreateInvestment(t, db, "gold", 200000)
		fd := testutil.CreateInvestment(t, db, "fd", 500000)

		// Execute
		investments, err := svc.GetAllInvestments()

		// Assert
		if err != nil {
			t.Fatalf("GetAllInvestments() returned unexpected error: %v", err)
		}

		if len(investments) != 2 {
			t.Fatalf("Expected 2 investments, got %d", len(investments))
		}

		foundGold := false
		foundFD := false
		for _, inv := range investments {
			if inv.ID == gold.ID && inv.Type == "gold" && inv.Amount == 200000 {
				foundGold = true
			}
			if inv.ID == fd.ID && inv.Type == "fd" && inv.Amount == 500000 {
				foundFD = true
			}
		}

		if !foundGold {
			t.Error("Gold investment not found in results")
		}
		if !foundFD {
			t.Error("Fixed deposit not found in results")
		}
	})
}

// TestInvestmentService_CreateInvestment tests the CreateInvestment method.
func TestInvestmentService_CreateInvestment(t *testing.T) {
	t.Run("persists the investment with a generated ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInvestmentService(t, db)

		req := request.CreateInvestmentRequest{
			Name:   "Sovereign Gold Bonds",
			Type:   "gold",
			Amount: 150000,
			Notes:  "2028 maturity",
		}

		// Execute
		created, err := svc.CreateInvestment(req)

		// Assert
		if err != nil {
			t.Fatalf("CreateInvestment() returned unexpected error: %v", err)
		}

		if created.ID == "" {
			t.Error("Expected a generated ID")
		}
		if created.Name != "Sovereign Gold Bonds" || created.Amount != 150000 {
			t.Errorf("Created investment does not match request: %+v", created)
		}

		stored, err := svc.GetInvestment(created.ID)
		if err != nil {
			t.Fatalf("GetInvestment() returned unexpected error: %v", err)
		}
		if stored.Name != created.Name || stored.Notes != "2028 maturity" {
			t.Errorf("Stored investment does not match: %+v", stored)
		}
	})
}

// TestInvestmentService_UpdateInvestment tests the UpdateInvestment method.
//
// WHY: Updates arrive with optional fields; only the provided ones may change.
// Getting this wrong silently wipes user data.
func TestInvestmentService_UpdateInvestment(t *testing.T) {
	t.Run("updates only the provided fields", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInvestmentService(t, db)
		inv := testutil.NewInvestment().
			WithName("Emergency FD").
			WithType("fd").
			WithAmount(300000).
			WithNotes("HDFC branch").
			Build(t, db)

		newAmount := 350000.0

		// Execute
		updated, err := svc.UpdateInvestment(inv.ID, request.UpdateInvestmentRequest{Amount: &newAmount})

		// Assert
		if err != nil {
			t.Fatalf("UpdateInvestment() returned unexpected error: %v", err)
		}

		if updated.Amount != 350000 {
			t.Errorf("Expected amount 350000, got %v", updated.Amount)
		}
		if updated.Name != "Emergency FD" || updated.Type != "fd" || updated.Notes != "HDFC branch" {
			t.Errorf("Expected untouched fields to survive, got %+v", updated)
		}
	})

	t.Run("returns not found for an unknown ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInvestmentService(t, db)

		name := "New Name"

		// Execute
		_, err := svc.UpdateInvestment(testutil.MakeID(), request.UpdateInvestmentRequest{Name: &name})

		// Assert
		if !errors.Is(err, apperrors.ErrInvestmentNotFound) {
			t.Errorf("Expected ErrInvestmentNotFound, got %v", err)
		}
	})
}

// TestInvestmentService_DeleteInvestment tests the DeleteInvestment method.
func TestInvestmentService_DeleteInvestment(t *testing.T) {
	t.Run("removes the investment", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInvestmentService(t, db)
		inv := testutil.CreateInvestment(t, db, "gold", 100000)

		// Execute
		err := svc.DeleteInvestment(inv.ID)

		// Assert
		if err != nil {
			t.Fatalf("DeleteInvestment() returned unexpected error: %v", err)
		}

		if _, err := svc.GetInvestment(inv.ID); !errors.Is(err, apperrors.ErrInvestmentNotFound) {
			t.Errorf("Expected the investment to be gone, got %v", err)
		}

		testutil.AssertRowCount(t, db, "external_investment", 0)
	})

	t.Run("returns not found for an unknown ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInvestmentService(t, db)

		// Execute
		err := svc.DeleteInvestment(testutil.MakeID())

		// Assert
		if !errors.Is(err, apperrors.ErrInvestmentNotFound) {
			t.Errorf("Expected ErrInvestmentNotFound, got %v", err)
		}
	})
}

// TestInvestmentService_DatabaseErrors tests error handling.
//
// WHY: The service must gracefully handle database errors without panicking,
// ensuring the application remains stable when the database is unavailable.
func TestInvestmentService_DatabaseErrors(t *testing.T) {
	t.Run("handles closed database connection", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInvestmentService(t, db)

		// Close database to force error
		db.Close()

		// Execute
		investments, err := svc.GetAllInvestments()

		// Assert
		if err == nil {
			t.Error("Expected error when database is closed, got nil")
		}

		if investments != nil {
			t.Errorf("Expected nil investments on error, got %v", investments)
		}
	})
}
