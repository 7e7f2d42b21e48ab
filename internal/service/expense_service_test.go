package service_test

import (
	"errors"
	"testing"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/request"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/testutil"
)

// TestExpenseService_CRUD tests the recurring expense lifecycle end to end.
func TestExpenseService_CRUD(t *testing.T) {
	t.Run("creates and retrieves an expense", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		req := request.CreateExpenseRequest{
			Name:      "Rent",
			Type:      "housing",
			Amount:    30000,
			Frequency: "monthly",
		}

		// Execute
		created, err := svc.CreateExpense(req)

		// Assert
		if err != nil {
			t.Fatalf("CreateExpense() returned unexpected error: %v", err)
		}

		stored, err := svc.GetExpense(created.ID)
		if err != nil {
			t.Fatalf("GetExpense() returned unexpected error: %v", err)
		}
		if stored.Name != "Rent" || stored.Frequency != "monthly" || stored.Amount != 30000 {
			t.Errorf("Stored expense does not match request: %+v", stored)
		}
	})

	t.Run("updates the frequency without touching other fields", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)
		exp := testutil.NewExpense().
			WithName("Car insurance").
			WithType("insurance").
			WithAmount(18000).
			WithFrequency("yearly").
			Build(t, db)

		quarterly := "quarterly"

		// Execute
		updated, err := svc.UpdateExpense(exp.ID, request.UpdateExpenseRequest{Frequency: &quarterly})

		// Assert
		if err != nil {
			t.Fatalf("UpdateExpense() returned unexpected error: %v", err)
		}

		if updated.Frequency != "quarterly" {
			t.Errorf("Expected frequency quarterly, got %q", updated.Frequency)
		}
		if updated.Name != "Car insurance" || updated.Amount != 18000 {
			t.Errorf("Expected untouched fields to survive, got %+v", updated)
		}
	})

	t.Run("deletes an expense and reports unknown IDs", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)
		exp := testutil.CreateExpense(t, db, 5000, "monthly")

		// Execute
		if err := svc.DeleteExpense(exp.ID); err != nil {
			t.Fatalf("DeleteExpense() returned unexpected error: %v", err)
		}

		// Assert
		testutil.AssertRowCount(t, db, "recurring_expense", 0)

		if err := svc.DeleteExpense(exp.ID); !errors.Is(err, apperrors.ErrExpenseNotFound) {
			t.Errorf("Expected ErrExpenseNotFound on second delete, got %v", err)
		}
	})

	t.Run("lists every declared expense", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		testutil.CreateExpense(t, db, 30000, "monthly")
		testutil.CreateExpense(t, db, 24000, "yearly")
		testutil.CreateExpense(t, db, 1500, "quarterly")

		// Execute
		expenses, err := svc.GetAllExpenses()

		// Assert
		if err != nil {
			t.Fatalf("GetAllExpenses() returned unexpected error: %v", err)
		}
		if len(expenses) != 3 {
			t.Errorf("Expected 3 expenses, got %d", len(expenses))
		}
	})
}
