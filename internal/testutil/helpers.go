package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/analysis"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/kite"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/marketref"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/repository"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/service"
)

func NewTestInvestmentService(t *testing.T, db *sql.DB) *service.InvestmentService {
	t.Helper()

	investmentRepo := repository.NewInvestmentRepository(db)

	return service.NewInvestmentService(
		investmentRepo,
	)
}

func NewTestExpenseService(t *testing.T, db *sql.DB) *service.ExpenseService {
	t.Helper()

	expenseRepo := repository.NewExpenseRepository(db)

	return service.NewExpenseService(
		expenseRepo,
	)
}

func NewTestGoalService(t *testing.T, db *sql.DB) *service.GoalService {
	t.Helper()

	goalRepo := repository.NewGoalRepository(db)

	return service.NewGoalService(
		goalRepo,
	)
}

func NewTestProfileService(t *testing.T, db *sql.DB) *service.ProfileService {
	t.Helper()

	profileRepo := repository.NewProfileRepository(db)

	return service.NewProfileService(
		profileRepo,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// NewTestBrokerService creates a BrokerService backed by the given mock
// brokerage client and a freshly generated fernet key.
func NewTestBrokerService(t *testing.T, db *sql.DB, kiteClient kite.Client) *service.BrokerService {
	t.Helper()

	sessionRepo := repository.NewSessionRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)

	return service.NewBrokerService(
		sessionRepo,
		holdingRepo,
		kiteClient,
		NewTestMarketRef(t),
		TestFernetKeys(t),
		zerolog.Nop(),
	)
}

// NewTestAnalysisService creates an AnalysisService over the given database
// with an engine built from default thresholds and the embedded reference table.
func NewTestAnalysisService(t *testing.T, db *sql.DB) *service.AnalysisService {
	t.Helper()

	engine := analysis.NewEngine(analysis.DefaultConfig(), NewTestMarketRef(t))

	return service.NewAnalysisService(
		engine,
		repository.NewInvestmentRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewGoalRepository(db),
		repository.NewProfileRepository(db),
		repository.NewHoldingRepository(db),
		repository.NewReportRepository(db),
		zerolog.Nop(),
	)
}

// NewTestMarketRef loads the embedded market reference table.
func NewTestMarketRef(t *testing.T) *marketref.Provider {
	t.Helper()

	provider, err := marketref.NewProvider()
	if err != nil {
		t.Fatalf("Failed to load market reference table: %v", err)
	}
	return provider
}

// TestFernetKeys generates a single-key fernet keyring for token encryption tests.
func TestFernetKeys(t *testing.T) []*fernet.Key {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}
	return []*fernet.Key{&key}
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeSymbol generates a stock ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("TATA")
//	// Returns: "TATA1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// MakeName generates a unique record name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Gold")
//	// Returns: "Gold ABC123"
func MakeName(base string) string {
	if base == "" {
		base = "Record"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
