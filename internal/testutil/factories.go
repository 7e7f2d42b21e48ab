package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/model"
)

// InvestmentBuilder provides a fluent interface for creating test investments.
//
// Example usage:
//
//	// Simple creation with defaults
//	inv := testutil.NewInvestment().Build(t, db)
//
//	// Customized investment
//	inv := testutil.NewInvestment().
//	    WithName("Sovereign Gold Bond").
//	    WithType("gold").
//	    WithAmount(150000).
//	    Build(t, db)
type InvestmentBuilder struct {
	ID     string
	Name   string
	Type   string
	Amount float64
	Notes  string
}

// NewInvestment creates an InvestmentBuilder with sensible defaults.
func NewInvestment() *InvestmentBuilder {
	return &InvestmentBuilder{
		ID:     MakeID(),
		Name:   MakeName("Test Investment"),
		Type:   "fd",
		Amount: 100000,
		Notes:  "",
	}
}

// WithID sets a custom ID.
func (b *InvestmentBuilder) WithID(id string) *InvestmentBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *InvestmentBuilder) WithName(name string) *InvestmentBuilder {
	b.Name = name
	return b
}

// WithType sets a custom asset type.
func (b *InvestmentBuilder) WithType(assetType string) *InvestmentBuilder {
	b.Type = assetType
	return b
}

// WithAmount sets a custom amount.
func (b *InvestmentBuilder) WithAmount(amount float64) *InvestmentBuilder {
	b.Amount = amount
	return b
}

// WithNotes sets custom notes.
func (b *InvestmentBuilder) WithNotes(notes string) *InvestmentBuilder {
	b.Notes = notes
	return b
}

// Build creates the investment in the database and returns it.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	now := time.Now().UTC()
	query := `
		INSERT INTO external_investment (id, name, type, amount, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Type, b.Amount, b.Notes, now, now)
	if err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}

	return model.Investment{
		ID:        b.ID,
		Name:      b.Name,
		Type:      b.Type,
		Amount:    b.Amount,
		Notes:     b.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateInvestment creates an investment with the given type and amount.
//
// Example usage:
//
//	inv := testutil.CreateInvestment(t, db, "gold", 200000)
func CreateInvestment(t *testing.T, db *sql.DB, assetType string, amount float64) model.Investment {
	t.Helper()
	return NewInvestment().WithType(assetType).WithAmount(amount).Build(t, db)
}

// ExpenseBuilder provides a fluent interface for creating test expenses.
//
// Example usage:
//
//	exp := testutil.NewExpense().
//	    WithName("Rent").
//	    WithAmount(30000).
//	    WithFrequency("monthly").
//	    Build(t, db)
type ExpenseBuilder struct {
	ID        string
	Name      string
	Type      string
	Amount    float64
	Frequency string
	Notes     string
}

// NewExpense creates an ExpenseBuilder with sensible defaults.
func NewExpense() *ExpenseBuilder {
	return &ExpenseBuilder{
		ID:        MakeID(),
		Name:      MakeName("Test Expense"),
		Type:      "household",
		Amount:    10000,
		Frequency: "monthly",
		Notes:     "",
	}
}

// WithName sets a custom name.
func (b *ExpenseBuilder) WithName(name string) *ExpenseBuilder {
	b.Name = name
	return b
}

// WithType sets a custom expense type.
func (b *ExpenseBuilder) WithType(expenseType string) *ExpenseBuilder {
	b.Type = expenseType
	return b
}

// WithAmount sets a custom amount.
func (b *ExpenseBuilder) WithAmount(amount float64) *ExpenseBuilder {
	b.Amount = amount
	return b
}

// WithFrequency sets a custom frequency.
func (b *ExpenseBuilder) WithFrequency(frequency string) *ExpenseBuilder {
	b.Frequency = frequency
	return b
}

// Build creates the expense in the database and returns it.
func (b *ExpenseBuilder) Build(t *testing.T, db *sql.DB) model.Expense {
	t.Helper()

	now := time.Now().UTC()
	query := `
		INSERT INTO recurring_expense (id, name, type, amount, frequency, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Type, b.Amount, b.Frequency, b.Notes, now, now)
	if err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}

	return model.Expense{
		ID:        b.ID,
		Name:      b.Name,
		Type:      b.Type,
		Amount:    b.Amount,
		Frequency: b.Frequency,
		Notes:     b.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateExpense creates an expense with the given amount and frequency.
//
// Example usage:
//
//	exp := testutil.CreateExpense(t, db, 25000, "monthly")
func CreateExpense(t *testing.T, db *sql.DB, amount float64, frequency string) model.Expense {
	t.Helper()
	return NewExpense().WithAmount(amount).WithFrequency(frequency).Build(t, db)
}

// GoalBuilder provides a fluent interface for creating test goals.
//
// Example usage:
//
//	goal := testutil.NewGoal().
//	    WithPurpose("travel").
//	    WithAmount(300000).
//	    WithTimeframe("2 years").
//	    Build(t, db)
type GoalBuilder struct {
	ID        string
	Purpose   string
	Amount    float64
	Timeframe string
	Priority  string
	Notes     string
}

// NewGoal creates a GoalBuilder with sensible defaults.
func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		ID:        MakeID(),
		Purpose:   "travel",
		Amount:    200000,
		Timeframe: "1 year",
		Priority:  "medium",
		Notes:     "",
	}
}

// WithPurpose sets a custom purpose.
func (b *GoalBuilder) WithPurpose(purpose string) *GoalBuilder {
	b.Purpose = purpose
	return b
}

// WithAmount sets a custom amount.
func (b *GoalBuilder) WithAmount(amount float64) *GoalBuilder {
	b.Amount = amount
	return b
}

// WithTimeframe sets a custom timeframe.
func (b *GoalBuilder) WithTimeframe(timeframe string) *GoalBuilder {
	b.Timeframe = timeframe
	return b
}

// WithPriority sets a custom priority.
func (b *GoalBuilder) WithPriority(priority string) *GoalBuilder {
	b.Priority = priority
	return b
}

// Build creates the goal in the database and returns it.
func (b *GoalBuilder) Build(t *testing.T, db *sql.DB) model.Goal {
	t.Helper()

	now := time.Now().UTC()
	query := `
		INSERT INTO future_expense (id, purpose, amount, timeframe, priority, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Purpose, b.Amount, b.Timeframe, b.Priority, b.Notes, now, now)
	if err != nil {
		t.Fatalf("Failed to create test goal: %v", err)
	}

	return model.Goal{
		ID:        b.ID,
		Purpose:   b.Purpose,
		Amount:    b.Amount,
		Timeframe: b.Timeframe,
		Priority:  b.Priority,
		Notes:     b.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateGoal creates a goal with the given purpose, amount and timeframe.
//
// Example usage:
//
//	goal := testutil.CreateGoal(t, db, "house", 5000000, "5 years")
func CreateGoal(t *testing.T, db *sql.DB, purpose string, amount float64, timeframe string) model.Goal {
	t.Helper()
	return NewGoal().WithPurpose(purpose).WithAmount(amount).WithTimeframe(timeframe).Build(t, db)
}

// ProfileBuilder provides a fluent interface for creating the test profile.
//
// Example usage:
//
//	profile := testutil.NewProfile().
//	    WithAge(35).
//	    WithRiskTolerance("aggressive").
//	    Build(t, db)
type ProfileBuilder struct {
	ID             string
	Age            int
	City           string
	RiskTolerance  string
	FinancialGoals []string
}

// NewProfile creates a ProfileBuilder with sensible defaults.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{
		ID:             MakeID(),
		Age:            30,
		City:           "Bengaluru",
		RiskTolerance:  "moderate",
		FinancialGoals: []string{"wealth creation"},
	}
}

// WithAge sets a custom age.
func (b *ProfileBuilder) WithAge(age int) *ProfileBuilder {
	b.Age = age
	return b
}

// WithCity sets a custom city.
func (b *ProfileBuilder) WithCity(city string) *ProfileBuilder {
	b.City = city
	return b
}

// WithRiskTolerance sets a custom risk tolerance.
func (b *ProfileBuilder) WithRiskTolerance(tolerance string) *ProfileBuilder {
	b.RiskTolerance = tolerance
	return b
}

// WithFinancialGoals sets custom financial goals.
func (b *ProfileBuilder) WithFinancialGoals(goals []string) *ProfileBuilder {
	b.FinancialGoals = goals
	return b
}

// Build creates the profile in the database and returns it.
func (b *ProfileBuilder) Build(t *testing.T, db *sql.DB) model.Profile {
	t.Helper()

	goalsJSON, err := json.Marshal(b.FinancialGoals)
	if err != nil {
		t.Fatalf("Failed to marshal financial goals: %v", err)
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO user_profile (id, age, city, risk_tolerance, financial_goals, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.Exec(query, b.ID, b.Age, b.City, b.RiskTolerance, string(goalsJSON), now, now)
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return model.Profile{
		ID:             b.ID,
		Age:            b.Age,
		City:           b.City,
		RiskTolerance:  b.RiskTolerance,
		FinancialGoals: b.FinancialGoals,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// EquityHoldingBuilder provides a fluent interface for creating mirrored
// equity holdings.
//
// Example usage:
//
//	holding := testutil.NewEquityHolding().
//	    WithSymbol("RELIANCE").
//	    WithQuantity(10).
//	    WithPrices(2400, 2500).
//	    Build(t, db)
type EquityHoldingBuilder struct {
	ID           string
	Symbol       string
	Name         string
	Exchange     string
	ISIN         string
	Quantity     float64
	AverageCost  float64
	CurrentPrice float64
	Sector       string
	SyncedAt     time.Time
}

// NewEquityHolding creates an EquityHoldingBuilder with sensible defaults.
func NewEquityHolding() *EquityHoldingBuilder {
	return &EquityHoldingBuilder{
		ID:           MakeID(),
		Symbol:       MakeSymbol("TEST"),
		Name:         "Test Equity",
		Exchange:     "NSE",
		ISIN:         "",
		Quantity:     10,
		AverageCost:  100,
		CurrentPrice: 110,
		Sector:       "",
		SyncedAt:     time.Now().UTC(),
	}
}

// WithSymbol sets a custom trading symbol.
func (b *EquityHoldingBuilder) WithSymbol(symbol string) *EquityHoldingBuilder {
	b.Symbol = symbol
	return b
}

// WithQuantity sets a custom quantity.
func (b *EquityHoldingBuilder) WithQuantity(quantity float64) *EquityHoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithPrices sets the average cost and current price together.
func (b *EquityHoldingBuilder) WithPrices(averageCost, currentPrice float64) *EquityHoldingBuilder {
	b.AverageCost = averageCost
	b.CurrentPrice = currentPrice
	return b
}

// WithSector sets a custom sector.
func (b *EquityHoldingBuilder) WithSector(sector string) *EquityHoldingBuilder {
	b.Sector = sector
	return b
}

// Build creates the equity holding in the database and returns it.
func (b *EquityHoldingBuilder) Build(t *testing.T, db *sql.DB) model.EquityHolding {
	t.Helper()

	query := `
		INSERT INTO equity_holding (id, symbol, name, exchange, isin, quantity, average_cost, current_price, sector, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Symbol, b.Name, b.Exchange, b.ISIN, b.Quantity, b.AverageCost, b.CurrentPrice, b.Sector, b.SyncedAt)
	if err != nil {
		t.Fatalf("Failed to create test equity holding: %v", err)
	}

	return model.EquityHolding{
		ID:           b.ID,
		Symbol:       b.Symbol,
		Name:         b.Name,
		Exchange:     b.Exchange,
		ISIN:         b.ISIN,
		Quantity:     b.Quantity,
		AverageCost:  b.AverageCost,
		CurrentPrice: b.CurrentPrice,
		Sector:       b.Sector,
		SyncedAt:     b.SyncedAt,
	}
}

// CreateEquityHolding creates an equity holding for the given symbol.
//
// Example usage:
//
//	holding := testutil.CreateEquityHolding(t, db, "INFY", 20, 1500, 1450)
func CreateEquityHolding(t *testing.T, db *sql.DB, symbol string, quantity, averageCost, currentPrice float64) model.EquityHolding {
	t.Helper()
	return NewEquityHolding().WithSymbol(symbol).WithQuantity(quantity).WithPrices(averageCost, currentPrice).Build(t, db)
}

// FundHoldingBuilder provides a fluent interface for creating mirrored
// mutual fund holdings.
//
// Example usage:
//
//	holding := testutil.NewFundHolding().
//	    WithName("Parag Parikh Flexi Cap Fund").
//	    WithAmounts(25000, 31000).
//	    Build(t, db)
type FundHoldingBuilder struct {
	ID             string
	Name           string
	Folio          string
	Units          float64
	AverageNAV     float64
	InvestedAmount float64
	CurrentValue   float64
	Category       string
	SyncedAt       time.Time
}

// NewFundHolding creates a FundHoldingBuilder with sensible defaults.
func NewFundHolding() *FundHoldingBuilder {
	return &FundHoldingBuilder{
		ID:             MakeID(),
		Name:           MakeName("Test Fund"),
		Folio:          "1234567/89",
		Units:          100,
		AverageNAV:     50,
		InvestedAmount: 5000,
		CurrentValue:   5500,
		Category:       "Flexi Cap",
		SyncedAt:       time.Now().UTC(),
	}
}

// WithName sets a custom fund name.
func (b *FundHoldingBuilder) WithName(name string) *FundHoldingBuilder {
	b.Name = name
	return b
}

// WithAmounts sets the invested amount and current value together.
func (b *FundHoldingBuilder) WithAmounts(invested, current float64) *FundHoldingBuilder {
	b.InvestedAmount = invested
	b.CurrentValue = current
	return b
}

// WithCategory sets a custom category.
func (b *FundHoldingBuilder) WithCategory(category string) *FundHoldingBuilder {
	b.Category = category
	return b
}

// Build creates the fund holding in the database and returns it.
func (b *FundHoldingBuilder) Build(t *testing.T, db *sql.DB) model.FundHolding {
	t.Helper()

	query := `
		INSERT INTO fund_holding (id, name, folio, units, average_nav, invested_amount, current_value, category, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Folio, b.Units, b.AverageNAV, b.InvestedAmount, b.CurrentValue, b.Category, b.SyncedAt)
	if err != nil {
		t.Fatalf("Failed to create test fund holding: %v", err)
	}

	return model.FundHolding{
		ID:             b.ID,
		Name:           b.Name,
		Folio:          b.Folio,
		Units:          b.Units,
		AverageNAV:     b.AverageNAV,
		InvestedAmount: b.InvestedAmount,
		CurrentValue:   b.CurrentValue,
		Category:       b.Category,
		SyncedAt:       b.SyncedAt,
	}
}

// CreateFundHolding creates a fund holding with the given name and amounts.
//
// Example usage:
//
//	holding := testutil.CreateFundHolding(t, db, "Axis Small Cap Fund", 20000, 26000)
func CreateFundHolding(t *testing.T, db *sql.DB, name string, invested, current float64) model.FundHolding {
	t.Helper()
	return NewFundHolding().WithName(name).WithAmounts(invested, current).Build(t, db)
}

// BrokerSessionBuilder provides a fluent interface for creating a stored
// brokerage session row.
//
// Example usage:
//
//	session := testutil.NewBrokerSession().
//	    WithEncryptedToken(sealed).
//	    Build(t, db)
type BrokerSessionBuilder struct {
	ID             string
	UserID         string
	UserName       string
	EncryptedToken string
	ConnectedAt    time.Time
	LastSyncedAt   *time.Time
}

// NewBrokerSession creates a BrokerSessionBuilder with sensible defaults.
// The default token is an opaque placeholder; tests that exercise decryption
// must supply a real fernet-sealed token via WithEncryptedToken.
func NewBrokerSession() *BrokerSessionBuilder {
	return &BrokerSessionBuilder{
		ID:             MakeID(),
		UserID:         "AB1234",
		UserName:       "Test User",
		EncryptedToken: "not-a-real-token",
		ConnectedAt:    time.Now().UTC(),
	}
}

// WithEncryptedToken sets the stored token material.
func (b *BrokerSessionBuilder) WithEncryptedToken(token string) *BrokerSessionBuilder {
	b.EncryptedToken = token
	return b
}

// WithLastSyncedAt sets the last sync timestamp.
func (b *BrokerSessionBuilder) WithLastSyncedAt(at time.Time) *BrokerSessionBuilder {
	b.LastSyncedAt = &at
	return b
}

// Build creates the broker session in the database and returns it.
func (b *BrokerSessionBuilder) Build(t *testing.T, db *sql.DB) model.BrokerSession {
	t.Helper()

	query := `
		INSERT INTO broker_session (id, user_id, user_name, encrypted_token, connected_at, last_synced_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.UserName, b.EncryptedToken, b.ConnectedAt, b.LastSyncedAt)
	if err != nil {
		t.Fatalf("Failed to create test broker session: %v", err)
	}

	return model.BrokerSession{
		ID:             b.ID,
		UserID:         b.UserID,
		UserName:       b.UserName,
		EncryptedToken: b.EncryptedToken,
		ConnectedAt:    b.ConnectedAt,
		LastSyncedAt:   b.LastSyncedAt,
	}
}
