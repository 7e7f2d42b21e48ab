package testutil

import (
	"context"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/kite"
)

// MockKiteClient is a mock implementation of kite.Client for testing.
// It returns predefined test data instead of making actual API calls.
type MockKiteClient struct {
	// MockSession is the session returned from GenerateSession
	MockSession kite.Session
	// MockHoldings is the equity list returned from Holdings
	MockHoldings []kite.Holding
	// MockMFHoldings is the fund list returned from MFHoldings
	MockMFHoldings []kite.MFHolding
	// MockError is the error to return from all methods
	MockError error
	// CallCount tracks how many times any client method was called
	CallCount int
	// Invalidated records whether InvalidateSession was called
	Invalidated bool
}

// NewMockKiteClient creates a new mock brokerage client with a small default
// portfolio: two equities and one mutual fund.
func NewMockKiteClient() *MockKiteClient {
	return &MockKiteClient{
		MockSession: kite.Session{
			UserID:      "AB1234",
			UserName:    "Test User",
			Email:       "test@example.com",
			AccessToken: "test-access-token",
		},
		MockHoldings: []kite.Holding{
			{
				TradingSymbol: "RELIANCE",
				Exchange:      "NSE",
				ISIN:          "INE002A01018",
				Quantity:      10,
				AveragePrice:  2400,
				LastPrice:     2500,
			},
			{
				TradingSymbol: "INFY",
				Exchange:      "NSE",
				ISIN:          "INE009A01021",
				Quantity:      20,
				AveragePrice:  1500,
				LastPrice:     1450,
			},
		},
		MockMFHoldings: []kite.MFHolding{
			{
				Folio:         "1234567/89",
				Fund:          "Parag Parikh Flexi Cap Fund",
				TradingSymbol: "INF879O01027",
				Quantity:      500,
				AveragePrice:  50,
				LastPrice:     62,
			},
		},
	}
}

// GenerateSession mocks the token exchange.
func (m *MockKiteClient) GenerateSession(_ context.Context, _ string) (kite.Session, error) {
	m.CallCount++
	if m.MockError != nil {
		return kite.Session{}, m.MockError
	}
	return m.MockSession, nil
}

// Holdings mocks the equity holdings query.
func (m *MockKiteClient) Holdings(_ context.Context, _ string) ([]kite.Holding, error) {
	m.CallCount++
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockHoldings, nil
}

// MFHoldings mocks the mutual fund holdings query.
func (m *MockKiteClient) MFHoldings(_ context.Context, _ string) ([]kite.MFHolding, error) {
	m.CallCount++
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockMFHoldings, nil
}

// InvalidateSession mocks the session teardown and records that it happened.
func (m *MockKiteClient) InvalidateSession(_ context.Context, _ string) error {
	m.CallCount++
	m.Invalidated = true
	return m.MockError
}

// WithError configures the mock to return the specified error.
func (m *MockKiteClient) WithError(err error) *MockKiteClient {
	m.MockError = err
	return m
}

// WithHoldings configures the mock equity holdings.
func (m *MockKiteClient) WithHoldings(holdings []kite.Holding) *MockKiteClient {
	m.MockHoldings = holdings
	return m
}

// WithMFHoldings configures the mock fund holdings.
func (m *MockKiteClient) WithMFHoldings(holdings []kite.MFHolding) *MockKiteClient {
	m.MockMFHoldings = holdings
	return m
}

// WithEmptyPortfolio configures the mock to return no holdings at all.
func (m *MockKiteClient) WithEmptyPortfolio() *MockKiteClient {
	m.MockHoldings = []kite.Holding{}
	m.MockMFHoldings = []kite.MFHolding{}
	return m
}
