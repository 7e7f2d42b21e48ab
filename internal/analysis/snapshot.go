package analysis

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// AssetType classifies an externally held asset. Values are the canonical
// storage representation; display labels come from Display().
type AssetType string

// Canonical external asset types. Anything unrecognised is coerced to
// AssetOthers during normalization.
const (
	AssetGold         AssetType = "gold"
	AssetFixedDeposit AssetType = "fixed_deposit"
	AssetRealEstate   AssetType = "real_estate"
	AssetBankDeposit  AssetType = "bank_deposit"
	AssetPPF          AssetType = "ppf"
	AssetEPF          AssetType = "epf"
	AssetNPS          AssetType = "nps"
	AssetBonds        AssetType = "bonds"
	AssetOthers       AssetType = "others"
)

// ParseAssetType maps a stored or user-supplied string onto a canonical
// AssetType. Matching is case-insensitive and tolerant of spaces and hyphens.
// Unknown values map to AssetOthers.
func ParseAssetType(s string) AssetType {
	switch canonicalToken(s) {
	case "gold":
		return AssetGold
	case "fixed_deposit", "fd":
		return AssetFixedDeposit
	case "real_estate", "property":
		return AssetRealEstate
	case "bank_deposit", "savings", "cash":
		return AssetBankDeposit
	case "ppf":
		return AssetPPF
	case "epf", "pf":
		return AssetEPF
	case "nps":
		return AssetNPS
	case "bonds", "bond", "debentures":
		return AssetBonds
	default:
		return AssetOthers
	}
}

// Display returns the human-readable label used in allocation breakdowns.
func (t AssetType) Display() string {
	switch t {
	case AssetGold:
		return "Gold"
	case AssetFixedDeposit:
		return "Fixed Deposit"
	case AssetRealEstate:
		return "Real Estate"
	case AssetBankDeposit:
		return "Bank Deposit"
	case AssetPPF:
		return "PPF"
	case AssetEPF:
		return "EPF"
	case AssetNPS:
		return "NPS"
	case AssetBonds:
		return "Bonds"
	default:
		return "Other Assets"
	}
}

// ExpenseFrequency describes how often a recurring expense occurs.
type ExpenseFrequency string

const (
	FrequencyMonthly   ExpenseFrequency = "monthly"
	FrequencyQuarterly ExpenseFrequency = "quarterly"
	FrequencyYearly    ExpenseFrequency = "yearly"
	FrequencyOneTime   ExpenseFrequency = "one-time"
)

// ParseFrequency maps a stored string onto a canonical ExpenseFrequency.
// Unknown values map to FrequencyOneTime, which contributes nothing to the
// monthly expense equivalent.
func ParseFrequency(s string) ExpenseFrequency {
	switch canonicalToken(s) {
	case "monthly", "month":
		return FrequencyMonthly
	case "quarterly", "quarter":
		return FrequencyQuarterly
	case "yearly", "annual", "annually", "year":
		return FrequencyYearly
	default:
		return FrequencyOneTime
	}
}

// ExpenseType classifies a recurring expense.
type ExpenseType string

const (
	ExpenseHousing       ExpenseType = "housing"
	ExpenseUtilities     ExpenseType = "utilities"
	ExpenseGroceries     ExpenseType = "groceries"
	ExpenseTransport     ExpenseType = "transport"
	ExpenseInsurance     ExpenseType = "insurance"
	ExpenseSubscriptions ExpenseType = "subscriptions"
	ExpenseEducation     ExpenseType = "education"
	ExpenseHealthcare    ExpenseType = "healthcare"
	ExpenseOther         ExpenseType = "other"
)

// ParseExpenseType maps a stored string onto a canonical ExpenseType.
// Unknown values map to ExpenseOther.
func ParseExpenseType(s string) ExpenseType {
	switch canonicalToken(s) {
	case "housing", "rent", "emi":
		return ExpenseHousing
	case "utilities":
		return ExpenseUtilities
	case "groceries", "food":
		return ExpenseGroceries
	case "transport", "travel_commute", "fuel":
		return ExpenseTransport
	case "insurance":
		return ExpenseInsurance
	case "subscriptions", "subscription":
		return ExpenseSubscriptions
	case "education":
		return ExpenseEducation
	case "healthcare", "medical":
		return ExpenseHealthcare
	default:
		return ExpenseOther
	}
}

// GoalPurpose classifies a planned future expense.
type GoalPurpose string

const (
	GoalEducation    GoalPurpose = "education"
	GoalMarriage     GoalPurpose = "marriage"
	GoalHomePurchase GoalPurpose = "home_purchase"
	GoalVehicle      GoalPurpose = "vehicle"
	GoalTravel       GoalPurpose = "travel"
	GoalMedical      GoalPurpose = "medical"
	GoalRetirement   GoalPurpose = "retirement"
	GoalOther        GoalPurpose = "other"
)

// ParseGoalPurpose maps a stored string onto a canonical GoalPurpose.
// Unknown values map to GoalOther.
func ParseGoalPurpose(s string) GoalPurpose {
	switch canonicalToken(s) {
	case "education":
		return GoalEducation
	case "marriage", "wedding":
		return GoalMarriage
	case "home_purchase", "home", "house":
		return GoalHomePurchase
	case "vehicle", "car", "bike":
		return GoalVehicle
	case "travel", "vacation":
		return GoalTravel
	case "medical", "healthcare":
		return GoalMedical
	case "retirement":
		return GoalRetirement
	default:
		return GoalOther
	}
}

// Priority ranks how urgent an item is, both for planned expenses and for
// generated insights.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps a stored string onto a canonical Priority.
// Unknown values map to PriorityMedium.
func ParsePriority(s string) Priority {
	switch canonicalToken(s) {
	case "low":
		return PriorityLow
	case "high", "urgent":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// weight returns the sort weight of a priority. Higher sorts first.
func (p Priority) weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// RiskTolerance describes the investor's stated appetite for volatility.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// ParseRiskTolerance maps a stored string onto a canonical RiskTolerance.
// Unknown values map to RiskModerate.
func ParseRiskTolerance(s string) RiskTolerance {
	switch canonicalToken(s) {
	case "conservative", "low":
		return RiskConservative
	case "aggressive", "high":
		return RiskAggressive
	default:
		return RiskModerate
	}
}

// TimeframeUnit tags the unit of a Timeframe.
type TimeframeUnit int

const (
	// TimeframeUnspecified marks a timeframe that could not be determined.
	// It contributes zero years to projections and is never near-term.
	TimeframeUnspecified TimeframeUnit = iota
	TimeframeMonths
	TimeframeYears
)

// Timeframe is a structured horizon for a planned expense or goal.
// Free-text horizons are parsed exactly once, at the snapshot boundary,
// so everything downstream works with tagged values instead of strings.
type Timeframe struct {
	Unit  TimeframeUnit `json:"unit"`
	Count int           `json:"count"`
}

// Months constructs a month-denominated timeframe.
func Months(n int) Timeframe { return Timeframe{Unit: TimeframeMonths, Count: n} }

// Years constructs a year-denominated timeframe.
func Years(n int) Timeframe { return Timeframe{Unit: TimeframeYears, Count: n} }

// ParseTimeframe converts a free-text horizon such as "6 months", "2 years"
// or "18mo" into a Timeframe. The first integer in the string is taken as the
// count; the unit is inferred from a month/year keyword. A bare number is
// treated as years. Anything else yields an unspecified timeframe.
func ParseTimeframe(raw string) Timeframe {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Timeframe{}
	}

	count := 0
	start := strings.IndexFunc(s, unicode.IsDigit)
	if start >= 0 {
		end := start
		for end < len(s) && unicode.IsDigit(rune(s[end])) {
			end++
		}
		count, _ = strconv.Atoi(s[start:end])
	}
	if count <= 0 {
		return Timeframe{}
	}

	switch {
	case strings.Contains(s, "month") || strings.Contains(s, "mo"):
		return Months(count)
	case strings.Contains(s, "year") || strings.Contains(s, "yr"):
		return Years(count)
	default:
		return Years(count)
	}
}

// YearsValue returns the timeframe expressed in (possibly fractional) years.
// Unspecified timeframes return 0.
func (t Timeframe) YearsValue() float64 {
	switch t.Unit {
	case TimeframeMonths:
		return float64(t.Count) / 12.0
	case TimeframeYears:
		return float64(t.Count)
	default:
		return 0
	}
}

// WithinOneYear reports whether the horizon falls inside the next twelve
// months. Unspecified timeframes are never near-term.
func (t Timeframe) WithinOneYear() bool {
	switch t.Unit {
	case TimeframeMonths:
		return t.Count <= 12
	case TimeframeYears:
		return t.Count <= 1
	default:
		return false
	}
}

// IsZero reports whether the timeframe is unspecified.
func (t Timeframe) IsZero() bool { return t.Unit == TimeframeUnspecified }

// String renders the timeframe for logs and advisory text.
func (t Timeframe) String() string {
	switch t.Unit {
	case TimeframeMonths:
		return strconv.Itoa(t.Count) + " months"
	case TimeframeYears:
		return strconv.Itoa(t.Count) + " years"
	default:
		return "unspecified"
	}
}

// EquityHolding is a single directly held stock position.
type EquityHolding struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	AverageCost  float64 `json:"averageCost"`
	CurrentPrice float64 `json:"currentPrice"`
	Sector       string  `json:"sector"`
}

// MarketValue returns the position's current market value.
func (h EquityHolding) MarketValue() float64 { return h.Quantity * h.CurrentPrice }

// CostValue returns the position's cost basis.
func (h EquityHolding) CostValue() float64 { return h.Quantity * h.AverageCost }

// FundHolding is a mutual fund position.
type FundHolding struct {
	Name           string  `json:"name"`
	InvestedAmount float64 `json:"investedAmount"`
	CurrentValue   float64 `json:"currentValue"`
	Category       string  `json:"category"`
}

// ExternalAsset is a user-declared asset held outside the brokerage,
// such as gold, deposits or retirement accounts.
type ExternalAsset struct {
	Name   string    `json:"name"`
	Type   AssetType `json:"type"`
	Amount float64   `json:"amount"`
	Notes  string    `json:"notes,omitempty"`
}

// RecurringExpense is a user-declared recurring outflow.
type RecurringExpense struct {
	Name      string           `json:"name"`
	Type      ExpenseType      `json:"type"`
	Amount    float64          `json:"amount"`
	Frequency ExpenseFrequency `json:"frequency"`
	Notes     string           `json:"notes,omitempty"`
}

// FutureExpense is a planned outflow with a target horizon.
type FutureExpense struct {
	Purpose   GoalPurpose `json:"purpose"`
	Amount    float64     `json:"amount"`
	Timeframe Timeframe   `json:"timeframe"`
	Priority  Priority    `json:"priority"`
	Notes     string      `json:"notes,omitempty"`
}

// UserProfile carries the investor context used to flavour the analysis.
type UserProfile struct {
	Age            int           `json:"age"`
	City           string        `json:"city"`
	RiskTolerance  RiskTolerance `json:"riskTolerance"`
	FinancialGoals []string      `json:"financialGoals"`
}

// PortfolioSnapshot is the complete input to a checkup run: everything the
// investor holds and plans, assembled by the caller at a single point in time.
// The engine never mutates a snapshot it is given.
type PortfolioSnapshot struct {
	EquityHoldings    []EquityHolding    `json:"equityHoldings"`
	FundHoldings      []FundHolding      `json:"fundHoldings"`
	ExternalAssets    []ExternalAsset    `json:"externalAssets"`
	RecurringExpenses []RecurringExpense `json:"recurringExpenses"`
	FutureExpenses    []FutureExpense    `json:"futureExpenses"`
	Profile           *UserProfile       `json:"profile,omitempty"`
	TakenAt           time.Time          `json:"takenAt"`
}

// canonicalToken lowercases a label and collapses spaces, hyphens and
// slashes to underscores so enum parsing tolerates display formatting.
func canonicalToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer(" ", "_", "-", "_", "/", "_")
	return replacer.Replace(s)
}
