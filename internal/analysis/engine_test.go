package analysis

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
)

// almostEqual compares floats within a tolerance suitable for the engine's
// arithmetic (sums of products of money amounts).
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newTestEngine returns an engine with default thresholds and no market
// reference data, so every classification falls back to neutral defaults.
func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), NeutralMarketData())
}

// richSnapshot builds a snapshot exercising every input section. Each call
// returns a fresh value so tests can compare against an untouched copy.
func richSnapshot() *PortfolioSnapshot {
	return &PortfolioSnapshot{
		EquityHoldings: []EquityHolding{
			{Symbol: "RELIANCE", Name: "Reliance Industries", Quantity: 10, AverageCost: 2400, CurrentPrice: 2500, Sector: "Energy"},
			{Symbol: "INFY", Name: "Infosys", Quantity: 20, AverageCost: 1500, CurrentPrice: 1450, Sector: "IT"},
			{Symbol: "HDFCBANK", Name: "HDFC Bank", Quantity: 15, AverageCost: 1600, CurrentPrice: 1700, Sector: "Banking"},
		},
		FundHoldings: []FundHolding{
			{Name: "Parag Parikh Flexi Cap Fund", InvestedAmount: 50000, CurrentValue: 62000, Category: "Flexi Cap"},
		},
		ExternalAssets: []ExternalAsset{
			{Name: "Sovereign gold bonds", Type: AssetGold, Amount: 80000},
			{Name: "PPF account", Type: AssetPPF, Amount: 120000},
			{Name: "Savings account", Type: AssetBankDeposit, Amount: 45000},
		},
		RecurringExpenses: []RecurringExpense{
			{Name: "Rent", Type: ExpenseHousing, Amount: 25000, Frequency: FrequencyMonthly},
			{Name: "Health insurance", Type: ExpenseInsurance, Amount: 24000, Frequency: FrequencyYearly},
		},
		FutureExpenses: []FutureExpense{
			{Purpose: GoalTravel, Amount: 200000, Timeframe: Years(2), Priority: PriorityMedium},
		},
		Profile: &UserProfile{Age: 31, City: "Bengaluru", RiskTolerance: RiskModerate, FinancialGoals: []string{"wealth creation"}},
		TakenAt: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestAnalyze_SingleProfitableEquity(t *testing.T) {
	engine := newTestEngine()
	snapshot := &PortfolioSnapshot{
		EquityHoldings: []EquityHolding{
			{Symbol: "RELIANCE", Name: "Reliance Industries", Quantity: 10, AverageCost: 100, CurrentPrice: 150, Sector: "Energy"},
		},
	}
	at := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	report, err := engine.Analyze(snapshot, at)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	t.Run("timestamps the report in UTC", func(t *testing.T) {
		if !report.GeneratedAt.Equal(at) {
			t.Errorf("Expected GeneratedAt %v, got %v", at, report.GeneratedAt)
		}
		if report.GeneratedAt.Location() != time.UTC {
			t.Errorf("Expected UTC location, got %v", report.GeneratedAt.Location())
		}
	})

	t.Run("allocates everything to equities", func(t *testing.T) {
		if len(report.AssetAllocation) != 1 {
			t.Fatalf("Expected 1 allocation entry, got %d", len(report.AssetAllocation))
		}
		slice := report.AssetAllocation[0]
		if slice.Type != CategoryEquities {
			t.Errorf("Expected type %q, got %q", CategoryEquities, slice.Type)
		}
		if !almostEqual(slice.Value, 1500) {
			t.Errorf("Expected value 1500, got %v", slice.Value)
		}
		if !almostEqual(slice.Percentage, 100) {
			t.Errorf("Expected percentage 100, got %v", slice.Percentage)
		}
	})

	t.Run("computes performance from cost basis", func(t *testing.T) {
		p := report.Performance
		if !almostEqual(p.TotalInvested, 1000) {
			t.Errorf("Expected invested 1000, got %v", p.TotalInvested)
		}
		if !almostEqual(p.TotalValue, 1500) {
			t.Errorf("Expected value 1500, got %v", p.TotalValue)
		}
		if !almostEqual(p.ProfitLoss, 500) {
			t.Errorf("Expected profit 500, got %v", p.ProfitLoss)
		}
		if !almostEqual(p.ProfitLossPercentage, 50) {
			t.Errorf("Expected P/L percentage 50, got %v", p.ProfitLossPercentage)
		}
		if !almostEqual(p.CAGR, 40) {
			t.Errorf("Expected CAGR 40, got %v", p.CAGR)
		}
		if !almostEqual(p.IRR, 45) {
			t.Errorf("Expected IRR 45, got %v", p.IRR)
		}
		if !almostEqual(p.SharpeRatio, (50-6.0)/15.0) {
			t.Errorf("Expected Sharpe %.4f, got %v", (50-6.0)/15.0, p.SharpeRatio)
		}
	})

	t.Run("assigns neutral beta without reference data", func(t *testing.T) {
		if !almostEqual(report.Risk.PortfolioBeta, DefaultBeta) {
			t.Errorf("Expected beta %v, got %v", DefaultBeta, report.Risk.PortfolioBeta)
		}
		if report.Risk.MarketComparison != "broadly in line with the market" {
			t.Errorf("Unexpected market comparison %q", report.Risk.MarketComparison)
		}
		if !almostEqual(report.Risk.ConcentrationIndex, 1.0) {
			t.Errorf("Expected concentration index 1.0, got %v", report.Risk.ConcentrationIndex)
		}
	})

	t.Run("flags the single-sector concentration first", func(t *testing.T) {
		if len(report.Insights) == 0 {
			t.Fatal("Expected insights, got none")
		}
		first := report.Insights[0]
		if first.Title != "High sector concentration" {
			t.Errorf("Expected sector concentration insight first, got %q", first.Title)
		}
		if first.Type != InsightWarning || first.Priority != PriorityHigh || !first.Actionable {
			t.Errorf("Unexpected insight shape: %+v", first)
		}
	})

	t.Run("recommends rebalancing out of the concentrated book", func(t *testing.T) {
		if len(report.RebalancingRecommendations) == 0 {
			t.Fatal("Expected rebalancing recommendations, got none")
		}
	})
}

func TestAnalyze_NilSnapshot(t *testing.T) {
	engine := newTestEngine()

	report, err := engine.Analyze(nil, time.Now())
	if !errors.Is(err, apperrors.ErrSnapshotRequired) {
		t.Errorf("Expected ErrSnapshotRequired, got %v", err)
	}
	if report != nil {
		t.Errorf("Expected nil report, got %+v", report)
	}
}

func TestAnalyze_EmptySnapshot(t *testing.T) {
	engine := newTestEngine()

	report, err := engine.Analyze(&PortfolioSnapshot{}, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	t.Run("produces zeroed metrics instead of NaN", func(t *testing.T) {
		p := report.Performance
		for name, v := range map[string]float64{
			"TotalInvested":        p.TotalInvested,
			"TotalValue":           p.TotalValue,
			"ProfitLoss":           p.ProfitLoss,
			"ProfitLossPercentage": p.ProfitLossPercentage,
			"CAGR":                 p.CAGR,
			"IRR":                  p.IRR,
			"SharpeRatio":          p.SharpeRatio,
		} {
			if v != 0 {
				t.Errorf("Expected %s to be 0, got %v", name, v)
			}
		}
	})

	t.Run("keeps risk figures finite", func(t *testing.T) {
		if !almostEqual(report.Risk.PortfolioBeta, DefaultBeta) {
			t.Errorf("Expected beta %v, got %v", DefaultBeta, report.Risk.PortfolioBeta)
		}
		if report.Risk.ConcentrationIndex != 0 {
			t.Errorf("Expected zero concentration, got %v", report.Risk.ConcentrationIndex)
		}
		if !almostEqual(report.Risk.Quality.Overall, 100) {
			t.Errorf("Expected perfect quality score, got %v", report.Risk.Quality.Overall)
		}
	})

	t.Run("yields empty breakdowns, not nil panics", func(t *testing.T) {
		if len(report.AssetAllocation) != 0 {
			t.Errorf("Expected empty allocation, got %v", report.AssetAllocation)
		}
		if len(report.SectorBreakdown) != 0 {
			t.Errorf("Expected empty sector breakdown, got %v", report.SectorBreakdown)
		}
	})

	t.Run("still produces a rebalancing reminder", func(t *testing.T) {
		if len(report.RebalancingRecommendations) != 1 {
			t.Fatalf("Expected the generic recommendation, got %v", report.RebalancingRecommendations)
		}
	})

	t.Run("asks for expenses before sizing an emergency fund", func(t *testing.T) {
		if report.LiquidityBuffer != 0 {
			t.Errorf("Expected zero buffer, got %v", report.LiquidityBuffer)
		}
		if report.LiquidityAnalysis != "No recurring expenses declared; add them to size an emergency fund recommendation." {
			t.Errorf("Unexpected liquidity analysis %q", report.LiquidityAnalysis)
		}
	})
}

func TestAnalyze_SectorConcentration(t *testing.T) {
	engine := newTestEngine()
	snapshot := &PortfolioSnapshot{
		EquityHoldings: []EquityHolding{
			{Symbol: "INFY", Quantity: 80, AverageCost: 90, CurrentPrice: 100, Sector: "IT"},
			{Symbol: "SUNPHARMA", Quantity: 20, AverageCost: 90, CurrentPrice: 100, Sector: "Pharma"},
		},
	}

	report, err := engine.Analyze(snapshot, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(report.SectorBreakdown) != 2 {
		t.Fatalf("Expected 2 sectors, got %d", len(report.SectorBreakdown))
	}
	top := report.SectorBreakdown[0]
	if top.Sector != "IT" || !almostEqual(top.Percentage, 80) {
		t.Errorf("Expected IT at 80%%, got %s at %v%%", top.Sector, top.Percentage)
	}

	if len(report.Insights) == 0 {
		t.Fatal("Expected insights, got none")
	}
	first := report.Insights[0]
	if first.Title != "High sector concentration" {
		t.Errorf("Expected concentration insight first, got %q", first.Title)
	}
	if first.Priority != PriorityHigh {
		t.Errorf("Expected high priority, got %q", first.Priority)
	}
}

func TestAnalyze_LiquidityBuffer(t *testing.T) {
	engine := newTestEngine()
	snapshot := &PortfolioSnapshot{
		RecurringExpenses: []RecurringExpense{
			{Name: "Rent", Type: ExpenseHousing, Amount: 10000, Frequency: FrequencyMonthly},
		},
	}

	report, err := engine.Analyze(snapshot, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !almostEqual(report.LiquidityBuffer, 60000) {
		t.Errorf("Expected buffer 60000 (6 months of 10000), got %v", report.LiquidityBuffer)
	}

	found := false
	for _, insight := range report.Insights {
		if insight.Title == "Emergency fund below target" {
			found = true
		}
	}
	if !found {
		t.Error("Expected the emergency fund insight with no liquid reserves declared")
	}
}

func TestAnalyze_PercentagesSumToHundred(t *testing.T) {
	engine := newTestEngine()

	report, err := engine.Analyze(richSnapshot(), time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var allocationSum float64
	for _, slice := range report.AssetAllocation {
		if slice.Percentage < 0 {
			t.Errorf("Negative allocation percentage for %s: %v", slice.Type, slice.Percentage)
		}
		allocationSum += slice.Percentage
	}
	if !almostEqual(allocationSum, 100) {
		t.Errorf("Expected allocation percentages to sum to 100, got %v", allocationSum)
	}

	var sectorSum float64
	for _, slice := range report.SectorBreakdown {
		if slice.Percentage < 0 {
			t.Errorf("Negative sector percentage for %s: %v", slice.Sector, slice.Percentage)
		}
		sectorSum += slice.Percentage
	}
	if !almostEqual(sectorSum, 100) {
		t.Errorf("Expected sector percentages to sum to 100, got %v", sectorSum)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	engine := newTestEngine()
	at := time.Date(2025, time.July, 1, 8, 0, 0, 0, time.UTC)

	first, err := engine.Analyze(richSnapshot(), at)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := engine.Analyze(richSnapshot(), at)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical reports for identical inputs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	engine := newTestEngine()
	snapshot := richSnapshot()
	snapshot.EquityHoldings[0].Symbol = "  reliance  "
	snapshot.EquityHoldings[0].Sector = ""
	snapshot.FundHoldings[0].InvestedAmount = -50000

	pristine := richSnapshot()
	pristine.EquityHoldings[0].Symbol = "  reliance  "
	pristine.EquityHoldings[0].Sector = ""
	pristine.FundHoldings[0].InvestedAmount = -50000

	if _, err := engine.Analyze(snapshot, time.Now()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !reflect.DeepEqual(snapshot, pristine) {
		t.Errorf("Expected the input snapshot to remain untouched:\ngot:  %+v\nwant: %+v", snapshot, pristine)
	}
}

func TestAnalyze_InsightsOrderedByPriority(t *testing.T) {
	engine := newTestEngine()
	snapshot := richSnapshot()
	// A large near-term goal guarantees at least one high-priority insight.
	snapshot.FutureExpenses = append(snapshot.FutureExpenses, FutureExpense{
		Purpose: GoalHomePurchase, Amount: 5000000, Timeframe: Years(3), Priority: PriorityHigh,
	})

	report, err := engine.Analyze(snapshot, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(report.Insights) < 2 {
		t.Fatalf("Expected multiple insights, got %d", len(report.Insights))
	}

	weights := map[Priority]int{PriorityHigh: 3, PriorityMedium: 2, PriorityLow: 1}
	for i := 1; i < len(report.Insights); i++ {
		prev := weights[report.Insights[i-1].Priority]
		curr := weights[report.Insights[i].Priority]
		if curr > prev {
			t.Errorf("Insight %d (%s, %s) outranks insight %d (%s, %s)",
				i, report.Insights[i].Title, report.Insights[i].Priority,
				i-1, report.Insights[i-1].Title, report.Insights[i-1].Priority)
		}
	}
}

func TestEngine_ConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SectorConcentrationPct = 45

	engine := NewEngine(cfg, nil)
	if got := engine.Config().SectorConcentrationPct; got != 45 {
		t.Errorf("Expected configured threshold 45, got %v", got)
	}
}
