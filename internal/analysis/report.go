package analysis

import "time"

// DefaultHistoryLimit is the number of reports a ReportHistory retains when
// no explicit limit is configured.
const DefaultHistoryLimit = 10

// AllocationSlice is one entry of the asset allocation breakdown.
type AllocationSlice struct {
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// SectorSlice is one entry of the equity sector breakdown.
type SectorSlice struct {
	Sector     string  `json:"sector"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// PerformanceMetrics summarises returns across the market-linked holdings
// (direct equity plus mutual funds). Externally declared assets carry no cost
// basis and are excluded here; they still count toward allocation and goals.
type PerformanceMetrics struct {
	TotalInvested        float64 `json:"totalInvested"`
	TotalValue           float64 `json:"totalValue"`
	ProfitLoss           float64 `json:"profitLoss"`
	ProfitLossPercentage float64 `json:"profitLossPercentage"`
	CAGR                 float64 `json:"cagr"`
	IRR                  float64 `json:"irr"`
	SharpeRatio          float64 `json:"sharpeRatio"`
}

// QualityScore grades holding quality on a 0-100 scale, alongside the
// exposure percentages the grade is derived from.
type QualityScore struct {
	Overall          float64 `json:"overall"`
	SmallCapExposure float64 `json:"smallCapExposure"`
	LowRatedFunds    float64 `json:"lowRatedFunds"`
}

// RiskMetrics describes portfolio volatility and concentration.
// ConcentrationIndex is the Herfindahl index of sector weights
// (1.0 means a single sector holds everything).
type RiskMetrics struct {
	PortfolioBeta      float64      `json:"portfolioBeta"`
	MarketComparison   string       `json:"marketComparison"`
	ConcentrationIndex float64      `json:"concentrationIndex"`
	Quality            QualityScore `json:"quality"`
}

// GoalAnalysis projects current wealth against the investor's planned
// future expenses.
type GoalAnalysis struct {
	CurrentValue            float64 `json:"currentValue"`
	TargetValue             float64 `json:"targetValue"`
	TimeframeYears          float64 `json:"timeframeYears"`
	ProjectedValue          float64 `json:"projectedValue"`
	Shortfall               float64 `json:"shortfall"`
	MonthlyInvestmentNeeded float64 `json:"monthlyInvestmentNeeded"`
}

// TaxInsights is an indicative estimate of unused tax deductions.
// It is advisory output, not tax advice.
type TaxInsights struct {
	PotentialSavings float64  `json:"potentialSavings"`
	Suggestions      []string `json:"suggestions"`
}

// InsightType classifies a generated insight.
type InsightType string

const (
	InsightStrength   InsightType = "strength"
	InsightWarning    InsightType = "warning"
	InsightSuggestion InsightType = "suggestion"
	InsightTax        InsightType = "tax"
	InsightGoal       InsightType = "goal"
	InsightVolatility InsightType = "volatility"
)

// Insight is a single prioritised observation about the portfolio.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Priority    Priority    `json:"priority"`
	Actionable  bool        `json:"actionable"`
}

// AnalysisReport is the complete output of one checkup run.
type AnalysisReport struct {
	GeneratedAt                time.Time          `json:"generatedAt"`
	AssetAllocation            []AllocationSlice  `json:"assetAllocation"`
	SectorBreakdown            []SectorSlice      `json:"sectorBreakdown"`
	Performance                PerformanceMetrics `json:"performance"`
	Risk                       RiskMetrics        `json:"risk"`
	Goal                       GoalAnalysis       `json:"goalAnalysis"`
	Tax                        TaxInsights        `json:"taxInsights"`
	Insights                   []Insight          `json:"insights"`
	LiquidityBuffer            float64            `json:"liquidityBuffer"`
	LiquidityAnalysis          string             `json:"liquidityAnalysis"`
	RebalancingRecommendations []string           `json:"rebalancingRecommendations"`
}

// ReportHistory is a bounded, first-in-first-out collection of past reports.
// It is owned by whatever context runs the engine; the engine itself holds no
// state between runs. Once the limit is reached, adding a report evicts the
// oldest one.
//
// ReportHistory is not safe for concurrent use; callers serialise access.
type ReportHistory struct {
	limit   int
	reports []*AnalysisReport
}

// NewReportHistory creates a history bounded to limit reports.
// Non-positive limits fall back to DefaultHistoryLimit.
func NewReportHistory(limit int) *ReportHistory {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &ReportHistory{limit: limit}
}

// Add appends a report, evicting the oldest entry when the history is full.
// Nil reports are ignored.
func (h *ReportHistory) Add(report *AnalysisReport) {
	if report == nil {
		return
	}
	h.reports = append(h.reports, report)
	if len(h.reports) > h.limit {
		overflow := len(h.reports) - h.limit
		h.reports = append([]*AnalysisReport{}, h.reports[overflow:]...)
	}
}

// Latest returns the most recent report, if any.
func (h *ReportHistory) Latest() (*AnalysisReport, bool) {
	if len(h.reports) == 0 {
		return nil, false
	}
	return h.reports[len(h.reports)-1], true
}

// Reports returns the retained reports, newest first. The returned slice is
// a copy; mutating it does not affect the history.
func (h *ReportHistory) Reports() []*AnalysisReport {
	out := make([]*AnalysisReport, len(h.reports))
	for i, r := range h.reports {
		out[len(h.reports)-1-i] = r
	}
	return out
}

// Len returns the number of retained reports.
func (h *ReportHistory) Len() int { return len(h.reports) }

// Limit returns the maximum number of reports the history retains.
func (h *ReportHistory) Limit() int { return h.limit }
