// Package analysis implements the wealth checkup engine: a pure, deterministic
// transformation of a PortfolioSnapshot into an AnalysisReport.
//
// The engine performs no I/O and reads no clocks or randomness. Given the same
// snapshot, configuration and timestamp it produces an identical report, which
// keeps runs reproducible and the package trivially testable. All external
// knowledge (per-symbol betas, market-cap bands, fund ratings) arrives through
// the MarketData interface supplied at construction.
package analysis

import (
	"time"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/apperrors"
)

// Config carries the tunable thresholds and assumptions of the engine.
// Values are supplied by the caller rather than buried as magic numbers so
// tests and deployments can vary them independently.
type Config struct {
	// AnnualGrowthRate is the assumed yearly portfolio growth used for goal
	// projections, expressed as a fraction (0.12 = 12%).
	AnnualGrowthRate float64

	// EmergencyFundMonths is the number of months of expenses the liquidity
	// buffer should cover.
	EmergencyFundMonths float64

	// SectorConcentrationPct flags a single equity sector holding more than
	// this percentage of equity value.
	SectorConcentrationPct float64

	// EquityOverweightPct flags direct equity above this percentage of the
	// total allocation.
	EquityOverweightPct float64

	// FundUnderweightPct flags mutual funds below this percentage of the
	// total allocation.
	FundUnderweightPct float64

	// HighBetaThreshold flags a portfolio beta above this value as volatile.
	HighBetaThreshold float64

	// NotableTaxSavings is the minimum estimated tax saving that warrants
	// its own insight.
	NotableTaxSavings float64

	// SmallCapAlertPct flags small-cap exposure above this percentage of
	// equity value.
	SmallCapAlertPct float64

	// LowRatedFundAlertPct flags low-rated funds above this percentage of
	// fund value.
	LowRatedFundAlertPct float64
}

// DefaultConfig returns the standard checkup thresholds.
func DefaultConfig() Config {
	return Config{
		AnnualGrowthRate:       0.12,
		EmergencyFundMonths:    6,
		SectorConcentrationPct: 30,
		EquityOverweightPct:    60,
		FundUnderweightPct:     20,
		HighBetaThreshold:      1.2,
		NotableTaxSavings:      10000,
		SmallCapAlertPct:       30,
		LowRatedFundAlertPct:   20,
	}
}

// Engine runs wealth checkups. It is stateless apart from its configuration
// and market reference data, and safe for concurrent use.
type Engine struct {
	cfg    Config
	market MarketData
}

// NewEngine creates an engine with the given configuration and market
// reference data. A nil market falls back to neutral defaults (beta 1.0,
// no market-cap or rating classifications).
func NewEngine(cfg Config, market MarketData) *Engine {
	if market == nil {
		market = NeutralMarketData()
	}
	return &Engine{cfg: cfg, market: market}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Analyze runs the full checkup pipeline over a snapshot and assembles the
// report. The caller supplies the report timestamp; the engine never reads
// the clock itself.
//
// The pipeline is strictly sequential: normalize, break down allocation,
// measure performance, assess risk, project goals and liquidity, estimate
// taxes, then synthesise prioritised insights from the intermediate results.
//
// Returns apperrors.ErrSnapshotRequired when raw is nil. Any other malformed
// input is repaired by normalization rather than rejected.
func (e *Engine) Analyze(raw *PortfolioSnapshot, at time.Time) (*AnalysisReport, error) {
	snap, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	sectors := e.ComputeSectorBreakdown(snap.EquityHoldings)
	allocation := e.ComputeAssetAllocation(snap)
	performance := e.ComputePerformance(snap.EquityHoldings, snap.FundHoldings)

	risk := RiskMetrics{
		PortfolioBeta:      e.ComputeBeta(snap.EquityHoldings),
		ConcentrationIndex: concentrationIndex(sectors),
		Quality:            e.ComputeQualityScore(snap.EquityHoldings, snap.FundHoldings),
	}
	risk.MarketComparison = marketComparison(risk.PortfolioBeta, e.cfg.HighBetaThreshold)

	netWorth := performance.TotalValue + externalTotal(snap.ExternalAssets)
	target, horizon := goalTarget(snap.FutureExpenses)
	goal := e.ProjectGoal(netWorth, target, horizon)

	buffer := e.ComputeLiquidityBuffer(snap.RecurringExpenses, snap.FutureExpenses)
	tax := e.EstimateTaxInsights(snap, performance)

	inputs := ReportInputs{
		Sectors:         sectors,
		Allocation:      allocation,
		Performance:     performance,
		Risk:            risk,
		Goal:            goal,
		Tax:             tax,
		LiquidityBuffer: buffer,
		LiquidReserves:  liquidReserves(snap.ExternalAssets),
	}

	return &AnalysisReport{
		GeneratedAt:                at.UTC(),
		AssetAllocation:            allocation,
		SectorBreakdown:            sectors,
		Performance:                performance,
		Risk:                       risk,
		Goal:                       goal,
		Tax:                        tax,
		Insights:                   e.Synthesize(inputs),
		LiquidityBuffer:            buffer,
		LiquidityAnalysis:          e.liquiditySummary(snap.RecurringExpenses, buffer),
		RebalancingRecommendations: e.RebalanceRecommendations(sectors, allocation),
	}, nil
}

// Normalize repairs a raw snapshot into the shape the pipeline expects:
// nil slices become empty, non-finite or negative numerics are clamped to
// zero, labels are trimmed, symbols uppercased, and unrecognised enum values
// coerced to their documented fallbacks. The input is never mutated; a
// normalized copy is returned.
//
// Returns apperrors.ErrSnapshotRequired when raw is nil. This is the only
// rejection the engine performs; every other defect is silently repaired so a
// partially filled dashboard still gets a report.
func Normalize(raw *PortfolioSnapshot) (*PortfolioSnapshot, error) {
	if raw == nil {
		return nil, apperrors.ErrSnapshotRequired
	}
	return normalizeSnapshot(raw), nil
}
