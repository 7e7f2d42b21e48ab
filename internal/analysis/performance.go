package analysis

// Return approximation assumptions. A snapshot carries no transaction dates
// or price history, so annualised figures cannot be computed exactly; they
// are derived from the overall profit/loss percentage with fixed, documented
// factors instead. The figures are indicative, never statistical.
const (
	// cagrApproxFactor dampens the raw P/L percentage into a CAGR stand-in,
	// assuming gains accrued over more than a year.
	cagrApproxFactor = 0.8

	// irrApproxFactor dampens the raw P/L percentage into an IRR stand-in,
	// slightly less than the raw figure to account for staggered investment.
	irrApproxFactor = 0.9

	// assumedRiskFreeRatePct approximates the Indian 10-year G-Sec yield.
	assumedRiskFreeRatePct = 6.0

	// assumedVolatilityPct approximates broad equity index volatility.
	assumedVolatilityPct = 15.0
)

// ComputePerformance aggregates returns across the market-linked holdings:
// direct equities (cost basis = quantity x average cost) and mutual funds
// (invested amount). External assets have no cost basis and are excluded.
//
// The derived figures guard the empty-portfolio case: when nothing has been
// invested every metric is zero rather than NaN. With a zero invested base
// there is no return to annualise, so the approximations stay zeroed too.
func (e *Engine) ComputePerformance(equities []EquityHolding, funds []FundHolding) PerformanceMetrics {
	var invested, value float64
	for _, h := range equities {
		invested += h.CostValue()
		value += h.MarketValue()
	}
	for _, f := range funds {
		invested += f.InvestedAmount
		value += f.CurrentValue
	}

	if value < 0 {
		value = 0
	}

	metrics := PerformanceMetrics{
		TotalInvested: round(invested),
		TotalValue:    round(value),
	}
	if invested == 0 {
		return metrics
	}

	profitLoss := value - invested
	plPct := profitLoss * 100 / invested

	metrics.ProfitLoss = round(profitLoss)
	metrics.ProfitLossPercentage = plPct
	metrics.CAGR = plPct * cagrApproxFactor
	metrics.IRR = plPct * irrApproxFactor
	metrics.SharpeRatio = (plPct - assumedRiskFreeRatePct) / assumedVolatilityPct

	return metrics
}
