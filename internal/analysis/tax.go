package analysis

import (
	"fmt"
	"strings"
)

// Indian income tax assumptions for the deduction estimate. Balances in
// tax-advantaged instruments are used as a proxy for current-year
// contributions, which makes the estimate deliberately rough; the output is
// labelled indicative for that reason.
const (
	section80CCap     = 150000.0
	section80CCD1BCap = 50000.0
	assumedTaxRate    = 0.30
	ltcgExemption     = 125000.0
)

// EstimateTaxInsights produces an indicative estimate of unused deduction
// room and matching suggestions. It is an estimate, not tax advice: the
// engine cannot see actual contributions, the investor's tax regime or slab,
// so it assumes the top marginal rate and treats declared balances as this
// year's contributions.
//
// Deduction room is measured against Section 80C (PPF and EPF balances plus
// ELSS fund holdings) and the separate Section 80CCD(1B) NPS allowance.
// Potential savings are the combined unused room at the assumed rate.
func (e *Engine) EstimateTaxInsights(snap *PortfolioSnapshot, performance PerformanceMetrics) TaxInsights {
	var in80C, inNPS float64
	for _, a := range snap.ExternalAssets {
		switch a.Type {
		case AssetPPF, AssetEPF:
			in80C += a.Amount
		case AssetNPS:
			inNPS += a.Amount
		}
	}
	for _, f := range snap.FundHoldings {
		if strings.Contains(strings.ToLower(f.Category), "elss") {
			in80C += f.InvestedAmount
		}
	}

	room80C := section80CCap - in80C
	if room80C < 0 {
		room80C = 0
	}
	roomNPS := section80CCD1BCap - inNPS
	if roomNPS < 0 {
		roomNPS = 0
	}

	insights := TaxInsights{
		PotentialSavings: round((room80C + roomNPS) * assumedTaxRate),
		Suggestions:      []string{},
	}

	if room80C > 0 {
		insights.Suggestions = append(insights.Suggestions, fmt.Sprintf(
			"Invest %.0f more in Section 80C instruments (ELSS, PPF, EPF) to use the full %.0f deduction.",
			room80C, section80CCap,
		))
	}
	if roomNPS > 0 {
		insights.Suggestions = append(insights.Suggestions, fmt.Sprintf(
			"Contribute up to %.0f to NPS for the additional Section 80CCD(1B) deduction.",
			roomNPS,
		))
	}
	if performance.ProfitLoss > 0 {
		insights.Suggestions = append(insights.Suggestions, fmt.Sprintf(
			"Harvest long-term equity gains up to the %.0f LTCG exemption each financial year.",
			ltcgExemption,
		))
	}
	insights.Suggestions = append(insights.Suggestions,
		"Figures are indicative estimates based on declared balances, not tax advice.",
	)

	return insights
}
