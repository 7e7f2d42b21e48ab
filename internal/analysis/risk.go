package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Quality score penalty weights. The overall grade starts at 100 and loses
// points in proportion to risky exposure percentages, clamped to [0, 100].
const (
	qualityPenaltySmallCap = 0.5
	qualityPenaltyLowRated = 0.75
)

// Beta band below which a portfolio reads as defensive. The upper band comes
// from Config.HighBetaThreshold.
const lowBetaComparison = 0.8

// ComputeBeta returns the value-weighted average beta across the equity
// holdings. Symbols without reference data contribute DefaultBeta, and a
// portfolio with zero equity value is assigned DefaultBeta outright, so the
// result is always a usable multiplier rather than NaN.
func (e *Engine) ComputeBeta(holdings []EquityHolding) float64 {
	betas := make([]float64, 0, len(holdings))
	weights := make([]float64, 0, len(holdings))
	var total float64

	for _, h := range holdings {
		value := h.MarketValue()
		if value == 0 {
			continue
		}
		beta, ok := e.market.Beta(h.Symbol)
		if !ok {
			beta = DefaultBeta
		}
		betas = append(betas, beta)
		weights = append(weights, value)
		total += value
	}

	if total == 0 {
		return DefaultBeta
	}
	return stat.Mean(betas, weights)
}

// ComputeQualityScore grades holding quality from two exposures: the share
// of equity value in small-cap symbols and the share of fund value in
// low-rated funds (rating <= 2 of 5). Holdings without classification data
// contribute zero exposure; the neutral assumption is that an unknown
// holding is not a risk signal.
func (e *Engine) ComputeQualityScore(equities []EquityHolding, funds []FundHolding) QualityScore {
	var equityTotal, smallCap float64
	for _, h := range equities {
		value := h.MarketValue()
		equityTotal += value
		if band, ok := e.market.CapBand(h.Symbol); ok && band == CapSmall {
			smallCap += value
		}
	}

	var fundTotal, lowRated float64
	for _, f := range funds {
		fundTotal += f.CurrentValue
		if rating, ok := e.market.FundRating(f.Name); ok && rating <= lowRatedThreshold {
			lowRated += f.CurrentValue
		}
	}

	score := QualityScore{
		SmallCapExposure: percentOf(smallCap, equityTotal),
		LowRatedFunds:    percentOf(lowRated, fundTotal),
	}
	score.Overall = clamp(
		100-qualityPenaltySmallCap*score.SmallCapExposure-qualityPenaltyLowRated*score.LowRatedFunds,
		0, 100,
	)
	return score
}

// concentrationIndex computes the Herfindahl index over sector weights:
// the sum of squared weight fractions. 1.0 means everything sits in one
// sector; an even split over n sectors yields 1/n. Zero when there are no
// equity holdings.
func concentrationIndex(sectors []SectorSlice) float64 {
	if len(sectors) == 0 {
		return 0
	}
	weights := make([]float64, len(sectors))
	for i, s := range sectors {
		weights[i] = s.Percentage / 100
	}
	return floats.Dot(weights, weights)
}

// marketComparison renders the beta as a plain-language comparison against
// the broad market.
func marketComparison(beta, highThreshold float64) string {
	switch {
	case beta > highThreshold:
		return "more volatile than the broader market"
	case beta < lowBetaComparison:
		return "less volatile than the broader market"
	default:
		return "broadly in line with the market"
	}
}
