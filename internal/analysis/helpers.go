package analysis

import "math"

// RoundingPrecision is the multiplier used to round monetary values to two
// decimal places.
const RoundingPrecision = 100

// round rounds a monetary value to two decimal places using the standard
// "round half up" approach via math.Round. Percentages are deliberately not
// rounded: breakdown percentages must keep summing to 100 within floating
// point tolerance, which per-entry rounding would break.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// sanitizeAmount repairs a numeric input: NaN, infinities and negative
// values all collapse to zero.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// clamp bounds v to the [lo, hi] interval.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// percentOf returns part as a percentage of total, guarding the zero
// denominator with a zero result.
func percentOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}

// safeDivide returns numerator/denominator, or fallback when the denominator
// is zero.
func safeDivide(numerator, denominator, fallback float64) float64 {
	if denominator == 0 {
		return fallback
	}
	return numerator / denominator
}

// externalTotal sums declared external asset amounts.
func externalTotal(assets []ExternalAsset) float64 {
	var total float64
	for _, a := range assets {
		total += a.Amount
	}
	return total
}

// liquidReserves sums the external assets that can plausibly back an
// emergency fund: bank and fixed deposits.
func liquidReserves(assets []ExternalAsset) float64 {
	var total float64
	for _, a := range assets {
		if a.Type == AssetBankDeposit || a.Type == AssetFixedDeposit {
			total += a.Amount
		}
	}
	return total
}
