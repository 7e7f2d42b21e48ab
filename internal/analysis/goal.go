package analysis

import (
	"fmt"
	"math"
)

// defaultGoalHorizonYears is assumed when future expenses exist but none of
// them carries a usable timeframe.
const defaultGoalHorizonYears = 5.0

// ProjectGoal projects the current value forward at the configured annual
// growth rate over the timeframe and compares it against the target.
//
// The projection compounds yearly: projected = current * (1+rate)^years.
// Shortfall is floored at zero (a surplus is not a negative shortfall), and
// the monthly investment needed to close the gap is shortfall spread evenly
// over the remaining months. A non-positive timeframe yields no growth and no
// monthly figure; the shortfall then simply compares target against current.
func (e *Engine) ProjectGoal(currentValue, targetValue, timeframeYears float64) GoalAnalysis {
	goal := GoalAnalysis{
		CurrentValue:   round(currentValue),
		TargetValue:    round(targetValue),
		TimeframeYears: timeframeYears,
	}

	projected := currentValue
	if timeframeYears > 0 {
		projected = currentValue * math.Pow(1+e.cfg.AnnualGrowthRate, timeframeYears)
	}
	goal.ProjectedValue = round(projected)

	shortfall := targetValue - projected
	if shortfall < 0 {
		shortfall = 0
	}
	goal.Shortfall = round(shortfall)

	if timeframeYears > 0 && shortfall > 0 {
		goal.MonthlyInvestmentNeeded = round(shortfall / (timeframeYears * 12))
	}
	return goal
}

// goalTarget derives the combined goal from planned future expenses: the
// target is the sum of all amounts, the horizon the longest stated timeframe.
// Goals with no usable timeframe fall back to defaultGoalHorizonYears.
func goalTarget(goals []FutureExpense) (target, horizonYears float64) {
	for _, g := range goals {
		target += g.Amount
		if years := g.Timeframe.YearsValue(); years > horizonYears {
			horizonYears = years
		}
	}
	if target > 0 && horizonYears == 0 {
		horizonYears = defaultGoalHorizonYears
	}
	return target, horizonYears
}

// MonthlyExpenseEquivalent converts recurring expenses into a single
// per-month figure: monthly amounts count in full, quarterly amounts at a
// third, yearly at a twelfth. One-time expenses are excluded; they belong to
// planned future spending, not the recurring burn rate.
func MonthlyExpenseEquivalent(expenses []RecurringExpense) float64 {
	var monthly float64
	for _, x := range expenses {
		switch x.Frequency {
		case FrequencyMonthly:
			monthly += x.Amount
		case FrequencyQuarterly:
			monthly += x.Amount / 3
		case FrequencyYearly:
			monthly += x.Amount / 12
		}
	}
	return monthly
}

// ComputeLiquidityBuffer sizes the recommended emergency reserve: the
// configured number of months of recurring expenses, less planned expenses
// falling due within the next year (money already earmarked for near-term
// spending cannot double as an emergency fund). Floored at zero.
func (e *Engine) ComputeLiquidityBuffer(expenses []RecurringExpense, future []FutureExpense) float64 {
	buffer := MonthlyExpenseEquivalent(expenses) * e.cfg.EmergencyFundMonths
	for _, g := range future {
		if g.Timeframe.WithinOneYear() {
			buffer -= g.Amount
		}
	}
	if buffer < 0 {
		buffer = 0
	}
	return round(buffer)
}

// liquiditySummary renders the buffer recommendation as advisory text.
func (e *Engine) liquiditySummary(expenses []RecurringExpense, buffer float64) string {
	monthly := MonthlyExpenseEquivalent(expenses)
	if monthly == 0 {
		return "No recurring expenses declared; add them to size an emergency fund recommendation."
	}
	if buffer == 0 {
		return fmt.Sprintf(
			"Your planned near-term expenses already absorb the usual %.0f-month reserve; rebuild the emergency fund once they are paid out.",
			e.cfg.EmergencyFundMonths,
		)
	}
	return fmt.Sprintf(
		"Keep about %.0f readily accessible, covering %.0f months of your %.0f monthly expense run rate.",
		buffer, e.cfg.EmergencyFundMonths, monthly,
	)
}
