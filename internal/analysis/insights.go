package analysis

import (
	"fmt"
	"sort"
)

// Baselines for the diversification strength rule: how many equity sectors
// and allocation categories read as "spread out".
const (
	diversifiedSectorBaseline   = 3
	diversifiedCategoryBaseline = 3
	wellDiversifiedSectors      = 4
	wellDiversifiedCategories   = 4
)

// ReportInputs bundles the intermediate pipeline results the insight rules
// evaluate. Assembled by Analyze; exposed so callers can synthesise insights
// from pre-computed parts in isolation.
type ReportInputs struct {
	Sectors         []SectorSlice
	Allocation      []AllocationSlice
	Performance     PerformanceMetrics
	Risk            RiskMetrics
	Goal            GoalAnalysis
	Tax             TaxInsights
	LiquidityBuffer float64
	LiquidReserves  float64
}

// insightRule evaluates one condition against the report inputs. Rules fire
// independently; a rule that does not apply returns ok=false.
type insightRule func(e *Engine, in ReportInputs) (Insight, bool)

// insightRules is the fixed rule table. Order matters: insights are sorted
// by priority, and rules earlier in this table win ties, so the table
// position encodes relative importance within a priority level.
var insightRules = []insightRule{
	sectorConcentrationRule,
	volatilityRule,
	goalShortfallRule,
	holdingQualityRule,
	taxSavingsRule,
	emergencyFundRule,
	diversificationRule,
}

// Synthesize evaluates the rule table against the inputs and returns the
// insights that fired, sorted high to low priority. The sort is stable, so
// insights of equal priority keep rule-table order. An unremarkable
// portfolio can legitimately produce an empty list.
func (e *Engine) Synthesize(in ReportInputs) []Insight {
	insights := make([]Insight, 0, len(insightRules))
	for _, rule := range insightRules {
		if insight, ok := rule(e, in); ok {
			insights = append(insights, insight)
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority.weight() > insights[j].Priority.weight()
	})
	return insights
}

// sectorConcentrationRule flags a single sector dominating the equity book.
func sectorConcentrationRule(e *Engine, in ReportInputs) (Insight, bool) {
	if len(in.Sectors) == 0 {
		return Insight{}, false
	}
	top := in.Sectors[0]
	if top.Percentage <= e.cfg.SectorConcentrationPct {
		return Insight{}, false
	}
	return Insight{
		Type:  InsightWarning,
		Title: "High sector concentration",
		Description: fmt.Sprintf(
			"%.1f%% of your equity value sits in the %s sector. A downturn there would hit the whole portfolio.",
			top.Percentage, top.Sector,
		),
		Priority:   PriorityHigh,
		Actionable: true,
	}, true
}

// volatilityRule flags a portfolio beta above the configured threshold.
func volatilityRule(e *Engine, in ReportInputs) (Insight, bool) {
	if in.Risk.PortfolioBeta <= e.cfg.HighBetaThreshold {
		return Insight{}, false
	}
	return Insight{
		Type:  InsightVolatility,
		Title: "Portfolio more volatile than the market",
		Description: fmt.Sprintf(
			"Your weighted portfolio beta is %.2f, so swings should run ahead of the index in both directions.",
			in.Risk.PortfolioBeta,
		),
		Priority:   PriorityMedium,
		Actionable: false,
	}, true
}

// goalShortfallRule flags projected wealth falling short of planned expenses.
func goalShortfallRule(_ *Engine, in ReportInputs) (Insight, bool) {
	if in.Goal.Shortfall <= 0 {
		return Insight{}, false
	}
	description := fmt.Sprintf(
		"Projected wealth covers %.0f of your %.0f goal target, leaving a %.0f gap.",
		in.Goal.ProjectedValue, in.Goal.TargetValue, in.Goal.Shortfall,
	)
	if in.Goal.MonthlyInvestmentNeeded > 0 {
		description += fmt.Sprintf(
			" Investing about %.0f per month would close it.",
			in.Goal.MonthlyInvestmentNeeded,
		)
	}
	return Insight{
		Type:        InsightGoal,
		Title:       "On track to miss your goals",
		Description: description,
		Priority:    PriorityHigh,
		Actionable:  true,
	}, true
}

// holdingQualityRule flags elevated small-cap or low-rated-fund exposure.
func holdingQualityRule(e *Engine, in ReportInputs) (Insight, bool) {
	quality := in.Risk.Quality
	highSmallCap := quality.SmallCapExposure > e.cfg.SmallCapAlertPct
	highLowRated := quality.LowRatedFunds > e.cfg.LowRatedFundAlertPct
	if !highSmallCap && !highLowRated {
		return Insight{}, false
	}

	var description string
	switch {
	case highSmallCap && highLowRated:
		description = fmt.Sprintf(
			"%.1f%% of equity value is in small-caps and %.1f%% of fund value is in low-rated funds.",
			quality.SmallCapExposure, quality.LowRatedFunds,
		)
	case highSmallCap:
		description = fmt.Sprintf(
			"%.1f%% of your equity value is in small-cap stocks, which tend to fall hardest in corrections.",
			quality.SmallCapExposure,
		)
	default:
		description = fmt.Sprintf(
			"%.1f%% of your fund value sits in funds rated 2 stars or below.",
			quality.LowRatedFunds,
		)
	}

	return Insight{
		Type:        InsightWarning,
		Title:       "Holding quality needs attention",
		Description: description,
		Priority:    PriorityMedium,
		Actionable:  true,
	}, true
}

// taxSavingsRule flags unused deduction room worth acting on.
func taxSavingsRule(e *Engine, in ReportInputs) (Insight, bool) {
	if in.Tax.PotentialSavings <= e.cfg.NotableTaxSavings {
		return Insight{}, false
	}
	return Insight{
		Type:  InsightTax,
		Title: "Unused tax deductions",
		Description: fmt.Sprintf(
			"You could save an estimated %.0f in tax by using your remaining Section 80C and NPS deduction room.",
			in.Tax.PotentialSavings,
		),
		Priority:   PriorityMedium,
		Actionable: true,
	}, true
}

// emergencyFundRule flags liquid reserves below the recommended buffer.
func emergencyFundRule(_ *Engine, in ReportInputs) (Insight, bool) {
	if in.LiquidityBuffer <= 0 || in.LiquidReserves >= in.LiquidityBuffer {
		return Insight{}, false
	}
	return Insight{
		Type:  InsightSuggestion,
		Title: "Emergency fund below target",
		Description: fmt.Sprintf(
			"Bank and fixed deposits cover %.0f of the recommended %.0f buffer. Top up the difference before adding market risk.",
			in.LiquidReserves, in.LiquidityBuffer,
		),
		Priority:   PriorityMedium,
		Actionable: true,
	}, true
}

// diversificationRule acknowledges a genuinely spread-out portfolio.
func diversificationRule(_ *Engine, in ReportInputs) (Insight, bool) {
	sectors := len(in.Sectors)
	categories := len(in.Allocation)
	if sectors < diversifiedSectorBaseline || categories < diversifiedCategoryBaseline {
		return Insight{}, false
	}

	priority := PriorityLow
	if sectors >= wellDiversifiedSectors && categories >= wellDiversifiedCategories {
		priority = PriorityMedium
	}
	return Insight{
		Type:  InsightStrength,
		Title: "Well diversified portfolio",
		Description: fmt.Sprintf(
			"Your wealth spans %d asset categories and %d equity sectors, which cushions shocks in any single one.",
			categories, sectors,
		),
		Priority:   priority,
		Actionable: false,
	}, true
}

// RebalanceRecommendations derives concrete allocation moves from the
// breakdowns. Rules only fire when something is actually held; an empty or
// balanced portfolio receives the generic review reminder, so the list is
// never empty.
func (e *Engine) RebalanceRecommendations(sectors []SectorSlice, allocation []AllocationSlice) []string {
	recommendations := []string{}
	if allocationTotal(allocation) > 0 {
		if len(sectors) > 0 && sectors[0].Percentage > e.cfg.SectorConcentrationPct {
			recommendations = append(recommendations, fmt.Sprintf(
				"Reduce exposure to the %s sector, currently %.1f%% of your equity holdings.",
				sectors[0].Sector, sectors[0].Percentage,
			))
		}

		if equityPct := allocationPercent(allocation, CategoryEquities); equityPct > e.cfg.EquityOverweightPct {
			recommendations = append(recommendations, fmt.Sprintf(
				"Direct equity makes up %.1f%% of your wealth; shift part of it into funds or fixed income.",
				equityPct,
			))
		}

		if fundPct := allocationPercent(allocation, CategoryMutualFunds); fundPct < e.cfg.FundUnderweightPct {
			recommendations = append(recommendations, fmt.Sprintf(
				"Mutual funds are only %.1f%% of your allocation; professionally managed funds smooth out single-stock risk.",
				fundPct,
			))
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Your allocation looks balanced. Review it after major market moves or life events.",
		)
	}
	return recommendations
}
