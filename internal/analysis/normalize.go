package analysis

import "strings"

// normalizeSnapshot produces a repaired deep copy of a snapshot.
// The zero-value fallbacks follow one rule: missing classification data
// contributes nothing rather than guessing.
func normalizeSnapshot(raw *PortfolioSnapshot) *PortfolioSnapshot {
	snap := &PortfolioSnapshot{
		EquityHoldings:    make([]EquityHolding, 0, len(raw.EquityHoldings)),
		FundHoldings:      make([]FundHolding, 0, len(raw.FundHoldings)),
		ExternalAssets:    make([]ExternalAsset, 0, len(raw.ExternalAssets)),
		RecurringExpenses: make([]RecurringExpense, 0, len(raw.RecurringExpenses)),
		FutureExpenses:    make([]FutureExpense, 0, len(raw.FutureExpenses)),
		TakenAt:           raw.TakenAt,
	}

	for _, h := range raw.EquityHoldings {
		snap.EquityHoldings = append(snap.EquityHoldings, EquityHolding{
			Symbol:       strings.ToUpper(strings.TrimSpace(h.Symbol)),
			Name:         strings.TrimSpace(h.Name),
			Quantity:     sanitizeAmount(h.Quantity),
			AverageCost:  sanitizeAmount(h.AverageCost),
			CurrentPrice: sanitizeAmount(h.CurrentPrice),
			Sector:       normalizeSector(h.Sector),
		})
	}

	for _, f := range raw.FundHoldings {
		snap.FundHoldings = append(snap.FundHoldings, FundHolding{
			Name:           strings.TrimSpace(f.Name),
			InvestedAmount: sanitizeAmount(f.InvestedAmount),
			CurrentValue:   sanitizeAmount(f.CurrentValue),
			Category:       strings.TrimSpace(f.Category),
		})
	}

	for _, a := range raw.ExternalAssets {
		snap.ExternalAssets = append(snap.ExternalAssets, ExternalAsset{
			Name:   strings.TrimSpace(a.Name),
			Type:   ParseAssetType(string(a.Type)),
			Amount: sanitizeAmount(a.Amount),
			Notes:  a.Notes,
		})
	}

	for _, x := range raw.RecurringExpenses {
		snap.RecurringExpenses = append(snap.RecurringExpenses, RecurringExpense{
			Name:      strings.TrimSpace(x.Name),
			Type:      ParseExpenseType(string(x.Type)),
			Amount:    sanitizeAmount(x.Amount),
			Frequency: ParseFrequency(string(x.Frequency)),
			Notes:     x.Notes,
		})
	}

	for _, g := range raw.FutureExpenses {
		snap.FutureExpenses = append(snap.FutureExpenses, FutureExpense{
			Purpose:   ParseGoalPurpose(string(g.Purpose)),
			Amount:    sanitizeAmount(g.Amount),
			Timeframe: normalizeTimeframe(g.Timeframe),
			Priority:  ParsePriority(string(g.Priority)),
			Notes:     g.Notes,
		})
	}

	snap.Profile = normalizeProfile(raw.Profile)

	return snap
}

// normalizeSector buckets blank sector labels under a shared fallback so the
// breakdown never carries empty keys.
func normalizeSector(sector string) string {
	sector = strings.TrimSpace(sector)
	if sector == "" {
		return "Other"
	}
	return sector
}

// normalizeTimeframe clamps negative counts and clears the unit of a
// zero-count timeframe so downstream checks only see valid tagged values.
func normalizeTimeframe(t Timeframe) Timeframe {
	if t.Count <= 0 {
		return Timeframe{}
	}
	switch t.Unit {
	case TimeframeMonths, TimeframeYears:
		return t
	default:
		return Timeframe{}
	}
}

func normalizeProfile(p *UserProfile) *UserProfile {
	if p == nil {
		return &UserProfile{RiskTolerance: RiskModerate, FinancialGoals: []string{}}
	}
	out := &UserProfile{
		Age:           p.Age,
		City:          strings.TrimSpace(p.City),
		RiskTolerance: ParseRiskTolerance(string(p.RiskTolerance)),
	}
	if out.Age < 0 {
		out.Age = 0
	}
	out.FinancialGoals = make([]string, 0, len(p.FinancialGoals))
	for _, g := range p.FinancialGoals {
		if g = strings.TrimSpace(g); g != "" {
			out.FinancialGoals = append(out.FinancialGoals, g)
		}
	}
	return out
}
