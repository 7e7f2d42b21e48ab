package analysis

import "sort"

// Allocation category labels for the two market-linked buckets. External
// asset categories use AssetType.Display().
const (
	CategoryEquities    = "Equities"
	CategoryMutualFunds = "Mutual Funds"
)

// ComputeSectorBreakdown groups direct equity holdings by sector and returns
// the per-sector value and share of total equity value, sorted by percentage
// descending. Equal percentages keep first-appearance order, so the result is
// stable for a given snapshot.
//
// When total equity value is zero every percentage is zero; an empty holdings
// slice yields an empty breakdown.
func (e *Engine) ComputeSectorBreakdown(holdings []EquityHolding) []SectorSlice {
	sectors := make([]string, 0)
	values := make(map[string]float64)
	var total float64

	for _, h := range holdings {
		value := h.MarketValue()
		if _, seen := values[h.Sector]; !seen {
			sectors = append(sectors, h.Sector)
		}
		values[h.Sector] += value
		total += value
	}

	breakdown := make([]SectorSlice, 0, len(sectors))
	for _, sector := range sectors {
		breakdown = append(breakdown, SectorSlice{
			Sector:     sector,
			Value:      round(values[sector]),
			Percentage: percentOf(values[sector], total),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Percentage > breakdown[j].Percentage
	})
	return breakdown
}

// ComputeAssetAllocation builds the top-level allocation across everything
// the investor holds: one entry for direct equities, one for mutual funds,
// and one per distinct external asset type. A category only appears when at
// least one underlying record exists, so an equities-only portfolio yields a
// single 100% entry.
//
// Entries are sorted by percentage descending with first-appearance order as
// the tiebreaker. When the combined value is zero all percentages are zero.
func (e *Engine) ComputeAssetAllocation(snap *PortfolioSnapshot) []AllocationSlice {
	labels := make([]string, 0)
	values := make(map[string]float64)
	add := func(label string, value float64) {
		if _, seen := values[label]; !seen {
			labels = append(labels, label)
		}
		values[label] += value
	}

	if len(snap.EquityHoldings) > 0 {
		var equity float64
		for _, h := range snap.EquityHoldings {
			equity += h.MarketValue()
		}
		add(CategoryEquities, equity)
	}

	if len(snap.FundHoldings) > 0 {
		var funds float64
		for _, f := range snap.FundHoldings {
			funds += f.CurrentValue
		}
		add(CategoryMutualFunds, funds)
	}

	for _, a := range snap.ExternalAssets {
		add(a.Type.Display(), a.Amount)
	}

	var total float64
	for _, label := range labels {
		total += values[label]
	}

	allocation := make([]AllocationSlice, 0, len(labels))
	for _, label := range labels {
		allocation = append(allocation, AllocationSlice{
			Type:       label,
			Value:      round(values[label]),
			Percentage: percentOf(values[label], total),
		})
	}

	sort.SliceStable(allocation, func(i, j int) bool {
		return allocation[i].Percentage > allocation[j].Percentage
	})
	return allocation
}

// allocationPercent returns the percentage of the named category, or 0 when
// the category is absent.
func allocationPercent(allocation []AllocationSlice, category string) float64 {
	for _, slice := range allocation {
		if slice.Type == category {
			return slice.Percentage
		}
	}
	return 0
}

// allocationTotal sums the values across all allocation entries.
func allocationTotal(allocation []AllocationSlice) float64 {
	var total float64
	for _, slice := range allocation {
		total += slice.Value
	}
	return total
}
