package screening

import (
	"github.com/aristath/investlab/internal/domain"
)

// FilterByCategory returns the rows whose category is in allowed, in input order.
// An empty allowed set yields an empty result, not the whole dataset.
func FilterByCategory(ds domain.Dataset, allowed []domain.Category) domain.Dataset {
	return FilterByCategorySet(ds, FilterCriteria{Categories: allowed}.categorySet())
}

// FilterByCategorySet is FilterByCategory over a prebuilt lookup set
func FilterByCategorySet(ds domain.Dataset, allowed map[domain.Category]bool) domain.Dataset {
	out := make(domain.Dataset, 0, len(ds))
	if len(allowed) == 0 {
		return out
	}
	for _, r := range ds {
		if allowed[r.Category] {
			out = append(out, r)
		}
	}
	return out
}

// ApplyConstraints keeps the rows that satisfy every numeric constraint and match
// the time horizon exactly, then drops non-hedges when InflationHedgeOnly is set.
// Categories on the criteria are ignored here. Input order is preserved.
//
// There is no wildcard horizon: a horizon with no rows yields an empty result.
func ApplyConstraints(ds domain.Dataset, criteria FilterCriteria) domain.Dataset {
	out := make(domain.Dataset, 0, len(ds))
	for _, r := range ds {
		if !meetsConstraints(r, criteria) {
			continue
		}
		if criteria.InflationHedgeOnly && !r.InflationHedge {
			continue
		}
		out = append(out, r)
	}
	return out
}

func meetsConstraints(r domain.InvestmentRecord, c FilterCriteria) bool {
	return r.MinimumInvestment >= c.MinInvestment &&
		r.ExpectedReturnPct >= c.MinReturnPct &&
		r.RiskLevel <= c.MaxRisk &&
		r.TimeHorizon == c.TimeHorizon
}
