// Package dataset provides the static table of investment options.
//
// The table is fixed at build time. It stands in for a market-data feed and is
// never refreshed or mutated after startup.
package dataset

import (
	"github.com/aristath/investlab/internal/domain"
)

func pct(v float64) *float64 {
	return &v
}

// seed is the source table. Index matches slice position.
var seed = domain.Dataset{
	{Index: 0, Name: "US Equity Fund", Category: domain.CategoryEquities, ExpectedReturnPct: 8.5, RiskLevel: 7, Liquidity: 9, Volatility: 7, FeesPct: 1.0, TimeHorizon: domain.HorizonLong, InflationHedge: false, MinimumInvestment: 10000},
	{Index: 1, Name: "Global Bond ETF", Category: domain.CategoryBonds, ExpectedReturnPct: 4.2, RiskLevel: 3, Liquidity: 8, Volatility: 3, FeesPct: 0.2, TimeHorizon: domain.HorizonMedium, InflationHedge: false, MinimumInvestment: 5000},
	{Index: 2, Name: "Commercial Real Estate", Category: domain.CategoryRealEstate, ExpectedReturnPct: 7.8, RiskLevel: 6, CapRatePct: pct(6.5), Liquidity: 3, Volatility: 4, FeesPct: 1.5, TimeHorizon: domain.HorizonLong, InflationHedge: true, MinimumInvestment: 50000},
	{Index: 3, Name: "Gold ETF", Category: domain.CategoryCommodities, ExpectedReturnPct: 5.1, RiskLevel: 5, Liquidity: 9, Volatility: 5, FeesPct: 0.4, TimeHorizon: domain.HorizonMedium, InflationHedge: true, MinimumInvestment: 10000},
	{Index: 4, Name: "Life Settlements Fund", Category: domain.CategoryLifeSettlements, ExpectedReturnPct: 10.0, RiskLevel: 4, Liquidity: 2, Volatility: 2, FeesPct: 1.8, TimeHorizon: domain.HorizonLong, InflationHedge: false, MinimumInvestment: 10000},
	{Index: 5, Name: "Direct Lending Fund", Category: domain.CategoryDirectLending, ExpectedReturnPct: 9.5, RiskLevel: 5, Liquidity: 4, Volatility: 3, FeesPct: 1.2, TimeHorizon: domain.HorizonMedium, InflationHedge: false, MinimumInvestment: 75000},
	{Index: 6, Name: "Infrastructure Trust", Category: domain.CategoryInfrastructure, ExpectedReturnPct: 6.7, RiskLevel: 4, CapRatePct: pct(5.5), Liquidity: 3, Volatility: 3, FeesPct: 1.0, TimeHorizon: domain.HorizonLong, InflationHedge: true, MinimumInvestment: 60000},
}

// Provider hands out the investment options table
type Provider struct {
	records domain.Dataset
}

// NewProvider creates a provider over the built-in table
func NewProvider() *Provider {
	return &Provider{records: seed}
}

// GetAll returns a deep copy of the full table in source order.
// Callers may modify the result freely.
func (p *Provider) GetAll() domain.Dataset {
	return p.records.Clone()
}

// Categories returns the distinct categories in order of first appearance
func (p *Provider) Categories() []domain.Category {
	seen := make(map[domain.Category]bool, len(p.records))
	out := make([]domain.Category, 0, len(p.records))
	for _, r := range p.records {
		if seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}
