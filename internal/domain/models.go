// Package domain provides core domain models and types.
package domain

import "fmt"

// Category represents the asset class an investment option belongs to
type Category string

const (
	CategoryEquities        Category = "Equities"
	CategoryBonds           Category = "Bonds"
	CategoryRealEstate      Category = "Real Estate"
	CategoryCommodities     Category = "Commodities"
	CategoryLifeSettlements Category = "Life Settlements"
	CategoryDirectLending   Category = "Direct Lending"
	CategoryInfrastructure  Category = "Infrastructure"
)

// TimeHorizon represents the holding period an investment option is suited for
type TimeHorizon string

const (
	HorizonShort  TimeHorizon = "Short"
	HorizonMedium TimeHorizon = "Medium"
	HorizonLong   TimeHorizon = "Long"
)

// TimeHorizons lists the selectable horizons in display order
var TimeHorizons = []TimeHorizon{HorizonShort, HorizonMedium, HorizonLong}

// ParseTimeHorizon converts a label into a TimeHorizon
func ParseTimeHorizon(s string) (TimeHorizon, error) {
	for _, h := range TimeHorizons {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown time horizon %q", s)
}

// InvestmentRecord is one row of the investment options table
type InvestmentRecord struct {
	Index             int         `json:"index" msgpack:"index"` // Position in the source table
	Name              string      `json:"name" msgpack:"name"`
	Category          Category    `json:"category" msgpack:"category"`
	ExpectedReturnPct float64     `json:"expected_return_pct" msgpack:"expected_return_pct"`
	RiskLevel         int         `json:"risk_level" msgpack:"risk_level"`
	CapRatePct        *float64    `json:"cap_rate_pct" msgpack:"cap_rate_pct"` // nil for non-income-producing assets
	Liquidity         int         `json:"liquidity" msgpack:"liquidity"`
	Volatility        int         `json:"volatility" msgpack:"volatility"`
	FeesPct           float64     `json:"fees_pct" msgpack:"fees_pct"`
	TimeHorizon       TimeHorizon `json:"time_horizon" msgpack:"time_horizon"`
	InflationHedge    bool        `json:"inflation_hedge" msgpack:"inflation_hedge"`
	MinimumInvestment int         `json:"minimum_investment" msgpack:"minimum_investment"`
}

// HasCapRate reports whether the record carries a cap rate
func (r InvestmentRecord) HasCapRate() bool {
	return r.CapRatePct != nil
}

// Clone returns a deep copy of the record
func (r InvestmentRecord) Clone() InvestmentRecord {
	if r.CapRatePct != nil {
		v := *r.CapRatePct
		r.CapRatePct = &v
	}
	return r
}

// Dataset is an ordered table of investment records.
// Insertion order is significant and names are assumed unique.
type Dataset []InvestmentRecord

// Clone returns a deep copy of the dataset
func (d Dataset) Clone() Dataset {
	out := make(Dataset, len(d))
	for i, r := range d {
		out[i] = r.Clone()
	}
	return out
}

// Names returns the record names in dataset order
func (d Dataset) Names() []string {
	names := make([]string, len(d))
	for i, r := range d {
		names[i] = r.Name
	}
	return names
}
