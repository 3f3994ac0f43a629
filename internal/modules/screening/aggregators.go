package screening

import (
	"github.com/aristath/investlab/internal/domain"
	"github.com/aristath/investlab/pkg/formulas"
)

// Column identifies a numeric column of the investment table
type Column string

const (
	ColumnExpectedReturn    Column = "expected_return_pct"
	ColumnRiskLevel         Column = "risk_level"
	ColumnCapRate           Column = "cap_rate_pct"
	ColumnLiquidity         Column = "liquidity"
	ColumnVolatility        Column = "volatility"
	ColumnFees              Column = "fees_pct"
	ColumnMinimumInvestment Column = "minimum_investment"
)

// Columns lists the aggregated columns in display order
var Columns = []Column{
	ColumnExpectedReturn,
	ColumnRiskLevel,
	ColumnCapRate,
	ColumnLiquidity,
	ColumnVolatility,
	ColumnFees,
	ColumnMinimumInvestment,
}

// Statistic is the mean of one column.
// Present is false when no row carried a value; Value is then meaningless.
type Statistic struct {
	Value   float64 `json:"value" msgpack:"value"`
	Present bool    `json:"present" msgpack:"present"`
	Count   int     `json:"count" msgpack:"count"`
}

// SummaryStatistics maps each column to its mean
type SummaryStatistics map[Column]Statistic

// Get returns the mean of a column and whether it is defined
func (s SummaryStatistics) Get(c Column) (float64, bool) {
	st, ok := s[c]
	if !ok || !st.Present {
		return 0, false
	}
	return st.Value, true
}

// Aggregate computes the mean of every numeric column over the rows where the
// value is present. An empty dataset yields an absent statistic for every column.
func Aggregate(ds domain.Dataset) SummaryStatistics {
	values := make(map[Column][]*float64, len(Columns))
	for _, r := range ds {
		for _, c := range Columns {
			values[c] = append(values[c], columnValue(r, c))
		}
	}

	stats := make(SummaryStatistics, len(Columns))
	for _, c := range Columns {
		mean, count, ok := formulas.MeanPresent(values[c])
		stats[c] = Statistic{Value: mean, Present: ok, Count: count}
	}
	return stats
}

// columnValue extracts a column from a record; nil means absent
func columnValue(r domain.InvestmentRecord, c Column) *float64 {
	var v float64
	switch c {
	case ColumnExpectedReturn:
		v = r.ExpectedReturnPct
	case ColumnRiskLevel:
		v = float64(r.RiskLevel)
	case ColumnCapRate:
		if r.CapRatePct == nil {
			return nil
		}
		v = *r.CapRatePct
	case ColumnLiquidity:
		v = float64(r.Liquidity)
	case ColumnVolatility:
		v = float64(r.Volatility)
	case ColumnFees:
		v = r.FeesPct
	case ColumnMinimumInvestment:
		v = float64(r.MinimumInvestment)
	default:
		return nil
	}
	return &v
}
