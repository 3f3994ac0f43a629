package dashboard

import (
	"fmt"

	"github.com/aristath/investlab/internal/modules/screening"
)

// NotAvailable is displayed for a metric with no underlying values
const NotAvailable = "N/A"

var metricLabels = map[screening.Column]string{
	screening.ColumnExpectedReturn:    "Avg Return (%)",
	screening.ColumnRiskLevel:         "Avg Risk",
	screening.ColumnCapRate:           "Avg Cap Rate (%)",
	screening.ColumnLiquidity:         "Avg Liquidity",
	screening.ColumnVolatility:        "Avg Volatility",
	screening.ColumnFees:              "Avg Fees (%)",
	screening.ColumnMinimumInvestment: "Avg Min Inv ($)",
}

// Metric is one tile of the summary strip
type Metric struct {
	Column  screening.Column `json:"column" msgpack:"column"`
	Label   string           `json:"label" msgpack:"label"`
	Value   *float64         `json:"value" msgpack:"value"` // nil when undefined
	Display string           `json:"display" msgpack:"display"`
}

// buildMetrics turns statistics into display tiles in column order
func buildMetrics(stats screening.SummaryStatistics) []Metric {
	metrics := make([]Metric, 0, len(screening.Columns))
	for _, col := range screening.Columns {
		m := Metric{
			Column:  col,
			Label:   metricLabels[col],
			Display: NotAvailable,
		}
		if v, ok := stats.Get(col); ok {
			m.Value = &v
			m.Display = fmt.Sprintf("%.2f", v)
		}
		metrics = append(metrics, m)
	}
	return metrics
}
