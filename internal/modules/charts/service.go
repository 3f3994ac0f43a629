// Package charts provides services for generating chart data from the investment table.
package charts

import (
	"github.com/aristath/investlab/internal/domain"
	"github.com/aristath/investlab/pkg/formulas"
	"github.com/rs/zerolog"
)

// RiskHistogramBins matches the default bin count of the dashboard histogram
const RiskHistogramBins = 10

// BarPoint represents a single labelled bar
type BarPoint struct {
	Label string  `json:"label" msgpack:"label"`
	Value float64 `json:"value" msgpack:"value"`
}

// ScatterPoint represents a single point on a scatter plot
type ScatterPoint struct {
	Label string  `json:"label" msgpack:"label"` // Investment name, for tooltips
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
}

// Axes names the axes of a chart
type Axes struct {
	X string `json:"x" msgpack:"x"`
	Y string `json:"y" msgpack:"y"`
}

// BarChart is a labelled bar series
type BarChart struct {
	Axes   Axes       `json:"axes" msgpack:"axes"`
	Points []BarPoint `json:"points" msgpack:"points"`
}

// ScatterChart is an x/y point series
type ScatterChart struct {
	Axes   Axes           `json:"axes" msgpack:"axes"`
	Points []ScatterPoint `json:"points" msgpack:"points"`
}

// HistogramChart is a binned distribution
type HistogramChart struct {
	Axes Axes                    `json:"axes" msgpack:"axes"`
	Bins []formulas.HistogramBin `json:"bins" msgpack:"bins"`
}

// Charts holds the four dashboard charts
type Charts struct {
	ReturnsByName         BarChart       `json:"returns_by_name" msgpack:"returns_by_name"`
	VolatilityVsLiquidity ScatterChart   `json:"volatility_vs_liquidity" msgpack:"volatility_vs_liquidity"`
	FeesVsReturn          ScatterChart   `json:"fees_vs_return" msgpack:"fees_vs_return"`
	RiskDistribution      HistogramChart `json:"risk_distribution" msgpack:"risk_distribution"`
}

// Service provides chart data operations
type Service struct {
	log zerolog.Logger
}

// NewService creates a new charts service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "charts").Logger(),
	}
}

// Build returns the chart series for a working set.
// Point order follows dataset order. An empty dataset yields empty series.
func (s *Service) Build(ds domain.Dataset) Charts {
	c := Charts{
		ReturnsByName: BarChart{
			Axes:   Axes{X: "Investment Name", Y: "Expected Return (%)"},
			Points: make([]BarPoint, 0, len(ds)),
		},
		VolatilityVsLiquidity: ScatterChart{
			Axes:   Axes{X: "Volatility (1-10)", Y: "Liquidity (1-10)"},
			Points: make([]ScatterPoint, 0, len(ds)),
		},
		FeesVsReturn: ScatterChart{
			Axes:   Axes{X: "Fees (%)", Y: "Expected Return (%)"},
			Points: make([]ScatterPoint, 0, len(ds)),
		},
		RiskDistribution: HistogramChart{
			Axes: Axes{X: "Risk Level (1-10)", Y: "Count"},
			Bins: []formulas.HistogramBin{},
		},
	}

	risks := make([]float64, 0, len(ds))
	for _, r := range ds {
		c.ReturnsByName.Points = append(c.ReturnsByName.Points, BarPoint{
			Label: r.Name,
			Value: r.ExpectedReturnPct,
		})
		c.VolatilityVsLiquidity.Points = append(c.VolatilityVsLiquidity.Points, ScatterPoint{
			Label: r.Name,
			X:     float64(r.Volatility),
			Y:     float64(r.Liquidity),
		})
		c.FeesVsReturn.Points = append(c.FeesVsReturn.Points, ScatterPoint{
			Label: r.Name,
			X:     r.FeesPct,
			Y:     r.ExpectedReturnPct,
		})
		risks = append(risks, float64(r.RiskLevel))
	}

	if bins := formulas.Histogram(risks, RiskHistogramBins); bins != nil {
		c.RiskDistribution.Bins = bins
	}

	s.log.Debug().Int("rows", len(ds)).Msg("Built chart series")
	return c
}
