package screening

import (
	"fmt"
	"math"

	"github.com/aristath/investlab/internal/domain"
)

// Bounds of the constraint controls
const (
	MinInvestmentLimit = 100000
	MinReturnLimit     = 15.0
	MaxRiskLimit       = 10
)

// FilterCriteria is the set of user-chosen constraints for one interaction.
// Treat it as a value: build a new one for every change.
type FilterCriteria struct {
	Categories         []domain.Category  `json:"categories" msgpack:"categories"`
	MinInvestment      int                `json:"min_investment" msgpack:"min_investment"`
	MinReturnPct       float64            `json:"min_return_pct" msgpack:"min_return_pct"`
	MaxRisk            int                `json:"max_risk" msgpack:"max_risk"`
	TimeHorizon        domain.TimeHorizon `json:"time_horizon" msgpack:"time_horizon"`
	InflationHedgeOnly bool               `json:"inflation_hedge_only" msgpack:"inflation_hedge_only"`
}

// DefaultCriteria returns the initial control state: every category selected,
// no investment or return floor, maximum risk 10, and the first horizon (Short).
func DefaultCriteria(categories []domain.Category) FilterCriteria {
	selected := make([]domain.Category, len(categories))
	copy(selected, categories)

	return FilterCriteria{
		Categories:    selected,
		MinInvestment: 0,
		MinReturnPct:  0,
		MaxRisk:       MaxRiskLimit,
		TimeHorizon:   domain.TimeHorizons[0],
	}
}

// Validate checks every constraint against its control bounds.
// The category set is not validated: unknown labels simply match nothing.
func (c FilterCriteria) Validate() error {
	if c.MinInvestment < 0 || c.MinInvestment > MinInvestmentLimit {
		return fmt.Errorf("%w: min_investment %d outside [0, %d]", ErrInvalidCriteria, c.MinInvestment, MinInvestmentLimit)
	}
	if math.IsNaN(c.MinReturnPct) || math.IsInf(c.MinReturnPct, 0) {
		return fmt.Errorf("%w: min_return_pct %g is not a finite number", ErrInvalidCriteria, c.MinReturnPct)
	}
	if c.MinReturnPct < 0 || c.MinReturnPct > MinReturnLimit {
		return fmt.Errorf("%w: min_return_pct %g outside [0, %g]", ErrInvalidCriteria, c.MinReturnPct, MinReturnLimit)
	}
	if c.MaxRisk < 0 || c.MaxRisk > MaxRiskLimit {
		return fmt.Errorf("%w: max_risk %d outside [0, %d]", ErrInvalidCriteria, c.MaxRisk, MaxRiskLimit)
	}
	if _, err := domain.ParseTimeHorizon(string(c.TimeHorizon)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
	}
	return nil
}

// categorySet builds a lookup set from the selected categories
func (c FilterCriteria) categorySet() map[domain.Category]bool {
	set := make(map[domain.Category]bool, len(c.Categories))
	for _, cat := range c.Categories {
		set[cat] = true
	}
	return set
}
