package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/aristath/investlab/internal/domain"
	"github.com/aristath/investlab/internal/modules/screening"
)

// Query parameter names
const (
	paramCategory      = "category"
	paramMinInvestment = "min_investment"
	paramMinReturn     = "min_return"
	paramMaxRisk       = "max_risk"
	paramHorizon       = "horizon"
	paramInflationOnly = "inflation_only"
)

// parseCriteria overlays query parameters on the defaults.
//
// category may repeat. Omitting it keeps every category selected; passing it
// with only empty values ("?category=") selects none.
func parseCriteria(q url.Values, defaults screening.FilterCriteria) (screening.FilterCriteria, error) {
	c := defaults

	if values, ok := q[paramCategory]; ok {
		c.Categories = make([]domain.Category, 0, len(values))
		for _, v := range values {
			if v != "" {
				c.Categories = append(c.Categories, domain.Category(v))
			}
		}
	}

	if v := q.Get(paramMinInvestment); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s must be an integer", screening.ErrInvalidCriteria, paramMinInvestment)
		}
		c.MinInvestment = n
	}

	if v := q.Get(paramMinReturn); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: %s must be a number", screening.ErrInvalidCriteria, paramMinReturn)
		}
		c.MinReturnPct = f
	}

	if v := q.Get(paramMaxRisk); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s must be an integer", screening.ErrInvalidCriteria, paramMaxRisk)
		}
		c.MaxRisk = n
	}

	if v := q.Get(paramHorizon); v != "" {
		c.TimeHorizon = domain.TimeHorizon(v)
	}

	if v := q.Get(paramInflationOnly); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s must be a boolean", screening.ErrInvalidCriteria, paramInflationOnly)
		}
		c.InflationHedgeOnly = b
	}

	return c, c.Validate()
}

// decodeCriteria overlays a JSON criteria object on the defaults. POST bodies
// and stream messages both go through here, so unknown fields and type
// mismatches are rejected the same way on either transport.
func decodeCriteria(r io.Reader, defaults screening.FilterCriteria) (screening.FilterCriteria, error) {
	c := defaults
	c.Categories = append([]domain.Category(nil), defaults.Categories...)

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return defaults, fmt.Errorf("%w: %v", screening.ErrInvalidCriteria, err)
	}
	return c, nil
}
