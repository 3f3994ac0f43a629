// Package screening filters the investment table and summarises what remains.
//
// Everything here is pure: inputs are never mutated and results are rebuilt on
// every call.
package screening

import (
	"github.com/aristath/investlab/internal/domain"
)

// Result is the outcome of one screening pass
type Result struct {
	// CategoryFiltered is the working set: rows in the selected categories.
	CategoryFiltered domain.Dataset `json:"category_filtered" msgpack:"category_filtered"`
	// Constrained is the working set narrowed by the constraints.
	Constrained domain.Dataset `json:"constrained" msgpack:"constrained"`
	// Stats are computed over CategoryFiltered, not Constrained.
	Stats SummaryStatistics `json:"stats" msgpack:"stats"`
}

// Run filters raw by category, summarises the working set and applies the
// constraints to it. The constraints only narrow the final table; the
// statistics always describe the whole working set.
func Run(raw domain.Dataset, criteria FilterCriteria) Result {
	working := FilterByCategory(raw, criteria.Categories)

	return Result{
		CategoryFiltered: working,
		Constrained:      ApplyConstraints(working, criteria),
		Stats:            Aggregate(working),
	}
}
