package formulas

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values.
// ok is false for an empty slice; the returned mean is then 0 and must not be displayed.
func Mean(data []float64) (mean float64, ok bool) {
	if len(data) == 0 {
		return 0, false
	}
	return stat.Mean(data, nil), true
}

// MeanPresent calculates the arithmetic mean over the non-nil entries.
// Absent entries are skipped, never counted as zero.
// Returns the number of present values alongside the mean.
func MeanPresent(data []*float64) (mean float64, count int, ok bool) {
	present := make([]float64, 0, len(data))
	for _, v := range data {
		if v != nil {
			present = append(present, *v)
		}
	}
	mean, ok = Mean(present)
	return mean, len(present), ok
}

// HistogramBin is one equal-width bin of a histogram
type HistogramBin struct {
	Lower float64 `json:"lower" msgpack:"lower"`
	Upper float64 `json:"upper" msgpack:"upper"`
	Count int     `json:"count" msgpack:"count"`
}

// Histogram counts values into equal-width bins spanning [min, max].
// Every bin is half-open except the last, which also includes max.
// A degenerate range (min == max) is widened by 0.5 on each side.
// Returns nil for empty input or a non-positive bin count.
func Histogram(data []float64, bins int) []HistogramBin {
	if len(data) == 0 || bins <= 0 {
		return nil
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)

	// stat.Histogram treats the last divider as exclusive
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(make([]float64, bins), dividers, sorted, nil)

	out := make([]HistogramBin, bins)
	for i := range out {
		out[i] = HistogramBin{
			Lower: edges[i],
			Upper: edges[i+1],
			Count: int(counts[i]),
		}
	}
	return out
}
