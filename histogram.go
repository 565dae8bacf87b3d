package plot

import (
	"fmt"
	"math"
	"slices"
)

// Histogram counts data into bins equal-width bins spanning [min, max] of
// the data. It returns len(counts) == bins and len(edges) == bins+1.
//
// Every bin is half-open [edge[i], edge[i+1]) except the last, which also
// includes its right edge so the maximum is counted. Empty data spans
// [0, 1]; data with a single distinct value spans [v-0.5, v+0.5].
// Non-finite values are ignored.
func Histogram(data []float64, bins int) (counts []int, edges []float64, err error) {
	if bins < 1 {
		return nil, nil, fmt.Errorf("%w: %d", ErrBinCount, bins)
	}

	finite := make([]float64, 0, len(data))
	for _, v := range data {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}

	lo, hi := 0.0, 1.0
	if len(finite) > 0 {
		lo, hi = slices.Min(finite), slices.Max(finite)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges = make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	counts = make([]int, bins)
	for _, v := range finite {
		i := int(math.Floor((v - lo) / width))
		switch {
		case i >= bins:
			i = bins - 1
		case i < 0:
			i = 0
		}
		// Floating point can put a value just past its edge.
		if i > 0 && v < edges[i] {
			i--
		} else if i < bins-1 && v >= edges[i+1] {
			i++
		}
		counts[i]++
	}

	Logger().Debug("plot: histogram", "values", len(finite), "bins", bins, "lo", lo, "hi", hi)
	return counts, edges, nil
}
