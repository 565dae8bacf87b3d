package demo

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg"

	plot "github.com/gogpu/gg-plot"
)

// Number is any numeric type usable as a bin count.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// HistogramCorners returns one rectangle per bin, each as four corners
// ordered (left, bottom), (left, top), (right, top), (right, bottom).
// Bars start at zero and reach counts[i].
func HistogramCorners[T Number](counts []T, edges []float64) ([][]gg.Point, error) {
	if len(counts) == 0 {
		return nil, ErrNoBins
	}
	if len(edges) != len(counts)+1 {
		return nil, fmt.Errorf("%w: %d counts, %d edges", ErrEdgeCount, len(counts), len(edges))
	}

	rects := make([][]gg.Point, len(counts))
	for i, c := range counts {
		left, right := edges[i], edges[i+1]
		bottom, top := 0.0, float64(c)
		rects[i] = []gg.Point{
			gg.Pt(left, bottom),
			gg.Pt(left, top),
			gg.Pt(right, top),
			gg.Pt(right, bottom),
		}
	}
	return rects, nil
}

// HistogramPath draws a histogram as a single compound path patch.
//
// counts holds the bar heights and edges the bin boundaries, one more than
// counts. The patch is styled with opts, added to ax, and the view limits
// are set to span the bars: x from the first to the last edge, y from zero
// to the tallest bar. Identical bounds, as for an all-zero histogram, are
// widened by the axes. Non-finite counts or edges fail the path build, before
// ax is touched.
func HistogramPath[T Number](ax *plot.Axes, counts []T, edges []float64, opts ...plot.PatchOption) (*plot.PathPatch, error) {
	rects, err := HistogramCorners(counts, edges)
	if err != nil {
		return nil, err
	}

	path, err := plot.MakeCompoundPathFromPolys(rects)
	if err != nil {
		return nil, fmt.Errorf("demo: histogram path: %w", err)
	}

	tops := make([]float64, len(counts))
	for i, c := range counts {
		tops[i] = float64(c)
	}
	xlo, xhi, ytop := edges[0], edges[len(edges)-1], slices.Max(tops)

	patch := ax.AddPatch(plot.NewPathPatch(path, opts...))
	if err := ax.SetXLim(xlo, xhi); err != nil {
		return patch, fmt.Errorf("demo: histogram view: %w", err)
	}
	if err := ax.SetYLim(0, ytop); err != nil {
		return patch, fmt.Errorf("demo: histogram view: %w", err)
	}

	plot.Logger().Debug("demo: histogram path built",
		"bins", len(counts), "vertices", path.Len())
	return patch, nil
}
