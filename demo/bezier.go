package demo

import (
	"fmt"
	"slices"

	"github.com/gogpu/gg"

	plot "github.com/gogpu/gg-plot"
)

// QuadBezierCodes returns the codes for n vertices grouped in threes:
// MoveTo, Curve3, Curve3 for every group.
func QuadBezierCodes(n int) ([]plot.Code, error) {
	if n%3 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrVertexCount, n)
	}
	codes := make([]plot.Code, n)
	for i := range codes {
		if i%3 == 0 {
			codes[i] = plot.MoveTo
		} else {
			codes[i] = plot.Curve3
		}
	}
	return codes, nil
}

// QuadBezier draws quadratic Bezier curves as a single compound path.
//
// Each group of three vertices is one curve: start anchor, control point,
// end anchor. The patch is never filled and is always drawn in data
// coordinates, whatever opts say. View limits are left unchanged.
func QuadBezier(ax *plot.Axes, vertices []gg.Point, opts ...plot.PatchOption) (*plot.PathPatch, error) {
	codes, err := QuadBezierCodes(len(vertices))
	if err != nil {
		return nil, err
	}
	path, err := plot.NewPath(vertices, codes)
	if err != nil {
		return nil, fmt.Errorf("demo: bezier path: %w", err)
	}

	opts = append(slices.Clip(opts),
		plot.WithFaceColor(plot.NoColor),
		plot.WithCoords(plot.DataCoords),
	)
	patch := ax.AddPatch(plot.NewPathPatch(path, opts...))

	plot.Logger().Debug("demo: bezier path built", "curves", len(vertices)/3)
	return patch, nil
}

// Unzip splits points into their x and y coordinates.
func Unzip(points []gg.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}
