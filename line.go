package plot

import (
	"fmt"

	"github.com/gogpu/gg"
)

// DefaultLineWidth is the default Line2D width in points.
const DefaultLineWidth = 1.5

// Line2D is a polyline through data points.
type Line2D struct {
	xs, ys []float64
	color  Color
	width  float64
	style  LineStyle
	coords Coords
	zorder float64
}

// LineOption configures a Line2D.
type LineOption func(*Line2D)

// WithLineColor overrides the color from the format string.
func WithLineColor(c Color) LineOption {
	return func(l *Line2D) { l.color = c }
}

// WithLineWidthPt sets the line width in points.
func WithLineWidthPt(w float64) LineOption {
	return func(l *Line2D) { l.width = w }
}

// WithLineCoords selects the coordinate system of the points.
func WithLineCoords(c Coords) LineOption {
	return func(l *Line2D) { l.coords = c }
}

// WithLineZOrder sets the drawing order.
func WithLineZOrder(z float64) LineOption {
	return func(l *Line2D) { l.zorder = z }
}

func newLine2D(xs, ys []float64, f Format, fallback Color, opts ...LineOption) (*Line2D, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, fmt.Errorf("%w: point %d is (%v, %v)", ErrNonFinite, i, xs[i], ys[i])
		}
	}
	l := &Line2D{
		xs:     append([]float64(nil), xs...),
		ys:     append([]float64(nil), ys...),
		color:  fallback,
		width:  DefaultLineWidth,
		style:  f.LineStyle,
		coords: DataCoords,
		zorder: 2,
	}
	if f.ColorSet {
		l.color = f.Color
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// XData returns the x values. The slice must not be modified.
func (l *Line2D) XData() []float64 { return l.xs }

// YData returns the y values. The slice must not be modified.
func (l *Line2D) YData() []float64 { return l.ys }

// Color returns the line color.
func (l *Line2D) Color() Color { return l.color }

// LineStyle returns the dash style.
func (l *Line2D) LineStyle() LineStyle { return l.style }

// Width returns the line width in points.
func (l *Line2D) Width() float64 { return l.width }

// Path returns the line as a polyline path.
func (l *Line2D) Path() *Path {
	vertices := make([]gg.Point, len(l.xs))
	for i := range l.xs {
		vertices[i] = gg.Pt(l.xs[i], l.ys[i])
	}
	return &Path{vertices: vertices}
}

// ZOrder implements Artist.
func (l *Line2D) ZOrder() float64 { return l.zorder }

// DataExtents implements Artist.
func (l *Line2D) DataExtents() (Bbox, bool) {
	if l.coords != DataCoords || len(l.xs) == 0 {
		return Bbox{}, false
	}
	return l.Path().Extents(), true
}

func (l *Line2D) draw(dc *drawContext) {
	if len(l.xs) < 2 || !l.color.Visible() || l.style == LineNone || l.width <= 0 {
		return
	}
	path := l.Path().Transformed(dc.transform(l.coords)).GGPath()
	stroke := dc.stroke(l.color.RGBA, l.width, l.style)
	dc.backend.StrokePath(path, stroke)
}
