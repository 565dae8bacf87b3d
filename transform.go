package plot

import (
	"math"

	"github.com/gogpu/gg"
)

// Bbox is an axis-aligned box given by two corners.
// For view limits X0 > X1 (or Y0 > Y1) means an inverted axis.
type Bbox struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NullBbox returns a box that contains nothing. Extending it with a point
// yields a zero-size box at that point.
func NullBbox() Bbox {
	return Bbox{
		X0: math.Inf(1), Y0: math.Inf(1),
		X1: math.Inf(-1), Y1: math.Inf(-1),
	}
}

// IsNull reports whether an extents box is empty.
func (b Bbox) IsNull() bool {
	return b.X0 > b.X1 || b.Y0 > b.Y1
}

// Width returns X1 - X0.
func (b Bbox) Width() float64 { return b.X1 - b.X0 }

// Height returns Y1 - Y0.
func (b Bbox) Height() float64 { return b.Y1 - b.Y0 }

// ExtendPoint grows the box to include p.
func (b Bbox) ExtendPoint(p gg.Point) Bbox {
	return Bbox{
		X0: math.Min(b.X0, p.X), Y0: math.Min(b.Y0, p.Y),
		X1: math.Max(b.X1, p.X), Y1: math.Max(b.Y1, p.Y),
	}
}

// Union returns the smallest box containing both boxes.
// Null boxes are ignored.
func (b Bbox) Union(o Bbox) Bbox {
	if o.IsNull() {
		return b
	}
	if b.IsNull() {
		return o
	}
	return Bbox{
		X0: math.Min(b.X0, o.X0), Y0: math.Min(b.Y0, o.Y0),
		X1: math.Max(b.X1, o.X1), Y1: math.Max(b.Y1, o.Y1),
	}
}

// Transformed maps both corners through m and returns their bounding box.
func (b Bbox) Transformed(m gg.Matrix) Bbox {
	return NullBbox().
		ExtendPoint(m.TransformPoint(gg.Pt(b.X0, b.Y0))).
		ExtendPoint(m.TransformPoint(gg.Pt(b.X1, b.Y1)))
}

// BboxTransform returns the matrix that maps from onto to, flipping the
// y axis: from's Y0 lands on to's bottom edge (to.Y1 in pixel space).
// Pixel space has y growing downward while data space has y growing upward.
func BboxTransform(from, to Bbox) gg.Matrix {
	sx := to.Width() / from.Width()
	sy := -to.Height() / from.Height()
	return gg.Matrix{
		A: sx, B: 0, C: to.X0 - from.X0*sx,
		D: 0, E: sy, F: to.Y1 - from.Y0*sy,
	}
}

// Coords selects the coordinate system a patch or line is expressed in.
type Coords int

const (
	// DataCoords maps through the axes view limits. This is the default.
	DataCoords Coords = iota
	// AxesCoords maps the unit square onto the axes box; (0,0) is the
	// lower-left corner of the axes.
	AxesCoords
	// DisplayCoords are pixels; no transform is applied.
	DisplayCoords
)

// String returns the coordinate system name.
func (c Coords) String() string {
	switch c {
	case DataCoords:
		return "data"
	case AxesCoords:
		return "axes"
	case DisplayCoords:
		return "display"
	default:
		return "unknown"
	}
}
