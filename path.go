package plot

import (
	"fmt"
	"iter"
	"math"

	"github.com/gogpu/gg"
)

// Code is a path command. Each vertex of a Path is paired with one Code.
// The numeric values follow the conventional path command numbering, so
// code arrays coming from other plotting tools can be used unchanged.
type Code uint8

const (
	// Stop marks the end of the path. Remaining vertices are ignored.
	Stop Code = 0
	// MoveTo starts a new sub-path at the vertex.
	MoveTo Code = 1
	// LineTo draws a straight line to the vertex.
	LineTo Code = 2
	// Curve3 is a quadratic Bezier segment: a control point followed by an
	// end point, both tagged Curve3.
	Curve3 Code = 3
	// Curve4 is a cubic Bezier segment: two control points followed by an
	// end point, all three tagged Curve4.
	Curve4 Code = 4
	// ClosePoly closes the current sub-path. Its vertex is a placeholder and
	// is never drawn.
	ClosePoly Code = 79
)

// String returns the command name.
func (c Code) String() string {
	switch c {
	case Stop:
		return "STOP"
	case MoveTo:
		return "MOVETO"
	case LineTo:
		return "LINETO"
	case Curve3:
		return "CURVE3"
	case Curve4:
		return "CURVE4"
	case ClosePoly:
		return "CLOSEPOLY"
	default:
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
}

// NumVertices returns the number of vertices a segment starting with this
// code consumes. Unknown codes report 0.
func (c Code) NumVertices() int {
	switch c {
	case Stop, MoveTo, LineTo, ClosePoly:
		return 1
	case Curve3:
		return 2
	case Curve4:
		return 3
	default:
		return 0
	}
}

// Path is a sequence of vertices paired with commands.
// A single Path may hold many disjoint sub-paths, each introduced by MoveTo;
// such a path is called a compound path.
//
// Paths are immutable once constructed.
type Path struct {
	vertices []gg.Point
	codes    []Code // nil means MoveTo followed by LineTo for every vertex
}

// NewPath creates a path from vertices and codes.
//
// If codes is nil the vertices form a single polyline. Otherwise codes must
// have one entry per vertex, start with MoveTo, and tag every point of a
// Bezier segment with the segment's code. The inputs are copied.
func NewPath(vertices []gg.Point, codes []Code) (*Path, error) {
	for i, v := range vertices {
		if !isFinite(v.X) || !isFinite(v.Y) {
			return nil, fmt.Errorf("%w: vertex %d is (%v, %v)", ErrNonFinite, i, v.X, v.Y)
		}
	}
	if codes != nil {
		if err := validateCodes(codes, len(vertices)); err != nil {
			return nil, err
		}
	}

	p := &Path{vertices: append([]gg.Point(nil), vertices...)}
	if codes != nil {
		p.codes = append([]Code(nil), codes...)
	}
	return p, nil
}

// MustPath is like NewPath but panics on error.
// Intended for paths built from literals.
func MustPath(vertices []gg.Point, codes []Code) *Path {
	p, err := NewPath(vertices, codes)
	if err != nil {
		panic(err)
	}
	return p
}

func validateCodes(codes []Code, n int) error {
	if len(codes) != n {
		return fmt.Errorf("%w: %d codes for %d vertices", ErrCodeCount, len(codes), n)
	}
	if n == 0 {
		return nil
	}
	if codes[0] != MoveTo {
		return fmt.Errorf("%w: got %v", ErrFirstCode, codes[0])
	}
	for i := 0; i < n; {
		c := codes[i]
		step := c.NumVertices()
		if step == 0 {
			return fmt.Errorf("%w: %d at index %d", ErrUnknownCode, uint8(c), i)
		}
		if c == Stop {
			return nil
		}
		if i+step > n {
			return fmt.Errorf("%w: %v at index %d needs %d vertices", ErrIncompleteCurve, c, i, step)
		}
		for j := i + 1; j < i+step; j++ {
			if codes[j] != c {
				return fmt.Errorf("%w: %v at index %d followed by %v", ErrIncompleteCurve, c, i, codes[j])
			}
		}
		i += step
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Len returns the number of vertices.
func (p *Path) Len() int {
	return len(p.vertices)
}

// Vertices returns the path vertices. The slice must not be modified.
func (p *Path) Vertices() []gg.Point {
	return p.vertices
}

// Codes returns one code per vertex. For a path created without codes the
// implied MoveTo/LineTo sequence is materialized.
func (p *Path) Codes() []Code {
	if p.codes != nil {
		return p.codes
	}
	codes := make([]Code, len(p.vertices))
	for i := range codes {
		codes[i] = LineTo
	}
	if len(codes) > 0 {
		codes[0] = MoveTo
	}
	return codes
}

// Segments iterates over drawing segments. Each step yields the segment
// code and its points: one point for MoveTo, LineTo and ClosePoly, two for
// Curve3 (control, end) and three for Curve4. Iteration ends at Stop.
func (p *Path) Segments() iter.Seq2[Code, []gg.Point] {
	return func(yield func(Code, []gg.Point) bool) {
		codes := p.Codes()
		for i := 0; i < len(codes); {
			c := codes[i]
			if c == Stop {
				return
			}
			step := c.NumVertices()
			if !yield(c, p.vertices[i:i+step]) {
				return
			}
			i += step
		}
	}
}

// Extents returns the bounding box of the drawn vertices, Bezier control
// points included. ClosePoly placeholders are skipped.
// An empty path yields a null box.
func (p *Path) Extents() Bbox {
	b := NullBbox()
	for c, pts := range p.Segments() {
		if c == ClosePoly {
			continue
		}
		for _, pt := range pts {
			b = b.ExtendPoint(pt)
		}
	}
	return b
}

// Transformed returns a copy of the path with every vertex mapped through m.
func (p *Path) Transformed(m gg.Matrix) *Path {
	out := &Path{
		vertices: make([]gg.Point, len(p.vertices)),
		codes:    p.codes,
	}
	for i, v := range p.vertices {
		out.vertices[i] = m.TransformPoint(v)
	}
	return out
}

// GGPath converts the path into a gg path ready for filling or stroking.
func (p *Path) GGPath() *gg.Path {
	out := gg.NewPath()
	for c, pts := range p.Segments() {
		switch c {
		case MoveTo:
			out.MoveTo(pts[0].X, pts[0].Y)
		case LineTo:
			out.LineTo(pts[0].X, pts[0].Y)
		case Curve3:
			out.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case Curve4:
			out.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case ClosePoly:
			out.Close()
		}
	}
	return out
}

// SubpathCount returns the number of sub-paths, i.e. MoveTo commands.
func (p *Path) SubpathCount() int {
	n := 0
	for c := range p.Segments() {
		if c == MoveTo {
			n++
		}
	}
	return n
}
