package plot

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func approxPt(a, b gg.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestBboxTransform(t *testing.T) {
	from := Bbox{X0: 0, Y0: 0, X1: 1, Y1: 1}
	to := Bbox{X0: 100, Y0: 50, X1: 300, Y1: 250}
	m := BboxTransform(from, to)

	tests := []struct {
		in, want gg.Point
	}{
		{gg.Pt(0, 0), gg.Pt(100, 250)}, // bottom-left of data lands bottom-left on screen
		{gg.Pt(1, 1), gg.Pt(300, 50)},
		{gg.Pt(0.5, 0.5), gg.Pt(200, 150)},
		{gg.Pt(0, 1), gg.Pt(100, 50)},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); !approxPt(got, tt.want) {
			t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBboxTransformInverted(t *testing.T) {
	// Inverted x limits mirror the data horizontally.
	m := BboxTransform(Bbox{X0: 10, Y0: 0, X1: 0, Y1: 1}, Bbox{X0: 0, Y0: 0, X1: 100, Y1: 100})
	if got := m.TransformPoint(gg.Pt(10, 0)); !approxPt(got, gg.Pt(0, 100)) {
		t.Errorf("TransformPoint(10,0) = %v, want (0,100)", got)
	}
	if got := m.TransformPoint(gg.Pt(0, 1)); !approxPt(got, gg.Pt(100, 0)) {
		t.Errorf("TransformPoint(0,1) = %v, want (100,0)", got)
	}
}

func TestBboxUnion(t *testing.T) {
	a := Bbox{X0: 0, Y0: 0, X1: 1, Y1: 1}
	b := Bbox{X0: -1, Y0: 0.5, X1: 0.5, Y1: 3}

	want := Bbox{X0: -1, Y0: 0, X1: 1, Y1: 3}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := NullBbox().Union(a); got != a {
		t.Errorf("Null.Union(a) = %+v, want %+v", got, a)
	}
	if got := a.Union(NullBbox()); got != a {
		t.Errorf("a.Union(Null) = %+v, want %+v", got, a)
	}
}

func TestBboxExtendPoint(t *testing.T) {
	b := NullBbox()
	if !b.IsNull() {
		t.Fatal("NullBbox is not null")
	}
	b = b.ExtendPoint(gg.Pt(2, 3))
	if b.IsNull() || b.Width() != 0 || b.Height() != 0 {
		t.Errorf("single point box = %+v", b)
	}
	b = b.ExtendPoint(gg.Pt(-1, 5))
	want := Bbox{X0: -1, Y0: 3, X1: 2, Y1: 5}
	if b != want {
		t.Errorf("box = %+v, want %+v", b, want)
	}
}

func TestBboxTransformed(t *testing.T) {
	b := Bbox{X0: 0, Y0: 0, X1: 2, Y1: 1}
	got := b.Transformed(gg.Matrix{A: 1, B: 0, C: 0, D: 0, E: -1, F: 10})
	want := Bbox{X0: 0, Y0: 9, X1: 2, Y1: 10}
	if got != want {
		t.Errorf("Transformed = %+v, want %+v", got, want)
	}
}

func TestCoordsString(t *testing.T) {
	tests := map[Coords]string{
		DataCoords:    "data",
		AxesCoords:    "axes",
		DisplayCoords: "display",
		Coords(9):     "unknown",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Coords(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}
