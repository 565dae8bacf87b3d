package plot

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

func rect(left, bottom, right, top float64) []gg.Point {
	return []gg.Point{
		gg.Pt(left, bottom), gg.Pt(left, top),
		gg.Pt(right, top), gg.Pt(right, bottom),
	}
}

func TestMakeCompoundPathFromPolys(t *testing.T) {
	polys := [][]gg.Point{
		rect(0, 0, 1, 2),
		rect(1, 0, 2, 5),
		rect(2, 0, 3, 3),
	}
	p, err := MakeCompoundPathFromPolys(polys)
	if err != nil {
		t.Fatalf("MakeCompoundPathFromPolys: %v", err)
	}

	if p.Len() != 15 {
		t.Fatalf("Len() = %d, want 15 (5 per rectangle)", p.Len())
	}

	codes := p.Codes()
	block := []Code{MoveTo, LineTo, LineTo, LineTo, ClosePoly}
	for i := range polys {
		if got := codes[i*5 : i*5+5]; !slices.Equal(got, block) {
			t.Errorf("polygon %d codes = %v, want %v", i, got, block)
		}
	}

	vertices := p.Vertices()
	for i, poly := range polys {
		got := vertices[i*5 : i*5+4]
		if !slices.Equal(got, poly) {
			t.Errorf("polygon %d corners = %v, want %v", i, got, poly)
		}
		if vertices[i*5+4] != poly[0] {
			t.Errorf("polygon %d close vertex = %v, want %v", i, vertices[i*5+4], poly[0])
		}
	}

	if n := p.SubpathCount(); n != 3 {
		t.Errorf("SubpathCount() = %d, want 3", n)
	}
	want := Bbox{X0: 0, Y0: 0, X1: 3, Y1: 5}
	if got := p.Extents(); got != want {
		t.Errorf("Extents() = %+v, want %+v", got, want)
	}
}

func TestMakeCompoundPathFromPolysTriangles(t *testing.T) {
	polys := [][]gg.Point{
		{gg.Pt(0, 0), gg.Pt(1, 0), gg.Pt(0, 1)},
		{gg.Pt(2, 2), gg.Pt(3, 2), gg.Pt(2, 3)},
	}
	p, err := MakeCompoundPathFromPolys(polys)
	if err != nil {
		t.Fatal(err)
	}
	want := []Code{MoveTo, LineTo, LineTo, ClosePoly, MoveTo, LineTo, LineTo, ClosePoly}
	if got := p.Codes(); !slices.Equal(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestMakeCompoundPathFromPolysErrors(t *testing.T) {
	tests := []struct {
		name    string
		polys   [][]gg.Point
		wantErr error
	}{
		{"nil", nil, ErrEmptyPath},
		{"empty polygon", [][]gg.Point{{}}, ErrEmptyPath},
		{"ragged", [][]gg.Point{rect(0, 0, 1, 1), {gg.Pt(0, 0), gg.Pt(1, 1)}}, ErrRaggedPolys},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MakeCompoundPathFromPolys(tt.polys)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMakeCompoundPath(t *testing.T) {
	a := MustPath([]gg.Point{gg.Pt(0, 0), gg.Pt(1, 1)}, nil)
	b := MustPath(
		[]gg.Point{gg.Pt(2, 2), gg.Pt(3, 3), gg.Pt(4, 4), gg.Pt(0, 0)},
		[]Code{MoveTo, Curve3, Curve3, Stop},
	)

	p := MakeCompoundPath(a, nil, b)
	wantCodes := []Code{MoveTo, LineTo, MoveTo, Curve3, Curve3}
	if got := p.Codes(); !slices.Equal(got, wantCodes) {
		t.Errorf("Codes() = %v, want %v", got, wantCodes)
	}
	if p.Len() != 5 {
		t.Errorf("Len() = %d, want 5", p.Len())
	}
	if n := p.SubpathCount(); n != 2 {
		t.Errorf("SubpathCount() = %d, want 2", n)
	}
}
