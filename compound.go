package plot

import (
	"fmt"

	"github.com/gogpu/gg"
)

// MakeCompoundPathFromPolys builds one compound path from a set of
// polygons that all have the same number of sides.
//
// Each polygon becomes a closed sub-path of len(poly)+1 vertices:
// MoveTo, LineTo for the remaining corners, and ClosePoly whose placeholder
// vertex repeats the first corner. Drawing many same-shaped polygons this
// way is far cheaper than one patch per polygon.
func MakeCompoundPathFromPolys(polys [][]gg.Point) (*Path, error) {
	if len(polys) == 0 || len(polys[0]) == 0 {
		return nil, ErrEmptyPath
	}
	sides := len(polys[0])
	for i, poly := range polys {
		if len(poly) != sides {
			return nil, fmt.Errorf("%w: polygon %d has %d vertices, want %d",
				ErrRaggedPolys, i, len(poly), sides)
		}
	}

	stride := sides + 1
	vertices := make([]gg.Point, 0, len(polys)*stride)
	codes := make([]Code, 0, len(polys)*stride)
	for _, poly := range polys {
		vertices = append(vertices, poly...)
		vertices = append(vertices, poly[0])

		codes = append(codes, MoveTo)
		for j := 1; j < sides; j++ {
			codes = append(codes, LineTo)
		}
		codes = append(codes, ClosePoly)
	}
	return NewPath(vertices, codes)
}

// MakeCompoundPath concatenates paths into a single compound path.
// Trailing Stop codes of the inputs are dropped. Nil paths are skipped.
func MakeCompoundPath(paths ...*Path) *Path {
	var (
		vertices []gg.Point
		codes    []Code
	)
	for _, p := range paths {
		if p == nil {
			continue
		}
		for c, pts := range p.Segments() {
			vertices = append(vertices, pts...)
			for range pts {
				codes = append(codes, c)
			}
		}
	}
	return &Path{vertices: vertices, codes: codes}
}
