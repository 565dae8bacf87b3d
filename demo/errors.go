package demo

import "errors"

var (
	// ErrVertexCount is returned by QuadBezier when the number of vertices
	// is not a multiple of three.
	ErrVertexCount = errors.New("demo: vertex count must be a multiple of 3 for quadratic bezier")

	// ErrEdgeCount is returned when the bin edges are not exactly one longer
	// than the bin counts.
	ErrEdgeCount = errors.New("demo: need one more bin edge than bin counts")

	// ErrNoBins is returned for a histogram without bins.
	ErrNoBins = errors.New("demo: histogram has no bins")
)
