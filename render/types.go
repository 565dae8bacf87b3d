package render

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle in pixels.
// Min is the top-left corner, Max the bottom-right corner.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// NewRectFromPoints creates a rectangle from two corners in any order.
func NewRectFromPoints(x1, y1, x2, y2 float64) Rect {
	return Rect{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Path returns the rectangle outline as a closed gg path.
func (r Rect) Path() *gg.Path {
	p := gg.NewPath()
	p.Rectangle(r.MinX, r.MinY, r.Width(), r.Height())
	return p
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Paint is a solid fill.
type Paint struct {
	Color gg.RGBA
	Rule  FillRule
}

// Stroke defines the style for stroking paths.
type Stroke struct {
	Color gg.RGBA
	// Width is the line width in pixels.
	Width float64
	Cap   LineCap
	Join  LineJoin
	// Dashes is the on/off pattern in pixels; nil means solid.
	Dashes     []float64
	DashOffset float64
}

// DefaultStroke returns a one pixel black stroke.
func DefaultStroke() Stroke {
	return Stroke{
		Color: gg.Black,
		Width: 1,
		Cap:   LineCapButt,
		Join:  LineJoinMiter,
	}
}

// TextStyle describes how DrawText places and colors a string.
//
// AnchorX and AnchorY select which point of the text box sits at (x, y):
// AnchorX 0 is the left edge, 0.5 the center and 1 the right edge;
// AnchorY 0 puts the baseline at y, 1 puts the top of the text at y and
// 0.5 centers it vertically.
type TextStyle struct {
	Color gg.RGBA
	// Size is the font size in pixels.
	Size    float64
	AnchorX float64
	AnchorY float64
}
