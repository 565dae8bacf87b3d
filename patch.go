package plot

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-plot/render"
)

// Default patch style values.
var (
	DefaultFaceColor = MustColor("C0")
	DefaultEdgeColor = MustColor("black")
)

// DefaultPatchLineWidth is the default patch edge width in points.
const DefaultPatchLineWidth = 1.0

// PatchStyle holds the resolved styling of a patch.
type PatchStyle struct {
	FaceColor Color
	EdgeColor Color
	// Alpha overrides the alpha of both colors when AlphaSet is true.
	Alpha    float64
	AlphaSet bool
	// LineWidth is the edge width in points.
	LineWidth float64
	LineStyle LineStyle
	Coords    Coords
	FillRule  render.FillRule
	ZOrder    float64
}

// PatchOption configures a PathPatch.
type PatchOption func(*PatchStyle)

func defaultPatchStyle() PatchStyle {
	return PatchStyle{
		FaceColor: DefaultFaceColor,
		EdgeColor: DefaultEdgeColor,
		LineWidth: DefaultPatchLineWidth,
		LineStyle: LineSolid,
		Coords:    DataCoords,
		FillRule:  render.FillRuleNonZero,
		ZOrder:    1,
	}
}

// WithFaceColor sets the fill color. NoColor disables filling.
func WithFaceColor(c Color) PatchOption {
	return func(s *PatchStyle) { s.FaceColor = c }
}

// WithEdgeColor sets the outline color. NoColor disables the outline.
func WithEdgeColor(c Color) PatchOption {
	return func(s *PatchStyle) { s.EdgeColor = c }
}

// WithAlpha overrides the opacity of both face and edge.
func WithAlpha(a float64) PatchOption {
	return func(s *PatchStyle) {
		s.Alpha = a
		s.AlphaSet = true
	}
}

// WithLineWidth sets the outline width in points.
func WithLineWidth(w float64) PatchOption {
	return func(s *PatchStyle) { s.LineWidth = w }
}

// WithLineStyle sets the outline dash style.
func WithLineStyle(ls LineStyle) PatchOption {
	return func(s *PatchStyle) { s.LineStyle = ls }
}

// WithCoords selects the coordinate system of the patch vertices.
func WithCoords(c Coords) PatchOption {
	return func(s *PatchStyle) { s.Coords = c }
}

// WithFillRule selects the winding rule used for filling.
func WithFillRule(r render.FillRule) PatchOption {
	return func(s *PatchStyle) { s.FillRule = r }
}

// WithZOrder sets the drawing order; higher values are drawn later.
func WithZOrder(z float64) PatchOption {
	return func(s *PatchStyle) { s.ZOrder = z }
}

// PathPatch is a filled and stroked region bounded by a Path.
// A compound path yields one patch drawn in a single fill and stroke.
type PathPatch struct {
	path  *Path
	style PatchStyle
}

// NewPathPatch wraps path with the given style options. Options are applied
// in order, so later options win.
func NewPathPatch(path *Path, opts ...PatchOption) *PathPatch {
	style := defaultPatchStyle()
	for _, opt := range opts {
		opt(&style)
	}
	return &PathPatch{path: path, style: style}
}

// Path returns the patch outline.
func (p *PathPatch) Path() *Path { return p.path }

// Style returns the patch style as configured.
func (p *PathPatch) Style() PatchStyle { return p.style }

// FaceColor returns the fill color with alpha applied.
func (p *PathPatch) FaceColor() Color {
	if p.style.AlphaSet {
		return p.style.FaceColor.WithAlpha(p.style.Alpha)
	}
	return p.style.FaceColor
}

// EdgeColor returns the outline color with alpha applied.
func (p *PathPatch) EdgeColor() Color {
	if p.style.AlphaSet {
		return p.style.EdgeColor.WithAlpha(p.style.Alpha)
	}
	return p.style.EdgeColor
}

// ZOrder implements Artist.
func (p *PathPatch) ZOrder() float64 { return p.style.ZOrder }

// DataExtents implements Artist.
func (p *PathPatch) DataExtents() (Bbox, bool) {
	if p.style.Coords != DataCoords || p.path == nil {
		return Bbox{}, false
	}
	b := p.path.Extents()
	return b, !b.IsNull()
}

func (p *PathPatch) draw(dc *drawContext) {
	if p.path == nil || p.path.Len() == 0 {
		return
	}
	path := p.path.Transformed(dc.transform(p.style.Coords)).GGPath()

	if face := p.FaceColor(); face.Visible() {
		dc.backend.FillPath(path, render.Paint{Color: face.RGBA, Rule: p.style.FillRule})
	}
	edge := p.EdgeColor()
	if edge.Visible() && p.style.LineStyle != LineNone && p.style.LineWidth > 0 {
		dc.backend.StrokePath(path, dc.stroke(edge.RGBA, p.style.LineWidth, p.style.LineStyle))
	}
}

// drawContext carries what artists need while a figure is being drawn.
type drawContext struct {
	backend render.Backend
	data    gg.Matrix
	axesTr  gg.Matrix
	pxPerPt float64
}

func (dc *drawContext) transform(c Coords) gg.Matrix {
	switch c {
	case AxesCoords:
		return dc.axesTr
	case DisplayCoords:
		return gg.Identity()
	default:
		return dc.data
	}
}

// stroke builds a backend stroke from a point-based width and style.
func (dc *drawContext) stroke(col gg.RGBA, widthPt float64, ls LineStyle) render.Stroke {
	s := render.DefaultStroke()
	s.Color = col
	s.Width = widthPt * dc.pxPerPt
	for _, d := range ls.Dashes(widthPt) {
		s.Dashes = append(s.Dashes, d*dc.pxPerPt)
	}
	if ls == LineDotted {
		s.Cap = render.LineCapRound
	}
	return s
}
