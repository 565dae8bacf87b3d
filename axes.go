package plot

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-plot/render"
)

// Artist is anything an Axes can draw.
type Artist interface {
	// ZOrder orders drawing; lower values are drawn first.
	ZOrder() float64
	// DataExtents returns the artist's bounding box in data coordinates.
	// ok is false for artists that do not live in data coordinates.
	DataExtents() (b Bbox, ok bool)

	draw(dc *drawContext)
}

// Axes layout constants, in points.
const (
	tickLength    = 3.5
	tickPad       = 3.5
	tickLabelSize = 10.0
	spineWidth    = 0.8
)

// DefaultMargin is the fraction of the data range added on each side when
// a view limit is derived from the data.
const DefaultMargin = 0.05

// Axes is a rectangular plotting area with its own data coordinate system.
// View limits map data coordinates onto the area.
type Axes struct {
	fig *Figure
	// pos is the axes rectangle in figure fractions, origin bottom-left.
	pos Bbox

	xlim, ylim [2]float64
	xset, yset bool

	artists   []Artist
	patches   []*PathPatch
	lines     []*Line2D
	cycle     int
	facecolor Color
	margin    float64
}

func newAxes(fig *Figure, pos Bbox) *Axes {
	return &Axes{
		fig:       fig,
		pos:       pos,
		facecolor: MustColor("white"),
		margin:    DefaultMargin,
	}
}

// Figure returns the figure the axes belongs to.
func (a *Axes) Figure() *Figure { return a.fig }

// Position returns the axes rectangle in figure fractions.
func (a *Axes) Position() Bbox { return a.pos }

// SetFaceColor sets the background of the plotting area.
func (a *Axes) SetFaceColor(c Color) { a.facecolor = c }

// AddPatch adds p to the axes and returns it.
func (a *Axes) AddPatch(p *PathPatch) *PathPatch {
	a.patches = append(a.patches, p)
	a.artists = append(a.artists, p)
	if p.path != nil {
		Logger().Debug("plot: patch added",
			"vertices", p.path.Len(), "subpaths", p.path.SubpathCount(),
			"coords", p.style.Coords.String())
	}
	return p
}

// Plot adds a line through (xs[i], ys[i]). format is a short style string
// such as "k:" or "r--"; without a color the next color of the default
// cycle is used.
func (a *Axes) Plot(xs, ys []float64, format string, opts ...LineOption) (*Line2D, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	fallback := NoColor
	if !f.ColorSet {
		fallback = MustColor(cycleColors[a.cycle%len(cycleColors)])
		a.cycle++
	}
	l, err := newLine2D(xs, ys, f, fallback, opts...)
	if err != nil {
		return nil, err
	}
	a.lines = append(a.lines, l)
	a.artists = append(a.artists, l)
	Logger().Debug("plot: line added", "points", len(xs), "format", format)
	return l, nil
}

// Patches returns the patches in insertion order.
func (a *Axes) Patches() []*PathPatch { return a.patches }

// Lines returns the lines in insertion order.
func (a *Axes) Lines() []*Line2D { return a.lines }

// SetXLim fixes the x view limits. lo > hi inverts the axis; equal bounds
// are widened with a warning.
func (a *Axes) SetXLim(lo, hi float64) error {
	lo, hi, err := viewLimits("xlim", lo, hi)
	if err != nil {
		return err
	}
	a.xlim, a.xset = [2]float64{lo, hi}, true
	Logger().Debug("plot: xlim set", "lo", lo, "hi", hi)
	return nil
}

// SetYLim fixes the y view limits. lo > hi inverts the axis; equal bounds
// are widened with a warning.
func (a *Axes) SetYLim(lo, hi float64) error {
	lo, hi, err := viewLimits("ylim", lo, hi)
	if err != nil {
		return err
	}
	a.ylim, a.yset = [2]float64{lo, hi}, true
	Logger().Debug("plot: ylim set", "lo", lo, "hi", hi)
	return nil
}

// singularExpand is the relative widening applied to equal view limits;
// zero limits become (-singularExpand, singularExpand).
const singularExpand = 0.05

func viewLimits(axis string, lo, hi float64) (float64, float64, error) {
	if !isFinite(lo) || !isFinite(hi) {
		return 0, 0, fmt.Errorf("%s: %w: (%v, %v) not finite", axis, ErrInvalidLimits, lo, hi)
	}
	if lo != hi {
		return lo, hi, nil
	}
	nlo, nhi := nonsingular(lo)
	Logger().Warn("plot: identical view limits widened",
		"axis", axis, "value", lo, "lo", nlo, "hi", nhi)
	return nlo, nhi, nil
}

// nonsingular widens the single value v into a usable range.
func nonsingular(v float64) (lo, hi float64) {
	if v == 0 {
		return -singularExpand, singularExpand
	}
	d := singularExpand * math.Abs(v)
	return v - d, v + d
}

// XLim returns the x view limits, derived from the data if never set.
func (a *Axes) XLim() (lo, hi float64) {
	if a.xset {
		return a.xlim[0], a.xlim[1]
	}
	d := a.DataLim()
	if d.IsNull() {
		return 0, 1
	}
	return a.expand(d.X0, d.X1)
}

// YLim returns the y view limits, derived from the data if never set.
func (a *Axes) YLim() (lo, hi float64) {
	if a.yset {
		return a.ylim[0], a.ylim[1]
	}
	d := a.DataLim()
	if d.IsNull() {
		return 0, 1
	}
	return a.expand(d.Y0, d.Y1)
}

// Autoscale freezes the current data-derived limits for any axis whose
// limits were never set explicitly.
func (a *Axes) Autoscale() {
	if !a.xset {
		lo, hi := a.XLim()
		a.xlim, a.xset = [2]float64{lo, hi}, true
	}
	if !a.yset {
		lo, hi := a.YLim()
		a.ylim, a.yset = [2]float64{lo, hi}, true
	}
}

func (a *Axes) expand(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	m := (hi - lo) * a.margin
	return lo - m, hi + m
}

// DataLim returns the union of the data extents of all artists.
func (a *Axes) DataLim() Bbox {
	b := NullBbox()
	for _, art := range a.artists {
		if e, ok := art.DataExtents(); ok {
			b = b.Union(e)
		}
	}
	return b
}

// ViewLim returns the view limits as a box.
func (a *Axes) ViewLim() Bbox {
	x0, x1 := a.XLim()
	y0, y1 := a.YLim()
	return Bbox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Box returns the axes rectangle in pixels. The figure-fraction position is
// flipped to y-down and normalized, so reversed corners give the same box.
func (a *Axes) Box() render.Rect {
	w, h := a.fig.PixelSize()
	fw, fh := float64(w), float64(h)
	return render.NewRectFromPoints(
		a.pos.X0*fw, (1-a.pos.Y0)*fh,
		a.pos.X1*fw, (1-a.pos.Y1)*fh,
	)
}

func (a *Axes) pixelBbox() Bbox {
	r := a.Box()
	return Bbox{X0: r.MinX, Y0: r.MinY, X1: r.MaxX, Y1: r.MaxY}
}

// Transform returns the matrix mapping coordinates of the given system to
// pixels. DataCoords use the current view limits.
func (a *Axes) Transform(c Coords) gg.Matrix {
	switch c {
	case AxesCoords:
		return BboxTransform(Bbox{X0: 0, Y0: 0, X1: 1, Y1: 1}, a.pixelBbox())
	case DisplayCoords:
		return gg.Identity()
	default:
		return BboxTransform(a.ViewLim(), a.pixelBbox())
	}
}

// TransData is shorthand for Transform(DataCoords).
func (a *Axes) TransData() gg.Matrix {
	return a.Transform(DataCoords)
}

// draw renders the background, clipped artists, frame and ticks.
// An axes with no pixel area draws nothing.
func (a *Axes) draw(b render.Backend, pxPerPt float64, tf *TickFormatter) {
	box := a.Box()
	if box.IsEmpty() {
		Logger().Debug("plot: empty axes skipped", "box", box)
		return
	}
	if a.facecolor.Visible() {
		b.FillPath(box.Path(), render.Paint{Color: a.facecolor.RGBA})
	}

	dc := &drawContext{
		backend: b,
		data:    a.TransData(),
		axesTr:  a.Transform(AxesCoords),
		pxPerPt: pxPerPt,
	}

	ordered := append([]Artist(nil), a.artists...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZOrder() < ordered[j].ZOrder()
	})

	b.Save()
	b.ClipRect(box)
	for _, art := range ordered {
		art.draw(dc)
	}
	b.Restore()

	a.drawFrame(dc, box)
	a.drawTicks(dc, box, tf)
}

func (a *Axes) drawFrame(dc *drawContext, box render.Rect) {
	dc.backend.StrokePath(box.Path(), dc.stroke(gg.Black, spineWidth, LineSolid))
}

func (a *Axes) drawTicks(dc *drawContext, box render.Rect, tf *TickFormatter) {
	tick := dc.stroke(gg.Black, spineWidth, LineSolid)
	length := tickLength * dc.pxPerPt
	pad := (tickLength + tickPad) * dc.pxPerPt
	label := render.TextStyle{Color: gg.Black, Size: tickLabelSize * dc.pxPerPt}

	x0, x1 := a.XLim()
	xticks, xstep := TickLocations(x0, x1, maxTickIntervals)
	label.AnchorX, label.AnchorY = 0.5, 1
	for _, v := range xticks {
		px := dc.data.TransformPoint(gg.Pt(v, 0)).X
		p := gg.NewPath()
		p.MoveTo(px, box.MaxY)
		p.LineTo(px, box.MaxY+length)
		dc.backend.StrokePath(p, tick)
		dc.backend.DrawText(tf.Format(v, xstep), px, box.MaxY+pad, label)
	}

	y0, y1 := a.YLim()
	yticks, ystep := TickLocations(y0, y1, maxTickIntervals)
	label.AnchorX, label.AnchorY = 1, 0.5
	for _, v := range yticks {
		py := dc.data.TransformPoint(gg.Pt(0, v)).Y
		p := gg.NewPath()
		p.MoveTo(box.MinX, py)
		p.LineTo(box.MinX-length, py)
		dc.backend.StrokePath(p, tick)
		dc.backend.DrawText(tf.Format(v, ystep), box.MinX-pad, py, label)
	}
	Logger().Debug("plot: ticks laid out", "x", len(xticks), "y", len(yticks))
}
