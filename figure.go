package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg-plot/render"
)

// DefaultSubplot is the position of the single axes created by Subplots,
// in figure fractions.
var DefaultSubplot = Bbox{X0: 0.125, Y0: 0.11, X1: 0.9, Y1: 0.88}

// Figure is the top-level drawing surface. It owns one or more Axes and
// renders them through a render.Backend.
type Figure struct {
	opts figureOptions
	axes []*Axes
}

// NewFigure creates an empty figure.
func NewFigure(opts ...FigureOption) *Figure {
	o := defaultFigureOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Figure{opts: o}
}

// Subplots creates a figure with a single axes, the common starting point
// of a plotting script.
func Subplots(opts ...FigureOption) (*Figure, *Axes) {
	fig := NewFigure(opts...)
	return fig, fig.AddAxes(DefaultSubplot)
}

// AddAxes adds an axes occupying rect, given in figure fractions with the
// origin at the bottom-left corner.
func (f *Figure) AddAxes(rect Bbox) *Axes {
	ax := newAxes(f, rect)
	f.axes = append(f.axes, ax)
	return ax
}

// Axes returns the axes in creation order.
func (f *Figure) Axes() []*Axes {
	return f.axes
}

// Size returns the figure size in inches.
func (f *Figure) Size() (width, height float64) {
	return f.opts.width, f.opts.height
}

// DPI returns the resolution in pixels per inch.
func (f *Figure) DPI() float64 {
	return f.opts.dpi
}

// PixelSize returns the canvas size in pixels.
func (f *Figure) PixelSize() (width, height int) {
	return int(math.Round(f.opts.width * f.opts.dpi)), int(math.Round(f.opts.height * f.opts.dpi))
}

// Render draws the figure to b: Begin, background, every axes, End.
func (f *Figure) Render(b render.Backend) error {
	w, h := f.PixelSize()
	if err := b.Begin(w, h); err != nil {
		return fmt.Errorf("plot: begin frame: %w", err)
	}

	if f.opts.facecolor.Visible() {
		b.FillPath(render.NewRect(0, 0, float64(w), float64(h)).Path(),
			render.Paint{Color: f.opts.facecolor.RGBA})
	}

	pxPerPt := f.opts.dpi / 72
	tf := NewTickFormatter(f.opts.locale)
	for _, ax := range f.axes {
		ax.draw(b, pxPerPt, tf)
	}

	if err := b.End(); err != nil {
		return fmt.Errorf("plot: end frame: %w", err)
	}
	return nil
}

// Save renders the figure to path using the backend registered for its
// extension (.png, .jpg, .jpeg, .svg by default).
func (f *Figure) Save(path string) error {
	b, err := render.ForFile(path)
	if err != nil {
		return errors.Join(ErrUnknownExtension, err)
	}
	fb, ok := b.(render.FileBackend)
	if !ok {
		return fmt.Errorf("%w: backend for %q cannot write files", ErrUnknownExtension, path)
	}
	if err := f.Render(fb); err != nil {
		return err
	}
	if err := fb.SaveToFile(path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}
	w, h := f.PixelSize()
	Logger().Info("plot: figure saved", "path", path, "width", w, "height", h)
	return nil
}

// Encode renders the figure with the named backend and writes the result
// to w.
func (f *Figure) Encode(w io.Writer, backend string) (int64, error) {
	b, err := render.NewBackend(backend)
	if err != nil {
		return 0, err
	}
	wb, ok := b.(render.WriterBackend)
	if !ok {
		return 0, fmt.Errorf("plot: backend %q cannot stream output", backend)
	}
	if err := f.Render(wb); err != nil {
		return 0, err
	}
	return wb.WriteTo(w)
}
