// Package raster provides the pixel backend for figures.
// It renders through gg.Context and writes PNG or JPEG.
//
// Text is drawn with the Go Regular font bundled in golang.org/x/image, so
// tick labels render identically on every platform.
//
// # Example
//
//	import _ "github.com/gogpu/gg-plot/render/backends/raster"
//
//	b, _ := render.NewBackend("raster")
//	fig.Render(b)
//	b.(render.FileBackend).SaveToFile("figure.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gg-plot/render"
)

func init() {
	render.Register("raster", func() render.Backend {
		return NewBackend()
	}, ".png", ".jpg", ".jpeg")
}

// JPEGQuality is the quality used when writing .jpg/.jpeg files.
const JPEGQuality = 90

// errNotStarted is reported when drawing happens before Begin.
var errNotStarted = errors.New("raster: Begin not called")

// Backend renders figures to a pixel image using gg.Context.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int
	err    error
	faces  map[float64]text.Face
}

// Ensure Backend implements all required interfaces.
var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
	_ render.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates a transparent canvas of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.err = nil
	return nil
}

// End finalizes the frame and reports the first drawing error.
func (b *Backend) End() error {
	if b.ctx == nil {
		return errNotStarted
	}
	return b.err
}

// Save pushes the current clip and paint state.
func (b *Backend) Save() {
	if b.ctx == nil {
		b.fail(errNotStarted)
		return
	}
	b.ctx.Push()
}

// Restore pops the state saved by Save.
func (b *Backend) Restore() {
	if b.ctx == nil {
		b.fail(errNotStarted)
		return
	}
	b.ctx.Pop()
}

// ClipRect intersects the clip with r.
func (b *Backend) ClipRect(r render.Rect) {
	if b.ctx == nil {
		b.fail(errNotStarted)
		return
	}
	b.ctx.ClipRect(r.MinX, r.MinY, r.Width(), r.Height())
}

// FillPath fills path with paint.
func (b *Backend) FillPath(path *gg.Path, paint render.Paint) {
	if b.ctx == nil {
		b.fail(errNotStarted)
		return
	}
	if path == nil {
		return
	}
	b.ctx.SetFillBrush(gg.Solid(paint.Color))
	b.ctx.SetFillRule(convertFillRule(paint.Rule))
	b.setPath(path)
	b.fail(b.ctx.Fill())
}

// StrokePath strokes path with stroke.
func (b *Backend) StrokePath(path *gg.Path, stroke render.Stroke) {
	if b.ctx == nil {
		b.fail(errNotStarted)
		return
	}
	if path == nil || stroke.Width <= 0 {
		return
	}
	b.ctx.SetStrokeBrush(gg.Solid(stroke.Color))
	b.applyStroke(stroke)
	b.setPath(path)
	b.fail(b.ctx.Stroke())
}

// DrawText draws s with the bundled Go Regular face.
func (b *Backend) DrawText(s string, x, y float64, style render.TextStyle) {
	if b.ctx == nil {
		b.fail(errNotStarted)
		return
	}
	face, err := b.face(style.Size)
	if err != nil {
		b.fail(err)
		return
	}
	b.ctx.SetFont(face)
	b.ctx.SetColor(style.Color.Color())
	b.ctx.DrawStringAnchored(s, x, y, style.AnchorX, style.AnchorY)
}

// WriteTo writes the frame as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, errNotStarted
	}
	cw, n := render.CountingWriter(w)
	err := png.Encode(cw, b.ctx.Image())
	return n(), err
}

// SaveToFile writes the frame to path, as JPEG for .jpg/.jpeg and PNG
// otherwise.
func (b *Backend) SaveToFile(path string) error {
	if b.ctx == nil {
		return errNotStarted
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := jpeg.Encode(f, b.ctx.Image(), &jpeg.Options{Quality: JPEGQuality}); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	default:
		return b.ctx.SavePNG(path)
	}
}

// Image returns the rendered frame.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the canvas width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	return b.height
}

func (b *Backend) fail(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// setPath replaces the context path with path, in device space.
func (b *Backend) setPath(path *gg.Path) {
	b.ctx.Identity()
	b.ctx.ClearPath()
	path.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			b.ctx.MoveTo(c[0], c[1])
		case gg.LineTo:
			b.ctx.LineTo(c[0], c[1])
		case gg.QuadTo:
			b.ctx.QuadraticTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			b.ctx.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			b.ctx.ClosePath()
		}
	})
}

func (b *Backend) applyStroke(stroke render.Stroke) {
	b.ctx.SetLineWidth(stroke.Width)
	b.ctx.SetLineCap(convertLineCap(stroke.Cap))
	b.ctx.SetLineJoin(convertLineJoin(stroke.Join))

	if len(stroke.Dashes) > 0 {
		b.ctx.SetDash(stroke.Dashes...)
		b.ctx.SetDashOffset(stroke.DashOffset)
	} else {
		b.ctx.ClearDash()
	}
}

// face returns a cached face of the given pixel size.
func (b *Backend) face(size float64) (text.Face, error) {
	if size <= 0 {
		size = 10
	}
	if f, ok := b.faces[size]; ok {
		return f, nil
	}
	src, err := fontSource()
	if err != nil {
		return nil, err
	}
	if b.faces == nil {
		b.faces = make(map[float64]text.Face)
	}
	f := src.Face(size)
	b.faces[size] = f
	return f, nil
}

var (
	fontOnce sync.Once
	fontSrc  *text.FontSource
	fontErr  error
)

// fontSource parses the bundled font once per process.
func fontSource() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSrc, fontErr = text.NewFontSource(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("raster: load font: %w", fontErr)
		}
	})
	return fontSrc, fontErr
}

func convertFillRule(rule render.FillRule) gg.FillRule {
	if rule == render.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func convertLineCap(lineCap render.LineCap) gg.LineCap {
	switch lineCap {
	case render.LineCapRound:
		return gg.LineCapRound
	case render.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func convertLineJoin(join render.LineJoin) gg.LineJoin {
	switch join {
	case render.LineJoinRound:
		return gg.LineJoinRound
	case render.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
