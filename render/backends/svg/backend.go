// Package svg provides the SVG backend for figures, built on
// github.com/ajstarks/svgo.
//
// Every FillPath and StrokePath call becomes one <path> element, clips
// become <clipPath> definitions referenced from a <g> group, and text
// becomes <text> elements using the generic sans-serif family.
//
//	import _ "github.com/gogpu/gg-plot/render/backends/svg"
//
//	b, _ := render.ForFile("figure.svg")
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-plot/render"
)

func init() {
	render.Register("svg", func() render.Backend {
		return New()
	}, ".svg")
}

var errNotStarted = errors.New("svg: Begin not called")

// Backend writes figures as SVG documents.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	width  int
	height int
	ended  bool

	clipID int   // last clip id handed out
	groups int   // open <g> elements
	stack  []int // open group counts at each Save
}

var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
)

// New creates an SVG backend. Call Begin before drawing.
func New() *Backend {
	return &Backend{}
}

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %dx%d", width, height)
	}
	b.buf.Reset()
	b.canvas = svgo.New(&b.buf)
	b.width, b.height = width, height
	b.ended = false
	b.clipID, b.groups, b.stack = 0, 0, b.stack[:0]

	b.canvas.Start(width, height)
	return nil
}

// End closes any open groups and the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return errNotStarted
	}
	if b.ended {
		return nil
	}
	for ; b.groups > 0; b.groups-- {
		b.canvas.Gend()
	}
	b.stack = b.stack[:0]
	b.canvas.End()
	b.ended = true
	return nil
}

// Save remembers how many groups are open so Restore can close the clips
// added after it.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.groups)
}

// Restore closes the groups opened since the matching Save.
func (b *Backend) Restore() {
	if len(b.stack) == 0 || b.canvas == nil {
		return
	}
	depth := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	for ; b.groups > depth; b.groups-- {
		b.canvas.Gend()
	}
}

// ClipRect defines a clip path for r and opens a group that uses it.
func (b *Backend) ClipRect(r render.Rect) {
	if b.canvas == nil {
		return
	}
	b.clipID++
	id := fmt.Sprintf("clip%d", b.clipID)

	b.canvas.Def()
	b.canvas.ClipPath(`id="` + id + `"`)
	b.canvas.Path(rectPathData(r))
	b.canvas.ClipEnd()
	b.canvas.DefEnd()

	b.canvas.Group(`clip-path="url(#` + id + `)"`)
	b.groups++
}

// FillPath emits a filled <path>.
func (b *Backend) FillPath(path *gg.Path, paint render.Paint) {
	if b.canvas == nil || path == nil {
		return
	}
	rule := "nonzero"
	if paint.Rule == render.FillRuleEvenOdd {
		rule = "evenodd"
	}
	b.canvas.Path(PathData(path), fmt.Sprintf("fill:%s;fill-opacity:%s;fill-rule:%s;stroke:none",
		hexColor(paint.Color), num(paint.Color.A), rule))
}

// StrokePath emits a stroked, unfilled <path>.
func (b *Backend) StrokePath(path *gg.Path, stroke render.Stroke) {
	if b.canvas == nil || path == nil || stroke.Width <= 0 {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s;stroke-linecap:%s;stroke-linejoin:%s",
		hexColor(stroke.Color), num(stroke.Color.A), num(stroke.Width), lineCap(stroke.Cap), lineJoin(stroke.Join))
	if len(stroke.Dashes) > 0 {
		parts := make([]string, len(stroke.Dashes))
		for i, d := range stroke.Dashes {
			parts[i] = num(d)
		}
		fmt.Fprintf(&sb, ";stroke-dasharray:%s", strings.Join(parts, ","))
		if stroke.DashOffset != 0 {
			fmt.Fprintf(&sb, ";stroke-dashoffset:%s", num(stroke.DashOffset))
		}
	}
	b.canvas.Path(PathData(path), sb.String())
}

// DrawText emits a <text> element. Horizontal anchoring maps onto
// text-anchor; vertical anchoring shifts the baseline by the font size.
func (b *Backend) DrawText(s string, x, y float64, style render.TextStyle) {
	if b.canvas == nil {
		return
	}
	anchor := "start"
	switch {
	case style.AnchorX >= 0.75:
		anchor = "end"
	case style.AnchorX >= 0.25:
		anchor = "middle"
	}
	size := style.Size
	if size <= 0 {
		size = 10
	}
	// Cap height is roughly 0.72 em for sans-serif faces.
	baseline := y + style.AnchorY*size*0.72
	// Written directly: svgo's Text only takes integer coordinates.
	w := b.canvas.Writer
	fmt.Fprintf(w, `<text x="%s" y="%s" style="font-family:sans-serif;font-size:%spx;fill:%s;fill-opacity:%s;text-anchor:%s">`,
		num(x), num(baseline), num(size), hexColor(style.Color), num(style.Color.A), anchor)
	_ = xml.EscapeText(w, []byte(s))
	fmt.Fprintln(w, `</text>`)
}

// WriteTo writes the document. Call after End.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, errNotStarted
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the document to path. Call after End.
func (b *Backend) SaveToFile(path string) error {
	if !b.ended {
		return errNotStarted
	}
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}

// Bytes returns the finished document.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// PathData converts a gg path to SVG path data ("M x y L x y ... Z").
func PathData(path *gg.Path) string {
	var sb strings.Builder
	path.Iterate(func(verb gg.PathVerb, c []float64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch verb {
		case gg.MoveTo:
			sb.WriteString("M" + coords(c))
		case gg.LineTo:
			sb.WriteString("L" + coords(c))
		case gg.QuadTo:
			sb.WriteString("Q" + coords(c[:2]) + " " + coords(c[2:]))
		case gg.CubicTo:
			sb.WriteString("C" + coords(c[:2]) + " " + coords(c[2:4]) + " " + coords(c[4:]))
		case gg.Close:
			sb.WriteString("Z")
		}
	})
	return sb.String()
}

func rectPathData(r render.Rect) string {
	return PathData(r.Path())
}

// coords formats an (x, y) pair.
func coords(c []float64) string {
	return num(c[0]) + "," + num(c[1])
}

// num formats v with at most three decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func hexColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func lineCap(c render.LineCap) string {
	switch c {
	case render.LineCapRound:
		return "round"
	case render.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

func lineJoin(j render.LineJoin) string {
	switch j {
	case render.LineJoinRound:
		return "round"
	case render.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}
