package svg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-plot/render"
)

func TestBackendRegistration(t *testing.T) {
	b, err := render.ForFile("figure.svg")
	if err != nil {
		t.Fatalf("ForFile: %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("ForFile returned %T, want *svg.Backend", b)
	}
}

func TestPathData(t *testing.T) {
	p := gg.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10.5, 0)
	p.QuadraticTo(20, 5, 10, 10.1234)
	p.CubicTo(1, 2, 3, 4, 5, 6)
	p.Close()

	got := PathData(p)
	want := "M0,0 L10.5,0 Q20,5 10,10.123 C1,2 3,4 5,6 Z"
	if got != want {
		t.Errorf("PathData = %q, want %q", got, want)
	}
}

func TestBackendDocument(t *testing.T) {
	b := New()
	if err := b.Begin(200, 100); err != nil {
		t.Fatal(err)
	}

	b.FillPath(render.NewRect(0, 0, 200, 100).Path(), render.Paint{Color: gg.White})

	b.Save()
	b.ClipRect(render.NewRect(10, 10, 100, 50))
	b.FillPath(render.NewRect(20, 20, 10, 10).Path(), render.Paint{Color: gg.RGBA2(0, 0, 1, 0.4), Rule: render.FillRuleEvenOdd})
	stroke := render.DefaultStroke()
	stroke.Dashes = []float64{1, 1.65}
	b.StrokePath(render.NewRect(20, 20, 10, 10).Path(), stroke)
	b.Restore()

	b.DrawText("1.0", 50, 90, render.TextStyle{Color: gg.Black, Size: 12, AnchorX: 0.5, AnchorY: 1})

	if err := b.End(); err != nil {
		t.Fatal(err)
	}

	doc := string(b.Bytes())
	checks := []string{
		`<svg`,
		`width="200"`,
		`<clipPath id="clip1"`,
		`clip-path="url(#clip1)"`,
		`fill:#0000ff;fill-opacity:0.4;fill-rule:evenodd`,
		`stroke-dasharray:1,1.65`,
		`text-anchor:middle`,
		`<text x="50" y="98.64"`,
		`>1.0</text>`,
		`</svg>`,
	}
	for _, c := range checks {
		if !strings.Contains(doc, c) {
			t.Errorf("document missing %q\n%s", c, doc)
		}
	}
	if got := strings.Count(doc, "<g "); got != strings.Count(doc, "</g>") {
		t.Errorf("unbalanced groups: %d opened, %d closed", got, strings.Count(doc, "</g>"))
	}
}

func TestBackendEndClosesGroups(t *testing.T) {
	b := New()
	if err := b.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	b.ClipRect(render.NewRect(0, 0, 5, 5))
	b.ClipRect(render.NewRect(0, 0, 4, 4))
	if err := b.End(); err != nil {
		t.Fatal(err)
	}
	doc := string(b.Bytes())
	if strings.Count(doc, "</g>") != 2 {
		t.Errorf("End should close both clip groups:\n%s", doc)
	}
}

func TestBackendOutput(t *testing.T) {
	b := New()
	if _, err := b.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("WriteTo before End should fail")
	}
	if err := b.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	if err := b.End(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil || n != int64(buf.Len()) {
		t.Fatalf("WriteTo = %d, %v", n, err)
	}

	path := filepath.Join(t.TempDir(), "out.svg")
	if err := b.SaveToFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Error("file contents differ from WriteTo output")
	}
}

func TestDrawTextFractionalPosition(t *testing.T) {
	b := New()
	if err := b.Begin(100, 100); err != nil {
		t.Fatal(err)
	}
	b.DrawText("a<b", 12.345, 40.5, render.TextStyle{Color: gg.Black, Size: 10})
	if err := b.End(); err != nil {
		t.Fatal(err)
	}

	doc := string(b.Bytes())
	for _, want := range []string{`x="12.345"`, `y="40.5"`, `text-anchor:start`, `>a&lt;b</text>`} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q\n%s", want, doc)
		}
	}
}
