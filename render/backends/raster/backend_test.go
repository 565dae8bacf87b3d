package raster

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-plot/render"
)

func TestBackendRegistration(t *testing.T) {
	if !render.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}
	for _, name := range []string{"a.png", "b.jpg", "c.JPEG"} {
		b, err := render.ForFile(name)
		if err != nil {
			t.Fatalf("ForFile(%q): %v", name, err)
		}
		if _, ok := b.(*Backend); !ok {
			t.Errorf("ForFile(%q) returned %T, want *raster.Backend", name, b)
		}
	}
}

func TestBackendLifecycle(t *testing.T) {
	b := NewBackend()
	if err := b.End(); err == nil {
		t.Error("End before Begin should fail")
	}
	if err := b.Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) should fail")
	}
	if err := b.Begin(120, 80); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if b.Width() != 120 || b.Height() != 80 {
		t.Errorf("size = %dx%d, want 120x80", b.Width(), b.Height())
	}
	if err := b.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	bounds := b.Image().Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 80 {
		t.Errorf("image bounds = %v, want 120x80", bounds)
	}
}

func TestBackendFillPath(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(100, 100); err != nil {
		t.Fatal(err)
	}
	b.FillPath(render.NewRect(10, 10, 50, 50).Path(), render.Paint{Color: gg.Red})
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	img := b.Image()
	r, g, bl, a := img.At(35, 35).RGBA()
	if r>>8 < 250 || g>>8 > 5 || bl>>8 > 5 || a>>8 < 250 {
		t.Errorf("center pixel = (%d,%d,%d,%d), want red", r>>8, g>>8, bl>>8, a>>8)
	}
	if _, _, _, a := img.At(80, 80).RGBA(); a != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", a)
	}
}

func TestBackendClipRect(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(100, 100); err != nil {
		t.Fatal(err)
	}
	b.Save()
	b.ClipRect(render.NewRect(0, 0, 50, 100))
	b.FillPath(render.NewRect(0, 0, 100, 100).Path(), render.Paint{Color: gg.Blue})
	b.Restore()
	if err := b.End(); err != nil {
		t.Fatal(err)
	}

	img := b.Image()
	if _, _, _, a := img.At(25, 50).RGBA(); a == 0 {
		t.Error("pixel inside clip was not painted")
	}
	if _, _, _, a := img.At(75, 50).RGBA(); a != 0 {
		t.Error("pixel outside clip was painted")
	}
}

func TestBackendStrokeDashed(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(100, 20); err != nil {
		t.Fatal(err)
	}
	p := gg.NewPath()
	p.MoveTo(0, 10)
	p.LineTo(100, 10)

	s := render.DefaultStroke()
	s.Width = 2
	s.Dashes = []float64{10, 10}
	b.StrokePath(p, s)

	s.Width = 0
	b.StrokePath(p, s) // zero width strokes are skipped

	if err := b.End(); err != nil {
		t.Fatal(err)
	}
}

func TestBackendDrawText(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(200, 50); err != nil {
		t.Fatal(err)
	}
	b.DrawText("0.5", 100, 25, render.TextStyle{Color: gg.Black, Size: 14, AnchorX: 0.5, AnchorY: 0.5})
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if len(b.faces) != 1 {
		t.Errorf("face cache has %d entries, want 1", len(b.faces))
	}

	painted := false
	img := b.Image()
	for x := 80; x < 120 && !painted; x++ {
		for y := 10; y < 40; y++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("text left no pixels around its anchor")
	}
}

func TestBackendOutput(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(30, 20); err != nil {
		t.Fatal(err)
	}
	if err := b.End(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, buffer has %d", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 30 {
		t.Errorf("decoded width = %d, want 30", img.Bounds().Dx())
	}

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.jpg"} {
		path := filepath.Join(dir, name)
		if err := b.SaveToFile(path); err != nil {
			t.Fatalf("SaveToFile(%s): %v", name, err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s not written", name)
		}
	}
}
