package show

import (
	"image/png"
	"os"
	"testing"

	plot "github.com/gogpu/gg-plot"
)

func TestRenderTemp(t *testing.T) {
	fig := plot.NewFigure(plot.WithSize(2, 1), plot.WithDPI(40))

	path, cleanup, err := renderTemp(fig)
	if err != nil {
		t.Fatalf("renderTemp: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(f)
	f.Close()
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Errorf("image size = %dx%d, want 80x40", b.Dx(), b.Dy())
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temporary file still present after cleanup: %v", err)
	}
}
