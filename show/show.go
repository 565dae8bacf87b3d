// Package show opens a window displaying a rendered figure.
//
// Escape closes the window and F11 toggles fullscreen.
package show

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonutz/prototype/draw"

	plot "github.com/gogpu/gg-plot"
)

// Figure renders fig to a temporary PNG and shows it until the window is
// closed.
func Figure(fig *plot.Figure, title string) error {
	path, cleanup, err := renderTemp(fig)
	if err != nil {
		return err
	}
	defer cleanup()

	w, h := fig.PixelSize()
	return Image(title, path, w, h)
}

// Image shows the image file at path in a window of the given size.
func Image(title, path string, width, height int) error {
	var (
		fullscreen bool
		drawErr    error
	)
	err := draw.RunWindow(title, width, height, func(window draw.Window) {
		if window.WasKeyPressed(draw.KeyEscape) {
			window.Close()
			return
		}
		if window.WasKeyPressed(draw.KeyF11) {
			fullscreen = !fullscreen
		}
		window.SetFullscreen(fullscreen)

		window.FillRect(0, 0, width, height, draw.White)
		if err := window.DrawImageFile(path, 0, 0); err != nil {
			drawErr = err
			window.Close()
		}
	})
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}
	if drawErr != nil {
		return fmt.Errorf("show: draw %s: %w", path, drawErr)
	}
	return nil
}

func renderTemp(fig *plot.Figure) (string, func(), error) {
	dir, err := os.MkdirTemp("", "gg-plot-show-")
	if err != nil {
		return "", nil, fmt.Errorf("show: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	path := filepath.Join(dir, "figure.png")
	if err := fig.Save(path); err != nil {
		cleanup()
		return "", nil, err
	}
	plot.Logger().Debug("show: figure rendered", "path", path)
	return path, cleanup, nil
}
