package plot

import "golang.org/x/text/language"

// FigureOption configures a Figure during creation.
//
// Example:
//
//	// 6.4x4.8 inches at 100 dpi
//	fig := plot.NewFigure()
//
//	// Square figure for print
//	fig := plot.NewFigure(plot.WithSize(5, 5), plot.WithDPI(300))
type FigureOption func(*figureOptions)

type figureOptions struct {
	width, height float64 // inches
	dpi           float64
	facecolor     Color
	locale        language.Tag
}

// Figure defaults.
const (
	DefaultFigureWidth  = 6.4
	DefaultFigureHeight = 4.8
	DefaultDPI          = 100.0
)

func defaultFigureOptions() figureOptions {
	return figureOptions{
		width:     DefaultFigureWidth,
		height:    DefaultFigureHeight,
		dpi:       DefaultDPI,
		facecolor: MustColor("white"),
		locale:    language.English,
	}
}

// WithSize sets the figure size in inches. Non-positive values are ignored.
func WithSize(width, height float64) FigureOption {
	return func(o *figureOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithDPI sets the resolution in pixels per inch. Non-positive values are
// ignored.
func WithDPI(dpi float64) FigureOption {
	return func(o *figureOptions) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithBackground sets the figure background color.
func WithBackground(c Color) FigureOption {
	return func(o *figureOptions) {
		o.facecolor = c
	}
}

// WithLocale selects the number formatting conventions of tick labels.
//
//	fig := plot.NewFigure(plot.WithLocale(language.German)) // "0,5"
func WithLocale(tag language.Tag) FigureOption {
	return func(o *figureOptions) {
		o.locale = tag
	}
}
