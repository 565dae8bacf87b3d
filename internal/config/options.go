package config

import (
	"golang.org/x/text/language"

	plot "github.com/gogpu/gg-plot"
)

// FigureOptions converts the [figure] section. Call Validate first; values
// that do not parse are skipped.
func (c Config) FigureOptions() []plot.FigureOption {
	opts := []plot.FigureOption{
		plot.WithSize(c.Figure.Width, c.Figure.Height),
		plot.WithDPI(c.Figure.DPI),
	}
	if col, err := plot.ParseColor(c.Figure.FaceColor); err == nil {
		opts = append(opts, plot.WithBackground(col))
	}
	if tag, err := language.Parse(c.Figure.Locale); err == nil {
		opts = append(opts, plot.WithLocale(tag))
	}
	return opts
}

// PatchOptions converts the [patch] section.
func (c Config) PatchOptions() []plot.PatchOption {
	var opts []plot.PatchOption
	if col, err := plot.ParseColor(c.Patch.FaceColor); err == nil {
		opts = append(opts, plot.WithFaceColor(col))
	}
	if col, err := plot.ParseColor(c.Patch.EdgeColor); err == nil {
		opts = append(opts, plot.WithEdgeColor(col))
	}
	if c.Patch.Alpha != nil {
		opts = append(opts, plot.WithAlpha(*c.Patch.Alpha))
	}
	if ls, err := plot.ParseLineStyle(c.Patch.LineStyle); err == nil {
		opts = append(opts, plot.WithLineStyle(ls))
	}
	return append(opts, plot.WithLineWidth(c.Patch.LineWidth))
}
