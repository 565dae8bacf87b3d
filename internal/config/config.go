// Package config loads figure and patch styling from TOML files.
//
// A file only needs the keys it wants to change; everything else keeps the
// value from Default:
//
//	[figure]
//	dpi = 150.0
//
//	[patch]
//	facecolor = "C2"
//	alpha = 0.6
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	plot "github.com/gogpu/gg-plot"
)

// Config is the complete set of configurable values.
type Config struct {
	Figure Figure `toml:"figure"`
	Patch  Patch  `toml:"patch"`
}

// Figure configures the canvas.
type Figure struct {
	Width     float64 `toml:"width"`  // inches
	Height    float64 `toml:"height"` // inches
	DPI       float64 `toml:"dpi"`
	FaceColor string  `toml:"facecolor"`
	Locale    string  `toml:"locale"`
}

// Patch configures the style of the demo patches.
type Patch struct {
	FaceColor string   `toml:"facecolor"`
	EdgeColor string   `toml:"edgecolor"`
	Alpha     *float64 `toml:"alpha"`
	LineWidth float64  `toml:"linewidth"` // points
	LineStyle string   `toml:"linestyle"`
}

// Default returns the configuration used when no file is given. The patch
// section matches the histogram demo: translucent blue bars with black
// edges.
func Default() Config {
	alpha := 0.4
	return Config{
		Figure: Figure{
			Width:     plot.DefaultFigureWidth,
			Height:    plot.DefaultFigureHeight,
			DPI:       plot.DefaultDPI,
			FaceColor: "white",
			Locale:    "en",
		},
		Patch: Patch{
			FaceColor: "blue",
			EdgeColor: "black",
			Alpha:     &alpha,
			LineWidth: plot.DefaultPatchLineWidth,
			LineStyle: "solid",
		},
	}
}

// Load reads the file at path on top of Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of Default. Unknown keys are rejected so
// typos do not go unnoticed.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, errors.New(strict.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks that every value can be turned into a plot option.
func (c Config) Validate() error {
	var errs []error
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		errs = append(errs, fmt.Errorf("figure size %vx%v must be positive", c.Figure.Width, c.Figure.Height))
	}
	if c.Figure.DPI <= 0 {
		errs = append(errs, fmt.Errorf("figure dpi %v must be positive", c.Figure.DPI))
	}
	for _, spec := range []string{c.Figure.FaceColor, c.Patch.FaceColor, c.Patch.EdgeColor} {
		if _, err := plot.ParseColor(spec); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := plot.ParseLineStyle(c.Patch.LineStyle); err != nil {
		errs = append(errs, err)
	}
	if _, err := language.Parse(c.Figure.Locale); err != nil {
		errs = append(errs, fmt.Errorf("figure locale %q: %w", c.Figure.Locale, err))
	}
	if a := c.Patch.Alpha; a != nil && (*a < 0 || *a > 1) {
		errs = append(errs, fmt.Errorf("patch alpha %v outside [0, 1]", *a))
	}
	if c.Patch.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("patch linewidth %v must not be negative", c.Patch.LineWidth))
	}
	return errors.Join(errs...)
}
