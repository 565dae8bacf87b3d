package plot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Color is an RGBA color that may also be "none", meaning the
// corresponding part of an artist is not painted at all.
type Color struct {
	gg.RGBA
	None bool
}

// NoColor is the "none" color.
var NoColor = Color{None: true}

// ColorOf wraps a gg color.
func ColorOf(c gg.RGBA) Color {
	return Color{RGBA: c}
}

// WithAlpha returns the color with its alpha channel replaced.
// A "none" color stays "none".
func (c Color) WithAlpha(a float64) Color {
	if c.None {
		return c
	}
	c.A = math.Max(0, math.Min(1, a))
	return c
}

// Visible reports whether painting with the color has any effect.
func (c Color) Visible() bool {
	return !c.None && c.A > 0
}

// String returns "none" or the color as #rrggbbaa.
func (c Color) String() string {
	if c.None {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// Hex returns the color as #rrggbb, without alpha.
func (c Color) Hex() string {
	if c.None {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Single-letter color codes.
var baseColors = map[string]gg.RGBA{
	"b": gg.RGB(0, 0, 1),
	"g": gg.RGB(0, 0.5, 0),
	"r": gg.RGB(1, 0, 0),
	"c": gg.RGB(0, 0.75, 0.75),
	"m": gg.RGB(0.75, 0, 0.75),
	"y": gg.RGB(0.75, 0.75, 0),
	"k": gg.RGB(0, 0, 0),
	"w": gg.RGB(1, 1, 1),
}

// Default color cycle, addressable as C0..C9.
var cycleColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"brown":     "#a52a2a",
	"pink":      "#ffc0cb",
	"gray":      "#808080",
	"grey":      "#808080",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"navy":      "#000080",
	"teal":      "#008080",
	"olive":     "#808000",
	"steelblue": "#4682b4",
	"skyblue":   "#87ceeb",
	"crimson":   "#dc143c",
	"gold":      "#ffd700",
}

// ParseColor parses a color specification:
//
//   - "none" (case-insensitive)
//   - single-letter codes: b g r c m y k w
//   - cycle colors C0 through C9
//   - basic color names such as "blue" or "steelblue"
//   - hex forms #rgb, #rgba, #rrggbb, #rrggbbaa
//   - a gray level written as a number in [0, 1], e.g. "0.75"
func ParseColor(s string) (Color, error) {
	spec := strings.TrimSpace(s)
	lower := strings.ToLower(spec)

	if lower == "none" {
		return NoColor, nil
	}
	if c, ok := baseColors[spec]; ok {
		return ColorOf(c), nil
	}
	if len(spec) == 2 && spec[0] == 'C' && spec[1] >= '0' && spec[1] <= '9' {
		return ColorOf(gg.Hex(cycleColors[spec[1]-'0'])), nil
	}
	if hex, ok := namedColors[lower]; ok {
		return ColorOf(gg.Hex(hex)), nil
	}
	if strings.HasPrefix(spec, "#") {
		if !validHex(spec[1:]) {
			return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		return ColorOf(gg.Hex(spec)), nil
	}
	if v, err := strconv.ParseFloat(spec, 64); err == nil {
		if v < 0 || v > 1 {
			return Color{}, fmt.Errorf("%w: gray level %q outside [0, 1]", ErrUnknownColor, s)
		}
		return ColorOf(gg.RGB(v, v, v)), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// MustColor is like ParseColor but panics on error.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func validHex(h string) bool {
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
