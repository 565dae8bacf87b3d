package plot

import (
	"fmt"
	"strings"
)

// LineStyle selects how a stroke is dashed.
type LineStyle int

const (
	// LineSolid is a continuous stroke.
	LineSolid LineStyle = iota
	// LineDashed is "--".
	LineDashed
	// LineDashDot is "-.".
	LineDashDot
	// LineDotted is ":".
	LineDotted
	// LineNone draws no stroke at all.
	LineNone
)

// ParseLineStyle accepts the long names (solid, dashed, dashdot, dotted,
// none) and the short forms "-", "--", "-.", ":". An empty string or a
// single space means none.
func ParseLineStyle(s string) (LineStyle, error) {
	switch strings.ToLower(s) {
	case "solid", "-":
		return LineSolid, nil
	case "dashed", "--":
		return LineDashed, nil
	case "dashdot", "-.":
		return LineDashDot, nil
	case "dotted", ":":
		return LineDotted, nil
	case "none", "", " ":
		return LineNone, nil
	}
	return LineSolid, fmt.Errorf("%w: %q", ErrUnknownLineStyle, s)
}

// String returns the long name.
func (ls LineStyle) String() string {
	switch ls {
	case LineSolid:
		return "solid"
	case LineDashed:
		return "dashed"
	case LineDashDot:
		return "dashdot"
	case LineDotted:
		return "dotted"
	case LineNone:
		return "none"
	default:
		return fmt.Sprintf("LineStyle(%d)", int(ls))
	}
}

// Dashes returns the on/off pattern for a stroke of the given width, in the
// same unit as width. Solid and none return nil.
// Patterns are expressed in multiples of the line width so thick lines get
// proportionally longer dashes.
func (ls LineStyle) Dashes(width float64) []float64 {
	var unit []float64
	switch ls {
	case LineDashed:
		unit = []float64{3.7, 1.6}
	case LineDashDot:
		unit = []float64{6.4, 1.6, 1, 1.6}
	case LineDotted:
		unit = []float64{1, 1.65}
	default:
		return nil
	}
	scale := max(width, 1)
	out := make([]float64, len(unit))
	for i, u := range unit {
		out[i] = u * scale
	}
	return out
}
