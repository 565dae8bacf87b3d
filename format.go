package plot

import "fmt"

// Format is the parsed form of a short line format string such as "k:".
type Format struct {
	Color     Color
	ColorSet  bool
	LineStyle LineStyle
}

// ParseFormat parses a format string made of an optional line style
// ("-", "--", "-.", ":") and an optional color (one of bgrcmykw or C0..C9)
// in either order. An empty string yields a solid line with no color set.
// Markers are not supported.
func ParseFormat(s string) (Format, error) {
	f := Format{LineStyle: LineSolid}
	styleSet := false

	for i := 0; i < len(s); {
		rest := s[i:]
		switch {
		case len(rest) >= 2 && (rest[:2] == "--" || rest[:2] == "-."):
			if styleSet {
				return Format{}, fmt.Errorf("%w: %q has two line styles", ErrUnknownFormat, s)
			}
			f.LineStyle, _ = ParseLineStyle(rest[:2])
			styleSet = true
			i += 2
		case rest[0] == '-' || rest[0] == ':':
			if styleSet {
				return Format{}, fmt.Errorf("%w: %q has two line styles", ErrUnknownFormat, s)
			}
			f.LineStyle, _ = ParseLineStyle(rest[:1])
			styleSet = true
			i++
		case rest[0] == 'C' && len(rest) >= 2 && rest[1] >= '0' && rest[1] <= '9':
			if f.ColorSet {
				return Format{}, fmt.Errorf("%w: %q has two colors", ErrUnknownFormat, s)
			}
			f.Color = MustColor(rest[:2])
			f.ColorSet = true
			i += 2
		default:
			c, ok := baseColors[rest[:1]]
			if !ok {
				return Format{}, fmt.Errorf("%w: %q at %q", ErrUnknownFormat, s, rest[:1])
			}
			if f.ColorSet {
				return Format{}, fmt.Errorf("%w: %q has two colors", ErrUnknownFormat, s)
			}
			f.Color = ColorOf(c)
			f.ColorSet = true
			i++
		}
	}
	return f, nil
}
