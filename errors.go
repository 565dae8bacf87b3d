package plot

import "errors"

// Path construction errors.
var (
	// ErrCodeCount is returned when a path has a different number of codes
	// than vertices.
	ErrCodeCount = errors.New("plot: code count does not match vertex count")

	// ErrFirstCode is returned when a non-empty path does not start with MoveTo.
	ErrFirstCode = errors.New("plot: path must start with MoveTo")

	// ErrIncompleteCurve is returned when a Curve3 or Curve4 segment is
	// missing some of its points.
	ErrIncompleteCurve = errors.New("plot: incomplete curve segment")

	// ErrUnknownCode is returned for a code outside the known set.
	ErrUnknownCode = errors.New("plot: unknown path code")

	// ErrNonFinite is returned when a vertex coordinate is NaN or infinite.
	ErrNonFinite = errors.New("plot: non-finite vertex")

	// ErrEmptyPath is returned when a compound path would have no geometry.
	ErrEmptyPath = errors.New("plot: no polygons")

	// ErrRaggedPolys is returned when the polygons of a compound path do not
	// share the same number of sides.
	ErrRaggedPolys = errors.New("plot: polygons have different side counts")
)

// Style and axes errors.
var (
	// ErrUnknownColor is returned by ParseColor for unrecognized specs.
	ErrUnknownColor = errors.New("plot: unknown color")

	// ErrUnknownLineStyle is returned by ParseLineStyle for unrecognized specs.
	ErrUnknownLineStyle = errors.New("plot: unknown line style")

	// ErrUnknownFormat is returned by ParseFormat for unsupported characters.
	ErrUnknownFormat = errors.New("plot: unsupported format string")

	// ErrInvalidLimits is returned for non-finite view limits.
	ErrInvalidLimits = errors.New("plot: invalid view limits")

	// ErrLengthMismatch is returned when x and y data differ in length.
	ErrLengthMismatch = errors.New("plot: x and y must have the same length")

	// ErrBinCount is returned by Histogram when fewer than one bin is requested.
	ErrBinCount = errors.New("plot: bin count must be positive")

	// ErrUnknownExtension is returned by Figure.Save for unsupported file types.
	ErrUnknownExtension = errors.New("plot: unsupported output file extension")
)
