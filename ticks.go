package plot

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxTickIntervals bounds the number of intervals between major ticks.
const maxTickIntervals = 8

// niceSteps are the step mantissas tried in order of preference.
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// TickLocations returns evenly spaced "nice" tick values inside [lo, hi]
// (in either order) together with the step between them. Steps are 1, 2,
// 2.5 or 5 times a power of ten, with at most maxIntervals intervals.
func TickLocations(lo, hi float64, maxIntervals int) (ticks []float64, step float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo
	if !isFinite(span) || span <= 0 || maxIntervals < 1 {
		return nil, 0
	}

	raw := span / float64(maxIntervals)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step = 10 * mag
	for _, m := range niceSteps {
		if m*mag >= raw*(1-1e-9) {
			step = m * mag
			break
		}
	}

	first := math.Ceil(lo/step-1e-9) * step
	eps := step * 1e-9
	for i := 0; ; i++ {
		t := first + float64(i)*step
		if t > hi+eps {
			break
		}
		if math.Abs(t) < eps {
			t = 0
		}
		ticks = append(ticks, t)
	}
	return ticks, step
}

// TickFormatter formats tick labels for a locale.
type TickFormatter struct {
	printer *message.Printer
}

// NewTickFormatter returns a formatter using the number conventions of tag
// (decimal separator, digit grouping).
func NewTickFormatter(tag language.Tag) *TickFormatter {
	return &TickFormatter{printer: message.NewPrinter(tag)}
}

// Format renders v with just enough decimals to tell ticks step apart.
func (f *TickFormatter) Format(v, step float64) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(tickDecimals(step))))
}

// tickDecimals returns the number of decimals needed to print multiples of
// step exactly, e.g. 0 for 5, 1 for 0.5, 2 for 0.25.
func tickDecimals(step float64) int {
	if step <= 0 || !isFinite(step) {
		return 0
	}
	for d := 0; d < 12; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-6*scaled {
			return d
		}
	}
	return 12
}
