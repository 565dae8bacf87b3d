// Package termview renders quick terminal previews of plot data.
package termview

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentFg  = lipgloss.Color("#7C3AED")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	borderCol = lipgloss.Color("#243141")

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// DefaultBarWidth is the width of the longest bar in cells.
const DefaultBarWidth = 40

// Options tune a preview.
type Options struct {
	Title    string
	BarWidth int    // cells for the tallest bar; DefaultBarWidth if zero
	BarColor string // any lipgloss color; the accent color if empty
}

// Histogram renders counts as horizontal bars, one row per bin, labelled
// with the lower bin edge and the count.
func Histogram(counts []int, edges []float64, opts Options) (string, error) {
	if len(counts) == 0 {
		return "", errors.New("termview: no bins")
	}
	if len(edges) != len(counts)+1 {
		return "", fmt.Errorf("termview: %d edges for %d bins", len(edges), len(counts))
	}

	width := opts.BarWidth
	if width <= 0 {
		width = DefaultBarWidth
	}
	barStyle := lipgloss.NewStyle().Foreground(accentFg)
	if opts.BarColor != "" {
		barStyle = barStyle.Foreground(lipgloss.Color(opts.BarColor))
	}

	peak := max(slices.Max(counts), 1)
	decimals := labelDecimals(edges)
	labels := make([]string, len(counts))
	for i := range counts {
		labels[i] = fmt.Sprintf("%.*f", decimals, edges[i])
	}
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	label := lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Right)

	rows := make([]string, len(counts))
	for i, c := range counts {
		n := int(math.Round(float64(max(c, 0)) / float64(peak) * float64(width)))
		bar := barStyle.Render(strings.Repeat("█", n))
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(labels[i]), dimStyle.Render(" │"), bar, dimStyle.Render(fmt.Sprintf(" %d", c)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if opts.Title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(opts.Title), body)
	}
	return boxStyle.Render(body), nil
}

// labelDecimals picks enough decimals to tell adjacent edges apart.
func labelDecimals(edges []float64) int {
	if len(edges) < 2 {
		return 0
	}
	step := math.Abs(edges[1] - edges[0])
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 2
	}
	return int(min(max(0, math.Ceil(-math.Log10(step))+1), 6))
}
