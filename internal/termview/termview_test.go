package termview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestHistogramBars(t *testing.T) {
	out, err := Histogram([]int{2, 5, 3}, []float64{0, 1, 2, 3}, Options{BarWidth: 10, Title: "counts"})
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}

	if !strings.Contains(out, "counts") {
		t.Error("title missing from preview")
	}

	var bars []int
	for _, line := range strings.Split(out, "\n") {
		if n := strings.Count(line, "█"); n > 0 {
			bars = append(bars, n)
		}
	}
	want := []int{4, 10, 6}
	if len(bars) != len(want) {
		t.Fatalf("found %d bar rows, want %d:\n%s", len(bars), len(want), out)
	}
	for i := range want {
		if bars[i] != want[i] {
			t.Errorf("row %d has %d cells, want %d", i, bars[i], want[i])
		}
	}
}

func TestHistogramAllZero(t *testing.T) {
	out, err := Histogram([]int{0, 0}, []float64{0, 0.5, 1}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "█") {
		t.Error("zero counts produced bars")
	}
	if lipgloss.Height(out) != 2+2 {
		t.Errorf("height = %d, want 4 (two rows plus border)", lipgloss.Height(out))
	}
}

func TestHistogramErrors(t *testing.T) {
	if _, err := Histogram(nil, []float64{0}, Options{}); err == nil {
		t.Error("empty counts accepted")
	}
	if _, err := Histogram([]int{1, 2}, []float64{0, 1}, Options{}); err == nil {
		t.Error("mismatched edges accepted")
	}
}

func TestLabelDecimals(t *testing.T) {
	tests := []struct {
		edges []float64
		want  int
	}{
		{[]float64{0, 10}, 0},
		{[]float64{0, 1}, 1},
		{[]float64{0, 0.25}, 2},
		{[]float64{-3.2, -3.07}, 2},
		{[]float64{0, 0}, 2},
		{[]float64{1}, 0},
	}
	for _, tt := range tests {
		if got := labelDecimals(tt.edges); got != tt.want {
			t.Errorf("labelDecimals(%v) = %d, want %d", tt.edges, got, tt.want)
		}
	}
}
