package plot

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestHistogram(t *testing.T) {
	tests := []struct {
		name       string
		data       []float64
		bins       int
		wantCounts []int
		wantEdges  []float64
	}{
		{
			name:       "simple",
			data:       []float64{0, 0.5, 1, 1.5, 2, 2.5, 3},
			bins:       3,
			wantCounts: []int{2, 2, 3},
			wantEdges:  []float64{0, 1, 2, 3},
		},
		{
			name:       "max lands in last bin",
			data:       []float64{0, 10},
			bins:       5,
			wantCounts: []int{1, 0, 0, 0, 1},
			wantEdges:  []float64{0, 2, 4, 6, 8, 10},
		},
		{
			name:       "empty data",
			data:       nil,
			bins:       2,
			wantCounts: []int{0, 0},
			wantEdges:  []float64{0, 0.5, 1},
		},
		{
			name:       "single value",
			data:       []float64{3, 3, 3},
			bins:       1,
			wantCounts: []int{3},
			wantEdges:  []float64{2.5, 3.5},
		},
		{
			name:       "non-finite ignored",
			data:       []float64{0, math.NaN(), 1, math.Inf(1)},
			bins:       2,
			wantCounts: []int{1, 1},
			wantEdges:  []float64{0, 0.5, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts, edges, err := Histogram(tt.data, tt.bins)
			if err != nil {
				t.Fatalf("Histogram: %v", err)
			}
			if !slices.Equal(counts, tt.wantCounts) {
				t.Errorf("counts = %v, want %v", counts, tt.wantCounts)
			}
			if len(edges) != len(tt.wantEdges) {
				t.Fatalf("edges = %v, want %v", edges, tt.wantEdges)
			}
			for i := range edges {
				if math.Abs(edges[i]-tt.wantEdges[i]) > 1e-12 {
					t.Errorf("edge %d = %v, want %v", i, edges[i], tt.wantEdges[i])
				}
			}
		})
	}
}

func TestHistogramConservesCount(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	data := make([]float64, 1000)
	for i := range data {
		data[i] = r.NormFloat64()
	}

	counts, edges, err := Histogram(data, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 50 || len(edges) != 51 {
		t.Fatalf("len(counts), len(edges) = %d, %d; want 50, 51", len(counts), len(edges))
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != len(data) {
		t.Errorf("sum(counts) = %d, want %d", total, len(data))
	}
	if edges[0] != slices.Min(data) || edges[50] != slices.Max(data) {
		t.Errorf("edges span [%v, %v], want [%v, %v]", edges[0], edges[50], slices.Min(data), slices.Max(data))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			t.Fatalf("edges not increasing at %d: %v <= %v", i, edges[i], edges[i-1])
		}
	}
}

func TestHistogramBinCount(t *testing.T) {
	for _, bins := range []int{0, -3} {
		if _, _, err := Histogram([]float64{1, 2}, bins); !errors.Is(err, ErrBinCount) {
			t.Errorf("Histogram(bins=%d) error = %v, want ErrBinCount", bins, err)
		}
	}
}
