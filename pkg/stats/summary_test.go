package stats

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.N != 8 || s.Mean != 5 || s.Min != 2 || s.Max != 9 {
		t.Errorf("Describe = %+v", s)
	}
	// sample standard deviation
	if want := math.Sqrt(32.0 / 7); math.Abs(s.Std-want) > 1e-12 {
		t.Errorf("Std = %v, want %v", s.Std, want)
	}

	if got := Describe(nil); got != (Summary{}) {
		t.Errorf("Describe(nil) = %+v, want zero", got)
	}
	if got := Describe([]float64{3}); got.Std != 0 || got.Mean != 3 {
		t.Errorf("Describe single = %+v", got)
	}
}

func TestCorrelation(t *testing.T) {
	for _, tc := range []struct {
		name string
		x, y []float64
		want float64
	}{
		{"Positive", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"Negative", []float64{1, 2, 3}, []float64{3, 2, 1}, -1},
		{"ConstantY", []float64{1, 2, 3}, []float64{5, 5, 5}, 0},
		{"Mismatched", []float64{1, 2}, []float64{1}, 0},
		{"TooShort", []float64{1}, []float64{1}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Correlation(tc.x, tc.y); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Correlation = %v, want %v", got, tc.want)
			}
		})
	}
}
