package discrete

import (
	"math"
	"testing"
)

func TestCDFTableLookup(t *testing.T) {
	p := []float32{0.2, 0.5, 0.9, 1.0}
	cases := []struct {
		x    float64
		want float32
	}{
		{-1, 0},
		{-0.5, 0},
		{0, 0.2},
		{0.5, 0.2},
		{0.999, 0.2},
		{1, 0.5},
		{2, 0.9},
		{3, 1.0},
		{3.5, 1.0},
		{100, 1.0},
	}
	for _, c := range cases {
		if got := CDF(c.x, p); got != c.want {
			t.Errorf("CDF(%v, p) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestCDFNegativeZero(t *testing.T) {
	p := []float32{0.5, 1.0}
	if got := CDF(math.Copysign(0, -1), p); got != 0 {
		t.Errorf("CDF(-0.0, p) = %v, want 0", got)
	}
	if got := CDF(0, p); got != 0.5 {
		t.Errorf("CDF(0, p) = %v, want 0.5", got)
	}
}

func TestCDFNaN(t *testing.T) {
	p := []float32{0.5, 1.0}
	if got := CDF(math.NaN(), p); got != 1 {
		t.Errorf("CDF(NaN, p) = %v, want 1", got)
	}
}

func TestCDFEmptyTable(t *testing.T) {
	if got := CDF(0, nil); got != 1 {
		t.Errorf("CDF(0, nil) = %v, want 1", got)
	}
}
