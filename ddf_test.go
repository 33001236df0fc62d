package rvg

import (
	"math"
	"testing"
)

func TestNewDDFBuildsValidDualFunction(t *testing.T) {
	cdf := WrapCDF(func(x float64) float64 {
		switch {
		case x <= 0:
			return 0
		case x >= 1:
			return 1
		default:
			return x
		}
	})
	sf := WrapSF(func(x float64) float64 {
		switch {
		case x <= 0:
			return 1
		case x >= 1:
			return 0
		default:
			return 1 - x
		}
	})
	ddf, err := NewDDF(cdf, sf)
	if err != nil {
		t.Fatalf("NewDDF returned an error: %v", err)
	}
	for _, x := range []float64{-1, 0, 0.1, 0.4999, 0.5, 0.5001, 0.9, 1, 2} {
		v := ddf(x)
		if !v.Valid() {
			t.Errorf("ddf(%v) = %+v is not a valid DDF value", x, v)
		}
		var prob float64
		if v.D {
			prob = 1 - float64(v.Q)
		} else {
			prob = float64(v.Q)
		}
		want := float64(cdf(x))
		if math.Abs(prob-want) > 1e-6 {
			t.Errorf("ddf(%v) represents probability %v, want close to cdf value %v", x, prob, want)
		}
	}
}

func TestDDFValOrderingMatchesProbability(t *testing.T) {
	lower := DDFVal{D: false, Q: 0.2}
	upper := DDFVal{D: true, Q: 0.2}
	if !lower.LTE(upper) {
		t.Error("a CDF-side value must order at or below any SF-side value")
	}
	if upper.LTE(lower) && !(lower.D == upper.D && lower.Q == upper.Q) {
		t.Error("an SF-side value must not order below a CDF-side value unless equal")
	}
}

func TestWrapCDFUintPBoundaries(t *testing.T) {
	cdf := WrapCDFUintP(func(x float64) float64 {
		if x < 3 {
			return 0.4
		}
		return 1
	})
	if got := cdf(math.NaN()); got != 1 {
		t.Errorf("cdf(NaN) = %v, want 1", got)
	}
	if got := cdf(-1); got != 0 {
		t.Errorf("cdf(-1) = %v, want 0", got)
	}
	if got := cdf(math.Copysign(0, -1)); got != 0 {
		t.Errorf("cdf(-0.0) = %v, want 0", got)
	}
	if got := cdf(math.MaxUint64 + 1024.0); got != 1 {
		t.Errorf("cdf(beyond uint64 range) = %v, want 1", got)
	}
	if got := cdf(2); got != 0.4 {
		t.Errorf("cdf(2) = %v, want 0.4", got)
	}
}
