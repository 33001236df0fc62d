package rvg

import "math"

// WrapCDF adapts a real-valued CDF over doubles into the standard CDF
// convention used throughout this package: cdf(NaN) = 1.
func WrapCDF(f func(x float64) float64) CDF {
	return func(x float64) float32 {
		if math.IsNaN(x) {
			return 1
		}
		return float32(f(x))
	}
}

// WrapSF adapts a real-valued survival function over doubles into the
// standard SF convention: sf(NaN) = 0.
func WrapSF(f func(x float64) float64) SF {
	return func(x float64) float32 {
		if math.IsNaN(x) {
			return 0
		}
		return float32(f(x))
	}
}

// WrapCDFUintP adapts a CDF for a distribution supported on the
// non-negative integers (and representable as a uint64): NaN maps to 1,
// any negative input (including -0.0) maps to 0, and any input beyond
// the uint64 range maps to 1.
func WrapCDFUintP(f func(x float64) float64) CDF {
	return wrapCDFUint(f, 1)
}

// WrapCDFUintQ is the survival-side analogue of WrapCDFUintP: NaN maps
// to 0, negative inputs map to 1, and out-of-range inputs map to 0.
func WrapCDFUintQ(f func(x float64) float64) SF {
	return wrapCDFUint(f, 0)
}

func wrapCDFUint(f func(x float64) float64, nanx float32) func(x float64) float32 {
	return func(x float64) float32 {
		switch {
		case math.IsNaN(x):
			return nanx
		case math.Signbit(x):
			return 1 - nanx
		case x >= math.MaxUint64: // float64(MaxUint64) is 2^64, the first value past the range
			return nanx
		default:
			return float32(f(x))
		}
	}
}
