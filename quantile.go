package rvg

import (
	"math"

	"github.com/probsys/librvg/bitrepr"
)

// Quantile computes the exact q-quantile of cdf (q in [0,1]) by a binary
// search over the 64-bit lex index: the result is the lex-least double
// satisfying cdf(answer) >= q, so that cdf(answer) >= q >
// cdf(pred(answer)) under the lex ordering.
func Quantile(cdf CDF, q float32) float64 {
	var lo, hi uint64 = 0, ^uint64(0)
	for i := 0; i < dblSize; i++ {
		mid := lo + (hi-lo)/2
		if cdf(bitrepr.LexToDouble(mid)) >= q {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return bitrepr.LexToDouble(lo)
}

// QuantileSF is the survival-function analogue of Quantile: sf is
// non-increasing over the lex order, so the comparison is mirrored.
func QuantileSF(sf SF, q float32) float64 {
	var lo, hi uint64 = 0, ^uint64(0)
	for i := 0; i < dblSize; i++ {
		mid := lo + (hi-lo)/2
		if sf(bitrepr.LexToDouble(mid)) <= q {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return bitrepr.LexToDouble(lo)
}

// QuantileExt is the DDF-valued analogue of Quantile, using
// DDFVal.LTE (compare_lte_ext) in place of a plain float comparison.
func QuantileExt(ddf DDF, d bool, q float32) float64 {
	target := DDFVal{D: d, Q: q}
	var lo, hi uint64 = 0, ^uint64(0)
	for i := 0; i < dblSize; i++ {
		mid := lo + (hi-lo)/2
		if target.LTE(ddf(bitrepr.LexToDouble(mid))) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return bitrepr.LexToDouble(lo)
}

// BoundsQuantile returns the exact lower and upper support bounds of cdf
// by inverting at nextafter(0,1) and at 1.
func BoundsQuantile(cdf CDF) (xlo, xhi float64) {
	return Quantile(cdf, math.Nextafter32(0, 1)), Quantile(cdf, 1)
}

// BoundsQuantileSF is the survival-function analogue of BoundsQuantile.
func BoundsQuantileSF(sf SF) (xlo, xhi float64) {
	return QuantileSF(sf, 1), QuantileSF(sf, math.Nextafter32(0, 1))
}

// BoundsQuantileExt is the DDF-valued analogue of BoundsQuantile: the
// lower bound inverts at the smallest positive CDF-side target, the
// upper bound at the DDF value representing probability 1 exactly
// (D=true, Q=0).
func BoundsQuantileExt(ddf DDF) (xlo, xhi float64) {
	return QuantileExt(ddf, false, math.Nextafter32(0, 1)), QuantileExt(ddf, true, 0)
}
