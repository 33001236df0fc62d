package rvg

import "github.com/probsys/librvg/bitrepr"

const dblSize = 64

// cdf64Interval computes cdf_l = cdf(pred(b0^m)) and cdf_r = cdf(b1^m),
// where b is a lex prefix with l active bits (0 <= l <= 64) identifying
// the block of doubles whose lex index begins with b, and m = 64 - l.
func cdf64Interval(cdf CDF, b uint64, l uint) (cdfL, cdfR float32) {
	if l == 0 {
		return 0, 1
	}
	m := dblSize - l
	bLexR := (b << m) + (uint64(1) << m) - 1
	cdfR = cdf(bitrepr.LexToDouble(bLexR))
	if b > 0 {
		bLexL := (b << m) - 1
		cdfL = cdf(bitrepr.LexToDouble(bLexL))
	} else {
		cdfL = 0
	}
	return cdfL, cdfR
}

// cdf64IntervalExt is the DDF-valued analogue of cdf64Interval.
func cdf64IntervalExt(ddf DDF, b uint64, l uint) (lo, hi DDFVal) {
	if l == 0 {
		return DDFVal{D: false, Q: 0}, DDFVal{D: true, Q: 0}
	}
	m := dblSize - l
	bLexR := (b << m) + (uint64(1) << m) - 1
	hi = ddf(bitrepr.LexToDouble(bLexR))
	if b > 0 {
		bLexL := (b << m) - 1
		lo = ddf(bitrepr.LexToDouble(bLexL))
	} else {
		lo = DDFVal{D: false, Q: 0}
	}
	return lo, hi
}
