// Package rvg is an exact random variate generator: given a
// user-supplied cumulative distribution function over the IEEE-754
// double-precision line, it draws samples whose distribution is
// mathematically identical to the distribution induced by rounding an
// idealized real-valued variate to the nearest representable double.
//
// Samples are produced by a bit-by-bit lexicographic interval-refinement
// walk over the 64-bit total order on doubles (GenerateOpt), consuming
// the minimum expected number of random bits per draw. A slower
// arbitrary-precision reference path (GenerateCBS) exists purely to
// cross-check GenerateOpt in tests: the two must agree bit-for-bit given
// the same bit stream.
package rvg

import "github.com/probsys/librvg/arith"

// CDF returns P(X <= x) for some distribution over the doubles. By
// convention cdf(NaN) = 1 and cdf is monotone non-decreasing over the
// lex order of its finite inputs.
type CDF func(x float64) float32

// SF returns P(X > x), the survival function. By convention sf(NaN) = 0.
type SF func(x float64) float32

// DDFVal is one probability represented on whichever side of the median
// avoids catastrophic cancellation: D=false means Q is a CDF-side tail
// probability in [0, 0.5], D=true means Q is a survival-side tail
// probability in [0, 0.5), and the represented probability is Q when
// D is false or 1-Q when D is true.
type DDFVal struct {
	D bool
	Q float32
}

// Valid reports whether v is a legal DDF value.
func (v DDFVal) Valid() bool { return arith.CheckDDFVal(v.D, v.Q) }

// LTE is a total order on DDF values consistent with the probability
// each one represents.
func (v DDFVal) LTE(other DDFVal) bool {
	return arith.CompareLTEExt(v.D, v.Q, other.D, other.Q)
}

// DDF is a dual distribution function produced from a (CDF, SF) pair by
// NewDDF: it returns, for any x, whichever of cdf(x) or sf(x) stays away
// from 1 near the median, avoiding the cancellation that comparing two
// nearly-1 CDF values would incur.
type DDF func(x float64) DDFVal
