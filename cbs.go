package rvg

import (
	"math/big"

	"github.com/probsys/librvg/bernoulli"
	"github.com/probsys/librvg/bitrepr"
	"github.com/probsys/librvg/flip"
)

// ratOf returns the exact rational value of a finite float64. Converting
// through SetFloat64 is lossless: every finite float64 is itself a
// dyadic rational, which *big.Rat represents exactly.
func ratOf(x float64) *big.Rat { return new(big.Rat).SetFloat64(x) }

// ratOfDDF is the DDF-valued analogue of ratOf: the represented
// probability is q when d is false, or 1-q when d is true.
func ratOfDDF(v DDFVal) *big.Rat {
	r := ratOf(float64(v.Q))
	if v.D {
		r = new(big.Rat).Sub(big.NewRat(1, 1), r)
	}
	return r
}

// GenerateCBS is the conditional-bit-sampling reference generator: the
// same trie descent as GenerateOpt, but with probability arithmetic
// carried out in arbitrary-precision rationals and the left/right choice
// realized by the rational Bernoulli(k/n) sampler. It is slower than
// GenerateOpt but simpler to trust, and serves as the oracle in property
// tests: given an identical bit stream and CDF, it must return the
// identical double.
func GenerateCBS(cdf CDF, src *flip.State) float64 {
	var b uint64
	cdfL, cdfR := 0.0, 1.0
	w := big.NewRat(1, 1)

	for l := 0; l < dblSize; l++ {
		m := dblSize - (l + 1)
		bLexMid := (b << uint(m+1)) + (uint64(1) << uint(m)) - 1
		cdfM := float64(cdf(bitrepr.LexToDouble(bLexMid)))

		bLex0 := b << 1
		bLex1 := bLex0 | 1

		debugCheckInterval(cdf, b, l, float32(cdfL), float32(cdfR))

		if cdfM == cdfR {
			b, cdfR = bLex0, cdfM
			continue
		}
		if cdfM == cdfL {
			b, cdfL = bLex1, cdfM
			continue
		}

		w1 := new(big.Rat).Sub(ratOf(cdfR), ratOf(cdfM))
		r := new(big.Rat).Quo(w1, w)
		z := bernoulli.BernoulliBig(r.Num(), r.Denom(), src)
		if !z {
			w0 := new(big.Rat).Sub(ratOf(cdfM), ratOf(cdfL))
			b, cdfR, w = bLex0, cdfM, w0
		} else {
			b, cdfL, w = bLex1, cdfM, w1
		}
	}
	return bitrepr.LexToDouble(b)
}

// GenerateCBSExt is the DDF-valued analogue of GenerateCBS.
func GenerateCBSExt(ddf DDF, src *flip.State) float64 {
	var b uint64
	lo := DDFVal{D: false, Q: 0}
	hi := DDFVal{D: true, Q: 0}
	w := big.NewRat(1, 1)

	for l := 0; l < dblSize; l++ {
		m := dblSize - (l + 1)
		bLexMid := (b << uint(m+1)) + (uint64(1) << uint(m)) - 1
		mid := ddf(bitrepr.LexToDouble(bLexMid))

		bLex0 := b << 1
		bLex1 := bLex0 | 1

		debugCheckIntervalExt(ddf, b, l, lo, hi)

		if mid == hi {
			b, hi = bLex0, mid
			continue
		}
		if mid == lo {
			b, lo = bLex1, mid
			continue
		}

		w1 := new(big.Rat).Sub(ratOfDDF(hi), ratOfDDF(mid))
		r := new(big.Rat).Quo(w1, w)
		z := bernoulli.BernoulliBig(r.Num(), r.Denom(), src)
		if !z {
			w0 := new(big.Rat).Sub(ratOfDDF(mid), ratOfDDF(lo))
			b, hi, w = bLex0, mid, w0
		} else {
			b, lo, w = bLex1, mid, w1
		}
	}
	return bitrepr.LexToDouble(b)
}
