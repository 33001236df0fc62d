package rvg

import (
	"github.com/probsys/librvg/arith"
	"github.com/probsys/librvg/bitrepr"
	"github.com/probsys/librvg/flip"
)

// GenerateOpt draws one sample from cdf using the optimal, bit-by-bit
// trie descent: at each of the 64 levels it evaluates cdf at the block
// midpoint, decides left or right using an exact single-precision
// subtraction expansion (never arbitrary-precision arithmetic), and
// consumes a fresh random bit only when the two candidate sub-interval
// probabilities have not yet diverged in their binary expansions. This
// realizes the Knuth-Yao entropy lower bound for the induced discrete
// distribution over 64-bit lex indices.
func GenerateOpt(cdf CDF, src *flip.State) float64 {
	var b uint64
	var ell int32
	var cdfL float32 = 0
	var cdfR float32 = 1

	for l := 0; l < dblSize; l++ {
		m := dblSize - (l + 1)
		bLexMid := (b << uint(m+1)) + (uint64(1) << uint(m)) - 1
		cdfM := cdf(bitrepr.LexToDouble(bLexMid))

		bLex0 := b << 1
		bLex1 := bLex0 | 1

		if cdfM == cdfR {
			b = bLex0
			cdfR = cdfM
			continue
		}
		if cdfM == cdfL {
			b = bLex1
			cdfL = cdfM
			continue
		}

		ss0 := arith.Subtract(arith.Sub0, cdfM, cdfL)
		ss1 := arith.Subtract(arith.Sub0, cdfR, cdfM)

		if ell > 0 {
			a0 := arith.IthBit(ss0, ell)
			a1 := arith.IthBit(ss1, ell)
			if a0 == 1 && a1 == 0 {
				b, cdfR = bLex0, cdfM
				continue
			}
			if a0 == 0 && a1 == 1 {
				b, cdfL = bLex1, cdfM
				continue
			}
		}
		for {
			ell++
			a0 := arith.IthBit(ss0, ell)
			a1 := arith.IthBit(ss1, ell)
			x := src.Flip()
			if x == 0 && a0 == 1 {
				b, cdfR = bLex0, cdfM
				break
			}
			if x == 1 && a1 == 1 {
				b, cdfL = bLex1, cdfM
				break
			}
		}
	}
	return bitrepr.LexToDouble(b)
}

// GenerateOptExt is the dual-distribution analogue of GenerateOpt: it
// carries (d, q) interval endpoints throughout and uses the DDF
// subtraction helper so that subtractions remain numerically safe
// across the median, where a plain CDF would suffer catastrophic
// cancellation.
func GenerateOptExt(ddf DDF, src *flip.State) float64 {
	var b uint64
	var ell int32
	lo := DDFVal{D: false, Q: 0}
	hi := DDFVal{D: true, Q: 0}

	for l := 0; l < dblSize; l++ {
		m := dblSize - (l + 1)
		bLexMid := (b << uint(m+1)) + (uint64(1) << uint(m)) - 1
		mid := ddf(bitrepr.LexToDouble(bLexMid))

		bLex0 := b << 1
		bLex1 := bLex0 | 1

		if mid == hi {
			b = bLex0
			hi = mid
			continue
		}
		if mid == lo {
			b = bLex1
			lo = mid
			continue
		}

		ss0 := arith.SubtractExt(mid.D, mid.Q, lo.D, lo.Q)
		ss1 := arith.SubtractExt(hi.D, hi.Q, mid.D, mid.Q)

		if ell > 0 {
			a0 := arith.IthBit(ss0, ell)
			a1 := arith.IthBit(ss1, ell)
			if a0 == 1 && a1 == 0 {
				b, hi = bLex0, mid
				continue
			}
			if a0 == 0 && a1 == 1 {
				b, lo = bLex1, mid
				continue
			}
		}
		for {
			ell++
			a0 := arith.IthBit(ss0, ell)
			a1 := arith.IthBit(ss1, ell)
			x := src.Flip()
			if x == 0 && a0 == 1 {
				b, hi = bLex0, mid
				break
			}
			if x == 1 && a1 == 1 {
				b, lo = bLex1, mid
				break
			}
		}
	}
	return bitrepr.LexToDouble(b)
}
