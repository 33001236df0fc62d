package discretegauss

import (
	"math"

	"github.com/holiman/uint256"

	"github.com/probsys/librvg/flip"
)

// randBits draws a k-bit unsigned integer (k may exceed 64) from src,
// composed MSB-first in 64-bit chunks, mirroring how the base sampler's
// threshold comparisons expect a big-endian bit string.
func randBits(src *flip.State, k int) *uint256.Int {
	result := new(uint256.Int)
	remaining := k
	for remaining > 0 {
		chunk := remaining
		if chunk > 64 {
			chunk = 64
		}
		word := src.RandInt(chunk)
		result.Lsh(result, uint(chunk))
		result.Or(result, uint256.NewInt(word))
		remaining -= chunk
	}
	return result
}

// baseSampler draws z0 in {0, ..., len(rcdt)} distributed according to
// the half-Gaussian-like reverse CDT table: it draws a uniform rcdtBits-
// bit fraction u and counts how many thresholds it falls below.
func baseSampler(src *flip.State) int {
	u := randBits(src, rcdtBits)
	z0 := 0
	for _, threshold := range rcdt {
		if u.Lt(threshold) {
			z0++
		}
	}
	return z0
}

// approxExp returns a 2^64-scaled fixed-point approximation of
// ccs*exp(-x) for x in [0, ln 2] and ccs in [0, 1], via the degree-12
// minimax polynomial in expCoeffs, truncated to its low 64 bits (so
// x = 0, ccs = 1 yields 0).
func approxExp(x, ccs float64) uint64 {
	y := new(uint256.Int).Set(expCoeffs[0])
	z := uint256.NewInt(uint64(x * (1 << 63)))
	for _, c := range expCoeffs[1:] {
		y.Mul(y, z)
		y.Rsh(y, 63)
		y.Sub(c, y)
	}
	z = uint256.NewInt(uint64(ccs * (1 << 63)))
	z.Lsh(z, 1)
	y.Mul(z, y)
	y.Rsh(y, 63)
	return y.Uint64()
}

// berexp draws one bit, true with probability approximately ccs*exp(-x),
// for x, ccs >= 0. It compares 8-bit chunks of the fixed-point
// approximation against fresh uniform bytes from src, from the most to
// the least significant, the same early-exit comparison the base sampler
// and approxExp were originally paired with.
func berexp(x, ccs float64, src *flip.State) bool {
	s := math.Floor(x * iln2)
	r := x - s*ln2
	if s > 63 {
		s = 63
	}
	z := (approxExp(r, ccs) - 1) >> uint(s)
	var w int
	for i := 56; i >= -8; i -= 8 {
		p := int(src.RandInt(8))
		var shifted uint64
		if i >= 0 && i < 64 {
			shifted = (z >> uint(i)) & 0xFF
		}
		w = p - int(shifted)
		if w != 0 {
			break
		}
	}
	return w < 0
}

// Sample draws an integer from the discrete Gaussian D_{Z,mu,sigma},
// given center mu, standard deviation sigma, and scaling factor sigmin,
// with 1 < sigmin < sigma < MaxSigma. It is the rejection-sampling fast
// path this package's CumulativeRCDT/GenerateOpt combination can be
// cross-checked against.
func Sample(mu, sigma, sigmin float64, src *flip.State) int64 {
	s := int64(math.Floor(mu))
	r := mu - float64(s)
	dss := 1 / (2 * sigma * sigma)
	ccs := sigmin / sigma
	for {
		z0 := baseSampler(src)
		b := int64(src.RandInt(1))
		zInt := b + (2*b-1)*int64(z0)
		z := float64(zInt)
		x := math.Pow(z-r, 2)*dss - math.Pow(float64(z0), 2)*inv2Sigma2
		if berexp(x, ccs, src) {
			return s + zInt
		}
	}
}
