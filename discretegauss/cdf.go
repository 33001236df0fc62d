package discretegauss

import (
	"math"
	"math/big"
)

// support is the half-Gaussian's support {0, ..., len(rcdt)}: rcdt[i]
// is the count of probability mass strictly above i in 2^-rcdtBits
// units, so the whole table is a reverse CDT of a one-sided distribution
// before baseSampler's random sign bit folds it onto the integers.
var support = len(rcdt)

// massAbove returns the fraction of the rcdtBits-bit unit interval
// lying at or above threshold index i, as a float64 in [0,1].
func massAbove(i int) float64 {
	if i >= len(rcdt) {
		return 0
	}
	v := rcdt[i]
	scale := new(big.Float).SetMantExp(big.NewFloat(1), -rcdtBits)
	f, _ := new(big.Float).Mul(new(big.Float).SetInt(v.ToBig()), scale).Float64()
	return f
}

// CumulativeRCDT exposes the base sampler's reverse-CDT table as a
// discrete CDF over the signed integers in [-support, support]: the
// discrete Gaussian centred at 0 whose one-sided weights are the table's,
// with P(X > k) = massAbove(k) / (1 + massAbove(0)) for k >= 0 and the
// negative side its mirror image. This is the distribution Sample draws
// from for mu = 0 and sigma = MaxSigma. It lets the table be
// driven through GenerateOpt/Quantile instead of the dedicated rejection
// sampler, so the two code paths can be checked against each other.
func CumulativeRCDT(x float64) float32 {
	if math.IsNaN(x) {
		return 1
	}
	n := math.Floor(x)
	if n < float64(-support) {
		return 0
	}
	if n >= float64(support) {
		return 1
	}
	k := int(n)
	norm := 1 + massAbove(0)
	var massLE float64
	if k < 0 {
		massLE = massAbove(-k-1) / norm
	} else {
		massLE = 1 - massAbove(k)/norm
	}
	return float32(massLE)
}
