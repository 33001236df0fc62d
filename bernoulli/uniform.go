package bernoulli

import (
	"math"

	"github.com/probsys/librvg/flip"
)

// RoundMode selects how UniformDouble/UniformFloat handle the boundary
// of representable range (used only when the geometric exponent walk
// underflows the smallest subnormal).
type RoundMode int

const (
	RoundUp RoundMode = iota
	RoundDown
	RoundNearest
)

const (
	doubleMantissaBits = 52
	doubleMinNormalExp = -1022
	doubleMinExp       = -1074 // exponent of the smallest positive subnormal double

	floatMantissaBits = 23
	floatMinNormalExp = -126
	floatMinExp       = -149 // exponent of the smallest positive subnormal float32
)

// sampleExponent performs the geometric walk down the binade ladder: the
// exponent starts at -1 (the binade just below 1.0) and decreases for
// every head flipped, stopping at the first tail. Reaching minExp
// without a tail is reported as underflow.
func sampleExponent(src *flip.State, minExp int) (exp int, underflow bool) {
	exp = -1
	for {
		if src.Flip() == 0 {
			return exp, false
		}
		exp--
		if exp < minExp {
			return exp, true
		}
	}
}

// UniformDouble draws a random float64 in [0, 1) with the exact
// floating-point density: the binade is chosen by a geometric walk and
// the mantissa is filled with independent uniform bits (the Downey
// construction referenced in the package's generator design).
func UniformDouble(mode RoundMode, src *flip.State) float64 {
	exp, underflow := sampleExponent(src, doubleMinExp)
	mantissa := src.RandInt(doubleMantissaBits)
	if underflow {
		if mode == RoundUp {
			return math.Float64frombits(1) // smallest positive subnormal
		}
		return 0
	}
	if exp >= doubleMinNormalExp {
		biased := uint64(exp + 1023)
		bits := (biased << doubleMantissaBits) | mantissa
		return math.Float64frombits(bits)
	}
	shift := uint(doubleMinNormalExp - exp)
	significand := (uint64(1) << doubleMantissaBits) | mantissa
	return math.Float64frombits(significand >> shift)
}

// UniformFloat is the float32 analogue of UniformDouble.
func UniformFloat(mode RoundMode, src *flip.State) float32 {
	exp, underflow := sampleExponent(src, floatMinExp)
	mantissa := uint32(src.RandInt(floatMantissaBits))
	if underflow {
		if mode == RoundUp {
			return math.Float32frombits(1)
		}
		return 0
	}
	if exp >= floatMinNormalExp {
		biased := uint32(exp + 127)
		bits := (biased << floatMantissaBits) | mantissa
		return math.Float32frombits(bits)
	}
	shift := uint(floatMinNormalExp - exp)
	significand := (uint32(1) << floatMantissaBits) | mantissa
	return math.Float32frombits(significand >> shift)
}

// UniformDoubleExt draws a fresh side bit d and a magnitude q, with q in
// [0, 0.5] when d is false and q in [0, 0.5) when d is true; the sole
// boundary case (d true, q exactly 0.5) is nudged down by one ULP.
// q is a UniformDouble draw divided by two, which reuses UniformDouble
// rather than re-deriving the geometric walk over a halved range. The
// halving is exact for draws of at least 2^-1021 (it only decrements the
// exponent); smaller draws halve into the subnormal range and are rounded
// to nearest.
func UniformDoubleExt(src *flip.State) (bool, float64) {
	d := src.Flip() == 1
	q := UniformDouble(RoundNearest, src) / 2
	if d && q == 0.5 {
		q = math.Float64frombits(math.Float64bits(0.5) - 1)
	}
	return d, q
}

// UniformFloatExt is the float32 analogue of UniformDoubleExt.
func UniformFloatExt(src *flip.State) (bool, float32) {
	d := src.Flip() == 1
	q := UniformFloat(RoundNearest, src) / 2
	if d && q == 0.5 {
		q = math.Float32frombits(math.Float32bits(0.5) - 1)
	}
	return d, q
}
