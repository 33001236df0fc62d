// Package arith computes exact, single-precision floating-point
// subtractions as run-length encoded binary expansions, so that the
// optimal generator can compare conditional probabilities without any
// floating-point rounding error and without arbitrary-precision
// arithmetic on the hot path.
package arith

import "math"

// Mode selects which exact rational a call to Subtract computes.
type Mode int

const (
	// Sub0 computes x - y for finite, non-negative x >= y.
	Sub0 Mode = iota
	// Sub1 computes 1 - (x + y) for finite, non-negative x, y.
	Sub1
)

const (
	floatSizeBits    = 32
	floatExponentBits = 8
	floatMantissaBits = 23
	floatExpBias      = (1 << (floatExponentBits - 1)) - 1 // 127
)

// PreconditionError reports a violated precondition on a hot-path
// operation. These are programming errors: the caller is expected to
// have checked the condition before invoking the operation.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string { return "arith: " + e.Op + ": " + e.Msg }

func fail(op, msg string) {
	panic(&PreconditionError{Op: op, Msg: msg})
}

// Exact is a run-length encoded binary expansion of an exact rational
// result: n1 bits equal to b1, then nHi bits taken MSB-first from gHi,
// then n2 bits equal to b2, then nLo bits MSB-first from gLo, then an
// infinite tail of zeros.
type Exact struct {
	N1, N2, NHi, NLo int32
	B1, B2           int32
	GHi, GLo         int32
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func minI(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// floatFields decomposes a finite, non-negative float32 into its unbiased
// exponent (with the subnormal adjustment folded in) and its significand
// with the hidden bit made explicit.
func floatFields(x float32) (ehat int32, f int32) {
	bits := math.Float32bits(x)
	e := int32((bits >> floatMantissaBits) & ((1 << floatExponentBits) - 1))
	m := int32(bits & ((1 << floatMantissaBits) - 1))
	ehat = e - floatExpBias + b2i(e == 0)
	f = m + (b2i(e > 0) << floatMantissaBits)
	return ehat, f
}

// Subtract computes the exact subtraction described by mode and returns
// its run-length encoding. x and y must be finite, non-negative float32
// values satisfying mode's precondition:
//
//	Sub0: y <= x, and not (x == 1 && y == 0).
//	Sub1: not (x == 0.5 && y == 0.5), not (x == 0 && y == 0); x and y are
//	      swapped internally so that x >= y.
func Subtract(mode Mode, x, y float32) Exact {
	switch mode {
	case Sub0:
		if !(y <= x) {
			fail("Subtract", "Sub0 requires y <= x")
		}
		if x == 1 && y == 0 {
			fail("Subtract", "Sub0 precondition excludes x=1, y=0")
		}
	case Sub1:
		if x == 0.5 && y == 0.5 {
			fail("Subtract", "Sub1 precondition excludes x=y=0.5")
		}
		if x == 0 && y == 0 {
			fail("Subtract", "Sub1 precondition excludes x=y=0")
		}
		if y > x {
			x, y = y, x
		}
	}

	ehatX, fX := floatFields(x)
	ehatY, fY := floatFields(y)

	shiftHi := minI(ehatX-ehatY, floatSizeBits-1)
	shiftLo := minI(ehatX-ehatY, floatMantissaBits+1)
	fHi := fY >> uint(shiftHi)
	fLo := fY & ((1 << uint(shiftLo)) - 1)

	var ss Exact
	switch mode {
	case Sub0:
		ss.N1 = -ehatX - 1 + b2i(x == 1)
		ss.N2 = maxI((ehatX-ehatY)-(floatMantissaBits+1), 0)
		ss.NHi = floatMantissaBits + 1 - b2i(x == 1)
		ss.NLo = minI(ehatX-ehatY, floatMantissaBits+1)
		ss.B1 = 0
		ss.B2 = b2i(fLo > 0)
		ss.GHi = fX - fHi - ss.B2
		ss.GLo = (ss.B2 << uint(ss.NLo)) - fLo
	case Sub1:
		ss.N1 = -ehatX - 2 + b2i(x == 0.5)
		ss.N2 = maxI((ehatX-ehatY)-(floatMantissaBits+1), 0)
		ss.NHi = floatMantissaBits + 2 - b2i(x == 0.5)
		ss.NLo = minI(ehatX-ehatY, floatMantissaBits+1)
		ss.B1 = 1
		ss.B2 = b2i(fLo > 0)
		ss.GHi = (1 << uint(ss.NHi)) - fX - fHi - ss.B2
		ss.GLo = (ss.B2 << uint(ss.NLo)) - fLo
	}
	return ss
}

// IthBit returns the l-th (1-based) bit of the infinite binary expansion
// encoded by ss, in constant time.
func IthBit(ss Exact, l int32) uint8 {
	switch {
	case l <= ss.N1:
		return uint8(ss.B1)
	case l <= ss.N1+ss.NHi:
		return uint8((ss.GHi >> uint(ss.NHi-(l-ss.N1))) & 1)
	case l <= ss.N1+ss.NHi+ss.N2:
		return uint8(ss.B2)
	case l <= ss.N1+ss.NHi+ss.N2+ss.NLo:
		return uint8((ss.GLo >> uint(ss.NLo-(l-(ss.N1+ss.NHi+ss.N2)))) & 1)
	default:
		return 0
	}
}

// SubtractExt translates dual-distribution-valued operands (d0, q0) and
// (d1, q1) into the (mode, x, y) form Subtract expects, per the DDF
// subtraction table: (0,0) and (1,1) route to Sub0 (swapping operands in
// the latter case so the result stays non-negative), (1,0) routes to
// Sub1, and (0,1) is impossible under a monotone DDF and is a fatal
// precondition violation.
func SubtractExt(d0 bool, q0 float32, d1 bool, q1 float32) Exact {
	switch {
	case !d0 && !d1:
		return Subtract(Sub0, q0, q1)
	case d0 && d1:
		return Subtract(Sub0, q1, q0)
	case d0 && !d1:
		return Subtract(Sub1, q0, q1)
	default:
		fail("SubtractExt", "impossible DDF ordering (d0,d1)=(0,1)")
		panic("unreachable")
	}
}
