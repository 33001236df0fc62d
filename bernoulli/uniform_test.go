package bernoulli

import (
	"testing"

	"github.com/probsys/librvg/arith"
)

func TestUniformDoubleStaysInUnitInterval(t *testing.T) {
	src := newState(t, 99)
	for i := 0; i < 100000; i++ {
		x := UniformDouble(RoundNearest, src)
		if x < 0 || x >= 1 {
			t.Fatalf("UniformDouble produced out-of-range value %v", x)
		}
	}
}

func TestUniformFloatStaysInUnitInterval(t *testing.T) {
	src := newState(t, 100)
	for i := 0; i < 100000; i++ {
		x := UniformFloat(RoundNearest, src)
		if x < 0 || x >= 1 {
			t.Fatalf("UniformFloat produced out-of-range value %v", x)
		}
	}
}

func TestUniformDoubleExtProducesValidDDFValues(t *testing.T) {
	src := newState(t, 7)
	for i := 0; i < 100000; i++ {
		d, q := UniformDoubleExt(src)
		if !arith.CheckDDFVal(d, float32(q)) {
			t.Fatalf("UniformDoubleExt produced invalid DDF value (%v, %v)", d, q)
		}
	}
}

func TestUniformFloatExtProducesValidDDFValues(t *testing.T) {
	src := newState(t, 8)
	for i := 0; i < 100000; i++ {
		d, q := UniformFloatExt(src)
		if !arith.CheckDDFVal(d, q) {
			t.Fatalf("UniformFloatExt produced invalid DDF value (%v, %v)", d, q)
		}
	}
}

func TestSampleExponentReportsUnderflowPastFloor(t *testing.T) {
	src := newState(t, 11)
	for i := 0; i < 1000; i++ {
		exp, underflow := sampleExponent(src, -4)
		if underflow && exp >= -4 {
			t.Fatalf("reported underflow but exp=%d is not past the floor", exp)
		}
		if !underflow && exp < -4 {
			t.Fatalf("exp=%d is past the floor but underflow was not reported", exp)
		}
	}
}
