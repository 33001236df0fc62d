package bitrepr

import (
	"math"
	"testing"
)

func TestDoubleLexRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, -0.5, 3.14159, -3.14159,
		math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64,
		-math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)}
	for _, x := range values {
		lex := DoubleToLex(x)
		got := LexToDouble(lex)
		if math.Float64bits(got) != math.Float64bits(x) {
			t.Errorf("round trip failed for %v: got %v", x, got)
		}
	}
}

func TestFloatLexRoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, -0.5, 3.14159, -3.14159,
		math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32,
		math.Float32frombits(0x00000001), math.Float32frombits(0x80000001)}
	for _, x := range values {
		lex := FloatToLex(x)
		got := LexToFloat(lex)
		if math.Float32bits(got) != math.Float32bits(x) {
			t.Errorf("round trip failed for %v: got %v", x, got)
		}
	}
}

func TestNaNLandsAboveEveryFinite(t *testing.T) {
	nan := math.NaN()
	nanLex := DoubleToLex(nan)
	finite := []float64{math.MaxFloat64, 0, -math.MaxFloat64, math.Inf(1), math.Inf(-1)}
	for _, x := range finite {
		if DoubleToLex(x) >= nanLex {
			t.Errorf("expected lex(%v) < lex(NaN), got %d >= %d", x, DoubleToLex(x), nanLex)
		}
	}
}

func TestLexOrderMatchesFloatOrder(t *testing.T) {
	values := []float64{-10, -1, -0.5, -0.0, 0.0, 0.5, 1, 10, 100}
	for i := 0; i < len(values)-1; i++ {
		a, b := values[i], values[i+1]
		if a < b && DoubleToLex(a) >= DoubleToLex(b) {
			t.Errorf("lex order disagrees with float order: %v < %v but lex(%v)=%d >= lex(%v)=%d",
				a, b, a, DoubleToLex(a), b, DoubleToLex(b))
		}
	}
}

func TestLexSuccessorIsNextafter(t *testing.T) {
	x := 1.0
	lex := DoubleToLex(x)
	succ := LexToDouble(lex + 1)
	want := math.Nextafter(x, math.Inf(1))
	if succ != want {
		t.Errorf("lex successor of %v = %v, want %v", x, succ, want)
	}
}
