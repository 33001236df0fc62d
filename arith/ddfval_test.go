package arith

import "testing"

func TestCheckDDFVal(t *testing.T) {
	cases := []struct {
		d    bool
		q    float32
		want bool
	}{
		{false, 0, true},
		{false, 0.5, true},
		{false, 0.50001, false},
		{false, -0.1, false},
		{true, 0, true},
		{true, 0.49999, true},
		{true, 0.5, false},
	}
	for _, c := range cases {
		if got := CheckDDFVal(c.d, c.q); got != c.want {
			t.Errorf("CheckDDFVal(%v, %v) = %v, want %v", c.d, c.q, got, c.want)
		}
	}
}

func TestCompareLTEExtOrdersCDFBeforeSF(t *testing.T) {
	if !CompareLTEExt(false, 0.5, true, 0.4) {
		t.Error("any CDF-side value must order before any SF-side value")
	}
	if CompareLTEExt(true, 0.4, false, 0.5) {
		t.Error("an SF-side value must not order before a CDF-side value")
	}
}

func TestCompareLTEExtWithinCDFSide(t *testing.T) {
	if !CompareLTEExt(false, 0.1, false, 0.2) {
		t.Error("within the CDF side, smaller q must order first")
	}
	if CompareLTEExt(false, 0.2, false, 0.1) {
		t.Error("within the CDF side, larger q must not order first")
	}
}

func TestCompareLTEExtWithinSFSide(t *testing.T) {
	if !CompareLTEExt(true, 0.2, true, 0.1) {
		t.Error("within the SF side, larger q (smaller tail distance) must order first")
	}
	if CompareLTEExt(true, 0.1, true, 0.2) {
		t.Error("within the SF side, smaller q must not order first")
	}
}

func TestCompareLTEExtRejectsInvalidValues(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an invalid DDF value")
		}
	}()
	CompareLTEExt(true, 0.5, false, 0.1)
}
