package arith

// CheckDDFVal reports whether (d, q) is a legal dual-distribution value:
// d=0 requires q in [0, 0.5] (a CDF-side tail probability), d=1 requires
// q in [0, 0.5) (a survival-side tail probability).
func CheckDDFVal(d bool, q float32) bool {
	if !d {
		return 0 <= q && q <= 0.5
	}
	return 0 <= q && q < 0.5
}

// CompareLTEExt is a total order on DDF values consistent with the
// probability each represents: (d0,q0) <= (d1,q1) iff d0 < d1, or both
// are 0 and q0 <= q1, or both are 1 and q1 <= q0.
func CompareLTEExt(d0 bool, q0 float32, d1 bool, q1 float32) bool {
	if !CheckDDFVal(d0, q0) {
		fail("CompareLTEExt", "d0,q0 is not a legal DDF value")
	}
	if !CheckDDFVal(d1, q1) {
		fail("CompareLTEExt", "d1,q1 is not a legal DDF value")
	}
	switch {
	case !d0 && d1:
		return true
	case d0 && !d1:
		return false
	case !d0 && !d1:
		return q0 <= q1
	default: // d0 && d1
		return q1 <= q0
	}
}
