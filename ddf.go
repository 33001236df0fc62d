package rvg

import "math"

// NewDDF builds a dual distribution function from a (cdf, sf) pair. It
// precomputes the cutoff as the exact quantile of nextafter(0.5, 1)
// under cdf, validates that cdf and sf agree with that cutoff to within
// one ULP on the adjacent side, and returns a DDF that routes callers
// below the cutoff (including -0.0 when the cutoff is +0.0) to the CDF
// side and callers at or above it to the survival side.
func NewDDF(cdf CDF, sf SF) (DDF, error) {
	cutoff := Quantile(cdf, math.Nextafter32(0.5, 1))
	cutoffSign := math.Signbit(cutoff)

	if 0.5 < cdf(math.Nextafter(cutoff, math.Inf(-1))) {
		return nil, &DDFConstructionError{Msg: "cdf exceeds 0.5 just below the computed cutoff"}
	}
	if 0.5 <= sf(cutoff) {
		return nil, &DDFConstructionError{Msg: "sf is at least 0.5 at the computed cutoff"}
	}

	ddf := func(x float64) DDFVal {
		if x < cutoff || (x == cutoff && math.Signbit(x) && !cutoffSign) {
			return DDFVal{D: false, Q: cdf(x)}
		}
		return DDFVal{D: true, Q: sf(x)}
	}
	return ddf, nil
}
