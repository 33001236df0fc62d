// Package discrete provides a CDF helper for distributions supported on
// the non-negative integers and given by an explicit table of
// cumulative probabilities.
package discrete

import "math"

// CDF returns P(X <= x) for a distribution supported on {0, ..., K-1}
// with cumulative table p (p[i] = P(X <= i)): NaN maps to 1, any x below
// 0 (including -0.0, per the sign-bit convention used throughout this
// library) maps to 0, x at or beyond len(p) maps to 1, and otherwise the
// table entry for floor(x) is returned.
func CDF(x float64, p []float32) float32 {
	switch {
	case math.IsNaN(x):
		return 1
	case math.Signbit(x):
		return 0
	case float64(len(p)) <= x:
		return 1
	default:
		return p[int(x)]
	}
}
