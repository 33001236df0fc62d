package rvg

import "testing"

func TestCdf64IntervalRootIsFullRange(t *testing.T) {
	lo, hi := cdf64Interval(uniform01CDF, 0, 0)
	if lo != 0 || hi != 1 {
		t.Errorf("cdf64Interval at the root should be (0,1), got (%v,%v)", lo, hi)
	}
}

func TestCdf64IntervalNarrowsMonotonically(t *testing.T) {
	_, rootHi := cdf64Interval(squareCDF, 0, 0)
	loLeft, hiLeft := cdf64Interval(squareCDF, 0, 1)
	loRight, hiRight := cdf64Interval(squareCDF, 1, 1)
	if hiLeft > rootHi || hiRight > rootHi {
		t.Errorf("child interval bound exceeds parent bound")
	}
	if loLeft > hiLeft || loRight > hiRight {
		t.Errorf("interval lower bound exceeds upper bound")
	}
	if hiLeft > loRight {
		t.Errorf("left child's upper bound %v exceeds right child's lower bound %v", hiLeft, loRight)
	}
}
