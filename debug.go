package rvg

import "github.com/sirupsen/logrus"

// Debug enables the CBS reference generator's invariant cross-checks,
// the Go counterpart of the original library's "#ifndef NDEBUG" assert
// blocks in generate.c. With Debug set, GenerateCBS and GenerateCBSExt
// recompute each level's interval endpoints via cdf64Interval and log a
// structured warning (rather than asserting/crashing) if the trie
// descent's running state has drifted from what a fresh recomputation
// yields - almost always a sign that the user-supplied CDF is not
// actually monotone.
var Debug = false

var debugLog = logrus.New()

func debugCheckInterval(cdf CDF, b uint64, l int, wantL, wantR float32) {
	if !Debug {
		return
	}
	gotL, gotR := cdf64Interval(cdf, b, uint(l))
	if gotL != wantL || gotR != wantR {
		debugLog.WithFields(logrus.Fields{
			"b": b, "l": l,
			"want_l": wantL, "want_r": wantR,
			"got_l": gotL, "got_r": gotR,
		}).Warn("generate_cbs: recomputed CDF interval disagrees with running state; CDF may not be monotone")
	}
}

func debugCheckIntervalExt(ddf DDF, b uint64, l int, wantLo, wantHi DDFVal) {
	if !Debug {
		return
	}
	gotLo, gotHi := cdf64IntervalExt(ddf, b, uint(l))
	if gotLo != wantLo || gotHi != wantHi {
		debugLog.WithFields(logrus.Fields{
			"b": b, "l": l,
			"want_lo": wantLo, "want_hi": wantHi,
			"got_lo": gotLo, "got_hi": gotHi,
		}).Warn("generate_cbs_ext: recomputed DDF interval disagrees with running state; DDF may not be monotone")
	}
}
