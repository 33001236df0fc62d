// Package bernoulli draws an exact biased coin from a rational weight
// k/n using only uniform bits, realizing the binary expansion of k/n one
// bit at a time and stopping at the first head (Knuth-Yao for a single
// rational bias).
package bernoulli

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/probsys/librvg/flip"
)

// PreconditionError reports a violated precondition on a Bernoulli draw.
type PreconditionError struct{ Msg string }

func (e *PreconditionError) Error() string { return "bernoulli: " + e.Msg }

func fail(msg string) { panic(&PreconditionError{Msg: msg}) }

// Bernoulli returns one bit with probability k/n, for 0 < k < n < 2^64.
// Trivial endpoints k=0 and k=n are rejected: callers observing a
// trivial CDF endpoint must short-circuit before calling Bernoulli
// rather than rely on it to handle k=0 or k=n.
//
// The doubling accumulator runs in 256-bit arithmetic (github.com/
// holiman/uint256) rather than uint64, because 2*k can exceed the
// uint64 range transiently while k, n themselves fit in a uint64.
func Bernoulli(k, n uint64, src *flip.State) bool {
	if k == 0 || n <= k {
		fail("require 0 < k < n")
	}
	kk := uint256.NewInt(k)
	nn := uint256.NewInt(n)
	for {
		kk.Lsh(kk, 1)
		if kk.Eq(nn) {
			return src.Flip() == 1
		}
		var b bool
		if nn.Lt(kk) {
			b = true
			kk.Sub(kk, nn)
		}
		if src.Flip() == 1 {
			return b
		}
	}
}

// BernoulliBig is the arbitrary-precision variant of Bernoulli, used by
// the CBS reference generator where k and n are exact rational
// numerator/denominator pairs that can outgrow any fixed width.
func BernoulliBig(k, n *big.Int, src *flip.State) bool {
	if k.Sign() <= 0 || k.Cmp(n) >= 0 {
		fail("require 0 < k < n")
	}
	kk := new(big.Int).Set(k)
	for {
		kk.Lsh(kk, 1)
		if kk.Cmp(n) == 0 {
			return src.Flip() == 1
		}
		b := kk.Cmp(n) > 0
		if b {
			kk.Sub(kk, n)
		}
		if src.Flip() == 1 {
			return b
		}
	}
}
