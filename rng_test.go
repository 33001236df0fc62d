package rvg

import "github.com/probsys/librvg/flip"

// xorshift64 is a small, fast, deterministic PRNG used only to drive
// these tests; it is not part of the library's own RNG set.
type xorshift64 struct{ x uint64 }

func (g *xorshift64) Min() uint64 { return 0 }
func (g *xorshift64) Max() uint64 { return ^uint64(0) }
func (g *xorshift64) Uint64() uint64 {
	g.x ^= g.x << 13
	g.x ^= g.x >> 7
	g.x ^= g.x << 17
	return g.x
}

func newTestState(seed uint64) *flip.State {
	s, err := flip.New(&xorshift64{x: seed})
	if err != nil {
		panic(err)
	}
	return s
}
