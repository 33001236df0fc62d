package flip

// Deterministic is a generator that returns a fixed value on every call
// and never evolves its own state, the counterpart of the original
// library's prng_deterministic.c. It is primarily useful for profiling
// and for regression tests that need a pinned bit stream.
type Deterministic struct {
	x uint32
}

// NewDeterministic returns a generator whose Uint64 always returns seed.
func NewDeterministic(seed uint32) *Deterministic {
	return &Deterministic{x: seed}
}

// Set changes the fixed value returned by subsequent calls to Uint64.
func (d *Deterministic) Set(seed uint32) { d.x = seed }

func (d *Deterministic) Min() uint64   { return 0 }
func (d *Deterministic) Max() uint64   { return 0xffffffff }
func (d *Deterministic) Uint64() uint64 { return uint64(d.x) }
