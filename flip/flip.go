// Package flip turns a uniform word generator into a buffered stream of
// uniform random bits.
package flip

import (
	"fmt"
	"math/bits"
)

// RNG is a uniform integer generator over a fixed range [Min, Max]. The
// range must be either [0, 2^m-1] or [1, 2^m-2] for some 1 <= m <= 64;
// New rejects any other shape.
type RNG interface {
	// Uint64 returns the next value in [Min(), Max()].
	Uint64() uint64
	Min() uint64
	Max() uint64
}

// State is a buffered single-bit stream drawn from an underlying RNG. It
// carries mutable state (buffer, cursor, flip count) and is not safe for
// concurrent use; independent States backed by independent RNGs may run
// concurrently without contention.
type State struct {
	rng        RNG
	bufferSize int
	buffer     uint64
	flipPos    int
	numFlips   uint64
}

// New builds a State from rng, validating that its range has one of the
// two accepted shapes and determining the buffer size from rng.Max().
func New(rng RNG) (*State, error) {
	lo, hi := rng.Min(), rng.Max()
	size := bufferSize(hi)
	switch lo {
	case 0:
		if !(size == 64 && hi == ^uint64(0)) && hi != (uint64(1)<<uint(size))-1 {
			return nil, fmt.Errorf("flip: rng range [0, %d] is not of the form [0, 2^m-1]", hi)
		}
	case 1:
		if !(size == 64 && hi == ^uint64(0)-1) && hi != (uint64(1)<<uint(size))-2 {
			return nil, fmt.Errorf("flip: rng range [1, %d] is not of the form [1, 2^m-2]", hi)
		}
	default:
		return nil, fmt.Errorf("flip: rng range [%d, %d] has unsupported minimum", lo, hi)
	}
	return &State{rng: rng, bufferSize: size, flipPos: size}, nil
}

// bufferSize returns the number of bits needed to represent x, i.e., the
// bit-width of the RNG's maximum value.
func bufferSize(x uint64) int {
	if x == 0 {
		return 1
	}
	return bits.Len64(x)
}

// NumFlips returns the lifetime count of bits drawn from s.
func (s *State) NumFlips() uint64 { return s.numFlips }

// Flip draws a single bit, refilling the buffer from the underlying RNG
// when exhausted. Bits are consumed LSB-first from each refill.
func (s *State) Flip() uint8 {
	if s.flipPos == s.bufferSize {
		s.buffer = s.rng.Uint64()
		s.flipPos = 0
	}
	b := uint8(s.buffer & 1)
	s.buffer >>= 1
	s.flipPos++
	s.numFlips++
	return b
}

// FlipK draws a k-bit unsigned integer MSB-first, refilling the buffer as
// often as k requires (at most twice when k does not exceed the buffer
// size).
func (s *State) FlipK(k int) uint64 {
	if k <= 0 {
		return 0
	}
	if s.flipPos == s.bufferSize {
		s.buffer = s.rng.Uint64()
		s.flipPos = 0
	}
	avail := s.bufferSize - s.flipPos
	n := k
	if avail < n {
		n = avail
	}
	var mask uint64
	if n == 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << uint(n)) - 1
	}
	b := reverseBits(s.buffer&mask, n)
	s.buffer >>= uint(n)
	s.flipPos += n
	s.numFlips += uint64(n)
	if n == k {
		return b
	}
	return (b << uint(k-n)) + s.FlipK(k-n)
}

// reverseBits reverses the order of the low n bits of x, so that the bit
// consumed first by Flip (the buffer's LSB) becomes the most significant
// bit of the n-bit result, matching RandInt's bit ordering.
func reverseBits(x uint64, n int) uint64 {
	var r uint64
	for i := 0; i < n; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// RandInt draws a k-bit unsigned integer bit-by-bit through Flip.
func (s *State) RandInt(k int) uint64 {
	var n uint64
	for i := 0; i < k; i++ {
		n <<= 1
		n |= uint64(s.Flip())
	}
	return n
}
