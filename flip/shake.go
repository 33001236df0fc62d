package flip

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Shake is a deterministic bit source seeded from a caller-supplied byte
// string, generalizing util.go's fromSeedSHAKE helper (a SHAKE256 stream
// originally used to drive a sampler reproducibly from a seed) into a
// general-purpose RNG for this library's bit-by-bit samplers.
type Shake struct {
	xof sha3.ShakeHash
}

// NewShake seeds a SHAKE256 extendable-output stream with seed and
// returns an RNG that reads successive 8-byte words from it.
func NewShake(seed []byte) *Shake {
	xof := sha3.NewShake256()
	if _, err := xof.Write(seed); err != nil {
		panic(err) // never returns an error for an in-memory sponge
	}
	return &Shake{xof: xof}
}

func (s *Shake) Min() uint64 { return 0 }
func (s *Shake) Max() uint64 { return ^uint64(0) }

func (s *Shake) Uint64() uint64 {
	var buf [8]byte
	if _, err := s.xof.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}
