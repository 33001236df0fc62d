//go:build linux

package flip

import "golang.org/x/sys/unix"

// Urandom is a lightweight wrapper over getrandom(2), the Go counterpart
// of the original library's urandom.c GSL generator. It maintains no
// state of its own; each call to Uint64 issues a fresh syscall.
type Urandom struct{}

// NewUrandom returns an RNG backed by getrandom(2).
func NewUrandom() Urandom { return Urandom{} }

func (Urandom) Min() uint64 { return 0 }
func (Urandom) Max() uint64 { return ^uint64(0) }

func (Urandom) Uint64() uint64 {
	var buf [8]byte
	for {
		n, err := unix.Getrandom(buf[:], 0)
		if err == nil && n == len(buf) {
			break
		}
		if err != unix.EINTR {
			if err != nil {
				panic(err)
			}
		}
	}
	return uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
}
