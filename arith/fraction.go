package arith

import (
	"math/big"

	"github.com/holiman/uint256"
)

// IthBitOfFraction returns the i-th (1-based) bit of the binary expansion
// of k/n, where 0 < k < n. It materializes the expansion bit by bit:
// repeatedly doubling k, emitting a 1 and subtracting n whenever the
// doubled value meets or exceeds n. Doubling is carried out in 256-bit
// arithmetic so that k, n near the uint64 range never silently wrap
// before the comparison against n is made.
func IthBitOfFraction(k, n, i uint64) uint8 {
	if !(0 < i && 0 < k && k < n) {
		fail("IthBitOfFraction", "require 0 < i, 0 < k < n")
	}
	kk := uint256.NewInt(k)
	nn := uint256.NewInt(n)
	var b uint8
	for j := uint64(1); j <= i; j++ {
		kk.Lsh(kk, 1)
		if kk.Eq(nn) {
			if j == i {
				b = 1
			} else {
				b = 0
			}
			break
		}
		if nn.Lt(kk) {
			b = 1
			kk.Sub(kk, nn)
		} else {
			b = 0
		}
	}
	return b
}

// IthBitOfFractionBig is the arbitrary-precision reference oracle for
// IthBitOfFraction, used to cross-check the fixed-width implementation.
func IthBitOfFractionBig(k, n *big.Int, i uint64) uint8 {
	if k.Sign() <= 0 || k.Cmp(n) >= 0 {
		fail("IthBitOfFractionBig", "require 0 < k < n")
	}
	if i == 0 {
		fail("IthBitOfFractionBig", "require 0 < i")
	}
	kk := new(big.Int).Set(k)
	var b uint8
loop:
	for j := uint64(1); j <= i; j++ {
		kk.Lsh(kk, 1)
		switch kk.Cmp(n) {
		case 0:
			if j == i {
				b = 1
			} else {
				b = 0
			}
			break loop
		case 1:
			b = 1
			kk.Sub(kk, n)
		default:
			b = 0
		}
	}
	return b
}
