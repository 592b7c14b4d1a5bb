package u256

import (
	"math/bits"

	"github.com/calebcase/oops"
)

// Wide is an unsigned 512-bit integer built from two 256-bit limbs:
//
//	value = hi·2^256 + lo
//
// A Wide exists to hold the exact product of two Uint256 values while a
// single multiply-then-divide call is in flight. It is never persisted.
type Wide struct {
	hi Uint256
	lo Uint256
}

// WideFrom returns lo as a Wide (hi = 0).
func WideFrom(lo Uint256) Wide {
	return Wide{lo: lo}
}

// NewWide returns the Wide hi·2^256 + lo.
func NewWide(hi, lo Uint256) Wide {
	return Wide{hi: hi, lo: lo}
}

// Hi returns the high 256 bits.
func (w Wide) Hi() Uint256 {
	return w.hi
}

// Lo returns the low 256 bits.
func (w Wide) Lo() Uint256 {
	return w.lo
}

// Bit returns bit i of w. It requires i < 512.
func (w Wide) Bit(i uint) uint {
	if i < 256 {
		return w.lo.Bit(i)
	}

	return w.hi.Bit(i - 256)
}

// BitLen returns the minimum number of bits needed to represent w.
func (w Wide) BitLen() uint {
	if !w.hi.IsZero() {
		return 256 + w.hi.BitLen()
	}

	return w.lo.BitLen()
}

// shl1 returns w << 1. The bit shifted past position 511 is discarded.
func (w Wide) shl1() Wide {
	hi := w.hi.Lsh(1)
	hi.n[0] |= w.lo.n[3] >> 63

	return Wide{hi: hi, lo: w.lo.Lsh(1)}
}

// cmp256 compares w against the 256-bit value d.
func (w Wide) cmp256(d Uint256) int {
	if !w.hi.IsZero() {
		return 1
	}

	return w.lo.Cmp(d)
}

// sub256 returns w - d. It requires w >= d.
func (w Wide) sub256(d Uint256) Wide {
	lo, borrow := w.lo.Sub(d)

	hi := w.hi
	if borrow {
		hi, _ = hi.Sub(From64(1))
	}

	return Wide{hi: hi, lo: lo}
}

// Mul returns the exact 512-bit product of x and y. No precision is lost:
// the product of two 256-bit values is bounded by 512 bits, so the top
// carry out of the schoolbook accumulation is structurally zero.
func Mul(x, y Uint256) Wide {
	var p [8]uint64

	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(x.n[i], y.n[j])

			var c uint64
			lo, c = bits.Add64(lo, p[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c

			p[i+j] = lo
			carry = hi
		}
		p[i+4] = carry
	}

	return Wide{
		hi: Uint256{n: [4]uint64{p[4], p[5], p[6], p[7]}},
		lo: Uint256{n: [4]uint64{p[0], p[1], p[2], p[3]}},
	}
}

// DivRem divides the 512-bit numerator n by the 256-bit divisor d and
// returns the quotient and remainder. Overflow reports that the true
// quotient does not fit in 256 bits; the quotient and remainder are then
// unspecified.
//
// A zero divisor panics with ErrDivideByZero. Divide-by-zero is a
// precondition violation and is never reported as overflow.
func DivRem(n Wide, d Uint256) (q, r Uint256, overflow bool) {
	if d.IsZero() {
		panic(oops.Trace(ErrDivideByZero))
	}

	// Single-limb shortcut.
	if n.hi.IsZero() && n.lo.IsUint64() && d.IsUint64() {
		return From64(n.lo.Uint64() / d.Uint64()), From64(n.lo.Uint64() % d.Uint64()), false
	}

	// Numerator smaller than divisor.
	if n.hi.IsZero() && n.lo.Cmp(d) < 0 {
		return Uint256{}, n.lo, false
	}

	// Binary restoring long division over all 512 bit positions, most to
	// least significant. The running remainder is bounded by 2·d < 2^257,
	// so it always fits a Wide.
	var rem Wide
	for i := 511; i >= 0; i-- {
		rem = rem.shl1()
		if n.Bit(uint(i)) == 1 {
			rem.lo.n[0] |= 1
		}

		if rem.cmp256(d) >= 0 {
			rem = rem.sub256(d)

			// A quotient bit at position >= 256 cannot be
			// represented: the true quotient needs more than 256
			// bits.
			if i >= 256 {
				return Uint256{}, Uint256{}, true
			}

			q = q.setBit(uint(i))
		}
	}

	return q, rem.lo, false
}
