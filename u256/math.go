package u256

import (
	"math/bits"

	"github.com/calebcase/oops"

	"github.com/calebcase/umath/round"
)

// MulDiv returns a·b/den with the division rounded according to the mode.
// The product is exact: it is computed at 512 bits, so a·b never loses
// precision even when both operands are near the maximum.
//
// Overflow reports that the true result does not fit in 256 bits, either
// because the quotient itself is too wide or because rounding up pushed it
// past the maximum. A zero denominator panics with ErrDivideByZero.
func MulDiv(a, b, den Uint256, m round.Mode) (Uint256, bool) {
	if den.IsZero() {
		panic(oops.Trace(ErrDivideByZero))
	}

	// Fast path: everything fits a single limb and so does the quotient.
	if a.IsUint64() && b.IsUint64() && den.IsUint64() {
		hi, lo := bits.Mul64(a.Uint64(), b.Uint64())
		if hi < den.Uint64() {
			q, r := bits.Div64(hi, lo, den.Uint64())

			return roundQuotient(From64(q), den, From64(r), m)
		}

		// The quotient needs more than 64 bits. It still fits 256,
		// so fall through to the wide path.
	}

	q, r, overflow := DivRem(Mul(a, b), den)
	if overflow {
		return Uint256{}, true
	}

	return roundQuotient(q, den, r, m)
}

// MulShr returns a·b/2^shift with the division rounded according to the
// mode. It requires shift < 256: larger shifts panic with ErrShiftTooLarge.
func MulShr(a, b Uint256, shift uint, m round.Mode) (Uint256, bool) {
	if shift >= 256 {
		panic(oops.Trace(ErrShiftTooLarge))
	}

	p := Mul(a, b)

	if shift == 0 {
		if !p.hi.IsZero() {
			return Uint256{}, true
		}

		return p.lo, false
	}

	if !p.hi.Rsh(shift).IsZero() {
		return Uint256{}, true
	}

	q := p.hi.Lsh(256 - shift).Or(p.lo.Rsh(shift))

	den := From64(1).Lsh(shift)
	mask, _ := den.Sub(From64(1))
	rem := p.lo.And(mask)

	return roundQuotient(q, den, rem, m)
}

// Average returns the arithmetic mean of a and b, with the half step
// rounded according to the mode. It cannot overflow: the mean is computed
// as lower + (upper-lower)/2 instead of (a+b)/2.
func Average(a, b Uint256, m round.Mode) Uint256 {
	if a == b {
		return a
	}

	lower, upper := a, b
	if lower.Cmp(upper) > 0 {
		lower, upper = upper, lower
	}

	delta, _ := upper.Sub(lower)
	half, _ := MulDiv(delta, From64(1), From64(2), m)
	z, _ := lower.Add(half)

	return z
}

// CheckedShl returns v << shift, or false if any non-zero bit would be
// shifted out or shift >= 256.
func CheckedShl(v Uint256, shift uint) (Uint256, bool) {
	if shift >= 256 {
		return Uint256{}, false
	}

	z := v.Lsh(shift)
	if z.Rsh(shift) != v {
		return Uint256{}, false
	}

	return z, true
}

// CheckedShr returns v >> shift, or false if any non-zero bit would be
// shifted out or shift >= 256.
func CheckedShr(v Uint256, shift uint) (Uint256, bool) {
	if shift >= 256 {
		return Uint256{}, false
	}

	z := v.Rsh(shift)
	if z.Lsh(shift) != v {
		return Uint256{}, false
	}

	return z, true
}

// Log2 returns the base 2 logarithm of v rounded according to the mode.
// Log2(0) is 0 by convention under every mode.
//
// The nearest mode is decided exactly by comparing v² against
// 2^(2·floor+1), the square of 2^floor·√2. No floating point is involved.
func Log2(v Uint256, m round.Mode) uint {
	if v.IsZero() {
		return 0
	}

	floor := v.BitLen() - 1

	if v.isPow2() {
		return floor
	}

	switch m {
	case round.Down:
		return floor
	case round.Up:
		return floor + 1
	}

	if squareAtLeast(v, 2*floor+1) {
		return floor + 1
	}

	return floor
}

// Log256 returns the base 256 logarithm of v rounded according to the
// mode. Log256(0) is 0 by convention under every mode.
func Log256(v Uint256, m round.Mode) uint {
	if v.IsZero() {
		return 0
	}

	floor2 := v.BitLen() - 1
	k := floor2 / 8

	if floor2%8 == 0 && v.isPow2() {
		return k
	}

	switch m {
	case round.Down:
		return k
	case round.Up:
		return k + 1
	}

	if squareAtLeast(v, 16*k+8) {
		return k + 1
	}

	return k
}

// squareAtLeast returns true if v² >= 2^threshold. The comparison reduces
// to a bit length test: x >= 2^t exactly when x has more than t bits.
func squareAtLeast(v Uint256, threshold uint) bool {
	if v.IsUint64() {
		hi, lo := bits.Mul64(v.Uint64(), v.Uint64())

		var length uint
		if hi != 0 {
			length = 64 + uint(bits.Len64(hi))
		} else {
			length = uint(bits.Len64(lo))
		}

		return length >= threshold+1
	}

	return Mul(v, v).BitLen() >= threshold+1
}

// roundQuotient applies the rounding policy at the canonical width.
func roundQuotient(q, den, rem Uint256, m round.Mode) (Uint256, bool) {
	if rem.IsZero() {
		return q, false
	}

	up := false
	switch m {
	case round.Up:
		up = true
	case round.Nearest:
		// rem >= den - rem, the overflow-free form of rem >= den/2.
		d, _ := den.Sub(rem)
		up = rem.Cmp(d) >= 0
	}

	if !up {
		return q, false
	}

	if q == Max() {
		return Uint256{}, true
	}

	z, _ := q.Add(From64(1))

	return z, false
}
