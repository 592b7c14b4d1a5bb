package u128

import (
	"github.com/calebcase/oops"

	"github.com/calebcase/umath/round"
	"github.com/calebcase/umath/u256"
)

// MulDiv returns a·b/den with the division rounded according to the mode.
// The computation runs at the canonical 256-bit width, so the product is
// exact; overflow reports that the true result does not fit in 128 bits. A
// zero denominator panics with u256.ErrDivideByZero.
func MulDiv(a, b, den Uint128, m round.Mode) (Uint128, bool) {
	q, overflow := u256.MulDiv(a.Uint256(), b.Uint256(), den.Uint256(), m)
	if overflow {
		return Uint128{}, true
	}

	z, ok := FromUint256(q)
	if !ok {
		return Uint128{}, true
	}

	return z, false
}

// MulShr returns a·b/2^shift with the division rounded according to the
// mode. It requires shift < 128: larger shifts panic with
// u256.ErrShiftTooLarge.
func MulShr(a, b Uint128, shift uint, m round.Mode) (Uint128, bool) {
	if shift >= 128 {
		panic(oops.Trace(u256.ErrShiftTooLarge))
	}

	q, overflow := u256.MulShr(a.Uint256(), b.Uint256(), shift, m)
	if overflow {
		return Uint128{}, true
	}

	z, ok := FromUint256(q)
	if !ok {
		return Uint128{}, true
	}

	return z, false
}

// Average returns the arithmetic mean of a and b, with the half step
// rounded according to the mode. It cannot overflow.
func Average(a, b Uint128, m round.Mode) Uint128 {
	// Bounded by max(a, b), so the narrowing cannot fail.
	z, _ := FromUint256(u256.Average(a.Uint256(), b.Uint256(), m))

	return z
}

// CheckedShl returns v << shift, or false if any non-zero bit would be
// shifted out or shift >= 128.
func CheckedShl(v Uint128, shift uint) (Uint128, bool) {
	if shift >= 128 {
		return Uint128{}, false
	}

	s, ok := u256.CheckedShl(v.Uint256(), shift)
	if !ok {
		return Uint128{}, false
	}

	return FromUint256(s)
}

// CheckedShr returns v >> shift, or false if any non-zero bit would be
// shifted out or shift >= 128.
func CheckedShr(v Uint128, shift uint) (Uint128, bool) {
	if shift >= 128 {
		return Uint128{}, false
	}

	s, ok := u256.CheckedShr(v.Uint256(), shift)
	if !ok {
		return Uint128{}, false
	}

	// Bits only move toward zero, so the narrowing cannot fail.
	z, _ := FromUint256(s)

	return z, true
}

// Clz returns the number of leading zero bits in v, from 0 up to 128 for
// zero.
func Clz(v Uint128) uint {
	return v.LeadingZeros()
}

// Log2 returns the base 2 logarithm of v rounded according to the mode.
// Log2(0) is 0 by convention under every mode.
func Log2(v Uint128, m round.Mode) uint {
	return u256.Log2(v.Uint256(), m)
}

// Log256 returns the base 256 logarithm of v rounded according to the
// mode. Log256(0) is 0 by convention under every mode.
func Log256(v Uint128, m round.Mode) uint {
	return u256.Log256(v.Uint256(), m)
}
