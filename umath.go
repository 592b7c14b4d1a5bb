package umath

import (
	"math/bits"

	"github.com/calebcase/oops"
	"golang.org/x/exp/constraints"

	"github.com/calebcase/umath/round"
)

// width returns the bit width of T.
func width[T constraints.Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// MulDiv returns a·b/den with the division rounded according to the mode.
// The product is exact: it is computed at 128 bits, so a·b never wraps even
// when both operands are at the maximum of T.
//
// Overflow reports that the true result does not fit in T, either because
// the quotient itself is too wide or because rounding up pushed it past T's
// maximum. A zero denominator panics with ErrDivideByZero.
func MulDiv[T constraints.Unsigned](a, b, den T, m round.Mode) (T, bool) {
	if den == 0 {
		panic(oops.Trace(ErrDivideByZero))
	}

	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(den) {
		// The quotient needs more than 64 bits.
		return 0, true
	}

	q, r := bits.Div64(hi, lo, uint64(den))

	q, overflow := round.Round(q, uint64(den), r, m)
	if overflow || q > uint64(^T(0)) {
		return 0, true
	}

	return T(q), false
}

// MulShr returns a·b/2^shift with the division rounded according to the
// mode. It requires shift < the bit width of T: larger shifts panic with
// ErrShiftTooLarge.
func MulShr[T constraints.Unsigned](a, b T, shift uint, m round.Mode) (T, bool) {
	if shift >= width[T]() {
		panic(oops.Trace(ErrShiftTooLarge))
	}

	hi, lo := bits.Mul64(uint64(a), uint64(b))

	if shift == 0 {
		if hi != 0 || lo > uint64(^T(0)) {
			return 0, true
		}

		return T(lo), false
	}

	if hi>>shift != 0 {
		return 0, true
	}

	q := hi<<(64-shift) | lo>>shift
	rem := lo & (1<<shift - 1)

	q, overflow := round.Round(q, uint64(1)<<shift, rem, m)
	if overflow || q > uint64(^T(0)) {
		return 0, true
	}

	return T(q), false
}

// Average returns the arithmetic mean of a and b, with the half step
// rounded according to the mode. It cannot overflow: the mean is computed
// as lower + (upper-lower)/2 instead of (a+b)/2.
func Average[T constraints.Unsigned](a, b T, m round.Mode) T {
	if a == b {
		return a
	}

	lower, upper := a, b
	if lower > upper {
		lower, upper = upper, lower
	}

	half, _ := MulDiv(upper-lower, 1, 2, m)

	return lower + half
}

// CheckedShl returns v << shift, or false if any non-zero bit would be
// shifted out or shift is at least the bit width of T. A shift of 0 always
// returns v unchanged.
func CheckedShl[T constraints.Unsigned](v T, shift uint) (T, bool) {
	if shift >= width[T]() {
		return 0, false
	}

	z := v << shift
	if z>>shift != v {
		return 0, false
	}

	return z, true
}

// CheckedShr returns v >> shift, or false if any non-zero bit would be
// shifted out or shift is at least the bit width of T.
func CheckedShr[T constraints.Unsigned](v T, shift uint) (T, bool) {
	if shift >= width[T]() {
		return 0, false
	}

	z := v >> shift
	if z<<shift != v {
		return 0, false
	}

	return z, true
}

// Clz returns the number of leading zero bits in v, from 0 for a value with
// the top bit set up to the full bit width of T for zero.
func Clz[T constraints.Unsigned](v T) uint {
	return width[T]() - uint(bits.Len64(uint64(v)))
}

// Log2 returns the base 2 logarithm of v rounded according to the mode.
// Log2(0) is 0 by convention under every mode.
//
// An exact power of two returns its exponent under every mode. Note the
// ceiling of the maximum of T is the full bit width: Log2(MaxUint8, Up) is
// 8, one past the top bit index.
//
// The nearest mode is decided exactly by comparing v² against
// 2^(2·floor+1), the square of 2^floor·√2. No floating point is involved.
func Log2[T constraints.Unsigned](v T, m round.Mode) uint {
	if v == 0 {
		return 0
	}

	floor := uint(bits.Len64(uint64(v))) - 1

	if v&(v-1) == 0 {
		return floor
	}

	switch m {
	case round.Down:
		return floor
	case round.Up:
		return floor + 1
	}

	if squareAtLeast(uint64(v), 2*floor+1) {
		return floor + 1
	}

	return floor
}

// Log256 returns the base 256 logarithm of v rounded according to the
// mode. Log256(0) is 0 by convention under every mode.
func Log256[T constraints.Unsigned](v T, m round.Mode) uint {
	if v == 0 {
		return 0
	}

	floor2 := uint(bits.Len64(uint64(v))) - 1
	k := floor2 / 8

	if floor2%8 == 0 && v&(v-1) == 0 {
		return k
	}

	switch m {
	case round.Down:
		return k
	case round.Up:
		return k + 1
	}

	if squareAtLeast(uint64(v), 16*k+8) {
		return k + 1
	}

	return k
}

// squareAtLeast returns true if v² >= 2^threshold. The 128-bit square is
// exact and the comparison reduces to a bit length test: x >= 2^t exactly
// when x has more than t bits.
func squareAtLeast(v uint64, threshold uint) bool {
	hi, lo := bits.Mul64(v, v)

	var length uint
	if hi != 0 {
		length = 64 + uint(bits.Len64(hi))
	} else {
		length = uint(bits.Len64(lo))
	}

	return length >= threshold+1
}
