package fixed

import (
	"fmt"

	"github.com/calebcase/oops"

	"github.com/calebcase/umath"
	"github.com/calebcase/umath/round"
)

// Scale constants.
const (
	// Digits is the number of fractional decimal digits.
	Digits = 9

	// Scale is the number of raw units per 1.0.
	Scale = 1_000_000_000
)

// UFixed64 is an unsigned fixed point decimal with Digits fractional digits
// stored in a single uint64 word.
type UFixed64 uint64

// FromRaw returns the fixed point number word/Scale.
func FromRaw(word uint64) UFixed64 {
	return UFixed64(word)
}

// FromInt returns whole as a fixed point number. Overflow reports that
// whole·Scale does not fit.
func FromInt(whole uint64) (UFixed64, bool) {
	z, overflow := umath.MulDiv[uint64](whole, Scale, 1, round.Down)

	return UFixed64(z), overflow
}

// Raw returns the raw word.
func (x UFixed64) Raw() uint64 {
	return uint64(x)
}

// Add returns x + y. Overflow reports that the sum does not fit.
func (x UFixed64) Add(y UFixed64) (UFixed64, bool) {
	z := x + y

	return z, z < x
}

// Sub returns x - y. Overflow reports that y is greater than x.
func (x UFixed64) Sub(y UFixed64) (UFixed64, bool) {
	return x - y, y > x
}

// UncheckedAdd returns x + y wrapped modulo 2^64. The wraparound is part of
// the contract.
func (x UFixed64) UncheckedAdd(y UFixed64) UFixed64 {
	return x + y
}

// UncheckedSub returns x - y wrapped modulo 2^64. The wraparound is part of
// the contract.
func (x UFixed64) UncheckedSub(y UFixed64) UFixed64 {
	return x - y
}

// Mul returns x·y rounded according to the mode.
func (x UFixed64) Mul(y UFixed64, m round.Mode) (UFixed64, bool) {
	z, overflow := umath.MulDiv(uint64(x), uint64(y), Scale, m)

	return UFixed64(z), overflow
}

// Div returns x/y rounded according to the mode. A zero divisor panics
// with umath.ErrDivideByZero.
func (x UFixed64) Div(y UFixed64, m round.Mode) (UFixed64, bool) {
	z, overflow := umath.MulDiv(uint64(x), Scale, uint64(y), m)

	return UFixed64(z), overflow
}

// Mod returns the remainder of x/y. A zero divisor panics with
// umath.ErrDivideByZero.
func (x UFixed64) Mod(y UFixed64) UFixed64 {
	if y == 0 {
		panic(oops.Trace(umath.ErrDivideByZero))
	}

	return x % y
}

// And returns x & y.
func (x UFixed64) And(y UFixed64) UFixed64 {
	return x & y
}

// Or returns x | y.
func (x UFixed64) Or(y UFixed64) UFixed64 {
	return x | y
}

// Xor returns x ^ y.
func (x UFixed64) Xor(y UFixed64) UFixed64 {
	return x ^ y
}

// Shl returns x << shift, or false if any non-zero bit would be shifted
// out or shift >= 64.
func (x UFixed64) Shl(shift uint) (UFixed64, bool) {
	z, ok := umath.CheckedShl(uint64(x), shift)

	return UFixed64(z), ok
}

// Shr returns x >> shift, or false if any non-zero bit would be shifted
// out or shift >= 64.
func (x UFixed64) Shr(shift uint) (UFixed64, bool) {
	z, ok := umath.CheckedShr(uint64(x), shift)

	return UFixed64(z), ok
}

// String returns the decimal representation.
func (x UFixed64) String() string {
	return fmt.Sprintf("%d.%09d", uint64(x)/Scale, uint64(x)%Scale)
}
