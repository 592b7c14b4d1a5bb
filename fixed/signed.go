package fixed

import (
	"fmt"
	"math"

	"github.com/calebcase/oops"

	"github.com/calebcase/umath"
	"github.com/calebcase/umath/round"
)

// Fixed64 is a signed fixed point decimal with Digits fractional digits
// stored in a single int64 word, two's complement.
type Fixed64 int64

// FromRawSigned returns the fixed point number word/Scale.
func FromRawSigned(word int64) Fixed64 {
	return Fixed64(word)
}

// Raw returns the raw word.
func (x Fixed64) Raw() int64 {
	return int64(x)
}

// decompose splits x into sign and magnitude. It is exact for the full
// range, including math.MinInt64.
func (x Fixed64) decompose() (neg bool, mag uint64) {
	if x < 0 {
		return true, uint64(-(x+1)) + 1
	}

	return false, uint64(x)
}

// compose re-encodes a sign and magnitude as two's complement. Overflow
// reports that the magnitude does not fit in an int64 with that sign.
func compose(neg bool, mag uint64) (Fixed64, bool) {
	if mag == 0 {
		return 0, false
	}

	if neg {
		if mag > 1<<63 {
			return 0, true
		}

		return Fixed64(-int64(mag-1) - 1), false
	}

	if mag > math.MaxInt64 {
		return 0, true
	}

	return Fixed64(mag), false
}

// Add returns x + y. Overflow reports that the sum does not fit.
func (x Fixed64) Add(y Fixed64) (Fixed64, bool) {
	z := x + y

	// The sum overflowed iff both operands share a sign that z lost.
	return z, (x^z)&(y^z) < 0
}

// Sub returns x - y. Overflow reports that the difference does not fit.
func (x Fixed64) Sub(y Fixed64) (Fixed64, bool) {
	z := x - y

	return z, (x^y)&(x^z) < 0
}

// UncheckedAdd returns x + y wrapped modulo 2^64. The wraparound is part of
// the contract.
func (x Fixed64) UncheckedAdd(y Fixed64) Fixed64 {
	return x + y
}

// UncheckedSub returns x - y wrapped modulo 2^64. The wraparound is part of
// the contract.
func (x Fixed64) UncheckedSub(y Fixed64) Fixed64 {
	return x - y
}

// Mul returns x·y rounded according to the mode. The magnitudes are
// multiplied on the unsigned core and the sign is re-encoded afterward.
func (x Fixed64) Mul(y Fixed64, m round.Mode) (Fixed64, bool) {
	negX, magX := x.decompose()
	negY, magY := y.decompose()

	mag, overflow := umath.MulDiv[uint64](magX, magY, Scale, m)
	if overflow {
		return 0, true
	}

	return compose(negX != negY, mag)
}

// Div returns x/y rounded according to the mode. A zero divisor panics
// with umath.ErrDivideByZero.
func (x Fixed64) Div(y Fixed64, m round.Mode) (Fixed64, bool) {
	negX, magX := x.decompose()
	negY, magY := y.decompose()

	mag, overflow := umath.MulDiv[uint64](magX, Scale, magY, m)
	if overflow {
		return 0, true
	}

	return compose(negX != negY, mag)
}

// Mod returns the remainder of x/y with the sign of x. A zero divisor
// panics with umath.ErrDivideByZero.
func (x Fixed64) Mod(y Fixed64) Fixed64 {
	if y == 0 {
		panic(oops.Trace(umath.ErrDivideByZero))
	}

	return x % y
}

// Neg returns -x. Overflow reports x == math.MinInt64.
func (x Fixed64) Neg() (Fixed64, bool) {
	if x == math.MinInt64 {
		return 0, true
	}

	return -x, false
}

// Abs returns the magnitude of x as an unsigned fixed point number.
func (x Fixed64) Abs() UFixed64 {
	_, mag := x.decompose()

	return UFixed64(mag)
}

// String returns the decimal representation.
func (x Fixed64) String() string {
	neg, mag := x.decompose()

	sign := ""
	if neg {
		sign = "-"
	}

	return fmt.Sprintf("%s%d.%09d", sign, mag/Scale, mag%Scale)
}
