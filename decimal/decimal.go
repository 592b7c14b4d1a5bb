package decimal

import (
	"github.com/calebcase/umath/u256"
)

// MaxPow10 is the largest n for which 10^n fits in 256 bits.
const MaxPow10 = 77

// pow10 is a cache of the powers of 10 that fit a single uint64, where
// pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Pow10 returns 10^n. It returns false if n > MaxPow10.
func Pow10(n uint) (u256.Uint256, bool) {
	if n > MaxPow10 {
		return u256.Uint256{}, false
	}

	z := u256.From64(1)

	for n >= 19 {
		w := u256.Mul(z, u256.From64(pow10[19]))
		z = w.Lo()
		n -= 19
	}

	w := u256.Mul(z, u256.From64(pow10[n]))

	return w.Lo(), true
}

// Rescale converts amount from `from` fractional digits to `to` fractional
// digits. Scaling up multiplies by 10^(to-from) and reports false when the
// result does not fit in 256 bits. Scaling down divides by 10^(from-to),
// truncating toward zero; it never rounds.
func Rescale(amount u256.Uint256, from, to uint8) (u256.Uint256, bool) {
	switch {
	case amount.IsZero():
		// Zero rescales exactly at any precision.
		return u256.Uint256{}, true
	case to == from:
		return amount, true
	case to > from:
		p, ok := Pow10(uint(to - from))
		if !ok {
			return u256.Uint256{}, false
		}

		w := u256.Mul(amount, p)
		if !w.Hi().IsZero() {
			return u256.Uint256{}, false
		}

		return w.Lo(), true
	default:
		p, ok := Pow10(uint(from - to))
		if !ok {
			return u256.Uint256{}, false
		}

		q, _, _ := u256.DivRem(u256.WideFrom(amount), p)

		return q, true
	}
}

// RescaleUint64 converts a uint64 amount between precisions. On top of
// Rescale it performs the explicit "does the scaled value fit the narrower
// output width" check before downcasting.
func RescaleUint64(amount uint64, from, to uint8) (uint64, bool) {
	z, ok := Rescale(u256.From64(amount), from, to)
	if !ok || !z.IsUint64() {
		return 0, false
	}

	return z.Uint64(), true
}
