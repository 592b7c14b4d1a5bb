package u128

import (
	"math/big"
	"math/bits"

	"github.com/calebcase/umath/u256"
)

// Uint128 is an unsigned 128-bit integer held as two 64-bit limbs. The zero
// Uint128 is the number zero and values compare with ==.
type Uint128 struct {
	hi uint64
	lo uint64
}

// From64 returns v as a Uint128.
func From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

// FromRaw returns the Uint128 hi·2^64 + lo.
func FromRaw(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// Max returns 2^128 - 1, the maximum representable value.
func Max() Uint128 {
	return Uint128{hi: ^uint64(0), lo: ^uint64(0)}
}

// Hi returns the high 64 bits.
func (x Uint128) Hi() uint64 {
	return x.hi
}

// Lo returns the low 64 bits.
func (x Uint128) Lo() uint64 {
	return x.lo
}

// IsZero returns true if x is zero.
func (x Uint128) IsZero() bool {
	return x.hi|x.lo == 0
}

// Cmp returns -1, 0, or +1 when x is less than, equal to, or greater than y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.hi < y.hi, x.hi == y.hi && x.lo < y.lo:
		return -1
	case x == y:
		return 0
	}

	return 1
}

// Uint256 widens x to the canonical width.
func (x Uint128) Uint256() u256.Uint256 {
	return u256.FromLimbs(x.lo, x.hi, 0, 0)
}

// FromUint256 narrows v. It returns false if v does not fit in 128 bits.
func FromUint256(v u256.Uint256) (Uint128, bool) {
	if v.Rsh(128).IsZero() {
		return Uint128{hi: v.Rsh(64).Uint64(), lo: v.Uint64()}, true
	}

	return Uint128{}, false
}

// Big returns the value as a big.Int.
func (x Uint128) Big() *big.Int {
	return x.Uint256().Big()
}

// String returns the base 10 representation.
func (x Uint128) String() string {
	return x.Uint256().String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Uint128) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Uint128) UnmarshalText(data []byte) error {
	v, err := u256.FromString(string(data))
	if err != nil {
		return err
	}

	z, ok := FromUint256(v)
	if !ok {
		return u256.Error.New("out of range: %q", string(data))
	}

	*x = z

	return nil
}

// LeadingZeros returns the number of leading zero bits in x, from 0 up to
// 128 for zero.
func (x Uint128) LeadingZeros() uint {
	if x.hi != 0 {
		return uint(bits.LeadingZeros64(x.hi))
	}

	return 64 + uint(bits.LeadingZeros64(x.lo))
}
