package u256

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Uint256 is an unsigned 256-bit integer.
//
// The value is held as 4 unsigned 64-bit limbs in little-endian order:
//
//	value = n[0]·2^0 + n[1]·2^64 + n[2]·2^128 + n[3]·2^192
//
// The zero Uint256 is the number zero. Uint256 has structural equality: two
// values may be compared with ==.
type Uint256 struct {
	n [4]uint64
}

// From64 returns v as a Uint256.
func From64(v uint64) Uint256 {
	return Uint256{n: [4]uint64{v, 0, 0, 0}}
}

// FromLimbs returns the Uint256 with the given little-endian limbs.
func FromLimbs(l0, l1, l2, l3 uint64) Uint256 {
	return Uint256{n: [4]uint64{l0, l1, l2, l3}}
}

// Max returns 2^256 - 1, the maximum representable value.
func Max() Uint256 {
	m := ^uint64(0)

	return Uint256{n: [4]uint64{m, m, m, m}}
}

// FromBig converts b. It returns false if b is negative or does not fit in
// 256 bits.
func FromBig(b *big.Int) (Uint256, bool) {
	if b.Sign() < 0 || b.BitLen() > 256 {
		return Uint256{}, false
	}

	var buf [32]byte
	b.FillBytes(buf[:])

	var z Uint256
	for i := 0; i < 4; i++ {
		z.n[i] = binary.BigEndian.Uint64(buf[24-8*i:])
	}

	return z, true
}

// FromString parses a base 10 integer.
func FromString(s string) (Uint256, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint256{}, Error.New("invalid integer: %q", s)
	}

	z, ok := FromBig(b)
	if !ok {
		return Uint256{}, Error.New("out of range: %q", s)
	}

	return z, nil
}

// Big returns the value as a big.Int.
func (x Uint256) Big() *big.Int {
	var buf [32]byte
	for i := 0; i < 4; i++ {
		binary.BigEndian.PutUint64(buf[24-8*i:], x.n[i])
	}

	return new(big.Int).SetBytes(buf[:])
}

// String returns the base 10 representation.
func (x Uint256) String() string {
	return x.Big().String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Uint256) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Uint256) UnmarshalText(data []byte) error {
	z, err := FromString(string(data))
	if err != nil {
		return err
	}

	*x = z

	return nil
}

// IsZero returns true if x is zero.
func (x Uint256) IsZero() bool {
	return x.n[0]|x.n[1]|x.n[2]|x.n[3] == 0
}

// IsUint64 returns true if x fits in a single uint64.
func (x Uint256) IsUint64() bool {
	return x.n[1]|x.n[2]|x.n[3] == 0
}

// Uint64 returns the low 64 bits of x.
func (x Uint256) Uint64() uint64 {
	return x.n[0]
}

// Cmp returns -1, 0, or +1 when x is less than, equal to, or greater than y.
func (x Uint256) Cmp(y Uint256) int {
	for i := 3; i >= 0; i-- {
		switch {
		case x.n[i] < y.n[i]:
			return -1
		case x.n[i] > y.n[i]:
			return 1
		}
	}

	return 0
}

// Add returns x + y. Overflow reports that the true sum does not fit in 256
// bits.
func (x Uint256) Add(y Uint256) (z Uint256, overflow bool) {
	var c uint64
	z.n[0], c = bits.Add64(x.n[0], y.n[0], 0)
	z.n[1], c = bits.Add64(x.n[1], y.n[1], c)
	z.n[2], c = bits.Add64(x.n[2], y.n[2], c)
	z.n[3], c = bits.Add64(x.n[3], y.n[3], c)

	return z, c != 0
}

// Sub returns x - y. Underflow reports that y is greater than x.
func (x Uint256) Sub(y Uint256) (z Uint256, underflow bool) {
	var b uint64
	z.n[0], b = bits.Sub64(x.n[0], y.n[0], 0)
	z.n[1], b = bits.Sub64(x.n[1], y.n[1], b)
	z.n[2], b = bits.Sub64(x.n[2], y.n[2], b)
	z.n[3], b = bits.Sub64(x.n[3], y.n[3], b)

	return z, b != 0
}

// And returns x & y.
func (x Uint256) And(y Uint256) (z Uint256) {
	for i := 0; i < 4; i++ {
		z.n[i] = x.n[i] & y.n[i]
	}

	return z
}

// Or returns x | y.
func (x Uint256) Or(y Uint256) (z Uint256) {
	for i := 0; i < 4; i++ {
		z.n[i] = x.n[i] | y.n[i]
	}

	return z
}

// Xor returns x ^ y.
func (x Uint256) Xor(y Uint256) (z Uint256) {
	for i := 0; i < 4; i++ {
		z.n[i] = x.n[i] ^ y.n[i]
	}

	return z
}

// Lsh returns x << n. Bits shifted past position 255 are discarded.
func (x Uint256) Lsh(n uint) (z Uint256) {
	if n >= 256 {
		return z
	}

	s, b := int(n/64), n%64

	for i := s; i < 4; i++ {
		z.n[i] = x.n[i-s] << b
		if i-s-1 >= 0 {
			z.n[i] |= x.n[i-s-1] >> (64 - b)
		}
	}

	return z
}

// Rsh returns x >> n.
func (x Uint256) Rsh(n uint) (z Uint256) {
	if n >= 256 {
		return z
	}

	s, b := int(n/64), n%64

	for i := 0; i < 4-s; i++ {
		z.n[i] = x.n[i+s] >> b
		if i+s+1 < 4 {
			z.n[i] |= x.n[i+s+1] << (64 - b)
		}
	}

	return z
}

// Bit returns bit i of x. It requires i < 256.
func (x Uint256) Bit(i uint) uint {
	return uint(x.n[i/64]>>(i%64)) & 1
}

// setBit returns x with bit i set. It requires i < 256.
func (x Uint256) setBit(i uint) Uint256 {
	x.n[i/64] |= 1 << (i % 64)

	return x
}

// LeadingZeros returns the number of leading zero bits in x, from 0 for a
// value with bit 255 set up to 256 for zero.
func (x Uint256) LeadingZeros() uint {
	for i := 3; i >= 0; i-- {
		if x.n[i] != 0 {
			return uint(3-i)*64 + uint(bits.LeadingZeros64(x.n[i]))
		}
	}

	return 256
}

// BitLen returns the minimum number of bits needed to represent x. The bit
// length of zero is 0.
func (x Uint256) BitLen() uint {
	return 256 - x.LeadingZeros()
}

// isPow2 returns true if x is an exact power of two.
func (x Uint256) isPow2() bool {
	count := 0
	for i := 0; i < 4; i++ {
		count += bits.OnesCount64(x.n[i])
	}

	return count == 1
}
