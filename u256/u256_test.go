package u256_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/umath/u256"
)

// values is a table of interesting 256-bit values spanning every limb
// boundary.
func values() []u256.Uint256 {
	return []u256.Uint256{
		u256.From64(0),
		u256.From64(1),
		u256.From64(2),
		u256.From64(3),
		u256.From64(10),
		u256.From64(math.MaxUint32),
		u256.From64(math.MaxUint64),
		u256.FromLimbs(0, 1, 0, 0),
		u256.FromLimbs(1, 1, 0, 0),
		u256.FromLimbs(math.MaxUint64, math.MaxUint64, 0, 0),
		u256.FromLimbs(0, 0, 1, 0),
		u256.FromLimbs(0, 0, 0, 1),
		u256.FromLimbs(0, 0, 0, 1 << 62),
		u256.FromLimbs(0, 0, 0, 1 << 63),
		u256.FromLimbs(math.MaxUint64, 0, math.MaxUint64, 0),
		u256.FromLimbs(0x0123456789abcdef, 0xfedcba9876543210, 0xdeadbeefdeadbeef, 0x0102030405060708),
		u256.Max(),
	}
}

func mod256() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), 256)
}

func TestBigRoundtrip(t *testing.T) {
	for i, v := range values() {
		t.Run(fmt.Sprintf("[%d]%s", i, v), func(t *testing.T) {
			z, ok := u256.FromBig(v.Big())
			require.True(t, ok)
			require.Equal(t, v, z)
		})
	}
}

func TestFromBigRange(t *testing.T) {
	_, ok := u256.FromBig(big.NewInt(-1))
	require.False(t, ok)

	_, ok = u256.FromBig(mod256())
	require.False(t, ok)

	max := new(big.Int).Sub(mod256(), big.NewInt(1))
	z, ok := u256.FromBig(max)
	require.True(t, ok)
	require.Equal(t, u256.Max(), z)
}

func TestString(t *testing.T) {
	require.Equal(t, "0", u256.From64(0).String())
	require.Equal(t, "18446744073709551616", u256.FromLimbs(0, 1, 0, 0).String())
	require.Equal(t,
		"115792089237316195423570985008687907853269984665640564039457584007913129639935",
		u256.Max().String(),
	)

	z, err := u256.FromString("340282366920938463463374607431768211456") // 2^128
	require.NoError(t, err)
	require.Equal(t, u256.FromLimbs(0, 0, 1, 0), z)

	_, err = u256.FromString("not a number")
	require.Error(t, err)

	_, err = u256.FromString("-1")
	require.Error(t, err)
}

func TestMarshalText(t *testing.T) {
	for i, v := range values() {
		t.Run(fmt.Sprintf("[%d]%s", i, v), func(t *testing.T) {
			data, err := v.MarshalText()
			require.NoError(t, err)

			var z u256.Uint256
			require.NoError(t, z.UnmarshalText(data))
			require.Equal(t, v, z)
		})
	}
}

func TestAddSub(t *testing.T) {
	for _, x := range values() {
		for _, y := range values() {
			sum := new(big.Int).Add(x.Big(), y.Big())

			z, overflow := x.Add(y)
			require.Equal(t, sum.BitLen() > 256, overflow, "x=%s y=%s", x, y)
			if !overflow {
				require.Equal(t, sum.String(), z.String(), "x=%s y=%s", x, y)
			}

			// Subtraction undoes addition modulo 2^256.
			back, underflow := z.Sub(y)
			require.Equal(t, overflow, underflow, "x=%s y=%s", x, y)
			require.Equal(t, x, back, "x=%s y=%s", x, y)
		}
	}
}

func TestCmp(t *testing.T) {
	for _, x := range values() {
		for _, y := range values() {
			require.Equal(t, x.Big().Cmp(y.Big()), x.Cmp(y), "x=%s y=%s", x, y)
		}
	}
}

func TestShifts(t *testing.T) {
	shifts := []uint{0, 1, 7, 63, 64, 65, 127, 128, 129, 200, 255, 256, 300}

	for _, x := range values() {
		for _, s := range shifts {
			left := new(big.Int).Lsh(x.Big(), s)
			left.Mod(left, mod256())
			require.Equal(t, left.String(), x.Lsh(s).String(), "x=%s s=%d", x, s)

			right := new(big.Int).Rsh(x.Big(), s)
			require.Equal(t, right.String(), x.Rsh(s).String(), "x=%s s=%d", x, s)
		}
	}
}

func TestBitwise(t *testing.T) {
	for _, x := range values() {
		for _, y := range values() {
			require.Equal(t, new(big.Int).And(x.Big(), y.Big()).String(), x.And(y).String())
			require.Equal(t, new(big.Int).Or(x.Big(), y.Big()).String(), x.Or(y).String())
			require.Equal(t, new(big.Int).Xor(x.Big(), y.Big()).String(), x.Xor(y).String())
		}
	}
}

func TestLeadingZeros(t *testing.T) {
	require.Equal(t, uint(256), u256.Uint256{}.LeadingZeros())
	require.Equal(t, uint(0), u256.Max().LeadingZeros())

	for k := uint(0); k < 256; k++ {
		v := u256.From64(1).Lsh(k)
		require.Equal(t, 256-1-k, v.LeadingZeros(), "k=%d", k)
		require.Equal(t, k+1, v.BitLen(), "k=%d", k)
	}
}

func TestBit(t *testing.T) {
	v := u256.FromLimbs(1, 0, 0, 1<<63)
	require.Equal(t, uint(1), v.Bit(0))
	require.Equal(t, uint(0), v.Bit(1))
	require.Equal(t, uint(1), v.Bit(255))
	require.Equal(t, uint(0), v.Bit(254))
}
