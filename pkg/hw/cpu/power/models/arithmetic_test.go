package models

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		ra, rb   uint64
		expected OverflowResult
	}{
		{"small", 1, 2, OverflowResult{Rt: 3}},
		{"wraps unsigned", math.MaxUint64, 1, OverflowResult{Rt: 0}},
		{"signed overflow", math.MaxInt64, 1, OverflowResult{Rt: 1 << 63, OV: true}},
		{"negative overflow", 1 << 63, math.MaxUint64, OverflowResult{Rt: math.MaxInt64, OV: true}},
		{"32-bit overflow only", 0x7FFF_FFFF, 1, OverflowResult{Rt: 0x8000_0000, OV32: true}},
		{"both", 0x7FFF_FFFF_7FFF_FFFF, 0x0000_0001_0000_0001, OverflowResult{Rt: 0x8000_0000_8000_0000, OV: true, OV32: true}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Add(test.ra, test.rb))
		})
	}
}

func TestSubf(t *testing.T) {
	tests := []struct {
		name     string
		ra, rb   uint64
		expected OverflowResult
	}{
		{"rb minus ra", 1, 3, OverflowResult{Rt: 2}},
		{"negative", 3, 1, OverflowResult{Rt: math.MaxUint64 - 1}},
		{"signed overflow", 1, 1 << 63, OverflowResult{Rt: math.MaxInt64, OV: true}},
		{"min negated", 1 << 63, 0, OverflowResult{Rt: 1 << 63, OV: true}},
		{"32-bit overflow only", 1, 0x8000_0000, OverflowResult{Rt: 0x7FFF_FFFF, OV32: true}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Subf(test.ra, test.rb))
		})
	}
}

func TestMullw(t *testing.T) {
	assert.Equal(t, overflowed(6, false), Mullw(2, 3))
	assert.Equal(t, overflowed(math.MaxUint64-5, false), Mullw(0xFFFF_FFFF, 6), "low words are sign extended")
	assert.Equal(t, overflowed(0x4000_0000_0000_0000, true), Mullw(0x8000_0000, 0x8000_0000))
	assert.Equal(t, overflowed(0x1_0000_0000, true), Mullw(0x1_0001_0000, 0x1_0000))
	assert.Equal(t, overflowed(6, false), Mullw(0x1234_5678_0000_0002, 0xFFFF_0000_0000_0003), "high words are ignored")
}

func TestMulld(t *testing.T) {
	assert.Equal(t, overflowed(6, false), Mulld(2, 3))
	assert.Equal(t, overflowed(math.MaxUint64-5, false), Mulld(math.MaxUint64, 6))
	assert.Equal(t, overflowed(0, true), Mulld(1<<32, 1<<32))
	assert.Equal(t, overflowed(1<<63, true), Mulld(1<<63, math.MaxUint64), "MinInt64 * -1")
	assert.Equal(t, overflowed(1<<63, false), Mulld(1<<62, math.MaxUint64-1), "2^62 * -2 fits")
}

func TestMulhw(t *testing.T) {
	assert.Equal(t, uint64(0), Mulhw(2, 3))
	assert.Equal(t, uint64(0xFFFF_FFFF_FFFF_FFFF), Mulhw(0xFFFF_FFFF, 6), "-1 * 6 high word is all ones")
	assert.Equal(t, uint64(0x4000_0000_4000_0000), Mulhw(0x8000_0000, 0x8000_0000))
	assert.Equal(t, uint64(0xC000_0000_C000_0000), Mulhw(0x7FFF_FFFF, 0x8000_0000))
}

func TestMulhwu(t *testing.T) {
	assert.Equal(t, uint64(0x5_0000_0005), Mulhwu(0xFFFF_FFFF, 6))
	assert.Equal(t, uint64(0xFFFF_FFFE_FFFF_FFFE), Mulhwu(0xFFFF_FFFF, 0xFFFF_FFFF))
}

func TestMulh_MatchesBigIntegers(t *testing.T) {
	for _, ra := range boundaryValues {
		for _, rb := range boundaryValues {
			signedProduct := new(big.Int).Mul(signed(ra), signed(rb))
			unsignedProduct := new(big.Int).Mul(unsigned(ra), unsigned(rb))

			assert.Equal(t, high64(signedProduct), Mulhd(ra, rb), "mulhd %x %x", ra, rb)
			assert.Equal(t, high64(unsignedProduct), Mulhdu(ra, rb), "mulhdu %x %x", ra, rb)
			assert.Equal(t, !signedProduct.IsInt64(), Mulld(ra, rb).OV, "mulld %x %x", ra, rb)
			assert.Equal(t, low64(signedProduct), Mulld(ra, rb).Rt, "mulld %x %x", ra, rb)
		}
	}
}

func TestMadd_MatchesBigIntegers(t *testing.T) {
	for _, ra := range boundaryValues {
		for _, rb := range boundaryValues {
			for _, rc := range boundaryValues {
				signedResult := new(big.Int).Add(new(big.Int).Mul(signed(ra), signed(rb)), signed(rc))
				unsignedResult := new(big.Int).Add(new(big.Int).Mul(unsigned(ra), unsigned(rb)), unsigned(rc))

				assert.Equal(t, high64(signedResult), Maddhd(ra, rb, rc), "maddhd %x %x %x", ra, rb, rc)
				assert.Equal(t, high64(unsignedResult), Maddhdu(ra, rb, rc), "maddhdu %x %x %x", ra, rb, rc)
				assert.Equal(t, low64(signedResult), Maddld(ra, rb, rc), "maddld %x %x %x", ra, rb, rc)
			}
		}
	}
}

func TestMulh_Commutative(t *testing.T) {
	for _, ra := range boundaryValues {
		for _, rb := range boundaryValues {
			assert.Equal(t, Mulhd(ra, rb), Mulhd(rb, ra))
			assert.Equal(t, Mulhdu(ra, rb), Mulhdu(rb, ra))
			assert.Equal(t, Mulhw(ra, rb), Mulhw(rb, ra))
			assert.Equal(t, Mulhwu(ra, rb), Mulhwu(rb, ra))
		}
	}
}

func FuzzMulh_Commutative(f *testing.F) {
	for _, value := range boundaryValues {
		f.Add(value, value^0xFFFF)
	}

	f.Fuzz(func(t *testing.T, ra, rb uint64) {
		if Mulhd(ra, rb) != Mulhd(rb, ra) {
			t.Errorf("mulhd(%x, %x) is not commutative", ra, rb)
		}

		if Mulhdu(ra, rb) != Mulhdu(rb, ra) {
			t.Errorf("mulhdu(%x, %x) is not commutative", ra, rb)
		}

		expected := high64(new(big.Int).Mul(signed(ra), signed(rb)))
		if actual := Mulhd(ra, rb); actual != expected {
			t.Errorf("mulhd(%x, %x) = %x, expected %x", ra, rb, actual, expected)
		}
	})
}
