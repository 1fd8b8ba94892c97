package models

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func neg(value int64) uint64 {
	return uint64(-value)
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name     string
		op       func(ra, rb uint64) OverflowResult
		ra, rb   uint64
		expected OverflowResult
	}{
		{"divd", Divd, 7, 2, overflowed(3, false)},
		{"divd truncates", Divd, neg(7), 2, overflowed(neg(3), false)},
		{"divd by zero", Divd, 7, 0, overflowed(0, true)},
		{"divd min by -1", Divd, 1 << 63, math.MaxUint64, overflowed(0, true)},
		{"divdu", Divdu, math.MaxUint64, 2, overflowed(math.MaxInt64, false)},
		{"divdu by zero", Divdu, 7, 0, overflowed(0, true)},
		{"divde", Divde, 1, 4, overflowed(1<<62, false)},
		{"divde negative", Divde, math.MaxUint64, 4, overflowed(0xC000_0000_0000_0000, false)},
		{"divde zero dividend", Divde, 0, 5, overflowed(0, false)},
		{"divde quotient too big", Divde, 1, 2, overflowed(0, true)},
		{"divde by one", Divde, 1, 1, overflowed(0, true)},
		{"divde by zero", Divde, 1, 0, overflowed(0, true)},
		{"divde min by -1", Divde, 1 << 63, math.MaxUint64, overflowed(0, true)},
		{"divdeu", Divdeu, 1, 2, overflowed(1<<63, false)},
		{"divdeu quotient too big", Divdeu, 2, 2, overflowed(0, true)},
		{"divdeu by zero", Divdeu, 0, 0, overflowed(0, true)},
		{"divw", Divw, 7, 2, overflowed(3, false)},
		{"divw zero extends", Divw, 0xFFFF_FFF9, 2, overflowed(0xFFFF_FFFD, false)},
		{"divw ignores high words", Divw, 0x1234_5678_0000_0007, 0xFFFF_0000_0000_0002, overflowed(3, false)},
		{"divw min by -1", Divw, 0x8000_0000, 0xFFFF_FFFF, overflowed(0, true)},
		{"divw by zero low word", Divw, 7, 0x1_0000_0000, overflowed(0, true)},
		{"divwu", Divwu, 0xFFFF_FFFF, 2, overflowed(0x7FFF_FFFF, false)},
		{"divwu by zero", Divwu, 7, 0, overflowed(0, true)},
		{"divwe", Divwe, 1, 4, overflowed(0x4000_0000, false)},
		{"divwe negative", Divwe, 0xFFFF_FFFF, 4, overflowed(0xC000_0000, false)},
		{"divwe quotient too big", Divwe, 1, 2, overflowed(0, true)},
		{"divwe min by -1", Divwe, 0x8000_0000, 0xFFFF_FFFF, overflowed(0, true)},
		{"divwe by zero", Divwe, 1, 0, overflowed(0, true)},
		{"divweu", Divweu, 1, 2, overflowed(0x8000_0000, false)},
		{"divweu quotient too big", Divweu, 2, 2, overflowed(0, true)},
		{"divweu by zero", Divweu, 1, 0, overflowed(0, true)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.op(test.ra, test.rb))
		})
	}
}

func TestDivide_ZeroResultOnOverflow(t *testing.T) {
	for name, p := range overflowPrimitives {
		for _, ra := range boundaryValues {
			for _, rb := range boundaryValues {
				result := p.op(ra, rb)

				if result.OV && name != "add" && name != "subf" && name != "mullw" && name != "mulld" {
					assert.Zero(t, result.Rt, "%v(%x, %x)", name, ra, rb)
				}
			}
		}
	}
}

func TestDivde_MatchesBigIntegers(t *testing.T) {
	for _, ra := range boundaryValues {
		for _, rb := range boundaryValues {
			if rb == 0 {
				continue
			}

			quotient := new(big.Int).Quo(new(big.Int).Lsh(signed(ra), 64), signed(rb))
			result := Divde(ra, rb)

			assert.Equal(t, !quotient.IsInt64(), result.OV, "divde %x %x", ra, rb)
			if quotient.IsInt64() {
				assert.Equal(t, uint64(quotient.Int64()), result.Rt)
			}

			unsignedQuotient := new(big.Int).Quo(new(big.Int).Lsh(unsigned(ra), 64), unsigned(rb))
			unsignedResult := Divdeu(ra, rb)

			assert.Equal(t, !unsignedQuotient.IsUint64(), unsignedResult.OV, "divdeu %x %x", ra, rb)
			if unsignedQuotient.IsUint64() {
				assert.Equal(t, unsignedQuotient.Uint64(), unsignedResult.Rt)
			}
		}
	}
}

func TestModulo(t *testing.T) {
	tests := []struct {
		name     string
		op       func(ra, rb uint64) uint64
		ra, rb   uint64
		expected uint64
	}{
		{"modsd", Modsd, 7, 3, 1},
		{"modsd negative", Modsd, neg(7), 3, neg(1)},
		{"modsd by zero", Modsd, 7, 0, 0},
		{"modsd min by -1", Modsd, 1 << 63, math.MaxUint64, 0},
		{"modud", Modud, 7, 3, 1},
		{"modud by zero", Modud, 7, 0, 0},
		{"modsw sign extends", Modsw, 0xFFFF_FFF9, 3, math.MaxUint64},
		{"modsw min by -1", Modsw, 0x8000_0000, 0xFFFF_FFFF, 0},
		{"modsw by zero", Modsw, 7, 0, 0},
		{"moduw", Moduw, 0xFFFF_FFFF, 7, 3},
		{"moduw ignores high words", Moduw, 0x1_0000_000A, 3, 1},
		{"moduw by zero", Moduw, 7, 0xFFFF_FFFF_0000_0000, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.op(test.ra, test.rb))
		})
	}
}
