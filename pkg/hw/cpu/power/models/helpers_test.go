package models

import (
	"math"
	"math/big"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
)

var boundaryValues = []uint64{
	0,
	1,
	2,
	math.MaxUint64,
	math.MaxUint64 - 1,
	math.MaxInt64,
	math.MaxInt64 - 1,
	1 << 63,
	1<<63 + 1,
	0x1234_5678_0000_0000,
	0x1234_5678_8000_0000,
	0x1234_5678_FFFF_FFFF,
	0x1234_5678_7FFF_FFFF,
}

var overflowPrimitives = map[string]OverflowPrimitive{
	"add":    BinaryOverflow(Add),
	"subf":   BinaryOverflow(Subf),
	"mullw":  BinaryOverflow(Mullw),
	"mulld":  BinaryOverflow(Mulld),
	"divd":   BinaryOverflow(Divd),
	"divdu":  BinaryOverflow(Divdu),
	"divde":  BinaryOverflow(Divde),
	"divdeu": BinaryOverflow(Divdeu),
	"divw":   BinaryOverflow(Divw),
	"divwu":  BinaryOverflow(Divwu),
	"divwe":  BinaryOverflow(Divwe),
	"divweu": BinaryOverflow(Divweu),
}

func input(ra, rb uint64, overflow registers.OverflowFlags) operands.InstructionInput {
	return operands.InstructionInput{}.WithRa(ra).WithRb(rb).WithOverflow(overflow)
}

func signed(value uint64) *big.Int {
	return big.NewInt(int64(value))
}

func unsigned(value uint64) *big.Int {
	return new(big.Int).SetUint64(value)
}

// Low 64 bits of a big integer, two's complement
func low64(value *big.Int) uint64 {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
	return new(big.Int).And(value, mask).Uint64()
}

// Bits 64..127 of a big integer, two's complement
func high64(value *big.Int) uint64 {
	return low64(new(big.Int).Rsh(value, 64))
}
