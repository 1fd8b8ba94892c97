package registers

import (
	"fmt"

	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

// XER bit positions, numbered from the most significant bit of the 64-bit register
const (
	XerBit_SO   = 32
	XerBit_OV   = 33
	XerBit_CA   = 34
	XerBit_OV32 = 44
	XerBit_CA32 = 45
)

func xerMask(bit int) uint64 {
	return utils.MsbMask[uint64](bit)
}

// Summary overflow, overflow and 32-bit overflow flags of the XER register
type OverflowFlags struct {
	// Summary overflow. Sticky: once set only an explicit XER write clears it
	SO bool
	// Overflow of the last overflow-recording instruction
	OV bool
	// Overflow of the low 32 bits of the last overflow-recording instruction
	OV32 bool
}

// Decodes the overflow flags from an XER value. Any other bit is ignored
func OverflowFlagsFromXer(xer uint64) OverflowFlags {
	view := utils.CreateBitView(xer)

	return OverflowFlags{
		SO:   view.Test(XerBit_SO),
		OV:   view.Test(XerBit_OV),
		OV32: view.Test(XerBit_OV32),
	}
}

// Encodes the flags into an XER value with all other bits cleared
func (f OverflowFlags) Xer() uint64 {
	return utils.CreateBitView[uint64](0).
		With(XerBit_SO, f.SO).
		With(XerBit_OV, f.OV).
		With(XerBit_OV32, f.OV32).
		Value()
}

// Returns the XER bits owned by the overflow flags
func (OverflowFlags) XerMask() uint64 {
	return xerMask(XerBit_SO) | xerMask(XerBit_OV) | xerMask(XerBit_OV32)
}

func (f OverflowFlags) String() string {
	return fmt.Sprintf("{so: %v, ov: %v, ov32: %v}", f.SO, f.OV, f.OV32)
}

// Carry and 32-bit carry flags of the XER register
type CarryFlags struct {
	CA   bool
	CA32 bool
}

// Decodes the carry flags from an XER value. Any other bit is ignored
func CarryFlagsFromXer(xer uint64) CarryFlags {
	view := utils.CreateBitView(xer)

	return CarryFlags{
		CA:   view.Test(XerBit_CA),
		CA32: view.Test(XerBit_CA32),
	}
}

// Encodes the flags into an XER value with all other bits cleared
func (f CarryFlags) Xer() uint64 {
	return utils.CreateBitView[uint64](0).
		With(XerBit_CA, f.CA).
		With(XerBit_CA32, f.CA32).
		Value()
}

// Returns the XER bits owned by the carry flags
func (CarryFlags) XerMask() uint64 {
	return xerMask(XerBit_CA) | xerMask(XerBit_CA32)
}

func (f CarryFlags) String() string {
	return fmt.Sprintf("{ca: %v, ca32: %v}", f.CA, f.CA32)
}

// Returns every combination of overflow flags, SO varying slowest
func AllOverflowFlags() []OverflowFlags {
	result := make([]OverflowFlags, 0, 8)

	for _, so := range []bool{false, true} {
		for _, ov := range []bool{false, true} {
			for _, ov32 := range []bool{false, true} {
				result = append(result, OverflowFlags{SO: so, OV: ov, OV32: ov32})
			}
		}
	}

	return result
}

// Returns every combination of carry flags, CA varying slowest
func AllCarryFlags() []CarryFlags {
	result := make([]CarryFlags, 0, 4)

	for _, ca := range []bool{false, true} {
		for _, ca32 := range []bool{false, true} {
			result = append(result, CarryFlags{CA: ca, CA32: ca32})
		}
	}

	return result
}
