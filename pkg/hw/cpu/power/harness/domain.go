package harness

import (
	"math"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

// Values each input register takes during enumeration
type Domain struct {
	// Values of ra, rb and rc
	Values   []uint64
	Overflow []registers.OverflowFlags
	Carry    []registers.CarryFlags
}

// Boundary values of the 64-bit and 32-bit signed and unsigned ranges, plus values
// with a non trivial high word around the 32-bit boundaries
func DefaultValues() []uint64 {
	return []uint64{
		0,
		1,
		2,
		math.MaxUint64,
		math.MaxUint64 - 1,
		math.MaxInt64,
		math.MaxInt64 - 1,
		1 << 63, // MinInt64
		1<<63 + 1,
		0x1234_5678_0000_0000,
		0x1234_5678_8000_0000,
		0x1234_5678_FFFF_FFFF,
		0x1234_5678_7FFF_FFFF,
	}
}

// Default values plus every combination of overflow and carry flags
func DefaultDomain() Domain {
	return Domain{
		Values:   DefaultValues(),
		Overflow: registers.AllOverflowFlags(),
		Carry:    registers.AllCarryFlags(),
	}
}

// Returns a copy of the domain with a different set of register values
func (d Domain) WithValues(values []uint64) Domain {
	d.Values = values
	return d
}

// Number of values the register takes
func (d Domain) Size(r registers.InputRegister) int {
	switch r {
	case registers.InputRegister_Overflow:
		return len(d.Overflow)
	case registers.InputRegister_Carry:
		return len(d.Carry)
	}

	return len(d.Values)
}

// Number of input combinations for the given registers
func (d Domain) Combinations(regs []registers.InputRegister) int {
	total := 1

	for _, r := range regs {
		total *= d.Size(r)
	}

	return total
}

// Returns a copy of the input with the register set to its i-th domain value
func (d Domain) assign(in operands.InstructionInput, r registers.InputRegister, i int) operands.InstructionInput {
	switch r {
	case registers.InputRegister_Overflow:
		return in.WithOverflow(d.Overflow[i])
	case registers.InputRegister_Carry:
		return in.WithCarry(d.Carry[i])
	}

	return in.WithGpr(r, d.Values[i])
}

// Parses "0x" prefixed hex register values
func ParseValues(texts []string) ([]uint64, error) {
	values := make([]uint64, 0, len(texts))

	for _, text := range texts {
		value, err := utils.ParseHex(text)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}

// Calls visit once per combination of domain values of the given registers, the first register varying slowest.
// The remaining registers of base are kept as they are. Stops at the first error returned by visit
func Enumerate(regs []registers.InputRegister, domain Domain, base operands.InstructionInput, visit func(operands.InstructionInput) error) error {
	if len(regs) == 0 {
		return visit(base)
	}

	for i := 0; i < domain.Size(regs[0]); i++ {
		if err := Enumerate(regs[1:], domain, domain.assign(base, regs[0], i), visit); err != nil {
			return err
		}
	}

	return nil
}
