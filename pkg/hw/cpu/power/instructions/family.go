package instructions

import (
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/models"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
)

// Variant of an instruction family, which decides the model combinator and the extra registers it uses
type Family uint

const (
	// Result only, overflow is neither read nor written
	Family_Plain Family = iota
	// Records overflow in XER (O form)
	Family_Overflow
	// Records CR0 (record form)
	Family_CR0
	// Records both overflow and CR0
	Family_OverflowCR0
	// Result only, for instructions without overflow tracking
	Family_Base
	// Records CR0 with SO copied from the incoming XER
	Family_BaseCR0

	TOTAL_FAMILIES
)

func (f Family) String() string {
	switch f {
	case Family_Plain:
		return "plain"
	case Family_Overflow:
		return "overflow"
	case Family_CR0:
		return "cr0"
	case Family_OverflowCR0:
		return "overflow+cr0"
	case Family_Base:
		return "base"
	case Family_BaseCR0:
		return "base+cr0"
	}

	panic("unreachable")
}

// Returns whether the family reads the incoming overflow flags
func (f Family) ReadsOverflow() bool {
	return f != Family_Plain && f != Family_Base
}

// Returns the registers instructions of the family write
func (f Family) Outputs() []registers.OutputRegister {
	switch f {
	case Family_Overflow:
		return []registers.OutputRegister{registers.OutputRegister_Rt, registers.OutputRegister_Overflow}
	case Family_CR0, Family_BaseCR0:
		return []registers.OutputRegister{registers.OutputRegister_Rt, registers.OutputRegister_CR0}
	case Family_OverflowCR0:
		return []registers.OutputRegister{registers.OutputRegister_Rt, registers.OutputRegister_Overflow, registers.OutputRegister_CR0}
	}

	return []registers.OutputRegister{registers.OutputRegister_Rt}
}

func familyInputs(f Family, operands []registers.InputRegister) []registers.InputRegister {
	inputs := append([]registers.InputRegister{}, operands...)

	if f.ReadsOverflow() {
		inputs = append(inputs, registers.InputRegister_Overflow)
	}

	return inputs
}

func familyInstruction(instr Instr, description string, f Family, operands []registers.InputRegister, model models.Func) *InstructionDescriptor {
	return &InstructionDescriptor{
		Instr:       instr,
		Description: description,
		Family:      f,
		Inputs:      familyInputs(f, operands),
		Outputs:     f.Outputs(),
		Model:       model,
	}
}

// Expands an overflow-reporting primitive into its plain, O, record and O-record instructions
func overflowFamily(plain, o, dot, oDot Instr, description string, p models.OverflowPrimitive) []*InstructionDescriptor {
	return []*InstructionDescriptor{
		familyInstruction(plain, description, Family_Plain, p.Operands(), models.Plain(p)),
		familyInstruction(o, description, Family_Overflow, p.Operands(), models.WithOverflow(p)),
		familyInstruction(dot, description, Family_CR0, p.Operands(), models.WithCR0(p, models.CompareWidth_64)),
		familyInstruction(oDot, description, Family_OverflowCR0, p.Operands(), models.WithOverflowAndCR0(p, models.CompareWidth_64)),
	}
}

// Expands a primitive without overflow tracking into its plain and record instructions
func crFamily(plain, dot Instr, description string, p models.Primitive, width models.CompareWidth) []*InstructionDescriptor {
	return []*InstructionDescriptor{
		familyInstruction(plain, description, Family_Base, p.Operands(), models.Base(p)),
		familyInstruction(dot, description, Family_BaseCR0, p.Operands(), models.BaseWithCR0(p, width)),
	}
}

// Instruction with a single form
func single(instr Instr, description string, p models.Primitive) []*InstructionDescriptor {
	return []*InstructionDescriptor{
		familyInstruction(instr, description, Family_Base, p.Operands(), models.Base(p)),
	}
}
