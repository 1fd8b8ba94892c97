package operands

import (
	"fmt"
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

// Values produced by an instruction. Only the fields the instruction writes are set
type InstructionOutput struct {
	Rt       *uint64
	Overflow *registers.OverflowFlags
	Carry    *registers.CarryFlags
	CR       [registers.CrFields]*registers.ConditionRegister
}

// Returns a copy of the output with rt set
func (out InstructionOutput) WithRt(value uint64) InstructionOutput {
	out.Rt = ptr(value)
	return out
}

// Returns a copy of the output with the overflow flags set
func (out InstructionOutput) WithOverflow(value registers.OverflowFlags) InstructionOutput {
	out.Overflow = ptr(value)
	return out
}

// Returns a copy of the output with the carry flags set
func (out InstructionOutput) WithCarry(value registers.CarryFlags) InstructionOutput {
	out.Carry = ptr(value)
	return out
}

// Returns a copy of the output with CR field n set
func (out InstructionOutput) WithCR(field int, value registers.ConditionRegister) InstructionOutput {
	out.CR[field] = ptr(value)
	return out
}

// Returns a copy of the output with CR0 set
func (out InstructionOutput) WithCR0(value registers.ConditionRegister) InstructionOutput {
	return out.WithCR(0, value)
}

// Returns the registers the output holds values for, in register order
func (out InstructionOutput) Produced() []registers.OutputRegister {
	var produced []registers.OutputRegister

	if out.Rt != nil {
		produced = append(produced, registers.OutputRegister_Rt)
	}

	if out.Carry != nil {
		produced = append(produced, registers.OutputRegister_Carry)
	}

	if out.Overflow != nil {
		produced = append(produced, registers.OutputRegister_Overflow)
	}

	for i, cr := range out.CR {
		if cr != nil {
			produced = append(produced, registers.OutputRegisterCR(i))
		}
	}

	return produced
}

// Structural equality: both outputs set the same fields to the same values
func (out InstructionOutput) Equal(other InstructionOutput) bool {
	if !equalPtr(out.Rt, other.Rt) || !equalPtr(out.Overflow, other.Overflow) || !equalPtr(out.Carry, other.Carry) {
		return false
	}

	for i := range out.CR {
		if !equalPtr(out.CR[i], other.CR[i]) {
			return false
		}
	}

	return true
}

func (out InstructionOutput) String() string {
	var fields []string

	if out.Rt != nil {
		fields = append(fields, "rt: "+utils.FormatHex(*out.Rt))
	}

	if out.Overflow != nil {
		fields = append(fields, "overflow: "+out.Overflow.String())
	}

	if out.Carry != nil {
		fields = append(fields, "carry: "+out.Carry.String())
	}

	for i, cr := range out.CR {
		if cr != nil {
			fields = append(fields, fmt.Sprintf("cr%d: %v", i, cr))
		}
	}

	return "{" + strings.Join(fields, ", ") + "}"
}
