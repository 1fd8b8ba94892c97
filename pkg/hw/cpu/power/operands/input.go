package operands

import (
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

// Values supplied to an instruction. A nil field was not supplied
type InstructionInput struct {
	Ra       *uint64
	Rb       *uint64
	Rc       *uint64
	Carry    *registers.CarryFlags
	Overflow *registers.OverflowFlags
}

func ptr[T any](value T) *T {
	return &value
}

func requireInput[T any](value *T, r registers.InputRegister) (T, error) {
	if value == nil {
		var zero T
		return zero, missing(r)
	}

	return *value, nil
}

func (in InstructionInput) RequireRa() (uint64, error) {
	return requireInput(in.Ra, registers.InputRegister_Ra)
}

func (in InstructionInput) RequireRb() (uint64, error) {
	return requireInput(in.Rb, registers.InputRegister_Rb)
}

func (in InstructionInput) RequireRc() (uint64, error) {
	return requireInput(in.Rc, registers.InputRegister_Rc)
}

func (in InstructionInput) RequireCarry() (registers.CarryFlags, error) {
	return requireInput(in.Carry, registers.InputRegister_Carry)
}

func (in InstructionInput) RequireOverflow() (registers.OverflowFlags, error) {
	return requireInput(in.Overflow, registers.InputRegister_Overflow)
}

// Returns a copy of the input with ra set
func (in InstructionInput) WithRa(value uint64) InstructionInput {
	in.Ra = ptr(value)
	return in
}

// Returns a copy of the input with rb set
func (in InstructionInput) WithRb(value uint64) InstructionInput {
	in.Rb = ptr(value)
	return in
}

// Returns a copy of the input with rc set
func (in InstructionInput) WithRc(value uint64) InstructionInput {
	in.Rc = ptr(value)
	return in
}

// Returns a copy of the input with the carry flags set
func (in InstructionInput) WithCarry(value registers.CarryFlags) InstructionInput {
	in.Carry = ptr(value)
	return in
}

// Returns a copy of the input with the overflow flags set
func (in InstructionInput) WithOverflow(value registers.OverflowFlags) InstructionInput {
	in.Overflow = ptr(value)
	return in
}

// Returns a copy of the input with a general purpose register set
func (in InstructionInput) WithGpr(r registers.InputRegister, value uint64) InstructionInput {
	switch r {
	case registers.InputRegister_Ra:
		return in.WithRa(value)
	case registers.InputRegister_Rb:
		return in.WithRb(value)
	case registers.InputRegister_Rc:
		return in.WithRc(value)
	}

	panic("not a general purpose register: " + r.String())
}

// Returns the registers present in the input, in register order
func (in InstructionInput) Supplied() []registers.InputRegister {
	present := []bool{in.Ra != nil, in.Rb != nil, in.Rc != nil, in.Carry != nil, in.Overflow != nil}

	return utils.Filter(
		utils.Iota(int(registers.TOTAL_INPUT_REGISTERS), func(i int) registers.InputRegister { return registers.InputRegister(i) }),
		func(r registers.InputRegister) bool { return present[r] },
	)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func (in InstructionInput) Equal(other InstructionInput) bool {
	return equalPtr(in.Ra, other.Ra) &&
		equalPtr(in.Rb, other.Rb) &&
		equalPtr(in.Rc, other.Rc) &&
		equalPtr(in.Carry, other.Carry) &&
		equalPtr(in.Overflow, other.Overflow)
}

func (in InstructionInput) String() string {
	var fields []string

	for _, gpr := range []struct {
		name  string
		value *uint64
	}{{"ra", in.Ra}, {"rb", in.Rb}, {"rc", in.Rc}} {
		if gpr.value != nil {
			fields = append(fields, gpr.name+": "+utils.FormatHex(*gpr.value))
		}
	}

	if in.Carry != nil {
		fields = append(fields, "carry: "+in.Carry.String())
	}

	if in.Overflow != nil {
		fields = append(fields, "overflow: "+in.Overflow.String())
	}

	return "{" + strings.Join(fields, ", ") + "}"
}
