package models

import (
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
)

// O variant: requires the incoming overflow flags and records the overflow of the primitive.
// SO is sticky, it is set if it was already set or the primitive overflowed.
func WithOverflow(p OverflowPrimitive) Func {
	return func(in operands.InstructionInput) (operands.InstructionOutput, error) {
		incoming, err := in.RequireOverflow()
		if err != nil {
			return operands.InstructionOutput{}, err
		}

		result, err := p.Eval(in)
		if err != nil {
			return operands.InstructionOutput{}, err
		}

		return operands.InstructionOutput{}.
			WithRt(result.Rt).
			WithOverflow(registers.OverflowFlags{
				SO:   incoming.SO || result.OV,
				OV:   result.OV,
				OV32: result.OV32,
			}), nil
	}
}

// Plain variant: runs the O variant from a cleared overflow state and emits only rt
func Plain(p OverflowPrimitive) Func {
	o := WithOverflow(p)

	return func(in operands.InstructionInput) (operands.InstructionOutput, error) {
		out, err := o(in.WithOverflow(registers.OverflowFlags{}))
		if err != nil {
			return operands.InstructionOutput{}, err
		}

		return operands.InstructionOutput{Rt: out.Rt}, nil
	}
}

// O-dot variant: the O variant plus CR0 derived from rt and the resulting SO
func WithOverflowAndCR0(p OverflowPrimitive, width CompareWidth) Func {
	o := WithOverflow(p)

	return func(in operands.InstructionInput) (operands.InstructionOutput, error) {
		out, err := o(in)
		if err != nil {
			return operands.InstructionOutput{}, err
		}

		return out.WithCR0(registers.ConditionRegisterFromSigned(width.Signed(*out.Rt), out.Overflow.SO)), nil
	}
}

// Dot variant: the O-dot variant without the overflow output
func WithCR0(p OverflowPrimitive, width CompareWidth) Func {
	oDot := WithOverflowAndCR0(p, width)

	return func(in operands.InstructionInput) (operands.InstructionOutput, error) {
		out, err := oDot(in)
		if err != nil {
			return operands.InstructionOutput{}, err
		}

		out.Overflow = nil
		return out, nil
	}
}

// Instruction producing only rt
func Base(p Primitive) Func {
	return func(in operands.InstructionInput) (operands.InstructionOutput, error) {
		rt, err := p.Eval(in)
		if err != nil {
			return operands.InstructionOutput{}, err
		}

		return operands.InstructionOutput{}.WithRt(rt), nil
	}
}

// Record form of an instruction that does not track overflow: CR0.SO is copied from the incoming SO
func BaseWithCR0(p Primitive, width CompareWidth) Func {
	return func(in operands.InstructionInput) (operands.InstructionOutput, error) {
		incoming, err := in.RequireOverflow()
		if err != nil {
			return operands.InstructionOutput{}, err
		}

		rt, err := p.Eval(in)
		if err != nil {
			return operands.InstructionOutput{}, err
		}

		return operands.InstructionOutput{}.
			WithRt(rt).
			WithCR0(registers.ConditionRegisterFromSigned(width.Signed(rt), incoming.SO)), nil
	}
}
