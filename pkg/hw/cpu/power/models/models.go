// Package models implements exact software models of the POWER fixed-point
// arithmetic instructions. Each instruction model is a Func built by composing
// an arithmetic primitive with one of the variant combinators.
package models

import (
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
)

// Model of an instruction: consumes the declared inputs and produces the declared outputs
type Func func(in operands.InstructionInput) (operands.InstructionOutput, error)

// Result of an overflow-reporting arithmetic primitive
type OverflowResult struct {
	Rt   uint64
	OV   bool
	OV32 bool
}

// Builds the result of a primitive that reports the same overflow for 64 and 32 bits
func overflowed(rt uint64, ov bool) OverflowResult {
	return OverflowResult{Rt: rt, OV: ov, OV32: ov}
}

// Arithmetic primitive reporting overflow, reading ra and rb
type OverflowPrimitive struct {
	op func(ra, rb uint64) OverflowResult
}

// Wraps a two operand overflow-reporting operation
func BinaryOverflow(op func(ra, rb uint64) OverflowResult) OverflowPrimitive {
	return OverflowPrimitive{op: op}
}

// Returns the general purpose registers the primitive reads
func (p OverflowPrimitive) Operands() []registers.InputRegister {
	return []registers.InputRegister{registers.InputRegister_Ra, registers.InputRegister_Rb}
}

func (p OverflowPrimitive) Eval(in operands.InstructionInput) (OverflowResult, error) {
	ra, err := in.RequireRa()
	if err != nil {
		return OverflowResult{}, err
	}

	rb, err := in.RequireRb()
	if err != nil {
		return OverflowResult{}, err
	}

	return p.op(ra, rb), nil
}

// Arithmetic primitive producing only a result
type Primitive struct {
	operands []registers.InputRegister
	eval     func(in operands.InstructionInput) (uint64, error)
}

// Wraps a two operand operation reading ra and rb
func Binary(op func(ra, rb uint64) uint64) Primitive {
	return Primitive{
		operands: []registers.InputRegister{registers.InputRegister_Ra, registers.InputRegister_Rb},
		eval: func(in operands.InstructionInput) (uint64, error) {
			ra, err := in.RequireRa()
			if err != nil {
				return 0, err
			}

			rb, err := in.RequireRb()
			if err != nil {
				return 0, err
			}

			return op(ra, rb), nil
		},
	}
}

// Wraps a three operand operation reading ra, rb and rc
func Ternary(op func(ra, rb, rc uint64) uint64) Primitive {
	return Primitive{
		operands: []registers.InputRegister{registers.InputRegister_Ra, registers.InputRegister_Rb, registers.InputRegister_Rc},
		eval: func(in operands.InstructionInput) (uint64, error) {
			ra, err := in.RequireRa()
			if err != nil {
				return 0, err
			}

			rb, err := in.RequireRb()
			if err != nil {
				return 0, err
			}

			rc, err := in.RequireRc()
			if err != nil {
				return 0, err
			}

			return op(ra, rb, rc), nil
		},
	}
}

// Returns the general purpose registers the primitive reads
func (p Primitive) Operands() []registers.InputRegister {
	return p.operands
}

func (p Primitive) Eval(in operands.InstructionInput) (uint64, error) {
	return p.eval(in)
}

// Width of the signed comparison against zero used to derive CR0
type CompareWidth uint

const (
	CompareWidth_64 CompareWidth = 64
	CompareWidth_32 CompareWidth = 32
)

// Interprets the low width bits of rt as a signed integer
func (w CompareWidth) Signed(rt uint64) int64 {
	if w == CompareWidth_32 {
		return int64(int32(rt))
	}

	return int64(rt)
}
