package registers

import (
	"fmt"

	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

// Logical registers an instruction can read
type InputRegister uint

const (
	InputRegister_Ra InputRegister = iota
	InputRegister_Rb
	InputRegister_Rc
	// XER carry flags
	InputRegister_Carry
	// XER overflow flags
	InputRegister_Overflow

	// Number of input registers
	TOTAL_INPUT_REGISTERS
)

func (r InputRegister) String() string {
	switch r {
	case InputRegister_Ra:
		return "ra"
	case InputRegister_Rb:
		return "rb"
	case InputRegister_Rc:
		return "rc"
	case InputRegister_Carry:
		return "carry"
	case InputRegister_Overflow:
		return "overflow"
	}

	return fmt.Sprintf("InputRegister(%d)", uint(r))
}

// Returns whether the register holds a 64-bit value instead of XER flags
func (r InputRegister) IsGpr() bool {
	return r <= InputRegister_Rc
}

// Logical registers an instruction can write
type OutputRegister uint

const (
	OutputRegister_Rt OutputRegister = iota
	OutputRegister_Carry
	OutputRegister_Overflow
	OutputRegister_CR0
	OutputRegister_CR1
	OutputRegister_CR2
	OutputRegister_CR3
	OutputRegister_CR4
	OutputRegister_CR5
	OutputRegister_CR6
	OutputRegister_CR7

	// Number of output registers
	TOTAL_OUTPUT_REGISTERS
)

// Returns the output register of CR field n
func OutputRegisterCR(field int) OutputRegister {
	if field < 0 || field >= CrFields {
		panic(fmt.Sprintf("condition register field %v out of range [0, %v]", field, CrFields-1))
	}

	return OutputRegister_CR0 + OutputRegister(field)
}

// Returns the CR field number of the register and whether it is a CR field at all
func (r OutputRegister) CRField() (int, bool) {
	if r >= OutputRegister_CR0 && r <= OutputRegister_CR7 {
		return int(r - OutputRegister_CR0), true
	}

	return 0, false
}

func (r OutputRegister) String() string {
	switch r {
	case OutputRegister_Rt:
		return "rt"
	case OutputRegister_Carry:
		return "carry"
	case OutputRegister_Overflow:
		return "overflow"
	}

	if field, isCR := r.CRField(); isCR {
		return fmt.Sprintf("cr%d", field)
	}

	return fmt.Sprintf("OutputRegister(%d)", uint(r))
}

// Formats a register list as "ra, rb, overflow"
func FormatRegisters[R fmt.Stringer](regs []R) string {
	return utils.FormatSlice(regs, ", ")
}
