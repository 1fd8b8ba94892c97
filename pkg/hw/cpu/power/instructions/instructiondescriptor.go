package instructions

import (
	"fmt"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/models"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
)

// Contains all the information about a modeled instruction
type InstructionDescriptor struct {
	Instr Instr
	// Assembly mnemonic
	Mnemonic string
	// Short human readable description of the operation
	Description string
	Family      Family
	// Registers the instruction reads, in enumeration order
	Inputs []registers.InputRegister
	// Registers the instruction writes
	Outputs []registers.OutputRegister
	// Software model
	Model models.Func
	// Hardware reference, nil when unavailable
	Native models.Func
}

// Returns whether a hardware reference is attached
func (d *InstructionDescriptor) HasNative() bool {
	return d.Native != nil
}

// Returns whether the instruction reads the given register
func (d *InstructionDescriptor) Reads(r registers.InputRegister) bool {
	for _, input := range d.Inputs {
		if input == r {
			return true
		}
	}

	return false
}

func (d *InstructionDescriptor) String() string {
	return d.Mnemonic
}

// Returns a one line summary of the instruction: mnemonic, registers and description
func (d *InstructionDescriptor) Documentation() string {
	return fmt.Sprintf("%-9v %-22v -> %-19v %v (%v)",
		d.Mnemonic,
		registers.FormatRegisters(d.Inputs),
		registers.FormatRegisters(d.Outputs),
		d.Description,
		d.Family)
}
