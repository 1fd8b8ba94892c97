package instructions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/models"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

// Contains information about all modeled instructions, in Instr order
type InstructionsDescriptor struct {
	instructions []*InstructionDescriptor
}

// Returns all modeled instructions, in Instr order
func (d *InstructionsDescriptor) AllInstructions() []*InstructionDescriptor {
	return append([]*InstructionDescriptor{}, d.instructions...)
}

var ErrInstructionNotImplemented = errors.New("instruction not implemented")

// Returns the descriptor of the given instruction
func (d *InstructionsDescriptor) Instruction(instr Instr) (*InstructionDescriptor, error) {
	if int(instr) < len(d.instructions) {
		return d.instructions[instr], nil
	}

	return nil, utils.MakeError(ErrInstructionNotImplemented, "no model for instruction '%v'", instr)
}

// Returns the descriptor of the instruction with the given mnemonic
func (d *InstructionsDescriptor) Lookup(name string) (*InstructionDescriptor, error) {
	instr, err := ParseInstr(name)
	if err != nil {
		return nil, err
	}

	return d.Instruction(instr)
}

// Returns the descriptors of the named instructions in Instr order, or all of them if no name is given
func (d *InstructionsDescriptor) Select(names ...string) ([]*InstructionDescriptor, error) {
	if len(names) == 0 {
		return d.AllInstructions(), nil
	}

	selected := make([]bool, len(d.instructions))

	for _, name := range names {
		instr, err := ParseInstr(name)
		if err != nil {
			return nil, err
		}

		if int(instr) >= len(d.instructions) {
			return nil, utils.MakeError(ErrInstructionNotImplemented, "no model for instruction '%v'", instr)
		}

		selected[instr] = true
	}

	return utils.Filter(d.instructions, func(instr *InstructionDescriptor) bool {
		return selected[instr.Instr]
	}), nil
}

// Returns a copy of the descriptor with the given hardware references attached. The receiver is left untouched
func (d *InstructionsDescriptor) WithNative(natives map[Instr]models.Func) InstructionsDescriptor {
	return InstructionsDescriptor{
		instructions: utils.Map(d.instructions, func(instr *InstructionDescriptor) *InstructionDescriptor {
			copied := *instr
			copied.Native = natives[instr.Instr]
			return &copied
		}),
	}
}

// Returns the number of instructions with a hardware reference attached
func (d *InstructionsDescriptor) TotalNative() int {
	return len(utils.Filter(d.instructions, (*InstructionDescriptor).HasNative))
}

// Returns a documentation listing of all the instructions
func (d *InstructionsDescriptor) DocString() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%v instructions modeled:\n\n", len(d.instructions)))

	for _, instr := range d.instructions {
		builder.WriteString("  ")
		builder.WriteString(instr.Documentation())
		builder.WriteString("\n")
	}

	return builder.String()
}

// Initializes an instructions descriptor, panics if an instruction is missing or described twice
func NewInstructionsDescriptor(instructions []*InstructionDescriptor) InstructionsDescriptor {
	ordered := make([]*InstructionDescriptor, TOTAL_INSTRS)

	for _, instr := range instructions {
		if instr.Instr >= TOTAL_INSTRS {
			panic(fmt.Errorf("instruction descriptor for unknown instruction %d", uint(instr.Instr)))
		}

		if ordered[instr.Instr] != nil {
			panic(fmt.Errorf("instruction '%v' described twice", Instrs.Mnemonic(instr.Instr)))
		}

		instr.Mnemonic = Instrs.Mnemonic(instr.Instr)
		ordered[instr.Instr] = instr
	}

	for i, instr := range ordered {
		if instr == nil {
			panic(fmt.Errorf("missing descriptor for instruction '%v'", Instrs.Mnemonic(Instr(i))))
		}
	}

	return InstructionsDescriptor{
		instructions: ordered,
	}
}
