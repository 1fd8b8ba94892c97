package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

const xerOperand = "xer"

// Operand values as typed by the user, keyed by operand name (ra, rb, rc or xer)
type operandTexts map[string]string

var gprOperands = []registers.InputRegister{
	registers.InputRegister_Ra,
	registers.InputRegister_Rb,
	registers.InputRegister_Rc,
}

// Builds the input of an instruction from hex operand texts. Registers the instruction
// reads but were not given are left unsupplied so the model reports them missing.
func buildInput(instr *instructions.InstructionDescriptor, texts operandTexts) (operands.InstructionInput, error) {
	var in operands.InstructionInput

	for _, r := range gprOperands {
		text, ok := texts[r.String()]
		if !ok {
			continue
		}

		if !instr.Reads(r) {
			return in, fmt.Errorf("%v does not read %v", instr.Mnemonic, r)
		}

		value, err := utils.ParseHex(text)
		if err != nil {
			return in, fmt.Errorf("%v: %w", r, err)
		}

		in = in.WithGpr(r, value)
	}

	if text, ok := texts[xerOperand]; ok {
		xer, err := utils.ParseHex(text)
		if err != nil {
			return in, fmt.Errorf("%v: %w", xerOperand, err)
		}

		if instr.Reads(registers.InputRegister_Overflow) {
			in = in.WithOverflow(registers.OverflowFlagsFromXer(xer))
		}
		if instr.Reads(registers.InputRegister_Carry) {
			in = in.WithCarry(registers.CarryFlagsFromXer(xer))
		}
	}

	return in, nil
}

// Parses a "mnemonic [ra=0x..] [rb=0x..] [rc=0x..] [xer=0x..]" line
func parseCommand(line string) (string, operandTexts, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("empty command")
	}

	texts := operandTexts{}

	for _, field := range fields[1:] {
		name, value, ok := strings.Cut(field, "=")
		if !ok {
			return "", nil, fmt.Errorf("operand '%v' is not in name=value form", field)
		}

		name = strings.ToLower(name)
		if !isOperandName(name) {
			return "", nil, fmt.Errorf("unknown operand '%v', expected one of ra, rb, rc, xer", name)
		}

		if _, duplicated := texts[name]; duplicated {
			return "", nil, fmt.Errorf("operand '%v' given twice", name)
		}

		texts[name] = value
	}

	return fields[0], texts, nil
}

// Names of the operands a command can set, in flag order
var operandNames = append(utils.Map(gprOperands, registers.InputRegister.String), xerOperand)

func isOperandName(name string) bool {
	return slices.Contains(operandNames, name)
}

// Evaluates the model, and the hardware reference if available, on one input
func evaluate(instr *instructions.InstructionDescriptor, in operands.InstructionInput) (report.TestCase, error) {
	model, err := instr.Model(in)
	if err != nil {
		return report.TestCase{}, fmt.Errorf("%v model: %w", instr.Mnemonic, err)
	}

	var nativeOutputs *operands.InstructionOutput

	if instr.HasNative() {
		out, err := instr.Native(in)
		if err != nil {
			return report.TestCase{}, fmt.Errorf("%v native: %w", instr.Mnemonic, err)
		}

		nativeOutputs = &out
	}

	return report.NewTestCase(instr.Instr, in, nativeOutputs, model), nil
}

// Evaluates a command line and renders the resulting record
func evalCommand(registry *instructions.InstructionsDescriptor, line string, format report.Format) (string, error) {
	mnemonic, texts, err := parseCommand(line)
	if err != nil {
		return "", err
	}

	instr, err := registry.Lookup(mnemonic)
	if err != nil {
		return "", err
	}

	in, err := buildInput(instr, texts)
	if err != nil {
		return "", err
	}

	testCase, err := evaluate(instr, in)
	if err != nil {
		return "", err
	}

	return report.MarshalTestCase(testCase, format)
}
