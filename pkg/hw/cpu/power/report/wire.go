package report

import (
	"fmt"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
)

// 64-bit value persisted as a "0x" prefixed uppercase hex string
type hexU64 uint64

func (h hexU64) String() string {
	return utils.FormatHex(uint64(h))
}

func (h hexU64) MarshalText() ([]byte, error) {
	return []byte(utils.FormatHex(uint64(h))), nil
}

func (h *hexU64) UnmarshalText(text []byte) error {
	value, err := utils.ParseHex(string(text))
	if err != nil {
		return err
	}

	*h = hexU64(value)
	return nil
}

func toHex(value *uint64) *hexU64 {
	if value == nil {
		return nil
	}

	h := hexU64(*value)
	return &h
}

func fromHex(value *hexU64) *uint64 {
	if value == nil {
		return nil
	}

	v := uint64(*value)
	return &v
}

func boolPtr(value bool) *bool {
	return &value
}

type wireConditionRegister struct {
	LT *bool `json:"lt" yaml:"lt"`
	GT *bool `json:"gt" yaml:"gt"`
	EQ *bool `json:"eq" yaml:"eq"`
	SO *bool `json:"so" yaml:"so"`
}

// Overflow and carry flags, inlined into inputs and outputs records
type wireFlags struct {
	SO   *bool `json:"so,omitempty" yaml:"so,omitempty"`
	OV   *bool `json:"ov,omitempty" yaml:"ov,omitempty"`
	OV32 *bool `json:"ov32,omitempty" yaml:"ov32,omitempty"`
	CA   *bool `json:"ca,omitempty" yaml:"ca,omitempty"`
	CA32 *bool `json:"ca32,omitempty" yaml:"ca32,omitempty"`
}

type wireOutput struct {
	Rt        *hexU64 `json:"rt,omitempty" yaml:"rt,omitempty"`
	wireFlags `yaml:",inline"`
	CR0       *wireConditionRegister `json:"cr0,omitempty" yaml:"cr0,omitempty"`
	CR1       *wireConditionRegister `json:"cr1,omitempty" yaml:"cr1,omitempty"`
	CR2       *wireConditionRegister `json:"cr2,omitempty" yaml:"cr2,omitempty"`
	CR3       *wireConditionRegister `json:"cr3,omitempty" yaml:"cr3,omitempty"`
	CR4       *wireConditionRegister `json:"cr4,omitempty" yaml:"cr4,omitempty"`
	CR5       *wireConditionRegister `json:"cr5,omitempty" yaml:"cr5,omitempty"`
	CR6       *wireConditionRegister `json:"cr6,omitempty" yaml:"cr6,omitempty"`
	CR7       *wireConditionRegister `json:"cr7,omitempty" yaml:"cr7,omitempty"`
}

func (o *wireOutput) crFields() [registers.CrFields]**wireConditionRegister {
	return [registers.CrFields]**wireConditionRegister{&o.CR0, &o.CR1, &o.CR2, &o.CR3, &o.CR4, &o.CR5, &o.CR6, &o.CR7}
}

type wireTestCase struct {
	Instr         *instructions.Instr `json:"instr" yaml:"instr"`
	Ra            *hexU64             `json:"ra,omitempty" yaml:"ra,omitempty"`
	Rb            *hexU64             `json:"rb,omitempty" yaml:"rb,omitempty"`
	Rc            *hexU64             `json:"rc,omitempty" yaml:"rc,omitempty"`
	wireFlags     `yaml:",inline"`
	NativeOutputs *wireOutput `json:"native_outputs,omitempty" yaml:"native_outputs,omitempty"`
	ModelOutputs  *wireOutput `json:"model_outputs" yaml:"model_outputs"`
	ModelMismatch bool        `json:"model_mismatch,omitempty" yaml:"model_mismatch,omitempty"`
}

type wireReport struct {
	TestCases        []wireTestCase `json:"test_cases" yaml:"test_cases"`
	AnyModelMismatch bool           `json:"any_model_mismatch" yaml:"any_model_mismatch"`
}

func toWireFlags(overflow *registers.OverflowFlags, carry *registers.CarryFlags) wireFlags {
	var flags wireFlags

	if overflow != nil {
		flags.SO = boolPtr(overflow.SO)
		flags.OV = boolPtr(overflow.OV)
		flags.OV32 = boolPtr(overflow.OV32)
	}

	if carry != nil {
		flags.CA = boolPtr(carry.CA)
		flags.CA32 = boolPtr(carry.CA32)
	}

	return flags
}

// Returns whether all the flags are present, or none of them. Errors on partial groups
func flagGroup(name string, flags ...*bool) (bool, error) {
	present := 0

	for _, flag := range flags {
		if flag != nil {
			present++
		}
	}

	if present != 0 && present != len(flags) {
		return false, utils.MakeError(ErrMalformedReport, "incomplete %v flags (%v of %v present)", name, present, len(flags))
	}

	return present != 0, nil
}

func (f wireFlags) decode() (*registers.OverflowFlags, *registers.CarryFlags, error) {
	var (
		overflow *registers.OverflowFlags
		carry    *registers.CarryFlags
	)

	hasOverflow, err := flagGroup("overflow (so, ov, ov32)", f.SO, f.OV, f.OV32)
	if err != nil {
		return nil, nil, err
	}

	if hasOverflow {
		overflow = &registers.OverflowFlags{SO: *f.SO, OV: *f.OV, OV32: *f.OV32}
	}

	hasCarry, err := flagGroup("carry (ca, ca32)", f.CA, f.CA32)
	if err != nil {
		return nil, nil, err
	}

	if hasCarry {
		carry = &registers.CarryFlags{CA: *f.CA, CA32: *f.CA32}
	}

	return overflow, carry, nil
}

func toWireOutput(out operands.InstructionOutput) *wireOutput {
	wire := &wireOutput{
		Rt:        toHex(out.Rt),
		wireFlags: toWireFlags(out.Overflow, out.Carry),
	}

	fields := wire.crFields()
	for i, cr := range out.CR {
		if cr != nil {
			*fields[i] = &wireConditionRegister{
				LT: boolPtr(cr.LT),
				GT: boolPtr(cr.GT),
				EQ: boolPtr(cr.EQ),
				SO: boolPtr(cr.SO),
			}
		}
	}

	return wire
}

func (o *wireOutput) decode() (operands.InstructionOutput, error) {
	overflow, carry, err := o.wireFlags.decode()
	if err != nil {
		return operands.InstructionOutput{}, err
	}

	out := operands.InstructionOutput{
		Rt:       fromHex(o.Rt),
		Overflow: overflow,
		Carry:    carry,
	}

	for i, field := range o.crFields() {
		cr := *field
		if cr == nil {
			continue
		}

		if _, err := flagGroup(registers.OutputRegisterCR(i).String()+" (lt, gt, eq, so)", cr.LT, cr.GT, cr.EQ, cr.SO); err != nil {
			return operands.InstructionOutput{}, err
		}

		if cr.LT == nil {
			return operands.InstructionOutput{}, utils.MakeError(ErrMalformedReport, "empty %v record", registers.OutputRegisterCR(i))
		}

		out = out.WithCR(i, registers.ConditionRegister{LT: *cr.LT, GT: *cr.GT, EQ: *cr.EQ, SO: *cr.SO})
	}

	return out, nil
}

func toWireTestCase(testCase TestCase) wireTestCase {
	instr := testCase.Instr

	wire := wireTestCase{
		Instr:         &instr,
		Ra:            toHex(testCase.Inputs.Ra),
		Rb:            toHex(testCase.Inputs.Rb),
		Rc:            toHex(testCase.Inputs.Rc),
		wireFlags:     toWireFlags(testCase.Inputs.Overflow, testCase.Inputs.Carry),
		ModelOutputs:  toWireOutput(testCase.ModelOutputs),
		ModelMismatch: testCase.ModelMismatch,
	}

	if testCase.NativeOutputs != nil {
		wire.NativeOutputs = toWireOutput(*testCase.NativeOutputs)
	}

	return wire
}

func (c *wireTestCase) decode() (TestCase, error) {
	if c.Instr == nil {
		return TestCase{}, utils.MakeError(ErrMalformedReport, "missing instr")
	}

	if c.ModelOutputs == nil {
		return TestCase{}, utils.MakeError(ErrMalformedReport, "missing model_outputs")
	}

	overflow, carry, err := c.wireFlags.decode()
	if err != nil {
		return TestCase{}, err
	}

	model, err := c.ModelOutputs.decode()
	if err != nil {
		return TestCase{}, fmt.Errorf("model_outputs: %w", err)
	}

	var native *operands.InstructionOutput

	if c.NativeOutputs != nil {
		decoded, err := c.NativeOutputs.decode()
		if err != nil {
			return TestCase{}, fmt.Errorf("native_outputs: %w", err)
		}

		native = &decoded
	}

	testCase := NewTestCase(*c.Instr, operands.InstructionInput{
		Ra:       fromHex(c.Ra),
		Rb:       fromHex(c.Rb),
		Rc:       fromHex(c.Rc),
		Overflow: overflow,
		Carry:    carry,
	}, native, model)

	if testCase.ModelMismatch != c.ModelMismatch {
		return TestCase{}, utils.MakeError(ErrMalformedReport, "model_mismatch is %v but the outputs say %v", c.ModelMismatch, testCase.ModelMismatch)
	}

	return testCase, nil
}

func toWireReport(r *Report) wireReport {
	return wireReport{
		TestCases:        utils.Map(r.TestCases, toWireTestCase),
		AnyModelMismatch: r.AnyModelMismatch,
	}
}

func (w *wireReport) decode() (*Report, error) {
	testCases := make([]TestCase, len(w.TestCases))

	for i := range w.TestCases {
		testCase, err := w.TestCases[i].decode()
		if err != nil {
			return nil, fmt.Errorf("test case %v: %w", i, err)
		}

		testCases[i] = testCase
	}

	r := New(testCases)

	if r.AnyModelMismatch != w.AnyModelMismatch {
		return nil, utils.MakeError(ErrMalformedReport, "any_model_mismatch is %v but the test cases say %v", w.AnyModelMismatch, r.AnyModelMismatch)
	}

	return r, nil
}
