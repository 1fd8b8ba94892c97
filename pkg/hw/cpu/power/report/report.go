// Package report holds the results of a differential run and their persisted form.
package report

import (
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
)

// One evaluation of an instruction on one input combination
type TestCase struct {
	Instr  instructions.Instr
	Inputs operands.InstructionInput
	// Hardware reference outputs, nil when no reference was available
	NativeOutputs *operands.InstructionOutput
	ModelOutputs  operands.InstructionOutput
	// Set iff NativeOutputs is present and differs from ModelOutputs
	ModelMismatch bool
}

// Builds a test case computing the mismatch flag from the outputs
func NewTestCase(instr instructions.Instr, inputs operands.InstructionInput, native *operands.InstructionOutput, model operands.InstructionOutput) TestCase {
	return TestCase{
		Instr:         instr,
		Inputs:        inputs,
		NativeOutputs: native,
		ModelOutputs:  model,
		ModelMismatch: native != nil && !native.Equal(model),
	}
}

// Results of a differential run, in registry then enumeration order
type Report struct {
	TestCases        []TestCase
	AnyModelMismatch bool
}

// Builds a report computing the aggregated mismatch flag
func New(testCases []TestCase) *Report {
	if testCases == nil {
		testCases = []TestCase{}
	}

	r := &Report{TestCases: testCases}

	for _, testCase := range testCases {
		if testCase.ModelMismatch {
			r.AnyModelMismatch = true
			break
		}
	}

	return r
}

// Per instruction counters of a report
type InstrStats struct {
	Instr      instructions.Instr
	Cases      int
	Native     int
	Mismatches int
}

// Returns per instruction counters, in Instr order. Instructions without cases are skipped
func (r *Report) Stats() []InstrStats {
	stats := make([]InstrStats, instructions.TOTAL_INSTRS)

	for _, testCase := range r.TestCases {
		s := &stats[testCase.Instr]
		s.Instr = testCase.Instr
		s.Cases++

		if testCase.NativeOutputs != nil {
			s.Native++
		}

		if testCase.ModelMismatch {
			s.Mismatches++
		}
	}

	result := make([]InstrStats, 0, len(stats))
	for _, s := range stats {
		if s.Cases > 0 {
			result = append(result, s)
		}
	}

	return result
}

// Returns the test cases where model and hardware disagree
func (r *Report) Mismatches() []TestCase {
	var mismatches []TestCase

	for _, testCase := range r.TestCases {
		if testCase.ModelMismatch {
			mismatches = append(mismatches, testCase)
		}
	}

	return mismatches
}
