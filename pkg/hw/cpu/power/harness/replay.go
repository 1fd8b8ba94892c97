package harness

import (
	"fmt"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
)

// Test case of a persisted report whose model outputs the current models no longer reproduce
type Discrepancy struct {
	// Position of the test case in the report
	Index    int
	TestCase report.TestCase
	Current  operands.InstructionOutput
	Diff     string
}

// Re-evaluates the models on the inputs of a persisted report
func Replay(r *report.Report, registry *instructions.InstructionsDescriptor) ([]Discrepancy, error) {
	var discrepancies []Discrepancy

	for i, testCase := range r.TestCases {
		instr, err := registry.Instruction(testCase.Instr)
		if err != nil {
			return nil, err
		}

		current, err := instr.Model(testCase.Inputs)
		if err != nil {
			return nil, fmt.Errorf("test case %v: %v model: %w", i, instr.Mnemonic, err)
		}

		if !current.Equal(testCase.ModelOutputs) {
			discrepancies = append(discrepancies, Discrepancy{
				Index:    i,
				TestCase: testCase,
				Current:  current,
				Diff:     report.DiffOutputs(testCase.ModelOutputs, current),
			})
		}
	}

	return discrepancies, nil
}
