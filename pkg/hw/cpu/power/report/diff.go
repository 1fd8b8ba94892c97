package report

import (
	"fmt"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/operands"
	"github.com/google/go-cmp/cmp"
)

type DiffKind uint

const (
	// Test case only present in the new report
	DiffKind_Added DiffKind = iota
	// Test case only present in the old report
	DiffKind_Removed
	// Test case present in both reports with different outputs
	DiffKind_Changed
)

func (k DiffKind) String() string {
	switch k {
	case DiffKind_Added:
		return "added"
	case DiffKind_Removed:
		return "removed"
	case DiffKind_Changed:
		return "changed"
	}

	panic("unreachable")
}

// Difference between the two versions of a test case
type CaseDiff struct {
	Kind  DiffKind
	Instr instructions.Instr
	// Rendered inputs identifying the test case
	Inputs string
	// go-cmp diff of the persisted records, empty for added and removed cases
	Diff string
}

func (d CaseDiff) String() string {
	if d.Kind == DiffKind_Changed {
		return fmt.Sprintf("%v %v %v:\n%v", d.Kind, d.Instr, d.Inputs, d.Diff)
	}

	return fmt.Sprintf("%v %v %v", d.Kind, d.Instr, d.Inputs)
}

var wireComparer = cmp.AllowUnexported(wireTestCase{}, wireOutput{})

type caseKey struct {
	instr  instructions.Instr
	inputs string
}

func keyOf(testCase TestCase) caseKey {
	return caseKey{instr: testCase.Instr, inputs: testCase.Inputs.String()}
}

// Compares two reports test case by test case. Cases are matched by instruction and inputs,
// results follow the order of the new report with removed cases last
func Diff(old, new *Report) []CaseDiff {
	oldCases := make(map[caseKey]TestCase, len(old.TestCases))
	for _, testCase := range old.TestCases {
		oldCases[keyOf(testCase)] = testCase
	}

	var diffs []CaseDiff
	seen := make(map[caseKey]bool, len(new.TestCases))

	for _, testCase := range new.TestCases {
		key := keyOf(testCase)
		seen[key] = true

		oldCase, existed := oldCases[key]
		if !existed {
			diffs = append(diffs, CaseDiff{Kind: DiffKind_Added, Instr: key.instr, Inputs: key.inputs})
			continue
		}

		if diff := cmp.Diff(toWireTestCase(oldCase), toWireTestCase(testCase), wireComparer); diff != "" {
			diffs = append(diffs, CaseDiff{Kind: DiffKind_Changed, Instr: key.instr, Inputs: key.inputs, Diff: diff})
		}
	}

	for _, testCase := range old.TestCases {
		if key := keyOf(testCase); !seen[key] {
			diffs = append(diffs, CaseDiff{Kind: DiffKind_Removed, Instr: key.instr, Inputs: key.inputs})
		}
	}

	return diffs
}

// Returns a go-cmp diff of the persisted records of two outputs, empty when they are equal
func DiffOutputs(expected, actual operands.InstructionOutput) string {
	return cmp.Diff(toWireOutput(expected), toWireOutput(actual), wireComparer)
}
