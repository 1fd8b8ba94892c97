// Package output renders harness results for the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/harness"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/fatih/color"
)

var (
	ColorHeader   = color.New(color.FgWhite, color.Bold, color.Underline)
	ColorSuccess  = color.New(color.FgGreen)
	ColorMismatch = color.New(color.FgRed, color.Bold)
	ColorWarning  = color.New(color.FgYellow)
	ColorNative   = color.New(color.FgCyan)
	ColorAdded    = color.New(color.FgGreen)
	ColorRemoved  = color.New(color.FgRed)
)

// Prints per instruction counters and the mismatch verdict of a report
func PrintSummary(w io.Writer, r *report.Report) {
	ColorHeader.Fprintf(w, "%-10v %8v %8v %10v\n", "instr", "cases", "native", "mismatches")

	native := 0
	for _, stats := range r.Stats() {
		line := fmt.Sprintf("%-10v %8v %8v %10v\n", stats.Instr, stats.Cases, stats.Native, stats.Mismatches)
		native += stats.Native

		if stats.Mismatches > 0 {
			ColorMismatch.Fprint(w, line)
		} else {
			fmt.Fprint(w, line)
		}
	}

	fmt.Fprintf(w, "\n%v test cases, %v compared against hardware\n", len(r.TestCases), native)

	switch {
	case r.AnyModelMismatch:
		ColorMismatch.Fprintf(w, "%v model mismatches\n", len(r.Mismatches()))
	case native == 0:
		ColorWarning.Fprintln(w, "no hardware reference available, models were not verified")
	default:
		ColorSuccess.Fprintln(w, "models match the hardware")
	}
}

// Prints the differences between two reports
func PrintDiffs(w io.Writer, diffs []report.CaseDiff) {
	for _, diff := range diffs {
		switch diff.Kind {
		case report.DiffKind_Added:
			ColorAdded.Fprintf(w, "+ %v %v\n", diff.Instr, diff.Inputs)
		case report.DiffKind_Removed:
			ColorRemoved.Fprintf(w, "- %v %v\n", diff.Instr, diff.Inputs)
		case report.DiffKind_Changed:
			ColorWarning.Fprintf(w, "~ %v %v\n", diff.Instr, diff.Inputs)
			fmt.Fprintln(w, diff.Diff)
		}
	}
}

// Prints the test cases the current models no longer reproduce
func PrintDiscrepancies(w io.Writer, discrepancies []harness.Discrepancy) {
	for _, discrepancy := range discrepancies {
		ColorMismatch.Fprintf(w, "test case %v: %v %v\n", discrepancy.Index, discrepancy.TestCase.Instr, discrepancy.TestCase.Inputs)
		fmt.Fprintln(w, discrepancy.Diff)
	}
}
