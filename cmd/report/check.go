package report

import (
	"fmt"
	"os"

	"github.com/Manu343726/power-instruction-analyzer/cmd/output"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/harness"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/spf13/cobra"
)

const (
	ExitCodeMismatch    = 3
	ExitCodeDiscrepancy = 4
)

var checkCmd = &cobra.Command{
	Use:   "check report",
	Short: "Validate a report and replay it against the current models",
	Long: `Decodes a persisted report, failing on any malformed record, prints its summary and
re-evaluates the current models on every recorded input.

Exits with status 3 when the report records a model mismatch and with status 4 when the
current models no longer reproduce the recorded model outputs.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := report.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		output.PrintSummary(os.Stdout, r)

		discrepancies, err := harness.Replay(r, &instructions.Instructions)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Replay failed:", err)
			os.Exit(2)
		}

		if len(discrepancies) > 0 {
			fmt.Println()
			output.PrintDiscrepancies(os.Stdout, discrepancies)
			output.ColorMismatch.Printf("%v test cases not reproduced by the current models\n", len(discrepancies))
			os.Exit(ExitCodeDiscrepancy)
		}

		if r.AnyModelMismatch {
			os.Exit(ExitCodeMismatch)
		}
	},
}

func init() {
	ReportCmd.AddCommand(checkCmd)
}
