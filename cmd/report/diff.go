package report

import (
	"fmt"
	"os"

	"github.com/Manu343726/power-instruction-analyzer/cmd/output"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff old new",
	Short: "Compare two reports",
	Long: `Lists the test cases added, removed or changed between two reports. Test cases are
matched by instruction and inputs.

Exits with status 1 when the reports differ.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		old, err := report.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		new, err := report.ReadFile(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		diffs := report.Diff(old, new)
		if len(diffs) == 0 {
			output.ColorSuccess.Println("reports are equivalent")
			return
		}

		output.PrintDiffs(os.Stdout, diffs)
		os.Exit(1)
	},
}

func init() {
	ReportCmd.AddCommand(diffCmd)
}
