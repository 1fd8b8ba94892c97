package harness

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/Manu343726/power-instruction-analyzer/cmd/output"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/harness"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/native"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const ExitCodeMismatch = 3

var (
	runInstrs   []string
	runOutput   string
	runNoNative bool
	runQuiet    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the instruction models over the input domain",
	Long: `Evaluates every selected instruction over the Cartesian product of the register
value domain and the XER flag combinations the instruction reads.

When hardware reference functions are available on this host the model outputs are
compared against them. The resulting report is written to stdout, or to the file given
with --output, and a summary is printed to stderr.

The command exits with status 3 when at least one model mismatch was recorded.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		registry := instructions.Instructions
		if !runNoNative {
			registry = native.Attach(&instructions.Instructions)
		}

		selected, err := registry.Select(runInstrs...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		domain := harness.DefaultDomain()
		if texts := viper.GetStringSlice("harness.values"); len(texts) > 0 {
			values, err := harness.ParseValues(texts)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Invalid --values:", err)
				os.Exit(1)
			}

			domain = domain.WithValues(values)
		}

		format, err := report.ParseFormat(viper.GetString("harness.format"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		h := harness.New(selected,
			harness.WithWorkers(viper.GetInt("harness.workers")),
			harness.WithDomain(domain),
			harness.WithLogger(slog.Default()))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		r, err := h.Run(ctx)
		stop()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Harness run failed:", err)
			os.Exit(2)
		}

		if err := writeReport(runOutput, r, format); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing report:", err)
			os.Exit(1)
		}

		if !runQuiet {
			output.PrintSummary(os.Stderr, r)
		}

		if r.AnyModelMismatch {
			os.Exit(ExitCodeMismatch)
		}
	},
}

// Writes the report to the output file, or to stdout if none was given
func writeReport(path string, r *report.Report, format report.Format) error {
	if path == "" {
		return report.Write(os.Stdout, r, format)
	}

	return report.WriteFileFormat(path, r, format)
}

func init() {
	HarnessCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceVarP(&runInstrs, "instr", "i", nil, "Instructions to evaluate (mnemonics, default all)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Report file. If not specified, the report is dumped to stdout.")
	runCmd.Flags().BoolVar(&runNoNative, "no-native", false, "Do not compare against the hardware even if it is available")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Do not print the run summary")
	runCmd.Flags().IntP("workers", "w", runtime.GOMAXPROCS(0), "Number of concurrent workers")
	runCmd.Flags().StringP("format", "f", "json", "Report format: json or yaml")
	runCmd.Flags().StringSlice("values", nil, "Register values domain, as hex (default boundary values)")

	viper.BindPFlag("harness.workers", runCmd.Flags().Lookup("workers"))
	viper.BindPFlag("harness.format", runCmd.Flags().Lookup("format"))
	viper.BindPFlag("harness.values", runCmd.Flags().Lookup("values"))
}
