package model

import (
	"fmt"
	"os"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/native"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
	"github.com/spf13/cobra"
)

var evalFormat string

var evalCmd = &cobra.Command{
	Use:   "eval instr",
	Short: "Evaluate one instruction on the given operands",
	Long: `Evaluates the model of an instruction on the given register values and prints the
resulting test case record. XER flags are taken from --xer, using the architected bit
positions of SO, OV, CA, OV32 and CA32.

If a hardware reference is available for the instruction it is evaluated too and the
record reports whether both agree.`,
	Example: `  pia model eval addo. --ra 0x7FFFFFFFFFFFFFFF --rb 0x1 --xer 0x0`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := report.ParseFormat(evalFormat)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		line := args[0]
		for _, name := range operandNames {
			if value, _ := cmd.Flags().GetString(name); cmd.Flags().Changed(name) {
				line += fmt.Sprintf(" %v=%v", name, value)
			}
		}

		registry := native.Attach(&instructions.Instructions)

		record, err := evalCommand(&registry, line, format)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println(utils.HighlightRecord(record))
	},
}

func init() {
	ModelCmd.AddCommand(evalCmd)

	for _, r := range gprOperands {
		evalCmd.Flags().String(r.String(), "0x0", fmt.Sprintf("Value of %v, as hex", r))
	}

	evalCmd.Flags().StringP(xerOperand, "x", "0x0", "XER value the overflow and carry flags are read from, as hex")
	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", "json", "Record format: json or yaml")
}
