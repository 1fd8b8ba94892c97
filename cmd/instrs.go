package cmd

import (
	"fmt"

	"github.com/Manu343726/power-instruction-analyzer/cmd/output"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/native"
	"github.com/spf13/cobra"
)

var instrsVerbose bool

var instrsCmd = &cobra.Command{
	Use:   "instrs",
	Short: "List the modeled instructions",
	Long: `Lists the mnemonics of all the modeled instructions, in the order the harness evaluates them.

With --verbose the registers each instruction reads and writes are listed too, and
instructions with a hardware reference available on this host are highlighted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		registry := native.Attach(&instructions.Instructions)

		for _, instr := range registry.AllInstructions() {
			if !instrsVerbose {
				fmt.Println(instr.Mnemonic)
				continue
			}

			if instr.HasNative() {
				output.ColorNative.Println(instr.Documentation())
			} else {
				fmt.Println(instr.Documentation())
			}
		}
	},
}

func init() {
	RootCmd.AddCommand(instrsCmd)
	instrsCmd.Flags().BoolVarP(&instrsVerbose, "verbose", "v", false, "Show registers and hardware availability")
}
