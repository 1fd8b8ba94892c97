package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/registers"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
	"github.com/spf13/cobra"
)

var supportedModules = map[string]func() (string, error){
	"instructions": func() (string, error) { return instructions.Instructions.DocString(), nil },
	"registers.xer": registers.XerLayout,
	"registers.cr": func() (string, error) {
		cr, err := registers.CrLayout()
		if err != nil {
			return "", err
		}

		field, err := registers.CrFieldLayout()
		if err != nil {
			return "", err
		}

		return cr + "\n" + field, nil
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show pia documentation",
	Long: `Dumps the documentation of the specified pia module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.SortedKeys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: utils.SortedKeys(supportedModules),
	Run: func(cmd *cobra.Command, args []string) {
		docs, err := supportedModules[args[0]]()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error generating documentation:", err)
			os.Exit(1)
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			file, err := os.Create(outputFile)
			if err != nil {
				fmt.Println("Error creating file:", err)
				os.Exit(1)
			}
			defer file.Close()
			fmt.Fprintln(file, docs)
		} else {
			fmt.Println(docs)
		}
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
