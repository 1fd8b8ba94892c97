package model

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/cmd/output"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/instructions"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/native"
	"github.com/Manu343726/power-instruction-analyzer/pkg/hw/cpu/power/report"
	"github.com/Manu343726/power-instruction-analyzer/pkg/utils"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const replHelp = `Commands:
  <instr> [ra=0x..] [rb=0x..] [rc=0x..] [xer=0x..]  evaluate an instruction
  list                                              list instructions
  help                                              show this help
  quit, exit                                        leave`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate instructions interactively",
	Long: `Starts an interactive prompt evaluating instructions on the typed operands.
Mnemonics and operand names are completed with tab and the history is kept in
$HOME/.pia_history.

` + replHelp,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		registry := native.Attach(&instructions.Instructions)
		runRepl(&registry)
	},
}

func historyFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pia_history"
	}
	return filepath.Join(homeDir, ".pia_history")
}

// Completes the word being typed with mnemonics first and operand names after
func completer(registry *instructions.InstructionsDescriptor) func(string) []string {
	mnemonics := utils.Map(registry.AllInstructions(), func(instr *instructions.InstructionDescriptor) string { return instr.Mnemonic })

	return func(line string) []string {
		words := strings.Fields(line)
		if strings.HasSuffix(line, " ") {
			words = append(words, "")
		}

		candidates := slices.Concat(mnemonics, []string{"list", "help", "quit", "exit"})
		prefix := ""
		if len(words) > 1 {
			candidates = utils.Map(operandNames, func(name string) string { return name + "=" })
			prefix = strings.Join(words[:len(words)-1], " ") + " "
		}

		current := ""
		if len(words) > 0 {
			current = strings.ToLower(words[len(words)-1])
		}

		var completions []string
		for _, candidate := range candidates {
			if strings.HasPrefix(candidate, current) {
				completions = append(completions, prefix+candidate)
			}
		}
		return completions
	}
}

func runRepl(registry *instructions.InstructionsDescriptor) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completer(registry))

	historyFile := historyFilePath()
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	if registry.TotalNative() == 0 {
		output.ColorWarning.Println("No hardware reference available, only models are evaluated.")
	}
	fmt.Println("Type 'help' for available commands.")

	for {
		input, err := line.Prompt("(pia) ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				break
			}
			fmt.Fprintln(os.Stderr, "Error reading input:", err)
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if quit := execute(registry, input, os.Stdout); quit {
			break
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

// Executes one repl line, returns whether the repl should exit
func execute(registry *instructions.InstructionsDescriptor, input string, w io.Writer) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		return true
	case "help", "h":
		fmt.Fprintln(w, replHelp)
		return false
	case "list", "l":
		fmt.Fprint(w, registry.DocString())
		return false
	}

	record, err := evalCommand(registry, input, report.Format_YAML)
	if err != nil {
		output.ColorMismatch.Fprintln(w, "Error:", err)
		return false
	}

	fmt.Fprint(w, utils.HighlightRecord(record))
	return false
}

func init() {
	ModelCmd.AddCommand(replCmd)
}
