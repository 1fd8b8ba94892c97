package harness

import (
	"github.com/spf13/cobra"
)

// HarnessCmd represents the harness command
var HarnessCmd = &cobra.Command{
	Use:   "harness",
	Short: "Differential verification of the instruction models",
}
