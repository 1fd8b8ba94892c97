package model

import (
	"github.com/spf13/cobra"
)

// ModelCmd represents the model command
var ModelCmd = &cobra.Command{
	Use:   "model",
	Short: "Direct access to the instruction models",
}
