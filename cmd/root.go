package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/power-instruction-analyzer/cmd/harness"
	"github.com/Manu343726/power-instruction-analyzer/cmd/model"
	"github.com/Manu343726/power-instruction-analyzer/cmd/report"
	"github.com/Manu343726/power-instruction-analyzer/cmd/tools"
	"github.com/Manu343726/power-instruction-analyzer/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	logCloser io.Closer
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pia",
	Short: "POWER instruction analyzer",
	Long: `pia checks software models of the POWER fixed-point arithmetic instructions
against the hardware they describe.

Every modeled instruction is evaluated over the Cartesian product of a set of
boundary register values and XER flag combinations. When hardware reference
functions are available the model outputs are compared against them and every
divergence is recorded in the generated report.`,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, harness.HarnessCmd, model.ModelCmd, report.ReportCmd)
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pia.yaml)")
	RootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	RootCmd.PersistentFlags().String("log-format", "text", "Console log format: text or json")
	RootCmd.PersistentFlags().String("log-file", "", "Also write json logs to this file")

	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log.file", RootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pia")
	}

	// PIA_HARNESS_WORKERS overrides harness.workers
	viper.SetEnvPrefix("pia")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	logger, closer, err := logging.New(logging.Config{
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
		File:   viper.GetString("log.file"),
	}, os.Stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)
	logCloser = closer
	return nil
}
