package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:     "probatch",
	Short:   "Batch HTTP API test execution from the terminal",
	Version: version,
	Long: `Probatch runs batches of declarative HTTP test cases against a target
service, with per-batch concurrency limits, retry and timeout policies,
priority-aware scheduling and aggregate pass/fail statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(runCmd)
}
