package cli

import (
	"fmt"
	"os"

	"github.com/dshills/herald/internal/log"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes: success or failure, nothing in between.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "herald",
	Short: "Publish a local HTML page to a configured destination",
	Long:  "Herald uploads a single HTML file to the destination named by the active provider: a remote host over ssh/scp, or an S3 bucket.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Setup(flagLogLevel)
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitFailure
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print herald version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "herald version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}
