// Package commands wires the billcal command-line surface.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/billcal-dev/billcal/internal/buildinfo"
	"github.com/billcal-dev/billcal/internal/logging"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "billcal",
		Short:   "Bill and paycheck calendar",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetupWithLevel(slog.LevelDebug)
			} else {
				logging.Setup()
			}
		},
	}

	rootCmd.PersistentFlags().String("home", "", "billcal home directory (default $BILLCAL_HOME or the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(),
		newRegisterCommand(),
		newLoginCommand(),
		newLogoutCommand(),
		newWhoamiCommand(),
		newBillCommand(),
		newPaycheckCommand(),
		newCalendarCommand(),
		newExportCommand(),
	)

	return rootCmd
}
