package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billcal-dev/billcal/internal/config"
)

func newInitCommand() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the billcal home and config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := config.HomeDir(cmd.Flag("home").Value.String())
			if err != nil {
				return err
			}
			return runInit(cmd, home, apiURL)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "base URL of the Bill Calendar API")

	return cmd
}

func runInit(cmd *cobra.Command, home, apiURL string) error {
	cfg := config.Default(apiURL)
	if err := config.Save(home, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized billcal home at %s (api: %s)\n", home, cfg.API.BaseURL)
	return nil
}
