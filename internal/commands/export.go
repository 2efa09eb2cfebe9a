package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/billcal-dev/billcal/internal/calendar"
	"github.com/billcal-dev/billcal/internal/export"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write CSV snapshots of bills and paychecks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runExport(cmd, env, out)
		},
	}

	cmd.Flags().StringVar(&out, "out", ".", "directory to write bills.csv and paychecks.csv into")

	return cmd
}

func runExport(cmd *cobra.Command, env *appEnv, out string) error {
	if err := env.requireToken(); err != nil {
		return err
	}

	view := calendar.NewView(env.client)
	view.Load(cmd.Context())
	if view.LoadErr != nil {
		// Unlike the calendar display, a snapshot of partial data is
		// worse than no snapshot.
		return view.LoadErr
	}

	if err := export.WriteSnapshot(out, view.Bills, view.Paychecks); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s and %s\n",
		filepath.Join(out, export.BillsFile), filepath.Join(out, export.PaychecksFile))
	return nil
}
