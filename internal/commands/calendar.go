package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/billcal-dev/billcal/internal/calendar"
)

func newCalendarCommand() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the month calendar with bills, paychecks and summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runCalendar(cmd, env, monthFlag)
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to display as YYYY-MM (default: current month)")

	return cmd
}

func runCalendar(cmd *cobra.Command, env *appEnv, monthFlag string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if monthFlag != "" {
		t, err := time.Parse("2006-01", monthFlag)
		if err != nil {
			return fmt.Errorf("parsing month %q: %w", monthFlag, err)
		}
		year, month = t.Year(), t.Month()
	}
	if err := env.requireToken(); err != nil {
		return err
	}

	view := calendar.NewView(env.client)
	view.Load(cmd.Context())
	if view.LoadErr != nil {
		// Render whatever arrived anyway.
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", view.LoadErr)
	}

	view.Render(cmd.OutOrStdout(), year, month)
	return nil
}
