package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/billcal-dev/billcal/internal/token"
)

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runWhoami(cmd, env)
		},
	}
}

// runWhoami derives the session from the stored token. The decode is
// display-only; a token the client cannot decode counts as signed out.
func runWhoami(cmd *cobra.Command, env *appEnv) error {
	tok, err := env.tokens.Read()
	if errors.Is(err, token.ErrNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
		return nil
	}
	if err != nil {
		return err
	}

	email, err := token.Email(tok)
	if err != nil {
		slog.Debug("token decode failed", "error", err)
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), email)
	return nil
}
