package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/billcal-dev/billcal/internal/api"
)

func newRegisterCommand() *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runRegister(cmd, env, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")

	return cmd
}

func runRegister(cmd *cobra.Command, env *appEnv, email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	tok, err := env.client.Register(cmd.Context(), api.Credentials{Email: email, Password: password})
	if err != nil {
		slog.Debug("register request failed", "error", err)
		return serverMessage(err, "registration failed")
	}

	if err := env.tokens.Save(tok); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registered as %s\n", email)
	return nil
}
