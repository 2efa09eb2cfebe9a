package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/billcal-dev/billcal/internal/api"
	"github.com/billcal-dev/billcal/internal/calendar"
	"github.com/billcal-dev/billcal/internal/model"
)

func newBillCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Manage bills",
	}
	cmd.AddCommand(
		newBillAddCommand(),
		newBillListCommand(),
		newBillPaidCommand(),
		newBillDeleteCommand(),
	)
	return cmd
}

func newBillAddCommand() *cobra.Command {
	var name string
	var amount string
	var due string
	var recurring bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new bill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runBillAdd(cmd, env, name, amount, due, recurring)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bill name")
	cmd.Flags().StringVar(&amount, "amount", "", "bill amount, e.g. 1200.00")
	cmd.Flags().StringVar(&due, "due", "", "due date as YYYY-MM-DD")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "repeats monthly")

	return cmd
}

func runBillAdd(cmd *cobra.Command, env *appEnv, name, amount, due string, recurring bool) error {
	// Local validation happens before any request goes out.
	if name == "" || amount == "" || due == "" {
		return errors.New("name, amount and due date are required")
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	if !amt.IsPositive() {
		return errors.New("amount must be positive")
	}
	dueDate, err := model.ParseDate(due)
	if err != nil {
		return err
	}
	if err := env.requireToken(); err != nil {
		return err
	}

	bill, err := env.client.CreateBill(cmd.Context(), api.NewBill{
		Name:      name,
		Amount:    amt,
		DueDate:   dueDate,
		Recurring: recurring,
	})
	if err != nil {
		slog.Debug("create bill failed", "error", err)
		return serverMessage(err, "error adding bill")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added bill %s: %s %s due %s\n",
		bill.ID, bill.Name, model.FormatUSD(bill.Amount), bill.DueDate)
	return nil
}

func newBillListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.requireToken(); err != nil {
				return err
			}
			bills, err := env.client.ListBills(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching bills: %w", err)
			}
			calendar.WriteBillTable(cmd.OutOrStdout(), bills)
			return nil
		},
	}
}

func newBillPaidCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paid <id>",
		Short: "Mark a bill paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.requireToken(); err != nil {
				return err
			}
			if err := env.client.MarkBillPaid(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("marking bill paid: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked bill %s paid\n", args[0])
			return nil
		},
	}
}

func newBillDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.requireToken(); err != nil {
				return err
			}
			if err := env.client.DeleteBill(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("deleting bill: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted bill %s\n", args[0])
			return nil
		},
	}
}
