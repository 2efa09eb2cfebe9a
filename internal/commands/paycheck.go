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

func newPaycheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paycheck",
		Short: "Manage paychecks",
	}
	cmd.AddCommand(
		newPaycheckAddCommand(),
		newPaycheckListCommand(),
		newPaycheckDeleteCommand(),
	)
	return cmd
}

func newPaycheckAddCommand() *cobra.Command {
	var name string
	var amount string
	var payType string
	var period string
	var payday string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new paycheck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runPaycheckAdd(cmd, env, name, amount, payType, period, payday)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "paycheck name")
	cmd.Flags().StringVar(&amount, "amount", "", "paycheck amount, e.g. 2000.00")
	cmd.Flags().StringVar(&payType, "type", string(model.PayTypeSalary), "pay type: hourly or salary")
	cmd.Flags().StringVar(&period, "period", model.PayPeriodMonthly, "pay period: weekly, biweekly or monthly")
	cmd.Flags().StringVar(&payday, "payday", "", "next pay date as YYYY-MM-DD")

	return cmd
}

func runPaycheckAdd(cmd *cobra.Command, env *appEnv, name, amount, payType, period, payday string) error {
	if name == "" || amount == "" || payday == "" {
		return errors.New("name, amount and payday are required")
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	if !amt.IsPositive() {
		return errors.New("amount must be positive")
	}
	if payType != string(model.PayTypeHourly) && payType != string(model.PayTypeSalary) {
		return fmt.Errorf("invalid pay type %q: must be hourly or salary", payType)
	}
	switch period {
	case model.PayPeriodWeekly, model.PayPeriodBiweekly, model.PayPeriodMonthly:
	default:
		return fmt.Errorf("invalid pay period %q: must be weekly, biweekly or monthly", period)
	}
	paydayDate, err := model.ParseDate(payday)
	if err != nil {
		return err
	}
	if err := env.requireToken(); err != nil {
		return err
	}

	paycheck, err := env.client.CreatePaycheck(cmd.Context(), api.NewPaycheck{
		Name:      name,
		Amount:    amt,
		Type:      model.PayType(payType),
		PayPeriod: period,
		Payday:    paydayDate,
	})
	if err != nil {
		slog.Debug("create paycheck failed", "error", err)
		return serverMessage(err, "error adding paycheck")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added paycheck %s: %s %s on %s\n",
		paycheck.ID, paycheck.Name, model.FormatUSD(paycheck.Amount), paycheck.Payday)
	return nil
}

func newPaycheckListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List paychecks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.requireToken(); err != nil {
				return err
			}
			paychecks, err := env.client.ListPaychecks(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching paychecks: %w", err)
			}
			calendar.WritePaycheckTable(cmd.OutOrStdout(), paychecks)
			return nil
		},
	}
}

func newPaycheckDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a paycheck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.requireToken(); err != nil {
				return err
			}
			if err := env.client.DeletePaycheck(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("deleting paycheck: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted paycheck %s\n", args[0])
			return nil
		},
	}
}
