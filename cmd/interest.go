package cmd

import (
	"errors"
	"fmt"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/hance08/bankcore/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type interestRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewInterestCmd(application *app.App) *cobra.Command {
	interestCmd := &cobra.Command{
		Use:   "interest",
		Short: "Calculate and credit interest on savings accounts",
	}

	newRunner := func(cmd *cobra.Command) *interestRunner {
		return &interestRunner{app: application, cmd: cmd}
	}

	interestCmd.AddCommand(&cobra.Command{
		Use:   "calc <account>",
		Short: "Show one period of interest without crediting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunner(cmd).Calc(args[0])
		},
	})
	interestCmd.AddCommand(&cobra.Command{
		Use:   "apply <account>",
		Short: "Credit one period of interest to a savings account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunner(cmd).Apply(args[0])
		},
	})
	interestCmd.AddCommand(&cobra.Command{
		Use:   "apply-all",
		Short: "Credit one period of interest to every active savings account",
		Long: `Credit one period of interest to every active savings account.

Each account is credited in its own transaction. An account that fails is reported
and skipped; the others are still credited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRunner(cmd).ApplyAll()
		},
	})

	return interestCmd
}

func (r *interestRunner) currency() string {
	return r.app.Config.Defaults.Currency
}

func (r *interestRunner) Calc(arg string) error {
	id, err := validation.ParseAccountID(arg)
	if err != nil {
		return err
	}

	acc, err := r.app.Service.Account.Get(r.cmd.Context(), id)
	if err != nil {
		return err
	}

	interest := r.app.Service.Interest.Calculate(acc)
	pterm.Info.Printf("Account #%d: %s on %s at %s\n", acc.ID,
		utils.FormatMoneyWithCurrency(interest, r.currency()),
		utils.FormatMoney(acc.Balance), acc.InterestRate.String())
	return nil
}

func (r *interestRunner) Apply(arg string) error {
	id, err := validation.ParseAccountID(arg)
	if err != nil {
		return err
	}

	credited, err := r.app.Service.Interest.ApplyToAccount(r.cmd.Context(), id)
	if err != nil {
		return err
	}

	if credited.IsZero() {
		pterm.Warning.Printf("No interest due on account #%d\n", id)
		return nil
	}
	pterm.Success.Printf("Credited %s interest to account #%d\n", utils.FormatMoneyWithCurrency(credited, r.currency()), id)
	return nil
}

func (r *interestRunner) ApplyAll() error {
	count, err := r.app.Service.Interest.ApplyToAllActiveSavings(r.cmd.Context())

	var joined interface{ Unwrap() []error }
	if err != nil && !errors.As(err, &joined) {
		return err
	}

	pterm.Success.Printf("Interest credited to %d accounts\n", count)
	if err == nil {
		return nil
	}

	failures := joined.Unwrap()
	for _, e := range failures {
		pterm.Warning.Println(e)
	}
	return fmt.Errorf("%d accounts were not credited", len(failures))
}
