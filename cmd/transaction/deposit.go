package transaction

import (
	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type postFlags struct {
	Amount      string
	Description string
}

type postFunc func(a *app.App, cmd *cobra.Command, id int64, amount decimal.Decimal, memo string) error

// PostCommandRunner drives the single-account postings, deposit and withdraw.
type PostCommandRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *postFlags
	verb  string
	post  postFunc
}

func NewDepositCmd(application *app.App) *cobra.Command {
	return newPostCmd(application, "deposit", "Deposit money into an active account",
		`Deposit money into an active account.

Example: bank deposit 1 --amount 500 -d "Salary"`,
		func(a *app.App, cmd *cobra.Command, id int64, amount decimal.Decimal, memo string) error {
			tx, err := a.Service.Ledger.Deposit(cmd.Context(), id, amount, memo)
			if err != nil {
				return err
			}
			views.RenderReceipt(tx, a.Config.Defaults.Currency)
			return nil
		})
}

func NewWithdrawCmd(application *app.App) *cobra.Command {
	return newPostCmd(application, "withdraw", "Withdraw money from an active account",
		`Withdraw money from an active account.

A SAVINGS account must keep its minimum balance. A CURRENT account may go
into overdraft up to its limit.

Example: bank withdraw 1 --amount 120.50`,
		func(a *app.App, cmd *cobra.Command, id int64, amount decimal.Decimal, memo string) error {
			tx, err := a.Service.Ledger.Withdraw(cmd.Context(), id, amount, memo)
			if err != nil {
				return err
			}
			views.RenderReceipt(tx, a.Config.Defaults.Currency)
			return nil
		})
}

func newPostCmd(application *app.App, verb, short, long string, post postFunc) *cobra.Command {
	flags := &postFlags{}

	cmd := &cobra.Command{
		Use:   verb + " [account]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &PostCommandRunner{
				app:   application,
				cmd:   cmd,
				flags: flags,
				verb:  verb,
				post:  post,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Description (optional)")

	return cmd
}

func (r *PostCommandRunner) Run(args []string) error {
	interactive := len(args) == 0 || r.flags.Amount == ""

	id, err := accountArg(r.app, r.cmd, args, "Account to "+r.verb+":")
	if err != nil {
		return err
	}

	amount, err := amountArg(r.flags.Amount, "Amount to "+r.verb+":")
	if err != nil {
		return err
	}

	memo, err := memoArg(r.flags.Description, interactive)
	if err != nil {
		return err
	}

	return r.post(r.app, r.cmd, id, amount, memo)
}
