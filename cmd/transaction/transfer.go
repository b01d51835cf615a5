package transaction

import (
	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/spf13/cobra"
)

type transferFlags struct {
	Amount      string
	Description string
}

type TransferCommandRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *transferFlags
}

func NewTransferCmd(application *app.App) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "transfer [from] [to]",
		Short: "Move money between two active accounts",
		Long: `Move money between two active accounts in one atomic step.

The source is debited and the destination credited together, or neither is.
Both legs are recorded with a shared reference.

Example: bank transfer 1 2 --amount 250 -d "Rent"`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &TransferCommandRunner{
				app:   application,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount to transfer")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Description (optional)")

	return cmd
}

func (r *TransferCommandRunner) Run(args []string) error {
	interactive := len(args) < 2 || r.flags.Amount == ""

	fromID, err := accountArg(r.app, r.cmd, args, "From account:")
	if err != nil {
		return err
	}

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	toID, err := accountArg(r.app, r.cmd, rest, "To account:", fromID)
	if err != nil {
		return err
	}

	amount, err := amountArg(r.flags.Amount, "Amount to transfer:")
	if err != nil {
		return err
	}

	memo, err := memoArg(r.flags.Description, interactive)
	if err != nil {
		return err
	}

	out, in, err := r.app.Service.Ledger.Transfer(r.cmd.Context(), fromID, toID, amount, memo)
	if err != nil {
		return err
	}

	return views.RenderTransferReceipt(out, in, r.app.Config.Defaults.Currency)
}
