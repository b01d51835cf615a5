package transaction

import (
	"fmt"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/hance08/bankcore/internal/validation"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewShowCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				app: application,
				cmd: cmd,
			}
			return runner.Run(args)
		},
	}
}

func (r *ShowCommandRunner) Run(args []string) error {
	txID, err := validation.ParseTransactionID(args[0])
	if err != nil {
		return err
	}

	detail, err := r.app.Service.Ledger.GetTransaction(r.cmd.Context(), txID)
	if err != nil {
		return err
	}

	return views.RenderTransactionDetail(detail, r.app.Config.Defaults.Currency)
}

func NewBetweenCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "between <account> <account>",
		Short: "List transfers between two accounts, in either direction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := validation.ParseAccountID(args[0])
			if err != nil {
				return err
			}
			b, err := validation.ParseAccountID(args[1])
			if err != nil {
				return err
			}

			txs, err := application.Service.Ledger.TransfersBetween(cmd.Context(), a, b)
			if err != nil {
				return err
			}

			title := fmt.Sprintf("Transfers between #%d and #%d", a, b)
			return views.NewTransactionListView(application.Config.Defaults.Currency).Render(title, txs)
		},
	}
}
