package transaction

import (
	"fmt"
	"time"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/hance08/bankcore/internal/validation"
	"github.com/spf13/cobra"
)

type historyFlags struct {
	Kind  string
	From  string
	To    string
	Limit int
}

type HistoryCommandRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *historyFlags
}

func NewHistoryCmd(application *app.App) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:     "history <account>",
		Aliases: []string{"statement"},
		Short:   "List an account's transactions, newest first",
		Long: `List an account's transactions, newest first.

Example: bank history 1 --kind deposit --from 2025-01-01 --to 2025-01-31`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &HistoryCommandRunner{
				app:   application,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "Only this type (deposit, withdrawal, transfer_out, transfer_in, interest)")
	cmd.Flags().StringVar(&flags.From, "from", "", "Start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "End date, inclusive (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "n", constants.DefaultHistoryLimit, "Maximum number of records")

	return cmd
}

func (r *HistoryCommandRunner) Run(arg string) error {
	id, err := validation.ParseAccountID(arg)
	if err != nil {
		return err
	}

	filter := store.TransactionFilter{Limit: r.flags.Limit}
	if r.flags.Kind != "" {
		if filter.Kind, err = model.ParseTransactionKind(r.flags.Kind); err != nil {
			return err
		}
	}
	if r.flags.From != "" {
		if filter.From, err = parseDate(r.flags.From); err != nil {
			return err
		}
	}
	if r.flags.To != "" {
		day, err := parseDate(r.flags.To)
		if err != nil {
			return err
		}
		filter.To = day.AddDate(0, 0, 1).Add(-time.Second)
	}

	txs, err := r.app.Service.Ledger.History(r.cmd.Context(), id, filter)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("History of account #%d", id)
	return views.NewTransactionListView(r.app.Config.Defaults.Currency).Render(title, txs)
}

// parseDate reads a calendar day in local time.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: '%s' is not a date, use YYYY-MM-DD", model.ErrValidation, s)
	}
	return t, nil
}
