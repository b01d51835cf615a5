package account

import (
	"fmt"
	"math"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/store"
	"github.com/hance08/bankcore/internal/ui"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/hance08/bankcore/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

type DeleteCommandRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *deleteFlags
}

func NewDeleteCmd(application *app.App) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <account>",
		Short: "Remove an account and its transaction records",
		Long: `Administratively remove an account and every transaction record it owns.
Transfer records kept on the other account are not touched. This action cannot be undone.

To stop using an account while keeping its history, close it instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DeleteCommandRunner{
				app:   application,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *DeleteCommandRunner) Run(arg string) error {
	ctx := r.cmd.Context()

	id, err := validation.ParseAccountID(arg)
	if err != nil {
		return err
	}

	acc, err := r.app.Service.Account.Get(ctx, id)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		records, err := r.app.Service.Ledger.History(ctx, id, store.TransactionFilter{Limit: math.MaxInt32})
		if err != nil {
			return err
		}

		views.RenderAccountDeletePreview(acc, len(records), r.app.Config.Defaults.Currency)
		confirmed, err := ui.ConfirmDestructive(fmt.Sprintf("Do you want to delete account #%d?", id))
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.app.Service.Account.Delete(ctx, id); err != nil {
		return err
	}

	pterm.Success.Printf("Account #%d deleted\n", id)
	ui.Separator()
	return nil
}
