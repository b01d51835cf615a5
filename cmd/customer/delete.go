package customer

import (
	"fmt"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/ui"
	"github.com/hance08/bankcore/internal/ui/views"
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
		Use:   "delete <customer-id|email>",
		Short: "Delete a customer with all of their accounts and records",
		Long:  `Delete a customer together with all of their accounts and the transaction records those accounts own. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
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

	c, err := lookup(r.app, r.cmd, arg)
	if err != nil {
		return err
	}

	accounts, err := r.app.Service.Account.ListByCustomer(ctx, c.ID)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		pterm.Warning.Printf("About to delete customer #%d:\n", c.ID)
		if err := views.RenderCustomerDetail(c, accounts, r.app.Config.Defaults.Currency); err != nil {
			return err
		}
		pterm.Warning.Println("This action cannot be undone!")

		confirmed, err := ui.ConfirmDestructive(fmt.Sprintf("Delete %s and %d account(s)?", c.FullName(), len(accounts)))
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	removed, err := r.app.Service.Customer.Delete(ctx, c.ID)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Customer #%d deleted along with %d account(s)\n", c.ID, removed)
	ui.Separator()
	return nil
}
