package customer

import (
	"strings"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/model"
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
		Use:   "show <customer-id|email>",
		Short: "Show a customer and their accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				app: application,
				cmd: cmd,
			}
			return runner.Run(args[0])
		},
	}
}

func (r *ShowCommandRunner) Run(arg string) error {
	ctx := r.cmd.Context()

	c, err := lookup(r.app, r.cmd, arg)
	if err != nil {
		return err
	}

	accounts, err := r.app.Service.Account.ListByCustomer(ctx, c.ID)
	if err != nil {
		return err
	}

	return views.RenderCustomerDetail(c, accounts, r.app.Config.Defaults.Currency)
}

// lookup resolves a customer by number, or by email when the argument contains '@'.
func lookup(application *app.App, cmd *cobra.Command, arg string) (*model.Customer, error) {
	if strings.Contains(arg, "@") {
		return application.Service.Customer.GetByEmail(cmd.Context(), arg)
	}

	id, err := validation.ParseCustomerID(arg)
	if err != nil {
		return nil, err
	}
	return application.Service.Customer.Get(cmd.Context(), id)
}
