package customer

import (
	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/service"
	"github.com/hance08/bankcore/internal/ui/prompts"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

type AddCommandRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *addFlags
}

func NewAddCmd(application *app.App) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new customer",
		Long: `Register a new customer. Without flags an interactive form is shown.

Example: bank customer add --first Grace --last Hopper --email grace@navy.mil`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &AddCommandRunner{
				app:   application,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.FirstName, "first", "f", "", "First name")
	cmd.Flags().StringVarP(&flags.LastName, "last", "l", "", "Last name")
	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Email address (unique)")
	cmd.Flags().StringVarP(&flags.Phone, "phone", "p", "", "Phone number (optional)")
	cmd.Flags().StringVarP(&flags.Address, "address", "a", "", "Postal address (optional)")

	return cmd
}

func (r *AddCommandRunner) Run() error {
	in := service.CustomerInput{
		FirstName: r.flags.FirstName,
		LastName:  r.flags.LastName,
		Email:     r.flags.Email,
		Phone:     r.flags.Phone,
		Address:   r.flags.Address,
	}

	if !anyFieldChanged(r.cmd) {
		answers := &prompts.CustomerAnswers{}
		if err := prompts.PromptCustomer(answers); err != nil {
			return err
		}
		in = service.CustomerInput(*answers)
	}

	c, err := r.app.Service.Customer.Register(r.cmd.Context(), in)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Customer #%d %s registered\n", c.ID, c.FullName())
	return views.RenderCustomerDetail(c, nil, r.app.Config.Defaults.Currency)
}
