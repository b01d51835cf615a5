package customer

import (
	"fmt"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/service"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type updateFlags struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

func NewUpdateCmd(application *app.App) *cobra.Command {
	flags := &updateFlags{}

	cmd := &cobra.Command{
		Use:   "update <customer-id|email>",
		Short: "Change a customer's contact details",
		Long: `Change a customer's contact details. Only the given flags are changed.

Example: bank customer update 3 --phone "+1 555 0100"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !anyFieldChanged(cmd) {
				return fmt.Errorf("%w: nothing to update, pass at least one field flag", model.ErrValidation)
			}

			c, err := lookup(application, cmd, args[0])
			if err != nil {
				return err
			}

			updated, err := application.Service.Customer.Update(cmd.Context(), c.ID, service.CustomerInput{
				FirstName: flags.FirstName,
				LastName:  flags.LastName,
				Email:     flags.Email,
				Phone:     flags.Phone,
				Address:   flags.Address,
			})
			if err != nil {
				return err
			}

			pterm.Success.Printf("Customer #%d updated\n", updated.ID)
			return views.RenderCustomerDetail(updated, nil, application.Config.Defaults.Currency)
		},
	}

	cmd.Flags().StringVarP(&flags.FirstName, "first", "f", "", "New first name")
	cmd.Flags().StringVarP(&flags.LastName, "last", "l", "", "New last name")
	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "New email address")
	cmd.Flags().StringVarP(&flags.Phone, "phone", "p", "", "New phone number")
	cmd.Flags().StringVarP(&flags.Address, "address", "a", "", "New postal address")

	return cmd
}

func NewStatusCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:       "status <customer-id|email> <ACTIVE|INACTIVE|BLOCKED>",
		Short:     "Change a customer's status",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(model.CustomerActive), string(model.CustomerInactive), string(model.CustomerBlocked)},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := model.ParseCustomerStatus(args[1])
			if err != nil {
				return err
			}

			c, err := lookup(application, cmd, args[0])
			if err != nil {
				return err
			}

			updated, err := application.Service.Customer.UpdateStatus(cmd.Context(), c.ID, status)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Customer #%d is now %s\n", updated.ID, updated.Status)
			return nil
		},
	}
}
