package customer

import (
	"fmt"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := application.Service.Customer.List(cmd.Context())
			if err != nil {
				return err
			}
			return views.RenderCustomerList(customers)
		},
	}
}

func NewSearchCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find customers whose first or last name contains the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := application.Service.Customer.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(customers) == 0 {
				return fmt.Errorf("no customers match '%s'", args[0])
			}
			return views.RenderCustomerList(customers)
		},
	}
}
