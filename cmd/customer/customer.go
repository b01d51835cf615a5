package customer

import (
	"github.com/hance08/bankcore/internal/app"
	"github.com/spf13/cobra"
)

func NewCustomerCmd(application *app.App) *cobra.Command {
	customerCmd := &cobra.Command{
		Use:     "customer",
		Aliases: []string{"cust"},
		Short:   "Register, look up, update and remove customers",
		Long: `Register, look up, update and remove customers.

A BLOCKED customer keeps their accounts but can't open new ones.`,
	}

	customerCmd.AddCommand(NewAddCmd(application))
	customerCmd.AddCommand(NewListCmd(application))
	customerCmd.AddCommand(NewSearchCmd(application))
	customerCmd.AddCommand(NewShowCmd(application))
	customerCmd.AddCommand(NewUpdateCmd(application))
	customerCmd.AddCommand(NewStatusCmd(application))
	customerCmd.AddCommand(NewDeleteCmd(application))

	return customerCmd
}

var fieldFlags = []string{"first", "last", "email", "phone", "address"}

func anyFieldChanged(cmd *cobra.Command) bool {
	for _, name := range fieldFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
