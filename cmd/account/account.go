package account

import (
	"github.com/hance08/bankcore/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(application *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "Open, inspect, freeze, close and delete accounts",
		Long: `Open, inspect, freeze, close and delete accounts.

SAVINGS accounts keep a minimum balance and earn interest.
CURRENT accounts may go into overdraft up to their limit.`,
	}

	accountCmd.AddCommand(NewOpenCmd(application))
	accountCmd.AddCommand(NewListCmd(application))
	accountCmd.AddCommand(NewShowCmd(application))
	accountCmd.AddCommand(NewStatusCmd(application))
	accountCmd.AddCommand(NewCloseCmd(application))
	accountCmd.AddCommand(NewDeleteCmd(application))

	return accountCmd
}
