package account

import (
	"fmt"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/ui"
	"github.com/hance08/bankcore/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewStatusCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <account> <ACTIVE|INACTIVE|FROZEN|CLOSED>",
		Short: "Move an account to another status",
		Long: `Move an account to another status.

Only ACTIVE accounts accept deposits, withdrawals and transfers.
CLOSED is final, and an account can only be closed at a zero balance.`,
		Args: cobra.ExactArgs(2),
		ValidArgs: []string{
			string(model.AccountActive), string(model.AccountInactive),
			string(model.AccountFrozen), string(model.AccountClosed),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := validation.ParseAccountID(args[0])
			if err != nil {
				return err
			}
			status, err := model.ParseAccountStatus(args[1])
			if err != nil {
				return err
			}

			acc, err := application.Service.Account.TransitionStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Account #%d is now %s\n", acc.ID, acc.Status)
			return nil
		},
	}
}

func NewCloseCmd(application *app.App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "close <account>",
		Short: "Close an account with a zero balance",
		Long:  `Close an account with a zero balance. A closed account can't be reopened.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := validation.ParseAccountID(args[0])
			if err != nil {
				return err
			}

			if !yes {
				confirmed, err := ui.ConfirmDestructive(fmt.Sprintf("Close account #%d for good?", id))
				if err != nil {
					return err
				}
				if !confirmed {
					pterm.Info.Println("Close cancelled")
					return nil
				}
			}

			acc, err := application.Service.Account.Close(cmd.Context(), id)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Account #%d closed\n", acc.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
