package account

import (
	"fmt"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/hance08/bankcore/internal/validation"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Customer string
	Type     string
	Status   string
}

type ListCommandRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *listFlags
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts with their balances",
		Long: `List accounts with their current balances.
You can filter by owner, account type or status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				app:   application,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Customer, "customer", "u", "", "Only accounts owned by this customer")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter by type (S, C)")
	cmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Filter by status (ACTIVE, INACTIVE, FROZEN, CLOSED)")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	ctx := r.cmd.Context()
	title := "All Accounts"

	var filter store.AccountFilter
	if r.flags.Type != "" {
		accType, err := model.ParseAccountType(r.flags.Type)
		if err != nil {
			return err
		}
		filter.Type = accType
	}
	if r.flags.Status != "" {
		status, err := model.ParseAccountStatus(r.flags.Status)
		if err != nil {
			return err
		}
		filter.Status = status
	}

	if r.flags.Customer != "" {
		id, err := validation.ParseCustomerID(r.flags.Customer)
		if err != nil {
			return err
		}
		// resolve the owner first so an unknown customer is reported, not listed as empty
		if _, err := r.app.Service.Customer.Get(ctx, id); err != nil {
			return err
		}
		filter.CustomerID = id
		title = fmt.Sprintf("Accounts of customer #%d", id)
	}

	accounts, err := r.app.Service.Account.List(ctx, filter)
	if err != nil {
		return err
	}

	return views.NewAccountListView(r.app.Config.Defaults.Currency).Render(title, accounts)
}

func NewShowCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account>",
		Short: "Show an account's balance, status and terms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := validation.ParseAccountID(args[0])
			if err != nil {
				return err
			}

			acc, err := application.Service.Account.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return views.RenderAccountDetail(acc, application.Config.Defaults.Currency)
		},
	}
}
