package account

import (
	"fmt"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/service"
	"github.com/hance08/bankcore/internal/ui/prompts"
	"github.com/hance08/bankcore/internal/ui/views"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/hance08/bankcore/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type openFlags struct {
	Customer string
	Type     string
	Balance  string
	Terms    string
}

type OpenCommandRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *openFlags
}

func NewOpenCmd(application *app.App) *cobra.Command {
	flags := &openFlags{}

	cmd := &cobra.Command{
		Use:     "open",
		Aliases: []string{"create"},
		Short:   "Open a new account for a customer",
		Long: `Open a new SAVINGS (S) or CURRENT (C) account for a registered customer.
Missing values are asked for interactively.

--terms is the interest rate for SAVINGS or the overdraft limit for CURRENT;
the configured default is used when it is left out.

Example: bank account open --customer 1 --type S --balance 1000 --terms 0.03`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &OpenCommandRunner{
				app:   application,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Customer, "customer", "u", "", "Owner's customer number")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: S (Savings) or C (Current)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Opening balance")
	cmd.Flags().StringVar(&flags.Terms, "terms", "", "Interest rate (savings) or overdraft limit (current)")

	return cmd
}

func (r *OpenCommandRunner) Run() error {
	answers, err := r.collect()
	if err != nil {
		return err
	}

	in := service.CreateAccountInput{
		Type:       answers.Type,
		CustomerID: answers.CustomerID,
	}

	if answers.InitialBalance != "" {
		if in.InitialBalance, err = utils.ParseAmount(answers.InitialBalance); err != nil {
			return fmt.Errorf("%w: initial balance: %v", model.ErrInvalidCreation, err)
		}
	}
	if answers.RateOrLimit != "" {
		terms, err := decimal.NewFromString(answers.RateOrLimit)
		if err != nil {
			return fmt.Errorf("%w: '%s' is not a number", model.ErrInvalidCreation, answers.RateOrLimit)
		}
		in.RateOrLimit = decimal.NewNullDecimal(terms)
	}

	acc, err := r.app.Service.Account.Create(r.cmd.Context(), in)
	if err != nil {
		return err
	}

	return views.RenderAccountOpened(acc, r.app.Config.Defaults.Currency)
}

// collect fills the answers from flags and prompts for whatever is missing when stdin is a
// terminal. Non-interactive callers must pass --customer and --type.
func (r *OpenCommandRunner) collect() (*prompts.OpenAccountAnswers, error) {
	answers := &prompts.OpenAccountAnswers{
		InitialBalance: r.flags.Balance,
		RateOrLimit:    r.flags.Terms,
	}

	if r.flags.Customer != "" {
		id, err := validation.ParseCustomerID(r.flags.Customer)
		if err != nil {
			return nil, err
		}
		answers.CustomerID = id
	}
	if r.flags.Type != "" {
		accType, err := model.ParseAccountType(r.flags.Type)
		if err != nil {
			return nil, err
		}
		answers.Type = accType
	}

	hasFlags := r.cmd.Flags().Changed("customer") && r.cmd.Flags().Changed("type")
	if hasFlags {
		return answers, nil
	}

	customers, err := r.app.Service.Customer.List(r.cmd.Context())
	if err != nil {
		return nil, err
	}

	defaults := r.app.Config.Defaults
	if err := prompts.PromptOpenAccount(answers, customers, defaults.InterestRate, defaults.OverdraftLimit); err != nil {
		return nil, err
	}
	return answers, nil
}
