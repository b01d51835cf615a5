package transaction

import (
	"fmt"

	"github.com/hance08/bankcore/internal/app"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/hance08/bankcore/internal/ui/prompts"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/hance08/bankcore/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(application *app.App) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transaction"},
		Short:   "Look up ledger records",
		Long: `Look up ledger records. Records are immutable: they can be viewed but never edited.

Money is moved with the top-level deposit, withdraw and transfer commands.`,
	}

	transactionCmd.AddCommand(NewShowCmd(application))
	transactionCmd.AddCommand(NewBetweenCmd(application))

	return transactionCmd
}

// accountArg returns the account named by args[0], or asks for one among the active
// accounts when no argument was given.
func accountArg(application *app.App, cmd *cobra.Command, args []string, message string, exclude ...int64) (int64, error) {
	if len(args) > 0 && args[0] != "" {
		return validation.ParseAccountID(args[0])
	}

	accounts, err := application.Service.Account.List(cmd.Context(), store.AccountFilter{Status: model.AccountActive})
	if err != nil {
		return 0, err
	}
	return prompts.PromptAccountSelection(accounts, message, application.Config.Defaults.Currency, exclude...)
}

// amountArg parses the amount flag, or asks for one when it was not given.
func amountArg(value, message string) (decimal.Decimal, error) {
	if value == "" {
		var err error
		if value, err = prompts.PromptAmount(message, "e.g. 100 or 49.95"); err != nil {
			return decimal.Zero, err
		}
	}

	amount, err := utils.ParseAmount(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", model.ErrInvalidAmount, err)
	}
	return amount, nil
}

// memoArg returns the memo flag, or asks for an optional one in interactive mode.
func memoArg(value string, interactive bool) (string, error) {
	if value != "" || !interactive {
		return value, nil
	}
	return prompts.PromptDescription("Description (optional):")
}
