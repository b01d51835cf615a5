package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/utils"
)

// PromptAccountSelection prompts for one of the given accounts, showing balances.
// Accounts that are not active are left out, as are the ids in exclude.
func PromptAccountSelection(accounts []*model.Account, message, currency string, exclude ...int64) (int64, error) {
	skip := make(map[int64]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}

	var opts []huh.Option[int64]
	for _, acc := range accounts {
		if !acc.IsActive() || skip[acc.ID] {
			continue
		}
		label := fmt.Sprintf("#%d %s (Balance: %s)", acc.ID, acc.Type, utils.FormatMoneyWithCurrency(acc.Balance, currency))
		opts = append(opts, huh.NewOption(label, acc.ID))
	}

	if len(opts) == 0 {
		return 0, fmt.Errorf("no active accounts to choose from")
	}

	var selected int64
	err := huh.NewSelect[int64]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(15).
		Run()
	if err != nil {
		return 0, err
	}

	return selected, nil
}
