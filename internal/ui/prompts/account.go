package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/validation"
)

// OpenAccountAnswers holds the raw wizard answers; the caller parses them.
type OpenAccountAnswers struct {
	CustomerID     int64
	Type           model.AccountType
	InitialBalance string
	RateOrLimit    string
}

// PromptAccountType prompts for account type selection
func PromptAccountType() (model.AccountType, error) {
	accType := model.AccountTypeSavings

	err := huh.NewSelect[model.AccountType]().
		Title("Account Type:").
		Options(
			huh.NewOption("S - Savings (minimum balance, earns interest)", model.AccountTypeSavings),
			huh.NewOption("C - Current (may go into overdraft)", model.AccountTypeCurrent),
		).
		Value(&accType).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return accType, nil
}

// PromptCustomerSelection prompts for the owner of a new account
func PromptCustomerSelection(customers []*model.Customer) (int64, error) {
	var opts []huh.Option[int64]
	for _, c := range customers {
		if c.Status == model.CustomerBlocked {
			continue
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("#%d %s <%s>", c.ID, c.FullName(), c.Email), c.ID))
	}
	if len(opts) == 0 {
		return 0, fmt.Errorf("no customers can open accounts, register one with 'bank customer add'")
	}

	var selected int64
	err := huh.NewSelect[int64]().
		Title("Customer:").
		Options(opts...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return 0, fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptOpenAccount asks for whatever is still missing in answers. Fields that are
// already set are left untouched.
func PromptOpenAccount(answers *OpenAccountAnswers, customers []*model.Customer, defaultRate, defaultOverdraft string) error {
	var err error

	if answers.CustomerID == 0 {
		if answers.CustomerID, err = PromptCustomerSelection(customers); err != nil {
			return err
		}
	}

	if answers.Type == "" {
		if answers.Type, err = PromptAccountType(); err != nil {
			return err
		}
	}

	if answers.InitialBalance == "" {
		message := "Initial Balance (press Enter for 0):"
		if answers.Type == model.AccountTypeSavings {
			message = fmt.Sprintf("Initial Balance (at least %s):", model.MinimumBalance.StringFixed(2))
		}
		if answers.InitialBalance, err = PromptInput(message, "0", validation.ValidateInitialBalance); err != nil {
			return err
		}
	}

	if answers.RateOrLimit == "" {
		if answers.Type == model.AccountTypeSavings {
			answers.RateOrLimit, err = PromptInput(
				fmt.Sprintf("Interest rate per period (default: %s):", defaultRate), defaultRate, validation.ValidateInterestRate)
		} else {
			answers.RateOrLimit, err = PromptInput(
				fmt.Sprintf("Overdraft limit (default: %s):", defaultOverdraft), defaultOverdraft, validation.ValidateOverdraftLimit)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
