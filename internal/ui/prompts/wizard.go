package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/bankcore/internal/validation"
)

type InitAnswers struct {
	Currency     string
	InterestRate string
}

// PromptInit runs on first start and asks for the display currency and the default
// savings interest rate.
func PromptInit(currDefault, rateDefault string) (InitAnswers, error) {
	answers := InitAnswers{Currency: currDefault, InterestRate: rateDefault}

	err := huh.NewSelect[string]().
		Title("Welcome to bank! This is the first run, please choose the display currency:").
		Description("Amounts are shown with this currency code. The ledger itself is single-currency.").
		Options(
			huh.NewOption("USD", "USD"),
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("GBP", "GBP"),
			huh.NewOption("JPY", "JPY"),
			huh.NewOption("Other", "Other"),
		).
		Value(&answers.Currency).
		Run()
	if err != nil {
		return answers, err
	}

	if answers.Currency == "Other" {
		var customInput string
		err := huh.NewInput().
			Title("Please enter the currency code:").
			Description("Please use the ISO 4217 standard 3-letter currency code.").
			Value(&customInput).
			Validate(func(s string) error {
				if len(strings.TrimSpace(s)) != 3 {
					return errors.New("currency code must be 3 letters")
				}
				return nil
			}).
			Run()
		if err != nil {
			return answers, err
		}
		answers.Currency = strings.ToUpper(strings.TrimSpace(customInput))
	}

	rate, err := PromptInput("Default savings interest rate per period:", rateDefault, validation.ValidateInterestRate)
	if err != nil {
		return answers, err
	}
	answers.InterestRate = strings.TrimSpace(rate)

	return answers, nil
}
