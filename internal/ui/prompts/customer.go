package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/bankcore/internal/validation"
)

type CustomerAnswers struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// PromptCustomer runs the registration form. Values already present are shown as the
// starting input.
func PromptCustomer(answers *CustomerAnswers) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First name:").
				Value(&answers.FirstName).
				Validate(validation.ValidateName),
			huh.NewInput().
				Title("Last name:").
				Value(&answers.LastName).
				Validate(validation.ValidateName),
			huh.NewInput().
				Title("Email:").
				Value(&answers.Email).
				Validate(validation.ValidateEmail),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Phone (optional):").
				Value(&answers.Phone).
				Validate(validation.ValidatePhone),
			huh.NewText().
				Title("Address (optional):").
				Value(&answers.Address).
				Lines(3),
		),
	)

	return form.Run()
}
