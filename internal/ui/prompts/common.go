package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/bankcore/internal/validation"
)

// PromptDescription prompts for an optional free-text memo
func PromptDescription(message string) (string, error) {
	var desc string

	err := huh.NewInput().
		Title(message).
		Description("Press Enter to leave empty").
		Value(&desc).
		Run()

	return strings.TrimSpace(desc), err
}

// PromptAmount prompts for a positive money amount
func PromptAmount(message string, helpText string) (string, error) {
	var amount string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount).
		Validate(validation.ValidateAmount).
		Run()

	return amount, err
}

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(func(s string) error {
			if s == "" && defaultValue != "" {
				return nil
			}
			return validator(s)
		})
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}
