package errhandler

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/bankcore/internal/model"
	"github.com/pterm/pterm"
)

// Exit codes by error category.
const (
	ExitGeneric        = 1
	ExitValidation     = 2
	ExitNotFound       = 3
	ExitState          = 4
	ExitInsufficient   = 5
	ExitInfrastructure = 10
)

func HandleError(err error) {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) || strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(capitalize(err.Error()))

	var insufficient *model.InsufficientFundsError
	if errors.As(err, &insufficient) {
		pterm.Info.Printf("Largest amount that can be debited from account #%d: %s\n",
			insufficient.AccountID, insufficient.Available.StringFixed(2))
	}
	if errors.Is(err, model.ErrInfrastructure) {
		pterm.Info.Println("Nothing was changed. It is safe to retry the operation.")
	}

	os.Exit(ExitCode(err))
}

func ExitCode(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return ExitValidation
	case errors.Is(err, model.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, model.ErrInsufficientFunds):
		return ExitInsufficient
	case errors.Is(err, model.ErrState):
		return ExitState
	case errors.Is(err, model.ErrInfrastructure):
		return ExitInfrastructure
	default:
		return ExitGeneric
	}
}

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
