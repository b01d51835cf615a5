package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/shopspring/decimal"
)

func ParseAccountID(input string) (int64, error) {
	return parseID("account", input)
}

func ParseCustomerID(input string) (int64, error) {
	return parseID("customer", input)
}

func ParseTransactionID(input string) (int64, error) {
	return parseID("transaction", input)
}

func parseID(what, input string) (int64, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(input), "#")
	if clean == "" {
		return 0, fmt.Errorf("%w: %s number can't be empty", model.ErrValidation, what)
	}

	id, err := strconv.ParseInt(clean, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: '%s' is not a valid %s number", model.ErrValidation, input, what)
	}
	return id, nil
}

// ValidateAmount validates a positive money amount as typed by the user.
func ValidateAmount(input string) error {
	amount, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateInitialBalance validates an opening balance. Zero is allowed; the account type
// decides the real floor.
func ValidateInitialBalance(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	amount, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	return nil
}

// ValidateInterestRate accepts a non-negative decimal fraction such as 0.025.
func ValidateInterestRate(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("invalid interest rate: %s", input)
	}
	if rate.IsNegative() {
		return fmt.Errorf("interest rate can't be negative")
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("interest rate is a fraction (0.025 for 2.5%%)")
	}
	return nil
}

// ValidateOverdraftLimit accepts a non-negative money amount.
func ValidateOverdraftLimit(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	limit, err := utils.ParseAmount(input)
	if err != nil {
		return err
	}
	if limit.IsNegative() {
		return fmt.Errorf("overdraft limit can't be negative")
	}
	return nil
}
