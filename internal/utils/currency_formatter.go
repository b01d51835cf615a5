package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/hance08/bankcore/internal/constants"
	"github.com/shopspring/decimal"
)

var (
	centsPerUnit = decimal.NewFromInt(constants.CentsPerUnit)
	maxAmount    = decimal.RequireFromString(constants.MaxSafeAmount)
	maxCents     = decimal.NewFromInt(math.MaxInt64)
	minCents     = decimal.NewFromInt(math.MinInt64)
)

func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(constants.MoneyScale)
}

func FormatMoneyWithCurrency(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatMoney(amount)
	}
	return fmt.Sprintf("%s %s", FormatMoney(amount), currency)
}

// ParseAmount parses user input such as "150", "150.5" or "1,250.50".
// Unlike a float parse, it refuses anything finer than a cent instead of rounding it away.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if clean == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}

	if !HasMoneyScale(amount) {
		return decimal.Zero, fmt.Errorf("invalid amount %s: at most %d decimal places", amountStr, constants.MoneyScale)
	}

	if !InSafeRange(amount) {
		return decimal.Zero, fmt.Errorf("amount %s is too large", amountStr)
	}

	return amount, nil
}

// HasMoneyScale reports whether amount is representable in whole cents.
func HasMoneyScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(constants.MoneyScale))
}

// InSafeRange reports whether amount lies within plus or minus MaxSafeAmount.
func InSafeRange(amount decimal.Decimal) bool {
	return amount.Abs().LessThanOrEqual(maxAmount)
}

// ToCents converts a cent-scaled amount into its integer storage form. It fails rather
// than round sub-cent input or wrap values outside the int64 range.
func ToCents(amount decimal.Decimal) (int64, error) {
	if !HasMoneyScale(amount) {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", amount, constants.MoneyScale)
	}

	cents := amount.Mul(centsPerUnit)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, fmt.Errorf("amount %s does not fit in int64 cents", amount)
	}
	return cents.IntPart(), nil
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -constants.MoneyScale)
}
