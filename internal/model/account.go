package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings AccountType = "SAVINGS"
	AccountTypeCurrent AccountType = "CURRENT"
)

func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(s))) {
	case AccountTypeSavings, "S":
		return AccountTypeSavings, nil
	case AccountTypeCurrent, "C":
		return AccountTypeCurrent, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrInvalidAccountType, s)
	}
}

type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountFrozen   AccountStatus = "FROZEN"
	AccountClosed   AccountStatus = "CLOSED"
)

func ParseAccountStatus(s string) (AccountStatus, error) {
	status := AccountStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case AccountActive, AccountInactive, AccountFrozen, AccountClosed:
		return status, nil
	default:
		return "", fmt.Errorf("%w: account status '%s'", ErrInvalidStatus, s)
	}
}

var (
	MinimumBalance  = decimal.RequireFromString(constants.MinimumSavingsBalance)
	MaxSafeAmount   = decimal.RequireFromString(constants.MaxSafeAmount)
	MaxInterestRate = decimal.RequireFromString(constants.MaxInterestRate)
)

// Account is a tagged variant on Type: InterestRate is meaningful only for savings
// accounts and OverdraftLimit only for current accounts. Policy that differs by type
// dispatches on Type in this file and nowhere else.
type Account struct {
	ID             int64
	CustomerID     int64
	Type           AccountType
	Balance        decimal.Decimal
	DateOpened     time.Time
	Status         AccountStatus
	InterestRate   decimal.Decimal
	OverdraftLimit decimal.Decimal
}

// NewAccount builds an unsaved active account. rateOrLimit is the interest rate for
// savings accounts and the overdraft limit for current accounts.
func NewAccount(accType AccountType, customerID int64, initialBalance, rateOrLimit decimal.Decimal) (*Account, error) {
	acc := &Account{
		CustomerID: customerID,
		Type:       accType,
		Balance:    initialBalance,
		DateOpened: time.Now().UTC().Truncate(time.Second),
		Status:     AccountActive,
	}

	if !utils.HasMoneyScale(initialBalance) {
		return nil, fmt.Errorf("%w: initial balance %s has more than 2 decimal places", ErrInvalidCreation, initialBalance)
	}
	if !utils.InSafeRange(initialBalance) {
		return nil, fmt.Errorf("%w: initial balance %s exceeds the maximum of %s", ErrInvalidCreation, initialBalance, MaxSafeAmount.StringFixed(2))
	}

	switch accType {
	case AccountTypeSavings:
		if initialBalance.LessThan(MinimumBalance) {
			return nil, fmt.Errorf("%w: initial deposit must be at least %s", ErrInvalidCreation, MinimumBalance.StringFixed(2))
		}
		if rateOrLimit.IsNegative() {
			return nil, fmt.Errorf("%w: interest rate cannot be negative", ErrInvalidCreation)
		}
		if rateOrLimit.GreaterThan(MaxInterestRate) {
			return nil, fmt.Errorf("%w: interest rate %s is above %s", ErrInvalidCreation, rateOrLimit, MaxInterestRate)
		}
		if !rateOrLimit.Equal(rateOrLimit.Truncate(constants.RateScale)) {
			return nil, fmt.Errorf("%w: interest rate %s has more than %d decimal places", ErrInvalidCreation, rateOrLimit, constants.RateScale)
		}
		acc.InterestRate = rateOrLimit
	case AccountTypeCurrent:
		if initialBalance.IsNegative() {
			return nil, fmt.Errorf("%w: initial deposit cannot be negative", ErrInvalidCreation)
		}
		if rateOrLimit.IsNegative() {
			return nil, fmt.Errorf("%w: overdraft limit cannot be negative", ErrInvalidCreation)
		}
		if !utils.HasMoneyScale(rateOrLimit) {
			return nil, fmt.Errorf("%w: overdraft limit %s has more than 2 decimal places", ErrInvalidCreation, rateOrLimit)
		}
		if !utils.InSafeRange(rateOrLimit) {
			return nil, fmt.Errorf("%w: overdraft limit %s exceeds the maximum of %s", ErrInvalidCreation, rateOrLimit, MaxSafeAmount.StringFixed(2))
		}
		acc.OverdraftLimit = rateOrLimit
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidAccountType, accType)
	}

	return acc, nil
}

// WithdrawalCeiling is the largest debit the account can take without breaking its
// type's floor. It can be negative, e.g. for an overdrawn current account.
func (a *Account) WithdrawalCeiling() decimal.Decimal {
	switch a.Type {
	case AccountTypeSavings:
		return a.Balance.Sub(MinimumBalance)
	case AccountTypeCurrent:
		return a.Balance.Add(a.OverdraftLimit)
	default:
		return decimal.Zero
	}
}

// Interest is one period of interest on the current balance, rounded half-even to cents.
func (a *Account) Interest() decimal.Decimal {
	switch a.Type {
	case AccountTypeSavings:
		return a.Balance.Mul(a.InterestRate).RoundBank(constants.MoneyScale)
	default:
		return decimal.Zero
	}
}

// RateOrLimit returns the type-specific term of the account.
func (a *Account) RateOrLimit() decimal.Decimal {
	if a.Type == AccountTypeSavings {
		return a.InterestRate
	}
	return a.OverdraftLimit
}

func (a *Account) IsActive() bool {
	return a.Status == AccountActive
}

func (a *Account) IsOverdrawn() bool {
	return a.Balance.IsNegative()
}

// CheckTransition validates a status change. Moving to the current status is allowed and
// is a no-op for the caller.
func (a *Account) CheckTransition(next AccountStatus) error {
	if _, err := ParseAccountStatus(string(next)); err != nil {
		return err
	}
	if a.Status == AccountClosed && next != AccountClosed {
		return fmt.Errorf("account #%d: %w", a.ID, ErrAccountClosed)
	}
	if next == AccountClosed && !a.Balance.IsZero() {
		return fmt.Errorf("account #%d has balance %s: %w", a.ID, a.Balance.StringFixed(2), ErrCannotClose)
	}
	return nil
}
