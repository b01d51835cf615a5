package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error categories. Every error returned by the service layer matches exactly one of
// these with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrState             = errors.New("invalid state")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInfrastructure    = errors.New("infrastructure failure")
)

var (
	ErrInvalidAmount       = fmt.Errorf("%w: amount must be positive with at most 2 decimal places", ErrValidation)
	ErrInvalidAccountType  = fmt.Errorf("%w: account type must be SAVINGS or CURRENT", ErrValidation)
	ErrInvalidStatus       = fmt.Errorf("%w: unknown status", ErrValidation)
	ErrInvalidCreation     = fmt.Errorf("%w: invalid account parameters", ErrValidation)
	ErrInvalidCustomer     = fmt.Errorf("%w: invalid customer details", ErrValidation)
	ErrInvalidKind         = fmt.Errorf("%w: unknown transaction type", ErrValidation)
	ErrAccountNotFound     = fmt.Errorf("account %w", ErrNotFound)
	ErrCustomerNotFound    = fmt.Errorf("customer %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	ErrAccountNotActive    = fmt.Errorf("%w: account is not active", ErrState)
	ErrCannotClose         = fmt.Errorf("%w: account must have zero balance before closing", ErrState)
	ErrAccountClosed       = fmt.Errorf("%w: account is closed", ErrState)
	ErrInvalidTransfer     = fmt.Errorf("%w: cannot transfer to the same account", ErrState)
	ErrCustomerBlocked     = fmt.Errorf("%w: customer is blocked", ErrState)
	ErrCustomerExists      = fmt.Errorf("%w: email is already registered", ErrState)
)

// InsufficientFundsError is a business-rule rejection of a debit. Available is the
// withdrawal ceiling the account had when the request was evaluated.
type InsufficientFundsError struct {
	AccountID int64
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in account #%d: requested %s, available %s",
		e.AccountID, e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// InfrastructureError reports a persistence failure. The whole logical operation has
// been rolled back, so the caller may re-issue it. The driver error is kept for logging
// only and is not part of Error().
type InfrastructureError struct {
	Op    string
	Cause error
}

func NewInfrastructureError(op string, cause error) *InfrastructureError {
	return &InfrastructureError{Op: op, Cause: cause}
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrInfrastructure)
}

func (e *InfrastructureError) Is(target error) bool {
	return target == ErrInfrastructure
}
