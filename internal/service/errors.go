package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
)

func isDomainError(err error) bool {
	return errors.Is(err, model.ErrValidation) ||
		errors.Is(err, model.ErrNotFound) ||
		errors.Is(err, model.ErrState) ||
		errors.Is(err, model.ErrInsufficientFunds) ||
		errors.Is(err, model.ErrInfrastructure)
}

// translate passes domain errors through and reports everything else, including store
// constraint violations and cancelled contexts, as an InfrastructureError.
func translate(op string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	return model.NewInfrastructureError(op, err)
}

// fail logs a failed mutation and returns the error the caller should see.
func fail(log *slog.Logger, op string, err error, attrs ...any) error {
	err = translate(op, err)

	var infra *model.InfrastructureError
	if errors.As(err, &infra) {
		log.Error(op+" failed", append(attrs, "error", infra.Cause)...)
	} else {
		log.Warn(op+" rejected", append(attrs, "error", err)...)
	}
	return err
}

func accountLookupErr(id int64, err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("account #%d: %w", id, model.ErrAccountNotFound)
	}
	return err
}

func customerLookupErr(id int64, err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("customer #%d: %w", id, model.ErrCustomerNotFound)
	}
	return err
}

func transactionLookupErr(id int64, err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("transaction #%d: %w", id, model.ErrTransactionNotFound)
	}
	return err
}
