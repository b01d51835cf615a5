package service

import (
	"context"
	"fmt"

	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/shopspring/decimal"
)

type CreateAccountInput struct {
	Type           model.AccountType
	CustomerID     int64
	InitialBalance decimal.Decimal
	// RateOrLimit is the interest rate (SAVINGS) or overdraft limit (CURRENT). When not
	// set, the configured default for the type is used.
	RateOrLimit decimal.NullDecimal
}

// Create opens an ACTIVE account for an existing customer. The opening balance is stored
// on the account itself and produces no transaction record.
func (as *AccountService) Create(ctx context.Context, in CreateAccountInput) (*model.Account, error) {
	const op = "open account"

	accType, err := model.ParseAccountType(string(in.Type))
	if err != nil {
		return nil, fail(as.log, op, err, "customer_id", in.CustomerID)
	}

	terms := as.DefaultTerms(accType)
	if in.RateOrLimit.Valid {
		terms = in.RateOrLimit.Decimal
	}

	acc, err := model.NewAccount(accType, in.CustomerID, in.InitialBalance, terms)
	if err != nil {
		return nil, fail(as.log, op, err, "customer_id", in.CustomerID, "type", accType)
	}

	err = as.repo.ExecTx(ctx, func(repo store.Repository) error {
		customer, err := repo.GetCustomerByID(ctx, in.CustomerID)
		if err != nil {
			return customerLookupErr(in.CustomerID, err)
		}
		if customer.Status == model.CustomerBlocked {
			return fmt.Errorf("customer #%d: %w", customer.ID, model.ErrCustomerBlocked)
		}

		id, err := repo.CreateAccount(ctx, acc)
		if err != nil {
			return err
		}
		acc.ID = id
		return nil
	})
	if err != nil {
		return nil, fail(as.log, op, err, "customer_id", in.CustomerID, "type", accType)
	}

	as.log.Info("account opened",
		"account_id", acc.ID, "customer_id", acc.CustomerID, "type", acc.Type, "balance", acc.Balance.StringFixed(2))
	return acc, nil
}

// TransitionStatus moves an account to status. It runs on a locked row, so it is ordered
// against in-flight deposits, withdrawals and transfers on the same account. Moving to the
// current status succeeds without writing anything.
func (as *AccountService) TransitionStatus(ctx context.Context, id int64, status model.AccountStatus) (*model.Account, error) {
	const op = "change account status"

	if _, err := model.ParseAccountStatus(string(status)); err != nil {
		return nil, fail(as.log, op, err, "account_id", id)
	}

	var (
		acc      *model.Account
		previous model.AccountStatus
	)
	err := as.repo.ExecTx(ctx, func(repo store.Repository) error {
		var err error
		acc, err = repo.GetAccountForUpdate(ctx, id)
		if err != nil {
			return accountLookupErr(id, err)
		}
		if err := acc.CheckTransition(status); err != nil {
			return err
		}

		previous = acc.Status
		if previous == status {
			return nil
		}
		if err := repo.UpdateAccountStatus(ctx, id, status); err != nil {
			return err
		}
		acc.Status = status
		return nil
	})
	if err != nil {
		return nil, fail(as.log, op, err, "account_id", id, "status", status)
	}

	if previous != status {
		as.log.Info("account status changed", "account_id", id, "from", previous, "to", status)
	}
	return acc, nil
}

func (as *AccountService) Close(ctx context.Context, id int64) (*model.Account, error) {
	return as.TransitionStatus(ctx, id, model.AccountClosed)
}

// Delete is an administrative removal of the account and every transaction record it owns.
// Transfer legs recorded on other accounts are kept.
func (as *AccountService) Delete(ctx context.Context, id int64) error {
	const op = "delete account"

	err := as.repo.ExecTx(ctx, func(repo store.Repository) error {
		if _, err := repo.GetAccountForUpdate(ctx, id); err != nil {
			return accountLookupErr(id, err)
		}
		return repo.DeleteAccount(ctx, id)
	})
	if err != nil {
		return fail(as.log, op, err, "account_id", id)
	}

	as.log.Info("account deleted", "account_id", id)
	return nil
}
