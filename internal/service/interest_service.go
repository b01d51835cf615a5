package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/shopspring/decimal"
)

type InterestService struct {
	repo   store.Repository
	ledger *LedgerService
	log    *slog.Logger
}

func NewInterestService(repo store.Repository, ledger *LedgerService, log *slog.Logger) *InterestService {
	return &InterestService{repo: repo, ledger: ledger, log: log}
}

// Calculate returns one period of interest for the account: balance * rate, rounded
// half-even to cents, for savings accounts and zero for every other type.
func (is *InterestService) Calculate(acc *model.Account) decimal.Decimal {
	return acc.Interest()
}

// ApplyToAccount credits one period of interest to an active savings account as an INTEREST
// transaction and returns the amount credited. The interest is computed on the locked
// balance. When it rounds to zero nothing is written.
func (is *InterestService) ApplyToAccount(ctx context.Context, id int64) (decimal.Decimal, error) {
	const op = "apply interest"

	var rec *model.Transaction
	interest := decimal.Zero
	err := is.repo.ExecTx(ctx, func(repo store.Repository) error {
		acc, err := lockActive(ctx, repo, id)
		if err != nil {
			return err
		}

		interest = is.Calculate(acc)
		if !interest.IsPositive() {
			interest = decimal.Zero
			return nil
		}

		rec = model.NewTransaction(acc.ID, model.KindInterest, interest,
			fmt.Sprintf(constants.InterestMemo, acc.InterestRate.String()))
		return post(ctx, repo, acc, rec)
	})
	if err != nil {
		return decimal.Zero, fail(is.log, op, err, "account_id", id)
	}

	if rec != nil {
		is.ledger.logPosted(rec)
	}
	return interest, nil
}

// ApplyToAllActiveSavings applies interest to every ACTIVE savings account, each in its
// own unit. A failing account does not stop the run. It returns how many accounts were
// credited and the joined failures, if any.
func (is *InterestService) ApplyToAllActiveSavings(ctx context.Context) (int, error) {
	accounts, err := is.repo.ListAccounts(ctx, store.AccountFilter{
		Type:   model.AccountTypeSavings,
		Status: model.AccountActive,
	})
	if err != nil {
		return 0, fail(is.log, "apply interest to all", err)
	}

	credited := 0
	var errs []error
	for _, acc := range accounts {
		if err := ctx.Err(); err != nil {
			errs = append(errs, translate("apply interest to all", err))
			break
		}

		interest, err := is.ApplyToAccount(ctx, acc.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("account #%d: %w", acc.ID, err))
			continue
		}
		if interest.IsPositive() {
			credited++
		}
	}

	is.log.Info("interest run finished", "accounts", len(accounts), "credited", credited, "failed", len(errs))
	return credited, errors.Join(errs...)
}
