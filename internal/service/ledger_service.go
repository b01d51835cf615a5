package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/shopspring/decimal"
)

var maxAmount = decimal.RequireFromString(constants.MaxSafeAmount)

// LedgerService moves money. Every mutation is one ExecTx unit: locked read of the
// account(s), status and policy checks on the locked rows, balance write(s), then the
// transaction record(s). Nothing is written unless all of it succeeds.
type LedgerService struct {
	repo store.Repository
	log  *slog.Logger
}

func NewLedgerService(repo store.Repository, log *slog.Logger) *LedgerService {
	return &LedgerService{repo: repo, log: log}
}

func (ls *LedgerService) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	tx, err := ls.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, translate("get transaction", transactionLookupErr(id, err))
	}
	return tx, nil
}

// History lists the records owned by the account, newest first.
func (ls *LedgerService) History(ctx context.Context, accountID int64, filter store.TransactionFilter) ([]*model.Transaction, error) {
	const op = "list transactions"

	if filter.Kind != "" {
		if _, err := model.ParseTransactionKind(string(filter.Kind)); err != nil {
			return nil, err
		}
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s", model.ErrValidation,
			filter.From.Format(constants.DateFormat), filter.To.Format(constants.DateFormat))
	}

	if _, err := ls.repo.GetAccountByID(ctx, accountID); err != nil {
		return nil, translate(op, accountLookupErr(accountID, err))
	}

	txs, err := ls.repo.ListTransactionsByAccount(ctx, accountID, filter)
	return txs, translate(op, err)
}

// TransfersBetween lists both legs of every transfer between the two accounts, in either
// direction, newest first.
func (ls *LedgerService) TransfersBetween(ctx context.Context, accountA, accountB int64) ([]*model.Transaction, error) {
	txs, err := ls.repo.ListTransfersBetween(ctx, accountA, accountB)
	return txs, translate("list transfers", err)
}

// lockActive takes the row lock on an account and requires it to be ACTIVE.
func lockActive(ctx context.Context, repo store.Repository, id int64) (*model.Account, error) {
	acc, err := repo.GetAccountForUpdate(ctx, id)
	if err != nil {
		return nil, accountLookupErr(id, err)
	}
	if !acc.IsActive() {
		return nil, fmt.Errorf("account #%d is %s: %w", id, acc.Status, model.ErrAccountNotActive)
	}
	return acc, nil
}

// post applies rec to the locked account and appends it. On success acc carries the new
// balance and rec its ID and BalanceAfter.
func post(ctx context.Context, repo store.Repository, acc *model.Account, rec *model.Transaction) error {
	balance := acc.Balance.Add(rec.SignedAmount())
	if !utils.InSafeRange(balance) {
		return fmt.Errorf("%w: account #%d balance would reach %s, above the maximum of %s",
			model.ErrInvalidAmount, acc.ID, balance.StringFixed(2), maxAmount.StringFixed(2))
	}
	if err := repo.UpdateAccountBalance(ctx, acc.ID, balance); err != nil {
		return fmt.Errorf("account #%d: %w", acc.ID, err)
	}

	rec.BalanceAfter = balance
	id, err := repo.AppendTransaction(ctx, rec)
	if err != nil {
		return err
	}

	rec.ID = id
	acc.Balance = balance
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || !utils.HasMoneyScale(amount) {
		return fmt.Errorf("%w: got %s", model.ErrInvalidAmount, amount.String())
	}
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: %s exceeds the maximum of %s", model.ErrInvalidAmount, amount.String(), maxAmount.StringFixed(2))
	}
	return nil
}
