package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/shopspring/decimal"
)

func (ls *LedgerService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal, description string) (*model.Transaction, error) {
	const op = "deposit"

	if err := validateAmount(amount); err != nil {
		return nil, fail(ls.log, op, err, "account_id", accountID)
	}

	rec := model.NewTransaction(accountID, model.KindDeposit, amount, strings.TrimSpace(description))
	err := ls.repo.ExecTx(ctx, func(repo store.Repository) error {
		acc, err := lockActive(ctx, repo, accountID)
		if err != nil {
			return err
		}
		return post(ctx, repo, acc, rec)
	})
	if err != nil {
		return nil, fail(ls.log, op, err, "account_id", accountID, "amount", amount.StringFixed(2))
	}

	ls.logPosted(rec)
	return rec, nil
}

func (ls *LedgerService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal, description string) (*model.Transaction, error) {
	const op = "withdraw"

	if err := validateAmount(amount); err != nil {
		return nil, fail(ls.log, op, err, "account_id", accountID)
	}

	rec := model.NewTransaction(accountID, model.KindWithdrawal, amount, strings.TrimSpace(description))
	err := ls.repo.ExecTx(ctx, func(repo store.Repository) error {
		acc, err := lockActive(ctx, repo, accountID)
		if err != nil {
			return err
		}
		if err := checkFunds(acc, amount); err != nil {
			return err
		}
		return post(ctx, repo, acc, rec)
	})
	if err != nil {
		return nil, fail(ls.log, op, err, "account_id", accountID, "amount", amount.StringFixed(2))
	}

	ls.logPosted(rec)
	return rec, nil
}

// Transfer debits fromID and credits toID as one unit and returns the TRANSFER_OUT and
// TRANSFER_IN records. Both rows are locked in ascending id order, so two transfers
// between the same pair in opposite directions cannot deadlock.
func (ls *LedgerService) Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal, description string) (*model.Transaction, *model.Transaction, error) {
	const op = "transfer"

	if err := validateAmount(amount); err != nil {
		return nil, nil, fail(ls.log, op, err, "from_account_id", fromID, "to_account_id", toID)
	}
	if fromID == toID {
		err := fmt.Errorf("account #%d: %w", fromID, model.ErrInvalidTransfer)
		return nil, nil, fail(ls.log, op, err, "from_account_id", fromID, "to_account_id", toID)
	}

	out, in := model.NewTransferPair(fromID, toID, amount, strings.TrimSpace(description))
	err := ls.repo.ExecTx(ctx, func(repo store.Repository) error {
		first, second := fromID, toID
		if first > second {
			first, second = second, first
		}

		locked := make(map[int64]*model.Account, 2)
		for _, id := range []int64{first, second} {
			acc, err := lockActive(ctx, repo, id)
			if err != nil {
				return err
			}
			locked[id] = acc
		}

		from, to := locked[fromID], locked[toID]
		if err := checkFunds(from, amount); err != nil {
			return err
		}
		if err := post(ctx, repo, from, out); err != nil {
			return err
		}
		return post(ctx, repo, to, in)
	})
	if err != nil {
		return nil, nil, fail(ls.log, op, err,
			"from_account_id", fromID, "to_account_id", toID, "amount", amount.StringFixed(2))
	}

	ls.log.Info("transfer posted",
		"reference", out.Reference, "from_account_id", fromID, "to_account_id", toID,
		"amount", amount.StringFixed(2), "out_tx_id", out.ID, "in_tx_id", in.ID)
	return out, in, nil
}

func checkFunds(acc *model.Account, amount decimal.Decimal) error {
	ceiling := acc.WithdrawalCeiling()
	if amount.GreaterThan(ceiling) {
		return &model.InsufficientFundsError{
			AccountID: acc.ID,
			Requested: amount,
			Available: ceiling,
		}
	}
	return nil
}

func (ls *LedgerService) logPosted(rec *model.Transaction) {
	ls.log.Info("transaction posted",
		"tx_id", rec.ID, "account_id", rec.AccountID, "kind", rec.Kind,
		"amount", rec.Amount.StringFixed(2), "balance_after", rec.BalanceAfter.StringFixed(2))
}
