package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/utils"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, customer_id, account_type, balance, interest_rate, overdraft_limit, date_opened, status`

func (s *Store) CreateAccount(ctx context.Context, acc *model.Account) (int64, error) {
	stmt, err := s.db.PrepareContext(ctx, `
        INSERT INTO accounts (customer_id, account_type, balance, interest_rate, overdraft_limit, date_opened, status)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	balance, err := toCents("balance", acc.Balance)
	if err != nil {
		return 0, err
	}
	overdraft, err := toCents("overdraft limit", acc.OverdraftLimit)
	if err != nil {
		return 0, err
	}

	var newID int64
	err = stmt.QueryRowContext(ctx,
		acc.CustomerID, string(acc.Type),
		balance, acc.InterestRate.String(), overdraft,
		acc.DateOpened.Unix(), string(acc.Status),
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", translateErr(err))
	}

	return newID, nil
}

func (s *Store) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)

	acc, err := scanAccount(row)
	if err != nil {
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, translateErr(err))
	}
	return acc, nil
}

// GetAccountForUpdate needs no locking clause: SQLite has no row locks, and ExecTx opens
// every transaction with BEGIN IMMEDIATE, which already holds the database write lock.
func (s *Store) GetAccountForUpdate(ctx context.Context, id int64) (*model.Account, error) {
	return s.GetAccountByID(ctx, id)
}

func (s *Store) ListAccounts(ctx context.Context, filter AccountFilter) ([]*model.Account, error) {
	var where []string
	var args []any

	if filter.CustomerID != 0 {
		where = append(where, "customer_id = ?")
		args = append(args, filter.CustomerID)
	}
	if filter.Type != "" {
		where = append(where, "account_type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}

	query := "SELECT " + accountColumns + " FROM accounts"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) UpdateAccountBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	cents, err := toCents("balance", balance)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
        UPDATE accounts
        SET balance = ?
        WHERE id = ?
    `, cents, id)
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", translateErr(err))
	}

	return checkAffected(result, "account", id)
}

func (s *Store) UpdateAccountStatus(ctx context.Context, id int64, status model.AccountStatus) error {
	result, err := s.db.ExecContext(ctx, `
        UPDATE accounts
        SET status = ?
        WHERE id = ?
    `, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", translateErr(err))
	}

	return checkAffected(result, "account", id)
}

// DeleteAccount removes the account and the transactions it owns. Legs owned by other
// accounts that point at it are kept.
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE account_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete transactions of account %d: %w", id, translateErr(err))
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", translateErr(err))
	}

	return checkAffected(result, "account", id)
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var accType, rate, status string
	var balance, overdraft, opened int64

	err := row.Scan(
		&acc.ID, &acc.CustomerID, &accType,
		&balance, &rate, &overdraft,
		&opened, &status,
	)
	if err != nil {
		return nil, err
	}

	interestRate, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, fmt.Errorf("corrupt interest rate %q on account %d: %w", rate, acc.ID, err)
	}

	acc.Type = model.AccountType(accType)
	acc.Status = model.AccountStatus(status)
	acc.Balance = utils.FromCents(balance)
	acc.InterestRate = interestRate
	acc.OverdraftLimit = utils.FromCents(overdraft)
	acc.DateOpened = time.Unix(opened, 0).UTC()
	return acc, nil
}

func (s *Store) scanAccounts(rows *sql.Rows) ([]*model.Account, error) {
	accounts := []*model.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}
