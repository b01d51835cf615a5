package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/utils"
)

const transactionColumns = `id, reference, account_id, transaction_type, amount, balance_after, timestamp, description, counterparty_account_id`

// AppendTransaction inserts one immutable ledger record.
// It relies on the caller (Service layer) to wrap it in ExecTx together with the balance write.
func (s *Store) AppendTransaction(ctx context.Context, tx *model.Transaction) (int64, error) {
	stmt, err := s.db.PrepareContext(ctx, `
        INSERT INTO transactions (reference, account_id, transaction_type, amount, balance_after, timestamp, description, counterparty_account_id)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var counterparty sql.NullInt64
	if tx.CounterpartyAccountID != nil {
		counterparty = sql.NullInt64{Int64: *tx.CounterpartyAccountID, Valid: true}
	}

	amount, err := toCents("amount", tx.Amount)
	if err != nil {
		return 0, err
	}
	balanceAfter, err := toCents("balance after", tx.BalanceAfter)
	if err != nil {
		return 0, err
	}

	var newTxID int64
	err = stmt.QueryRowContext(ctx,
		tx.Reference.String(), tx.AccountID, string(tx.Kind),
		amount, balanceAfter,
		tx.Timestamp.Unix(), tx.Description, counterparty,
	).Scan(&newTxID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction (account_id: %d): %w", tx.AccountID, translateErr(err))
	}

	return newTxID, nil
}

func (s *Store) GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)

	tx, err := scanTransaction(row)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction with ID %d: %w", id, translateErr(err))
	}
	return tx, nil
}

// ListTransactionsByAccount returns the account's own records, newest first.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID int64, filter TransactionFilter) ([]*model.Transaction, error) {
	where := []string{"account_id = ?"}
	args := []any{accountID}

	if filter.Kind != "" {
		where = append(where, "transaction_type = ?")
		args = append(args, string(filter.Kind))
	}
	if !filter.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, filter.From.Unix())
	}
	if !filter.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, filter.To.Unix())
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE `+strings.Join(where, " AND ")+`
        ORDER BY timestamp DESC, id DESC
        LIMIT ?
    `, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

func (s *Store) ListTransfersBetween(ctx context.Context, accountA, accountB int64) ([]*model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE ((account_id = ? AND counterparty_account_id = ?) OR (account_id = ? AND counterparty_account_id = ?))
          AND transaction_type IN ('TRANSFER_OUT', 'TRANSFER_IN')
        ORDER BY timestamp DESC, id DESC
    `, accountA, accountB, accountB, accountA)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var ref, kind string
	var amount, balanceAfter, ts int64
	var counterparty sql.NullInt64

	err := row.Scan(
		&tx.ID, &ref, &tx.AccountID, &kind,
		&amount, &balanceAfter, &ts,
		&tx.Description, &counterparty,
	)
	if err != nil {
		return nil, err
	}

	reference, err := uuid.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("corrupt reference %q on transaction %d: %w", ref, tx.ID, err)
	}

	tx.Reference = reference
	tx.Kind = model.TransactionKind(kind)
	tx.Amount = utils.FromCents(amount)
	tx.BalanceAfter = utils.FromCents(balanceAfter)
	tx.Timestamp = time.Unix(ts, 0).UTC()
	if counterparty.Valid {
		id := counterparty.Int64
		tx.CounterpartyAccountID = &id
	}
	return tx, nil
}

func scanTransactions(rows *sql.Rows) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
