// Package mysql is the MySQL backend of the persistence gateway. Locked reads use
// SELECT ... FOR UPDATE, so concurrent ledger operations on one account queue on the
// account row instead of on the whole database.
package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db   *gorm.DB
	inTx bool
}

var _ store.Repository = (*Store)(nil)

// NewStore wraps an open connection and creates or updates the schema.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&sqlCustomer{}, &sqlAccount{}, &sqlTransaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) ExecTx(ctx context.Context, fn func(store.Repository) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, inTx: true})
	})
}

func (s *Store) Close() error {
	if s.inTx {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", store.ErrCustomerExists, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", store.ErrConstraintViolation, err)
	default:
		return err
	}
}

func affected(res *gorm.DB, what string, id int64) error {
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %d: %w", what, id, store.ErrRecordNotFound)
	}
	return nil
}

// Customers

func (s *Store) CreateCustomer(ctx context.Context, c *model.Customer) (int64, error) {
	row := toCustomerRow(c)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return 0, fmt.Errorf("failed to create customer '%s': %w", c.Email, translateErr(err))
	}
	return row.ID, nil
}

func (s *Store) GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	var row sqlCustomer
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, fmt.Errorf("failed to query customer with ID %d: %w", id, translateErr(err))
	}
	return row.toModel(), nil
}

func (s *Store) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var row sqlCustomer
	if err := s.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to query customer '%s': %w", email, translateErr(err))
	}
	return row.toModel(), nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	var rows []sqlCustomer
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	return customersToModel(rows), nil
}

func (s *Store) SearchCustomers(ctx context.Context, name string) ([]*model.Customer, error) {
	pattern := "%" + strings.ToLower(name) + "%"
	var rows []sqlCustomer
	err := s.db.WithContext(ctx).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customersToModel(rows), nil
}

func (s *Store) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	res := s.db.WithContext(ctx).Model(&sqlCustomer{}).Where("id = ?", c.ID).Updates(map[string]any{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
		"phone":      c.Phone,
		"address":    c.Address,
		"status":     string(c.Status),
	})
	if err := affected(res, "customer", c.ID); err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&sqlCustomer{}, id)
	if err := affected(res, "customer", id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func customersToModel(rows []sqlCustomer) []*model.Customer {
	customers := make([]*model.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, rows[i].toModel())
	}
	return customers
}

// Accounts

func (s *Store) CreateAccount(ctx context.Context, acc *model.Account) (int64, error) {
	row := toAccountRow(acc)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return 0, fmt.Errorf("failed to create account: %w", translateErr(err))
	}
	return row.ID, nil
}

func (s *Store) GetAccountByID(ctx context.Context, id int64) (*model.Account, error) {
	var row sqlAccount
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, translateErr(err))
	}
	return row.toModel(), nil
}

func (s *Store) GetAccountForUpdate(ctx context.Context, id int64) (*model.Account, error) {
	var row sqlAccount
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock account with ID %d: %w", id, translateErr(err))
	}
	return row.toModel(), nil
}

func (s *Store) ListAccounts(ctx context.Context, filter store.AccountFilter) ([]*model.Account, error) {
	q := s.db.WithContext(ctx).Model(&sqlAccount{})
	if filter.CustomerID != 0 {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.Type != "" {
		q = q.Where("account_type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}

	var rows []sqlAccount
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}

	accounts := make([]*model.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, rows[i].toModel())
	}
	return accounts, nil
}

func (s *Store) UpdateAccountBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	res := s.db.WithContext(ctx).Model(&sqlAccount{}).Where("id = ?", id).Update("balance", balance)
	if err := affected(res, "account", id); err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}
	return nil
}

func (s *Store) UpdateAccountStatus(ctx context.Context, id int64, status model.AccountStatus) error {
	res := s.db.WithContext(ctx).Model(&sqlAccount{}).Where("id = ?", id).Update("status", string(status))
	if err := affected(res, "account", id); err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Where("account_id = ?", id).Delete(&sqlTransaction{}).Error; err != nil {
		return fmt.Errorf("failed to delete transactions of account %d: %w", id, translateErr(err))
	}
	res := s.db.WithContext(ctx).Delete(&sqlAccount{}, id)
	if err := affected(res, "account", id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// Transactions

func (s *Store) AppendTransaction(ctx context.Context, tx *model.Transaction) (int64, error) {
	row := toTransactionRow(tx)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return 0, fmt.Errorf("failed to insert transaction (account_id: %d): %w", tx.AccountID, translateErr(err))
	}
	return row.ID, nil
}

func (s *Store) GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error) {
	var row sqlTransaction
	if err := s.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, fmt.Errorf("failed to query transaction with ID %d: %w", id, translateErr(err))
	}
	return row.toModel()
}

func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID int64, filter store.TransactionFilter) ([]*model.Transaction, error) {
	q := s.db.WithContext(ctx).Where("account_id = ?", accountID)
	if filter.Kind != "" {
		q = q.Where("transaction_type = ?", string(filter.Kind))
	}
	if !filter.From.IsZero() {
		q = q.Where("timestamp >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("timestamp <= ?", filter.To)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}

	var rows []sqlTransaction
	if err := q.Order("timestamp DESC, id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return transactionsToModel(rows)
}

func (s *Store) ListTransfersBetween(ctx context.Context, accountA, accountB int64) ([]*model.Transaction, error) {
	var rows []sqlTransaction
	err := s.db.WithContext(ctx).
		Where("(account_id = ? AND counterparty_account_id = ?) OR (account_id = ? AND counterparty_account_id = ?)",
			accountA, accountB, accountB, accountA).
		Where("transaction_type IN ?", []string{string(model.KindTransferOut), string(model.KindTransferIn)}).
		Order("timestamp DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	return transactionsToModel(rows)
}

func transactionsToModel(rows []sqlTransaction) ([]*model.Transaction, error) {
	txs := make([]*model.Transaction, 0, len(rows))
	for i := range rows {
		tx, err := rows[i].toModel()
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction %d: %w", rows[i].ID, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
