package store

import (
	"context"

	"github.com/hance08/bankcore/internal/model"
	"github.com/shopspring/decimal"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, c *model.Customer) (int64, error)
	GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]*model.Customer, error)
	SearchCustomers(ctx context.Context, name string) ([]*model.Customer, error)
	UpdateCustomer(ctx context.Context, c *model.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
}

type AccountRepository interface {
	CreateAccount(ctx context.Context, acc *model.Account) (int64, error)
	GetAccountByID(ctx context.Context, id int64) (*model.Account, error)
	// GetAccountForUpdate reads an account and holds it against concurrent writers until
	// the surrounding ExecTx finishes. Outside ExecTx it behaves like GetAccountByID.
	GetAccountForUpdate(ctx context.Context, id int64) (*model.Account, error)
	ListAccounts(ctx context.Context, filter AccountFilter) ([]*model.Account, error)
	UpdateAccountBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	UpdateAccountStatus(ctx context.Context, id int64, status model.AccountStatus) error
	DeleteAccount(ctx context.Context, id int64) error
}

type TransactionRepository interface {
	AppendTransaction(ctx context.Context, tx *model.Transaction) (int64, error)
	GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID int64, filter TransactionFilter) ([]*model.Transaction, error)
	ListTransfersBetween(ctx context.Context, accountA, accountB int64) ([]*model.Transaction, error)
}

// Repository is the persistence gateway used by the service layer.
type Repository interface {
	CustomerRepository
	AccountRepository
	TransactionRepository

	// ExecTx runs fn inside one database transaction. It commits when fn returns nil and
	// rolls back otherwise, including when ctx is cancelled. Calling ExecTx on the
	// Repository handed to fn joins the ambient transaction.
	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
