package mysql

import (
	"time"

	"github.com/google/uuid"
	"github.com/hance08/bankcore/internal/model"
	"github.com/shopspring/decimal"
)

type sqlCustomer struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	FirstName      string    `gorm:"type:varchar(50);not null"`
	LastName       string    `gorm:"type:varchar(50);not null"`
	Email          string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Phone          string    `gorm:"type:varchar(20);not null;default:''"`
	Address        string    `gorm:"type:text"`
	DateRegistered time.Time `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
}

func (*sqlCustomer) TableName() string {
	return "customers"
}

type sqlAccount struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID     int64           `gorm:"index;not null"`
	AccountType    string          `gorm:"type:varchar(20);not null"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0"`
	InterestRate   decimal.Decimal `gorm:"type:decimal(10,8);not null;default:0"`
	OverdraftLimit decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0"`
	DateOpened     time.Time       `gorm:"not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

type sqlTransaction struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement"`
	Reference             string          `gorm:"type:char(36);index;not null"`
	AccountID             int64           `gorm:"index:idx_transactions_account,priority:1;not null"`
	TransactionType       string          `gorm:"type:varchar(20);not null"`
	Amount                decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	BalanceAfter          decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Timestamp             time.Time       `gorm:"index:idx_transactions_account,priority:2;not null"`
	Description           string          `gorm:"type:text"`
	CounterpartyAccountID *int64
}

func (*sqlTransaction) TableName() string {
	return "transactions"
}

func toCustomerRow(c *model.Customer) *sqlCustomer {
	return &sqlCustomer{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		DateRegistered: c.DateRegistered,
		Status:         string(c.Status),
	}
}

func (r *sqlCustomer) toModel() *model.Customer {
	return &model.Customer{
		ID:             r.ID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		DateRegistered: r.DateRegistered.UTC(),
		Status:         model.CustomerStatus(r.Status),
	}
}

func toAccountRow(a *model.Account) *sqlAccount {
	return &sqlAccount{
		ID:             a.ID,
		CustomerID:     a.CustomerID,
		AccountType:    string(a.Type),
		Balance:        a.Balance,
		InterestRate:   a.InterestRate,
		OverdraftLimit: a.OverdraftLimit,
		DateOpened:     a.DateOpened,
		Status:         string(a.Status),
	}
}

func (r *sqlAccount) toModel() *model.Account {
	return &model.Account{
		ID:             r.ID,
		CustomerID:     r.CustomerID,
		Type:           model.AccountType(r.AccountType),
		Balance:        r.Balance,
		DateOpened:     r.DateOpened.UTC(),
		Status:         model.AccountStatus(r.Status),
		InterestRate:   r.InterestRate,
		OverdraftLimit: r.OverdraftLimit,
	}
}

func toTransactionRow(t *model.Transaction) *sqlTransaction {
	return &sqlTransaction{
		ID:                    t.ID,
		Reference:             t.Reference.String(),
		AccountID:             t.AccountID,
		TransactionType:       string(t.Kind),
		Amount:                t.Amount,
		BalanceAfter:          t.BalanceAfter,
		Timestamp:             t.Timestamp,
		Description:           t.Description,
		CounterpartyAccountID: t.CounterpartyAccountID,
	}
}

func (r *sqlTransaction) toModel() (*model.Transaction, error) {
	ref, err := uuid.Parse(r.Reference)
	if err != nil {
		return nil, err
	}
	return &model.Transaction{
		ID:                    r.ID,
		Reference:             ref,
		AccountID:             r.AccountID,
		Kind:                  model.TransactionKind(r.TransactionType),
		Amount:                r.Amount,
		BalanceAfter:          r.BalanceAfter,
		Timestamp:             r.Timestamp.UTC(),
		Description:           r.Description,
		CounterpartyAccountID: r.CounterpartyAccountID,
	}, nil
}
