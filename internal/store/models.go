package store

import (
	"time"

	"github.com/hance08/bankcore/internal/model"
)

// AccountFilter narrows ListAccounts. Zero values mean "any".
type AccountFilter struct {
	CustomerID int64
	Type       model.AccountType
	Status     model.AccountStatus
}

// TransactionFilter narrows ListTransactionsByAccount. Zero values mean "any"; Limit <= 0
// falls back to the default history limit.
type TransactionFilter struct {
	Kind  model.TransactionKind
	From  time.Time
	To    time.Time
	Limit int
}
