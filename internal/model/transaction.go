package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/bankcore/internal/constants"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit     TransactionKind = "DEPOSIT"
	KindWithdrawal  TransactionKind = "WITHDRAWAL"
	KindTransferOut TransactionKind = "TRANSFER_OUT"
	KindTransferIn  TransactionKind = "TRANSFER_IN"
	KindInterest    TransactionKind = "INTEREST"
)

func ParseTransactionKind(s string) (TransactionKind, error) {
	kind := TransactionKind(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	switch kind {
	case KindDeposit, KindWithdrawal, KindTransferOut, KindTransferIn, KindInterest:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrInvalidKind, s)
	}
}

// IsCredit reports whether the kind increases the owning account's balance.
func (k TransactionKind) IsCredit() bool {
	switch k {
	case KindDeposit, KindTransferIn, KindInterest:
		return true
	default:
		return false
	}
}

// Transaction is one immutable ledger record. Amount is always positive; the direction
// comes from Kind. Both legs of a transfer share the same Reference.
type Transaction struct {
	ID                    int64
	Reference             uuid.UUID
	AccountID             int64
	Kind                  TransactionKind
	Amount                decimal.Decimal
	BalanceAfter          decimal.Decimal
	Timestamp             time.Time
	Description           string
	CounterpartyAccountID *int64
}

func NewTransaction(accountID int64, kind TransactionKind, amount decimal.Decimal, description string) *Transaction {
	return &Transaction{
		Reference:   uuid.New(),
		AccountID:   accountID,
		Kind:        kind,
		Amount:      amount,
		Timestamp:   time.Now().UTC().Truncate(time.Second),
		Description: description,
	}
}

// NewTransferPair builds the TRANSFER_OUT and TRANSFER_IN legs of one transfer.
func NewTransferPair(fromID, toID int64, amount decimal.Decimal, description string) (*Transaction, *Transaction) {
	ref := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	from, to := fromID, toID

	out := &Transaction{
		Reference:             ref,
		AccountID:             fromID,
		Kind:                  KindTransferOut,
		Amount:                amount,
		Timestamp:             now,
		Description:           fmt.Sprintf(constants.TransferOutMemo, toID, description),
		CounterpartyAccountID: &to,
	}
	in := &Transaction{
		Reference:             ref,
		AccountID:             toID,
		Kind:                  KindTransferIn,
		Amount:                amount,
		Timestamp:             now,
		Description:           fmt.Sprintf(constants.TransferInMemo, fromID, description),
		CounterpartyAccountID: &from,
	}
	return out, in
}

// SignedAmount is Amount with the sign of its effect on the owning account.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}
