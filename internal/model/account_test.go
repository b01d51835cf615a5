package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewAccountValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		accType AccountType
		balance string
		term    string
		wantErr error
	}{
		{name: "savings at minimum", accType: AccountTypeSavings, balance: "100.00", term: "0.025"},
		{name: "savings below minimum", accType: AccountTypeSavings, balance: "99.99", term: "0.025", wantErr: ErrInvalidCreation},
		{name: "savings negative rate", accType: AccountTypeSavings, balance: "500", term: "-0.01", wantErr: ErrInvalidCreation},
		{name: "current zero balance", accType: AccountTypeCurrent, balance: "0", term: "200"},
		{name: "current negative balance", accType: AccountTypeCurrent, balance: "-1", term: "200", wantErr: ErrInvalidCreation},
		{name: "current negative overdraft", accType: AccountTypeCurrent, balance: "10", term: "-5", wantErr: ErrInvalidCreation},
		{name: "sub-cent balance", accType: AccountTypeCurrent, balance: "10.001", term: "0", wantErr: ErrInvalidCreation},
		{name: "current balance at maximum", accType: AccountTypeCurrent, balance: "92233720368547.75", term: "0"},
		{name: "current balance past maximum", accType: AccountTypeCurrent, balance: "200000000000000000.00", term: "0", wantErr: ErrInvalidCreation},
		{name: "savings balance past maximum", accType: AccountTypeSavings, balance: "92233720368547.76", term: "0.01", wantErr: ErrInvalidCreation},
		{name: "overdraft past maximum", accType: AccountTypeCurrent, balance: "0", term: "92233720368547.76", wantErr: ErrInvalidCreation},
		{name: "rate above one", accType: AccountTypeSavings, balance: "500", term: "1.5", wantErr: ErrInvalidCreation},
		{name: "rate finer than storage", accType: AccountTypeSavings, balance: "500", term: "0.123456789", wantErr: ErrInvalidCreation},
		{name: "unknown type", accType: AccountType("LOAN"), balance: "10", term: "0", wantErr: ErrInvalidAccountType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc, err := NewAccount(tt.accType, 7, dec(tt.balance), dec(tt.term))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, AccountActive, acc.Status)
			require.Equal(t, int64(7), acc.CustomerID)
			require.True(t, acc.RateOrLimit().Equal(dec(tt.term)))
		})
	}
}

func TestWithdrawalCeiling(t *testing.T) {
	t.Parallel()

	savings := &Account{Type: AccountTypeSavings, Balance: dec("1000.00"), InterestRate: dec("0.025")}
	require.Equal(t, "900.00", savings.WithdrawalCeiling().StringFixed(2))

	current := &Account{Type: AccountTypeCurrent, Balance: dec("500.00"), OverdraftLimit: dec("200.00")}
	require.Equal(t, "700.00", current.WithdrawalCeiling().StringFixed(2))

	current.Balance = dec("-150.00")
	require.True(t, current.IsOverdrawn())
	require.Equal(t, "50.00", current.WithdrawalCeiling().StringFixed(2))
}

func TestInterest(t *testing.T) {
	t.Parallel()

	savings := &Account{Type: AccountTypeSavings, Balance: dec("1000.00"), InterestRate: dec("0.025")}
	require.Equal(t, "25.00", savings.Interest().StringFixed(2))

	// 100.50 * 0.025 = 2.5125
	savings.Balance = dec("100.50")
	require.Equal(t, "2.51", savings.Interest().StringFixed(2))

	savings.Balance = dec("100.00")
	savings.InterestRate = dec("0.00125")
	require.Equal(t, "0.12", savings.Interest().StringFixed(2), "0.125 rounds half to even")

	savings.InterestRate = dec("0.00135")
	require.Equal(t, "0.14", savings.Interest().StringFixed(2), "0.135 rounds half to even")

	current := &Account{Type: AccountTypeCurrent, Balance: dec("5000"), OverdraftLimit: dec("100")}
	require.True(t, current.Interest().IsZero())
}

func TestCheckTransition(t *testing.T) {
	t.Parallel()

	acc := &Account{ID: 3, Type: AccountTypeCurrent, Balance: dec("0.01"), Status: AccountActive}

	err := acc.CheckTransition(AccountClosed)
	require.ErrorIs(t, err, ErrCannotClose)
	require.ErrorIs(t, err, ErrState)

	require.NoError(t, acc.CheckTransition(AccountFrozen))

	acc.Balance = decimal.Zero
	require.NoError(t, acc.CheckTransition(AccountClosed))

	acc.Status = AccountClosed
	require.ErrorIs(t, acc.CheckTransition(AccountActive), ErrAccountClosed)
	require.NoError(t, acc.CheckTransition(AccountClosed))

	require.ErrorIs(t, acc.CheckTransition(AccountStatus("DORMANT")), ErrInvalidStatus)
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	typ, err := ParseAccountType("savings")
	require.NoError(t, err)
	require.Equal(t, AccountTypeSavings, typ)

	typ, err = ParseAccountType("c")
	require.NoError(t, err)
	require.Equal(t, AccountTypeCurrent, typ)

	_, err = ParseAccountType("checking")
	require.ErrorIs(t, err, ErrValidation)

	kind, err := ParseTransactionKind("transfer-out")
	require.NoError(t, err)
	require.Equal(t, KindTransferOut, kind)

	_, err = ParseCustomerStatus("frozen")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTransferPairIsReciprocal(t *testing.T) {
	t.Parallel()

	out, in := NewTransferPair(1, 2, dec("300.00"), "rent")
	require.Equal(t, out.Reference, in.Reference)
	require.Equal(t, int64(2), *out.CounterpartyAccountID)
	require.Equal(t, int64(1), *in.CounterpartyAccountID)
	require.Equal(t, "Transfer to account #2: rent", out.Description)
	require.Equal(t, "Transfer from account #1: rent", in.Description)
	require.True(t, out.SignedAmount().Equal(dec("-300")))
	require.True(t, in.SignedAmount().Equal(dec("300")))
}

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	var err error = &InsufficientFundsError{AccountID: 4, Requested: dec("710"), Available: dec("700")}
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.Equal(t, "insufficient funds in account #4: requested 710.00, available 700.00", err.Error())

	var ife *InsufficientFundsError
	require.True(t, errors.As(err, &ife))
	require.True(t, ife.Available.Equal(dec("700")))

	infra := NewInfrastructureError("deposit", errors.New("database is locked"))
	require.ErrorIs(t, infra, ErrInfrastructure)
	require.NotContains(t, infra.Error(), "locked")
}
