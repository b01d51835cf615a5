package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/bankcore/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "bank.db")
	s, err := NewStore(dbPath, os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedCustomer(t *testing.T, s *Store, email string) *model.Customer {
	t.Helper()

	c := &model.Customer{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          email,
		DateRegistered: time.Now().UTC().Truncate(time.Second),
		Status:         model.CustomerActive,
	}
	id, err := s.CreateCustomer(context.Background(), c)
	require.NoError(t, err)
	c.ID = id
	return c
}

func TestCustomerCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	c := seedCustomer(t, s, "ada@example.com")

	got, err := s.GetCustomerByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)
	require.Equal(t, "Ada Lovelace", got.FullName())

	_, err = s.CreateCustomer(ctx, &model.Customer{FirstName: "X", LastName: "Y", Email: "ada@example.com", Status: model.CustomerActive})
	require.ErrorIs(t, err, ErrCustomerExists)

	got.Phone = "+441234567890"
	got.Status = model.CustomerBlocked
	require.NoError(t, s.UpdateCustomer(ctx, got))

	reloaded, err := s.GetCustomerByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "+441234567890", reloaded.Phone)
	require.Equal(t, model.CustomerBlocked, reloaded.Status)

	found, err := s.SearchCustomers(ctx, "love")
	require.NoError(t, err)
	require.Len(t, found, 1)

	require.NoError(t, s.DeleteCustomer(ctx, c.ID))
	_, err = s.GetCustomerByID(ctx, c.ID)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestAccountRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	c := seedCustomer(t, s, "acc@example.com")

	savings, err := model.NewAccount(model.AccountTypeSavings, c.ID, decimal.RequireFromString("1000.00"), decimal.RequireFromString("0.025"))
	require.NoError(t, err)
	savings.ID, err = s.CreateAccount(ctx, savings)
	require.NoError(t, err)

	current, err := model.NewAccount(model.AccountTypeCurrent, c.ID, decimal.RequireFromString("500.00"), decimal.RequireFromString("200.00"))
	require.NoError(t, err)
	current.ID, err = s.CreateAccount(ctx, current)
	require.NoError(t, err)

	got, err := s.GetAccountByID(ctx, savings.ID)
	require.NoError(t, err)
	require.Equal(t, model.AccountTypeSavings, got.Type)
	require.Equal(t, "1000.00", got.Balance.StringFixed(2))
	require.True(t, got.InterestRate.Equal(decimal.RequireFromString("0.025")))

	got, err = s.GetAccountForUpdate(ctx, current.ID)
	require.NoError(t, err)
	require.True(t, got.OverdraftLimit.Equal(decimal.NewFromInt(200)))

	list, err := s.ListAccounts(ctx, AccountFilter{CustomerID: c.ID, Type: model.AccountTypeCurrent})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, current.ID, list[0].ID)

	require.NoError(t, s.UpdateAccountBalance(ctx, current.ID, decimal.RequireFromString("-150.00")))
	got, err = s.GetAccountByID(ctx, current.ID)
	require.NoError(t, err)
	require.Equal(t, "-150.00", got.Balance.StringFixed(2))

	_, err = s.GetAccountByID(ctx, 9999)
	require.ErrorIs(t, err, ErrRecordNotFound)
	require.ErrorIs(t, s.UpdateAccountStatus(ctx, 9999, model.AccountFrozen), ErrRecordNotFound)
}

func TestSchemaRejectsPolicyBreaches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	c := seedCustomer(t, s, "guard@example.com")

	current, err := model.NewAccount(model.AccountTypeCurrent, c.ID, decimal.NewFromInt(10), decimal.NewFromInt(50))
	require.NoError(t, err)
	current.ID, err = s.CreateAccount(ctx, current)
	require.NoError(t, err)

	err = s.UpdateAccountBalance(ctx, current.ID, decimal.RequireFromString("-50.01"))
	require.ErrorIs(t, err, ErrConstraintViolation)

	err = s.UpdateAccountStatus(ctx, current.ID, model.AccountClosed)
	require.ErrorIs(t, err, ErrConstraintViolation)
}

func TestExecTxRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	c := seedCustomer(t, s, "tx@example.com")

	acc, err := model.NewAccount(model.AccountTypeCurrent, c.ID, decimal.NewFromInt(100), decimal.Zero)
	require.NoError(t, err)
	acc.ID, err = s.CreateAccount(ctx, acc)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.ExecTx(ctx, func(repo Repository) error {
		if err := repo.UpdateAccountBalance(ctx, acc.ID, decimal.NewFromInt(150)); err != nil {
			return err
		}
		rec := model.NewTransaction(acc.ID, model.KindDeposit, decimal.NewFromInt(50), "rolled back")
		rec.BalanceAfter = decimal.NewFromInt(150)
		if _, err := repo.AppendTransaction(ctx, rec); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.GetAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	require.Equal(t, "100.00", got.Balance.StringFixed(2))

	history, err := s.ListTransactionsByAccount(ctx, acc.ID, TransactionFilter{})
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestTransactionsQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)
	c := seedCustomer(t, s, "q@example.com")

	var ids []int64
	for i := 0; i < 2; i++ {
		acc, err := model.NewAccount(model.AccountTypeCurrent, c.ID, decimal.NewFromInt(1000), decimal.Zero)
		require.NoError(t, err)
		id, err := s.CreateAccount(ctx, acc)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	out, in := model.NewTransferPair(ids[0], ids[1], decimal.NewFromInt(300), "rent")
	out.BalanceAfter = decimal.NewFromInt(700)
	in.BalanceAfter = decimal.NewFromInt(1300)
	err := s.ExecTx(ctx, func(repo Repository) error {
		var err error
		if out.ID, err = repo.AppendTransaction(ctx, out); err != nil {
			return err
		}
		in.ID, err = repo.AppendTransaction(ctx, in)
		return err
	})
	require.NoError(t, err)
	require.Greater(t, in.ID, out.ID)

	dep := model.NewTransaction(ids[0], model.KindDeposit, decimal.RequireFromString("12.34"), "cash")
	dep.BalanceAfter = decimal.RequireFromString("712.34")
	_, err = s.AppendTransaction(ctx, dep)
	require.NoError(t, err)

	got, err := s.GetTransactionByID(ctx, out.ID)
	require.NoError(t, err)
	require.Equal(t, model.KindTransferOut, got.Kind)
	require.Equal(t, out.Reference, got.Reference)
	require.NotNil(t, got.CounterpartyAccountID)
	require.Equal(t, ids[1], *got.CounterpartyAccountID)

	transfers, err := s.ListTransfersBetween(ctx, ids[1], ids[0])
	require.NoError(t, err)
	require.Len(t, transfers, 2)

	deposits, err := s.ListTransactionsByAccount(ctx, ids[0], TransactionFilter{Kind: model.KindDeposit})
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	require.Equal(t, "12.34", deposits[0].Amount.StringFixed(2))
	require.Nil(t, deposits[0].CounterpartyAccountID)

	future, err := s.ListTransactionsByAccount(ctx, ids[0], TransactionFilter{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	require.Empty(t, future)

	require.NoError(t, s.DeleteAccount(ctx, ids[0]))
	_, err = s.GetTransactionByID(ctx, out.ID)
	require.ErrorIs(t, err, ErrRecordNotFound)
	_, err = s.GetTransactionByID(ctx, in.ID)
	require.NoError(t, err, "the counterparty's leg is kept")
}
