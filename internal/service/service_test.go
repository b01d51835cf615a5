package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/bankcore/internal/config"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk I/O error: disk full")

func newTestRepo(t *testing.T) store.Repository {
	t.Helper()

	repo, err := store.NewStore(filepath.Join(t.TempDir(), "bank.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func newTestService(t *testing.T) (*Service, store.Repository) {
	t.Helper()

	repo := newTestRepo(t)
	return NewService(repo, config.NewDefault(), slog.New(slog.DiscardHandler)), repo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func terms(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func mustCustomer(t *testing.T, svc *Service, email string) *model.Customer {
	t.Helper()

	c, err := svc.Customer.Register(context.Background(), CustomerInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     email,
	})
	require.NoError(t, err)
	return c
}

func mustSavings(t *testing.T, svc *Service, customerID int64, balance string) *model.Account {
	t.Helper()

	acc, err := svc.Account.Create(context.Background(), CreateAccountInput{
		Type:           model.AccountTypeSavings,
		CustomerID:     customerID,
		InitialBalance: dec(balance),
		RateOrLimit:    terms("0.025"),
	})
	require.NoError(t, err)
	return acc
}

func mustCurrent(t *testing.T, svc *Service, customerID int64, balance, overdraft string) *model.Account {
	t.Helper()

	acc, err := svc.Account.Create(context.Background(), CreateAccountInput{
		Type:           model.AccountTypeCurrent,
		CustomerID:     customerID,
		InitialBalance: dec(balance),
		RateOrLimit:    terms(overdraft),
	})
	require.NoError(t, err)
	return acc
}

func balanceOf(t *testing.T, svc *Service, id int64) string {
	t.Helper()

	acc, err := svc.Account.Get(context.Background(), id)
	require.NoError(t, err)
	return acc.Balance.StringFixed(2)
}

// failingRepo fails every AppendTransaction for one account, including inside ExecTx.
type failingRepo struct {
	store.Repository
	failAccountID int64
}

func (r *failingRepo) ExecTx(ctx context.Context, fn func(store.Repository) error) error {
	return r.Repository.ExecTx(ctx, func(tx store.Repository) error {
		return fn(&failingRepo{Repository: tx, failAccountID: r.failAccountID})
	})
}

func (r *failingRepo) AppendTransaction(ctx context.Context, tx *model.Transaction) (int64, error) {
	if tx.AccountID == r.failAccountID {
		return 0, errDiskFull
	}
	return r.Repository.AppendTransaction(ctx, tx)
}
