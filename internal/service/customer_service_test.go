package service

import (
	"context"
	"testing"

	"github.com/hance08/bankcore/internal/model"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	c, err := svc.Customer.Register(ctx, CustomerInput{
		FirstName: "  Alan ",
		LastName:  "Turing",
		Email:     "Alan@Example.com",
		Phone:     "+44 20 7946 0958",
	})
	require.NoError(t, err)
	require.Equal(t, "Alan Turing", c.FullName())
	require.Equal(t, "alan@example.com", c.Email)
	require.Equal(t, model.CustomerActive, c.Status)

	_, err = svc.Customer.Register(ctx, CustomerInput{FirstName: "A", LastName: "T", Email: "ALAN@example.com"})
	require.ErrorIs(t, err, model.ErrCustomerExists)

	invalid := []CustomerInput{
		{FirstName: "", LastName: "Turing", Email: "x@example.com"},
		{FirstName: "Alan", LastName: "Turing", Email: "not-an-email"},
		{FirstName: "Alan", LastName: "Turing", Email: "x@example.com", Phone: "call me"},
		{FirstName: "R2D2", LastName: "Droid", Email: "r2@example.com"},
	}
	for _, in := range invalid {
		_, err := svc.Customer.Register(ctx, in)
		require.ErrorIs(t, err, model.ErrInvalidCustomer)
	}

	got, err := svc.Customer.GetByEmail(ctx, "alan@example.com")
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)

	_, err = svc.Customer.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, model.ErrCustomerNotFound)
}

func TestUpdateCustomer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "update@example.com")
	other := mustCustomer(t, svc, "taken@example.com")

	updated, err := svc.Customer.Update(ctx, c.ID, CustomerInput{Address: "1 Main St", Phone: "555-123-4567"})
	require.NoError(t, err)
	require.Equal(t, "1 Main St", updated.Address)
	require.Equal(t, "Grace", updated.FirstName)

	_, err = svc.Customer.Update(ctx, c.ID, CustomerInput{Email: other.Email})
	require.ErrorIs(t, err, model.ErrCustomerExists)

	_, err = svc.Customer.Update(ctx, 9999, CustomerInput{Address: "nowhere"})
	require.ErrorIs(t, err, model.ErrCustomerNotFound)

	found, err := svc.Customer.Search(ctx, "hop")
	require.NoError(t, err)
	require.Len(t, found, 2)

	all, err := svc.Customer.Search(ctx, " ")
	require.NoError(t, err)
	require.Len(t, all, 2)

	_, err = svc.Customer.UpdateStatus(ctx, c.ID, "SUSPENDED")
	require.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestDeleteCustomerCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "cascade@example.com")
	a := mustSavings(t, svc, c.ID, "500.00")
	b := mustCurrent(t, svc, c.ID, "20.00", "0")

	rec, err := svc.Ledger.Deposit(ctx, a.ID, dec("5"), "")
	require.NoError(t, err)

	removed, err := svc.Customer.Delete(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	_, err = svc.Customer.Get(ctx, c.ID)
	require.ErrorIs(t, err, model.ErrCustomerNotFound)
	_, err = svc.Account.Get(ctx, b.ID)
	require.ErrorIs(t, err, model.ErrAccountNotFound)
	_, err = svc.Ledger.GetTransaction(ctx, rec.ID)
	require.ErrorIs(t, err, model.ErrTransactionNotFound)

	_, err = svc.Customer.Delete(ctx, c.ID)
	require.ErrorIs(t, err, model.ErrCustomerNotFound)
}
