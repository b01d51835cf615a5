package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/hance08/bankcore/internal/config"
	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestWithdrawSavingsKeepsMinimumBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "savings@example.com")
	acc := mustSavings(t, svc, c.ID, "1000.00")

	_, err := svc.Ledger.Withdraw(ctx, acc.ID, dec("950"), "too much")
	require.ErrorIs(t, err, model.ErrInsufficientFunds)

	var insufficient *model.InsufficientFundsError
	require.True(t, errors.As(err, &insufficient))
	require.Equal(t, acc.ID, insufficient.AccountID)
	require.Equal(t, "950.00", insufficient.Requested.StringFixed(2))
	require.Equal(t, "900.00", insufficient.Available.StringFixed(2))
	require.Equal(t, "1000.00", balanceOf(t, svc, acc.ID))

	rec, err := svc.Ledger.Withdraw(ctx, acc.ID, dec("900"), "rent")
	require.NoError(t, err)
	require.Equal(t, model.KindWithdrawal, rec.Kind)
	require.Equal(t, "100.00", rec.BalanceAfter.StringFixed(2))
	require.Equal(t, "100.00", balanceOf(t, svc, acc.ID))
}

func TestWithdrawCurrentUsesOverdraft(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "current@example.com")
	acc := mustCurrent(t, svc, c.ID, "500.00", "200.00")

	_, err := svc.Ledger.Withdraw(ctx, acc.ID, dec("650"), "")
	require.NoError(t, err)

	got, err := svc.Account.Get(ctx, acc.ID)
	require.NoError(t, err)
	require.Equal(t, "-150.00", got.Balance.StringFixed(2))
	require.True(t, got.IsOverdrawn())

	_, err = svc.Ledger.Withdraw(ctx, acc.ID, dec("60"), "")
	require.ErrorIs(t, err, model.ErrInsufficientFunds)
	require.Equal(t, "-150.00", balanceOf(t, svc, acc.ID))
}

func TestTransferMovesMoneyAndRecordsBothLegs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "transfer@example.com")
	a := mustSavings(t, svc, c.ID, "1000.00")
	b := mustSavings(t, svc, c.ID, "2000.00")

	out, in, err := svc.Ledger.Transfer(ctx, a.ID, b.ID, dec("300.00"), "savings top-up")
	require.NoError(t, err)

	require.Equal(t, "700.00", balanceOf(t, svc, a.ID))
	require.Equal(t, "2300.00", balanceOf(t, svc, b.ID))

	require.Equal(t, model.KindTransferOut, out.Kind)
	require.Equal(t, a.ID, out.AccountID)
	require.Equal(t, b.ID, *out.CounterpartyAccountID)
	require.Equal(t, model.KindTransferIn, in.Kind)
	require.Equal(t, b.ID, in.AccountID)
	require.Equal(t, a.ID, *in.CounterpartyAccountID)
	require.True(t, out.Amount.Equal(dec("300")))
	require.True(t, in.Amount.Equal(dec("300")))
	require.Equal(t, out.Reference, in.Reference)
	require.Contains(t, out.Description, "savings top-up")

	legs, err := svc.Ledger.TransfersBetween(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, legs, 2)

	historyA, err := svc.Ledger.History(ctx, a.ID, store.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, historyA, 1)
	require.Equal(t, out.ID, historyA[0].ID)
}

func TestTransferRejections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "reject@example.com")
	a := mustCurrent(t, svc, c.ID, "100.00", "0")
	b := mustCurrent(t, svc, c.ID, "100.00", "0")

	_, _, err := svc.Ledger.Transfer(ctx, a.ID, a.ID, dec("1"), "")
	require.ErrorIs(t, err, model.ErrInvalidTransfer)
	require.ErrorIs(t, err, model.ErrState)

	_, _, err = svc.Ledger.Transfer(ctx, a.ID, 9999, dec("1"), "")
	require.ErrorIs(t, err, model.ErrAccountNotFound)

	_, _, err = svc.Ledger.Transfer(ctx, a.ID, b.ID, dec("100.01"), "")
	require.ErrorIs(t, err, model.ErrInsufficientFunds)

	_, err = svc.Account.TransitionStatus(ctx, b.ID, model.AccountFrozen)
	require.NoError(t, err)
	_, _, err = svc.Ledger.Transfer(ctx, a.ID, b.ID, dec("10"), "")
	require.ErrorIs(t, err, model.ErrAccountNotActive)

	require.Equal(t, "100.00", balanceOf(t, svc, a.ID))
	require.Equal(t, "100.00", balanceOf(t, svc, b.ID))
	history, err := svc.Ledger.History(ctx, a.ID, store.TransactionFilter{})
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestTransferRollsBackWhenSecondLegFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := newTestRepo(t)
	log := slog.New(slog.DiscardHandler)
	setup := NewService(base, config.NewDefault(), log)

	c := mustCustomer(t, setup, "atomic@example.com")
	a := mustCurrent(t, setup, c.ID, "500.00", "0")
	b := mustCurrent(t, setup, c.ID, "500.00", "0")

	svc := NewService(&failingRepo{Repository: base, failAccountID: b.ID}, config.NewDefault(), log)
	_, _, err := svc.Ledger.Transfer(ctx, a.ID, b.ID, dec("200"), "")
	require.ErrorIs(t, err, model.ErrInfrastructure)
	require.NotContains(t, err.Error(), errDiskFull.Error())

	var infra *model.InfrastructureError
	require.True(t, errors.As(err, &infra))
	require.ErrorIs(t, infra.Cause, errDiskFull)

	require.Equal(t, "500.00", balanceOf(t, setup, a.ID))
	require.Equal(t, "500.00", balanceOf(t, setup, b.ID))
	legs, err := setup.Ledger.TransfersBetween(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Empty(t, legs)
}

func TestInvalidAmounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "amounts@example.com")
	acc := mustCurrent(t, svc, c.ID, "100.00", "0")

	for _, amount := range []string{"0", "-5", "1.005", "92233720368547.76"} {
		_, err := svc.Ledger.Deposit(ctx, acc.ID, dec(amount), "")
		require.ErrorIs(t, err, model.ErrInvalidAmount, amount)
		require.ErrorIs(t, err, model.ErrValidation, amount)
	}
	_, err := svc.Ledger.Deposit(ctx, 9999, dec("1"), "")
	require.ErrorIs(t, err, model.ErrAccountNotFound)

	require.Equal(t, "100.00", balanceOf(t, svc, acc.ID))
}

func TestCreditPastMaximumBalanceIsRejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newTestService(t)
	c := mustCustomer(t, svc, "ceiling@example.com")
	full := mustCurrent(t, svc, c.ID, constants.MaxSafeAmount, "0")
	source := mustCurrent(t, svc, c.ID, "50.00", "0")

	_, err := svc.Ledger.Deposit(ctx, full.ID, dec("1.00"), "")
	require.ErrorIs(t, err, model.ErrInvalidAmount)
	require.ErrorIs(t, err, model.ErrValidation)
	require.NotErrorIs(t, err, model.ErrInfrastructure)

	_, _, err = svc.Ledger.Transfer(ctx, source.ID, full.ID, dec("0.01"), "")
	require.ErrorIs(t, err, model.ErrInvalidAmount)

	require.Equal(t, constants.MaxSafeAmount, balanceOf(t, svc, full.ID))
	require.Equal(t, "50.00", balanceOf(t, svc, source.ID))

	for _, id := range []int64{full.ID, source.ID} {
		txs, err := repo.ListTransactionsByAccount(ctx, id, store.TransactionFilter{})
		require.NoError(t, err)
		require.Empty(t, txs)
	}
}

func TestDepositRecordsBalanceAfter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "deposit@example.com")
	acc := mustCurrent(t, svc, c.ID, "10.00", "0")

	first, err := svc.Ledger.Deposit(ctx, acc.ID, dec("0.10"), "coins")
	require.NoError(t, err)
	second, err := svc.Ledger.Deposit(ctx, acc.ID, dec("0.20"), "coins")
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)
	require.Equal(t, "10.30", second.BalanceAfter.StringFixed(2))
	require.Equal(t, "10.30", balanceOf(t, svc, acc.ID))

	got, err := svc.Ledger.GetTransaction(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "coins", got.Description)
	require.Equal(t, "10.10", got.BalanceAfter.StringFixed(2))

	_, err = svc.Ledger.GetTransaction(ctx, 9999)
	require.ErrorIs(t, err, model.ErrTransactionNotFound)

	deposits, err := svc.Ledger.History(ctx, acc.ID, store.TransactionFilter{Kind: model.KindDeposit, Limit: 1})
	require.NoError(t, err)
	require.Len(t, deposits, 1)

	_, err = svc.Ledger.History(ctx, 9999, store.TransactionFilter{})
	require.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestConcurrentWithdrawalsNeverBreachCeiling(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "race@example.com")
	acc := mustSavings(t, svc, c.ID, "1000.00")

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Ledger.Withdraw(ctx, acc.ID, dec("100"), "atm")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, model.ErrInsufficientFunds):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 9, succeeded)
	require.Equal(t, workers-9, rejected)
	require.Equal(t, "100.00", balanceOf(t, svc, acc.ID))

	history, err := svc.Ledger.History(ctx, acc.ID, store.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, history, 9)
}

func TestConcurrentOppositeTransfersConserveTotal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "pair@example.com")
	a := mustCurrent(t, svc, c.ID, "1000.00", "0")
	b := mustCurrent(t, svc, c.ID, "1000.00", "0")

	const rounds = 10
	var wg sync.WaitGroup
	errs := make(chan error, 2*rounds)
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _, err := svc.Ledger.Transfer(ctx, a.ID, b.ID, dec("15.00"), "a to b")
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, _, err := svc.Ledger.Transfer(ctx, b.ID, a.ID, dec("5.00"), "b to a")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, "900.00", balanceOf(t, svc, a.ID))
	require.Equal(t, "1100.00", balanceOf(t, svc, b.ID))

	legs, err := svc.Ledger.TransfersBetween(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, legs, 4*rounds)

	total := decimal.Zero
	for _, leg := range legs {
		total = total.Add(leg.SignedAmount())
	}
	require.True(t, total.IsZero())
}

func TestCancelledContextWritesNothing(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	c := mustCustomer(t, svc, "cancel@example.com")
	acc := mustCurrent(t, svc, c.ID, "100.00", "0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Ledger.Deposit(ctx, acc.ID, dec("50"), "")
	require.ErrorIs(t, err, model.ErrInfrastructure)
	require.Equal(t, "100.00", balanceOf(t, svc, acc.ID))
}
