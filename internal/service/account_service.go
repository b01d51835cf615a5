package service

import (
	"context"
	"log/slog"

	"github.com/hance08/bankcore/internal/config"
	"github.com/hance08/bankcore/internal/constants"
	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/shopspring/decimal"
)

// AccountService is the account registry: it opens accounts, looks them up and moves them
// through their lifecycle. It never changes a balance.
type AccountService struct {
	repo   store.Repository
	config *config.Config
	log    *slog.Logger

	defaultRate      decimal.Decimal
	defaultOverdraft decimal.Decimal
}

func NewAccountService(repo store.Repository, cfg *config.Config, log *slog.Logger) *AccountService {
	if cfg == nil {
		cfg = config.NewDefault()
	}
	return &AccountService{
		repo:             repo,
		config:           cfg,
		log:              log,
		defaultRate:      decimalOr(cfg.Defaults.InterestRate, constants.DefaultInterestRate),
		defaultOverdraft: decimalOr(cfg.Defaults.OverdraftLimit, constants.DefaultOverdraftLimit),
	}
}

func (as *AccountService) Get(ctx context.Context, id int64) (*model.Account, error) {
	acc, err := as.repo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, translate("get account", accountLookupErr(id, err))
	}
	return acc, nil
}

// ListByCustomer returns the customer's accounts, oldest first. An unknown customer is an
// error rather than an empty list.
func (as *AccountService) ListByCustomer(ctx context.Context, customerID int64) ([]*model.Account, error) {
	if _, err := as.repo.GetCustomerByID(ctx, customerID); err != nil {
		return nil, translate("list accounts", customerLookupErr(customerID, err))
	}

	accounts, err := as.repo.ListAccounts(ctx, store.AccountFilter{CustomerID: customerID})
	return accounts, translate("list accounts", err)
}

func (as *AccountService) List(ctx context.Context, filter store.AccountFilter) ([]*model.Account, error) {
	accounts, err := as.repo.ListAccounts(ctx, filter)
	return accounts, translate("list accounts", err)
}

// DefaultTerms returns the configured interest rate or overdraft limit for accType.
func (as *AccountService) DefaultTerms(accType model.AccountType) decimal.Decimal {
	if accType == model.AccountTypeSavings {
		return as.defaultRate
	}
	return as.defaultOverdraft
}

func decimalOr(value, fallback string) decimal.Decimal {
	if d, err := decimal.NewFromString(value); err == nil {
		return d
	}
	return decimal.RequireFromString(fallback)
}
