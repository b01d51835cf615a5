package service

import (
	"log/slog"

	"github.com/hance08/bankcore/internal/config"
	"github.com/hance08/bankcore/internal/store"
)

type Service struct {
	Customer *CustomerService
	Account  *AccountService
	Ledger   *LedgerService
	Interest *InterestService
}

func NewService(repo store.Repository, cfg *config.Config, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ledger := NewLedgerService(repo, log)
	return &Service{
		Customer: NewCustomerService(repo, log),
		Account:  NewAccountService(repo, cfg, log),
		Ledger:   ledger,
		Interest: NewInterestService(repo, ledger, log),
	}
}
