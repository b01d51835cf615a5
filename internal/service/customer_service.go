package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hance08/bankcore/internal/model"
	"github.com/hance08/bankcore/internal/store"
	"github.com/hance08/bankcore/internal/validation"
)

// CustomerInput carries customer details. On Update, empty fields keep their current value.
type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

func (in *CustomerInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
}

func (in *CustomerInput) validate(partial bool) error {
	check := func(field, value string, fn func(string) error) error {
		if partial && value == "" {
			return nil
		}
		if err := fn(value); err != nil {
			return fmt.Errorf("%w: %s: %v", model.ErrInvalidCustomer, field, err)
		}
		return nil
	}

	if err := check("first name", in.FirstName, validation.ValidateName); err != nil {
		return err
	}
	if err := check("last name", in.LastName, validation.ValidateName); err != nil {
		return err
	}
	if err := check("email", in.Email, validation.ValidateEmail); err != nil {
		return err
	}
	return check("phone", in.Phone, validation.ValidatePhone)
}

type CustomerService struct {
	repo store.Repository
	log  *slog.Logger
}

func NewCustomerService(repo store.Repository, log *slog.Logger) *CustomerService {
	return &CustomerService{repo: repo, log: log}
}

func (cs *CustomerService) Register(ctx context.Context, in CustomerInput) (*model.Customer, error) {
	const op = "register customer"

	in.normalize()
	if err := in.validate(false); err != nil {
		return nil, fail(cs.log, op, err, "email", in.Email)
	}

	customer := &model.Customer{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		DateRegistered: time.Now().UTC().Truncate(time.Second),
		Status:         model.CustomerActive,
	}

	id, err := cs.repo.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, fail(cs.log, op, emailTakenErr(in.Email, err), "email", in.Email)
	}
	customer.ID = id

	cs.log.Info("customer registered", "customer_id", id, "email", customer.Email)
	return customer, nil
}

func (cs *CustomerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := cs.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, translate("get customer", customerLookupErr(id, err))
	}
	return customer, nil
}

func (cs *CustomerService) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	customer, err := cs.repo.GetCustomerByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("'%s': %w", email, model.ErrCustomerNotFound)
		}
		return nil, translate("get customer", err)
	}
	return customer, nil
}

func (cs *CustomerService) List(ctx context.Context) ([]*model.Customer, error) {
	customers, err := cs.repo.ListCustomers(ctx)
	return customers, translate("list customers", err)
}

// Search matches name against first and last names, case-insensitively.
func (cs *CustomerService) Search(ctx context.Context, name string) ([]*model.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return cs.List(ctx)
	}
	customers, err := cs.repo.SearchCustomers(ctx, name)
	return customers, translate("search customers", err)
}

func (cs *CustomerService) Update(ctx context.Context, id int64, in CustomerInput) (*model.Customer, error) {
	const op = "update customer"

	in.normalize()
	if err := in.validate(true); err != nil {
		return nil, fail(cs.log, op, err, "customer_id", id)
	}

	var updated *model.Customer
	err := cs.repo.ExecTx(ctx, func(repo store.Repository) error {
		customer, err := repo.GetCustomerByID(ctx, id)
		if err != nil {
			return customerLookupErr(id, err)
		}

		if in.FirstName != "" {
			customer.FirstName = in.FirstName
		}
		if in.LastName != "" {
			customer.LastName = in.LastName
		}
		if in.Email != "" {
			customer.Email = in.Email
		}
		if in.Phone != "" {
			customer.Phone = in.Phone
		}
		if in.Address != "" {
			customer.Address = in.Address
		}

		if err := repo.UpdateCustomer(ctx, customer); err != nil {
			return emailTakenErr(customer.Email, err)
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, fail(cs.log, op, err, "customer_id", id)
	}

	cs.log.Info("customer updated", "customer_id", id)
	return updated, nil
}

func (cs *CustomerService) UpdateStatus(ctx context.Context, id int64, status model.CustomerStatus) (*model.Customer, error) {
	const op = "update customer status"

	if _, err := model.ParseCustomerStatus(string(status)); err != nil {
		return nil, fail(cs.log, op, err, "customer_id", id)
	}

	var updated *model.Customer
	err := cs.repo.ExecTx(ctx, func(repo store.Repository) error {
		customer, err := repo.GetCustomerByID(ctx, id)
		if err != nil {
			return customerLookupErr(id, err)
		}
		if customer.Status == status {
			updated = customer
			return nil
		}

		customer.Status = status
		if err := repo.UpdateCustomer(ctx, customer); err != nil {
			return err
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, fail(cs.log, op, err, "customer_id", id, "status", status)
	}

	cs.log.Info("customer status changed", "customer_id", id, "status", status)
	return updated, nil
}

// Delete removes the customer together with all of their accounts and the transaction
// records those accounts own, in one atomic unit. It returns the number of accounts removed.
func (cs *CustomerService) Delete(ctx context.Context, id int64) (int, error) {
	const op = "delete customer"

	removed := 0
	err := cs.repo.ExecTx(ctx, func(repo store.Repository) error {
		if _, err := repo.GetCustomerByID(ctx, id); err != nil {
			return customerLookupErr(id, err)
		}

		accounts, err := repo.ListAccounts(ctx, store.AccountFilter{CustomerID: id})
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			if err := repo.DeleteAccount(ctx, acc.ID); err != nil {
				return fmt.Errorf("account #%d: %w", acc.ID, err)
			}
		}
		removed = len(accounts)

		return repo.DeleteCustomer(ctx, id)
	})
	if err != nil {
		return 0, fail(cs.log, op, err, "customer_id", id)
	}

	cs.log.Info("customer deleted", "customer_id", id, "accounts_removed", removed)
	return removed, nil
}

func emailTakenErr(email string, err error) error {
	if errors.Is(err, store.ErrCustomerExists) {
		return fmt.Errorf("'%s': %w", email, model.ErrCustomerExists)
	}
	return err
}
