package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hance08/bankcore/internal/model"
)

const customerColumns = `id, first_name, last_name, email, phone, address, date_registered, status`

func (s *Store) CreateCustomer(ctx context.Context, c *model.Customer) (int64, error) {
	stmt, err := s.db.PrepareContext(ctx, `
        INSERT INTO customers (first_name, last_name, email, phone, address, date_registered, status)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRowContext(ctx,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
		c.DateRegistered.Unix(), string(c.Status),
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to create customer '%s': %w", c.Email, translateErr(err))
	}

	return newID, nil
}

func (s *Store) GetCustomerByID(ctx context.Context, id int64) (*model.Customer, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE id = ?", id)

	c, err := scanCustomer(row)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer with ID %d: %w", id, translateErr(err))
	}
	return c, nil
}

func (s *Store) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+customerColumns+" FROM customers WHERE email = ? COLLATE NOCASE", email)

	c, err := scanCustomer(row)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer '%s': %w", email, translateErr(err))
	}
	return c, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+customerColumns+" FROM customers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanCustomers(rows)
}

func (s *Store) SearchCustomers(ctx context.Context, name string) ([]*model.Customer, error) {
	pattern := "%" + name + "%"
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+customerColumns+`
        FROM customers
        WHERE LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)
        ORDER BY id
    `, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanCustomers(rows)
}

func (s *Store) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	result, err := s.db.ExecContext(ctx, `
        UPDATE customers
        SET first_name = ?, last_name = ?, email = ?, phone = ?, address = ?, status = ?
        WHERE id = ?
    `, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, string(c.Status), c.ID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", translateErr(err))
	}

	return checkAffected(result, "customer", c.ID)
}

func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", translateErr(err))
	}

	return checkAffected(result, "customer", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*model.Customer, error) {
	c := &model.Customer{}
	var registered int64
	var status string

	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email,
		&c.Phone, &c.Address, &registered, &status,
	)
	if err != nil {
		return nil, err
	}

	c.DateRegistered = time.Unix(registered, 0).UTC()
	c.Status = model.CustomerStatus(status)
	return c, nil
}

func scanCustomers(rows *sql.Rows) ([]*model.Customer, error) {
	var customers []*model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}
