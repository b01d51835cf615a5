package store

import "errors"

var (
	ErrCustomerExists      = errors.New("customer already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
)
