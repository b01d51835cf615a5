package model

import (
	"fmt"
	"strings"
	"time"
)

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "ACTIVE"
	CustomerInactive CustomerStatus = "INACTIVE"
	CustomerBlocked  CustomerStatus = "BLOCKED"
)

func ParseCustomerStatus(s string) (CustomerStatus, error) {
	status := CustomerStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case CustomerActive, CustomerInactive, CustomerBlocked:
		return status, nil
	default:
		return "", fmt.Errorf("%w: customer status '%s'", ErrInvalidStatus, s)
	}
}

// Customer is a lookup key for accounts; it does not own their lifetime.
type Customer struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	DateRegistered time.Time
	Status         CustomerStatus
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
