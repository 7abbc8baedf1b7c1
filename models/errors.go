package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no lines in
	// the cart. Raised before any database call.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingCustomerInfo is returned when the customer name or phone
	// number is blank at checkout. Raised before any database call.
	ErrMissingCustomerInfo = errors.New("customer name and phone number are required")
	// ErrMenuItemNotFound is returned for unknown or unavailable catalog ids.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrCustomerNotFound is returned by customer lookups with no match.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidOrderStatus is returned for status values outside the
	// closed enumeration.
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// RemoteQueryError wraps a failed read against the store. The caller
// surfaces it as an error state and does not retry.
type RemoteQueryError struct {
	Op  string
	Err error
}

func (e *RemoteQueryError) Error() string {
	return fmt.Sprintf("remote query %s: %v", e.Op, e.Err)
}

func (e *RemoteQueryError) Unwrap() error { return e.Err }

// OrderSubmissionError wraps any store failure during checkout. Earlier
// steps are not rolled back; a customer row created before the failing
// step survives it.
type OrderSubmissionError struct {
	Step string
	Err  error
}

func (e *OrderSubmissionError) Error() string {
	return fmt.Sprintf("order submission failed at %s: %v", e.Step, e.Err)
}

func (e *OrderSubmissionError) Unwrap() error { return e.Err }
