package services

import (
	"errors"
	"fmt"

	"biller/domain/utils"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for non-positive or malformed amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidName is returned when an account name fails validation.
	ErrInvalidName = errors.New("invalid account name")

	// ErrPersistence is returned when an underlying file write did not
	// succeed. The in-memory state has been rolled back by the time the
	// caller sees this error.
	ErrPersistence = errors.New("failed to save to file")

	// ErrAccountNotFound is returned when an account id is not in the registry.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCreateFailed is returned when account creation fails irrecoverably
	// in a persistence step.
	ErrCreateFailed = errors.New("failed to create account")
)

// InsufficientFundsError reports a withdrawal exceeding the available balance.
type InsufficientFundsError struct {
	Available decimal.Decimal
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds, available: %s", utils.FormatCurrency(e.Available))
}

// ValidationError wraps a sentinel with the reason the input was rejected.
type ValidationError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
