package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	minNameLength = 2
	maxNameLength = 50

	nameForbiddenChars = `<>/\|:*?"`
)

// maxAmount is the largest accepted monetary value (999 million).
var maxAmount = decimal.NewFromInt(999_999_999)

// ValidateAccountName checks an account holder name: trimmed, 2-50 characters,
// none of < > / \ | : * ? ". Returns the trimmed name.
func ValidateAccountName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Reason: "account name cannot be empty", Err: ErrInvalidName}
	}
	length := utf8.RuneCountInString(name)
	if length < minNameLength {
		return "", &ValidationError{
			Reason: fmt.Sprintf("account name must be at least %d characters", minNameLength),
			Err:    ErrInvalidName,
		}
	}
	if length > maxNameLength {
		return "", &ValidationError{
			Reason: fmt.Sprintf("account name cannot exceed %d characters", maxNameLength),
			Err:    ErrInvalidName,
		}
	}
	if strings.ContainsAny(name, nameForbiddenChars) {
		return "", &ValidationError{Reason: "account name contains invalid characters", Err: ErrInvalidName}
	}
	return name, nil
}

// ParseAmount parses a user-entered monetary amount. Currency symbols, commas
// and spaces are stripped; negatives, values over 999,999,999 and more than two
// decimal places are rejected.
func ParseAmount(input string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("R", "", ",", "", " ", "").Replace(strings.TrimSpace(input))
	if clean == "" {
		return decimal.Zero, &ValidationError{Reason: "amount cannot be empty", Err: ErrInvalidAmount}
	}

	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, &ValidationError{Reason: "invalid amount format", Err: ErrInvalidAmount}
	}
	if amount.IsNegative() {
		return decimal.Zero, &ValidationError{Reason: "amount cannot be negative", Err: ErrInvalidAmount}
	}
	if amount.GreaterThan(maxAmount) {
		return decimal.Zero, &ValidationError{Reason: "amount exceeds maximum limit", Err: ErrInvalidAmount}
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, &ValidationError{Reason: "amount cannot have more than 2 decimal places", Err: ErrInvalidAmount}
	}
	return amount, nil
}
