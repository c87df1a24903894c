package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the timestamp format used in the registry and transaction logs.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp wraps time.Time so it marshals using TimeLayout instead of RFC 3339.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(TimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.New("timestamp must be a JSON string")
	}
	parsed, err := time.Parse(TimeLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// String returns the timestamp rendered with TimeLayout.
func (t Timestamp) String() string {
	return time.Time(t).Format(TimeLayout)
}

// Account represents one account as stored in the registry. The Balance field is
// a denormalized copy of the balance file's value, refreshed opportunistically;
// the balance file is the source of truth at session load time.
type Account struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Created Timestamp       `json:"created"`
	Balance decimal.Decimal `json:"balance"`
}

// CanAfford checks if the account has sufficient balance for an amount.
func (a *Account) CanAfford(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// HasPositiveBalance checks if the account has a positive balance.
func (a *Account) HasPositiveBalance() bool {
	return a.Balance.IsPositive()
}

// ValidateAmount checks if an amount is valid (positive and affordable).
func (a *Account) ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	if !a.CanAfford(amount) {
		return errors.New("insufficient balance")
	}
	return nil
}
