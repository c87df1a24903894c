package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	parsed, err := time.Parse(TimeLayout, "2026-08-29 14:05:09")
	require.NoError(t, err)

	data, err := json.Marshal(Timestamp(parsed))
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29 14:05:09"`, string(data))

	var ts Timestamp
	require.NoError(t, json.Unmarshal(data, &ts))
	assert.Equal(t, "2026-08-29 14:05:09", ts.String())
}

func TestTimestamp_UnmarshalRejectsNonString(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &ts))
}

func TestAccount_CanAfford(t *testing.T) {
	account := &Account{Balance: decimal.NewFromInt(100)}

	assert.True(t, account.CanAfford(decimal.NewFromInt(100)))
	assert.True(t, account.CanAfford(decimal.NewFromInt(99)))
	assert.False(t, account.CanAfford(decimal.NewFromInt(101)))
}

func TestAccount_ValidateAmount(t *testing.T) {
	account := &Account{Balance: decimal.NewFromInt(50)}

	assert.NoError(t, account.ValidateAmount(decimal.NewFromInt(50)))
	assert.Error(t, account.ValidateAmount(decimal.Zero))
	assert.Error(t, account.ValidateAmount(decimal.NewFromInt(-1)))
	assert.Error(t, account.ValidateAmount(decimal.NewFromInt(51)))
}

func TestTransactionType_DebitCredit(t *testing.T) {
	assert.True(t, TransactionTypeWithdrawal.IsDebit())
	assert.True(t, TransactionTypePurchase.IsDebit())
	assert.True(t, TransactionTypeBillPayment.IsDebit())
	assert.False(t, TransactionTypeDeposit.IsDebit())

	assert.True(t, TransactionTypeDeposit.IsCredit())
	assert.True(t, TransactionTypeInitial.IsCredit())
	assert.False(t, TransactionTypePurchase.IsCredit())
}

func TestCatalogs(t *testing.T) {
	services := Services()
	require.Len(t, services, 5)
	assert.Equal(t, "Electricity", services[0].Name)

	bills := Bills()
	require.Len(t, bills, 5)
	assert.Equal(t, "Netflix", bills[0].Name)
}
