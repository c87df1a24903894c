package console

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"biller/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintAccountsTable_NumericOrderAndTruncation(t *testing.T) {
	out := &bytes.Buffer{}
	style := NewStyle(out)

	accounts := map[string]*entities.Account{
		"10": {ID: 10, Name: "Tenth Account", Created: entities.Timestamp(time.Now()), Balance: decimal.NewFromInt(10)},
		"2":  {ID: 2, Name: strings.Repeat("x", 40), Created: entities.Timestamp(time.Now()), Balance: decimal.NewFromInt(2)},
		"1":  {ID: 1, Name: "First Account", Created: entities.Timestamp(time.Now()), Balance: decimal.NewFromInt(1)},
	}
	style.PrintAccountsTable(accounts)

	output := out.String()

	// Rows come out in numeric id order, not lexicographic.
	first := strings.Index(output, "First Account")
	second := strings.Index(output, strings.Repeat("x", 24))
	tenth := strings.Index(output, "Tenth Account")
	require.Greater(t, first, -1)
	assert.Less(t, first, second)
	assert.Less(t, second, tenth)

	// Long names are truncated to the column width.
	assert.NotContains(t, output, strings.Repeat("x", 25))
}

func TestPrintAccountsTable_TruncatesNamesByRune(t *testing.T) {
	out := &bytes.Buffer{}
	style := NewStyle(out)

	accounts := map[string]*entities.Account{
		"1": {ID: 1, Name: strings.Repeat("Ж", 40), Created: entities.Timestamp(time.Now()), Balance: decimal.NewFromInt(1)},
	}
	style.PrintAccountsTable(accounts)

	output := out.String()
	assert.Contains(t, output, strings.Repeat("Ж", 24))
	assert.NotContains(t, output, strings.Repeat("Ж", 25))
	assert.True(t, utf8.ValidString(output))
}

func TestPrintHeader_CentersNonASCIITitles(t *testing.T) {
	out := &bytes.Buffer{}
	style := NewStyle(out)

	style.PrintHeader(strings.Repeat("Ж", 10))

	// Padding is computed from the character count, not the byte count.
	assert.Contains(t, out.String(), strings.Repeat(" ", 30)+strings.Repeat("Ж", 10)+"\n")
}

func TestPrintAccountsTable_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	NewStyle(out).PrintAccountsTable(nil)
	assert.Contains(t, out.String(), "No accounts registered.")
}

func TestPrintReceipt(t *testing.T) {
	out := &bytes.Buffer{}
	style := NewStyle(out)

	style.PrintReceipt("Electricity", "R120.00", "R880.00", "1111 2222 3333 4444", "2026-08-29 12:00:00")

	output := out.String()
	assert.Contains(t, output, "TRANSACTION COMPLETED")
	assert.Contains(t, output, "Service: Electricity")
	assert.Contains(t, output, "Reference Token: 1111 2222 3333 4444")
	assert.Contains(t, output, "New Balance: R880.00")
}

func TestPrintReceipt_NoTokenLineWhenEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	NewStyle(out).PrintReceipt("Netflix Bill Payment", "R199.99", "R800.01", "", "2026-08-29 12:00:00")
	assert.NotContains(t, out.String(), "Reference Token:")
}

func TestPrintMenu(t *testing.T) {
	out := &bytes.Buffer{}
	NewStyle(out).PrintMenu([]string{"First", "Second"})

	output := out.String()
	assert.Contains(t, output, "1. First")
	assert.Contains(t, output, "2. Second")
}
