package entities

import "github.com/shopspring/decimal"

// TransactionLogEntry is one line of an account's append-only transaction log.
// The log is a write-only audit trail; nothing derives balance state from it.
type TransactionLogEntry struct {
	Timestamp Timestamp       `json:"timestamp"`
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Service   string          `json:"service,omitempty"`
	Token     string          `json:"token,omitempty"`
	ReceiptID string          `json:"receipt_id"`
}
