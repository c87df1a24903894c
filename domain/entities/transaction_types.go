package entities

// TransactionType represents the type of balance change recorded in an
// account's transaction log.
type TransactionType string

// All transaction types supported by the system
const (
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdrawal  TransactionType = "withdrawal"
	TransactionTypePurchase    TransactionType = "purchase"
	TransactionTypeBillPayment TransactionType = "bill_payment"
	TransactionTypeInitial     TransactionType = "initial"
)

// IsDebit returns true if this transaction type reduces the balance.
func (t TransactionType) IsDebit() bool {
	switch t {
	case TransactionTypeWithdrawal, TransactionTypePurchase, TransactionTypeBillPayment:
		return true
	default:
		return false
	}
}

// IsCredit returns true if this transaction type increases the balance.
func (t TransactionType) IsCredit() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeInitial
}

// Description returns a human-readable description of the transaction type.
func (t TransactionType) Description() string {
	switch t {
	case TransactionTypeDeposit:
		return "Deposit"
	case TransactionTypeWithdrawal:
		return "Withdrawal"
	case TransactionTypePurchase:
		return "Service purchase"
	case TransactionTypeBillPayment:
		return "Bill payment"
	case TransactionTypeInitial:
		return "Initial balance"
	default:
		return string(t)
	}
}
