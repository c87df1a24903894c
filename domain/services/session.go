package services

import (
	"strconv"
	"time"

	"biller/domain/entities"
	"biller/domain/interfaces"
	"biller/domain/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Session is the runtime representation of one logged-in account. The balance
// is loaded from the balance file at construction and mutated in memory with
// write-through persistence: a failed write rolls the in-memory value back so
// the observable balance always matches the last successfully persisted state.
//
// There is no locking. Two Sessions for the same id will silently race; the
// design assumes a single process and a single session at a time.
type Session struct {
	accountID int64
	balance   decimal.Decimal
	store     interfaces.Store
}

// Receipt describes a completed debit transaction.
type Receipt struct {
	ReceiptID  string
	Token      string
	Service    string
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
	Timestamp  time.Time
}

// NewSession opens a session for an account, loading its balance from the
// balance file (the registry's balance field is only a cache and is ignored).
func NewSession(accountID int64, def decimal.Decimal, store interfaces.Store) *Session {
	return &Session{
		accountID: accountID,
		balance:   store.LoadBalance(accountID, def),
		store:     store,
	}
}

// AccountID returns the id this session is bound to.
func (s *Session) AccountID() int64 {
	return s.accountID
}

// Balance returns the in-memory balance without re-reading the store.
func (s *Session) Balance() decimal.Decimal {
	return s.balance
}

// Refresh re-reads the balance file, overwriting the in-memory value. There is
// no conflict detection; the last read wins.
func (s *Session) Refresh() decimal.Decimal {
	s.balance = s.store.LoadBalance(s.accountID, s.balance)
	return s.balance
}

// Deposit credits the account. Fails with ErrInvalidAmount for non-positive
// amounts and ErrPersistence when the balance file write fails; in the latter
// case the in-memory balance is reverted to its pre-increment value.
func (s *Session) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return s.balance, ErrInvalidAmount
	}

	previous := s.balance
	s.balance = s.balance.Add(amount)

	if !s.store.SaveBalance(s.accountID, s.balance) {
		s.balance = previous
		log.WithFields(log.Fields{
			"account_id": s.accountID,
			"amount":     amount.String(),
		}).Warn("Deposit rolled back, balance write failed")
		return s.balance, ErrPersistence
	}

	s.logTransaction(entities.TransactionTypeDeposit, amount, "", "")
	return s.balance, nil
}

// Withdraw debits the account. Fails with ErrInvalidAmount for non-positive
// amounts, with InsufficientFundsError when the amount exceeds the balance,
// and with ErrPersistence (after in-memory rollback) when the write fails.
func (s *Session) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	balance, _, err := s.debit(entities.TransactionTypeWithdrawal, amount, "", "")
	return balance, err
}

// Purchase debits the account for a service and issues a reference token.
func (s *Session) Purchase(service string, amount decimal.Decimal) (*Receipt, error) {
	token := utils.GenerateToken()
	balance, receiptID, err := s.debit(entities.TransactionTypePurchase, amount, service, token)
	if err != nil {
		return nil, err
	}
	return &Receipt{
		ReceiptID:  receiptID,
		Token:      token,
		Service:    service,
		Amount:     amount,
		NewBalance: balance,
		Timestamp:  time.Now(),
	}, nil
}

// PayBill debits the account for a bill payment. No token is issued.
func (s *Session) PayBill(bill string, amount decimal.Decimal) (*Receipt, error) {
	balance, receiptID, err := s.debit(entities.TransactionTypeBillPayment, amount, bill, "")
	if err != nil {
		return nil, err
	}
	return &Receipt{
		ReceiptID:  receiptID,
		Service:    bill,
		Amount:     amount,
		NewBalance: balance,
		Timestamp:  time.Now(),
	}, nil
}

// History returns up to limit recent transaction log entries, oldest first.
func (s *Session) History(limit int) []*entities.TransactionLogEntry {
	return s.store.History(s.accountID, limit)
}

// Close performs the logout sync: the registry's denormalized balance field is
// refreshed with the session's final balance. Best-effort; a failed save is
// logged and the balance file remains authoritative either way.
func (s *Session) Close() {
	accounts := s.store.LoadRegistry()
	key := strconv.FormatInt(s.accountID, 10)
	account, ok := accounts[key]
	if !ok {
		return
	}
	account.Balance = s.balance
	if !s.store.SaveRegistry(accounts) {
		log.WithField("account_id", s.accountID).Warn("Failed to sync registry balance on logout")
	}
}

// debit validates, decrements, persists and logs a balance reduction, rolling
// the in-memory balance back if persistence fails.
func (s *Session) debit(txType entities.TransactionType, amount decimal.Decimal, service, token string) (decimal.Decimal, string, error) {
	if !amount.IsPositive() {
		return s.balance, "", ErrInvalidAmount
	}
	if amount.GreaterThan(s.balance) {
		return s.balance, "", &InsufficientFundsError{Available: s.balance}
	}

	previous := s.balance
	s.balance = s.balance.Sub(amount)

	if !s.store.SaveBalance(s.accountID, s.balance) {
		s.balance = previous
		log.WithFields(log.Fields{
			"account_id": s.accountID,
			"amount":     amount.String(),
			"type":       txType,
		}).Warn("Debit rolled back, balance write failed")
		return s.balance, "", ErrPersistence
	}

	receiptID := s.logTransaction(txType, amount, service, token)
	return s.balance, receiptID, nil
}

// logTransaction appends an audit entry. Log failures never fail the operation.
func (s *Session) logTransaction(txType entities.TransactionType, amount decimal.Decimal, service, token string) string {
	receiptID := newReceiptID()
	entry := &entities.TransactionLogEntry{
		Timestamp: entities.Timestamp(time.Now()),
		Type:      txType,
		Amount:    amount,
		Service:   service,
		Token:     token,
		ReceiptID: receiptID,
	}
	if !s.store.Append(s.accountID, entry) {
		log.WithFields(log.Fields{
			"account_id": s.accountID,
			"type":       txType,
		}).Warn("Failed to append transaction log entry")
	}
	return receiptID
}

func newReceiptID() string {
	return uuid.NewString()
}
