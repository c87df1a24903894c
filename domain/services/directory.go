package services

import (
	"fmt"
	"strconv"
	"time"

	"biller/domain/entities"
	"biller/domain/interfaces"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Directory creates and enumerates accounts. Creation coordinates the registry
// write with the balance-file write and attempts a best-effort rollback of the
// registry entry if the second half fails; the pair is not transactional.
type Directory struct {
	store          interfaces.Store
	defaultBalance decimal.Decimal
}

// NewDirectory creates a new Directory backed by the given store.
func NewDirectory(store interfaces.Store, defaultBalance decimal.Decimal) *Directory {
	return &Directory{store: store, defaultBalance: defaultBalance}
}

// DefaultBalance returns the balance assigned when none is specified at creation.
func (d *Directory) DefaultBalance() decimal.Decimal {
	return d.defaultBalance
}

// Store exposes the backing store so a Session can share it.
func (d *Directory) Store() interfaces.Store {
	return d.store
}

// List returns all registered accounts keyed by decimal-string id.
func (d *Directory) List() map[string]*entities.Account {
	return d.store.LoadRegistry()
}

// Get returns a single account by id.
func (d *Directory) Get(id int64) (*entities.Account, error) {
	account, ok := d.store.LoadRegistry()[strconv.FormatInt(id, 10)]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// Create registers a new account and writes its balance file. The id is the
// smallest positive integer not already present in the registry, so gaps left
// by older data are reused. Returns the assigned id and the stored record.
func (d *Directory) Create(name string, initialBalance decimal.Decimal) (int64, *entities.Account, error) {
	name, err := ValidateAccountName(name)
	if err != nil {
		return 0, nil, err
	}
	if initialBalance.IsNegative() {
		return 0, nil, &ValidationError{Reason: "initial balance cannot be negative", Err: ErrInvalidAmount}
	}

	accounts := d.store.LoadRegistry()

	id := int64(1)
	for {
		if _, taken := accounts[strconv.FormatInt(id, 10)]; !taken {
			break
		}
		id++
	}
	key := strconv.FormatInt(id, 10)

	account := &entities.Account{
		ID:      id,
		Name:    name,
		Created: entities.Timestamp(time.Now()),
		Balance: initialBalance,
	}
	accounts[key] = account

	if !d.store.SaveRegistry(accounts) {
		return 0, nil, fmt.Errorf("%w: registry write failed", ErrCreateFailed)
	}

	if !d.store.SaveBalance(id, initialBalance) {
		// Roll the registry entry back. If this save also fails the registry
		// is left referencing a missing balance file; an acknowledged gap.
		delete(accounts, key)
		if !d.store.SaveRegistry(accounts) {
			log.WithField("account_id", id).Error("Rollback of registry entry failed, registry may be inconsistent")
		}
		return 0, nil, fmt.Errorf("%w: balance file write failed", ErrCreateFailed)
	}

	d.store.Append(id, &entities.TransactionLogEntry{
		Timestamp: account.Created,
		Type:      entities.TransactionTypeInitial,
		Amount:    initialBalance,
		ReceiptID: newReceiptID(),
	})

	log.WithFields(log.Fields{
		"account_id": id,
		"name":       name,
		"balance":    initialBalance.String(),
	}).Info("Account created")

	return id, account, nil
}

// CreateWithDefault registers a new account with the configured default balance.
func (d *Directory) CreateWithDefault(name string) (int64, *entities.Account, error) {
	return d.Create(name, d.defaultBalance)
}
