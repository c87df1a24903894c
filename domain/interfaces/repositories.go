package interfaces

import (
	"biller/domain/entities"

	"github.com/shopspring/decimal"
)

// RegistryStore defines the interface for the account registry.
//
// Store operations are total: lower-level I/O failures degrade to an empty
// result or a false flag instead of propagating as errors. Callers must check
// the returned flag. This is a deliberate simplification for a single-user
// tool, not a durability guarantee.
type RegistryStore interface {
	// LoadRegistry returns all registered accounts keyed by decimal-string id.
	// Returns an empty map if the registry file is absent or unreadable; a
	// corrupt file is renamed aside before the empty map is returned.
	LoadRegistry() map[string]*entities.Account

	// SaveRegistry writes the full registry, backing up the existing file
	// first (best-effort). Reports whether the write succeeded.
	SaveRegistry(accounts map[string]*entities.Account) bool
}

// BalanceStore defines the interface for per-account balance files.
type BalanceStore interface {
	// LoadBalance reads the balance for an account. Absent, unreadable, or
	// negative values yield def; an absent file is additionally created
	// holding def so every referenced account has a readable balance file.
	LoadBalance(accountID int64, def decimal.Decimal) decimal.Decimal

	// SaveBalance persists a balance. Negative values are rejected without
	// writing. Reports whether the write succeeded.
	SaveBalance(accountID int64, balance decimal.Decimal) bool
}

// TransactionLog defines the interface for the append-only per-account audit log.
type TransactionLog interface {
	// Append writes one entry to the account's log. Reports whether the
	// write succeeded; failures never affect balance correctness.
	Append(accountID int64, entry *entities.TransactionLogEntry) bool

	// History returns up to limit of the most recent entries, oldest first.
	// Malformed lines are skipped.
	History(accountID int64, limit int) []*entities.TransactionLogEntry
}

// Store combines the persistence concerns a session or directory needs.
type Store interface {
	RegistryStore
	BalanceStore
	TransactionLog
}
