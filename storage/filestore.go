// Package storage implements the flat-file persistence layer: a JSON account
// registry, one plain-text balance file per account, and append-only JSONL
// transaction logs.
//
// Every operation is total: I/O failures degrade to a default value or a false
// flag rather than propagating errors. Overwrites copy the existing file to a
// .backup sibling first; an unparsable registry is quarantined with a
// timestamped .corrupted_ suffix so no data is silently destroyed. There is no
// file locking: a single process is assumed to own the data directory.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"biller/config"
	"biller/domain/entities"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

func init() {
	// Registry balances are JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// FileStore implements interfaces.Store against a data directory.
type FileStore struct {
	accountsDir  string
	registryPath string
	logsDir      string
}

// NewFileStore builds a store rooted at the configured paths and ensures the
// accounts and logs directories exist. Directory creation failures are logged
// and deferred to the individual operations, which degrade per their contracts.
func NewFileStore(cfg *config.Config) *FileStore {
	s := &FileStore{
		accountsDir:  cfg.AccountsPath(),
		registryPath: cfg.RegistryPath(),
		logsDir:      cfg.LogsPath(),
	}
	for _, dir := range []string{s.accountsDir, s.logsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.WithError(err).WithField("dir", dir).Warn("Failed to create data directory")
		}
	}
	return s
}

// BalancePath returns the balance file path for an account.
func (s *FileStore) BalancePath(accountID int64) string {
	return filepath.Join(s.accountsDir, fmt.Sprintf("account_%d_balance.txt", accountID))
}

// LogPath returns the transaction log path for an account.
func (s *FileStore) LogPath(accountID int64) string {
	return filepath.Join(s.logsDir, fmt.Sprintf("account_%d_transactions.log", accountID))
}

// RegistryPath returns the registry file path.
func (s *FileStore) RegistryPath() string {
	return s.registryPath
}

// LoadRegistry returns all registered accounts keyed by decimal-string id.
// An absent or empty file yields an empty map. A file that fails JSON parsing
// is renamed to <file>.corrupted_<timestamp> before the empty map is returned.
func (s *FileStore) LoadRegistry() map[string]*entities.Account {
	accounts := make(map[string]*entities.Account)

	data, err := os.ReadFile(s.registryPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("path", s.registryPath).Warn("Failed to read registry")
		}
		return accounts
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return accounts
	}

	if err := json.Unmarshal(data, &accounts); err != nil {
		quarantine := fmt.Sprintf("%s.corrupted_%s", s.registryPath, time.Now().Format("20060102_150405"))
		if renameErr := os.Rename(s.registryPath, quarantine); renameErr != nil {
			log.WithError(renameErr).WithField("path", s.registryPath).Error("Failed to quarantine corrupt registry")
		} else {
			log.WithFields(log.Fields{
				"path":       s.registryPath,
				"quarantine": quarantine,
			}).Warn("Registry was corrupt, quarantined and reset to empty")
		}
		return make(map[string]*entities.Account)
	}
	return accounts
}

// SaveRegistry writes the full registry as indented JSON, copying the previous
// file to a .backup sibling first. Reports whether the write succeeded.
func (s *FileStore) SaveRegistry(accounts map[string]*entities.Account) bool {
	s.backup(s.registryPath)

	data, err := marshalRegistry(accounts)
	if err != nil {
		log.WithError(err).Warn("Failed to encode registry")
		return false
	}
	if err := os.WriteFile(s.registryPath, data, 0o644); err != nil {
		log.WithError(err).WithField("path", s.registryPath).Warn("Failed to write registry")
		return false
	}
	return true
}

// LoadBalance reads an account's balance file. Absent, unreadable, or negative
// content yields def; an absent file is created holding def so every referenced
// account ends up with a readable balance file.
func (s *FileStore) LoadBalance(accountID int64, def decimal.Decimal) decimal.Decimal {
	path := s.BalancePath(accountID)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.SaveBalance(accountID, def)
		} else {
			log.WithError(err).WithField("account_id", accountID).Warn("Failed to read balance file")
		}
		return def
	}

	balance, err := decimal.NewFromString(strings.TrimSpace(string(data)))
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"account_id": accountID,
			"path":       path,
		}).Warn("Balance file is not a number, using default")
		return def
	}
	if balance.IsNegative() {
		log.WithFields(log.Fields{
			"account_id": accountID,
			"balance":    balance.String(),
		}).Warn("Balance file holds a negative value, using default")
		return def
	}
	return balance
}

// SaveBalance persists an account's balance. Negative values are rejected
// without touching the file. The previous file is copied to a .backup sibling
// before the overwrite. Reports whether the write succeeded.
func (s *FileStore) SaveBalance(accountID int64, balance decimal.Decimal) bool {
	if balance.IsNegative() {
		log.WithFields(log.Fields{
			"account_id": accountID,
			"balance":    balance.String(),
		}).Warn("Refusing to save negative balance")
		return false
	}

	path := s.BalancePath(accountID)
	s.backup(path)

	if err := os.WriteFile(path, []byte(balance.String()), 0o644); err != nil {
		log.WithError(err).WithField("account_id", accountID).Warn("Failed to write balance file")
		return false
	}
	return true
}

// Append writes one JSONL entry to the account's transaction log.
func (s *FileStore) Append(accountID int64, entry *entities.TransactionLogEntry) bool {
	line, err := json.Marshal(entry)
	if err != nil {
		log.WithError(err).Warn("Failed to encode transaction log entry")
		return false
	}

	f, err := os.OpenFile(s.LogPath(accountID), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.WithError(err).WithField("account_id", accountID).Warn("Failed to open transaction log")
		return false
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		log.WithError(err).WithField("account_id", accountID).Warn("Failed to append transaction log entry")
		return false
	}
	return true
}

// History returns up to limit of the most recent log entries, oldest first.
// Malformed lines are skipped.
func (s *FileStore) History(accountID int64, limit int) []*entities.TransactionLogEntry {
	f, err := os.Open(s.LogPath(accountID))
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("account_id", accountID).Warn("Failed to open transaction log")
		}
		return nil
	}
	defer f.Close()

	var entries []*entities.TransactionLogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry entities.TransactionLogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		entries = append(entries, &entry)
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).WithField("account_id", accountID).Warn("Failed to read transaction log")
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}

// backup copies path to path.backup. Best-effort: failures are logged at debug
// level and otherwise ignored, the primary write proceeds regardless.
func (s *FileStore) backup(path string) {
	src, err := os.Open(path)
	if err != nil {
		return
	}
	defer src.Close()

	dst, err := os.Create(path + ".backup")
	if err != nil {
		log.WithError(err).WithField("path", path).Debug("Failed to create backup file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.WithError(err).WithField("path", path).Debug("Failed to copy backup file")
	}
}

// marshalRegistry renders the registry with 2-space indentation and unescaped
// non-ASCII, matching how the file has always been written.
func marshalRegistry(accounts map[string]*entities.Account) ([]byte, error) {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(accounts); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
