package testhelpers

import (
	"biller/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of interfaces.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadRegistry() map[string]*entities.Account {
	args := m.Called()
	if args.Get(0) == nil {
		return map[string]*entities.Account{}
	}
	return args.Get(0).(map[string]*entities.Account)
}

func (m *MockStore) SaveRegistry(accounts map[string]*entities.Account) bool {
	args := m.Called(accounts)
	return args.Bool(0)
}

func (m *MockStore) LoadBalance(accountID int64, def decimal.Decimal) decimal.Decimal {
	args := m.Called(accountID, def)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockStore) SaveBalance(accountID int64, balance decimal.Decimal) bool {
	args := m.Called(accountID, balance)
	return args.Bool(0)
}

func (m *MockStore) Append(accountID int64, entry *entities.TransactionLogEntry) bool {
	args := m.Called(accountID, entry)
	return args.Bool(0)
}

func (m *MockStore) History(accountID int64, limit int) []*entities.TransactionLogEntry {
	args := m.Called(accountID, limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*entities.TransactionLogEntry)
}
