package config

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// DataDir is the root under which all state lives.
	DataDir string `mapstructure:"data_dir"`

	// AccountsDir holds the per-account balance files, relative to DataDir.
	AccountsDir string `mapstructure:"accounts_dir"`

	// RegistryFile is the JSON account registry, relative to DataDir.
	RegistryFile string `mapstructure:"registry_file"`

	// LogsDir holds the per-account transaction logs, relative to DataDir.
	LogsDir string `mapstructure:"logs_dir"`

	// DefaultBalance is the initial balance for accounts created without an
	// explicit amount, and the fallback when a balance file is unreadable.
	DefaultBalance decimal.Decimal `mapstructure:"-"`

	// LogLevel controls logrus verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Environment is "development", "production" or "test".
	Environment string `mapstructure:"environment"`
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		instance = load()
	})
	return instance
}

// AccountsPath returns the absolute accounts directory.
func (c *Config) AccountsPath() string {
	return filepath.Join(c.DataDir, c.AccountsDir)
}

// RegistryPath returns the absolute registry file path.
func (c *Config) RegistryPath() string {
	return filepath.Join(c.DataDir, c.RegistryFile)
}

// LogsPath returns the absolute transaction-log directory.
func (c *Config) LogsPath() string {
	return filepath.Join(c.DataDir, c.LogsDir)
}

// load reads configuration from an optional biller.yaml and BILLER_* environment
// variables, falling back to defaults for anything unset.
func load() *Config {
	v := viper.New()
	v.SetDefault("data_dir", ".")
	v.SetDefault("accounts_dir", "accounts")
	v.SetDefault("registry_file", "accounts_registry.json")
	v.SetDefault("logs_dir", "logs")
	v.SetDefault("default_balance", "1000000")
	v.SetDefault("log_level", "warn")
	v.SetDefault("environment", "development")

	v.SetEnvPrefix("BILLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("biller")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; anything other than not-found is worth a note.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.WithError(err).Warn("Failed to read biller.yaml, using defaults")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.WithError(err).Warn("Failed to unmarshal config, using defaults")
		cfg = &Config{
			DataDir:      ".",
			AccountsDir:  "accounts",
			RegistryFile: "accounts_registry.json",
			LogsDir:      "logs",
			LogLevel:     "warn",
			Environment:  "development",
		}
	}

	balance, err := decimal.NewFromString(v.GetString("default_balance"))
	if err != nil || balance.IsNegative() {
		if err != nil {
			log.WithError(err).Warn("Invalid default_balance, falling back to 1000000")
		}
		balance = decimal.NewFromInt(1_000_000)
	}
	cfg.DefaultBalance = balance

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	return cfg
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a config rooted at dir, suitable for unit tests.
func NewTestConfig(dir string) *Config {
	return &Config{
		DataDir:        dir,
		AccountsDir:    "accounts",
		RegistryFile:   "accounts_registry.json",
		LogsDir:        "logs",
		DefaultBalance: decimal.NewFromInt(1_000_000),
		LogLevel:       "error",
		Environment:    "test",
	}
}
