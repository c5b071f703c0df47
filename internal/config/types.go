package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"evm_contract_client/internal/core/domain"
)

// Default config values.
const (
	DefaultConfigFilePath              = "config.yml"
	DefaultLoggerLevel                 = LogLevelInfo
	DefaultLoggerFormat                = LogFormatJSON
	DefaultLedgerRPCURL                = "http://localhost:8545"
	DefaultLedgerRequestTimeoutSeconds = 20
	DefaultTransactionGasLimit         = domain.DefaultGasLimit
	DefaultWalletSecretEnv             = "WALLET_SECRET"
)

// LogLevel defines the type for logger levels.
type LogLevel string

// LogFormat defines the type for logger output formats.
type LogFormat string

// Defines the supported logger levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Defines the supported logger output formats.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Config holds all configuration for a contract session.
type Config struct {
	Logger      LoggerConfig      `yaml:"logger"`
	Ledger      LedgerConfig      `yaml:"ledger"`
	Contract    ContractConfig    `yaml:"contract"`
	Wallet      *WalletConfig     `yaml:"wallet"`
	Transaction TransactionConfig `yaml:"transaction"`
}

// LoggerConfig holds all configuration related to logging.
type LoggerConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// LedgerConfig holds all configuration related to the JSON-RPC node.
type LedgerConfig struct {
	RPCURL                string `yaml:"rpc_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

// ContractConfig identifies the target contract and its interface files.
type ContractConfig struct {
	Address      string `yaml:"address"`
	ABIPath      string `yaml:"abi_path"`
	TokenABIPath string `yaml:"token_abi_path"`
}

// WalletConfig holds the optional signing account. The secret is read from
// SecretEnv when Secret is empty.
type WalletConfig struct {
	Address   string `yaml:"address"`
	Secret    string `yaml:"secret"`
	SecretEnv string `yaml:"secret_env"`
}

// TransactionConfig holds defaults for write transactions.
type TransactionConfig struct {
	DefaultGasLimit uint64 `yaml:"default_gas_limit"`
}

// ResolveSecret returns the configured secret, falling back to the environment.
func (w *WalletConfig) ResolveSecret() string {
	if w.Secret != "" {
		return w.Secret
	}
	if w.SecretEnv == "" {
		return ""
	}
	return os.Getenv(w.SecretEnv)
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(string(c.Logger.Level))] {
		return fmt.Errorf(
			"invalid logger level (config key: logger.level): '%s', must be one of: debug, info, warn, error",
			c.Logger.Level,
		)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(string(c.Logger.Format))] {
		return fmt.Errorf(
			"invalid logger format (config key: logger.format): '%s', must be one of: json, text",
			c.Logger.Format,
		)
	}

	if c.Ledger.RPCURL == "" {
		return errors.New("ledger rpc url (config key: ledger.rpc_url) cannot be empty")
	}
	if c.Ledger.RequestTimeoutSeconds <= 0 {
		return errors.New("ledger request timeout seconds (config key: ledger.request_timeout_seconds) must be greater than 0")
	}

	if _, err := domain.NewAddress(c.Contract.Address); err != nil {
		return fmt.Errorf("invalid contract address (config key: contract.address): %w", err)
	}
	if c.Contract.ABIPath == "" {
		return errors.New("contract abi path (config key: contract.abi_path) cannot be empty")
	}

	if c.Wallet != nil {
		if _, err := domain.NewAddress(c.Wallet.Address); err != nil {
			return fmt.Errorf("%w: invalid wallet address (config key: wallet.address): %w", domain.ErrInvalidWallet, err)
		}
		if c.Wallet.ResolveSecret() == "" {
			return fmt.Errorf(
				"%w: wallet secret is empty (config key: wallet.secret, or environment variable '%s')",
				domain.ErrInvalidWallet, c.Wallet.SecretEnv,
			)
		}
	}

	if c.Transaction.DefaultGasLimit == 0 {
		return errors.New("default gas limit (config key: transaction.default_gas_limit) must be greater than 0")
	}

	return nil
}
