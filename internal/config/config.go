// Package config implements contract session configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns a configuration populated with default values only.
func Default() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:  DefaultLoggerLevel,
			Format: DefaultLoggerFormat,
		},
		Ledger: LedgerConfig{
			RPCURL:                DefaultLedgerRPCURL,
			RequestTimeoutSeconds: DefaultLedgerRequestTimeoutSeconds,
		},
		Transaction: TransactionConfig{
			DefaultGasLimit: DefaultTransactionGasLimit,
		},
	}
}

// LoadConfig loads the configuration from a YAML file, applies defaults for
// omitted values and validates the result.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFilePath
	}

	fileBytes, err := os.ReadFile(loadPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	type partialConfig struct {
		Logger      *LoggerConfig      `yaml:"logger"`
		Ledger      *LedgerConfig      `yaml:"ledger"`
		Contract    *ContractConfig    `yaml:"contract"`
		Wallet      *WalletConfig      `yaml:"wallet"`
		Transaction *TransactionConfig `yaml:"transaction"`
	}
	var pCfg partialConfig

	if err := yaml.Unmarshal(fileBytes, &pCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
	}

	if pCfg.Logger != nil {
		if pCfg.Logger.Level != "" {
			cfg.Logger.Level = pCfg.Logger.Level
		}
		if pCfg.Logger.Format != "" {
			cfg.Logger.Format = pCfg.Logger.Format
		}
	}
	if pCfg.Ledger != nil {
		if pCfg.Ledger.RPCURL != "" {
			cfg.Ledger.RPCURL = pCfg.Ledger.RPCURL
		}
		if pCfg.Ledger.RequestTimeoutSeconds != 0 {
			cfg.Ledger.RequestTimeoutSeconds = pCfg.Ledger.RequestTimeoutSeconds
		}
	}
	if pCfg.Contract != nil {
		cfg.Contract = *pCfg.Contract
	}
	if pCfg.Wallet != nil {
		wallet := *pCfg.Wallet
		if wallet.SecretEnv == "" {
			wallet.SecretEnv = DefaultWalletSecretEnv
		}
		cfg.Wallet = &wallet
	}
	if pCfg.Transaction != nil && pCfg.Transaction.DefaultGasLimit != 0 {
		cfg.Transaction.DefaultGasLimit = pCfg.Transaction.DefaultGasLimit
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", loadPath, err)
	}
	return cfg, nil
}
