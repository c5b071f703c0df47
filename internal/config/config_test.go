package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"evm_contract_client/internal/config"
	"evm_contract_client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
contract:
  address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
  abi_path: "abi/router.json"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, config.LogLevelInfo, cfg.Logger.Level)
	assert.Equal(t, config.LogFormatJSON, cfg.Logger.Format)
	assert.Equal(t, config.DefaultLedgerRPCURL, cfg.Ledger.RPCURL)
	assert.Equal(t, config.DefaultLedgerRequestTimeoutSeconds, cfg.Ledger.RequestTimeoutSeconds)
	assert.Equal(t, uint64(350000), cfg.Transaction.DefaultGasLimit)
	assert.Equal(t, "abi/router.json", cfg.Contract.ABIPath)
	assert.Empty(t, cfg.Contract.TokenABIPath)
	assert.Nil(t, cfg.Wallet, "wallet section is optional")
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `
logger:
  level: debug
  format: text
ledger:
  rpc_url: "https://bsc-dataseed.example.org"
  request_timeout_seconds: 5
contract:
  address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
  abi_path: "abi/router.json"
  token_abi_path: "abi/token.json"
wallet:
  address: "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"
  secret: "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
transaction:
  default_gas_limit: 500000
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, config.LogLevelDebug, cfg.Logger.Level)
	assert.Equal(t, config.LogFormatText, cfg.Logger.Format)
	assert.Equal(t, "https://bsc-dataseed.example.org", cfg.Ledger.RPCURL)
	assert.Equal(t, 5, cfg.Ledger.RequestTimeoutSeconds)
	assert.Equal(t, "abi/token.json", cfg.Contract.TokenABIPath)
	require.NotNil(t, cfg.Wallet)
	assert.Equal(t, "0x71c7656ec7ab88b098defb751b7401b5f6d8976f", cfg.Wallet.Address)
	assert.Equal(t, config.DefaultWalletSecretEnv, cfg.Wallet.SecretEnv)
	assert.Equal(t, uint64(500000), cfg.Transaction.DefaultGasLimit)
}

func TestLoadConfig_SecretFromEnvironment(t *testing.T) {
	t.Setenv("TEST_SESSION_SECRET", "0xabc123")
	path := writeConfig(t, `
contract:
  address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
  abi_path: "abi/router.json"
wallet:
  address: "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"
  secret_env: TEST_SESSION_SECRET
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0xabc123", cfg.Wallet.ResolveSecret())
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "contract: [",
		},
		{
			name: "missing contract address",
			content: `
contract:
  abi_path: "abi/router.json"
`,
		},
		{
			name: "missing abi path",
			content: `
contract:
  address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
`,
		},
		{
			name: "invalid log level",
			content: `
logger:
  level: verbose
contract:
  address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
  abi_path: "abi/router.json"
`,
		},
		{
			name: "negative timeout",
			content: `
ledger:
  request_timeout_seconds: -1
contract:
  address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
  abi_path: "abi/router.json"
`,
		},
		{
			name: "invalid wallet address",
			content: `
contract:
  address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
  abi_path: "abi/router.json"
wallet:
  address: "0xAbC"
  secret: "0x01"
`,
			wantErr: domain.ErrInvalidWallet,
		},
		{
			name: "wallet without secret",
			content: `
contract:
  address: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
  abi_path: "abi/router.json"
wallet:
  address: "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"
  secret_env: TEST_SESSION_SECRET_UNSET
`,
			wantErr: domain.ErrInvalidWallet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "error should wrap %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
