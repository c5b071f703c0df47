package domain_test

import (
	"testing"

	"evm_contract_client/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	creds, err := domain.NewCredentials("0x71c7656ec7ab88b098defb751b7401b5f6d8976f", " deadbeef ")
	require.NoError(t, err)
	assert.Equal(t, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", creds.WalletAddress().Checksum())
	assert.Equal(t, "deadbeef", creds.WalletSecret())
	assert.NotContains(t, creds.String(), "deadbeef")
}

func TestNewCredentials_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		address string
		secret  string
	}{
		{name: "malformed address", address: "0xAbC", secret: "deadbeef"},
		{name: "empty address", address: "", secret: "deadbeef"},
		{name: "empty secret", address: "0x71c7656ec7ab88b098defb751b7401b5f6d8976f", secret: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCredentials(tt.address, tt.secret)
			assert.ErrorIs(t, err, domain.ErrInvalidWallet)
		})
	}
}

func TestReconcileNonce(t *testing.T) {
	assert.Equal(t, domain.Nonce(5), domain.ReconcileNonce(5, 5))
	assert.Equal(t, domain.Nonce(7), domain.ReconcileNonce(5, 7))
	assert.Equal(t, domain.Nonce(9), domain.ReconcileNonce(9, 3))
	assert.Equal(t, domain.Nonce(8), domain.Nonce(7).Next())
}
