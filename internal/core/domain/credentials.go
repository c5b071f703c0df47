package domain

import (
	"fmt"
	"strings"
)

// Credentials identify the account a session signs transactions for.
// They are immutable once constructed.
type Credentials struct {
	walletAddress Address
	walletSecret  string
}

// NewCredentials validates the wallet address and keeps the signing secret.
func NewCredentials(walletAddress, walletSecret string) (*Credentials, error) {
	addr, err := NewAddress(walletAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: wallet address %q is not a valid wallet: %w", ErrInvalidWallet, walletAddress, err)
	}
	secret := strings.TrimSpace(walletSecret)
	if secret == "" {
		return nil, fmt.Errorf("%w: wallet secret for %s is empty", ErrInvalidWallet, addr.Checksum())
	}
	return &Credentials{walletAddress: addr, walletSecret: secret}, nil
}

// WalletAddress returns the account address.
func (c *Credentials) WalletAddress() Address {
	return c.walletAddress
}

// WalletSecret returns the hex encoded private key.
func (c *Credentials) WalletSecret() string {
	return c.walletSecret
}

// String never includes the secret.
func (c *Credentials) String() string {
	return fmt.Sprintf("Credentials{%s}", c.walletAddress.Checksum())
}
