// Package signer implements transaction signing with a locally held private key.
package signer

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"evm_contract_client/internal/core/domain"
	"evm_contract_client/internal/core/domain/client"
)

// PrivateKeySigner signs transactions with the secp256k1 key of the session wallet.
type PrivateKeySigner struct {
	key     *ecdsa.PrivateKey
	address domain.Address
}

// Compile-time check to ensure PrivateKeySigner implements client.TransactionSigner
var _ client.TransactionSigner = (*PrivateKeySigner)(nil)

// NewPrivateKeySigner parses the credentials secret and checks that it
// controls the credentials wallet address.
func NewPrivateKeySigner(creds *domain.Credentials) (*PrivateKeySigner, error) {
	if creds == nil {
		return nil, fmt.Errorf("%w: credentials are nil", domain.ErrInvalidWallet)
	}
	secret := strings.TrimPrefix(strings.TrimPrefix(creds.WalletSecret(), "0x"), "0X")
	key, err := crypto.HexToECDSA(secret)
	if err != nil {
		// The parse error is not wrapped: it can echo key material.
		return nil, fmt.Errorf("%w: wallet secret for %s is not a valid private key", domain.ErrInvalidWallet, creds.WalletAddress().Checksum())
	}

	derived := domain.AddressFromCommon(crypto.PubkeyToAddress(key.PublicKey))
	if !derived.Equals(creds.WalletAddress()) {
		return nil, fmt.Errorf("%w: wallet secret controls %s, not %s",
			domain.ErrInvalidWallet, derived.Checksum(), creds.WalletAddress().Checksum())
	}

	return &PrivateKeySigner{key: key, address: derived}, nil
}

// Address returns the signing account.
func (s *PrivateKeySigner) Address() domain.Address {
	return s.address
}

// SignTx signs tx with the latest signer rules for chainID (EIP-155 replay protection).
func (s *PrivateKeySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	if chainID == nil {
		return nil, fmt.Errorf("sign transaction: chain id is nil")
	}
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return signed, nil
}
