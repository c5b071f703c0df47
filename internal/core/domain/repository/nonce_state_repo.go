// Package repository defines interfaces for data storage and retrieval operations.
//
//go:generate mockery --name=NonceStateRepository --output=../../../core/application/mocks/mock_repository --outpkg=mock_repository
package repository

import (
	"context"
	"errors"

	"evm_contract_client/internal/core/domain"
)

// ErrStateNotInitialized indicates that no nonce has been recorded yet.
var ErrStateNotInitialized = errors.New("nonce state not initialized")

// ErrNonceRegression indicates an attempt to move the tracked nonce backwards.
var ErrNonceRegression = errors.New("nonce cannot regress")

// NonceStateRepository keeps the next nonce expected to be free for one account.
type NonceStateRepository interface {
	// GetLastNonce returns the tracked nonce.
	GetLastNonce(ctx context.Context) (domain.Nonce, error)

	// SetLastNonce records a nonce. Values lower than the tracked one are rejected with ErrNonceRegression.
	SetLastNonce(ctx context.Context, nonce domain.Nonce) error
}
