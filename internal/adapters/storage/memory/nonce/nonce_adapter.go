// Package nonce provides an in-memory implementation of the NonceStateRepository interface.
package nonce

import (
	"context"
	"fmt"
	"sync"

	"evm_contract_client/internal/core/domain"
	"evm_contract_client/internal/core/domain/repository"
)

// InMemoryNonceRepo is an in-memory implementation of NonceStateRepository.
type InMemoryNonceRepo struct {
	mu        sync.RWMutex
	lastNonce *domain.Nonce
}

// Compile-time check to ensure InMemoryNonceRepo implements repository.NonceStateRepository
var _ repository.NonceStateRepository = (*InMemoryNonceRepo)(nil)

// NewInMemoryNonceRepo creates a new InMemoryNonceRepo.
func NewInMemoryNonceRepo() *InMemoryNonceRepo {
	return &InMemoryNonceRepo{}
}

// GetLastNonce retrieves the tracked nonce.
func (r *InMemoryNonceRepo) GetLastNonce(_ context.Context) (domain.Nonce, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.lastNonce == nil {
		return 0, repository.ErrStateNotInitialized
	}
	return *r.lastNonce, nil
}

// SetLastNonce stores the tracked nonce, refusing to move it backwards.
func (r *InMemoryNonceRepo) SetLastNonce(_ context.Context, nonce domain.Nonce) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastNonce != nil && nonce < *r.lastNonce {
		return fmt.Errorf("%w: tracked %d, got %d", repository.ErrNonceRegression, *r.lastNonce, nonce)
	}
	nCopy := nonce
	r.lastNonce = &nCopy
	return nil
}
