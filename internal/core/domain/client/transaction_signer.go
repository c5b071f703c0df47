package client

//go:generate mockery --name=TransactionSigner --output=../../../core/application/mocks/mock_client --outpkg=mock_client

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"evm_contract_client/internal/core/domain"
)

// TransactionSigner signs transactions on behalf of a single account.
type TransactionSigner interface {
	// Address returns the account the signer signs for.
	Address() domain.Address

	// SignTx signs tx for the given chain.
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}
