// Package client defines interfaces for external service clients, such as an Ethereum node client.
//
//go:generate mockery --name=LedgerClient --output=../../../core/application/mocks/mock_client --outpkg=mock_client
package client

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"evm_contract_client/internal/core/domain"
)

// LedgerClient defines the network round trips a contract session needs.
// Implementations classify failures as domain.ErrNetwork, domain.ErrRPC or
// domain.ErrSubmissionRejected.
type LedgerClient interface {
	// TransactionCount returns the number of transactions sent from the account at the latest block.
	TransactionCount(ctx context.Context, account domain.Address) (domain.Nonce, error)

	// GasPrice returns the current network gas price in wei.
	GasPrice(ctx context.Context) (*big.Int, error)

	// ChainID returns the chain identifier of the connected network.
	ChainID(ctx context.Context) (*big.Int, error)

	// CallContract executes a read-only message call and returns the raw return data.
	CallContract(ctx context.Context, contract domain.Address, data []byte) ([]byte, error)

	// SendTransaction broadcasts a signed transaction and returns its hash.
	SendTransaction(ctx context.Context, tx *types.Transaction) (domain.TransactionHash, error)
}
