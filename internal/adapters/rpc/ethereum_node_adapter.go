// Package rpc implements the ledger client using JSON-RPC communication with an Ethereum node.
package rpc

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"evm_contract_client/internal/core/domain"
	"evm_contract_client/internal/core/domain/client"
)

// EthereumNodeAdapter implements the client.LedgerClient interface on top of go-ethereum's ethclient.
type EthereumNodeAdapter struct {
	rpcClient *gethrpc.Client
	ethClient *ethclient.Client
	timeout   time.Duration
}

// Compile-time check to ensure EthereumNodeAdapter implements client.LedgerClient
var _ client.LedgerClient = (*EthereumNodeAdapter)(nil)

// DialEthereumNodeAdapter connects to the node at rpcURL. Every round trip is
// bounded by timeout; zero disables the per-call bound.
func DialEthereumNodeAdapter(
	ctx context.Context,
	rpcURL string,
	httpClient *http.Client,
	timeout time.Duration,
) (*EthereumNodeAdapter, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	rpcClient, err := gethrpc.DialOptions(ctx, rpcURL, gethrpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %w", domain.ErrNetwork, rpcURL, err)
	}
	return NewEthereumNodeAdapter(rpcClient, timeout), nil
}

// NewEthereumNodeAdapter wraps an existing RPC client.
func NewEthereumNodeAdapter(rpcClient *gethrpc.Client, timeout time.Duration) *EthereumNodeAdapter {
	return &EthereumNodeAdapter{
		rpcClient: rpcClient,
		ethClient: ethclient.NewClient(rpcClient),
		timeout:   timeout,
	}
}

// TransactionCount fetches the account nonce at the latest block.
func (a *EthereumNodeAdapter) TransactionCount(ctx context.Context, account domain.Address) (domain.Nonce, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	count, err := a.ethClient.NonceAt(ctx, account.Common(), nil)
	if err != nil {
		return 0, classifyError("eth_getTransactionCount", err)
	}
	return domain.Nonce(count), nil
}

// GasPrice fetches the current gas price.
func (a *EthereumNodeAdapter) GasPrice(ctx context.Context) (*big.Int, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	price, err := a.ethClient.SuggestGasPrice(ctx)
	if err != nil {
		return nil, classifyError("eth_gasPrice", err)
	}
	return price, nil
}

// ChainID fetches the chain identifier.
func (a *EthereumNodeAdapter) ChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	chainID, err := a.ethClient.ChainID(ctx)
	if err != nil {
		return nil, classifyError("eth_chainId", err)
	}
	return chainID, nil
}

// CallContract performs an eth_call against the latest block.
func (a *EthereumNodeAdapter) CallContract(ctx context.Context, contract domain.Address, data []byte) ([]byte, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	to := contract.Common()
	out, err := a.ethClient.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, classifyError("eth_call", err)
	}
	return out, nil
}

// SendTransaction broadcasts a signed transaction.
func (a *EthereumNodeAdapter) SendTransaction(ctx context.Context, tx *types.Transaction) (domain.TransactionHash, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	raw, err := tx.MarshalBinary()
	if err != nil {
		return domain.TransactionHash{}, fmt.Errorf("%w: encode transaction: %w", domain.ErrRPC, err)
	}

	var reported string
	if err := a.rpcClient.CallContext(ctx, &reported, "eth_sendRawTransaction", hexutil.Encode(raw)); err != nil {
		return domain.TransactionHash{}, classifySubmitError(err)
	}

	// The node answers with the hash it indexed the transaction under.
	hash, err := domain.NewTransactionHash(reported)
	if err != nil {
		return domain.TransactionHash{}, fmt.Errorf("%w: eth_sendRawTransaction: %w", domain.ErrRPC, err)
	}
	if local := domain.TransactionHashFromCommon(tx.Hash()); !hash.Equals(local) {
		return domain.TransactionHash{}, fmt.Errorf("%w: eth_sendRawTransaction: node reported hash %s, signed %s",
			domain.ErrRPC, hash, local)
	}
	return hash, nil
}

// Close releases the underlying connection.
func (a *EthereumNodeAdapter) Close() {
	a.rpcClient.Close()
}

func (a *EthereumNodeAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
