package application

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"

	"evm_contract_client/internal/core/domain"
	"evm_contract_client/internal/core/domain/repository"
)

// submit runs one write through parameter construction, signing and broadcast.
func (s *ContractSession) submit(
	ctx context.Context,
	to domain.Address,
	functionName string,
	data []byte,
	opts TxOptions,
) (domain.TransactionHash, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	writeLogger := s.logger.With("function", functionName, "to", to.Checksum())

	params, err := s.buildTxParams(ctx, opts)
	if err != nil {
		writeLogger.Error("Failed to build transaction params", "error", err)
		return domain.TransactionHash{}, err
	}
	writeLogger.Debug("Transaction params built", "params", params.String())

	signed, err := s.signer.SignTx(buildTransaction(params, to, data), params.ChainID)
	if err != nil {
		writeLogger.Error("Failed to sign transaction", "nonce", params.Nonce.Value(), "error", err)
		return domain.TransactionHash{}, fmt.Errorf("failed to sign %s: %w", functionName, err)
	}

	// From here the nonce is spent, even if the node refuses the transaction.
	next := params.Nonce.Next()
	if err := s.nonceRepo.SetLastNonce(ctx, next); err != nil {
		writeLogger.Error("Failed to advance nonce", "nonce", next.Value(), "error", err)
		return domain.TransactionHash{}, fmt.Errorf("failed to advance nonce: %w", err)
	}

	hash, err := s.ledger.SendTransaction(ctx, signed)
	if err != nil {
		writeLogger.Error("Transaction submission failed", "nonce", params.Nonce.Value(), "nextNonce", next.Value(), "error", err)
		return domain.TransactionHash{}, fmt.Errorf("failed to submit %s: %w", functionName, err)
	}

	writeLogger.Info("Transaction submitted", "txHash", hash.String(), "nonce", params.Nonce.Value())
	return hash, nil
}

// buildTxParams queries gas price, on-chain nonce and chain id concurrently.
// Nothing is recorded, so a failure here consumes no nonce.
func (s *ContractSession) buildTxParams(ctx context.Context, opts TxOptions) (domain.TxParams, error) {
	value, err := domain.WeiValueFromBig(opts.Value)
	if err != nil {
		return domain.TxParams{}, fmt.Errorf("%w: %w", domain.ErrInvalidParams, err)
	}
	gasLimit := opts.GasLimit
	if gasLimit == 0 {
		gasLimit = s.defaultGasLimit
	}

	tracked, err := s.nonceRepo.GetLastNonce(ctx)
	if err != nil && !errors.Is(err, repository.ErrStateNotInitialized) {
		return domain.TxParams{}, fmt.Errorf("failed to get tracked nonce: %w", err)
	}

	wallet := s.credentials.WalletAddress()
	var (
		gasPrice *big.Int
		chainID  *big.Int
		onChain  domain.Nonce
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if gasPrice, err = s.ledger.GasPrice(gctx); err != nil {
			return fmt.Errorf("failed to fetch gas price: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if onChain, err = s.ledger.TransactionCount(gctx, wallet); err != nil {
			return fmt.Errorf("failed to fetch transaction count: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if chainID, err = s.ledger.ChainID(gctx); err != nil {
			return fmt.Errorf("failed to fetch chain id: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.TxParams{}, err
	}

	return domain.TxParams{
		From:     wallet,
		Value:    value,
		GasLimit: gasLimit,
		GasPrice: gasPrice,
		Nonce:    domain.ReconcileNonce(tracked, onChain),
		ChainID:  chainID,
	}, nil
}

// buildTransaction assembles an unsigned legacy transaction.
func buildTransaction(p domain.TxParams, to domain.Address, data []byte) *types.Transaction {
	recipient := to.Common()
	return types.NewTx(&types.LegacyTx{
		Nonce:    p.Nonce.Value(),
		GasPrice: p.GasPrice,
		Gas:      p.GasLimit,
		To:       &recipient,
		Value:    p.Value.BigInt(),
		Data:     data,
	})
}

func toUint256(values []any) (*uint256.Int, error) {
	if len(values) != 1 {
		return nil, fmt.Errorf("%w: want a single value, got %d", domain.ErrRPC, len(values))
	}
	b, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: want an integer, got %T", domain.ErrRPC, values[0])
	}
	v, overflow := uint256.FromBig(b)
	if overflow || b.Sign() < 0 {
		return nil, fmt.Errorf("%w: value %s is not a uint256", domain.ErrRPC, b)
	}
	return v, nil
}
