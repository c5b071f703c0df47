// Package application contains the contract session service: read calls,
// signed write calls with local nonce tracking, and token approvals.
package application

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/holiman/uint256"

	"evm_contract_client/internal/config"
	"evm_contract_client/internal/core/domain"
	"evm_contract_client/internal/core/domain/client"
	"evm_contract_client/internal/core/domain/repository"
	"evm_contract_client/internal/logger"
)

const (
	allowanceFunction = "allowance"
	approveFunction   = "approve"
)

// TxOptions are the caller supplied parts of a write transaction.
// A nil Value sends nothing; a zero GasLimit uses the configured default.
type TxOptions struct {
	Value    *big.Int
	GasLimit uint64
}

// Dependencies are the collaborators of a ContractSession. Signer and
// Credentials are either both set or both nil; without them the session is read-only.
type Dependencies struct {
	Ledger         client.LedgerClient
	Signer         client.TransactionSigner
	Credentials    *domain.Credentials
	NonceRepo      repository.NonceStateRepository
	Contract       domain.Address
	Interface      *domain.ContractInterface
	TokenInterface *domain.ContractInterface
	Logger         logger.AppLogger
}

// ContractSession binds one contract on one ledger to an optional signing account.
type ContractSession struct {
	ledger         client.LedgerClient
	signer         client.TransactionSigner
	credentials    *domain.Credentials
	nonceRepo      repository.NonceStateRepository
	contract       domain.Address
	iface          *domain.ContractInterface
	tokenInterface *domain.ContractInterface
	logger         logger.AppLogger

	defaultGasLimit uint64

	// writeMu serialises nonce selection, signing and submission.
	writeMu sync.Mutex
}

// NewContractSession creates a session. With credentials it reads the
// account's on-chain transaction count and starts tracking nonces from it.
func NewContractSession(ctx context.Context, deps Dependencies, txCfg config.TransactionConfig) (*ContractSession, error) {
	if deps.Logger == nil {
		return nil, errors.New("NewContractSession: logger is nil")
	}
	appLogger := deps.Logger
	if deps.Ledger == nil {
		appLogger.Error("NewContractSession: ledger client is nil")
		return nil, errors.New("NewContractSession: ledger client is nil")
	}
	if deps.NonceRepo == nil {
		appLogger.Error("NewContractSession: nonce repository is nil")
		return nil, errors.New("NewContractSession: nonce repository is nil")
	}
	if deps.Interface == nil {
		appLogger.Error("NewContractSession: contract interface is nil")
		return nil, errors.New("NewContractSession: contract interface is nil")
	}
	if deps.TokenInterface == nil {
		appLogger.Error("NewContractSession: token interface is nil")
		return nil, errors.New("NewContractSession: token interface is nil")
	}
	if deps.Contract.IsZero() {
		appLogger.Error("NewContractSession: contract address is empty")
		return nil, fmt.Errorf("%w: contract address is empty", domain.ErrInvalidAddressFormat)
	}
	if (deps.Credentials == nil) != (deps.Signer == nil) {
		appLogger.Error("NewContractSession: credentials and signer must be provided together")
		return nil, fmt.Errorf("%w: credentials and signer must be provided together", domain.ErrInvalidWallet)
	}
	if deps.Credentials != nil && !deps.Signer.Address().Equals(deps.Credentials.WalletAddress()) {
		appLogger.Error("NewContractSession: signer address does not match wallet",
			"wallet", deps.Credentials.WalletAddress().Checksum(), "signer", deps.Signer.Address().Checksum())
		return nil, fmt.Errorf("%w: signer address does not match wallet address %s",
			domain.ErrInvalidWallet, deps.Credentials.WalletAddress().Checksum())
	}

	gasLimit := txCfg.DefaultGasLimit
	if gasLimit == 0 {
		gasLimit = domain.DefaultGasLimit
	}

	s := &ContractSession{
		ledger:          deps.Ledger,
		signer:          deps.Signer,
		credentials:     deps.Credentials,
		nonceRepo:       deps.NonceRepo,
		contract:        deps.Contract,
		iface:           deps.Interface,
		tokenInterface:  deps.TokenInterface,
		logger:          appLogger.With("contract", deps.Contract.Checksum()),
		defaultGasLimit: gasLimit,
	}

	if s.credentials == nil {
		s.logger.Info("Contract session opened without credentials, write calls are disabled")
		return s, nil
	}

	wallet := s.credentials.WalletAddress()
	onChain, err := s.ledger.TransactionCount(ctx, wallet)
	if err != nil {
		s.logger.Error("Failed to fetch initial transaction count", "wallet", wallet.Checksum(), "error", err)
		return nil, fmt.Errorf("failed to fetch transaction count for %s: %w", wallet.Checksum(), err)
	}
	if err := s.nonceRepo.SetLastNonce(ctx, onChain); err != nil {
		s.logger.Error("Failed to store initial nonce", "nonce", onChain.Value(), "error", err)
		return nil, fmt.Errorf("failed to store initial nonce: %w", err)
	}
	s.logger.Info("Contract session opened", "wallet", wallet.Checksum(), "nonce", onChain.Value())

	return s, nil
}

// CallRead invokes a function with eth_call. A function with a single output
// returns that value; otherwise the ordered outputs are returned as []any.
func (s *ContractSession) CallRead(ctx context.Context, functionName string, params domain.Params) (any, error) {
	values, err := s.read(ctx, s.iface, s.contract, functionName, params)
	if err != nil {
		return nil, err
	}
	if len(values) == 1 {
		return values[0], nil
	}
	return values, nil
}

// CallWrite builds, signs and submits a transaction calling functionName and
// returns its hash. The tracked nonce advances once the transaction is signed,
// whether or not the node accepts it.
func (s *ContractSession) CallWrite(ctx context.Context, functionName string, params domain.Params, opts TxOptions) (string, error) {
	if s.credentials == nil {
		return "", fmt.Errorf("%w: cannot call %s", domain.ErrMissingCredentials, functionName)
	}
	fn, err := s.iface.Function(functionName)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", functionName, err)
	}
	data, err := s.iface.Pack(functionName, params)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", functionName, err)
	}
	if fn.IsReadOnly() {
		s.logger.Warn("Sending a transaction to a read-only function", "function", functionName, "mutability", string(fn.Mutability))
	}
	hash, err := s.submit(ctx, s.contract, functionName, data, opts)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// ApproveSpender grants the session contract an unlimited allowance on the
// token, unless some allowance is already in place. It returns the approval
// transaction hash, or an empty string when nothing was sent.
func (s *ContractSession) ApproveSpender(ctx context.Context, tokenAddress string) (string, error) {
	if s.credentials == nil {
		return "", fmt.Errorf("%w: cannot approve spender", domain.ErrMissingCredentials)
	}
	token, err := domain.NewAddress(tokenAddress)
	if err != nil {
		return "", fmt.Errorf("invalid token address: %w", err)
	}
	owner := s.credentials.WalletAddress()
	tokenLogger := s.logger.With("token", token.Checksum(), "owner", owner.Checksum())

	allowanceFn, err := s.tokenInterface.Function(allowanceFunction)
	if err != nil {
		return "", fmt.Errorf("token interface: %w", err)
	}
	allowanceParams, err := allowanceFn.ParamsOf(owner, s.contract)
	if err != nil {
		return "", fmt.Errorf("token interface: %w", err)
	}
	values, err := s.read(ctx, s.tokenInterface, token, allowanceFunction, allowanceParams)
	if err != nil {
		return "", fmt.Errorf("failed to query allowance: %w", err)
	}
	allowance, err := toUint256(values)
	if err != nil {
		return "", fmt.Errorf("failed to decode allowance: %w", err)
	}

	if !allowance.IsZero() {
		tokenLogger.Debug("Allowance already granted, skipping approval", "allowance", allowance.Dec())
		return "", nil
	}

	approveFn, err := s.tokenInterface.Function(approveFunction)
	if err != nil {
		return "", fmt.Errorf("token interface: %w", err)
	}
	unlimited := new(uint256.Int).SetAllOne()
	approveParams, err := approveFn.ParamsOf(s.contract, unlimited)
	if err != nil {
		return "", fmt.Errorf("token interface: %w", err)
	}
	data, err := s.tokenInterface.Pack(approveFunction, approveParams)
	if err != nil {
		return "", fmt.Errorf("failed to encode approve: %w", err)
	}

	tokenLogger.Info("Allowance is zero, submitting unlimited approval")
	hash, err := s.submit(ctx, token, approveFunction, data, TxOptions{})
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// LastNonce returns the nonce the next write is expected to use.
// A read-only session reports zero.
func (s *ContractSession) LastNonce(ctx context.Context) (uint64, error) {
	n, err := s.nonceRepo.GetLastNonce(ctx)
	if errors.Is(err, repository.ErrStateNotInitialized) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get last nonce: %w", err)
	}
	return n.Value(), nil
}

// HasCredentials reports whether the session can send transactions.
func (s *ContractSession) HasCredentials() bool {
	return s.credentials != nil
}

// ContractAddress returns the EIP-55 address of the session contract.
func (s *ContractSession) ContractAddress() string {
	return s.contract.Checksum()
}

// Functions lists the callable functions of the session contract.
func (s *ContractSession) Functions() []string {
	return s.iface.Functions()
}

func (s *ContractSession) read(
	ctx context.Context,
	iface *domain.ContractInterface,
	target domain.Address,
	functionName string,
	params domain.Params,
) ([]any, error) {
	data, err := iface.Pack(functionName, params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", functionName, err)
	}
	out, err := s.ledger.CallContract(ctx, target, data)
	if err != nil {
		s.logger.Error("Read call failed", "function", functionName, "target", target.Checksum(), "error", err)
		return nil, fmt.Errorf("call %s: %w", functionName, err)
	}
	values, err := iface.Unpack(functionName, out)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", functionName, err)
	}
	return values, nil
}
