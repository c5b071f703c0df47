package contractsession

import (
	"context"
	"fmt"
	"time"

	"evm_contract_client/internal/adapters/abi"
	"evm_contract_client/internal/adapters/rpc"
	"evm_contract_client/internal/adapters/signer"
	"evm_contract_client/internal/adapters/storage/memory/nonce"
	"evm_contract_client/internal/config"
	"evm_contract_client/internal/core/application"
	"evm_contract_client/internal/core/domain"
	"evm_contract_client/internal/logger"
)

const defaultRequestTimeout = config.DefaultLedgerRequestTimeoutSeconds * time.Second

type session struct {
	*application.ContractSession
	node *rpc.EthereumNodeAdapter
}

// Compile-time check to ensure session implements Session
var _ Session = (*session)(nil)

// Open creates a session from opts. With credentials it reads the account's
// transaction count before returning.
func Open(ctx context.Context, opts Options) (Session, error) {
	appLogger := logger.NewDiscardLogger()
	if opts.Logger != nil {
		appLogger = logger.NewSlogAdapter(opts.Logger)
	}
	return open(ctx, opts, appLogger)
}

// OpenFromConfigFile loads a YAML configuration file and opens the session it
// describes. The wallet secret may come from the environment variable named
// by wallet.secret_env.
func OpenFromConfigFile(ctx context.Context, path string) (Session, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	appLogger, err := logger.NewAppLogger(cfg.Logger, nil)
	if err != nil {
		return nil, err
	}

	opts := Options{
		RPCURL:          cfg.Ledger.RPCURL,
		ContractAddress: cfg.Contract.Address,
		ABIPath:         cfg.Contract.ABIPath,
		TokenABIPath:    cfg.Contract.TokenABIPath,
		RequestTimeout:  time.Duration(cfg.Ledger.RequestTimeoutSeconds) * time.Second,
		DefaultGasLimit: cfg.Transaction.DefaultGasLimit,
	}
	if cfg.Wallet != nil {
		opts.Credentials = &Credentials{
			WalletAddress: cfg.Wallet.Address,
			WalletSecret:  cfg.Wallet.ResolveSecret(),
		}
	}
	return open(ctx, opts, appLogger)
}

func open(ctx context.Context, opts Options, appLogger logger.AppLogger) (Session, error) {
	contract, err := domain.NewAddress(opts.ContractAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid contract address: %w", err)
	}

	deps := application.Dependencies{
		Contract:  contract,
		NonceRepo: nonce.NewInMemoryNonceRepo(),
		Logger:    appLogger,
	}

	if opts.Credentials != nil {
		creds, err := domain.NewCredentials(opts.Credentials.WalletAddress, opts.Credentials.WalletSecret)
		if err != nil {
			return nil, err
		}
		keySigner, err := signer.NewPrivateKeySigner(creds)
		if err != nil {
			return nil, err
		}
		deps.Credentials = creds
		deps.Signer = keySigner
	}

	if deps.Interface, err = abi.LoadFromFile(opts.ABIPath); err != nil {
		return nil, err
	}
	if deps.TokenInterface, err = abi.LoadTokenInterface(opts.TokenABIPath); err != nil {
		return nil, err
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	node, err := rpc.DialEthereumNodeAdapter(ctx, opts.RPCURL, opts.HTTPClient, timeout)
	if err != nil {
		return nil, err
	}
	deps.Ledger = node

	cs, err := application.NewContractSession(ctx, deps, config.TransactionConfig{DefaultGasLimit: opts.DefaultGasLimit})
	if err != nil {
		node.Close()
		return nil, err
	}
	return &session{ContractSession: cs, node: node}, nil
}

func (s *session) CallRead(ctx context.Context, functionName string, params Params) (any, error) {
	return s.ContractSession.CallRead(ctx, functionName, domain.Params(params))
}

func (s *session) CallWrite(ctx context.Context, functionName string, params Params, opts TxOptions) (string, error) {
	return s.ContractSession.CallWrite(ctx, functionName, domain.Params(params), application.TxOptions{
		Value:    opts.Value,
		GasLimit: opts.GasLimit,
	})
}

func (s *session) Close() {
	s.node.Close()
}
