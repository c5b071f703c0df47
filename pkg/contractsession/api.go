// Package contractsession is the public API for calling a smart contract on an
// EVM ledger over JSON-RPC, with optional signing credentials for writes.
package contractsession

import (
	"context"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"evm_contract_client/internal/core/domain"
)

// Errors returned by sessions. Test with errors.Is.
var (
	ErrInvalidWallet                = domain.ErrInvalidWallet
	ErrMissingCredentials           = domain.ErrMissingCredentials
	ErrUnknownFunction              = domain.ErrUnknownFunction
	ErrInvalidParams                = domain.ErrInvalidParams
	ErrInterfaceLoad                = domain.ErrInterfaceLoad
	ErrNetwork                      = domain.ErrNetwork
	ErrRPC                          = domain.ErrRPC
	ErrSubmissionRejected           = domain.ErrSubmissionRejected
	ErrInvalidAddressFormat         = domain.ErrInvalidAddressFormat
	ErrInvalidTransactionHashFormat = domain.ErrInvalidTransactionHashFormat
	ErrInvalidWeiValueFormat        = domain.ErrInvalidWeiValueFormat
)

// Params are function arguments keyed by ABI input name. Unnamed inputs are
// keyed arg0, arg1 and so on.
type Params map[string]any

// Credentials identify the signing account. The secret is a hex encoded
// secp256k1 private key and must control WalletAddress.
type Credentials struct {
	WalletAddress string
	WalletSecret  string
}

// TxOptions tune a single write. A nil Value sends no ether; a zero
// GasLimit uses the session default.
type TxOptions struct {
	Value    *big.Int
	GasLimit uint64
}

// Options configure Open.
type Options struct {
	// RPCURL is the JSON-RPC endpoint of the node.
	RPCURL string
	// ContractAddress is the 0x prefixed address of the target contract.
	ContractAddress string
	// ABIPath points at the contract's JSON ABI.
	ABIPath string
	// TokenABIPath optionally overrides the built-in ERC20 interface used by ApproveSpender.
	TokenABIPath string
	// Credentials enable writes. Nil opens a read-only session.
	Credentials *Credentials
	// RequestTimeout bounds every round trip to the node. Defaults to 20s.
	RequestTimeout time.Duration
	// DefaultGasLimit is used when a write does not set one. Defaults to 350000.
	DefaultGasLimit uint64
	// HTTPClient is used for node requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Logger receives structured session logs. Nil discards them.
	Logger *slog.Logger
}

// Session is a handle on one contract. It is safe for concurrent use; writes
// are serialised so every transaction gets its own nonce.
type Session interface {
	// CallRead invokes a function without a transaction and returns its
	// decoded result: the value itself for one output, []any otherwise.
	CallRead(ctx context.Context, functionName string, params Params) (any, error)

	// CallWrite signs and submits a transaction calling functionName and
	// returns the 0x prefixed transaction hash.
	CallWrite(ctx context.Context, functionName string, params Params, opts TxOptions) (string, error)

	// ApproveSpender grants the session contract an unlimited allowance on
	// tokenAddress when the current allowance is zero. It returns an empty
	// hash when no approval was needed.
	ApproveSpender(ctx context.Context, tokenAddress string) (string, error)

	// LastNonce returns the nonce the next write will start from.
	LastNonce(ctx context.Context) (uint64, error)

	// HasCredentials reports whether writes are possible.
	HasCredentials() bool

	// ContractAddress returns the checksummed contract address.
	ContractAddress() string

	// Functions lists the contract's callable functions.
	Functions() []string

	// Close releases the node connection.
	Close()
}
