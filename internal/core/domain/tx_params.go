package domain

import (
	"fmt"
	"math/big"
)

// DefaultGasLimit is used for writes when the caller does not supply a gas limit.
const DefaultGasLimit uint64 = 350000

// Nonce is the per-account transaction counter.
type Nonce uint64

// Next returns the nonce following n.
func (n Nonce) Next() Nonce {
	return n + 1
}

// Value returns the uint64 representation of the nonce.
func (n Nonce) Value() uint64 {
	return uint64(n)
}

// ReconcileNonce picks the nonce for the next transaction: the larger of the
// locally tracked value and the count reported by the chain.
func ReconcileNonce(tracked, onChain Nonce) Nonce {
	if onChain > tracked {
		return onChain
	}
	return tracked
}

// TxParams are the parameters of a single write transaction. They are built
// per call and never persisted.
type TxParams struct {
	From     Address
	Value    WeiValue
	GasLimit uint64
	GasPrice *big.Int
	Nonce    Nonce
	ChainID  *big.Int
}

// String renders the parameters for logs.
func (p TxParams) String() string {
	return fmt.Sprintf("from=%s value=%s gas=%d gasPrice=%s nonce=%d chainId=%s",
		p.From.Checksum(), p.Value.String(), p.GasLimit, p.GasPrice, p.Nonce, p.ChainID)
}
