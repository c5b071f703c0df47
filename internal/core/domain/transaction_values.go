package domain

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidTransactionHashFormat indicates invalid transaction hash format.
var ErrInvalidTransactionHashFormat = errors.New("invalid transaction hash format")

// Basic regex for Transaction Hash format validation (0x followed by 64 hex characters).
var ethTxHashRegex = regexp.MustCompile("^0x[0-9a-fA-F]{64}$")

// TransactionHash represents a validated transaction hash value object.
type TransactionHash struct {
	value string
}

// NewTransactionHash creates a new TransactionHash.
func NewTransactionHash(hash string) (TransactionHash, error) {
	cleanHash := strings.ToLower(strings.TrimSpace(hash))
	if !ethTxHashRegex.MatchString(cleanHash) {
		return TransactionHash{}, fmt.Errorf("%w: %s", ErrInvalidTransactionHashFormat, hash)
	}
	return TransactionHash{value: cleanHash}, nil
}

// TransactionHashFromCommon wraps a go-ethereum hash.
func TransactionHashFromCommon(h common.Hash) TransactionHash {
	return TransactionHash{value: strings.ToLower(h.Hex())}
}

// String returns the string representation of the transaction hash.
func (th TransactionHash) String() string {
	return th.value
}

// Equals checks if two TransactionHash objects are equal.
func (th TransactionHash) Equals(other TransactionHash) bool {
	return th.value == other.value
}

// ErrInvalidWeiValueFormat indicates that the provided string is not a valid Wei value format.
var ErrInvalidWeiValueFormat = errors.New("invalid wei value format")

// WeiValue represents a non-negative amount of wei attached to a transaction.
type WeiValue struct {
	value *big.Int
}

// WeiValueFromBig creates a WeiValue from a big integer. Nil means zero.
func WeiValueFromBig(v *big.Int) (WeiValue, error) {
	if v == nil {
		return WeiValue{}, nil
	}
	if v.Sign() < 0 {
		return WeiValue{}, fmt.Errorf("%w: negative value '%s'", ErrInvalidWeiValueFormat, v.String())
	}
	return WeiValue{value: new(big.Int).Set(v)}, nil
}

// String returns the string representation of the wei value in hex format ("0x...").
func (wv WeiValue) String() string {
	if wv.value == nil {
		return "0x0"
	}
	return "0x" + wv.value.Text(16)
}

// BigInt returns a copy of the internal *big.Int value.
func (wv WeiValue) BigInt() *big.Int {
	if wv.value == nil {
		return big.NewInt(0)
	}
	valCopy := new(big.Int)
	valCopy.Set(wv.value)
	return valCopy
}
