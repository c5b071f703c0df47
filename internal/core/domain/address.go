// Package domain defines the core domain models and business logic entities.
package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidAddressFormat indicates that the provided string is not a valid Ethereum address format.
var ErrInvalidAddressFormat = errors.New("invalid ethereum address format")

// Address represents a validated Ethereum account or contract address value object.
type Address struct {
	value common.Address
	set   bool
}

// NewAddress creates a new Address value object from a string.
// Both all-lowercase and mixed-case (checksummed) inputs are accepted.
func NewAddress(addr string) (Address, error) {
	cleanAddr := strings.TrimSpace(addr)
	if !strings.HasPrefix(cleanAddr, "0x") && !strings.HasPrefix(cleanAddr, "0X") {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidAddressFormat, addr)
	}
	if !common.IsHexAddress(cleanAddr) {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidAddressFormat, addr)
	}
	return Address{value: common.HexToAddress(cleanAddr), set: true}, nil
}

// AddressFromCommon wraps an already decoded go-ethereum address.
func AddressFromCommon(addr common.Address) Address {
	return Address{value: addr, set: true}
}

// String returns the lowercase hex representation of the address.
func (a Address) String() string {
	if !a.set {
		return ""
	}
	return strings.ToLower(a.value.Hex())
}

// Checksum returns the EIP-55 mixed-case representation of the address.
func (a Address) Checksum() string {
	if !a.set {
		return ""
	}
	return a.value.Hex()
}

// Common returns the go-ethereum representation of the address.
func (a Address) Common() common.Address {
	return a.value
}

// IsZero checks if the Address is the zero value (empty).
func (a Address) IsZero() bool {
	return !a.set
}

// Equals checks if two Address objects are equal.
func (a Address) Equals(other Address) bool {
	return a.set == other.set && a.value == other.value
}
