// Package abi loads contract interface descriptions from ABI JSON documents.
package abi

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"

	"evm_contract_client/internal/core/domain"
)

//go:embed erc20.json
var erc20ABI []byte

// LoadFromFile reads and parses the ABI JSON file at path.
func LoadFromFile(path string) (*domain.ContractInterface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open '%s': %w", domain.ErrInterfaceLoad, path, err)
	}
	defer f.Close()

	ci, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file '%s')", err, path)
	}
	return ci, nil
}

// Load parses an ABI JSON document.
func Load(r io.Reader) (*domain.ContractInterface, error) {
	parsed, err := gethabi.JSON(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parse abi: %w", domain.ErrInterfaceLoad, err)
	}
	if len(parsed.Methods) == 0 {
		return nil, fmt.Errorf("%w: abi declares no functions", domain.ErrInterfaceLoad)
	}
	return domain.NewContractInterface(parsed), nil
}

// ERC20 returns the standard EIP-20 token interface.
func ERC20() *domain.ContractInterface {
	ci, err := Load(bytes.NewReader(erc20ABI))
	if err != nil {
		panic(fmt.Sprintf("embedded erc20 abi: %v", err))
	}
	return ci
}

// LoadTokenInterface returns the token interface at path, or the embedded
// ERC20 interface when path is empty.
func LoadTokenInterface(path string) (*domain.ContractInterface, error) {
	if path == "" {
		return ERC20(), nil
	}
	return LoadFromFile(path)
}
