package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"evm_contract_client/internal/core/domain"
)

// classifyError maps a go-ethereum client error onto the domain taxonomy.
func classifyError(method string, err error) error {
	return fmt.Errorf("%w: %s: %w", errorKind(err, domain.ErrRPC), method, err)
}

// classifySubmitError is classifyError for eth_sendRawTransaction, where a node
// error object means the transaction itself was refused.
func classifySubmitError(err error) error {
	return fmt.Errorf("%w: eth_sendRawTransaction: %w", errorKind(err, domain.ErrSubmissionRejected), err)
}

func errorKind(err error, nodeErrorKind error) error {
	var (
		httpErr gethrpc.HTTPError
		rpcErr  gethrpc.Error
		netErr  net.Error
		urlErr  *url.Error
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return domain.ErrNetwork
	case errors.As(err, &httpErr):
		return domain.ErrNetwork
	case errors.As(err, &rpcErr):
		return nodeErrorKind
	case errors.As(err, &netErr), errors.As(err, &urlErr):
		return domain.ErrNetwork
	default:
		// Undecodable or otherwise malformed responses.
		return domain.ErrRPC
	}
}
