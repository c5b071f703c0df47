package domain

import "errors"

// Session error taxonomy. Adapters and the application layer wrap these with
// fmt.Errorf("%w: ...") so callers can match them with errors.Is.
var (
	// ErrInvalidWallet indicates malformed or inconsistent wallet credentials.
	ErrInvalidWallet = errors.New("invalid wallet")

	// ErrMissingCredentials indicates a write was attempted on a read-only session.
	ErrMissingCredentials = errors.New("wallet credentials are required for write operations")

	// ErrUnknownFunction indicates the requested function is not declared in the contract interface.
	ErrUnknownFunction = errors.New("unknown contract function")

	// ErrInvalidParams indicates the call parameters do not match the function inputs.
	ErrInvalidParams = errors.New("invalid function parameters")

	// ErrInterfaceLoad indicates the contract interface description could not be read or parsed.
	ErrInterfaceLoad = errors.New("failed to load contract interface")

	// ErrNetwork indicates a transport level failure talking to the ledger node, including timeouts.
	ErrNetwork = errors.New("ledger network error")

	// ErrRPC indicates the ledger node answered with a JSON-RPC error or a malformed response.
	ErrRPC = errors.New("ledger rpc error")

	// ErrSubmissionRejected indicates the node refused a signed transaction.
	ErrSubmissionRejected = errors.New("transaction submission rejected")
)
