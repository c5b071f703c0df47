package domain

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"evm_contract_client/internal/utils"
)

// Params holds named call arguments keyed by ABI input name. Unnamed inputs
// are addressed positionally as "arg0", "arg1", ...
type Params map[string]any

// Mutability mirrors the ABI stateMutability attribute.
type Mutability string

// Supported mutability values.
const (
	MutabilityPure       Mutability = "pure"
	MutabilityView       Mutability = "view"
	MutabilityNonPayable Mutability = "nonpayable"
	MutabilityPayable    Mutability = "payable"
)

// Param describes one input or output of a contract function.
type Param struct {
	Name string
	Type string
}

// FunctionDescriptor is the typed invocation descriptor of one contract function.
type FunctionDescriptor struct {
	Name       string
	Signature  string
	Inputs     []Param
	Outputs    []Param
	Mutability Mutability

	method abi.Method
}

// IsReadOnly reports whether calling the function cannot change state.
func (d FunctionDescriptor) IsReadOnly() bool {
	return d.Mutability == MutabilityView || d.Mutability == MutabilityPure
}

// ContractInterface is the dispatch table of a loaded contract ABI.
// Overloaded functions are keyed the way go-ethereum names them (foo, foo0, foo1...).
type ContractInterface struct {
	parsed    abi.ABI
	functions map[string]FunctionDescriptor
}

// NewContractInterface builds the dispatch table from a parsed ABI.
func NewContractInterface(parsed abi.ABI) *ContractInterface {
	functions := make(map[string]FunctionDescriptor, len(parsed.Methods))
	for key, method := range parsed.Methods {
		functions[key] = FunctionDescriptor{
			Name:       key,
			Signature:  method.Sig,
			Inputs:     toParams(method.Inputs),
			Outputs:    toParams(method.Outputs),
			Mutability: Mutability(method.StateMutability),
			method:     method,
		}
	}
	return &ContractInterface{parsed: parsed, functions: functions}
}

// Function resolves a function by name.
func (ci *ContractInterface) Function(name string) (FunctionDescriptor, error) {
	fn, ok := ci.functions[name]
	if !ok {
		return FunctionDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return fn, nil
}

// Functions returns the sorted names of all callable functions.
func (ci *ContractInterface) Functions() []string {
	names := make([]string, 0, len(ci.functions))
	for name := range ci.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pack resolves the function, orders and coerces params by its inputs and
// returns the ABI encoded calldata.
func (ci *ContractInterface) Pack(name string, params Params) ([]byte, error) {
	fn, err := ci.Function(name)
	if err != nil {
		return nil, err
	}
	args, err := fn.orderArgs(params)
	if err != nil {
		return nil, err
	}
	data, err := ci.parsed.Pack(name, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidParams, fn.Signature, err)
	}
	return data, nil
}

// Unpack decodes the raw return data of a function call.
func (ci *ContractInterface) Unpack(name string, data []byte) ([]any, error) {
	fn, err := ci.Function(name)
	if err != nil {
		return nil, err
	}
	if len(fn.method.Outputs) == 0 {
		return []any{}, nil
	}
	values, err := fn.method.Outputs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s result: %w", ErrRPC, fn.Signature, err)
	}
	return values, nil
}

func (d FunctionDescriptor) orderArgs(params Params) ([]any, error) {
	args := make([]any, 0, len(d.method.Inputs))
	used := 0
	for i, input := range d.method.Inputs {
		key := inputKey(i, input.Name)
		raw, ok := params[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s: missing parameter %q", ErrInvalidParams, d.Signature, key)
		}
		used++
		arg, err := coerceArg(input.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: parameter %q: %w", ErrInvalidParams, d.Signature, key, err)
		}
		args = append(args, arg)
	}
	if used != len(params) {
		return nil, fmt.Errorf("%w: %s: unexpected parameters %v", ErrInvalidParams, d.Signature, d.unknownKeys(params))
	}
	return args, nil
}

// ParamsOf keys positional values by the function's input names.
func (d FunctionDescriptor) ParamsOf(values ...any) (Params, error) {
	if len(values) != len(d.method.Inputs) {
		return nil, fmt.Errorf("%w: %s: want %d parameters, got %d",
			ErrInvalidParams, d.Signature, len(d.method.Inputs), len(values))
	}
	params := make(Params, len(values))
	for i, input := range d.method.Inputs {
		params[inputKey(i, input.Name)] = values[i]
	}
	return params, nil
}

// inputKey is the Params key of an input; unnamed inputs are addressed as argN.
func inputKey(i int, name string) string {
	if name == "" {
		return "arg" + strconv.Itoa(i)
	}
	return name
}

func (d FunctionDescriptor) unknownKeys(params Params) []string {
	known := make(map[string]struct{}, len(d.method.Inputs))
	for i, input := range d.method.Inputs {
		key := inputKey(i, input.Name)
		known[key] = struct{}{}
	}
	var extra []string
	for key := range params {
		if _, ok := known[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return extra
}

var bigIntType = reflect.TypeOf(&big.Int{})

// coerceArg converts convenient Go values into the type go-ethereum expects
// for the ABI type. Values it does not know are passed through for abi.Pack to check.
func coerceArg(t abi.Type, v any) (any, error) {
	switch t.T {
	case abi.AddressTy:
		switch a := v.(type) {
		case string:
			addr, err := NewAddress(a)
			if err != nil {
				return nil, err
			}
			return addr.Common(), nil
		case Address:
			return a.Common(), nil
		case common.Address:
			return a, nil
		}
	case abi.UintTy, abi.IntTy:
		b, ok, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		if !ok {
			return v, nil
		}
		return fitInteger(t, b)
	case abi.BoolTy:
		if s, ok := v.(string); ok {
			return strconv.ParseBool(s)
		}
	}
	return v, nil
}

func toBigInt(v any) (*big.Int, bool, error) {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, false, fmt.Errorf("nil integer")
		}
		return n, true, nil
	case *uint256.Int:
		if n == nil {
			return nil, false, fmt.Errorf("nil integer")
		}
		return n.ToBig(), true, nil
	case string:
		b, err := utils.ParseBigInt(n)
		if err != nil {
			return nil, false, err
		}
		return b, true, nil
	case int:
		return big.NewInt(int64(n)), true, nil
	case int8:
		return big.NewInt(int64(n)), true, nil
	case int16:
		return big.NewInt(int64(n)), true, nil
	case int32:
		return big.NewInt(int64(n)), true, nil
	case int64:
		return big.NewInt(n), true, nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true, nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true, nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true, nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true, nil
	case uint64:
		return new(big.Int).SetUint64(n), true, nil
	}
	return nil, false, nil
}

func fitInteger(t abi.Type, b *big.Int) (any, error) {
	if t.T == abi.UintTy && b.Sign() < 0 {
		return nil, fmt.Errorf("negative value %s for %s", b, t.String())
	}
	goType := t.GetType()
	if goType == bigIntType {
		if t.T == abi.UintTy && b.BitLen() > t.Size {
			return nil, fmt.Errorf("value %s overflows %s", b, t.String())
		}
		if t.T == abi.IntTy && !fitsSigned(b, t.Size) {
			return nil, fmt.Errorf("value %s overflows %s", b, t.String())
		}
		return new(big.Int).Set(b), nil
	}

	out := reflect.New(goType).Elem()
	if t.T == abi.UintTy {
		if !b.IsUint64() || out.OverflowUint(b.Uint64()) {
			return nil, fmt.Errorf("value %s overflows %s", b, t.String())
		}
		out.SetUint(b.Uint64())
	} else {
		if !b.IsInt64() || out.OverflowInt(b.Int64()) {
			return nil, fmt.Errorf("value %s overflows %s", b, t.String())
		}
		out.SetInt(b.Int64())
	}
	return out.Interface(), nil
}

// fitsSigned reports whether b lies in [-2^(size-1), 2^(size-1)-1].
func fitsSigned(b *big.Int, size int) bool {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(size-1))
	if b.Sign() < 0 {
		return b.Cmp(new(big.Int).Neg(limit)) >= 0
	}
	return b.Cmp(limit) < 0
}

func toParams(args abi.Arguments) []Param {
	params := make([]Param, 0, len(args))
	for _, arg := range args {
		params = append(params, Param{Name: arg.Name, Type: arg.Type.String()})
	}
	return params
}
