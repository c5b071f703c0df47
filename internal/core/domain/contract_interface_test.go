package domain_test

import (
	"math/big"
	"strings"
	"testing"

	"evm_contract_client/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"account","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"setFlags","stateMutability":"nonpayable",
	 "inputs":[{"name":"","type":"uint8"},{"name":"","type":"bool"}],
	 "outputs":[]},
	{"type":"function","name":"reserves","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"r0","type":"uint112"},{"name":"r1","type":"uint112"}]},
	{"type":"function","name":"setDelta","stateMutability":"nonpayable",
	 "inputs":[{"name":"delta","type":"int256"}],"outputs":[]},
	{"type":"function","name":"setOffset","stateMutability":"nonpayable",
	 "inputs":[{"name":"offset","type":"int128"}],"outputs":[]}
]`

func newTestInterface(t *testing.T) *domain.ContractInterface {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(testABI))
	require.NoError(t, err)
	return domain.NewContractInterface(parsed)
}

func TestContractInterface_Function(t *testing.T) {
	ci := newTestInterface(t)

	fn, err := ci.Function("balanceOf")
	require.NoError(t, err)
	assert.Equal(t, "balanceOf(address)", fn.Signature)
	assert.Equal(t, []domain.Param{{Name: "account", Type: "address"}}, fn.Inputs)
	assert.Equal(t, []domain.Param{{Name: "", Type: "uint256"}}, fn.Outputs)
	assert.True(t, fn.IsReadOnly())

	fn, err = ci.Function("transfer")
	require.NoError(t, err)
	assert.False(t, fn.IsReadOnly())

	_, err = ci.Function("mint")
	assert.ErrorIs(t, err, domain.ErrUnknownFunction)

	assert.Equal(t, []string{"balanceOf", "reserves", "setDelta", "setFlags", "setOffset", "transfer"}, ci.Functions())
}

func TestContractInterface_Pack(t *testing.T) {
	ci := newTestInterface(t)
	holder := "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

	t.Run("string address", func(t *testing.T) {
		data, err := ci.Pack("balanceOf", domain.Params{"account": holder})
		require.NoError(t, err)
		want := "0x70a08231000000000000000000000000" + strings.ToLower(holder[2:])
		assert.Equal(t, want, hexutil.Encode(data))
	})

	t.Run("equivalent argument forms encode identically", func(t *testing.T) {
		fromString, err := ci.Pack("transfer", domain.Params{"to": holder, "value": "0x64"})
		require.NoError(t, err)
		fromBig, err := ci.Pack("transfer", domain.Params{"to": common.HexToAddress(holder), "value": big.NewInt(100)})
		require.NoError(t, err)
		fromUint256, err := ci.Pack("transfer", domain.Params{"to": holder, "value": uint256.NewInt(100)})
		require.NoError(t, err)
		fromInt, err := ci.Pack("transfer", domain.Params{"to": holder, "value": 100})
		require.NoError(t, err)

		assert.Equal(t, fromString, fromBig)
		assert.Equal(t, fromString, fromUint256)
		assert.Equal(t, fromString, fromInt)
	})

	t.Run("unnamed inputs are positional", func(t *testing.T) {
		_, err := ci.Pack("setFlags", domain.Params{"arg0": 7, "arg1": "true"})
		assert.NoError(t, err)
	})

	t.Run("small integer overflow", func(t *testing.T) {
		_, err := ci.Pack("setFlags", domain.Params{"arg0": 300, "arg1": true})
		assert.ErrorIs(t, err, domain.ErrInvalidParams)
	})

	t.Run("wide signed integer range", func(t *testing.T) {
		pow := func(n uint) *big.Int { return new(big.Int).Lsh(big.NewInt(1), n) }
		minus := func(b *big.Int) *big.Int { return new(big.Int).Neg(b) }
		one := big.NewInt(1)

		tests := []struct {
			name     string
			function string
			key      string
			value    *big.Int
			wantErr  bool
		}{
			{name: "int256 max", function: "setDelta", key: "delta", value: new(big.Int).Sub(pow(255), one)},
			{name: "int256 min", function: "setDelta", key: "delta", value: minus(pow(255))},
			{name: "int256 above max", function: "setDelta", key: "delta", value: pow(255), wantErr: true},
			{name: "int256 below min", function: "setDelta", key: "delta", value: new(big.Int).Sub(minus(pow(255)), one), wantErr: true},
			{name: "int128 max", function: "setOffset", key: "offset", value: new(big.Int).Sub(pow(127), one)},
			{name: "int128 min", function: "setOffset", key: "offset", value: minus(pow(127))},
			{name: "int128 above max", function: "setOffset", key: "offset", value: pow(127), wantErr: true},
			{name: "int128 far above max", function: "setOffset", key: "offset", value: pow(200), wantErr: true},
			{name: "int128 below min", function: "setOffset", key: "offset", value: new(big.Int).Sub(minus(pow(127)), one), wantErr: true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data, err := ci.Pack(tt.function, domain.Params{tt.key: tt.value})
				if tt.wantErr {
					assert.ErrorIs(t, err, domain.ErrInvalidParams)
					return
				}
				require.NoError(t, err)
				// Two's complement round trip proves the value was not wrapped.
				got := new(big.Int).SetBytes(data[4:])
				if tt.value.Sign() < 0 {
					got.Sub(got, pow(256))
				}
				assert.Equal(t, 0, tt.value.Cmp(got))
			})
		}
	})

	t.Run("negative unsigned", func(t *testing.T) {
		_, err := ci.Pack("transfer", domain.Params{"to": holder, "value": -1})
		assert.ErrorIs(t, err, domain.ErrInvalidParams)
	})

	t.Run("missing parameter", func(t *testing.T) {
		_, err := ci.Pack("transfer", domain.Params{"to": holder})
		assert.ErrorIs(t, err, domain.ErrInvalidParams)
	})

	t.Run("unexpected parameter", func(t *testing.T) {
		_, err := ci.Pack("balanceOf", domain.Params{"account": holder, "extra": 1})
		assert.ErrorIs(t, err, domain.ErrInvalidParams)
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := ci.Pack("balanceOf", domain.Params{"account": "0xAbC"})
		assert.ErrorIs(t, err, domain.ErrInvalidParams)
		assert.ErrorIs(t, err, domain.ErrInvalidAddressFormat)
	})

	t.Run("unknown function", func(t *testing.T) {
		_, err := ci.Pack("mint", nil)
		assert.ErrorIs(t, err, domain.ErrUnknownFunction)
	})
}

func TestContractInterface_Unpack(t *testing.T) {
	ci := newTestInterface(t)

	encoded := common.LeftPadBytes(big.NewInt(1234).Bytes(), 32)
	values, err := ci.Unpack("balanceOf", encoded)
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, big.NewInt(1234), values[0])

	pair := append(common.LeftPadBytes(big.NewInt(1).Bytes(), 32), common.LeftPadBytes(big.NewInt(2).Bytes(), 32)...)
	values, err = ci.Unpack("reserves", pair)
	require.NoError(t, err)
	assert.Equal(t, []any{big.NewInt(1), big.NewInt(2)}, values)

	values, err = ci.Unpack("setFlags", nil)
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = ci.Unpack("balanceOf", nil)
	assert.ErrorIs(t, err, domain.ErrRPC)
}

func TestFunctionDescriptor_ParamsOf(t *testing.T) {
	ci := newTestInterface(t)

	fn, err := ci.Function("transfer")
	require.NoError(t, err)
	params, err := fn.ParamsOf("0x71c7656ec7ab88b098defb751b7401b5f6d8976f", big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"to": "0x71c7656ec7ab88b098defb751b7401b5f6d8976f", "value": big.NewInt(1)}, params)

	fn, err = ci.Function("setFlags")
	require.NoError(t, err)
	params, err = fn.ParamsOf(3, true)
	require.NoError(t, err)
	assert.Equal(t, domain.Params{"arg0": 3, "arg1": true}, params)

	_, err = fn.ParamsOf(3)
	assert.ErrorIs(t, err, domain.ErrInvalidParams)
}
