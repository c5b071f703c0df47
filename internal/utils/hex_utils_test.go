package utils_test

import (
	"testing"

	"evm_contract_client/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBigInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "decimal", input: "26", want: "26"},
		{name: "hex lowercase prefix", input: "0x1a", want: "26"},
		{name: "hex uppercase prefix", input: "0X1A", want: "26"},
		{name: "negative decimal", input: "-5", want: "-5"},
		{name: "surrounding whitespace", input: "  42 ", want: "42"},
		{name: "beyond uint64", input: "0x10000000000000000", want: "18446744073709551616"},
		{name: "empty", input: "", wantErr: true},
		{name: "bare prefix", input: "0x", wantErr: true},
		{name: "garbage", input: "12ab", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ParseBigInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
