// Package utils provides common utility functions.
package utils

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseBigInt converts a decimal ("26") or hex ("0x1a") string to a big integer.
// A leading minus sign is accepted for both forms.
func ParseBigInt(s string) (*big.Int, error) {
	cleaned := strings.TrimSpace(s)
	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")
	if cleaned == "" {
		return nil, fmt.Errorf("empty numeric string")
	}

	base := 10
	lower := strings.ToLower(cleaned)
	if strings.HasPrefix(lower, "0x") {
		base = 16
		cleaned = lower[2:]
		if cleaned == "" {
			return nil, fmt.Errorf("empty hex string")
		}
	}

	val, ok := new(big.Int).SetString(cleaned, base)
	if !ok {
		return nil, fmt.Errorf("invalid base %d number %q", base, s)
	}
	if negative {
		val.Neg(val)
	}
	return val, nil
}
