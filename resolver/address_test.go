package resolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"all lower case", "0xd8da6bf26964af9d7eed9e03e53415d37aa96045", true},
		{"correct checksum", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", true},
		{"broken checksum", "0xD8da6bf26964af9d7eed9e03e53415d37aa96045", false},
		{"zero address", "0x0000000000000000000000000000000000000000", true},
		{"dead address", "0x000000000000000000000000000000000000dead", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"missing prefix", "d8da6bf26964af9d7eed9e03e53415d37aa96045", false},
		{"too short", "0xd8da6bf26964af9d7eed9e03e53415d37aa9604", false},
		{"too long", "0xd8da6bf26964af9d7eed9e03e53415d37aa960455", false},
		{"non hex chars", "0xg8da6bf26964af9d7eed9e03e53415d37aa96045", false},
		{"ens name", "vitalik.eth", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidAddress(tc.input), "input %q", tc.input)
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	addr := "0x000000000000000000000000000000000000dead"
	assert.Equal(t, addr, NormalizeAddress("  "+addr+"\t\n"))
	assert.Equal(t, "", NormalizeAddress(strings.Repeat(" ", 5)))
}
