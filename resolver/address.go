package resolver

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var addressRe = regexp.MustCompile("^0x[0-9a-fA-F]{40}$")

// IsValidAddress reports whether addr is a well formed account address: 0x
// followed by 40 hex digits, either all lower case or with a correct EIP-55
// checksum. The check is purely syntactic, no network involved.
func IsValidAddress(addr string) bool {
	if !addressRe.MatchString(addr) {
		return false
	}
	hexPart := addr[2:]
	if hexPart == strings.ToLower(hexPart) {
		return true
	}
	// mixed case input must carry a valid checksum
	return common.HexToAddress(addr).Hex() == addr
}

// NormalizeAddress trims surrounding whitespace so pasted addresses with
// stray spaces still validate.
func NormalizeAddress(addr string) string {
	return strings.TrimSpace(addr)
}
