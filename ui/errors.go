package ui

import (
	"github.com/revelio-tools/revelio/resolver"
)

// UserFacingError maps a resolution failure to the wording shown to the
// user. Unclassified errors fall through to their own message.
func UserFacingError(err error) string {
	switch resolver.KindOf(err) {
	case resolver.InvalidAddress:
		return "That doesn't look like a valid address. Expected 0x followed by 40 hex characters."
	case resolver.NotAContract:
		return "There is no contract at that address. It may be a regular account or simply unused."
	case resolver.UnverifiedContract:
		return "The contract at that address isn't verified on the explorer, so its interface can't be read."
	case resolver.NoMessageFunction:
		return "The contract has no zero-argument function returning a string, so there is no message to reveal."
	case resolver.InvocationFailed:
		return "Calling the message function failed. The contract may have reverted."
	case resolver.TransportError:
		return "Network trouble while resolving. Check your connection and try again."
	default:
		return err.Error()
	}
}
