package resolver

import (
	"errors"
	"fmt"
)

// Kind classifies why a resolution failed. Every failure out of Resolve is a
// *Error carrying exactly one Kind; the presentation layer switches on it to
// pick user-facing wording.
type Kind int

const (
	// InvalidAddress means the input failed the syntactic address check,
	// before any network call was made.
	InvalidAddress Kind = iota + 1
	// NotAContract means the address holds no bytecode, so it is a plain
	// account or unused.
	NotAContract
	// UnverifiedContract means the explorer has no verified ABI for the
	// address, or returned one we couldn't parse.
	UnverifiedContract
	// NoMessageFunction means the verified ABI contains no zero-argument
	// view/pure function returning a single string.
	NoMessageFunction
	// InvocationFailed means the selected function call reverted or failed.
	InvocationFailed
	// TransportError covers network failures not otherwise classified.
	TransportError
)

func (k Kind) String() string {
	switch k {
	case InvalidAddress:
		return "invalid address"
	case NotAContract:
		return "not a contract"
	case UnverifiedContract:
		return "unverified contract"
	case NoMessageFunction:
		return "no message function"
	case InvocationFailed:
		return "invocation failed"
	case TransportError:
		return "transport error"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// Error is the single error type Resolve returns. Message is always set and
// human readable; Err carries the underlying cause when there is one.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or 0 when err is not a resolver error.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}
