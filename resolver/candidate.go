package resolver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// abiParameter is one input or output slot of a function descriptor.
type abiParameter struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	InternalType string          `json:"internalType,omitempty"`
	Components   json.RawMessage `json:"components,omitempty"`
}

// abiEntry is one raw descriptor of a verified interface. We parse the ABI
// array ourselves instead of going through geth's abi.JSON because the latter
// stores methods in a map and loses declaration order, which the selection
// rule depends on.
type abiEntry struct {
	Type            string         `json:"type"`
	Name            string         `json:"name"`
	StateMutability string         `json:"stateMutability,omitempty"`
	Constant        bool           `json:"constant,omitempty"`
	Inputs          []abiParameter `json:"inputs"`
	Outputs         []abiParameter `json:"outputs"`
}

func parseInterface(abiJSON string) ([]abiEntry, error) {
	entries := []abiEntry{}
	if err := json.Unmarshal([]byte(abiJSON), &entries); err != nil {
		return nil, fmt.Errorf("couldn't parse abi json: %w", err)
	}
	return entries, nil
}

// readOnly reports whether the entry can be called without a transaction.
// Pre-0.5 compilers emitted "constant": true with no stateMutability field,
// and such contracts are still live and verified, so we accept both forms.
func (e *abiEntry) readOnly() bool {
	switch e.StateMutability {
	case "view", "pure":
		return true
	case "":
		return e.Constant
	}
	return false
}

// isMessageFunction is the candidate filter: a callable function, read-only,
// zero inputs, exactly one string output.
func (e *abiEntry) isMessageFunction() bool {
	return e.Type == "function" &&
		e.readOnly() &&
		len(e.Inputs) == 0 &&
		len(e.Outputs) == 1 &&
		e.Outputs[0].Type == "string"
}

// selectMessageFunction scans entries in declaration order and returns the
// first message function candidate. When several functions match, the first
// one silently wins; there is no ambiguity reporting.
func selectMessageFunction(entries []abiEntry) (*abiEntry, bool) {
	for i := range entries {
		if entries[i].isMessageFunction() {
			return &entries[i], true
		}
	}
	return nil, false
}

// callableABI rebuilds a one-function geth ABI for the selected entry so the
// reader can pack the call data and unpack the string result.
func (e *abiEntry) callableABI() (*abi.ABI, error) {
	single, err := json.Marshal([]abiEntry{*e})
	if err != nil {
		return nil, err
	}
	parsed, err := abi.JSON(strings.NewReader(string(single)))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
