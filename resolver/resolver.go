package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/revelio-tools/revelio/logging"
	"github.com/revelio-tools/revelio/networks"
	"github.com/revelio-tools/revelio/util/explorers"
	"github.com/revelio-tools/revelio/util/reader"
)

// Resolver runs the full pipeline from an address string to the message
// stored in the contract behind it. The reader carries both the RPC nodes
// and the explorer client, owned for the duration of each Resolve call; no
// result state survives between calls, so every resolution is a fresh read
// of the chain.
type Resolver struct {
	reader  *reader.EthReader
	network networks.Network
	logger  *logging.Logger
}

// NewResolver builds a Resolver against the given network, honoring the
// network's node env var so users can point it at their own RPC endpoint.
func NewResolver(network networks.Network) *Resolver {
	nodes := network.GetDefaultNodes()
	if custom := strings.TrimSpace(os.Getenv(network.GetNodeVariableName())); custom != "" {
		nodes = map[string]string{"custom-node": custom}
	}
	return &Resolver{
		reader:  reader.NewEthReaderGeneric(nodes, network),
		network: network,
		logger:  logging.NewSubLogger("module", "resolver"),
	}
}

// NewResolverWithBackends wires an explicit reader, used by tests to inject
// fake nodes and a fake explorer.
func NewResolverWithBackends(r *reader.EthReader, network networks.Network) *Resolver {
	return &Resolver{
		reader:  r,
		network: network,
		logger:  logging.NewSubLogger("module", "resolver"),
	}
}

// Resolve validates address, confirms a contract lives there, fetches its
// verified interface, picks the message function and calls it. The returned
// error is always a *Error; the string result is returned verbatim with no
// trimming or normalization. Steps run strictly in order and the first
// failing step aborts the rest.
func (r *Resolver) Resolve(ctx context.Context, address string) (string, error) {
	log := r.logger.With("request", uuid.NewString())

	log.Debugf("resolving %s on %s", address, r.network.GetName())

	address = NormalizeAddress(address)
	if !IsValidAddress(address) {
		return "", newError(
			InvalidAddress,
			fmt.Sprintf("'%s' is not a valid address", address),
			nil,
		)
	}
	log.Debugf("address %s validated", address)

	code, err := r.reader.GetCode(ctx, address)
	if err != nil {
		return "", newError(
			TransportError,
			fmt.Sprintf("couldn't fetch bytecode of %s", address),
			err,
		)
	}
	if len(code) == 0 {
		return "", newError(
			NotAContract,
			fmt.Sprintf("no contract deployed at %s", address),
			nil,
		)
	}
	log.Debugf("contract exists, %d bytes of code", len(code))

	abiStr, err := r.reader.GetABIString(ctx, address)
	if err != nil {
		if errors.Is(err, explorers.ErrNotVerified) {
			return "", newError(
				UnverifiedContract,
				fmt.Sprintf("contract %s is not verified on the explorer", address),
				err,
			)
		}
		return "", newError(
			TransportError,
			"couldn't reach the explorer service",
			err,
		)
	}
	entries, err := parseInterface(abiStr)
	if err != nil {
		return "", newError(
			UnverifiedContract,
			fmt.Sprintf("explorer returned an unusable interface for %s", address),
			err,
		)
	}
	log.Debugf("verified interface fetched, %d entries", len(entries))

	candidate, found := selectMessageFunction(entries)
	if !found {
		return "", newError(
			NoMessageFunction,
			fmt.Sprintf("contract %s has no readable message function", address),
			nil,
		)
	}
	log.Debugf("selected message function %s()", candidate.Name)

	callABI, err := candidate.callableABI()
	if err != nil {
		return "", newError(
			InvocationFailed,
			fmt.Sprintf("couldn't prepare call to %s()", candidate.Name),
			err,
		)
	}
	var message string
	err = r.reader.ReadContractWithABI(ctx, &message, address, callABI, candidate.Name)
	if err != nil {
		return "", newError(
			InvocationFailed,
			fmt.Sprintf("calling %s() on %s failed", candidate.Name, address),
			err,
		)
	}
	log.Debugf("resolved message of %d bytes", len(message))

	return message, nil
}
