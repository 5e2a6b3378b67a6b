package networks

import (
	"context"
	"time"
)

type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetBlockTime() time.Duration

	// GetNodeVariableName returns the env var users can set to point the
	// reader to their own RPC node instead of the default public ones.
	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	GetBlockExplorerAPIKeyVariableName() string
	// GetBlockExplorerViewerURL returns the human-facing explorer domain,
	// used only for building deep links in the presentation layer.
	GetBlockExplorerViewerURL() string
	GetABIString(ctx context.Context, address string) (string, error)
}
