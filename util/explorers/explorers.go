package explorers

import (
	"context"
	"errors"
)

// ErrNotVerified marks explorer responses that came back over the wire fine
// but carry no usable ABI, so callers can tell verification failures apart
// from transport failures.
var ErrNotVerified = errors.New("no verified abi on the explorer")

// BlockExplorer is the part of an explorer service the resolver relies on:
// looking up the verified ABI of a contract. Implementations must return an
// error when the contract is not verified on the explorer.
type BlockExplorer interface {
	GetABIString(ctx context.Context, address string) (string, error)
}

// DefaultEtherscanAPIKey is a shared key used when the user doesn't provide
// their own via env var. It is rate limited but fine for occasional lookups.
const DefaultEtherscanAPIKey = "UBB257TI824FC7HUSPT66KZUMGBPRN3IWV"

// NewEtherscanV2 returns an explorer client against the unified etherscan v2
// API, which serves every supported chain from one domain, selected by the
// chainid query param.
func NewEtherscanV2(chainID uint64) *EtherscanLikeExplorer {
	return NewEtherscanLikeExplorer(chainID, "https://api.etherscan.io/v2", DefaultEtherscanAPIKey)
}
