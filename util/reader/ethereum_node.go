package reader

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// EthereumNode is the read-only surface of a single RPC node. Keeping it an
// interface lets tests drop in an in-memory node with scripted responses.
type EthereumNode interface {
	NodeName() string
	NodeURL() string
	GetCode(ctx context.Context, address string) (code []byte, err error)
	GetBalance(ctx context.Context, address string) (balance *big.Int, err error)
	ReadContractToBytes(
		ctx context.Context,
		atBlock int64,
		from string,
		caddr string,
		abi *abi.ABI,
		method string,
		args ...interface{},
	) ([]byte, error)
	CurrentBlock(ctx context.Context) (uint64, error)
}
