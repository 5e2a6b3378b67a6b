package resolver

import (
	"context"
	"fmt"
	"math/big"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelio-tools/revelio/networks"
	"github.com/revelio-tools/revelio/util/explorers"
	"github.com/revelio-tools/revelio/util/reader"
)

const getMessageABI = `[
	{"type":"function","name":"getMessage","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"string"}]}
]`

// fakeNode scripts GetCode and call responses and counts how often each was
// hit, so tests can assert that early failures never touch the network.
type fakeNode struct {
	code       []byte
	codeErr    error
	callResult string
	callErr    error

	codeCalls int32
	readCalls int32
}

func (f *fakeNode) NodeName() string { return "fake" }
func (f *fakeNode) NodeURL() string  { return "fake://node" }

func (f *fakeNode) GetCode(ctx context.Context, address string) ([]byte, error) {
	atomic.AddInt32(&f.codeCalls, 1)
	return f.code, f.codeErr
}

func (f *fakeNode) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (f *fakeNode) ReadContractToBytes(
	ctx context.Context,
	atBlock int64,
	from, caddr string,
	contractABI *abi.ABI,
	method string,
	args ...interface{},
) ([]byte, error) {
	atomic.AddInt32(&f.readCalls, 1)
	if f.callErr != nil {
		return nil, f.callErr
	}
	stringTy, err := abi.NewType("string", "", nil)
	if err != nil {
		return nil, err
	}
	return abi.Arguments{{Type: stringTy}}.Pack(f.callResult)
}

func (f *fakeNode) CurrentBlock(ctx context.Context) (uint64, error) {
	return 1, nil
}

// fakeExplorer serves a scripted ABI payload and counts lookups.
type fakeExplorer struct {
	abiString string
	err       error
	calls     int32
}

func (f *fakeExplorer) GetABIString(ctx context.Context, address string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.abiString, f.err
}

func newTestResolver(node *fakeNode, be *fakeExplorer) *Resolver {
	r := reader.NewEthReaderWithNodes(map[string]reader.EthereumNode{"fake": node}, be)
	return NewResolverWithBackends(r, networks.EthereumMainnet)
}

func TestResolveInvalidAddressMakesNoNetworkCall(t *testing.T) {
	node := &fakeNode{}
	be := &fakeExplorer{}
	r := newTestResolver(node, be)

	for _, input := range []string{
		"",
		"   ",
		"0x123",
		"not an address",
		"0xZZZZd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045FF", // 42 hex chars
	} {
		_, err := r.Resolve(context.Background(), input)
		require.Error(t, err, "input %q", input)
		assert.Equal(t, InvalidAddress, KindOf(err), "input %q", input)
	}

	assert.Zero(t, atomic.LoadInt32(&node.codeCalls))
	assert.Zero(t, atomic.LoadInt32(&node.readCalls))
	assert.Zero(t, atomic.LoadInt32(&be.calls))
}

func TestResolveNotAContract(t *testing.T) {
	// empty bytecode is the sentinel for a plain account
	node := &fakeNode{code: []byte{}}
	be := &fakeExplorer{}
	r := newTestResolver(node, be)

	_, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.Equal(t, NotAContract, KindOf(err))
	assert.Zero(t, atomic.LoadInt32(&be.calls), "explorer must not be queried")
}

func TestResolveCodeFetchFailure(t *testing.T) {
	node := &fakeNode{codeErr: fmt.Errorf("connection refused")}
	be := &fakeExplorer{}
	r := newTestResolver(node, be)

	_, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.Equal(t, TransportError, KindOf(err))
}

func TestResolveUnverifiedContract(t *testing.T) {
	node := &fakeNode{code: []byte{0x60, 0x80}}
	be := &fakeExplorer{err: fmt.Errorf(
		"error from explorer: NOTOK: Contract source code not verified: %w",
		explorers.ErrNotVerified,
	)}
	r := newTestResolver(node, be)

	_, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.Equal(t, UnverifiedContract, KindOf(err))
}

func TestResolveExplorerTransportFailure(t *testing.T) {
	node := &fakeNode{code: []byte{0x60, 0x80}}
	be := &fakeExplorer{err: fmt.Errorf("dial tcp: i/o timeout")}
	r := newTestResolver(node, be)

	_, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.Equal(t, TransportError, KindOf(err))
}

func TestResolveGarbageInterface(t *testing.T) {
	node := &fakeNode{code: []byte{0x60, 0x80}}
	be := &fakeExplorer{abiString: "this is not json"}
	r := newTestResolver(node, be)

	_, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.Equal(t, UnverifiedContract, KindOf(err))
}

func TestResolveNoMessageFunction(t *testing.T) {
	node := &fakeNode{code: []byte{0x60, 0x80}}
	be := &fakeExplorer{abiString: `[
		{"type":"function","name":"setMessage","stateMutability":"nonpayable",
		 "inputs":[{"name":"m","type":"string"}],"outputs":[]},
		{"type":"function","name":"totalSupply","stateMutability":"view",
		 "inputs":[],"outputs":[{"name":"","type":"uint256"}]},
		{"type":"event","name":"MessageChanged","inputs":[]}
	]`}
	r := newTestResolver(node, be)

	_, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.Equal(t, NoMessageFunction, KindOf(err))
	assert.Zero(t, atomic.LoadInt32(&node.readCalls), "no call without a candidate")
}

func TestResolveHappyPath(t *testing.T) {
	node := &fakeNode{code: []byte{0x60, 0x80}, callResult: "hello 👋"}
	be := &fakeExplorer{abiString: getMessageABI}
	r := newTestResolver(node, be)

	message, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.NoError(t, err)
	assert.Equal(t, "hello 👋", message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&node.readCalls))
}

func TestResolveSameAddressTwiceIsStable(t *testing.T) {
	node := &fakeNode{code: []byte{0x60, 0x80}, callResult: "steady"}
	be := &fakeExplorer{abiString: getMessageABI}
	r := newTestResolver(node, be)

	first, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// no caching: both resolutions hit the chain and the explorer again
	assert.Equal(t, int32(2), atomic.LoadInt32(&node.readCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&be.calls))
}

func TestResolveInvocationFailure(t *testing.T) {
	node := &fakeNode{code: []byte{0x60, 0x80}, callErr: fmt.Errorf("execution reverted")}
	be := &fakeExplorer{abiString: getMessageABI}
	r := newTestResolver(node, be)

	_, err := r.Resolve(context.Background(), "0x000000000000000000000000000000000000dead")
	require.Error(t, err)
	assert.Equal(t, InvocationFailed, KindOf(err))
	assert.ErrorContains(t, err, "execution reverted")
}

func TestResolveChecksummedAddress(t *testing.T) {
	node := &fakeNode{code: []byte{0x60, 0x80}, callResult: "gm"}
	be := &fakeExplorer{abiString: getMessageABI}
	r := newTestResolver(node, be)

	// vitalik.eth, correctly checksummed
	message, err := r.Resolve(context.Background(), "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	require.NoError(t, err)
	assert.Equal(t, "gm", message)
}

func TestResolveTrimsWhitespace(t *testing.T) {
	node := &fakeNode{code: []byte{0x60, 0x80}, callResult: "gm"}
	be := &fakeExplorer{abiString: getMessageABI}
	r := newTestResolver(node, be)

	message, err := r.Resolve(context.Background(), "  0x000000000000000000000000000000000000dead\n")
	require.NoError(t, err)
	assert.Equal(t, "gm", message)
}
