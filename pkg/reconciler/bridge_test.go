package reconciler

import (
	"context"
	"errors"
	"testing"

	"github.com/chainsafe/bridge-monitor/pkg/ethereum"
	"github.com/chainsafe/bridge-monitor/pkg/reconciler/mocks"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testSide struct {
	side       *Side
	head       *mocks.BlockNumberReader
	events     *mocks.EventSource
	federation *mocks.Federation
}

func block(n uint64) *uint64 { return &n }

func newTestSide(t *testing.T, chain string, start uint64, addr byte) *testSide {
	ts := &testSide{
		head:       mocks.NewBlockNumberReader(t),
		events:     mocks.NewEventSource(t),
		federation: mocks.NewFederation(t),
	}
	ts.side = &Side{
		Chain:             chain,
		Bridge:            common.BytesToAddress([]byte{addr, 0x01}),
		FederationAddress: common.BytesToAddress([]byte{addr, 0x02}),
		StartBlock:        start,
		Head:              ts.head,
		Events:            ts.events,
		Federation:        ts.federation,
	}
	return ts
}

func TestBridge_RunBothDirections(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		rsk := newTestSide(t, "rsk", 100, 0xaa)
		eth := newTestSide(t, "eth", 50, 0xbb)

		rsk.head.EXPECT().BlockNumber(mock.Anything).Return(uint64(1000), nil)
		eth.head.EXPECT().BlockNumber(mock.Anything).Return(uint64(500), nil)

		d := deposit(0)
		// rsk -> eth: one deposit completed on eth.
		rsk.events.EXPECT().Deposits(mock.Anything, rsk.side.Bridge, uint64(100), uint64(990)).
			Return([]transfer.DepositEvent{d}, nil)
		eth.events.EXPECT().Completions(mock.Anything, eth.side.FederationAddress, uint64(50), uint64(490)).
			Return([]transfer.CompletionEvent{completion(id("A"), "0xe1", 0)}, nil)
		eth.federation.EXPECT().CanonicalID(mock.Anything, transfer.VariantCurrent, transfer.Tuple(d, transfer.VariantCurrent)).
			Return(id("A"), nil)
		eth.federation.EXPECT().Votes(mock.Anything, id("A")).Return(uint64(2), nil)
		eth.federation.EXPECT().WasProcessed(mock.Anything, id("A")).Return(true, nil)
		eth.events.EXPECT().ErrorsInTx(mock.Anything, eth.side.Bridge, common.HexToHash("0xe1")).Return(nil, nil)

		// eth -> rsk: nothing deposited.
		eth.events.EXPECT().Deposits(mock.Anything, eth.side.Bridge, uint64(50), uint64(490)).Return(nil, nil)
		rsk.events.EXPECT().Completions(mock.Anything, rsk.side.FederationAddress, uint64(100), uint64(990)).Return(nil, nil)

		opts := DefaultOptions()
		opts.LegacyIDs = false
		bridge := NewBridge("rsk_eth_testnet", rsk.side, eth.side, opts, zap.NewNop(),
			WithConfirmations(10), WithParallelDirections(parallel))

		result, err := bridge.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "rsk_eth_testnet", result.Bridge)
		require.Len(t, result.Directions, 2)
		assert.Equal(t, "rsk", result.Directions[0].FromChain)
		assert.Equal(t, "eth", result.Directions[0].ToChain)
		assert.Equal(t, ethereum.BlockRange{From: 100, To: 990}, result.Directions[0].DepositRange)
		assert.Equal(t, ethereum.BlockRange{From: 50, To: 490}, result.Directions[0].CompletionRange)
		assert.Equal(t, "eth", result.Directions[1].FromChain)
		assert.Empty(t, result.Directions[1].Records)

		records := result.Records()
		require.Len(t, records, 1)
		assert.Equal(t, transfer.StatusExecuted, records[0].Status)
		assert.False(t, result.FinishedAt.Before(result.StartedAt))
	}
}

func TestBridge_EndBlockOverrideSkipsHead(t *testing.T) {
	rsk := newTestSide(t, "rsk", 100, 0xaa)
	eth := newTestSide(t, "eth", 50, 0xbb)
	rsk.side.EndBlock = block(150)
	eth.side.EndBlock = block(60)

	rsk.events.EXPECT().Deposits(mock.Anything, rsk.side.Bridge, uint64(100), uint64(150)).Return(nil, nil)
	eth.events.EXPECT().Completions(mock.Anything, eth.side.FederationAddress, uint64(50), uint64(60)).Return(nil, nil)
	eth.events.EXPECT().Deposits(mock.Anything, eth.side.Bridge, uint64(50), uint64(60)).Return(nil, nil)
	rsk.events.EXPECT().Completions(mock.Anything, rsk.side.FederationAddress, uint64(100), uint64(150)).Return(nil, nil)

	_, err := NewBridge("b", rsk.side, eth.side, DefaultOptions(), zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	rsk.head.AssertNotCalled(t, "BlockNumber", mock.Anything)
}

func TestBridge_ExplicitZeroEndBlock(t *testing.T) {
	rsk := newTestSide(t, "rsk", 0, 0xaa)
	eth := newTestSide(t, "eth", 0, 0xbb)
	rsk.side.EndBlock = block(0)
	eth.side.EndBlock = block(0)

	rsk.events.EXPECT().Deposits(mock.Anything, rsk.side.Bridge, uint64(0), uint64(0)).Return(nil, nil)
	eth.events.EXPECT().Completions(mock.Anything, eth.side.FederationAddress, uint64(0), uint64(0)).Return(nil, nil)
	eth.events.EXPECT().Deposits(mock.Anything, eth.side.Bridge, uint64(0), uint64(0)).Return(nil, nil)
	rsk.events.EXPECT().Completions(mock.Anything, rsk.side.FederationAddress, uint64(0), uint64(0)).Return(nil, nil)

	result, err := NewBridge("b", rsk.side, eth.side, DefaultOptions(), zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ethereum.BlockRange{From: 0, To: 0}, result.Directions[0].DepositRange)
	rsk.head.AssertNotCalled(t, "BlockNumber", mock.Anything)
	eth.head.AssertNotCalled(t, "BlockNumber", mock.Anything)
}

func TestBridge_InvalidWindow(t *testing.T) {
	rsk := newTestSide(t, "rsk", 100, 0xaa)
	eth := newTestSide(t, "eth", 50, 0xbb)
	rsk.side.EndBlock = block(99)

	_, err := NewBridge("b", rsk.side, eth.side, DefaultOptions(), zap.NewNop()).Run(context.Background())
	var rangeErr *ethereum.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, uint64(100), rangeErr.From)
	assert.Equal(t, uint64(99), rangeErr.To)
}

func TestBridge_FetchFailureAbortsRun(t *testing.T) {
	errRPC := errors.New("getLogs timeout")
	rsk := newTestSide(t, "rsk", 0, 0xaa)
	eth := newTestSide(t, "eth", 0, 0xbb)
	rsk.side.EndBlock = block(10)
	eth.side.EndBlock = block(10)

	rsk.events.EXPECT().Deposits(mock.Anything, rsk.side.Bridge, uint64(0), uint64(10)).Return(nil, errRPC)

	result, err := NewBridge("b", rsk.side, eth.side, DefaultOptions(), zap.NewNop()).Run(context.Background())
	require.ErrorIs(t, err, errRPC)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to fetch deposits on rsk")
}

func TestBridge_InspectTx(t *testing.T) {
	rsk := newTestSide(t, "rsk", 0, 0xaa)
	eth := newTestSide(t, "eth", 0, 0xbb)
	txHash := common.HexToHash("0x1234")
	d := deposit(3)

	eth.events.EXPECT().DepositsInTx(mock.Anything, eth.side.Bridge, txHash).Return([]transfer.DepositEvent{d}, nil)
	rsk.federation.EXPECT().CanonicalID(mock.Anything, transfer.VariantCurrent, mock.Anything).Return(id("cur"), nil)
	rsk.federation.EXPECT().CanonicalID(mock.Anything, transfer.VariantLegacy, mock.Anything).Return(id("leg"), nil)
	rsk.federation.EXPECT().Votes(mock.Anything, id("cur")).Return(uint64(1), nil)
	rsk.federation.EXPECT().WasProcessed(mock.Anything, id("cur")).Return(false, nil)
	rsk.federation.EXPECT().Votes(mock.Anything, id("leg")).Return(uint64(4), nil)
	rsk.federation.EXPECT().WasProcessed(mock.Anything, id("leg")).Return(true, nil)

	statuses, err := NewBridge("b", rsk.side, eth.side, DefaultOptions(), zap.NewNop()).
		InspectTx(context.Background(), "other", txHash)
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	s := statuses[0]
	assert.Equal(t, "eth", s.FromChain)
	assert.Equal(t, "rsk", s.ToChain)
	assert.Equal(t, IDStatus{Variant: transfer.VariantCurrent, ID: id("cur"), Votes: 1}, s.Current)
	assert.Equal(t, IDStatus{Variant: transfer.VariantLegacy, ID: id("leg"), Votes: 4, Processed: true}, s.Legacy)
}

func TestBridge_InspectTxUnknownSide(t *testing.T) {
	rsk := newTestSide(t, "rsk", 0, 0xaa)
	eth := newTestSide(t, "eth", 0, 0xbb)

	_, err := NewBridge("b", rsk.side, eth.side, DefaultOptions(), zap.NewNop()).
		InspectTx(context.Background(), "bsc", common.Hash{})
	assert.Error(t, err)
}
