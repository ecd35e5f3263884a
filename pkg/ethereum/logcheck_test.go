package ethereum

import (
	"context"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogChecker_ReportsInconsistencies(t *testing.T) {
	txA := common.HexToHash("0xa1")
	txB := common.HexToHash("0xb2")
	topic := common.HexToHash("0x01")

	getLogs := []types.Log{
		{Address: testBridge, Topics: []common.Hash{topic}, Data: []byte{1}, BlockNumber: 5, TxHash: txA, Index: 0},
		{Address: testBridge, Topics: []common.Hash{topic}, Data: []byte{2}, BlockNumber: 5, TxHash: txA, Index: 1},
		{Address: testBridge, Topics: []common.Hash{topic}, Data: []byte{3}, BlockNumber: 6, TxHash: txB, Index: 0},
		{Address: testBridge, Topics: []common.Hash{topic}, Data: []byte{4}, BlockNumber: 6, TxHash: txB, Index: 7},
	}
	receipts := map[common.Hash]*types.Receipt{
		txA: {Logs: []*types.Log{
			{Address: testBridge, Topics: []common.Hash{topic}, Data: []byte{1}, BlockNumber: 5, TxHash: txA, Index: 0},
			{Address: testBridge, Topics: []common.Hash{topic}, Data: []byte{9}, BlockNumber: 5, TxHash: txA, Index: 1},
			{Address: testBridge, Topics: []common.Hash{topic}, Data: []byte{5}, BlockNumber: 5, TxHash: txA, Index: 2},
		}},
		txB: {Logs: []*types.Log{
			{Address: testBridge, Topics: []common.Hash{topic}, Data: []byte{3}, BlockNumber: 6, TxHash: txB, Index: 0},
		}},
	}

	backend := &MockBackend{
		FilterLogsFunc: func(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
			assert.Empty(t, q.Addresses)
			return getLogs, nil
		},
		TransactionReceiptFunc: func(_ context.Context, h common.Hash) (*types.Receipt, error) {
			return receipts[h], nil
		},
	}
	fetcher, err := NewLogFetcher("rsk", backend, 100, zap.NewNop())
	require.NoError(t, err)

	result, err := NewLogChecker(fetcher, backend, zap.NewNop()).Check(context.Background(), 5, 6)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Logs)
	assert.Equal(t, 2, result.Transactions)
	require.Len(t, result.Inconsistencies, 3)

	assert.Equal(t, ContentMismatch, result.Inconsistencies[0].Kind)
	assert.Equal(t, uint(1), result.Inconsistencies[0].LogIndex)
	assert.Equal(t, []byte{2}, result.Inconsistencies[0].LogsData)
	assert.Equal(t, []byte{9}, result.Inconsistencies[0].ReceiptData)

	assert.Equal(t, MissingFromLogs, result.Inconsistencies[1].Kind)
	assert.Equal(t, uint(2), result.Inconsistencies[1].LogIndex)

	assert.Equal(t, MissingFromReceipt, result.Inconsistencies[2].Kind)
	assert.Equal(t, txB, result.Inconsistencies[2].TxHash)
	assert.Equal(t, uint(7), result.Inconsistencies[2].LogIndex)
}

func TestLogChecker_ConsistentRange(t *testing.T) {
	tx := common.HexToHash("0xc3")
	log := types.Log{Address: testBridge, Data: []byte{1}, TxHash: tx}
	backend := &MockBackend{
		FilterLogsFunc: func(context.Context, ethereum.FilterQuery) ([]types.Log, error) {
			return []types.Log{log}, nil
		},
		TransactionReceiptFunc: func(context.Context, common.Hash) (*types.Receipt, error) {
			copied := log
			return &types.Receipt{Logs: []*types.Log{&copied}}, nil
		},
	}
	fetcher, err := NewLogFetcher("rsk", backend, 100, zap.NewNop())
	require.NoError(t, err)

	result, err := NewLogChecker(fetcher, backend, zap.NewNop()).Check(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, result.Inconsistencies)
}

func TestLogChecker_MissingFromReceiptStaysWithItsTransaction(t *testing.T) {
	txA := common.HexToHash("0xa1")
	txB := common.HexToHash("0xb2")
	getLogs := []types.Log{
		{Address: testBridge, Data: []byte{1}, BlockNumber: 5, TxHash: txA, Index: 0},
		{Address: testBridge, Data: []byte{2}, BlockNumber: 5, TxHash: txB, Index: 1},
		{Address: testBridge, Data: []byte{3}, BlockNumber: 5, TxHash: txA, Index: 2},
	}
	receipts := map[common.Hash]*types.Receipt{
		txA: {},
		txB: {Logs: []*types.Log{
			{Address: testBridge, Data: []byte{2}, BlockNumber: 5, TxHash: txB, Index: 1},
		}},
	}
	backend := &MockBackend{
		FilterLogsFunc: func(context.Context, ethereum.FilterQuery) ([]types.Log, error) {
			return getLogs, nil
		},
		TransactionReceiptFunc: func(_ context.Context, h common.Hash) (*types.Receipt, error) {
			return receipts[h], nil
		},
	}
	fetcher, err := NewLogFetcher("rsk", backend, 100, zap.NewNop())
	require.NoError(t, err)

	result, err := NewLogChecker(fetcher, backend, zap.NewNop()).Check(context.Background(), 5, 5)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Transactions)
	assert.Equal(t, 2, backend.Calls("TransactionReceipt"))
	require.Len(t, result.Inconsistencies, 2)
	for i, wantIndex := range []uint{0, 2} {
		inc := result.Inconsistencies[i]
		assert.Equal(t, MissingFromReceipt, inc.Kind)
		assert.Equal(t, txA, inc.TxHash)
		assert.Equal(t, wantIndex, inc.LogIndex)
	}
}
