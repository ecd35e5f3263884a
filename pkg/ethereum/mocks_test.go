package ethereum

import (
	"context"
	"math/big"
	"sync"

	"github.com/chainsafe/bridge-monitor/pkg/ethereum/contracts"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// MockBackend is a func-field implementation of Backend that counts calls.
type MockBackend struct {
	mu    sync.Mutex
	calls map[string]int

	BlockNumberFunc        func(ctx context.Context) (uint64, error)
	FilterLogsFunc         func(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	TransactionReceiptFunc func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContractFunc       func(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

func (m *MockBackend) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func (m *MockBackend) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockBackend) BlockNumber(ctx context.Context) (uint64, error) {
	m.record("BlockNumber")
	if m.BlockNumberFunc != nil {
		return m.BlockNumberFunc(ctx)
	}
	return 0, nil
}

func (m *MockBackend) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	m.record("FilterLogs")
	if m.FilterLogsFunc != nil {
		return m.FilterLogsFunc(ctx, q)
	}
	return nil, nil
}

func (m *MockBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	m.record("TransactionReceipt")
	if m.TransactionReceiptFunc != nil {
		return m.TransactionReceiptFunc(ctx, txHash)
	}
	return nil, ethereum.NotFound
}

func (m *MockBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	m.record("CallContract")
	if m.CallContractFunc != nil {
		return m.CallContractFunc(ctx, call, blockNumber)
	}
	return nil, nil
}

func (m *MockBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	m.record("CodeAt")
	return []byte{0x60, 0x80}, nil
}

func mustABI(meta *bind.MetaData) *abi.ABI {
	parsed, err := meta.GetAbi()
	if err != nil {
		panic(err)
	}
	return parsed
}

func packNonIndexed(meta *bind.MetaData, event string, args ...any) []byte {
	var nonIndexed abi.Arguments
	for _, arg := range mustABI(meta).Events[event].Inputs {
		if !arg.Indexed {
			nonIndexed = append(nonIndexed, arg)
		}
	}
	data, err := nonIndexed.Pack(args...)
	if err != nil {
		panic(err)
	}
	return data
}

type crossLog struct {
	bridge      common.Address
	token       common.Address
	receiver    common.Address
	amount      *big.Int
	symbol      string
	userData    []byte
	decimals    uint8
	granularity *big.Int
	block       uint64
	txHash      common.Hash
	index       uint
}

func (c crossLog) log() types.Log {
	return types.Log{
		Address: c.bridge,
		Topics: []common.Hash{
			CrossTopic,
			common.BytesToHash(c.token.Bytes()),
			common.BytesToHash(c.receiver.Bytes()),
		},
		Data:        packNonIndexed(contracts.BridgeMetaData, "Cross", c.amount, c.symbol, c.userData, c.decimals, c.granularity),
		BlockNumber: c.block,
		BlockHash:   common.BigToHash(new(big.Int).SetUint64(c.block)),
		TxHash:      c.txHash,
		Index:       c.index,
	}
}

func executedLog(federation common.Address, id [32]byte, block uint64, txHash common.Hash, index uint) types.Log {
	return types.Log{
		Address:     federation,
		Topics:      []common.Hash{ExecutedTopic, common.Hash(id)},
		BlockNumber: block,
		BlockHash:   common.BigToHash(new(big.Int).SetUint64(block)),
		TxHash:      txHash,
		Index:       index,
	}
}

func errorLog(bridge common.Address, payload []byte, txHash common.Hash, index uint) *types.Log {
	return &types.Log{
		Address: bridge,
		Topics:  []common.Hash{ErrorTokenReceiverTopic},
		Data:    packNonIndexed(contracts.BridgeMetaData, "ErrorTokenReceiver", payload),
		TxHash:  txHash,
		Index:   index,
	}
}
