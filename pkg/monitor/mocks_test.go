package monitor

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chainsafe/bridge-monitor/pkg/reconciler"
	"github.com/chainsafe/bridge-monitor/pkg/reportdb"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/common"
)

type fakeBridge struct {
	name  string
	calls atomic.Int32

	RunFunc       func(ctx context.Context) (*reconciler.Result, error)
	InspectTxFunc func(ctx context.Context, sideName string, txHash common.Hash) ([]reconciler.TxStatus, error)
}

func (f *fakeBridge) Name() string { return f.name }

func (f *fakeBridge) Run(ctx context.Context) (*reconciler.Result, error) {
	f.calls.Add(1)
	if f.RunFunc != nil {
		return f.RunFunc(ctx)
	}
	return resultOf(f.name, 2), nil
}

func (f *fakeBridge) InspectTx(ctx context.Context, sideName string, txHash common.Hash) ([]reconciler.TxStatus, error) {
	if f.InspectTxFunc != nil {
		return f.InspectTxFunc(ctx, sideName, txHash)
	}
	return nil, nil
}

type fakeStore struct {
	mu   sync.Mutex
	runs []*reportdb.Run
	err  error
}

func (f *fakeStore) SaveRun(_ context.Context, run *reportdb.Run) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeStore) saved() []*reportdb.Run {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*reportdb.Run(nil), f.runs...)
}

// resultOf builds a result with n pending records on rsk->eth.
func resultOf(bridge string, n int) *reconciler.Result {
	started := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	records := make([]transfer.Record, n)
	for i := range records {
		records[i] = transfer.Record{
			FromChain: "rsk",
			ToChain:   "eth",
			ID:        transfer.ID{byte(i + 1)},
			Status:    transfer.StatusPending,
		}
	}
	return &reconciler.Result{
		Bridge:     bridge,
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
		Directions: []reconciler.DirectionResult{{FromChain: "rsk", ToChain: "eth", Records: records}},
	}
}
