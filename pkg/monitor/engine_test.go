package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chainsafe/bridge-monitor/pkg/reconciler"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEngine_RunOnceBecomesReady(t *testing.T) {
	a := &fakeBridge{name: "rsk_eth_mainnet"}
	b := &fakeBridge{name: "rsk_bsc_mainnet"}
	e := NewEngine([]Bridge{a, b}, time.Minute, zap.NewNop())

	assert.False(t, e.IsReady())
	assert.Equal(t, []string{"rsk_bsc_mainnet", "rsk_eth_mainnet"}, e.Bridges())

	require.NoError(t, e.RunOnce(context.Background()))
	assert.True(t, e.IsReady())

	s, ok := e.Snapshot("rsk_eth_mainnet")
	require.True(t, ok)
	assert.Len(t, s.Result.Records(), 2)

	statuses := e.Status()
	require.Len(t, statuses, 2)
	assert.Equal(t, "rsk_bsc_mainnet", statuses[0].Bridge)
	assert.Equal(t, 2, statuses[0].Transfers)
	assert.Empty(t, statuses[0].LastError)
}

func TestEngine_FailingBridgeKeepsPreviousSnapshot(t *testing.T) {
	fail := false
	flaky := &fakeBridge{name: "flaky"}
	flaky.RunFunc = func(context.Context) (*reconciler.Result, error) {
		if fail {
			return nil, errors.New("rpc down")
		}
		return resultOf("flaky", 1), nil
	}
	healthy := &fakeBridge{name: "healthy"}
	e := NewEngine([]Bridge{flaky, healthy}, time.Minute, zap.NewNop())

	require.NoError(t, e.RunOnce(context.Background()))
	first, _ := e.Snapshot("flaky")

	fail = true
	err := e.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reconcile flaky")
	assert.Equal(t, int32(2), healthy.calls.Load())

	kept, ok := e.Snapshot("flaky")
	require.True(t, ok)
	assert.Equal(t, first.ID, kept.ID)
	assert.True(t, e.IsReady())

	statuses := e.Status()
	assert.Equal(t, "rpc down", statuses[0].LastError)
	assert.False(t, statuses[0].LastFailed.IsZero())
}

func TestEngine_NotReadyUntilEveryBridgeSucceeds(t *testing.T) {
	broken := &fakeBridge{name: "broken", RunFunc: func(context.Context) (*reconciler.Result, error) {
		return nil, errors.New("boom")
	}}
	e := NewEngine([]Bridge{broken, &fakeBridge{name: "ok"}}, time.Minute, zap.NewNop())

	assert.Error(t, e.RunOnce(context.Background()))
	assert.False(t, e.IsReady())
	_, ok := e.Snapshot("ok")
	assert.True(t, ok)
}

func TestEngine_PersistsSnapshots(t *testing.T) {
	store := &fakeStore{}
	e := NewEngine([]Bridge{&fakeBridge{name: "rsk_eth_mainnet"}}, time.Minute, zap.NewNop(), WithStore(store))

	require.NoError(t, e.RunOnce(context.Background()))

	runs := store.saved()
	require.Len(t, runs, 1)
	s, _ := e.Snapshot("rsk_eth_mainnet")
	assert.Equal(t, s.ID, runs[0].ID)
	assert.Equal(t, "rsk_eth_mainnet", runs[0].Bridge)
	assert.Len(t, runs[0].Records, 2)
}

func TestEngine_PersistFailureIsNotFatal(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := &fakeStore{err: errors.New("db unavailable")}
	e := NewEngine([]Bridge{&fakeBridge{name: "rsk_eth_mainnet"}}, time.Minute, zap.New(core), WithStore(store))

	require.NoError(t, e.RunOnce(context.Background()))
	assert.True(t, e.IsReady())
	assert.Equal(t, 1, logs.FilterMessage("Failed to persist snapshot").Len())
}

func TestEngine_PassTimeout(t *testing.T) {
	slow := &fakeBridge{name: "slow", RunFunc: func(ctx context.Context) (*reconciler.Result, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	e := NewEngine([]Bridge{slow}, time.Minute, zap.NewNop(), WithPassTimeout(10*time.Millisecond))

	err := e.RunOnce(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEngine_InspectTx(t *testing.T) {
	want := []reconciler.TxStatus{{FromChain: "rsk", ToChain: "eth"}}
	b := &fakeBridge{name: "rsk_eth_mainnet", InspectTxFunc: func(_ context.Context, side string, _ common.Hash) ([]reconciler.TxStatus, error) {
		assert.Equal(t, "rsk", side)
		return want, nil
	}}
	e := NewEngine([]Bridge{b}, time.Minute, zap.NewNop())

	got, err := e.InspectTx(context.Background(), "rsk_eth_mainnet", "rsk", common.HexToHash("0x01"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = e.InspectTx(context.Background(), "missing", "rsk", common.Hash{})
	assert.ErrorIs(t, err, ErrUnknownBridge)
}

func TestEngine_StartAndStop(t *testing.T) {
	b := &fakeBridge{name: "rsk_eth_mainnet"}
	e := NewEngine([]Bridge{b}, 5*time.Millisecond, zap.NewNop())

	e.Start(context.Background())
	require.Eventually(t, func() bool { return b.calls.Load() >= 2 }, time.Second, time.Millisecond)
	e.Stop()

	calls := b.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, b.calls.Load())
	assert.True(t, e.IsReady())
}
