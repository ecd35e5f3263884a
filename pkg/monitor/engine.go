// Package monitor runs bridge reconciliations periodically and keeps the
// latest snapshot of every bridge in memory.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chainsafe/bridge-monitor/internal/metrics"
	"github.com/chainsafe/bridge-monitor/pkg/reconciler"
	"github.com/chainsafe/bridge-monitor/pkg/reportdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownBridge is returned for a bridge the engine does not monitor.
var ErrUnknownBridge = errors.New("bridge is not monitored")

// Bridge is a reconcilable bridge.
type Bridge interface {
	Name() string
	Run(ctx context.Context) (*reconciler.Result, error)
	InspectTx(ctx context.Context, sideName string, txHash common.Hash) ([]reconciler.TxStatus, error)
}

// RunStore persists snapshots.
type RunStore interface {
	SaveRun(ctx context.Context, run *reportdb.Run) error
}

// Snapshot is the outcome of the latest pass over one bridge.
type Snapshot struct {
	ID     uuid.UUID
	Result *reconciler.Result
}

// BridgeStatus summarizes the latest pass over one bridge.
type BridgeStatus struct {
	Bridge     string    `json:"bridge"`
	SnapshotID string    `json:"snapshot_id,omitempty"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
	Transfers  int       `json:"transfers"`
	LastError  string    `json:"last_error,omitempty"`
	LastFailed time.Time `json:"last_failed_at,omitempty"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore persists every snapshot to store.
func WithStore(store RunStore) Option {
	return func(e *Engine) { e.store = store }
}

// WithPassTimeout bounds a single reconciliation of one bridge. Zero means no bound.
func WithPassTimeout(d time.Duration) Option {
	return func(e *Engine) { e.passTimeout = d }
}

// Engine reconciles a fixed set of bridges on an interval.
type Engine struct {
	bridges     map[string]Bridge
	order       []string
	interval    time.Duration
	passTimeout time.Duration
	store       RunStore
	logger      *zap.Logger

	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	failures  map[string]failure

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type failure struct {
	err error
	at  time.Time
}

// NewEngine creates an engine over bridges.
func NewEngine(bridges []Bridge, interval time.Duration, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		bridges:   make(map[string]Bridge, len(bridges)),
		interval:  interval,
		logger:    logger,
		snapshots: make(map[string]*Snapshot),
		failures:  make(map[string]failure),
		cancel:    func() {},
	}
	for _, b := range bridges {
		e.bridges[b.Name()] = b
		e.order = append(e.order, b.Name())
	}
	sort.Strings(e.order)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Bridges returns the monitored bridge names in lexical order.
func (e *Engine) Bridges() []string {
	return append([]string(nil), e.order...)
}

// IsReady reports whether every bridge has completed at least one pass.
func (e *Engine) IsReady() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.order) > 0 && len(e.snapshots) == len(e.order)
}

// Snapshot returns the latest snapshot of bridge.
func (e *Engine) Snapshot(bridge string) (*Snapshot, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.snapshots[bridge]
	return s, ok
}

// Status summarizes every bridge in lexical order.
func (e *Engine) Status() []BridgeStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()

	statuses := make([]BridgeStatus, 0, len(e.order))
	for _, name := range e.order {
		st := BridgeStatus{Bridge: name}
		if s, ok := e.snapshots[name]; ok {
			st.SnapshotID = s.ID.String()
			st.FinishedAt = s.Result.FinishedAt
			st.Transfers = len(s.Result.Records())
		}
		if f, ok := e.failures[name]; ok {
			st.LastError = f.err.Error()
			st.LastFailed = f.at
		}
		statuses = append(statuses, st)
	}
	return statuses
}

// InspectTx forwards to the named bridge.
func (e *Engine) InspectTx(ctx context.Context, bridge, sideName string, txHash common.Hash) ([]reconciler.TxStatus, error) {
	b, ok := e.bridges[bridge]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBridge, bridge)
	}
	return b.InspectTx(ctx, sideName, txHash)
}

// RunOnce reconciles every bridge in turn. A failing bridge keeps its
// previous snapshot and does not stop the others.
func (e *Engine) RunOnce(ctx context.Context) error {
	var errs []error
	for _, name := range e.order {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.runBridge(ctx, e.bridges[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) runBridge(ctx context.Context, b Bridge) error {
	if e.passTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.passTimeout)
		defer cancel()
	}

	logger := e.logger.With(zap.String("bridge", b.Name()))
	result, err := b.Run(ctx)
	if err != nil {
		metrics.MonitorPassesTotal.WithLabelValues("failure").Inc()
		metrics.ErrorsTotal.WithLabelValues("monitor", "reconcile").Inc()
		logger.Error("Bridge reconciliation failed", zap.Error(err))
		e.mu.Lock()
		e.failures[b.Name()] = failure{err: err, at: time.Now()}
		e.mu.Unlock()
		return fmt.Errorf("failed to reconcile %s: %w", b.Name(), err)
	}

	snapshot := &Snapshot{ID: uuid.New(), Result: result}
	if e.store != nil {
		run := &reportdb.Run{
			ID:         snapshot.ID,
			Bridge:     result.Bridge,
			StartedAt:  result.StartedAt,
			FinishedAt: result.FinishedAt,
			Records:    result.Records(),
		}
		if err := e.store.SaveRun(ctx, run); err != nil {
			// the in-memory snapshot stays authoritative
			metrics.ErrorsTotal.WithLabelValues("monitor", "persist").Inc()
			logger.Warn("Failed to persist snapshot", zap.String("snapshot_id", snapshot.ID.String()), zap.Error(err))
		}
	}

	e.mu.Lock()
	e.snapshots[b.Name()] = snapshot
	delete(e.failures, b.Name())
	e.mu.Unlock()

	metrics.MonitorPassesTotal.WithLabelValues("success").Inc()
	logger.Info("Bridge reconciliation completed",
		zap.String("snapshot_id", snapshot.ID.String()),
		zap.Int("transfers", len(snapshot.Result.Records())),
		zap.Duration("duration", result.FinishedAt.Sub(result.StartedAt)))
	return nil
}

// Start runs a pass immediately and then every interval until ctx is canceled or Stop is called.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		e.logger.Info("Started periodic reconciliation",
			zap.Duration("interval", e.interval),
			zap.Strings("bridges", e.order))

		for {
			if err := e.RunOnce(ctx); err != nil && ctx.Err() == nil {
				e.logger.Error("Periodic reconciliation failed", zap.Error(err))
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				e.logger.Info("Stopping periodic reconciliation")
				return
			}
		}
	}()
}

// Stop cancels the running pass and waits for the loop to exit.
func (e *Engine) Stop() {
	e.cancel()
	e.wg.Wait()
}
