package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/chainsafe/bridge-monitor/internal/metrics"
	"github.com/chainsafe/bridge-monitor/pkg/ethereum"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// EventSource reads bridge and federation events of one chain.
type EventSource interface {
	Deposits(ctx context.Context, bridge common.Address, from, to uint64) ([]transfer.DepositEvent, error)
	Completions(ctx context.Context, federation common.Address, from, to uint64) ([]transfer.CompletionEvent, error)
	ErrorsInTx(ctx context.Context, bridge common.Address, txHash common.Hash) ([]transfer.ErrorEvent, error)
	DepositsInTx(ctx context.Context, bridge common.Address, txHash common.Hash) ([]transfer.DepositEvent, error)
}

// Federation computes ids and reads vote state on the destination chain.
type Federation interface {
	transfer.Canonicalizer
	StatusReader
}

// Side is one bridge side wired to its chain.
type Side struct {
	Chain             string
	Bridge            common.Address
	FederationAddress common.Address
	StartBlock        uint64
	// EndBlock caps the scanned window. Nil scans up to the confirmed head.
	EndBlock *uint64

	Head       geth.BlockNumberReader
	Events     EventSource
	Federation Federation
}

// DirectionResult holds the records of one direction.
type DirectionResult struct {
	FromChain       string
	ToChain         string
	DepositRange    ethereum.BlockRange
	CompletionRange ethereum.BlockRange
	Records         []transfer.Record
	Duration        time.Duration
}

// Result is a reconciliation snapshot of one bridge.
type Result struct {
	Bridge     string
	StartedAt  time.Time
	FinishedAt time.Time
	Directions []DirectionResult
}

// Records returns the records of every direction, rsk->other first.
func (r *Result) Records() []transfer.Record {
	var records []transfer.Record
	for _, d := range r.Directions {
		records = append(records, d.Records...)
	}
	return records
}

// Bridge reconciles both directions of a bridge.
type Bridge struct {
	name          string
	rsk           *Side
	other         *Side
	opts          Options
	confirmations uint64
	parallel      bool
	logger        *zap.Logger
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithConfirmations keeps the scanned window n blocks behind the head.
func WithConfirmations(n uint64) BridgeOption {
	return func(b *Bridge) { b.confirmations = n }
}

// WithParallelDirections runs both directions concurrently.
func WithParallelDirections(parallel bool) BridgeOption {
	return func(b *Bridge) { b.parallel = parallel }
}

// NewBridge creates a Bridge.
func NewBridge(name string, rsk, other *Side, opts Options, logger *zap.Logger, bopts ...BridgeOption) *Bridge {
	b := &Bridge{
		name:   name,
		rsk:    rsk,
		other:  other,
		opts:   opts,
		logger: logger.With(zap.String("bridge", name)),
	}
	for _, opt := range bopts {
		opt(b)
	}
	return b
}

// Name returns the bridge name.
func (b *Bridge) Name() string {
	return b.name
}

// Side returns the side called name ("rsk" or "other") and its counterpart.
func (b *Bridge) Side(name string) (side, counterpart *Side, err error) {
	switch name {
	case "rsk":
		return b.rsk, b.other, nil
	case "other":
		return b.other, b.rsk, nil
	default:
		return nil, nil, fmt.Errorf("unknown bridge side %q", name)
	}
}

// Run reconciles rsk->other and other->rsk.
func (b *Bridge) Run(ctx context.Context) (*Result, error) {
	result := &Result{Bridge: b.name, StartedAt: time.Now()}

	rskRange, err := b.window(ctx, b.rsk)
	if err != nil {
		return nil, err
	}
	otherRange, err := b.window(ctx, b.other)
	if err != nil {
		return nil, err
	}

	type pass struct {
		from, to           *Side
		fromRange, toRange ethereum.BlockRange
	}
	passes := []pass{
		{from: b.rsk, to: b.other, fromRange: rskRange, toRange: otherRange},
		{from: b.other, to: b.rsk, fromRange: otherRange, toRange: rskRange},
	}
	result.Directions = make([]DirectionResult, len(passes))

	g, gctx := errgroup.WithContext(ctx)
	if !b.parallel {
		g.SetLimit(1)
	}
	for i, p := range passes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dr, err := b.pass(gctx, p.from, p.to, p.fromRange, p.toRange)
			if err != nil {
				return err
			}
			result.Directions[i] = *dr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.FinishedAt = time.Now()
	return result, nil
}

func (b *Bridge) window(ctx context.Context, side *Side) (ethereum.BlockRange, error) {
	var end uint64
	if side.EndBlock != nil {
		end = *side.EndBlock
	} else {
		head, err := ethereum.Head(ctx, side.Head, b.confirmations)
		if err != nil {
			return ethereum.BlockRange{}, fmt.Errorf("failed to resolve %s head: %w", side.Chain, err)
		}
		end = head
	}
	if end < side.StartBlock {
		return ethereum.BlockRange{}, &ethereum.RangeError{From: side.StartBlock, To: end}
	}
	metrics.LastScannedBlock.WithLabelValues(side.Chain).Set(float64(end))
	return ethereum.BlockRange{From: side.StartBlock, To: end}, nil
}

func (b *Bridge) pass(
	ctx context.Context,
	from, to *Side,
	fromRange, toRange ethereum.BlockRange,
) (*DirectionResult, error) {
	start := time.Now()
	scope := Scope{FromChain: from.Chain, ToChain: to.Chain, CompletionRange: toRange}
	logger := b.logger.With(zap.String("direction", scope.Direction()))

	logger.Info("Starting reconciliation pass",
		zap.Uint64("from_block", fromRange.From),
		zap.Uint64("to_block", fromRange.To),
		zap.Uint64("completion_from_block", toRange.From),
		zap.Uint64("completion_to_block", toRange.To))

	deposits, err := from.Events.Deposits(ctx, from.Bridge, fromRange.From, fromRange.To)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deposits on %s: %w", from.Chain, err)
	}
	completions, err := to.Events.Completions(ctx, to.FederationAddress, toRange.From, toRange.To)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completions on %s: %w", to.Chain, err)
	}

	var errs ErrorLookup
	if b.opts.ErrorLookup {
		errs = boundErrors{events: to.Events, bridge: to.Bridge}
	}
	rec := New(transfer.NewIdentifier(to.Federation), to.Federation, errs, b.opts, b.logger)

	records, err := rec.Reconcile(ctx, scope, deposits, completions)
	if err != nil {
		return nil, err
	}

	duration := time.Since(start)
	metrics.PassDuration.WithLabelValues(scope.Direction()).Observe(duration.Seconds())
	counts := make(map[transfer.Status]int, len(transfer.Statuses))
	for _, record := range records {
		counts[record.Status]++
	}
	for _, status := range transfer.Statuses {
		metrics.Transfers.WithLabelValues(scope.Direction(), string(status)).Set(float64(counts[status]))
	}

	return &DirectionResult{
		FromChain:       from.Chain,
		ToChain:         to.Chain,
		DepositRange:    fromRange,
		CompletionRange: toRange,
		Records:         records,
		Duration:        duration,
	}, nil
}

type boundErrors struct {
	events EventSource
	bridge common.Address
}

func (b boundErrors) ErrorsInTx(ctx context.Context, txHash common.Hash) ([]transfer.ErrorEvent, error) {
	return b.events.ErrorsInTx(ctx, b.bridge, txHash)
}
