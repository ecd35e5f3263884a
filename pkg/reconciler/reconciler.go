package reconciler

import (
	"context"
	"fmt"
	"time"

	"github.com/chainsafe/bridge-monitor/internal/metrics"
	"github.com/chainsafe/bridge-monitor/pkg/ethereum"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IDComputer derives transfer ids from deposits.
type IDComputer interface {
	ComputeID(ctx context.Context, d transfer.DepositEvent, variant transfer.Variant) (transfer.ID, error)
}

// StatusReader queries live federation state of a transfer id.
type StatusReader interface {
	Votes(ctx context.Context, id transfer.ID) (uint64, error)
	WasProcessed(ctx context.Context, id transfer.ID) (bool, error)
}

// ErrorLookup returns the receiver-side failures raised by a destination transaction.
type ErrorLookup interface {
	ErrorsInTx(ctx context.Context, txHash common.Hash) ([]transfer.ErrorEvent, error)
}

// Options selects the optional stages of a reconciliation.
type Options struct {
	Workers         int
	DuplicatePolicy DuplicatePolicy
	LegacyIDs       bool
	ErrorLookup     bool
}

// DefaultOptions runs every stage sequentially with last-wins duplicates.
func DefaultOptions() Options {
	return Options{
		Workers:         1,
		DuplicatePolicy: LastWins,
		LegacyIDs:       true,
		ErrorLookup:     true,
	}
}

// Scope describes the direction being reconciled.
type Scope struct {
	FromChain       string
	ToChain         string
	CompletionRange ethereum.BlockRange
}

// Direction renders the scope as "<from>-><to>".
func (s Scope) Direction() string {
	return s.FromChain + "->" + s.ToChain
}

// Reconciler joins deposits with completions and live federation state.
type Reconciler struct {
	ids    IDComputer
	status StatusReader
	errs   ErrorLookup
	opts   Options
	logger *zap.Logger
}

// New creates a Reconciler. errs may be nil when error lookup is disabled.
func New(ids IDComputer, status StatusReader, errs ErrorLookup, opts Options, logger *zap.Logger) *Reconciler {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.DuplicatePolicy == "" {
		opts.DuplicatePolicy = LastWins
	}
	return &Reconciler{
		ids:    ids,
		status: status,
		errs:   errs,
		opts:   opts,
		logger: logger,
	}
}

// Reconcile builds one record per deposit, in deposit order. Any lookup
// failure aborts the whole reconciliation.
func (r *Reconciler) Reconcile(
	ctx context.Context,
	scope Scope,
	deposits []transfer.DepositEvent,
	completions []transfer.CompletionEvent,
) ([]transfer.Record, error) {
	start := time.Now()
	logger := r.logger.With(zap.String("direction", scope.Direction()))

	index, err := indexCompletions(completions, r.opts.DuplicatePolicy, func(dup *DuplicateCompletionError) {
		metrics.DuplicateCompletionsTotal.WithLabelValues(scope.Direction()).Inc()
		logger.Warn("Duplicate completion event",
			zap.String("transaction_id", dup.ID.Hex()),
			zap.String("first_tx_hash", dup.First.TxHash.Hex()),
			zap.String("second_tx_hash", dup.Second.TxHash.Hex()),
			zap.String("policy", string(r.opts.DuplicatePolicy)))
	})
	if err != nil {
		return nil, err
	}

	records := make([]transfer.Record, len(deposits))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for i, deposit := range deposits {
		g.Go(func() error {
			record, err := r.reconcileOne(gctx, scope, deposit, index)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to reconcile %s: %w", scope.Direction(), err)
	}

	for _, record := range records {
		if record.Status != transfer.StatusProcessedOutOfRange {
			continue
		}
		metrics.CompletionsOutOfRangeTotal.WithLabelValues(scope.Direction()).Inc()
		logger.Warn("Processed transfer has no completion in scanned range",
			zap.String("transaction_id", record.ID.Hex()),
			zap.String("event_transaction_hash", record.Deposit.TxHash.Hex()),
			zap.Uint64("completion_from_block", scope.CompletionRange.From),
			zap.Uint64("completion_to_block", scope.CompletionRange.To))
	}

	logger.Info("Reconciliation completed",
		zap.Int("deposits", len(deposits)),
		zap.Int("completions", len(completions)),
		zap.Duration("duration", time.Since(start)))

	return records, nil
}

func (r *Reconciler) reconcileOne(
	ctx context.Context,
	scope Scope,
	deposit transfer.DepositEvent,
	index map[transfer.ID]transfer.CompletionEvent,
) (transfer.Record, error) {
	record := transfer.Record{
		FromChain: scope.FromChain,
		ToChain:   scope.ToChain,
		Deposit:   deposit,
	}

	id, err := r.ids.ComputeID(ctx, deposit, transfer.VariantCurrent)
	if err != nil {
		return record, err
	}
	record.ID = id

	if r.opts.LegacyIDs {
		legacy, err := r.ids.ComputeID(ctx, deposit, transfer.VariantLegacy)
		if err != nil {
			return record, err
		}
		record.LegacyID = &legacy
	}

	if record.Votes, err = r.status.Votes(ctx, id); err != nil {
		return record, err
	}
	if record.Processed, err = r.status.WasProcessed(ctx, id); err != nil {
		return record, err
	}

	if completion, ok := index[id]; ok {
		record.Completion = &completion

		if r.opts.ErrorLookup && r.errs != nil {
			events, err := r.errs.ErrorsInTx(ctx, completion.TxHash)
			if err != nil {
				return record, fmt.Errorf("failed to look up errors of %s: %w", completion.TxHash.Hex(), err)
			}
			if len(events) > 0 {
				record.HasError = true
				record.ErrorData = events[0].Data
			}
		}
	}

	record.Status = transfer.Classify(record.Processed, record.Votes, record.Completion, record.HasError)
	return record, nil
}
