package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/chainsafe/bridge-monitor/internal/metrics"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// ErrInvalidBatchSize is returned for a zero batch size.
var ErrInvalidBatchSize = errors.New("batch size must be greater than zero")

// RangeError reports a block range whose upper bound precedes its lower bound.
type RangeError struct {
	From uint64
	To   uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid block range: to block %d is before from block %d", e.To, e.From)
}

// BlockRange is a closed interval of block numbers.
type BlockRange struct {
	From uint64
	To   uint64
}

// Batches splits [from, to] into consecutive closed ranges of at most size blocks.
func Batches(from, to, size uint64) ([]BlockRange, error) {
	if to < from {
		return nil, &RangeError{From: from, To: to}
	}
	if size == 0 {
		return nil, ErrInvalidBatchSize
	}

	batches := make([]BlockRange, 0, (to-from)/size+1)
	for start := from; ; start += size {
		end := to
		if to-start >= size {
			end = start + size - 1
		}
		batches = append(batches, BlockRange{From: start, To: end})
		if end == to {
			return batches, nil
		}
	}
}

// LogFilterer runs a single eth_getLogs query.
type LogFilterer interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// LogQuery selects logs by emitter and topics. Topics follow the
// ethereum.FilterQuery positional rules.
type LogQuery struct {
	Addresses []common.Address
	Topics    [][]common.Hash
}

// LogFetcher reads logs over arbitrarily large block ranges in fixed-size batches.
type LogFetcher struct {
	chain     string
	filterer  LogFilterer
	batchSize uint64
	logger    *zap.Logger
}

// NewLogFetcher creates a LogFetcher. Retries are the filterer's concern.
func NewLogFetcher(chain string, filterer LogFilterer, batchSize uint64, logger *zap.Logger) (*LogFetcher, error) {
	if batchSize == 0 {
		return nil, ErrInvalidBatchSize
	}
	return &LogFetcher{
		chain:     chain,
		filterer:  filterer,
		batchSize: batchSize,
		logger:    logger.With(zap.String("chain", chain)),
	}, nil
}

// BatchSize returns the configured batch size.
func (f *LogFetcher) BatchSize() uint64 {
	return f.batchSize
}

// Fetch returns the logs matching q in [from, to], in node order. The first
// failing batch aborts the whole fetch.
func (f *LogFetcher) Fetch(ctx context.Context, q LogQuery, from, to uint64) ([]types.Log, error) {
	batches, err := Batches(from, to, f.batchSize)
	if err != nil {
		return nil, err
	}

	var logs []types.Log
	for _, batch := range batches {
		f.logger.Debug("Fetching logs batch",
			zap.Uint64("from_block", batch.From),
			zap.Uint64("to_block", batch.To))

		result, err := f.filterer.FilterLogs(ctx, ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(batch.From),
			ToBlock:   new(big.Int).SetUint64(batch.To),
			Addresses: q.Addresses,
			Topics:    q.Topics,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch logs in blocks %d-%d: %w", batch.From, batch.To, err)
		}
		metrics.LogBatchesTotal.WithLabelValues(f.chain).Inc()
		logs = append(logs, result...)
	}

	f.logger.Debug("Fetched logs",
		zap.Uint64("from_block", from),
		zap.Uint64("to_block", to),
		zap.Int("batches", len(batches)),
		zap.Int("logs", len(logs)))

	return logs, nil
}
