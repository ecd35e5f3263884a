package ethereum

import (
	"context"
	"fmt"

	"github.com/chainsafe/bridge-monitor/internal/metrics"
	"github.com/chainsafe/bridge-monitor/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Event topics of the bridge and federation contracts.
var (
	CrossTopic              = mustEventID(contracts.BridgeMetaData, "Cross")
	ErrorTokenReceiverTopic = mustEventID(contracts.BridgeMetaData, "ErrorTokenReceiver")
	ExecutedTopic           = mustEventID(contracts.FederationMetaData, "Executed")
)

func mustEventID(meta *bind.MetaData, event string) common.Hash {
	parsed, err := meta.GetAbi()
	if err != nil {
		panic(fmt.Sprintf("invalid contract ABI: %v", err))
	}
	ev, ok := parsed.Events[event]
	if !ok {
		panic(fmt.Sprintf("event %s missing from ABI", event))
	}
	return ev.ID
}

// ReceiptReader fetches transaction receipts.
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// EventReader decodes bridge and federation events of one chain.
type EventReader struct {
	chain      string
	fetcher    *LogFetcher
	receipts   ReceiptReader
	bridge     *contracts.BridgeFilterer
	federation *contracts.FederationFilterer
	logger     *zap.Logger
}

// NewEventReader creates an EventReader. The bindings are only used for
// decoding, so they are bound to the zero address.
func NewEventReader(chain string, fetcher *LogFetcher, receipts ReceiptReader, logger *zap.Logger) (*EventReader, error) {
	bridge, err := contracts.NewBridgeFilterer(common.Address{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to bind bridge ABI: %w", err)
	}
	federation, err := contracts.NewFederationFilterer(common.Address{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to bind federation ABI: %w", err)
	}
	return &EventReader{
		chain:      chain,
		fetcher:    fetcher,
		receipts:   receipts,
		bridge:     bridge,
		federation: federation,
		logger:     logger.With(zap.String("chain", chain)),
	}, nil
}

// Head returns the newest block number minus confirmations.
func Head(ctx context.Context, client ethereum.BlockNumberReader, confirmations uint64) (uint64, error) {
	head, err := client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	if head < confirmations {
		return 0, nil
	}
	return head - confirmations, nil
}

// Deposits returns the Cross events emitted by bridge in [from, to].
func (r *EventReader) Deposits(ctx context.Context, bridge common.Address, from, to uint64) ([]transfer.DepositEvent, error) {
	logs, err := r.fetcher.Fetch(ctx, LogQuery{
		Addresses: []common.Address{bridge},
		Topics:    [][]common.Hash{{CrossTopic}},
	}, from, to)
	if err != nil {
		return nil, err
	}

	deposits := make([]transfer.DepositEvent, 0, len(logs))
	for _, log := range logs {
		if log.Removed {
			continue
		}
		deposit, err := r.decodeDeposit(log)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, deposit)
	}

	metrics.EventsFetched.WithLabelValues(r.chain, "Cross").Add(float64(len(deposits)))
	r.logger.Info("Fetched deposits",
		zap.String("bridge", bridge.Hex()),
		zap.Uint64("from_block", from),
		zap.Uint64("to_block", to),
		zap.Int("count", len(deposits)))

	return deposits, nil
}

// Completions returns the Executed events emitted by federation in [from, to].
func (r *EventReader) Completions(ctx context.Context, federation common.Address, from, to uint64) ([]transfer.CompletionEvent, error) {
	logs, err := r.fetcher.Fetch(ctx, LogQuery{
		Addresses: []common.Address{federation},
		Topics:    [][]common.Hash{{ExecutedTopic}},
	}, from, to)
	if err != nil {
		return nil, err
	}

	completions := make([]transfer.CompletionEvent, 0, len(logs))
	for _, log := range logs {
		if log.Removed {
			continue
		}
		executed, err := r.federation.ParseExecuted(log)
		if err != nil {
			return nil, fmt.Errorf("failed to decode Executed log %s#%d: %w", log.TxHash.Hex(), log.Index, err)
		}
		completions = append(completions, transfer.CompletionEvent{
			ID:         transfer.ID(executed.TransactionId),
			Provenance: provenance(log),
		})
	}

	metrics.EventsFetched.WithLabelValues(r.chain, "Executed").Add(float64(len(completions)))
	r.logger.Info("Fetched completions",
		zap.String("federation", federation.Hex()),
		zap.Uint64("from_block", from),
		zap.Uint64("to_block", to),
		zap.Int("count", len(completions)))

	return completions, nil
}

// ErrorsInTx returns the ErrorTokenReceiver events emitted by bridge in txHash.
func (r *EventReader) ErrorsInTx(ctx context.Context, bridge common.Address, txHash common.Hash) ([]transfer.ErrorEvent, error) {
	receipt, err := r.receipts.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt of %s: %w", txHash.Hex(), err)
	}

	var events []transfer.ErrorEvent
	for _, log := range receipt.Logs {
		if log == nil || log.Address != bridge || len(log.Topics) == 0 || log.Topics[0] != ErrorTokenReceiverTopic {
			continue
		}
		decoded, err := r.bridge.ParseErrorTokenReceiver(*log)
		if err != nil {
			return nil, fmt.Errorf("failed to decode ErrorTokenReceiver log %s#%d: %w", txHash.Hex(), log.Index, err)
		}
		events = append(events, transfer.ErrorEvent{
			TxHash:   txHash,
			LogIndex: log.Index,
			Data:     decoded.ErrorData,
		})
	}

	if len(events) > 0 {
		metrics.EventsFetched.WithLabelValues(r.chain, "ErrorTokenReceiver").Add(float64(len(events)))
	}
	return events, nil
}

// DepositsInTx returns the Cross events emitted by bridge in txHash.
func (r *EventReader) DepositsInTx(ctx context.Context, bridge common.Address, txHash common.Hash) ([]transfer.DepositEvent, error) {
	receipt, err := r.receipts.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt of %s: %w", txHash.Hex(), err)
	}

	var deposits []transfer.DepositEvent
	for _, log := range receipt.Logs {
		if log == nil || log.Address != bridge || len(log.Topics) == 0 || log.Topics[0] != CrossTopic {
			continue
		}
		deposit, err := r.decodeDeposit(*log)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, deposit)
	}
	return deposits, nil
}

func (r *EventReader) decodeDeposit(log types.Log) (transfer.DepositEvent, error) {
	cross, err := r.bridge.ParseCross(log)
	if err != nil {
		return transfer.DepositEvent{}, fmt.Errorf("failed to decode Cross log %s#%d: %w", log.TxHash.Hex(), log.Index, err)
	}
	return transfer.DepositEvent{
		Token:       cross.TokenAddress,
		Receiver:    cross.To,
		Amount:      cross.Amount,
		Symbol:      cross.Symbol,
		Decimals:    cross.Decimals,
		Granularity: cross.Granularity,
		UserData:    cross.UserData,
		Provenance:  provenance(log),
	}, nil
}

func provenance(log types.Log) transfer.Provenance {
	return transfer.Provenance{
		BlockNumber: log.BlockNumber,
		BlockHash:   log.BlockHash,
		TxHash:      log.TxHash,
		LogIndex:    log.Index,
	}
}
