package ethereum

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// InconsistencyKind classifies a divergence between eth_getLogs and a receipt.
type InconsistencyKind string

const (
	// MissingFromLogs is a receipt log absent from the eth_getLogs result.
	MissingFromLogs InconsistencyKind = "missing_from_logs"
	// MissingFromReceipt is an eth_getLogs entry absent from the receipt.
	MissingFromReceipt InconsistencyKind = "missing_from_receipt"
	// ContentMismatch is a log whose address, topics or data differ between both sources.
	ContentMismatch InconsistencyKind = "content_mismatch"
)

// Inconsistency is one log that the node reports differently depending on the endpoint.
type Inconsistency struct {
	Kind        InconsistencyKind
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
	LogsData    []byte
	ReceiptData []byte
}

func (i Inconsistency) String() string {
	return fmt.Sprintf("%s: block %d tx %s log %d", i.Kind, i.BlockNumber, i.TxHash.Hex(), i.LogIndex)
}

// CheckResult summarizes a log consistency check.
type CheckResult struct {
	From            uint64
	To              uint64
	Logs            int
	Transactions    int
	Inconsistencies []Inconsistency
}

// LogChecker compares eth_getLogs output with transaction receipts.
type LogChecker struct {
	fetcher  *LogFetcher
	receipts ReceiptReader
	logger   *zap.Logger
}

// NewLogChecker creates a LogChecker.
func NewLogChecker(fetcher *LogFetcher, receipts ReceiptReader, logger *zap.Logger) *LogChecker {
	return &LogChecker{fetcher: fetcher, receipts: receipts, logger: logger}
}

// Check fetches every log in [from, to] and cross-checks each transaction's receipt.
func (c *LogChecker) Check(ctx context.Context, from, to uint64) (*CheckResult, error) {
	logs, err := c.fetcher.Fetch(ctx, LogQuery{}, from, to)
	if err != nil {
		return nil, err
	}

	var order []common.Hash
	byTx := make(map[common.Hash]map[uint]types.Log)
	txLogs := make(map[common.Hash][]types.Log)
	for _, log := range logs {
		if _, ok := byTx[log.TxHash]; !ok {
			order = append(order, log.TxHash)
			byTx[log.TxHash] = make(map[uint]types.Log)
		}
		byTx[log.TxHash][log.Index] = log
		txLogs[log.TxHash] = append(txLogs[log.TxHash], log)
	}

	result := &CheckResult{From: from, To: to, Logs: len(logs), Transactions: len(order)}
	for _, txHash := range order {
		receipt, err := c.receipts.TransactionReceipt(ctx, txHash)
		if err != nil {
			return nil, fmt.Errorf("failed to get receipt of %s: %w", txHash.Hex(), err)
		}

		fromLogs := byTx[txHash]
		seen := make(map[uint]struct{}, len(receipt.Logs))
		for _, receiptLog := range receipt.Logs {
			if receiptLog == nil {
				continue
			}
			seen[receiptLog.Index] = struct{}{}

			logsEntry, ok := fromLogs[receiptLog.Index]
			if !ok {
				result.Inconsistencies = append(result.Inconsistencies, Inconsistency{
					Kind:        MissingFromLogs,
					BlockNumber: receiptLog.BlockNumber,
					TxHash:      txHash,
					LogIndex:    receiptLog.Index,
					ReceiptData: receiptLog.Data,
				})
				continue
			}
			if !sameContent(logsEntry, *receiptLog) {
				result.Inconsistencies = append(result.Inconsistencies, Inconsistency{
					Kind:        ContentMismatch,
					BlockNumber: logsEntry.BlockNumber,
					TxHash:      txHash,
					LogIndex:    receiptLog.Index,
					LogsData:    logsEntry.Data,
					ReceiptData: receiptLog.Data,
				})
			}
		}

		for _, log := range txLogs[txHash] {
			if _, ok := seen[log.Index]; !ok {
				result.Inconsistencies = append(result.Inconsistencies, Inconsistency{
					Kind:        MissingFromReceipt,
					BlockNumber: log.BlockNumber,
					TxHash:      txHash,
					LogIndex:    log.Index,
					LogsData:    log.Data,
				})
			}
		}
	}

	for _, inc := range result.Inconsistencies {
		c.logger.Warn("Log inconsistency",
			zap.String("kind", string(inc.Kind)),
			zap.Uint64("block_number", inc.BlockNumber),
			zap.String("tx_hash", inc.TxHash.Hex()),
			zap.Uint("log_index", inc.LogIndex))
	}

	return result, nil
}

func sameContent(a, b types.Log) bool {
	if a.Address != b.Address || !bytes.Equal(a.Data, b.Data) || len(a.Topics) != len(b.Topics) {
		return false
	}
	for i := range a.Topics {
		if a.Topics[i] != b.Topics[i] {
			return false
		}
	}
	return true
}
