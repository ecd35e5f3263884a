package reportdb

import (
	"fmt"
	"math/big"

	"github.com/chainsafe/bridge-monitor/pkg/reportdb/dao"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toRecordDao(runID uuid.UUID, position int, r transfer.Record) *dao.TransferRecordDao {
	row := &dao.TransferRecordDao{
		RunID:            runID,
		Position:         position,
		FromChain:        r.FromChain,
		ToChain:          r.ToChain,
		TransactionID:    r.ID.Hex(),
		WasProcessed:     r.Processed,
		NumVotes:         int64(r.Votes),
		ReceiverAddress:  hexutil.Encode(r.Deposit.Receiver.Bytes()),
		TokenAddress:     hexutil.Encode(r.Deposit.Token.Bytes()),
		TokenSymbol:      r.Deposit.Symbol,
		TokenDecimals:    int16(r.Deposit.Decimals),
		Granularity:      bigToDecimal(r.Deposit.Granularity),
		AmountWei:        bigToDecimal(r.Deposit.Amount),
		UserData:         hexutil.Encode(r.Deposit.UserData),
		EventBlockNumber: int64(r.Deposit.BlockNumber),
		EventBlockHash:   r.Deposit.BlockHash.Hex(),
		EventTxHash:      r.Deposit.TxHash.Hex(),
		EventLogIndex:    int64(r.Deposit.LogIndex),
		HasError:         r.HasError,
		ErrorData:        hexutil.Encode(r.ErrorData),
		Status:           string(r.Status),
	}
	if r.LegacyID != nil {
		legacy := r.LegacyID.Hex()
		row.TransactionIDLegacy = &legacy
	}
	if c := r.Completion; c != nil {
		block := int64(c.BlockNumber)
		blockHash := c.BlockHash.Hex()
		txHash := c.TxHash.Hex()
		logIndex := int64(c.LogIndex)
		row.ExecutedBlockNumber = &block
		row.ExecutedBlockHash = &blockHash
		row.ExecutedTxHash = &txHash
		row.ExecutedLogIndex = &logIndex
	}
	return row
}

func fromRecordDao(row dao.TransferRecordDao) (transfer.Record, error) {
	id, err := transfer.ParseID(row.TransactionID)
	if err != nil {
		return transfer.Record{}, fmt.Errorf("transaction_id: %w", err)
	}
	userData, err := decodeBytes(row.UserData)
	if err != nil {
		return transfer.Record{}, fmt.Errorf("user_data: %w", err)
	}
	errorData, err := decodeBytes(row.ErrorData)
	if err != nil {
		return transfer.Record{}, fmt.Errorf("error_data: %w", err)
	}

	r := transfer.Record{
		FromChain: row.FromChain,
		ToChain:   row.ToChain,
		ID:        id,
		Processed: row.WasProcessed,
		Votes:     uint64(row.NumVotes),
		Deposit: transfer.DepositEvent{
			Token:       common.HexToAddress(row.TokenAddress),
			Receiver:    common.HexToAddress(row.ReceiverAddress),
			Amount:      row.AmountWei.BigInt(),
			Symbol:      row.TokenSymbol,
			Decimals:    uint8(row.TokenDecimals),
			Granularity: row.Granularity.BigInt(),
			UserData:    userData,
			Provenance: transfer.Provenance{
				BlockNumber: uint64(row.EventBlockNumber),
				BlockHash:   common.HexToHash(row.EventBlockHash),
				TxHash:      common.HexToHash(row.EventTxHash),
				LogIndex:    uint(row.EventLogIndex),
			},
		},
		HasError:  row.HasError,
		ErrorData: errorData,
		Status:    transfer.Status(row.Status),
	}
	if row.TransactionIDLegacy != nil {
		legacy, err := transfer.ParseID(*row.TransactionIDLegacy)
		if err != nil {
			return transfer.Record{}, fmt.Errorf("transaction_id_legacy: %w", err)
		}
		r.LegacyID = &legacy
	}
	if row.ExecutedTxHash != nil {
		c := &transfer.CompletionEvent{ID: id}
		c.TxHash = common.HexToHash(*row.ExecutedTxHash)
		if row.ExecutedBlockNumber != nil {
			c.BlockNumber = uint64(*row.ExecutedBlockNumber)
		}
		if row.ExecutedBlockHash != nil {
			c.BlockHash = common.HexToHash(*row.ExecutedBlockHash)
		}
		if row.ExecutedLogIndex != nil {
			c.LogIndex = uint(*row.ExecutedLogIndex)
		}
		r.Completion = c
	}
	return r, nil
}

func bigToDecimal(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, 0)
}

// decodeBytes maps "0x" back to nil so round trips keep empty payloads empty.
func decodeBytes(s string) ([]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	return b, nil
}
