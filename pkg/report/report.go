// Package report turns reconciled transfer records into tables and export files.
package report

import (
	"strconv"

	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Header lists the report columns in their fixed order.
var Header = []string{
	"from_chain",
	"to_chain",
	"transaction_id",
	"transaction_id_legacy",
	"was_processed",
	"num_votes",
	"receiver_address",
	"token_address",
	"token_symbol",
	"amount_wei",
	"user_data",
	"event_block_number",
	"event_block_hash",
	"event_transaction_hash",
	"event_log_index",
	"executed_block_number",
	"executed_block_hash",
	"executed_transaction_hash",
	"executed_log_index",
	"has_error",
	"error_data",
	"status",
}

// FilterUnprocessed returns the records the federation has not processed yet, in order.
func FilterUnprocessed(records []transfer.Record) []transfer.Record {
	var out []transfer.Record
	for _, r := range records {
		if !r.Processed {
			out = append(out, r)
		}
	}
	return out
}

// FilterStatus returns the records having one of statuses, in order.
func FilterStatus(records []transfer.Record, statuses ...transfer.Status) []transfer.Record {
	if len(statuses) == 0 {
		return records
	}
	want := make(map[transfer.Status]struct{}, len(statuses))
	for _, s := range statuses {
		want[s] = struct{}{}
	}
	var out []transfer.Record
	for _, r := range records {
		if _, ok := want[r.Status]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ToTable renders one row per record, cells aligned with Header.
func ToTable(records []transfer.Record) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = ToRow(r)
	}
	return rows
}

// ToRow renders a single record.
func ToRow(r transfer.Record) []string {
	legacy := ""
	if r.LegacyID != nil {
		legacy = r.LegacyID.Hex()
	}
	amount := "0"
	if r.Deposit.Amount != nil {
		amount = r.Deposit.Amount.String()
	}

	var executedBlock, executedBlockHash, executedTx, executedLogIndex string
	if c := r.Completion; c != nil {
		executedBlock = strconv.FormatUint(c.BlockNumber, 10)
		executedBlockHash = c.BlockHash.Hex()
		executedTx = c.TxHash.Hex()
		executedLogIndex = strconv.FormatUint(uint64(c.LogIndex), 10)
	}

	return []string{
		r.FromChain,
		r.ToChain,
		r.ID.Hex(),
		legacy,
		strconv.FormatBool(r.Processed),
		strconv.FormatUint(r.Votes, 10),
		hexAddress(r.Deposit.Receiver.Bytes()),
		hexAddress(r.Deposit.Token.Bytes()),
		r.Deposit.Symbol,
		amount,
		hexutil.Encode(r.Deposit.UserData),
		strconv.FormatUint(r.Deposit.BlockNumber, 10),
		r.Deposit.BlockHash.Hex(),
		r.Deposit.TxHash.Hex(),
		strconv.FormatUint(uint64(r.Deposit.LogIndex), 10),
		executedBlock,
		executedBlockHash,
		executedTx,
		executedLogIndex,
		strconv.FormatBool(r.HasError),
		hexutil.Encode(r.ErrorData),
		string(r.Status),
	}
}

// hexAddress renders an address in lowercase, unlike common.Address.Hex.
func hexAddress(b []byte) string {
	return hexutil.Encode(b)
}
