package dao

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// TransferRecordDao is a data access object that maps directly to the 'transfer_records' table in PostgreSQL.
// Hashes, ids and addresses are stored as 0x-prefixed lowercase hex.
type TransferRecordDao struct {
	bun.BaseModel       `bun:"table:transfer_records"`
	ID                  int64           `json:"id" bun:",pk,autoincrement"`
	RunID               uuid.UUID       `json:"run_id" bun:",notnull,type:uuid"`
	Position            int             `json:"position" bun:",notnull,use_zero"`
	FromChain           string          `json:"from_chain" bun:",notnull,type:varchar(32)"`
	ToChain             string          `json:"to_chain" bun:",notnull,type:varchar(32)"`
	TransactionID       string          `json:"transaction_id" bun:",notnull,type:varchar(66)"`
	TransactionIDLegacy *string         `json:"transaction_id_legacy,omitempty" bun:"transaction_id_legacy,type:varchar(66)"`
	WasProcessed        bool            `json:"was_processed" bun:",notnull,use_zero"`
	NumVotes            int64           `json:"num_votes" bun:",notnull,use_zero"`
	ReceiverAddress     string          `json:"receiver_address" bun:",notnull,type:varchar(42)"`
	TokenAddress        string          `json:"token_address" bun:",notnull,type:varchar(42)"`
	TokenSymbol         string          `json:"token_symbol" bun:",notnull,use_zero,type:varchar(64)"`
	TokenDecimals       int16           `json:"token_decimals" bun:",notnull,use_zero"`
	Granularity         decimal.Decimal `json:"granularity" bun:",notnull,type:numeric(78,0)"`
	AmountWei           decimal.Decimal `json:"amount_wei" bun:",notnull,type:numeric(78,0)"`
	UserData            string          `json:"user_data" bun:",notnull,type:text"`
	EventBlockNumber    int64           `json:"event_block_number" bun:",notnull,use_zero"`
	EventBlockHash      string          `json:"event_block_hash" bun:",notnull,type:varchar(66)"`
	EventTxHash         string          `json:"event_transaction_hash" bun:"event_transaction_hash,notnull,type:varchar(66)"`
	EventLogIndex       int64           `json:"event_log_index" bun:",notnull,use_zero"`
	ExecutedBlockNumber *int64          `json:"executed_block_number,omitempty" bun:"executed_block_number"`
	ExecutedBlockHash   *string         `json:"executed_block_hash,omitempty" bun:"executed_block_hash,type:varchar(66)"`
	ExecutedTxHash      *string         `json:"executed_transaction_hash,omitempty" bun:"executed_transaction_hash,type:varchar(66)"`
	ExecutedLogIndex    *int64          `json:"executed_log_index,omitempty" bun:"executed_log_index"`
	HasError            bool            `json:"has_error" bun:",notnull,use_zero"`
	ErrorData           string          `json:"error_data" bun:",notnull,type:text"`
	Status              string          `json:"status" bun:",notnull,type:varchar(32)"`
}
