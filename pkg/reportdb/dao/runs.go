package dao

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RunDao is a data access object that maps directly to the 'reconciliation_runs' table in PostgreSQL.
type RunDao struct {
	bun.BaseModel    `bun:"table:reconciliation_runs"`
	ID               uuid.UUID `json:"id" bun:",pk,type:uuid"`
	Bridge           string    `json:"bridge" bun:",notnull,type:varchar(64)"`
	StartedAt        time.Time `json:"started_at" bun:",notnull"`
	FinishedAt       time.Time `json:"finished_at" bun:",notnull"`
	TransferCount    int       `json:"transfer_count" bun:",notnull,use_zero"`
	UnprocessedCount int       `json:"unprocessed_count" bun:",notnull,use_zero"`
	CreatedAt        time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
