// Package reportdb persists reconciliation snapshots to postgres.
package reportdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chainsafe/bridge-monitor/pkg/reportdb/dao"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrRunNotFound is returned when no stored run matches a lookup.
var ErrRunNotFound = errors.New("reconciliation run not found")

const insertChunk = 500

// Run is one stored reconciliation snapshot of a bridge.
type Run struct {
	ID         uuid.UUID
	Bridge     string
	StartedAt  time.Time
	FinishedAt time.Time
	Records    []transfer.Record
}

// RecordFilter narrows ListRecords. The zero value matches every record of the run.
type RecordFilter struct {
	Unprocessed   bool
	Statuses      []transfer.Status
	TransactionID *transfer.ID
}

// Store provides database operations for reconciliation snapshots
type Store struct {
	db *bun.DB
}

// NewStore wraps an open bun connection.
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores run and its records in one transaction. A zero run.ID is replaced by a new UUID.
func (s *Store) SaveRun(ctx context.Context, run *Run) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	unprocessed := 0
	rows := make([]*dao.TransferRecordDao, len(run.Records))
	for i, r := range run.Records {
		if !r.Processed {
			unprocessed++
		}
		rows[i] = toRecordDao(run.ID, i, r)
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&dao.RunDao{
			ID:               run.ID,
			Bridge:           run.Bridge,
			StartedAt:        run.StartedAt,
			FinishedAt:       run.FinishedAt,
			TransferCount:    len(run.Records),
			UnprocessedCount: unprocessed,
		}).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
		}

		for start := 0; start < len(rows); start += insertChunk {
			end := min(start+insertChunk, len(rows))
			chunk := rows[start:end]
			if _, err := tx.NewInsert().Model(&chunk).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert transfer records of run %s: %w", run.ID, err)
			}
		}
		return nil
	})
}

// LatestRun returns the most recently finished run of bridge, records included.
func (s *Store) LatestRun(ctx context.Context, bridge string) (*Run, error) {
	row := new(dao.RunDao)
	err := s.db.NewSelect().
		Model(row).
		Where("bridge = ?", bridge).
		Order("finished_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get latest run of %s", bridge))
	}
	return s.withRecords(ctx, row)
}

// GetRun returns a run by id, records included.
func (s *Store) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	row := new(dao.RunDao)
	err := s.db.NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("failed to get run %s", id))
	}
	return s.withRecords(ctx, row)
}

// ListRecords returns the records of a run matching filter, in reconciliation order.
func (s *Store) ListRecords(ctx context.Context, runID uuid.UUID, filter RecordFilter) ([]transfer.Record, error) {
	var rows []dao.TransferRecordDao
	q := s.db.NewSelect().
		Model(&rows).
		Where("run_id = ?", runID).
		Order("position ASC")
	if filter.Unprocessed {
		q = q.Where("was_processed = FALSE")
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, st := range filter.Statuses {
			statuses[i] = string(st)
		}
		q = q.Where("status IN (?)", bun.In(statuses))
	}
	if filter.TransactionID != nil {
		id := filter.TransactionID.Hex()
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("transaction_id = ?", id).WhereOr("transaction_id_legacy = ?", id)
		})
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list records of run %s: %w", runID, err)
	}

	records := make([]transfer.Record, len(rows))
	for i, row := range rows {
		r, err := fromRecordDao(row)
		if err != nil {
			return nil, fmt.Errorf("failed to decode record %d of run %s: %w", row.Position, runID, err)
		}
		records[i] = r
	}
	return records, nil
}

func (s *Store) withRecords(ctx context.Context, row *dao.RunDao) (*Run, error) {
	records, err := s.ListRecords(ctx, row.ID, RecordFilter{})
	if err != nil {
		return nil, err
	}
	return &Run{
		ID:         row.ID,
		Bridge:     row.Bridge,
		StartedAt:  row.StartedAt,
		FinishedAt: row.FinishedAt,
		Records:    records,
	}, nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRunNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
