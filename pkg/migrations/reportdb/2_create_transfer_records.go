package reportdb

import (
	"context"
	"log"

	"github.com/chainsafe/bridge-monitor/pkg/reportdb/dao"
	mghelper "github.com/chainsafe/bridge-monitor/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating transfer_records table...")
		if err := mghelper.CreateSchema(ctx, db, &dao.TransferRecordDao{}); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, `ALTER TABLE transfer_records
			ADD CONSTRAINT fk_transfer_records_run FOREIGN KEY (run_id)
			REFERENCES reconciliation_runs (id) ON DELETE CASCADE`)
		if err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &dao.TransferRecordDao{},
			"run_id", "transaction_id", "status", "event_transaction_hash")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transfer_records table...")
		if err := mghelper.DropModelIndexes(ctx, db, &dao.TransferRecordDao{},
			"run_id", "transaction_id", "status", "event_transaction_hash"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &dao.TransferRecordDao{})
	})
}
