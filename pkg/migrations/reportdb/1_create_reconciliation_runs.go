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
		log.Println("creating reconciliation_runs table...")
		if err := mghelper.CreateSchema(ctx, db, &dao.RunDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &dao.RunDao{}, "bridge", "finished_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping reconciliation_runs table...")
		if err := mghelper.DropModelIndexes(ctx, db, &dao.RunDao{}, "bridge", "finished_at"); err != nil {
			return err
		}
		return mghelper.DropTables(ctx, db, &dao.RunDao{})
	})
}
