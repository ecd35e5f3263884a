package migrations

import (
	"context"
	"testing"

	"github.com/chainsafe/bridge-monitor/pkg/migrations/reportdb"
	mghelper "github.com/chainsafe/bridge-monitor/pkg/pgutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"
)

func TestReportDBMigrations_Apply(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, reportdb.Migrations)
	require.NoError(t, migrator.Init(ctx))

	group, err := migrator.Migrate(ctx)
	require.NoError(t, err)
	assert.False(t, group.IsZero(), "expected migrations to run")

	for _, table := range []string{"reconciliation_runs", "transfer_records", "bun_migrations"} {
		mghelper.AssertTableExists(t, db, table)
	}
	mghelper.AssertIndexExists(t, db, "idx_reconciliation_runs_bridge")
	mghelper.AssertIndexExists(t, db, "idx_transfer_records_run_id")
	mghelper.AssertIndexExists(t, db, "idx_transfer_records_transaction_id")
	mghelper.AssertIndexExists(t, db, "idx_transfer_records_status")
}

func TestReportDBMigrations_Idempotency(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, reportdb.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	group, err := migrator.Migrate(ctx)
	require.NoError(t, err)
	assert.True(t, group.IsZero(), "second run must not apply anything")
}

func TestReportDBMigrations_Rollback(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, reportdb.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	group, err := migrator.Rollback(ctx)
	require.NoError(t, err)
	assert.False(t, group.IsZero())

	mghelper.AssertTableNotExists(t, db, "transfer_records")
	mghelper.AssertTableNotExists(t, db, "reconciliation_runs")
}
