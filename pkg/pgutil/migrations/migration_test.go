package migrations

import (
	"context"
	"testing"

	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/chainsafe/bridge-monitor/pkg/pgutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

type sampleDao struct {
	bun.BaseModel `bun:"table:sample_rows"`
	ID            int64  `bun:",pk,autoincrement"`
	Chain         string `bun:",notnull,type:varchar(32)"`
	Block         int64  `bun:",nullzero"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}
	db, err := pgutil.ConnectDB(context.Background(), cfg)
	if err == nil {
		_ = db.Close()
	}
	assert.Error(t, err)
}

func TestCreateAndDropSchema(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, CreateSchema(ctx, db, &sampleDao{}))
	pgutil.AssertTableExists(t, db, "sample_rows")
	require.NoError(t, CreateSchema(ctx, db, &sampleDao{}), "second call must be a no-op")

	require.NoError(t, DropTables(ctx, db, &sampleDao{}))
	pgutil.AssertTableNotExists(t, db, "sample_rows")
}

func TestModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, CreateSchema(ctx, db, &sampleDao{}))
	require.NoError(t, CreateModelIndexes(ctx, db, &sampleDao{}, "chain", "block"))
	pgutil.AssertIndexExists(t, db, "idx_sample_rows_chain")
	pgutil.AssertIndexExists(t, db, "idx_sample_rows_block")

	require.NoError(t, DropModelIndexes(ctx, db, &sampleDao{}, "chain"))
	var count int
	err := db.NewSelect().
		ColumnExpr("COUNT(*)").
		TableExpr("pg_indexes").
		Where("indexname = ?", "idx_sample_rows_chain").
		Scan(ctx, &count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestModelIndexName(t *testing.T) {
	_, err := modelIndexName(nil, nil, "chain")
	assert.Error(t, err)
}

func TestRunMigrations_UnknownCommand(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()

	migrator := migrate.NewMigrator(db, migrate.NewMigrations())
	err := RunMigrations(context.Background(), migrator, "sideways")
	assert.ErrorContains(t, err, "unknown command")

	require.NoError(t, RunMigrations(context.Background(), migrator, "init"))
	require.NoError(t, RunMigrations(context.Background(), migrator, "status"))
}
