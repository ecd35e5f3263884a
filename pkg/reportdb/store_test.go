package reportdb

import (
	"context"
	"testing"
	"time"

	reportmigrations "github.com/chainsafe/bridge-monitor/pkg/migrations/reportdb"
	"github.com/chainsafe/bridge-monitor/pkg/pgutil"
	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"
)

func setupStore(t *testing.T) (*Store, func()) {
	t.Helper()
	db, cleanup := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, reportmigrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	return NewStore(db), cleanup
}

func TestStore_SaveAndLatestRun(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := &Run{Bridge: "rsk_eth_mainnet", StartedAt: started, FinishedAt: started.Add(time.Minute)}
	require.NoError(t, store.SaveRun(ctx, older))
	assert.NotEqual(t, uuid.Nil, older.ID)

	newer := &Run{
		Bridge:     "rsk_eth_mainnet",
		StartedAt:  started.Add(time.Hour),
		FinishedAt: started.Add(time.Hour + time.Minute),
		Records:    sampleRecords(),
	}
	require.NoError(t, store.SaveRun(ctx, newer))

	latest, err := store.LatestRun(ctx, "rsk_eth_mainnet")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
	require.Len(t, latest.Records, 2)
	assert.Equal(t, testID("pending"), latest.Records[0].ID)
	assert.Equal(t, transfer.StatusErrored, latest.Records[1].Status)
	assert.True(t, newer.FinishedAt.Equal(latest.FinishedAt))

	byID, err := store.GetRun(ctx, older.ID)
	require.NoError(t, err)
	assert.Empty(t, byID.Records)

	pgutil.AssertRowCount(t, store.db, "transfer_records", 2)
}

func TestStore_ListRecordsFilters(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	run := &Run{Bridge: "rsk_bsc_mainnet", StartedAt: time.Now().UTC(), FinishedAt: time.Now().UTC(), Records: sampleRecords()}
	require.NoError(t, store.SaveRun(ctx, run))

	unprocessed, err := store.ListRecords(ctx, run.ID, RecordFilter{Unprocessed: true})
	require.NoError(t, err)
	require.Len(t, unprocessed, 1)
	assert.Equal(t, testID("pending"), unprocessed[0].ID)

	errored, err := store.ListRecords(ctx, run.ID, RecordFilter{Statuses: []transfer.Status{transfer.StatusErrored}})
	require.NoError(t, err)
	require.Len(t, errored, 1)
	assert.Equal(t, []byte{0x08, 0xc3, 0x79, 0xa0}, errored[0].ErrorData)

	legacy := testID("legacy-pending")
	byLegacy, err := store.ListRecords(ctx, run.ID, RecordFilter{TransactionID: &legacy})
	require.NoError(t, err)
	require.Len(t, byLegacy, 1)
	assert.Equal(t, testID("pending"), byLegacy[0].ID)
}

func TestStore_RunNotFound(t *testing.T) {
	store, cleanup := setupStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.LatestRun(ctx, "unknown")
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = store.GetRun(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrRunNotFound)
}
