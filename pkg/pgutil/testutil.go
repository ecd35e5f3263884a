package pgutil

import (
	"context"
	"testing"
	"time"

	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
)

// SetupTestDB starts a PostgreSQL testcontainer and returns a connection to it.
// The test is skipped in -short mode or when no container runtime is reachable.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to get container port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "test_user",
		Password: "test_pass",
		Database: "test_db",
		SSLMode:  "disable",
	}

	var db *bun.DB
	const maxRetries = 10
	for i := 0; i < maxRetries; i++ {
		db, err = ConnectDB(ctx, cfg)
		if err == nil {
			break
		}
		if i == maxRetries-1 {
			_ = testcontainers.TerminateContainer(container)
			t.Fatalf("failed to connect to test database after %d attempts: %v", maxRetries, err)
		}
		time.Sleep(time.Duration(100*(1<<uint(i))) * time.Millisecond)
	}

	cleanup := func() {
		_ = db.Close()
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
	return db, cleanup
}

// AssertTableExists checks if a table exists in the public schema
func AssertTableExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if !exists(t, db, "SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = ?", tableName) {
		t.Errorf("table %s does not exist", tableName)
	}
}

// AssertTableNotExists checks if a table is absent from the public schema
func AssertTableNotExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if exists(t, db, "SELECT 1 FROM information_schema.tables WHERE table_schema = ? AND table_name = ?", tableName) {
		t.Errorf("table %s should not exist but it does", tableName)
	}
}

// AssertIndexExists checks if an index exists in the public schema
func AssertIndexExists(t *testing.T, db *bun.DB, indexName string) {
	t.Helper()
	if !exists(t, db, "SELECT 1 FROM pg_indexes WHERE schemaname = ? AND indexname = ?", indexName) {
		t.Errorf("index %s does not exist", indexName)
	}
}

// AssertRowCount checks if a table has the expected number of rows
func AssertRowCount(t *testing.T, db *bun.DB, tableName string, expected int) {
	t.Helper()
	var count int
	err := db.NewSelect().
		TableExpr("?", bun.Ident(tableName)).
		ColumnExpr("COUNT(*)").
		Scan(context.Background(), &count)
	if err != nil {
		t.Fatalf("failed to count rows in table %s: %v", tableName, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", tableName, expected, count)
	}
}

func exists(t *testing.T, db *bun.DB, query, name string) bool {
	t.Helper()
	var found bool
	err := db.NewSelect().
		ColumnExpr("EXISTS ("+query+")", "public", name).
		Scan(context.Background(), &found)
	if err != nil {
		t.Fatalf("failed to look up %s: %v", name, err)
	}
	return found
}
