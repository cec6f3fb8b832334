// Package testutil provides shared helpers for database-backed tests.
// SQLite helpers always run against a throwaway file; Postgres helpers skip
// automatically when TEST_DATABASE_URL is not set.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkordes/rec-registration/internal/store"
)

// NewSQLiteDB opens a fresh, fully migrated SQLite database in a temporary
// directory. Each call gets its own file, so tests are isolated without any
// cleanup SQL. The handle is closed when the test finishes.
func NewSQLiteDB(t *testing.T) *store.DB {
	t.Helper()
	return openMigrated(t, filepath.Join(t.TempDir(), "rec.db"))
}

// NewPostgresDB opens a migrated handle to the database named by
// TEST_DATABASE_URL. The test is skipped if the variable is not set, so
// Postgres coverage is opt-in and never breaks environments without a server.
//
// Rows are not rolled back between tests; assertions should be scoped to the
// IDs the test itself created.
func NewPostgresDB(t *testing.T) *store.DB {
	t.Helper()
	return openMigrated(t, requireDSN(t))
}

// NewUnmigratedDB opens a handle to dsn without applying migrations.
// Use it when the test drives goose itself.
func NewUnmigratedDB(t *testing.T, dsn string) *store.DB {
	t.Helper()

	db, err := store.Open(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewUnmigratedDB: open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// PostgresDSN returns TEST_DATABASE_URL, skipping the test if it is unset.
func PostgresDSN(t *testing.T) string {
	t.Helper()
	return requireDSN(t)
}

func openMigrated(t *testing.T, dsn string) *store.DB {
	t.Helper()

	db := NewUnmigratedDB(t, dsn)
	if err := store.Migrate(context.Background(), db); err != nil {
		t.Fatalf("testutil: migrate: %v", err)
	}
	return db
}

// requireDSN returns the TEST_DATABASE_URL environment variable value,
// skipping the test if it is not set.
func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres integration test")
	}
	return dsn
}
