package store

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/pkordes/rec-registration/migrations"
)

// Migrate applies every pending embedded migration for the handle's dialect.
// It is safe to call on every startup; applied versions are skipped.
func Migrate(ctx context.Context, db *DB) error {
	provider, err := NewMigrationProvider(db)
	if err != nil {
		return fmt.Errorf("store.Migrate: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("store.Migrate: up: %w", err)
	}
	return nil
}

// NewMigrationProvider builds a goose provider over the migration directory
// matching db's dialect.
func NewMigrationProvider(db *DB) (*goose.Provider, error) {
	gooseDialect := goose.DialectSQLite3
	dir := "sqlite"
	if db.Dialect() == DialectPostgres {
		gooseDialect = goose.DialectPostgres
		dir = "postgres"
	}

	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("migrations %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db.SQL(), fsys)
	if err != nil {
		return nil, fmt.Errorf("create goose provider: %w", err)
	}
	return provider, nil
}
