// Package store opens the shared database handle used by every repository.
// SQLite (modernc.org/sqlite, pure Go) is the default backend; a postgres://
// URL switches to the pgx database/sql driver.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	_ "modernc.org/sqlite"             // registers "sqlite" driver for database/sql
)

// Dialect identifies the SQL backend behind a DB.
type Dialect string

const (
	// DialectSQLite is a single-file SQLite database.
	DialectSQLite Dialect = "sqlite"
	// DialectPostgres is a Postgres server reached through pgx.
	DialectPostgres Dialect = "postgres"
)

// sqliteBusyTimeoutMS is how long a SQLite statement waits on a locked
// database before failing with SQLITE_BUSY.
const sqliteBusyTimeoutMS = 5000

// DB is the single long-lived database handle shared by all request handlers.
// Queries are written with "?" placeholders; DB rebinds them for Postgres.
// It satisfies the repo package's db interface.
type DB struct {
	sql     *sql.DB
	dialect Dialect
}

// Open opens the database named by dsn and verifies it is reachable.
//
// A dsn starting with postgres:// or postgresql:// is handed to pgx.
// Anything else is a SQLite file path or file: URI. SQLite handles are capped
// at one open connection so every statement runs on the same connection.
func Open(ctx context.Context, dsn string) (*DB, error) {
	dialect := DialectFor(dsn)

	var (
		sqlDB *sql.DB
		err   error
	)
	switch dialect {
	case DialectPostgres:
		sqlDB, err = sql.Open("pgx", dsn)
	default:
		sqlDB, err = sql.Open("sqlite", sqliteDSN(dsn))
		if err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store.Open: ping: %w", err)
	}

	return &DB{sql: sqlDB, dialect: dialect}, nil
}

// DialectFor reports which backend Open would choose for dsn.
func DialectFor(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// sqliteDSN turns a bare file path into a modernc file: URI with a busy
// timeout. URIs the caller already spelled out are used verbatim.
func sqliteDSN(dsn string) string {
	if strings.HasPrefix(dsn, "file:") {
		return dsn
	}
	return "file:" + dsn + "?_pragma=busy_timeout(" + strconv.Itoa(sqliteBusyTimeoutMS) + ")"
}

// Dialect returns the backend this handle talks to.
func (d *DB) Dialect() Dialect {
	return d.dialect
}

// SQL exposes the underlying *sql.DB, e.g. for goose migrations.
func (d *DB) SQL() *sql.DB {
	return d.sql
}

// Ping verifies the database is still reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (d *DB) Close() error {
	return d.sql.Close()
}

// ExecContext runs a statement that returns no rows.
func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.sql.ExecContext(ctx, d.rebind(query), args...)
}

// QueryContext runs a statement that returns rows.
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.sql.QueryContext(ctx, d.rebind(query), args...)
}

// QueryRowContext runs a statement that returns at most one row.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.sql.QueryRowContext(ctx, d.rebind(query), args...)
}

func (d *DB) rebind(query string) string {
	if d.dialect != DialectPostgres {
		return query
	}
	return Rebind(query)
}

// Rebind rewrites "?" placeholders as Postgres ordinals ($1, $2, ...).
// Queries in this codebase never contain a literal "?", so no quoting rules
// are applied.
func Rebind(query string) string {
	n := strings.Count(query, "?")
	if n == 0 {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + n*2)
	i := 0
	for _, r := range query {
		if r == '?' {
			i++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(i))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
