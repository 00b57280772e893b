package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// PoolOptions sizes the connection pool. Zero values keep the database/sql
// defaults.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

// Open creates the pool for driver ("pgx" or "sqlite") and fails fast when the
// database cannot be reached.
//
// SQLite connections are opened with foreign keys enforced. An in-memory
// SQLite database lives only as long as its connection, so the pool is held
// to a single connection that is never recycled.
func Open(ctx context.Context, driver, dsn string, opts PoolOptions) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
	case DriverSQLite:
		if isMemorySQLite(dsn) {
			opts.MaxOpenConns = 1
			opts.ConnMaxLifetime = 0
		}
		dsn = sqliteDSN(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}

// sqliteDSN appends the pragma that makes every pooled connection enforce
// foreign keys.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func isMemorySQLite(dsn string) bool {
	name, query, _ := strings.Cut(dsn, "?")
	switch {
	case name == "", name == ":memory:", name == "file::memory:":
		return true
	case strings.Contains(query, "mode=memory"):
		return true
	}
	return false
}
