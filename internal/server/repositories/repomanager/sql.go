// Package repomanager provides a concrete RepositoryManager for the supported
// SQL databases, wiring together repository constructors and the bootstrap
// schema (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/blogql/internal/dbx"
	"github.com/dmitrijs2005/blogql/internal/logging"
	"github.com/dmitrijs2005/blogql/internal/server/migrations"
	"github.com/dmitrijs2005/blogql/internal/server/repositories/posts"
	"github.com/dmitrijs2005/blogql/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// dialect maps a database/sql driver name to its goose dialect and the
// directory of embedded migrations written for it.
type dialect struct {
	goose string
	dir   string
}

var dialects = map[string]dialect{
	dbx.DriverPostgres: {goose: "postgres", dir: "postgres"},
	dbx.DriverSQLite:   {goose: "sqlite3", dir: "sqlite"},
}

// SQLRepositoryManager vends SQL-backed repository implementations and
// exposes a schema bootstrap hook.
type SQLRepositoryManager struct {
	dialect dialect
	logger  logging.Logger
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

// Posts returns a posts.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Posts(db dbx.DBTX) posts.Repository {
	return posts.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations for the manager's
// dialect and applies them to db. Goose output goes to the manager's logger.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(newGooseLogger(ctx, m.logger))
	if err := goose.SetDialect(m.dialect.goose); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, m.dialect.dir); err != nil {
		return err
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for the given
// database/sql driver name. A nil logger silences migration output.
func NewSQLRepositoryManager(driver string, logger logging.Logger) (RepositoryManager, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	return &SQLRepositoryManager{dialect: d, logger: logger}, nil
}
