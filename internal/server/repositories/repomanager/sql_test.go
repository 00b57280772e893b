package repomanager

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blogql/internal/dbx"
	"github.com/dmitrijs2005/blogql/internal/logging"
	"github.com/dmitrijs2005/blogql/internal/server/models"
	"github.com/dmitrijs2005/blogql/internal/server/repositories/posts"
	"github.com/dmitrijs2005/blogql/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewSQLRepositoryManager(t *testing.T) {
	for _, driver := range []string{dbx.DriverPostgres, dbx.DriverSQLite} {
		m, err := NewSQLRepositoryManager(driver, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", driver, err)
		}
		var _ RepositoryManager = m
	}

	if _, err := NewSQLRepositoryManager("mysql", nil); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := &SQLRepositoryManager{}

	if u := m.Users(db); u == nil {
		t.Fatal("Users() nil")
	}
	if p := m.Posts(db); p == nil {
		t.Fatal("Posts() nil")
	}

	var _ users.Repository = m.Users(db)
	var _ posts.Repository = m.Posts(db)
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	var gotDir string
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m, err := NewSQLRepositoryManager(dbx.DriverPostgres, nil)
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(context.Background(), db))
	assert.Equal(t, "postgres", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m, err := NewSQLRepositoryManager(dbx.DriverSQLite, nil)
	require.NoError(t, err)
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

// Applies the embedded sqlite schema for real and exercises both repositories
// against it.
func TestRunMigrations_SQLite(t *testing.T) {
	ctx := context.Background()

	db, err := dbx.Open(ctx, dbx.DriverSQLite, filepath.Join(t.TempDir(), "blog.db"), dbx.PoolOptions{MaxOpenConns: 1})
	require.NoError(t, err)
	defer db.Close()

	m, err := NewSQLRepositoryManager(dbx.DriverSQLite, nil)
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(ctx, db))
	// Applying twice is a no-op.
	require.NoError(t, m.RunMigrations(ctx, db))

	u, err := m.Users(db).Create(ctx, &models.User{FirstName: "A", LastName: "B", Email: "a@b.c", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = m.Users(db).Create(ctx, &models.User{FirstName: "A", LastName: "B", Email: "a@b.c", PasswordHash: "h"})
	assert.Error(t, err, "email must be unique")

	p, err := m.Posts(db).Create(ctx, &models.BlogPost{Title: "T", Description: "D", UserID: u.ID})
	require.NoError(t, err)
	assert.Nil(t, p.ImageURL)

	list, err := m.Posts(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestRunMigrations_LogsThroughLogger(t *testing.T) {
	ctx := context.Background()

	db, err := dbx.Open(ctx, dbx.DriverSQLite, filepath.Join(t.TempDir(), "blog.db"), dbx.PoolOptions{})
	require.NoError(t, err)
	defer db.Close()

	var buf bytes.Buffer
	m, err := NewSQLRepositoryManager(dbx.DriverSQLite, logging.NewJSONLogger(&buf, "info"))
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(ctx, db))

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec struct {
			Msg       string `json:"msg"`
			Component string `json:"component"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &rec), "line %q", line)
		assert.Equal(t, "migrations", rec.Component)
		msgs = append(msgs, rec.Msg)
	}

	applied := false
	for _, msg := range msgs {
		if strings.HasPrefix(msg, "OK") && strings.Contains(msg, "00001_init.sql") {
			applied = true
		}
	}
	assert.True(t, applied, "migration line missing from %q", msgs)
}
