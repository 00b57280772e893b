// Package server initializes and runs the blog API server.
// It opens the database pool, bootstraps the schema, wires the services into
// the GraphQL endpoint and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/blogql/internal/dbx"
	"github.com/dmitrijs2005/blogql/internal/logging"
	"github.com/dmitrijs2005/blogql/internal/server/config"
	"github.com/dmitrijs2005/blogql/internal/server/metrics"
	"github.com/dmitrijs2005/blogql/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogql/internal/server/services"

	gs "github.com/dmitrijs2005/blogql/internal/server/graphql"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *gs.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := dbx.Open(ctx, c.DatabaseDriver, c.DatabaseDSN, dbx.PoolOptions{
		MaxOpenConns:    c.DatabaseMaxOpenConns,
		MaxIdleConns:    c.DatabaseMaxIdleConns,
		ConnMaxLifetime: c.DatabaseConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := newApp(ctx, c, logger, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB) (*App, error) {

	rm, err := repomanager.NewSQLRepositoryManager(c.DatabaseDriver, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if c.RunMigrations {
		if err := rm.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	m := metrics.New()

	resolver := gs.NewResolver(
		services.NewUserService(db, rm, c),
		services.NewPostService(db, rm),
		services.NewImageService(c),
		logger,
		m,
	)

	srv, err := gs.NewServer(gs.Options{
		Address:         c.EndpointAddrHTTP,
		SecretKey:       c.SecretKey,
		ShutdownTimeout: c.ShutdownTimeout,
	}, logger, resolver, db, m)
	if err != nil {
		return nil, fmt.Errorf("graphql schema error: %w", err)
	}

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or the
// server fails, then closes the database pool.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
