// Package graphql serves the blog API over HTTP: POST /graphql for the
// GraphQL schema plus /healthz and /metrics.
package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogql/internal/logging"
	"github.com/dmitrijs2005/blogql/internal/server/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	healthCheckTimeout     = 2 * time.Second
)

type Options struct {
	Address         string
	SecretKey       string
	ShutdownTimeout time.Duration
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	address         string
	jwtSecret       []byte
	shutdownTimeout time.Duration
	logger          logging.Logger
	schema          *graphql.Schema
	db              Pinger
	metrics         *metrics.Metrics
}

func NewServer(opts Options, l logging.Logger, r *Resolver, db Pinger, m *metrics.Metrics) (*Server, error) {
	logger := l.With("module", "http_server")

	schema, err := ParseSchema(r, logger)
	if err != nil {
		return nil, err
	}

	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &Server{
		address:         opts.Address,
		jwtSecret:       []byte(opts.SecretKey),
		shutdownTimeout: timeout,
		logger:          logger,
		schema:          schema,
		db:              db,
		metrics:         m,
	}, nil
}

// Routes builds the HTTP handler tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(s.metrics.Middleware)

	r.With(s.accessTokenMiddleware).Method(http.MethodPost, "/graphql", &relay.Handler{Schema: s.schema})
	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status, body := http.StatusOK, "ok"
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn(ctx, "health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, "unavailable"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": body})
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
