package repomanager

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/blogql/internal/logging"
	"github.com/pressly/goose/v3"
)

// gooseLogger routes goose output into the server's structured log.
type gooseLogger struct {
	ctx    context.Context
	logger logging.Logger
}

var _ goose.Logger = (*gooseLogger)(nil)

func newGooseLogger(ctx context.Context, logger logging.Logger) goose.Logger {
	if logger == nil {
		return goose.NopLogger()
	}
	return &gooseLogger{ctx: ctx, logger: logger.With("component", "migrations")}
}

func (g *gooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Error(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
