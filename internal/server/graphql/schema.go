package graphql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/dmitrijs2005/blogql/internal/logging"
	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

// panicLogger routes resolver panics recovered by the engine to the server log.
type panicLogger struct {
	logger logging.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.logger.Error(ctx, "graphql resolver panic", "panic", fmt.Sprint(value))
}

// ParseSchema binds the embedded schema to r. It fails when a schema field
// has no matching resolver method.
func ParseSchema(r *Resolver, logger logging.Logger) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, r,
		graphql.Logger(panicLogger{logger: logger}),
	)
}
