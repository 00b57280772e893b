package graphql

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/blogql/internal/common"
)

// resolverError is what clients see in the "errors" array: the user-facing
// message plus extensions.code.
type resolverError struct {
	message string
	kind    common.Kind
}

func (e *resolverError) Error() string {
	return e.message
}

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.kind.String()}
}

// fail converts a service error into a resolverError, recording and logging
// it on the way. Internal causes are logged but never returned.
func (r *Resolver) fail(ctx context.Context, operation string, err error) error {
	kind := common.KindOf(err)
	r.metrics.ResolverError(operation, kind.String())

	detail := err.Error()
	var ce *common.Error
	if errors.As(err, &ce) {
		detail = ce.Detail()
	}

	if kind == common.KindInternal {
		r.logger.Error(ctx, "resolver failed", "operation", operation, "error", detail)
		return &resolverError{message: common.ErrorInternal.Message, kind: kind}
	}

	r.logger.Info(ctx, "resolver rejected request", "operation", operation, "kind", kind.String(), "error", detail)
	return &resolverError{message: err.Error(), kind: kind}
}
