package graphql

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogql/internal/common"
	"github.com/dmitrijs2005/blogql/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// accessTokenMiddleware attaches the caller's identity to the request
// context. It never rejects a request: a missing, malformed or expired token
// yields an anonymous identity and the resolvers decide what that allows.
func (s *Server) accessTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		identity := auth.Anonymous()

		if header := r.Header.Get(common.AuthorizationHeaderName); header != "" {
			userID, err := auth.GetUserIDFromToken(bearerToken(header), s.jwtSecret)
			if err != nil {
				s.logger.Debug(ctx, "ignoring access token", "error", err)
			} else {
				identity = auth.NewIdentity(userID)
			}
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(ctx, identity)))
	})
}

// bearerToken strips an optional "Bearer " scheme, matched case-insensitively.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if n := len(common.BearerPrefix); len(header) >= n && strings.EqualFold(header[:n], common.BearerPrefix) {
		header = header[n:]
	}
	return strings.TrimSpace(header)
}

// requestLogger tags every request with an id (taken from X-Request-ID when
// the client sends one) and logs it once it completes.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		s.logger.Info(r.Context(), "request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
