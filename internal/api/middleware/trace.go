// Package middleware provides HTTP middleware applied across the router.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/parlo-app/parlo-api/internal/api/shared"
	"github.com/parlo-app/parlo-api/internal/platform/logger"
)

// Trace returns middleware that assigns each request a trace ID and
// stores a trace-annotated logger in the request context. Handlers and
// services that read the context logger then emit the trace ID on every
// entry for that request. Apply it before any middleware that logs.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
