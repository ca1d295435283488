package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/armoury-api/internal/api/shared"
	"github.com/phrazzld/armoury-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and response headers.
// An incoming X-Trace-ID is reused when it is a valid UUID.
// It should be applied early in the middleware chain so that subsequent
// handlers log with the trace ID attached.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming := r.Header.Get(shared.TraceIDHeader); incoming != "" {
				if _, err := uuid.Parse(incoming); err == nil {
					ctx = shared.WithTraceID(ctx, incoming)
				}
			}
			if shared.GetTraceID(ctx) == "" {
				ctx = shared.SetTraceID(ctx)
			}
			traceID := shared.GetTraceID(ctx)
			w.Header().Set(shared.TraceIDHeader, traceID)

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
