package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/boardgame-api/internal/api/shared"
	"github.com/phrazzld/boardgame-api/internal/platform/logger"
)

// Trace assigns each request a trace ID and a request-scoped logger.
// A well-formed X-Trace-Id from the caller is reused; anything else is
// replaced. The ID is echoed back in the response header.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(shared.TraceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = shared.NewTraceID()
			}

			log := base.With(slog.String("trace_id", traceID))
			ctx := shared.WithTraceID(r.Context(), traceID)
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
