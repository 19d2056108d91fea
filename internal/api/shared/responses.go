package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/boardgame-api/internal/platform/logger"
	"github.com/phrazzld/boardgame-api/internal/redact"
)

// ResponseOption customizes an error response.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
	detail          string
	missingFields   []string
}

// WithElevatedLogLevel raises a 4xx response to WARN level instead of the
// default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// WithDetail sets the envelope's error field. Callers decide whether the
// detail is safe to expose; it is redacted regardless.
func WithDetail(detail string) ResponseOption {
	return func(opts *responseOptions) {
		opts.detail = redact.String(detail)
	}
}

// WithMissingFields lists the required fields a submission lacked.
func WithMissingFields(fields []string) ResponseOption {
	return func(opts *responseOptions) {
		opts.missingFields = fields
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes a success envelope.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondWithList writes a success envelope carrying a collection and its size.
func RespondWithList(w http.ResponseWriter, r *http.Request, message string, data any, count int) {
	RespondWithJSON(w, r, http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

// RespondWithError writes a failure envelope with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string, opts ...ResponseOption) {
	RespondWithErrorAndLog(w, r, status, message, nil, opts...)
}

// RespondWithErrorAndLog writes a failure envelope and logs the underlying
// error, redacted, with the request's logger.
//
// Log levels: 5xx at ERROR, 4xx at DEBUG unless elevated to WARN.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	var o responseOptions
	for _, opt := range opts {
		opt(&o)
	}

	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", message),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)),
		)
	}

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case o.elevateLogLevel && status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	log.LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithJSON(w, r, status, Envelope{
		Success:       false,
		Message:       message,
		Error:         o.detail,
		MissingFields: o.missingFields,
		TraceID:       traceID,
	})
}
