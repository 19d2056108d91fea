package logger_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/boardgame-api/internal/config"
	"github.com/phrazzld/boardgame-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupWithWriter_FiltersByLevel(t *testing.T) {
	restoreDefault(t)

	buf := &logger.LogCapture{}
	cfg := config.ServerConfig{LogLevel: "warn", Port: 8080, Environment: config.EnvTest}

	l, err := logger.SetupWithWriter(cfg, buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("info message")
	l.Warn("warn message")
	slog.Error("default logger message")

	out := buf.String()
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "default logger message", "Setup should install the logger as default")
	buf.AssertField(t, "environment", "test")
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		want   slog.Level
		wantOK bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug, wantOK: true},
		{name: "info", input: "info", want: slog.LevelInfo, wantOK: true},
		{name: "warn", input: "warn", want: slog.LevelWarn, wantOK: true},
		{name: "error", input: "error", want: slog.LevelError, wantOK: true},
		{name: "case insensitive", input: "DEBUG", want: slog.LevelDebug, wantOK: true},
		{name: "unknown falls back to info", input: "verbose", want: slog.LevelInfo, wantOK: false},
		{name: "empty falls back to info", input: "", want: slog.LevelInfo, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger, _ := logger.NewTestLogger(t)

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//nolint:staticcheck // nil context is part of the contract
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Same(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("stores_logger", func(t *testing.T) {
		customLogger, buf := logger.NewTestLogger(t)
		ctx := logger.WithLogger(context.Background(), customLogger)

		logger.FromContext(ctx).Info("from context", slog.String("component", "test"))
		assert.True(t, strings.Contains(buf.String(), "from context"))
		buf.AssertField(t, "component", "test")
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}
