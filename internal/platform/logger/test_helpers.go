package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LogCapture records JSON log output so tests can inspect individual entries.
// It is safe for concurrent writers.
type LogCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *LogCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *LogCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Entries decodes every captured record, failing t on malformed output.
func (c *LogCapture) Entries(t testing.TB) []map[string]any {
	t.Helper()

	dec := json.NewDecoder(bytes.NewBufferString(c.String()))
	var entries []map[string]any
	for {
		var entry map[string]any
		err := dec.Decode(&entry)
		if errors.Is(err, io.EOF) {
			return entries
		}
		require.NoError(t, err, "captured log output is not JSON")
		entries = append(entries, entry)
	}
}

// AssertField checks that at least one captured record has key set to want.
// Numbers decode as float64.
func (c *LogCapture) AssertField(t testing.TB, key string, want any) {
	t.Helper()

	for _, entry := range c.Entries(t) {
		if got, ok := entry[key]; ok && got == want {
			return
		}
	}
	assert.Failf(t, "log field not found", "no entry has %s=%v\n%s", key, want, c.String())
}

// NewTestLogger returns a debug-level JSON logger that writes into a fresh
// LogCapture.
func NewTestLogger(t testing.TB) (*slog.Logger, *LogCapture) {
	t.Helper()

	capture := &LogCapture{}
	return slog.New(slog.NewJSONHandler(capture, &slog.HandlerOptions{Level: slog.LevelDebug})), capture
}
