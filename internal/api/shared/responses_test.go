package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/boardgame-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]any{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
}

func TestRespondWithJSON_EncodingFailure(t *testing.T) {
	log, logBuf := logger.NewTestLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestRespondWithSuccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/games", nil)
	w := httptest.NewRecorder()

	RespondWithSuccess(w, req, http.StatusCreated, "Game created successfully", CreatedData{ID: "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t,
		`{"success":true,"message":"Game created successfully","data":{"id":"abc"}}`,
		w.Body.String())
}

func TestRespondWithList(t *testing.T) {
	t.Run("empty collection still reports count and data", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/games", nil)
		w := httptest.NewRecorder()

		RespondWithList(w, req, "Games retrieved successfully", []string{}, 0)

		assert.JSONEq(t,
			`{"success":true,"message":"Games retrieved successfully","count":0,"data":[]}`,
			w.Body.String())
	})

	t.Run("populated collection", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/games", nil)
		w := httptest.NewRecorder()

		RespondWithList(w, req, "Games retrieved successfully", []string{"a", "b"}, 2)

		body := decodeEnvelope(t, w)
		assert.Equal(t, float64(2), body["count"])
		assert.Len(t, body["data"], 2)
	})
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req = req.WithContext(WithTraceID(req.Context(), "trace-1"))
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Missing required fields",
		WithMissingFields([]string{"email", "username"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"success": false,
		"message": "Missing required fields",
		"missingFields": ["email", "username"],
		"traceId": "trace-1"
	}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		opts          []ResponseOption
		expectedLevel string
	}{
		{
			name:          "server error logs at error",
			status:        http.StatusInternalServerError,
			expectedLevel: "ERROR",
		},
		{
			name:          "client error logs at debug",
			status:        http.StatusNotFound,
			expectedLevel: "DEBUG",
		},
		{
			name:          "elevated client error logs at warn",
			status:        http.StatusUnauthorized,
			opts:          []ResponseOption{WithElevatedLogLevel()},
			expectedLevel: "WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, logBuf := logger.NewTestLogger(t)
			req := httptest.NewRequest(http.MethodGet, "/games/1", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tt.status, "Error retrieving game",
				errors.New("dial postgres://app:hunter2@db:5432/boardgames failed"), tt.opts...)

			assert.Equal(t, tt.status, w.Code)
			logBuf.AssertField(t, "level", tt.expectedLevel)
			logBuf.AssertField(t, "status_code", float64(tt.status))
			assert.NotContains(t, logBuf.String(), "hunter2")
			assert.Contains(t, logBuf.String(), "[REDACTED_CREDENTIAL]")
		})
	}
}

func TestWithDetail(t *testing.T) {
	t.Run("detail is redacted before it reaches the client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()

		RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Error retrieving users",
			errors.New("boom"), WithDetail("open /var/lib/boardgames/data.db: permission denied"))

		body := decodeEnvelope(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "open [REDACTED_PATH]: permission denied", body["error"])
	})

	t.Run("no detail omits the error field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		w := httptest.NewRecorder()

		RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "Error retrieving users",
			errors.New("boom"))

		body := decodeEnvelope(t, w)
		_, present := body["error"]
		assert.False(t, present)
	})
}
