package pagetable

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := newTestHandler(t, WithMiddlewares(Logging(logger)))

	serve(h, "/editor/3", "HX-Request", "true")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "navigate", entry["msg"])
	assert.Equal(t, "editor", entry["route"])
	assert.Equal(t, "/editor/3", entry["path"])
	assert.Equal(t, "htmx", entry["kind"])
	assert.EqualValues(t, http.StatusOK, entry["status"])

	buf.Reset()
	serve(h, "/missing")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "not_found", entry["route"])
	assert.Equal(t, "full", entry["kind"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
}
