package platform_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

func TestZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := platform.NewZerologLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	logger.Debug("hidden", nil)
	logger.Info("HTTP Response", map[string]interface{}{"status": 200, "request_id": "req-1"})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "HTTP Response", entry["message"])
	assert.InDelta(t, 200, entry["status"], 0)
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestConsoleLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := platform.NewConsoleLogger(&buf, zerolog.WarnLevel)

	logger.Info("quiet", nil)
	logger.Warn("slow response", map[string]interface{}{"duration_ms": 4200})
	logger.Error("HTTP Request Failed", map[string]interface{}{"code": "TIMEOUT"})

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "slow response")
	assert.Contains(t, out, "duration_ms=4200")
	assert.Contains(t, out, "code=TIMEOUT")
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	var logger platform.Logger = platform.NopLogger{}

	assert.NotPanics(t, func() {
		logger.Debug("x", nil)
		logger.Info("x", map[string]interface{}{"a": 1})
		logger.Warn("x", nil)
		logger.Error("x", nil)
	})
}
