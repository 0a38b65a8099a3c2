package platform_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

type recordedLog struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	entries []recordedLog
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, recordedLog{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	var executionOrder []string

	chain := platform.NewInterceptorChain([]platform.RequestInterceptor{
		func(_ context.Context, _ *platform.Request) error {
			executionOrder = append(executionOrder, "first")

			return nil
		},
		func(_ context.Context, _ *platform.Request) error {
			executionOrder = append(executionOrder, "second")

			return nil
		},
	}, nil)

	req := &platform.Request{Method: http.MethodGet, Path: "/projects"}

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_RequestInterceptorError(t *testing.T) {
	t.Parallel()

	denied := errors.New("denied")
	called := false

	chain := platform.NewInterceptorChain([]platform.RequestInterceptor{
		func(context.Context, *platform.Request) error { return denied },
		func(context.Context, *platform.Request) error {
			called = true

			return nil
		},
	}, nil)

	err := chain.ExecuteRequestInterceptors(context.Background(), &platform.Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, denied)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	var seen []int

	chain := platform.NewInterceptorChain(nil, []platform.ResponseInterceptor{
		func(_ context.Context, _ *platform.Request, resp *platform.Response) {
			seen = append(seen, resp.StatusCode)
		},
		func(_ context.Context, _ *platform.Request, resp *platform.Response) {
			seen = append(seen, resp.StatusCode*2)
		},
	})

	chain.ExecuteResponseInterceptors(context.Background(), &platform.Request{}, &platform.Response{StatusCode: 200})
	assert.Equal(t, []int{200, 400}, seen)
}

func TestInterceptorChain_IsImmutable(t *testing.T) {
	t.Parallel()

	var calls []string

	interceptors := []platform.RequestInterceptor{
		func(context.Context, *platform.Request) error {
			calls = append(calls, "original")

			return nil
		},
	}

	chain := platform.NewInterceptorChain(interceptors, nil)
	interceptors[0] = func(context.Context, *platform.Request) error {
		calls = append(calls, "replaced")

		return nil
	}

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &platform.Request{}))
	assert.Equal(t, []string{"original"}, calls)
}

func TestAPIKeyInterceptor(t *testing.T) {
	t.Parallel()

	req := &platform.Request{}
	require.NoError(t, platform.APIKeyInterceptor("pk_live_1")(context.Background(), req))
	assert.Equal(t, "pk_live_1", req.Headers.Get("X-Platform-API-Key"))

	req.Headers.Set("X-Platform-API-Key", "tampered")
	require.NoError(t, platform.APIKeyInterceptor("pk_live_1")(context.Background(), req))
	assert.Equal(t, "pk_live_1", req.Headers.Get("X-Platform-API-Key"))
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	req := &platform.Request{}
	interceptor := platform.HeaderInterceptor(map[string]string{
		"X-Tenant":  "acme",
		"X-Channel": "voice",
	})

	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "acme", req.Headers.Get("X-Tenant"))
	assert.Equal(t, "voice", req.Headers.Get("X-Channel"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &platform.Request{Method: http.MethodPost, Path: "/orders"}

	require.NoError(t, platform.LoggingInterceptor(logger)(context.Background(), req))

	platform.LoggingResponseInterceptor(logger)(context.Background(), req, &platform.Response{
		StatusCode: 201,
		Duration:   150 * time.Millisecond,
	})
	platform.LoggingResponseInterceptor(logger)(context.Background(), req, &platform.Response{
		Error: errors.New("connection reset"),
	})

	require.Len(t, logger.entries, 3)

	assert.Equal(t, "debug", logger.entries[0].level)
	assert.Equal(t, "API Request", logger.entries[0].msg)
	assert.Equal(t, "/orders", logger.entries[0].fields["path"])

	assert.Equal(t, "debug", logger.entries[1].level)
	assert.Equal(t, 201, logger.entries[1].fields["status_code"])
	assert.Equal(t, int64(150), logger.entries[1].fields["duration_ms"])

	assert.Equal(t, "error", logger.entries[2].level)
	assert.Equal(t, "API Response Error", logger.entries[2].msg)
	assert.Equal(t, "connection reset", logger.entries[2].fields["error"])
}
