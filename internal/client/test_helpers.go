package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const testAPIKey = "pk_test_123"

// NewTestClient creates a client pointed at a test server.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&platform.Config{APIKey: testAPIKey, BaseURL: baseURL})
	require.NoError(t, err)

	return client
}

func writeEnvelope(t *testing.T, writer http.ResponseWriter, status int, data interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"success":  true,
		"data":     data,
		"metadata": map[string]interface{}{"timestamp": 1700000000, "version": "v1"},
	})
}

func writeError(t *testing.T, writer http.ResponseWriter, status int, code, message string) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"success": false,
		"error":   map[string]interface{}{"code": code, "message": message},
	})
}

// TestOperation is one resource call checked against a mock server.
type TestOperation struct {
	Name string
	// Call invokes the operation under test.
	Call func(ctx context.Context, client *Client) (interface{}, error)

	ExpectedMethod string
	ExpectedPath   string
	// ExpectedQuery is compared against the raw query when non-empty.
	ExpectedQuery string
	// ExpectedBody holds keys that must appear in the JSON request body.
	ExpectedBody map[string]interface{}
	// NoBody asserts that no request body was sent.
	NoBody bool

	StatusCode int
	Response   interface{}
	// ErrorCode makes the server reply with a failed envelope.
	ErrorCode string

	// NoRequest asserts that the call fails locally without reaching the
	// server.
	NoRequest bool
	WantKind  platform.ErrorKind
	WantCode  string
	Check     func(t *testing.T, result interface{})
}

// RunOperationTests runs a series of operation tests.
func RunOperationTests(t *testing.T, tests []TestOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			var requested atomic.Bool

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				requested.Store(true)

				assert.Equal(t, testCase.ExpectedMethod, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, testAPIKey, request.Header.Get("X-Platform-API-Key"))

				if testCase.ExpectedQuery != "" {
					assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)
				}

				body, _ := io.ReadAll(request.Body)

				if testCase.NoBody {
					assert.Empty(t, body)
				}

				if len(testCase.ExpectedBody) > 0 {
					var decoded map[string]interface{}

					assert.NoError(t, json.Unmarshal(body, &decoded))

					for key, want := range testCase.ExpectedBody {
						assert.Equal(t, want, decoded[key], "body field %s", key)
					}
				}

				status := testCase.StatusCode
				if status == 0 {
					status = http.StatusOK
				}

				if testCase.ErrorCode != "" {
					writeError(t, writer, status, testCase.ErrorCode, "request failed")

					return
				}

				writeEnvelope(t, writer, status, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			result, err := testCase.Call(context.Background(), client)

			if testCase.NoRequest {
				assert.False(t, requested.Load(), "request should not reach the server")
			}

			if testCase.WantKind != "" {
				require.Error(t, err)
				assert.Equal(t, testCase.WantKind, platform.KindOf(err))

				if testCase.WantCode != "" {
					var apiErr *platform.APIError
					require.ErrorAs(t, err, &apiErr)
					assert.Equal(t, testCase.WantCode, apiErr.Code)
				}

				return
			}

			require.NoError(t, err)

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}
