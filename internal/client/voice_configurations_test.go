package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

func voiceRequest() *platform.VoiceConfigurationRequest {
	return &platform.VoiceConfigurationRequest{
		VoiceID:  "aria",
		Language: "en-US",
		Speed:    1,
		BusinessHours: []platform.BusinessHours{
			{Day: "monday", Open: "09:00", Close: "17:00"},
			{Day: "sunday", Closed: true},
		},
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestVoiceConfigurationsClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name: "get",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.VoiceConfigurations().Get(ctx, "p1")
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/projects/p1/voice-configuration",
			Response:       map[string]interface{}{"projectId": "p1", "voiceId": "aria", "speed": 1.0},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				config, ok := result.(*platform.VoiceConfiguration)
				require.True(t, ok)
				assert.Equal(t, "aria", config.VoiceID)
			},
		},
		{
			Name: "update",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.VoiceConfigurations().Update(ctx, "p1", voiceRequest())
			},
			ExpectedMethod: http.MethodPut,
			ExpectedPath:   "/projects/p1/voice-configuration",
			ExpectedBody:   map[string]interface{}{"voiceId": "aria", "speed": float64(1)},
			Response:       map[string]interface{}{"projectId": "p1", "voiceId": "aria"},
		},
		{
			Name: "speed out of range",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				req := voiceRequest()
				req.Speed = 3

				return c.VoiceConfigurations().Update(ctx, "p1", req)
			},
			NoRequest: true,
			WantKind:  platform.KindValidation,
		},
		{
			Name: "closing before opening",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				req := voiceRequest()
				req.BusinessHours[0].Close = "08:00"

				return c.VoiceConfigurations().Update(ctx, "p1", req)
			},
			NoRequest: true,
			WantKind:  platform.KindValidation,
		},
		{
			Name: "reset",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.VoiceConfigurations().Reset(ctx, "p1")
			},
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/projects/p1/voice-configuration",
		},
		{
			Name: "list voices",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.VoiceConfigurations().ListVoices(ctx)
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/voices",
			Response: []map[string]interface{}{
				{"id": "aria", "name": "Aria", "language": "en-US"},
				{"id": "luca", "name": "Luca", "language": "it-IT"},
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				voices, ok := result.([]platform.Voice)
				require.True(t, ok)
				assert.Len(t, voices, 2)
			},
		},
	})
}
