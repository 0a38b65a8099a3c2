package platformclient

import (
	"github.com/fivetwenty-io/platform-client/internal/client"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// New creates a Platform API client. The config is validated and copied;
// invalid settings yield a *platform.ConfigurationError.
func New(config *platform.Config) (platform.Client, error) {
	c, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewWithAPIKey creates a client for the default endpoint using only an API
// key.
func NewWithAPIKey(apiKey string) (platform.Client, error) {
	return New(&platform.Config{APIKey: apiKey})
}

// NewFromEnv creates a client from the PLATFORM_* environment variables.
// Options, when given, are applied to the loaded config before the client is
// built.
func NewFromEnv(options ...func(*platform.Config)) (platform.Client, error) {
	config, err := platform.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	for _, option := range options {
		option(config)
	}

	return New(config)
}
