package platform

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/fivetwenty-io/platform-client/internal/constants"
)

// Config represents client configuration for building a platform.Client.
//
// A Config is read once by platformclient.New and copied. Changing it after
// construction has no effect on an existing client.
type Config struct {
	// APIKey is required. It is sent in the X-Platform-API-Key header on every
	// request.
	APIKey string

	// BaseURL is the API endpoint. Defaults to the production platform URL.
	// A missing scheme is normalized to https and a trailing slash is trimmed.
	BaseURL string

	// Timeout bounds every request, including reading the response body.
	// Defaults to 30s. Exceeding it yields a *NetworkError with code TIMEOUT.
	Timeout time.Duration

	// Logger receives transport logs. Nil disables logging.
	Logger Logger

	// Debug enables request/response logging at debug level.
	Debug bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// RequestInterceptors run in order before every request is sent.
	RequestInterceptors []RequestInterceptor

	// ResponseInterceptors run in order after every attempt, including
	// attempts that produced no response.
	ResponseInterceptors []ResponseInterceptor

	// Metrics, when set, records Prometheus metrics for every call.
	Metrics *Metrics
}

// envConfig mirrors the subset of Config that can be set from the environment.
type envConfig struct {
	APIKey    string        `envconfig:"API_KEY"`
	BaseURL   string        `envconfig:"BASE_URL"`
	Timeout   time.Duration `envconfig:"TIMEOUT"`
	Debug     bool          `envconfig:"DEBUG"`
	UserAgent string        `envconfig:"USER_AGENT"`
}

// LoadConfigFromEnv reads PLATFORM_API_KEY, PLATFORM_BASE_URL,
// PLATFORM_TIMEOUT, PLATFORM_DEBUG and PLATFORM_USER_AGENT.
// Unparseable values yield a *ConfigurationError. Missing values are left
// empty so that defaults apply.
func LoadConfigFromEnv() (*Config, error) {
	var env envConfig

	err := envconfig.Process(constants.EnvPrefix, &env)
	if err != nil {
		return nil, NewConfigurationError("", "parsing environment: "+err.Error(), err)
	}

	return &Config{
		APIKey:    env.APIKey,
		BaseURL:   env.BaseURL,
		Timeout:   env.Timeout,
		Debug:     env.Debug,
		UserAgent: env.UserAgent,
	}, nil
}

// Normalize returns a copy of the config with defaults applied and the base
// URL normalized. It fails with a *ConfigurationError when the result is not
// usable.
func (c Config) Normalize() (Config, error) {
	c.APIKey = strings.TrimSpace(c.APIKey)
	if c.APIKey == "" {
		return c, NewConfigurationError("APIKey", "API key is required", ErrAPIKeyRequired)
	}

	if c.Timeout < 0 {
		return c, NewConfigurationError("Timeout", fmt.Sprintf("timeout must not be negative, got %s", c.Timeout), ErrNegativeTimeout)
	}

	if c.Timeout == 0 {
		c.Timeout = constants.DefaultHTTPTimeout
	}

	baseURL, err := normalizeBaseURL(c.BaseURL)
	if err != nil {
		return c, err
	}

	c.BaseURL = baseURL

	if c.UserAgent == "" {
		c.UserAgent = constants.DefaultUserAgent
	}

	if c.Logger == nil {
		c.Logger = NopLogger{}
	}

	// Own the interceptor slices so the caller cannot mutate them later.
	c.RequestInterceptors = append([]RequestInterceptor(nil), c.RequestInterceptors...)
	c.ResponseInterceptors = append([]ResponseInterceptor(nil), c.ResponseInterceptors...)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	baseURL := strings.TrimSpace(raw)
	if baseURL == "" {
		return constants.DefaultBaseURL, nil
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", NewConfigurationError("BaseURL", fmt.Sprintf("invalid base URL %q: %v", raw, err), ErrInvalidBaseURL)
	}

	if parsed.Host == "" {
		return "", NewConfigurationError("BaseURL", fmt.Sprintf("invalid base URL %q: no host", raw), ErrInvalidBaseURL)
	}

	return baseURL, nil
}
