package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Platform endpoint defaults.
const (
	// DefaultBaseURL is the production Platform API endpoint.
	DefaultBaseURL = "https://api.platform.com"

	// DefaultHTTPTimeout is the default timeout for a single request.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "platform-client-go/1.0"
)

// Header names.
const (
	// HeaderAPIKey carries the configured API key on every request.
	HeaderAPIKey = "X-Platform-API-Key"

	// HeaderRequestID carries a per-request identifier.
	HeaderRequestID = "X-Request-Id"

	// HeaderAccept is the standard Accept header.
	HeaderAccept = "Accept"

	// HeaderContentType is the standard Content-Type header.
	HeaderContentType = "Content-Type"

	// HeaderUserAgent is the standard User-Agent header.
	HeaderUserAgent = "User-Agent"

	// ContentTypeJSON is the media type for every request and response body.
	ContentTypeJSON = "application/json"
)

// Error codes produced by the client itself rather than the platform.
const (
	// ErrorCodeUnknown is used when a failed response carries no structured error.
	ErrorCodeUnknown = "UNKNOWN_ERROR"

	// ErrorCodeInvalidResponse is used when a 2xx body cannot be decoded.
	ErrorCodeInvalidResponse = "INVALID_RESPONSE"

	// NetworkCodeTimeout marks a request that exceeded its deadline.
	NetworkCodeTimeout = "TIMEOUT"

	// NetworkCodeCanceled marks a request whose context was canceled.
	NetworkCodeCanceled = "CANCELED"

	// NetworkCodeConnection marks any other failure to obtain a response.
	NetworkCodeConnection = "CONNECTION_FAILED"

	// NetworkCodeAborted marks a request stopped by a request interceptor.
	NetworkCodeAborted = "REQUEST_ABORTED"
)

// Platform error codes with dedicated helpers.
const (
	// PlatformCodeNotFound is returned for missing resources.
	PlatformCodeNotFound = "NOT_FOUND"

	// PlatformCodeUnauthorized is returned for a missing or invalid API key.
	PlatformCodeUnauthorized = "UNAUTHORIZED"

	// PlatformCodeForbidden is returned when the key lacks permission.
	PlatformCodeForbidden = "FORBIDDEN"

	// PlatformCodeValidation is returned when the server rejects a payload.
	PlatformCodeValidation = "VALIDATION_ERROR"

	// PlatformCodeConflict is returned for conflicting writes.
	PlatformCodeConflict = "CONFLICT"

	// PlatformCodeRateLimited is returned when the key is throttled.
	PlatformCodeRateLimited = "RATE_LIMITED"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the page size the CLI requests when none is given.
	DefaultPageSize = 20

	// MaxPageSize is the largest page size the platform accepts.
	MaxPageSize = 100

	// DefaultMaxPages caps FetchAllPages when the caller passes zero.
	DefaultMaxPages = 50
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// None is used when no value is present.
	None = "none"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// DateTimeFormat is used for table output.
	DateTimeFormat = "2006-01-02 15:04"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// YAMLIndentSize is the indent used when encoding YAML.
	YAMLIndentSize = 2
)

// CLI configuration.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".platform"

	// ConfigFileName is the CLI config file name without extension.
	ConfigFileName = "config"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "PLATFORM"
)
