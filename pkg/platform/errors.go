package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/platform-client/internal/constants"
)

// ErrorKind identifies one of the four failure classes of the client.
type ErrorKind string

// Error kinds.
const (
	KindConfiguration ErrorKind = "configuration"
	KindValidation    ErrorKind = "validation"
	KindAPI           ErrorKind = "api"
	KindNetwork       ErrorKind = "network"
)

// Error is implemented by every error the client returns.
type Error interface {
	error
	Kind() ErrorKind
}

// BaseError carries the fields shared by every error kind.
type BaseError struct {
	Message string
	// Details is an optional structured payload. For *APIError it holds the
	// raw JSON of the platform's error details.
	Details any
}

// ConfigurationError reports an invalid client setup. It is only returned
// while constructing a client.
type ConfigurationError struct {
	BaseError
	// Field names the offending Config field, when known.
	Field string
	Err   error
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(field, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		BaseError: BaseError{Message: message},
		Field:     field,
		Err:       err,
	}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// Kind implements Error.
func (e *ConfigurationError) Kind() ErrorKind { return KindConfiguration }

// Unwrap returns the sentinel describing the problem.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// ValidationIssue is a single failed check on a payload.
type ValidationIssue struct {
	// Field is the dotted JSON path of the field, empty for the whole payload.
	Field  string `json:"field"  yaml:"field"`
	Reason string `json:"reason" yaml:"reason"`
}

// String renders the issue as "field: reason".
func (i ValidationIssue) String() string {
	if i.Field == "" {
		return i.Reason
	}

	return i.Field + ": " + i.Reason
}

// ValidationError reports a payload rejected locally, before any request was
// sent.
type ValidationError struct {
	BaseError
	Issues []ValidationIssue
}

// NewValidationError creates a validation error from a list of issues.
func NewValidationError(issues []ValidationIssue) *ValidationError {
	return &ValidationError{
		BaseError: BaseError{Message: "validation failed", Details: issues},
		Issues:    issues,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}

	return e.Message + ": " + strings.Join(parts, "; ")
}

// Kind implements Error.
func (e *ValidationError) Kind() ErrorKind { return KindValidation }

// APIError reports an operation the platform rejected.
type APIError struct {
	BaseError
	// StatusCode is the HTTP status, zero when not applicable.
	StatusCode int
	// Code is the machine-readable platform error code.
	Code string
	// RequestID is the X-Request-Id of the failed call.
	RequestID string
}

// NewAPIError creates an API error. Details may be nil.
func NewAPIError(statusCode int, code, message string, details json.RawMessage) *APIError {
	apiErr := &APIError{
		BaseError:  BaseError{Message: message},
		StatusCode: statusCode,
		Code:       code,
	}

	if !IsNullJSON(details) {
		apiErr.Details = details
	}

	return apiErr
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("api error %s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

// Kind implements Error.
func (e *APIError) Kind() ErrorKind { return KindAPI }

// Is matches sentinel API errors by code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}

	return t.Code != "" && t.Code == e.Code
}

// DecodeDetails unmarshals the structured details into v.
func (e *APIError) DecodeDetails(v any) error {
	raw, ok := e.Details.(json.RawMessage)
	if !ok || IsNullJSON(raw) {
		return ErrNoErrorDetails
	}

	err := json.Unmarshal(raw, v)
	if err != nil {
		return fmt.Errorf("decoding error details: %w", err)
	}

	return nil
}

// NetworkError reports an operation that never received a response.
type NetworkError struct {
	BaseError
	// Code distinguishes timeouts from other connectivity failures.
	Code string
	Err  error
}

// NewNetworkError creates a network error wrapping the underlying cause.
func NewNetworkError(code, message string, err error) *NetworkError {
	return &NetworkError{
		BaseError: BaseError{Message: message},
		Code:      code,
		Err:       err,
	}
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Code == "" {
		return "network error: " + e.Message
	}

	return fmt.Sprintf("network error (%s): %s", e.Code, e.Message)
}

// Kind implements Error.
func (e *NetworkError) Kind() ErrorKind { return KindNetwork }

// Unwrap returns the underlying transport failure.
func (e *NetworkError) Unwrap() error { return e.Err }

// Is matches sentinel network errors by code.
func (e *NetworkError) Is(target error) bool {
	t, ok := target.(*NetworkError)
	if !ok {
		return false
	}

	return t.Code != "" && t.Code == e.Code
}

// Common error types.
var (
	ErrNotFound           = &APIError{Code: constants.PlatformCodeNotFound}
	ErrUnauthorized       = &APIError{Code: constants.PlatformCodeUnauthorized}
	ErrForbidden          = &APIError{Code: constants.PlatformCodeForbidden}
	ErrValidationRejected = &APIError{Code: constants.PlatformCodeValidation}
	ErrConflict           = &APIError{Code: constants.PlatformCodeConflict}
	ErrRateLimited        = &APIError{Code: constants.PlatformCodeRateLimited}
	ErrTimeout            = &NetworkError{Code: constants.NetworkCodeTimeout}
	ErrCanceled           = &NetworkError{Code: constants.NetworkCodeCanceled}
)

// Common static errors that can be wrapped with context.
var (
	ErrAPIKeyRequired  = errors.New("API key is required")
	ErrInvalidBaseURL  = errors.New("base URL must be an absolute http(s) URL")
	ErrNegativeTimeout = errors.New("timeout must not be negative")
	ErrNoErrorDetails  = errors.New("error carries no details")
	ErrNoMoreItems     = errors.New("no more items")
)

// KindOf returns the kind of the first platform error in err's chain, or ""
// when there is none.
func KindOf(err error) ErrorKind {
	var platformErr Error
	if errors.As(err, &platformErr) {
		return platformErr.Kind()
	}

	return ""
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsTimeout checks if the error is a request timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsValidationRejected checks if the server rejected the payload. Unlike
// IsValidation, the request was sent.
func IsValidationRejected(err error) bool {
	return errors.Is(err, ErrValidationRejected)
}

// IsValidation checks if the error was raised by local payload validation.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
