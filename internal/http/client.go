// Package http is the single transport shared by every resource client. It
// authenticates requests, runs interceptors, unwraps the response envelope
// and maps every failure onto the platform error taxonomy.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// Request is a call made through the transport.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the outcome of a call that reached the server.
type Response struct {
	StatusCode int
	Headers    http.Header
	// Body is the raw response body.
	Body []byte
	// Data is the unwrapped envelope data. It is nil for empty or null data.
	Data      json.RawMessage
	Metadata  *platform.ResponseMetadata
	RequestID string
}

// Client performs HTTP calls against the Platform API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
	logger     platform.Logger
	debug      bool
	userAgent  string
	metrics    *platform.Metrics
	chain      *platform.InterceptorChain

	requestInterceptors  []platform.RequestInterceptor
	responseInterceptors []platform.ResponseInterceptor
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger platform.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is left as
// given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithRequestInterceptors appends request interceptors.
func WithRequestInterceptors(interceptors ...platform.RequestInterceptor) Option {
	return func(c *Client) {
		c.requestInterceptors = append(c.requestInterceptors, interceptors...)
	}
}

// WithResponseInterceptors appends response interceptors.
func WithResponseInterceptors(interceptors ...platform.ResponseInterceptor) Option {
	return func(c *Client) {
		c.responseInterceptors = append(c.responseInterceptors, interceptors...)
	}
}

// WithMetrics records Prometheus metrics for every call.
func WithMetrics(metrics *platform.Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// NewClient creates a transport. Exactly one attempt is made per call.
func NewClient(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = timeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: retryClient,
		logger:     platform.NopLogger{},
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	responseInterceptors := client.responseInterceptors
	if client.metrics != nil {
		responseInterceptors = append(responseInterceptors, client.metrics.ResponseInterceptor())
	}

	// The API key interceptor runs last so earlier interceptors cannot drop it.
	client.chain = platform.NewInterceptorChain(
		append(client.requestInterceptors, platform.APIKeyInterceptor(apiKey)),
		responseInterceptors,
	)

	return client
}

func noRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// Do executes a request and unwraps the response envelope.
//
// On an API failure both the response and an *platform.APIError are
// returned. When no response was received the response is nil and the error
// is a *platform.NetworkError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.do(ctx, req)
	if err != nil {
		c.metrics.ObserveError(err)
	}

	return resp, err
}

func (c *Client) do(ctx context.Context, req *Request) (*Response, error) {
	var body []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, platform.NewValidationError([]platform.ValidationIssue{{
				Reason: "request body could not be encoded: " + err.Error(),
			}})
		}

		body = encoded
	}

	requestID := uuid.NewString()

	intercepted := &platform.Request{
		Method:   req.Method,
		Path:     req.Path,
		Query:    req.Query,
		Headers:  c.defaultHeaders(requestID, body != nil),
		Body:     body,
		Metadata: map[string]interface{}{"request_id": requestID},
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err := c.chain.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, platform.NewNetworkError(constants.NetworkCodeAborted, err.Error(), err)
	}

	httpReq, err := c.buildRequest(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":     intercepted.Method,
			"url":        httpReq.URL.String(),
			"request_id": intercepted.Headers.Get(constants.HeaderRequestID),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		netErr := c.networkError(ctx, err)
		c.finish(ctx, intercepted, &platform.Response{Duration: time.Since(start), Error: netErr})

		return nil, netErr
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		netErr := c.networkError(ctx, err)
		c.finish(ctx, intercepted, &platform.Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Duration:   time.Since(start),
			Error:      netErr,
		})

		return nil, netErr
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		RequestID:  requestIDOf(httpResp.Header, intercepted.Headers),
	}

	apiErr := resp.unwrap()

	observed := &platform.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Duration:   time.Since(start),
	}
	if apiErr != nil {
		observed.Error = apiErr
	}

	c.finish(ctx, intercepted, observed)

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

func (c *Client) defaultHeaders(requestID string, hasBody bool) http.Header {
	headers := make(http.Header)
	headers.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	headers.Set(constants.HeaderUserAgent, c.userAgent)
	headers.Set(constants.HeaderRequestID, requestID)
	headers.Set(constants.HeaderAPIKey, c.apiKey)

	if hasBody {
		headers.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	return headers
}

func (c *Client) buildRequest(ctx context.Context, req *platform.Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body interface{}
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, platform.NewConfigurationError("BaseURL", fmt.Sprintf("building %s %s: %v", req.Method, req.Path, err), err)
	}

	httpReq.Header = req.Headers.Clone()
	// Set again after interceptors and cloning; the key must always be sent.
	httpReq.Header.Set(constants.HeaderAPIKey, c.apiKey)

	return httpReq, nil
}

// finish runs the response interceptors and logs the outcome.
func (c *Client) finish(ctx context.Context, req *platform.Request, resp *platform.Response) {
	c.chain.ExecuteResponseInterceptors(ctx, req, resp)

	fields := map[string]interface{}{
		"method":      req.Method,
		"path":        req.Path,
		"status_code": resp.StatusCode,
		"duration_ms": resp.Duration.Milliseconds(),
		"request_id":  req.Headers.Get(constants.HeaderRequestID),
	}

	if resp.Error != nil {
		fields["error"] = resp.Error.Error()
		c.logger.Error("HTTP Request Failed", fields)

		return
	}

	if c.debug {
		c.logger.Debug("HTTP Response", fields)
	}
}

// unwrap decodes the envelope into Data and Metadata, or returns the API
// error the response represents.
func (r *Response) unwrap() *platform.APIError {
	if r.StatusCode < 200 || r.StatusCode >= 300 {
		return r.apiError(parseErrorEnvelope(r.StatusCode, r.Body))
	}

	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}

	var envelope struct {
		platform.Envelope

		Success *bool `json:"success"`
	}

	err := json.Unmarshal(r.Body, &envelope)
	if err != nil {
		return r.apiError(platform.NewAPIError(r.StatusCode, constants.ErrorCodeInvalidResponse,
			"response body is not a valid envelope: "+err.Error(), nil))
	}

	if envelope.Success == nil {
		return r.apiError(platform.NewAPIError(r.StatusCode, constants.ErrorCodeInvalidResponse,
			"response body has no success flag", nil))
	}

	if !*envelope.Success {
		return r.apiError(parseErrorEnvelope(r.StatusCode, r.Body))
	}

	if !platform.IsNullJSON(envelope.Data) {
		r.Data = envelope.Data
	}

	r.Metadata = envelope.Metadata

	return nil
}

func (r *Response) apiError(apiErr *platform.APIError) *platform.APIError {
	apiErr.RequestID = r.RequestID

	return apiErr
}

// parseErrorEnvelope builds the API error for a failed response. Bodies that
// do not carry a structured error fall back to UNKNOWN_ERROR.
func parseErrorEnvelope(statusCode int, body []byte) *platform.APIError {
	fallback := fmt.Sprintf("Request failed with status %d", statusCode)

	var envelope platform.Envelope

	err := json.Unmarshal(body, &envelope)
	if err != nil || envelope.Success || !envelope.Error.Structured() {
		return platform.NewAPIError(statusCode, constants.ErrorCodeUnknown, fallback, nil)
	}

	code := envelope.Error.Code
	if code == "" {
		code = constants.ErrorCodeUnknown
	}

	message := envelope.Error.Message
	if message == "" {
		message = fallback
	}

	return platform.NewAPIError(statusCode, code, message, envelope.Error.Details)
}

func (c *Client) networkError(ctx context.Context, err error) *platform.NetworkError {
	switch {
	case isTimeout(err):
		return platform.NewNetworkError(constants.NetworkCodeTimeout, "Request timeout", err)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return platform.NewNetworkError(constants.NetworkCodeCanceled, "Request canceled", err)
	default:
		return platform.NewNetworkError(constants.NetworkCodeConnection, err.Error(), err)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}

func requestIDOf(responseHeaders, requestHeaders http.Header) string {
	if id := responseHeaders.Get(constants.HeaderRequestID); id != "" {
		return id
	}

	return requestHeaders.Get(constants.HeaderRequestID)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
