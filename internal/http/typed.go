package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// Get performs a GET and decodes the envelope data into T.
func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var zero T

	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return zero, err
	}

	return Decode[T](resp)
}

// Post validates body against schema, then performs a POST and decodes the
// envelope data into TRes. A nil schema skips validation.
func Post[TReq, TRes any](ctx context.Context, c *Client, path string, body TReq, schema platform.Validator[TReq]) (TRes, error) {
	return send[TReq, TRes](ctx, c, http.MethodPost, path, body, schema)
}

// Put validates body against schema, then performs a PUT and decodes the
// envelope data into TRes.
func Put[TReq, TRes any](ctx context.Context, c *Client, path string, body TReq, schema platform.Validator[TReq]) (TRes, error) {
	return send[TReq, TRes](ctx, c, http.MethodPut, path, body, schema)
}

// Patch validates body against schema, then performs a PATCH and decodes the
// envelope data into TRes.
func Patch[TReq, TRes any](ctx context.Context, c *Client, path string, body TReq, schema platform.Validator[TReq]) (TRes, error) {
	return send[TReq, TRes](ctx, c, http.MethodPatch, path, body, schema)
}

// Delete performs a DELETE and decodes the envelope data into T.
func Delete[T any](ctx context.Context, c *Client, path string) (T, error) {
	var zero T

	resp, err := c.Delete(ctx, path)
	if err != nil {
		return zero, err
	}

	return Decode[T](resp)
}

func send[TReq, TRes any](ctx context.Context, c *Client, method, path string, body TReq, schema platform.Validator[TReq]) (TRes, error) {
	var zero TRes

	if schema != nil {
		issues := schema.Validate(body)
		if len(issues) > 0 {
			return zero, platform.NewValidationError(issues)
		}
	}

	// An untyped nil body (TReq = any) sends no body at all.
	var payload interface{} = body

	resp, err := c.Do(ctx, &Request{Method: method, Path: path, Body: payload})
	if err != nil {
		return zero, err
	}

	return Decode[TRes](resp)
}

// Decode unmarshals the envelope data of resp into T. Null or absent data
// yields the zero value of T.
func Decode[T any](resp *Response) (T, error) {
	var out T

	if resp == nil || platform.IsNullJSON(resp.Data) {
		return out, nil
	}

	err := json.Unmarshal(resp.Data, &out)
	if err != nil {
		apiErr := platform.NewAPIError(resp.StatusCode, constants.ErrorCodeInvalidResponse,
			"response data could not be decoded: "+err.Error(), nil)
		apiErr.RequestID = resp.RequestID

		return out, apiErr
	}

	return out, nil
}
