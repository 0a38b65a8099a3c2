package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// segmentEscaper encodes the sub-delimiters url.PathEscape keeps, so phone
// numbers and emails survive servers that decode paths like form values.
var segmentEscaper = strings.NewReplacer(
	"+", "%2B",
	"@", "%40",
	"$", "%24",
	"&", "%26",
	"=", "%3D",
	":", "%3A",
)

// escapeSegment percent-encodes one path segment as a URI component.
func escapeSegment(segment string) string {
	return segmentEscaper.Replace(url.PathEscape(segment))
}

// resourcePath joins a base path and escaped path segments.
func resourcePath(base string, segments ...string) string {
	var builder strings.Builder

	builder.WriteString(base)

	for _, segment := range segments {
		builder.WriteString("/")
		builder.WriteString(escapeSegment(segment))
	}

	return builder.String()
}

// requireID rejects an empty identifier before any request is sent.
func requireID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return platform.NewValidationError([]platform.ValidationIssue{{Field: field, Reason: "is required"}})
	}

	return nil
}

// listResource fetches one page of a collection.
func listResource[T any](ctx context.Context, httpClient *http.Client, path string, params *platform.ListParams) (*platform.PaginatedResult[T], error) {
	result, err := http.Get[*platform.PaginatedResult[T]](ctx, httpClient, path, params.ToValues())
	if err != nil {
		return nil, err
	}

	if result == nil {
		return &platform.PaginatedResult[T]{Data: []T{}}, nil
	}

	return result, nil
}

// deleteResource performs a DELETE. The platform answers with a boolean or
// with no data at all; both mean the entity is gone.
func deleteResource(ctx context.Context, httpClient *http.Client, path string) (bool, error) {
	deleted, err := http.Delete[*bool](ctx, httpClient, path)
	if err != nil {
		return false, err
	}

	if deleted == nil {
		return true, nil
	}

	return *deleted, nil
}
