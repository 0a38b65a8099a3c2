package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProjectsClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name: "create",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Projects().Create(ctx, &platform.ProjectCreateRequest{
					Name: "Downtown",
					Type: platform.ProjectTypeRestaurant,
				})
			},
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/projects",
			ExpectedBody:   map[string]interface{}{"name": "Downtown", "type": "restaurant"},
			StatusCode:     http.StatusCreated,
			Response:       map[string]interface{}{"id": "p1", "name": "Downtown", "type": "restaurant", "status": "active"},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				project, ok := result.(*platform.Project)
				require.True(t, ok)
				assert.Equal(t, "p1", project.ID)
				assert.Equal(t, platform.ProjectStatusActive, project.Status)
			},
		},
		{
			Name: "create without name fails locally",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Projects().Create(ctx, &platform.ProjectCreateRequest{Type: platform.ProjectTypeRetail})
			},
			NoRequest: true,
			WantKind:  platform.KindValidation,
		},
		{
			Name: "get escapes the id",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Projects().Get(ctx, "p/1")
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/projects/p%2F1",
			Response:       map[string]interface{}{"id": "p/1"},
		},
		{
			Name: "get with empty id fails locally",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Projects().Get(ctx, " ")
			},
			NoRequest: true,
			WantKind:  platform.KindValidation,
		},
		{
			Name: "list sends only supplied params",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Projects().List(ctx, platform.NewListParams().WithPage(2).WithPageSize(10))
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/projects",
			ExpectedQuery:  "page=2&pageSize=10",
			Response: map[string]interface{}{
				"data": []map[string]interface{}{{"id": "p1"}, {"id": "p2"}},
				"meta": platform.NewPaginationMeta(2, 10, 12),
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				page, ok := result.(*platform.PaginatedResult[platform.Project])
				require.True(t, ok)
				assert.Len(t, page.Data, 2)
				assert.Equal(t, 2, page.Meta.TotalPages)
				assert.False(t, page.Meta.HasNextPage)
				assert.True(t, page.Meta.HasPreviousPage)
				assert.True(t, page.Meta.Consistent())
			},
		},
		{
			Name: "update sends id in body to base path",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				status := platform.ProjectStatusPaused

				return c.Projects().Update(ctx, &platform.ProjectUpdateRequest{ID: "p1", Status: &status})
			},
			ExpectedMethod: http.MethodPatch,
			ExpectedPath:   "/projects",
			ExpectedBody:   map[string]interface{}{"id": "p1", "status": "paused"},
			Response:       map[string]interface{}{"id": "p1", "status": "paused"},
		},
		{
			Name: "update without id fails locally",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Projects().Update(ctx, &platform.ProjectUpdateRequest{Name: platform.String("x")})
			},
			NoRequest: true,
			WantKind:  platform.KindValidation,
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Projects().Delete(ctx, "p1")
			},
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/projects/p1",
			Response:       true,
			Check: func(t *testing.T, result interface{}) {
				t.Helper()
				assert.Equal(t, true, result)
			},
		},
	})
}

func TestProjectsClient_DeleteNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodDelete, request.Method)
		assert.Equal(t, "/projects/p1", request.URL.Path)
		writeError(t, writer, http.StatusNotFound, "NOT_FOUND", "Project not found")
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	deleted, err := client.Projects().Delete(context.Background(), "p1")
	require.Error(t, err)
	assert.False(t, deleted)

	apiErr, ok := err.(*platform.APIError) //nolint:errorlint // resource errors are returned unwrapped
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Project not found", apiErr.Message)
	assert.True(t, platform.IsNotFound(err))
}

func TestProjectsClient_DeleteNoContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	deleted, err := client.Projects().Delete(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestProjectsClient_FetchAllPages(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		page := request.URL.Query().Get("page")

		data := []map[string]interface{}{{"id": "p" + page}}
		meta := platform.NewPaginationMeta(1, 1, 3)

		switch page {
		case "2":
			meta = platform.NewPaginationMeta(2, 1, 3)
		case "3":
			meta = platform.NewPaginationMeta(3, 1, 3)
		}

		writeEnvelope(t, writer, http.StatusOK, map[string]interface{}{"data": data, "meta": meta})
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	projects, err := platform.FetchAllPages(context.Background(), client.Projects().List, platform.NewListParams().WithPageSize(1), 0)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "p3", projects[2].ID)
}
