package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const projectsPath = "/projects"

// ProjectsClient implements platform.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// Create implements platform.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *platform.ProjectCreateRequest) (*platform.Project, error) {
	return http.Post[*platform.ProjectCreateRequest, *platform.Project](
		ctx, c.httpClient, projectsPath, request, platform.ProjectCreateSchema)
}

// Get implements platform.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id string) (*platform.Project, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Get[*platform.Project](ctx, c.httpClient, resourcePath(projectsPath, id), nil)
}

// List implements platform.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, params *platform.ListParams) (*platform.PaginatedResult[platform.Project], error) {
	return listResource[platform.Project](ctx, c.httpClient, projectsPath, params)
}

// Update implements platform.ProjectsClient.Update. The project ID travels in
// the request body, not the path.
func (c *ProjectsClient) Update(ctx context.Context, request *platform.ProjectUpdateRequest) (*platform.Project, error) {
	return http.Patch[*platform.ProjectUpdateRequest, *platform.Project](
		ctx, c.httpClient, projectsPath, request, platform.ProjectUpdateSchema)
}

// Delete implements platform.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireID("id", id); err != nil {
		return false, err
	}

	return deleteResource(ctx, c.httpClient, resourcePath(projectsPath, id))
}
