package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const deploymentsPath = "/deployments"

// DeploymentsClient implements platform.DeploymentsClient.
type DeploymentsClient struct {
	httpClient *http.Client
}

// NewDeploymentsClient creates a new deployments client.
func NewDeploymentsClient(httpClient *http.Client) *DeploymentsClient {
	return &DeploymentsClient{
		httpClient: httpClient,
	}
}

// Create implements platform.DeploymentsClient.Create.
func (c *DeploymentsClient) Create(ctx context.Context, request *platform.DeploymentCreateRequest) (*platform.Deployment, error) {
	return http.Post[*platform.DeploymentCreateRequest, *platform.Deployment](
		ctx, c.httpClient, deploymentsPath, request, platform.DeploymentCreateSchema)
}

// Get implements platform.DeploymentsClient.Get.
func (c *DeploymentsClient) Get(ctx context.Context, id string) (*platform.Deployment, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Get[*platform.Deployment](ctx, c.httpClient, resourcePath(deploymentsPath, id), nil)
}

// List implements platform.DeploymentsClient.List.
func (c *DeploymentsClient) List(ctx context.Context, params *platform.ListParams) (*platform.PaginatedResult[platform.Deployment], error) {
	return listResource[platform.Deployment](ctx, c.httpClient, deploymentsPath, params)
}

// Update implements platform.DeploymentsClient.Update.
func (c *DeploymentsClient) Update(ctx context.Context, id string, request *platform.DeploymentUpdateRequest) (*platform.Deployment, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Patch[*platform.DeploymentUpdateRequest, *platform.Deployment](
		ctx, c.httpClient, resourcePath(deploymentsPath, id), request, platform.DeploymentUpdateSchema)
}

// Delete implements platform.DeploymentsClient.Delete.
func (c *DeploymentsClient) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireID("id", id); err != nil {
		return false, err
	}

	return deleteResource(ctx, c.httpClient, resourcePath(deploymentsPath, id))
}

// Activate implements platform.DeploymentsClient.Activate.
func (c *DeploymentsClient) Activate(ctx context.Context, id string) (*platform.Deployment, error) {
	return c.action(ctx, id, "activate")
}

// Deactivate implements platform.DeploymentsClient.Deactivate.
func (c *DeploymentsClient) Deactivate(ctx context.Context, id string) (*platform.Deployment, error) {
	return c.action(ctx, id, "deactivate")
}

// GetLogs implements platform.DeploymentsClient.GetLogs.
func (c *DeploymentsClient) GetLogs(ctx context.Context, id string, params *platform.ListParams) (*platform.PaginatedResult[platform.DeploymentLog], error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return listResource[platform.DeploymentLog](ctx, c.httpClient, resourcePath(deploymentsPath, id, "logs"), params)
}

func (c *DeploymentsClient) action(ctx context.Context, id, action string) (*platform.Deployment, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Post[any, *platform.Deployment](ctx, c.httpClient, resourcePath(deploymentsPath, id, action), nil, nil)
}
