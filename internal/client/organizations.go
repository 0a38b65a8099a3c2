package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const organizationsPath = "/organizations"

// OrganizationsClient implements platform.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *http.Client) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
	}
}

// Get implements platform.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context) (*platform.Organization, error) {
	return http.Get[*platform.Organization](ctx, c.httpClient, organizationsPath, nil)
}

// Update implements platform.OrganizationsClient.Update.
func (c *OrganizationsClient) Update(ctx context.Context, request *platform.OrganizationUpdateRequest) (*platform.Organization, error) {
	return http.Patch[*platform.OrganizationUpdateRequest, *platform.Organization](
		ctx, c.httpClient, organizationsPath, request, platform.OrganizationUpdateSchema)
}

// GetUsage implements platform.OrganizationsClient.GetUsage.
func (c *OrganizationsClient) GetUsage(ctx context.Context) (*platform.OrganizationUsage, error) {
	return http.Get[*platform.OrganizationUsage](ctx, c.httpClient, resourcePath(organizationsPath, "usage"), nil)
}
