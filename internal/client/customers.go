package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const customersPath = "/customers"

// CustomersClient implements platform.CustomersClient.
type CustomersClient struct {
	httpClient *http.Client
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
	}
}

// Create implements platform.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *platform.CustomerCreateRequest) (*platform.Customer, error) {
	return http.Post[*platform.CustomerCreateRequest, *platform.Customer](
		ctx, c.httpClient, customersPath, request, platform.CustomerCreateSchema)
}

// Get implements platform.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string) (*platform.Customer, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Get[*platform.Customer](ctx, c.httpClient, resourcePath(customersPath, id), nil)
}

// GetByPhone implements platform.CustomersClient.GetByPhone.
func (c *CustomersClient) GetByPhone(ctx context.Context, phone string) (*platform.Customer, error) {
	if err := requireID("phone", phone); err != nil {
		return nil, err
	}

	return http.Get[*platform.Customer](ctx, c.httpClient, resourcePath(customersPath, "phone", phone), nil)
}

// GetByEmail implements platform.CustomersClient.GetByEmail.
func (c *CustomersClient) GetByEmail(ctx context.Context, email string) (*platform.Customer, error) {
	if err := requireID("email", email); err != nil {
		return nil, err
	}

	return http.Get[*platform.Customer](ctx, c.httpClient, resourcePath(customersPath, "email", email), nil)
}

// List implements platform.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *platform.ListParams) (*platform.PaginatedResult[platform.Customer], error) {
	return listResource[platform.Customer](ctx, c.httpClient, customersPath, params)
}

// Update implements platform.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, request *platform.CustomerUpdateRequest) (*platform.Customer, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Patch[*platform.CustomerUpdateRequest, *platform.Customer](
		ctx, c.httpClient, resourcePath(customersPath, id), request, platform.CustomerUpdateSchema)
}

// Delete implements platform.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireID("id", id); err != nil {
		return false, err
	}

	return deleteResource(ctx, c.httpClient, resourcePath(customersPath, id))
}
