package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const productsPath = "/products"

// ProductsClient implements platform.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{
		httpClient: httpClient,
	}
}

// Create implements platform.ProductsClient.Create.
func (c *ProductsClient) Create(ctx context.Context, request *platform.ProductCreateRequest) (*platform.Product, error) {
	return http.Post[*platform.ProductCreateRequest, *platform.Product](
		ctx, c.httpClient, productsPath, request, platform.ProductCreateSchema)
}

// Get implements platform.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, id string) (*platform.Product, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Get[*platform.Product](ctx, c.httpClient, resourcePath(productsPath, id), nil)
}

// List implements platform.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context, params *platform.ListParams) (*platform.PaginatedResult[platform.Product], error) {
	return listResource[platform.Product](ctx, c.httpClient, productsPath, params)
}

// Update implements platform.ProductsClient.Update. The product ID travels in
// the request body.
func (c *ProductsClient) Update(ctx context.Context, request *platform.ProductUpdateRequest) (*platform.Product, error) {
	return http.Patch[*platform.ProductUpdateRequest, *platform.Product](
		ctx, c.httpClient, productsPath, request, platform.ProductUpdateSchema)
}

// UpdateAvailability implements platform.ProductsClient.UpdateAvailability.
func (c *ProductsClient) UpdateAvailability(ctx context.Context, id string, available bool) (*platform.Product, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Patch[*platform.ProductAvailabilityRequest, *platform.Product](
		ctx, c.httpClient, resourcePath(productsPath, id, "availability"),
		&platform.ProductAvailabilityRequest{Available: available}, nil)
}

// Delete implements platform.ProductsClient.Delete.
func (c *ProductsClient) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireID("id", id); err != nil {
		return false, err
	}

	return deleteResource(ctx, c.httpClient, resourcePath(productsPath, id))
}
