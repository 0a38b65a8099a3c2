package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const ordersPath = "/orders"

// OrdersClient implements platform.OrdersClient.
type OrdersClient struct {
	httpClient *http.Client
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(httpClient *http.Client) *OrdersClient {
	return &OrdersClient{
		httpClient: httpClient,
	}
}

// Create implements platform.OrdersClient.Create.
func (c *OrdersClient) Create(ctx context.Context, request *platform.OrderCreateRequest) (*platform.Order, error) {
	return http.Post[*platform.OrderCreateRequest, *platform.Order](
		ctx, c.httpClient, ordersPath, request, platform.OrderCreateSchema)
}

// Get implements platform.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id string) (*platform.Order, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Get[*platform.Order](ctx, c.httpClient, resourcePath(ordersPath, id), nil)
}

// List implements platform.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, params *platform.ListParams) (*platform.PaginatedResult[platform.Order], error) {
	return listResource[platform.Order](ctx, c.httpClient, ordersPath, params)
}

// Update implements platform.OrdersClient.Update. The order ID travels in the
// request body.
func (c *OrdersClient) Update(ctx context.Context, request *platform.OrderUpdateRequest) (*platform.Order, error) {
	return http.Patch[*platform.OrderUpdateRequest, *platform.Order](
		ctx, c.httpClient, ordersPath, request, platform.OrderUpdateSchema)
}

// UpdateStatus implements platform.OrdersClient.UpdateStatus.
func (c *OrdersClient) UpdateStatus(ctx context.Context, id string, status platform.OrderStatus) (*platform.Order, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Patch[*platform.StatusUpdateRequest, *platform.Order](
		ctx, c.httpClient, resourcePath(ordersPath, id, "status"),
		&platform.StatusUpdateRequest{Status: string(status)}, platform.OrderStatusSchema)
}

// Cancel implements platform.OrdersClient.Cancel.
func (c *OrdersClient) Cancel(ctx context.Context, id string, reason string) (*platform.Order, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Post[*platform.CancelRequest, *platform.Order](
		ctx, c.httpClient, resourcePath(ordersPath, id, "cancel"), &platform.CancelRequest{Reason: reason}, platform.CancelSchema)
}

// Delete implements platform.OrdersClient.Delete.
func (c *OrdersClient) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireID("id", id); err != nil {
		return false, err
	}

	return deleteResource(ctx, c.httpClient, resourcePath(ordersPath, id))
}
