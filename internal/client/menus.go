package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const menusPath = "/menus"

// MenusClient implements platform.MenusClient.
type MenusClient struct {
	httpClient *http.Client
}

// NewMenusClient creates a new menus client.
func NewMenusClient(httpClient *http.Client) *MenusClient {
	return &MenusClient{
		httpClient: httpClient,
	}
}

// Create implements platform.MenusClient.Create.
func (c *MenusClient) Create(ctx context.Context, request *platform.MenuCreateRequest) (*platform.Menu, error) {
	return http.Post[*platform.MenuCreateRequest, *platform.Menu](
		ctx, c.httpClient, menusPath, request, platform.MenuCreateSchema)
}

// Get implements platform.MenusClient.Get.
func (c *MenusClient) Get(ctx context.Context, id string) (*platform.Menu, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Get[*platform.Menu](ctx, c.httpClient, resourcePath(menusPath, id), nil)
}

// List implements platform.MenusClient.List.
func (c *MenusClient) List(ctx context.Context, params *platform.ListParams) (*platform.PaginatedResult[platform.Menu], error) {
	return listResource[platform.Menu](ctx, c.httpClient, menusPath, params)
}

// Update implements platform.MenusClient.Update.
func (c *MenusClient) Update(ctx context.Context, id string, request *platform.MenuUpdateRequest) (*platform.Menu, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Patch[*platform.MenuUpdateRequest, *platform.Menu](
		ctx, c.httpClient, resourcePath(menusPath, id), request, platform.MenuUpdateSchema)
}

// Delete implements platform.MenusClient.Delete.
func (c *MenusClient) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireID("id", id); err != nil {
		return false, err
	}

	return deleteResource(ctx, c.httpClient, resourcePath(menusPath, id))
}

// GenerateQRCode implements platform.MenusClient.GenerateQRCode. A nil
// request uses the server defaults.
func (c *MenusClient) GenerateQRCode(ctx context.Context, id string, request *platform.QRCodeRequest) (*platform.QRCode, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	if request == nil {
		request = &platform.QRCodeRequest{}
	}

	return http.Post[*platform.QRCodeRequest, *platform.QRCode](
		ctx, c.httpClient, resourcePath(menusPath, id, "qr-code"), request, platform.QRCodeSchema)
}

// Publish implements platform.MenusClient.Publish.
func (c *MenusClient) Publish(ctx context.Context, id string) (*platform.Menu, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Post[any, *platform.Menu](ctx, c.httpClient, resourcePath(menusPath, id, "publish"), nil, nil)
}
