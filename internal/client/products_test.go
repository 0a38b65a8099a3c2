package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProductsClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name: "create keeps decimal precision",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Products().Create(ctx, &platform.ProductCreateRequest{
					ProjectID: "p1",
					Name:      "Margherita",
					Price:     decimal.RequireFromString("12.5"),
					Currency:  "EUR",
				})
			},
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/products",
			ExpectedBody:   map[string]interface{}{"name": "Margherita", "price": "12.5"},
			Response:       map[string]interface{}{"id": "prod-1", "name": "Margherita", "price": "12.50", "available": true},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				product, ok := result.(*platform.Product)
				require.True(t, ok)
				assert.Equal(t, "12.5", product.Price.String())
				assert.True(t, product.Available)
			},
		},
		{
			Name: "negative price fails locally",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Products().Create(ctx, &platform.ProductCreateRequest{
					ProjectID: "p1",
					Name:      "Refund",
					Price:     decimal.NewFromInt(-1),
				})
			},
			NoRequest: true,
			WantKind:  platform.KindValidation,
		},
		{
			Name: "numeric price from server",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Products().Get(ctx, "prod-1")
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/products/prod-1",
			Response:       map[string]interface{}{"id": "prod-1", "price": 3.1},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				product, ok := result.(*platform.Product)
				require.True(t, ok)
				assert.True(t, product.Price.Equal(decimal.RequireFromString("3.1")))
			},
		},
		{
			Name: "update with id in body",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				price := decimal.RequireFromString("9.99")

				return c.Products().Update(ctx, &platform.ProductUpdateRequest{ID: "prod-1", Price: &price})
			},
			ExpectedMethod: http.MethodPatch,
			ExpectedPath:   "/products",
			ExpectedBody:   map[string]interface{}{"id": "prod-1", "price": "9.99"},
			Response:       map[string]interface{}{"id": "prod-1", "price": "9.99"},
		},
		{
			Name: "update with negative price fails locally",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				price := decimal.RequireFromString("-0.01")

				return c.Products().Update(ctx, &platform.ProductUpdateRequest{ID: "prod-1", Price: &price})
			},
			NoRequest: true,
			WantKind:  platform.KindValidation,
		},
		{
			Name: "update availability",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Products().UpdateAvailability(ctx, "prod-1", false)
			},
			ExpectedMethod: http.MethodPatch,
			ExpectedPath:   "/products/prod-1/availability",
			ExpectedBody:   map[string]interface{}{"available": false},
			Response:       map[string]interface{}{"id": "prod-1", "available": false},
		},
		{
			Name: "list by category",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Products().List(ctx, platform.NewListParams().WithFilter("category", "pizza"))
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/products",
			ExpectedQuery:  "category=pizza",
			Response:       map[string]interface{}{"data": []interface{}{}, "meta": platform.NewPaginationMeta(1, 20, 0)},
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Products().Delete(ctx, "prod-1")
			},
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/products/prod-1",
		},
	})
}
