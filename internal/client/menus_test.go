package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestMenusClient(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []TestOperation{
		{
			Name: "create",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Menus().Create(ctx, &platform.MenuCreateRequest{
					ProjectID: "p1",
					Name:      "Dinner",
					Currency:  "USD",
					Sections:  []platform.MenuSection{{Name: "Mains", ProductIDs: []string{"prod-1"}}},
					Theme:     &platform.MenuTheme{PrimaryColor: "#1a2b3c"},
				})
			},
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/menus",
			ExpectedBody:   map[string]interface{}{"name": "Dinner", "currency": "USD"},
			Response:       map[string]interface{}{"id": "m1", "name": "Dinner", "status": "draft"},
		},
		{
			Name: "bad theme color fails locally",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Menus().Create(ctx, &platform.MenuCreateRequest{
					ProjectID: "p1",
					Name:      "Dinner",
					Theme:     &platform.MenuTheme{PrimaryColor: "blue-ish"},
				})
			},
			NoRequest: true,
			WantKind:  platform.KindValidation,
		},
		{
			Name: "list",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Menus().List(ctx, nil)
			},
			ExpectedMethod: http.MethodGet,
			ExpectedPath:   "/menus",
			Response: map[string]interface{}{
				"data": []map[string]interface{}{{"id": "m1"}, {"id": "m2"}},
				"meta": platform.NewPaginationMeta(1, 20, 2),
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				page, ok := result.(*platform.PaginatedResult[platform.Menu])
				require.True(t, ok)
				assert.Len(t, page.Data, 2)
				assert.Equal(t, 2, page.Meta.TotalCount)
				assert.False(t, page.Meta.HasNextPage)
			},
		},
		{
			Name: "update",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Menus().Update(ctx, "m1", &platform.MenuUpdateRequest{Name: platform.String("Late Dinner")})
			},
			ExpectedMethod: http.MethodPatch,
			ExpectedPath:   "/menus/m1",
			ExpectedBody:   map[string]interface{}{"name": "Late Dinner"},
			Response:       map[string]interface{}{"id": "m1", "name": "Late Dinner"},
		},
		{
			Name: "generate qr code with defaults",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Menus().GenerateQRCode(ctx, "m1", nil)
			},
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/menus/m1/qr-code",
			Response: map[string]interface{}{
				"menuUrl":   "https://menus.example.com/m1",
				"imageData": "iVBORw0KGgo=",
				"format":    "png",
			},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				code, ok := result.(*platform.QRCode)
				require.True(t, ok)
				assert.Equal(t, "png", code.Format)
				assert.NotEmpty(t, code.ImageData)
			},
		},
		{
			Name: "qr code size out of range",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Menus().GenerateQRCode(ctx, "m1", &platform.QRCodeRequest{Size: 10})
			},
			NoRequest: true,
			WantKind:  platform.KindValidation,
		},
		{
			Name: "publish sends no body",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Menus().Publish(ctx, "m1")
			},
			ExpectedMethod: http.MethodPost,
			ExpectedPath:   "/menus/m1/publish",
			NoBody:         true,
			Response:       map[string]interface{}{"id": "m1", "status": "published"},
			Check: func(t *testing.T, result interface{}) {
				t.Helper()

				menu, ok := result.(*platform.Menu)
				require.True(t, ok)
				assert.Equal(t, platform.MenuStatusPublished, menu.Status)
			},
		},
		{
			Name: "delete",
			Call: func(ctx context.Context, c *Client) (interface{}, error) {
				return c.Menus().Delete(ctx, "m1")
			},
			ExpectedMethod: http.MethodDelete,
			ExpectedPath:   "/menus/m1",
		},
	})
}
