package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "prod"},
		Short:   "Manage products",
		Long:    "List and inspect products, and toggle whether they can be ordered",
	}

	cmd.AddCommand(createListCommand(ListConfig[platform.Product]{
		Use:   "list",
		Short: "List products",
		Noun:  "products",
		Filters: []filterFlag{
			{Flag: "project", Param: "projectId", Usage: "filter by project ID"},
			{Flag: "category", Param: "category", Usage: "filter by category"},
			{Flag: "available", Param: "available", Usage: "filter by availability (true, false)"},
		},
		Lister: func(client platform.Client, _ []string) platform.Lister[platform.Product] {
			return client.Products().List
		},
		Headers: []string{"ID", "Name", "Category", "Price", "Available"},
		Row: func(product platform.Product) []string {
			return []string{
				product.ID,
				product.Name,
				valueOr(product.Category, constants.None),
				formatMoney(product.Price, product.Currency),
				formatBool(product.Available),
			}
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[platform.Product]{
		Use:   "get PRODUCT_ID",
		Short: "Show product details",
		Noun:  "product",
		Get: func(ctx context.Context, client platform.Client, id string) (*platform.Product, error) {
			return client.Products().Get(ctx, id)
		},
		Details: productRows,
	}))
	cmd.AddCommand(newProductAvailabilityCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:   "delete PRODUCT_ID",
		Short: "Delete a product",
		Noun:  "product",
		Verb:  "delete",
		Delete: func(ctx context.Context, client platform.Client, id string) (bool, error) {
			return client.Products().Delete(ctx, id)
		},
	}))

	return cmd
}

func productRows(product *platform.Product) []detailRow {
	allergens := constants.None
	if len(product.Allergens) > 0 {
		allergens = strings.Join(product.Allergens, ", ")
	}

	return []detailRow{
		{"ID", product.ID},
		{"Name", product.Name},
		{"Description", valueOr(product.Description, constants.None)},
		{"Category", valueOr(product.Category, constants.None)},
		{"Price", formatMoney(product.Price, product.Currency)},
		{"Available", formatBool(product.Available)},
		{"SKU", valueOr(product.SKU, constants.None)},
		{"Allergens", allergens},
		{"Created", formatTime(product.CreatedAt)},
	}
}

func newProductAvailabilityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "availability PRODUCT_ID true|false",
		Short: "Mark a product as available or unavailable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			available, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("availability must be true or false, got %q", args[1])
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			product, err := client.Products().UpdateAvailability(cmd.Context(), args[0], available)
			if err != nil {
				return fmt.Errorf("failed to update product availability: %w", err)
			}

			state := "available"
			if !product.Available {
				state = "unavailable"
			}

			return renderMessage(cmd.OutOrStdout(), product,
				fmt.Sprintf("Product '%s' is now %s", product.ID, state))
		},
	}
}
