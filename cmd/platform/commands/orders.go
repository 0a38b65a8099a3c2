package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
		Long:    "List, inspect, progress and cancel orders",
	}

	cmd.AddCommand(createListCommand(ListConfig[platform.Order]{
		Use:   "list",
		Short: "List orders",
		Noun:  "orders",
		Filters: []filterFlag{
			{Flag: "project", Param: "projectId", Usage: "filter by project ID"},
			{Flag: "status", Param: "status", Usage: "filter by status"},
			{Flag: "type", Param: "type", Usage: "filter by order type"},
		},
		Lister: func(client platform.Client, _ []string) platform.Lister[platform.Order] {
			return client.Orders().List
		},
		Headers: []string{"ID", "Number", "Type", "Status", "Items", "Total", "Created"},
		Row: func(order platform.Order) []string {
			return []string{
				order.ID,
				order.OrderNumber,
				string(order.Type),
				string(order.Status),
				strconv.Itoa(len(order.Items)),
				formatMoney(order.Total, order.Currency),
				formatTime(order.CreatedAt),
			}
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[platform.Order]{
		Use:   "get ORDER_ID",
		Short: "Show order details",
		Noun:  "order",
		Get: func(ctx context.Context, client platform.Client, id string) (*platform.Order, error) {
			return client.Orders().Get(ctx, id)
		},
		Details: orderRows,
	}))
	cmd.AddCommand(newOrderStatusCommand())
	cmd.AddCommand(newOrderCancelCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:   "delete ORDER_ID",
		Short: "Delete an order",
		Noun:  "order",
		Verb:  "delete",
		Delete: func(ctx context.Context, client platform.Client, id string) (bool, error) {
			return client.Orders().Delete(ctx, id)
		},
	}))

	return cmd
}

func orderRows(order *platform.Order) []detailRow {
	rows := []detailRow{
		{"ID", order.ID},
		{"Number", order.OrderNumber},
		{"Type", string(order.Type)},
		{"Status", string(order.Status)},
		{"Customer", valueOr(order.CustomerID, constants.None)},
	}

	for _, item := range order.Items {
		rows = append(rows, detailRow{
			"Item",
			fmt.Sprintf("%d x %s @ %s", item.Quantity, item.Name, formatMoney(item.UnitPrice, order.Currency)),
		})
	}

	rows = append(rows,
		detailRow{"Subtotal", formatMoney(order.Subtotal, order.Currency)},
		detailRow{"Tax", formatMoney(order.Tax, order.Currency)},
		detailRow{"Total", formatMoney(order.Total, order.Currency)},
		detailRow{"Scheduled For", formatTimePtr(order.ScheduledFor)},
		detailRow{"Created", formatTime(order.CreatedAt)},
	)

	if order.DeliveryAddress != nil {
		rows = append(rows, detailRow{"Delivery", order.DeliveryAddress.Street + ", " + order.DeliveryAddress.City})
	}

	return rows
}

func newOrderStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status ORDER_ID STATUS",
		Short: "Set the status of an order",
		Long:  "Set the status of an order: pending, confirmed, preparing, ready, completed or cancelled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			order, err := client.Orders().UpdateStatus(cmd.Context(), args[0], platform.OrderStatus(args[1]))
			if err != nil {
				return fmt.Errorf("failed to update order status: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), order,
				fmt.Sprintf("Order '%s' is now %s", order.ID, order.Status))
		},
	}
}

func newOrderCancelCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel ORDER_ID",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			order, err := client.Orders().Cancel(cmd.Context(), args[0], reason)
			if err != nil {
				return fmt.Errorf("failed to cancel order: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), order, fmt.Sprintf("Order '%s' cancelled", order.ID))
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "cancellation reason")

	return cmd
}
