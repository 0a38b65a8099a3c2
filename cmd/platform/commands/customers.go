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

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cust"},
		Short:   "Manage customers",
		Long:    "List, look up and delete the customers of your projects",
	}

	cmd.AddCommand(createListCommand(ListConfig[platform.Customer]{
		Use:   "list",
		Short: "List customers",
		Noun:  "customers",
		Filters: []filterFlag{
			{Flag: "project", Param: "projectId", Usage: "filter by project ID"},
			{Flag: "search", Param: "search", Usage: "search by name, email or phone"},
		},
		Lister: func(client platform.Client, _ []string) platform.Lister[platform.Customer] {
			return client.Customers().List
		},
		Headers: []string{"ID", "Name", "Email", "Phone", "Visits"},
		Row: func(customer platform.Customer) []string {
			return []string{
				customer.ID,
				customer.FullName(),
				valueOr(customer.Email, constants.None),
				valueOr(customer.Phone, constants.None),
				strconv.Itoa(customer.VisitCount),
			}
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[platform.Customer]{
		Use:   "get CUSTOMER_ID",
		Short: "Show customer details",
		Noun:  "customer",
		Get: func(ctx context.Context, client platform.Client, id string) (*platform.Customer, error) {
			return client.Customers().Get(ctx, id)
		},
		Details: customerRows,
	}))
	cmd.AddCommand(newCustomerLookupCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Noun:  "customer",
		Verb:  "delete",
		Delete: func(ctx context.Context, client platform.Client, id string) (bool, error) {
			return client.Customers().Delete(ctx, id)
		},
	}))

	return cmd
}

func customerRows(customer *platform.Customer) []detailRow {
	tags := constants.None
	if len(customer.Tags) > 0 {
		tags = strings.Join(customer.Tags, ", ")
	}

	return []detailRow{
		{"ID", customer.ID},
		{"Name", customer.FullName()},
		{"Email", valueOr(customer.Email, constants.None)},
		{"Phone", valueOr(customer.Phone, constants.None)},
		{"Project", customer.ProjectID},
		{"Tags", tags},
		{"Visits", strconv.Itoa(customer.VisitCount)},
		{"Last Visit", formatTimePtr(customer.LastVisitAt)},
		{"Notes", valueOr(customer.Notes, constants.None)},
		{"Created", formatTime(customer.CreatedAt)},
	}
}

func newCustomerLookupCommand() *cobra.Command {
	var phone, email string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find a customer by phone or email",
		Long:  "Find a customer by exact phone number (E.164) or email address. Exactly one of --phone or --email is required.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if phone == "" && email == "" {
				return constants.ErrLookupFlagRequired
			}

			if phone != "" && email != "" {
				return constants.ErrLookupFlagConflict
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			var (
				customer *platform.Customer
				key      = phone
			)

			if phone != "" {
				customer, err = client.Customers().GetByPhone(cmd.Context(), phone)
			} else {
				key = email
				customer, err = client.Customers().GetByEmail(cmd.Context(), email)
			}

			if err != nil {
				return fmt.Errorf("failed to look up customer: %w", err)
			}

			if customer == nil {
				return fmt.Errorf("no customer matches '%s'", key)
			}

			return renderDetails(cmd.OutOrStdout(), customer, customerRows(customer))
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number in E.164 format")
	cmd.Flags().StringVar(&email, "email", "", "email address")

	return cmd
}
