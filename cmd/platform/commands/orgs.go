package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// NewOrgsCommand creates the organization command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"org", "organization"},
		Short:   "Manage your organization",
		Long:    "View and update the organization the API key belongs to",
	}

	cmd.AddCommand(newOrgGetCommand())
	cmd.AddCommand(newOrgUpdateCommand())
	cmd.AddCommand(newOrgUsageCommand())

	return cmd
}

func newOrgGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show organization details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			org, err := client.Organizations().Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get organization: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), org, organizationRows(org))
		},
	}
}

func organizationRows(org *platform.Organization) []detailRow {
	return []detailRow{
		{"ID", org.ID},
		{"Company", org.CompanyName},
		{"Email", valueOr(org.Email, constants.None)},
		{"Phone", valueOr(org.Phone, constants.None)},
		{"Website", valueOr(org.Website, constants.None)},
		{"Timezone", valueOr(org.Timezone, constants.NotAvailable)},
		{"Currency", valueOr(org.Currency, constants.NotAvailable)},
		{"Plan", valueOr(org.Plan, constants.NotAvailable)},
		{"Created", formatTime(org.CreatedAt)},
		{"Updated", formatTime(org.UpdatedAt)},
	}
}

func newOrgUpdateCommand() *cobra.Command {
	var companyName, email, phone, website, timezone, currency string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update organization details",
		Long:  "Update organization details. Only the flags given are changed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request := &platform.OrganizationUpdateRequest{}
			flags := cmd.Flags()

			if flags.Changed("company-name") {
				request.CompanyName = platform.String(companyName)
			}

			if flags.Changed("email") {
				request.Email = platform.String(email)
			}

			if flags.Changed("phone") {
				request.Phone = platform.String(phone)
			}

			if flags.Changed("website") {
				request.Website = platform.String(website)
			}

			if flags.Changed("timezone") {
				request.Timezone = platform.String(timezone)
			}

			if flags.Changed("currency") {
				request.Currency = platform.String(currency)
			}

			if *request == (platform.OrganizationUpdateRequest{}) {
				return constants.ErrNothingToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			org, err := client.Organizations().Update(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to update organization: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), org, organizationRows(org))
		},
	}

	cmd.Flags().StringVar(&companyName, "company-name", "", "company name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone in E.164 format")
	cmd.Flags().StringVar(&website, "website", "", "website URL")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone, e.g. Europe/Paris")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code")

	return cmd
}

func newOrgUsageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show usage for the current billing period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			usage, err := client.Organizations().GetUsage(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get usage: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), usage, []detailRow{
				{"Period Start", formatTime(usage.PeriodStart)},
				{"Period End", formatTime(usage.PeriodEnd)},
				{"Projects", strconv.Itoa(usage.Projects)},
				{"Customers", strconv.Itoa(usage.Customers)},
				{"Reservations", strconv.Itoa(usage.Reservations)},
				{"Orders", strconv.Itoa(usage.Orders)},
				{"Call Minutes", strconv.Itoa(usage.CallMinutes)},
				{"Phone Numbers", strconv.Itoa(usage.PhoneNumbers)},
			})
		},
	}
}
