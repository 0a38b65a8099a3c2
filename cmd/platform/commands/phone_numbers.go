package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// NewPhoneNumbersCommand creates the phone numbers command group.
func NewPhoneNumbersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "phone-numbers",
		Aliases: []string{"phone-number", "numbers"},
		Short:   "Manage phone numbers",
		Long:    "Search, provision, assign and release the phone numbers your voice agents answer",
	}

	cmd.AddCommand(createListCommand(ListConfig[platform.PhoneNumber]{
		Use:   "list",
		Short: "List provisioned phone numbers",
		Noun:  "phone numbers",
		Filters: []filterFlag{
			{Flag: "project", Param: "projectId", Usage: "filter by project ID"},
		},
		Lister: func(client platform.Client, _ []string) platform.Lister[platform.PhoneNumber] {
			return client.PhoneNumbers().List
		},
		Headers: []string{"ID", "Number", "Name", "Status", "Deployment", "Monthly"},
		Row: func(number platform.PhoneNumber) []string {
			return []string{
				number.ID,
				number.Number,
				valueOr(number.FriendlyName, constants.None),
				number.Status,
				valueOr(number.DeploymentID, constants.None),
				formatMoney(number.MonthlyCost, ""),
			}
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[platform.PhoneNumber]{
		Use:   "get PHONE_NUMBER_ID",
		Short: "Show phone number details",
		Noun:  "phone number",
		Get: func(ctx context.Context, client platform.Client, id string) (*platform.PhoneNumber, error) {
			return client.PhoneNumbers().Get(ctx, id)
		},
		Details: phoneNumberRows,
	}))
	cmd.AddCommand(newPhoneNumberSearchCommand())
	cmd.AddCommand(newPhoneNumberProvisionCommand())
	cmd.AddCommand(newPhoneNumberAssignCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:   "release PHONE_NUMBER_ID",
		Short: "Release a phone number",
		Noun:  "phone number",
		Verb:  "release",
		Delete: func(ctx context.Context, client platform.Client, id string) (bool, error) {
			return client.PhoneNumbers().Release(ctx, id)
		},
	}))

	return cmd
}

func phoneNumberRows(number *platform.PhoneNumber) []detailRow {
	return []detailRow{
		{"ID", number.ID},
		{"Number", number.Number},
		{"Name", valueOr(number.FriendlyName, constants.None)},
		{"Country", number.CountryCode},
		{"Status", number.Status},
		{"Project", valueOr(number.ProjectID, constants.None)},
		{"Deployment", valueOr(number.DeploymentID, constants.None)},
		{"Capabilities", strings.Join(number.Capabilities, ", ")},
		{"Monthly Cost", formatMoney(number.MonthlyCost, "")},
	}
}

func newPhoneNumberSearchCommand() *cobra.Command {
	query := &platform.PhoneNumberSearch{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search numbers available for provisioning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			numbers, err := client.PhoneNumbers().Search(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("failed to search phone numbers: %w", err)
			}

			if len(numbers) == 0 && !isStructuredOutput() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No available phone numbers found")

				return nil
			}

			return renderOutput(cmd.OutOrStdout(), numbers, func(table *tablewriter.Table) {
				table.Header("Number", "Locality", "Region", "Capabilities", "Monthly")

				for _, number := range numbers {
					_ = table.Append(
						number.Number,
						valueOr(number.Locality, constants.NotAvailable),
						valueOr(number.Region, constants.NotAvailable),
						strings.Join(number.Capabilities, ", "),
						formatMoney(number.MonthlyCost, ""),
					)
				}
			})
		},
	}

	cmd.Flags().StringVar(&query.CountryCode, "country", "US", "ISO 3166 country code")
	cmd.Flags().StringVar(&query.AreaCode, "area-code", "", "area code")
	cmd.Flags().StringVar(&query.Contains, "contains", "", "digits the number must contain")
	cmd.Flags().IntVar(&query.Limit, "limit", 0, "maximum results (1-50)")

	return cmd
}

func newPhoneNumberProvisionCommand() *cobra.Command {
	request := &platform.PhoneNumberProvisionRequest{}

	cmd := &cobra.Command{
		Use:   "provision NUMBER",
		Short: "Provision a phone number for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request.Number = args[0]

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			number, err := client.PhoneNumbers().Provision(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to provision phone number: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), number, phoneNumberRows(number))
		},
	}

	cmd.Flags().StringVar(&request.ProjectID, "project", "", "project ID")
	cmd.Flags().StringVar(&request.FriendlyName, "name", "", "friendly name")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newPhoneNumberAssignCommand() *cobra.Command {
	request := &platform.PhoneNumberAssignRequest{}

	cmd := &cobra.Command{
		Use:   "assign PHONE_NUMBER_ID",
		Short: "Route a phone number to a deployment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			number, err := client.PhoneNumbers().Assign(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to assign phone number: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), number,
				fmt.Sprintf("Phone number %s now routes to deployment '%s'", number.Number, number.DeploymentID))
		},
	}

	cmd.Flags().StringVar(&request.DeploymentID, "deployment", "", "deployment ID")
	_ = cmd.MarkFlagRequired("deployment")

	return cmd
}
