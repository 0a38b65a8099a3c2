package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// NewDeploymentsCommand creates the deployments command group.
func NewDeploymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deployments",
		Aliases: []string{"deployment", "deploy"},
		Short:   "Manage voice agent deployments",
		Long:    "List, inspect, activate and deactivate voice agent deployments, and read their logs",
	}

	cmd.AddCommand(createListCommand(ListConfig[platform.Deployment]{
		Use:   "list",
		Short: "List deployments",
		Noun:  "deployments",
		Filters: []filterFlag{
			{Flag: "project", Param: "projectId", Usage: "filter by project ID"},
			{Flag: "status", Param: "status", Usage: "filter by status"},
		},
		Lister: func(client platform.Client, _ []string) platform.Lister[platform.Deployment] {
			return client.Deployments().List
		},
		Headers: []string{"ID", "Name", "Channel", "Status", "Version", "Last Deployed"},
		Row: func(deployment platform.Deployment) []string {
			return []string{
				deployment.ID,
				deployment.Name,
				deployment.Channel,
				string(deployment.Status),
				strconv.Itoa(deployment.Version),
				formatTimePtr(deployment.LastDeployedAt),
			}
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[platform.Deployment]{
		Use:   "get DEPLOYMENT_ID",
		Short: "Show deployment details",
		Noun:  "deployment",
		Get: func(ctx context.Context, client platform.Client, id string) (*platform.Deployment, error) {
			return client.Deployments().Get(ctx, id)
		},
		Details: deploymentRows,
	}))
	cmd.AddCommand(newDeploymentToggleCommand("activate", "Activate a deployment", platform.DeploymentsClient.Activate))
	cmd.AddCommand(newDeploymentToggleCommand("deactivate", "Deactivate a deployment", platform.DeploymentsClient.Deactivate))
	cmd.AddCommand(createListCommand(ListConfig[platform.DeploymentLog]{
		Use:   "logs DEPLOYMENT_ID",
		Short: "Show deployment logs",
		Noun:  "log entries",
		Args:  cobra.ExactArgs(1),
		Filters: []filterFlag{
			{Flag: "level", Param: "level", Usage: "filter by log level"},
		},
		Lister: func(client platform.Client, args []string) platform.Lister[platform.DeploymentLog] {
			return func(ctx context.Context, params *platform.ListParams) (*platform.PaginatedResult[platform.DeploymentLog], error) {
				return client.Deployments().GetLogs(ctx, args[0], params)
			}
		},
		Headers: []string{"Time", "Level", "Call", "Message"},
		Row: func(entry platform.DeploymentLog) []string {
			return []string{formatTime(entry.Timestamp), entry.Level, valueOr(entry.CallID, constants.None), entry.Message}
		},
	}))
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:   "delete DEPLOYMENT_ID",
		Short: "Delete a deployment",
		Noun:  "deployment",
		Verb:  "delete",
		Delete: func(ctx context.Context, client platform.Client, id string) (bool, error) {
			return client.Deployments().Delete(ctx, id)
		},
	}))

	return cmd
}

func deploymentRows(deployment *platform.Deployment) []detailRow {
	return []detailRow{
		{"ID", deployment.ID},
		{"Name", deployment.Name},
		{"Project", deployment.ProjectID},
		{"Channel", deployment.Channel},
		{"Status", string(deployment.Status)},
		{"Model", valueOr(deployment.Model, constants.NotAvailable)},
		{"Language", valueOr(deployment.Language, constants.NotAvailable)},
		{"Voice", valueOr(deployment.VoiceID, constants.NotAvailable)},
		{"Phone Number", valueOr(deployment.PhoneNumberID, constants.None)},
		{"Version", strconv.Itoa(deployment.Version)},
		{"Last Deployed", formatTimePtr(deployment.LastDeployedAt)},
	}
}

type deploymentAction func(client platform.DeploymentsClient, ctx context.Context, id string) (*platform.Deployment, error)

func newDeploymentToggleCommand(verb, short string, action deploymentAction) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " DEPLOYMENT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			deployment, err := action(client.Deployments(), cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to %s deployment: %w", verb, err)
			}

			return renderMessage(cmd.OutOrStdout(), deployment,
				fmt.Sprintf("Deployment '%s' is now %s", deployment.ID, deployment.Status))
		},
	}
}
