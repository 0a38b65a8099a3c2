package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "proj"},
		Short:   "Manage projects",
		Long:    "List, inspect, create and delete projects",
	}

	cmd.AddCommand(createListCommand(ListConfig[platform.Project]{
		Use:   "list",
		Short: "List projects",
		Noun:  "projects",
		Filters: []filterFlag{
			{Flag: "type", Param: "type", Usage: "filter by project type"},
			{Flag: "status", Param: "status", Usage: "filter by status"},
		},
		Lister: func(client platform.Client, _ []string) platform.Lister[platform.Project] {
			return client.Projects().List
		},
		Headers: []string{"ID", "Name", "Type", "Status", "Created"},
		Row: func(project platform.Project) []string {
			return []string{project.ID, project.Name, string(project.Type), string(project.Status), formatTime(project.CreatedAt)}
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[platform.Project]{
		Use:   "get PROJECT_ID",
		Short: "Show project details",
		Noun:  "project",
		Get: func(ctx context.Context, client platform.Client, id string) (*platform.Project, error) {
			return client.Projects().Get(ctx, id)
		},
		Details: projectRows,
	}))
	cmd.AddCommand(newProjectCreateCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Noun:  "project",
		Verb:  "delete",
		Delete: func(ctx context.Context, client platform.Client, id string) (bool, error) {
			return client.Projects().Delete(ctx, id)
		},
	}))

	return cmd
}

func projectRows(project *platform.Project) []detailRow {
	return []detailRow{
		{"ID", project.ID},
		{"Name", project.Name},
		{"Description", valueOr(project.Description, constants.None)},
		{"Type", string(project.Type)},
		{"Status", string(project.Status)},
		{"Timezone", valueOr(project.Timezone, constants.NotAvailable)},
		{"Organization", project.OrganizationID},
		{"Created", formatTime(project.CreatedAt)},
		{"Updated", formatTime(project.UpdatedAt)},
	}
}

func newProjectCreateCommand() *cobra.Command {
	request := &platform.ProjectCreateRequest{}

	var projectType string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request.Name = args[0]
			request.Type = platform.ProjectType(projectType)

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			project, err := client.Projects().Create(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			return renderDetails(cmd.OutOrStdout(), project, projectRows(project))
		},
	}

	cmd.Flags().StringVar(&projectType, "type", string(platform.ProjectTypeRestaurant),
		"project type (restaurant, retail, salon, clinic, other)")
	cmd.Flags().StringVar(&request.Description, "description", "", "project description")
	cmd.Flags().StringVar(&request.Timezone, "timezone", "", "IANA timezone")

	return cmd
}
