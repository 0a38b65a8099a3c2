package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// NewVoiceCommand creates the voice configuration command group.
func NewVoiceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "voice",
		Short: "Manage project voice settings",
		Long:  "Inspect and reset the voice configuration of a project, and list available voices",
	}

	cmd.AddCommand(createGetCommand(GetConfig[platform.VoiceConfiguration]{
		Use:   "get PROJECT_ID",
		Short: "Show the voice configuration of a project",
		Noun:  "voice configuration",
		Get: func(ctx context.Context, client platform.Client, projectID string) (*platform.VoiceConfiguration, error) {
			return client.VoiceConfigurations().Get(ctx, projectID)
		},
		Details: voiceConfigurationRows,
	}))
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:   "reset PROJECT_ID",
		Short: "Reset a project's voice configuration to defaults",
		Noun:  "voice configuration of project",
		Verb:  "reset",
		Delete: func(ctx context.Context, client platform.Client, projectID string) (bool, error) {
			return client.VoiceConfigurations().Reset(ctx, projectID)
		},
	}))
	cmd.AddCommand(newVoicesCommand())

	return cmd
}

func voiceConfigurationRows(config *platform.VoiceConfiguration) []detailRow {
	rows := []detailRow{
		{"Project", config.ProjectID},
		{"Voice", config.VoiceID},
		{"Language", config.Language},
		{"Speed", strconv.FormatFloat(config.Speed, 'f', -1, 64)},
		{"Pitch", strconv.FormatFloat(config.Pitch, 'f', -1, 64)},
		{"Greeting", valueOr(config.Greeting, constants.None)},
		{"Fallback", valueOr(config.FallbackMessage, constants.None)},
		{"Transfer Number", valueOr(config.TransferNumber, constants.None)},
		{"Record Calls", formatBool(config.RecordCalls)},
	}

	for _, hours := range config.BusinessHours {
		window := hours.Open + "-" + hours.Close
		if hours.Closed {
			window = "closed"
		}

		rows = append(rows, detailRow{"Hours " + hours.Day, window})
	}

	return append(rows, detailRow{"Updated", formatTime(config.UpdatedAt)})
}

func newVoicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "voices",
		Short: "List available voices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			voices, err := client.VoiceConfigurations().ListVoices(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list voices: %w", err)
			}

			if len(voices) == 0 && !isStructuredOutput() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No voices found")

				return nil
			}

			return renderOutput(cmd.OutOrStdout(), voices, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Language", "Gender")

				for _, voice := range voices {
					_ = table.Append(voice.ID, voice.Name, voice.Language, valueOr(voice.Gender, constants.NotAvailable))
				}
			})
		},
	}
}
