package commands

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// NewMenusCommand creates the menus command group.
func NewMenusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "menus",
		Aliases: []string{"menu"},
		Short:   "Manage menus",
		Long:    "List, inspect and publish menus, and generate their QR codes",
	}

	cmd.AddCommand(createListCommand(ListConfig[platform.Menu]{
		Use:   "list",
		Short: "List menus",
		Noun:  "menus",
		Filters: []filterFlag{
			{Flag: "project", Param: "projectId", Usage: "filter by project ID"},
			{Flag: "status", Param: "status", Usage: "filter by status"},
		},
		Lister: func(client platform.Client, _ []string) platform.Lister[platform.Menu] {
			return client.Menus().List
		},
		Headers: []string{"ID", "Name", "Status", "Sections", "Published"},
		Row: func(menu platform.Menu) []string {
			return []string{menu.ID, menu.Name, string(menu.Status), strconv.Itoa(len(menu.Sections)), formatTimePtr(menu.PublishedAt)}
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[platform.Menu]{
		Use:   "get MENU_ID",
		Short: "Show menu details",
		Noun:  "menu",
		Get: func(ctx context.Context, client platform.Client, id string) (*platform.Menu, error) {
			return client.Menus().Get(ctx, id)
		},
		Details: menuRows,
	}))
	cmd.AddCommand(newMenuPublishCommand())
	cmd.AddCommand(newMenuQRCodeCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Use:   "delete MENU_ID",
		Short: "Delete a menu",
		Noun:  "menu",
		Verb:  "delete",
		Delete: func(ctx context.Context, client platform.Client, id string) (bool, error) {
			return client.Menus().Delete(ctx, id)
		},
	}))

	return cmd
}

func menuRows(menu *platform.Menu) []detailRow {
	rows := []detailRow{
		{"ID", menu.ID},
		{"Name", menu.Name},
		{"Description", valueOr(menu.Description, constants.None)},
		{"Status", string(menu.Status)},
		{"Currency", valueOr(menu.Currency, constants.NotAvailable)},
		{"Public URL", valueOr(menu.PublicURL, constants.NotAvailable)},
		{"Published", formatTimePtr(menu.PublishedAt)},
	}

	for _, section := range menu.Sections {
		rows = append(rows, detailRow{
			"Section",
			fmt.Sprintf("%s (%d products)", section.Name, len(section.ProductIDs)),
		})
	}

	return rows
}

func newMenuPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish MENU_ID",
		Short: "Publish a menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			menu, err := client.Menus().Publish(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to publish menu: %w", err)
			}

			return renderMessage(cmd.OutOrStdout(), menu,
				fmt.Sprintf("Menu '%s' published at %s", menu.ID, valueOr(menu.PublicURL, constants.NotAvailable)))
		},
	}
}

func newMenuQRCodeCommand() *cobra.Command {
	request := &platform.QRCodeRequest{}

	var outFile string

	cmd := &cobra.Command{
		Use:   "qr-code MENU_ID",
		Short: "Generate a QR code linking to a menu",
		Long:  "Generate a QR code linking to a menu. With --out the image is written to a file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			qrCode, err := client.Menus().GenerateQRCode(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to generate QR code: %w", err)
			}

			if outFile != "" {
				err = writeQRCode(outFile, qrCode)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "QR code written to %s\n", outFile)
			}

			return renderDetails(cmd.OutOrStdout(), qrCode, []detailRow{
				{"Menu URL", qrCode.MenuURL},
				{"Image URL", valueOr(qrCode.ImageURL, constants.NotAvailable)},
				{"Format", qrCode.Format},
			})
		},
	}

	cmd.Flags().IntVar(&request.Size, "size", 0, "image size in pixels (64-2048)")
	cmd.Flags().StringVar(&request.Format, "format", "", "image format (png, svg)")
	cmd.Flags().StringVar(&request.ForegroundColor, "foreground", "", "foreground hex color")
	cmd.Flags().StringVar(&request.BackgroundColor, "background", "", "background hex color")
	cmd.Flags().StringVar(&outFile, "out", "", "write the image to this file")

	return cmd
}

func writeQRCode(path string, qrCode *platform.QRCode) error {
	if qrCode.ImageData == "" {
		return errors.New("QR code response has no image data")
	}

	// The server may send a data URI rather than bare base64.
	data := qrCode.ImageData
	if _, encoded, found := strings.Cut(data, ";base64,"); found {
		data = encoded
	}

	image, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("failed to decode QR code image: %w", err)
	}

	err = os.WriteFile(path, image, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}

	return nil
}
