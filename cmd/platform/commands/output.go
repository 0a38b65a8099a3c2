package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// detailRow is one property/value line of a details table.
type detailRow struct {
	Property string
	Value    string
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.YAMLIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

func currentOutput() string {
	return viper.GetString(keyOutput)
}

// renderOutput writes data in the selected output format. fill populates
// the table used for the table format.
func renderOutput[T any](w io.Writer, data T, fill func(table *tablewriter.Table)) error {
	switch currentOutput() {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, data)
	default:
		table := tablewriter.NewWriter(w)
		fill(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// renderDetails renders a single resource as a property/value table.
func renderDetails[T any](w io.Writer, data T, rows []detailRow) error {
	return renderOutput(w, data, func(table *tablewriter.Table) {
		table.Header("Property", "Value")

		for _, row := range rows {
			_ = table.Append(row.Property, row.Value)
		}
	})
}

// renderMessage prints a plain confirmation in table mode and the resource
// itself otherwise.
func renderMessage[T any](w io.Writer, data T, message string) error {
	switch currentOutput() {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, data)
	default:
		_, _ = fmt.Fprintln(w, message)

		return nil
	}
}

func renderPageFooter(w io.Writer, meta *platform.PaginationMeta) {
	if currentOutput() != constants.FormatTable || meta == nil || meta.TotalPages <= 1 {
		return
	}

	_, _ = fmt.Fprintf(w, "\nShowing page %d of %d (%d total). Use --page or --all for more.\n",
		meta.Page, meta.TotalPages, meta.TotalCount)
}

// FormatError renders an error for the terminal. API errors print as
// "CODE: message", validation errors list every issue.
func FormatError(err error) string {
	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Code + ": " + apiErr.Message
		if apiErr.RequestID != "" {
			message += " (request " + apiErr.RequestID + ")"
		}

		var issues []platform.ValidationIssue
		if platform.IsValidationRejected(apiErr) && apiErr.DecodeDetails(&issues) == nil {
			for _, issue := range issues {
				message += "\n  - " + issue.String()
			}
		}

		return message
	}

	var validationErr *platform.ValidationError
	if errors.As(err, &validationErr) {
		lines := make([]string, 0, len(validationErr.Issues)+1)
		lines = append(lines, "invalid input:")

		for _, issue := range validationErr.Issues {
			lines = append(lines, "  - "+issue.String())
		}

		return strings.Join(lines, "\n")
	}

	var networkErr *platform.NetworkError
	if errors.As(err, &networkErr) {
		return networkErr.Code + ": " + networkErr.Message
	}

	return err.Error()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Local().Format(constants.DateTimeFormat)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return formatTime(*t)
}

func formatMoney(amount decimal.Decimal, currency string) string {
	return strings.TrimSpace(amount.StringFixed(2) + " " + currency)
}

func formatBool(value bool) string {
	if value {
		return constants.BooleanTrue
	}

	return constants.BooleanFalse
}
