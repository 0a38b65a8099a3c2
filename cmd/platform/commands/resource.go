package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/platform-client/internal/constants"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// filterFlag maps a command flag to a list filter query parameter.
type filterFlag struct {
	Flag  string
	Param string
	Usage string
}

// ListConfig describes a paginated list subcommand.
type ListConfig[T any] struct {
	Use     string
	Short   string
	Long    string
	Noun    string
	Filters []filterFlag
	// Args, when set, validates positional arguments passed to Lister.
	Args    cobra.PositionalArgs
	Lister  func(client platform.Client, args []string) platform.Lister[T]
	Headers []string
	Row     func(item T) []string
}

type listOptions struct {
	page     int
	pageSize int
	all      bool
	sortBy   string
	desc     bool
	filters  map[string]*string
}

func (o *listOptions) params() *platform.ListParams {
	params := platform.NewListParams().WithPage(o.page).WithPageSize(o.pageSize)

	if o.sortBy != "" {
		direction := platform.SortAscending
		if o.desc {
			direction = platform.SortDescending
		}

		params.WithSort(o.sortBy, direction)
	}

	for param, value := range o.filters {
		if *value != "" {
			params.WithFilter(param, *value)
		}
	}

	return params
}

// createListCommand builds a list subcommand with paging, sorting and the
// configured filters.
func createListCommand[T any](config ListConfig[T]) *cobra.Command {
	opts := &listOptions{filters: make(map[string]*string)}

	positional := config.Args
	if positional == nil {
		positional = cobra.NoArgs
	}

	cmd := &cobra.Command{
		Use:   config.Use,
		Short: config.Short,
		Long:  config.Long,
		Args:  positional,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.pageSize < 1 || opts.pageSize > constants.MaxPageSize {
				return fmt.Errorf("--page-size must be between 1 and %d", constants.MaxPageSize)
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			items, meta, err := fetchList(cmd.Context(), config.Lister(client, args), opts)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", config.Noun, err)
			}

			if len(items) == 0 && !isStructuredOutput() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No %s found\n", config.Noun)

				return nil
			}

			err = renderOutput(cmd.OutOrStdout(), items, func(table *tablewriter.Table) {
				table.Header(toAny(config.Headers)...)

				for _, item := range items {
					_ = table.Append(toAny(config.Row(item))...)
				}
			})
			if err != nil {
				return err
			}

			renderPageFooter(cmd.OutOrStdout(), meta)

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "page number")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", constants.DefaultPageSize, "results per page")
	cmd.Flags().BoolVar(&opts.all, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&opts.sortBy, "sort-by", "", "field to sort by")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "sort in descending order")

	for _, filter := range config.Filters {
		value := new(string)
		opts.filters[filter.Param] = value
		cmd.Flags().StringVar(value, filter.Flag, "", filter.Usage)
	}

	return cmd
}

func fetchList[T any](ctx context.Context, list platform.Lister[T], opts *listOptions) ([]T, *platform.PaginationMeta, error) {
	params := opts.params()

	if opts.all {
		items, err := platform.FetchAllPages(ctx, list, params, 0)

		return items, nil, err
	}

	page, err := list(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	return page.Data, &page.Meta, nil
}

// GetConfig describes a subcommand that shows one resource by ID.
type GetConfig[T any] struct {
	Use     string
	Short   string
	Long    string
	Noun    string
	Get     func(ctx context.Context, client platform.Client, id string) (*T, error)
	Details func(item *T) []detailRow
}

func createGetCommand[T any](config GetConfig[T]) *cobra.Command {
	return &cobra.Command{
		Use:   config.Use,
		Short: config.Short,
		Long:  config.Long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			item, err := config.Get(cmd.Context(), client, args[0])
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", config.Noun, err)
			}

			if item == nil {
				return fmt.Errorf("%s '%s' not found", config.Noun, args[0])
			}

			return renderDetails(cmd.OutOrStdout(), item, config.Details(item))
		},
	}
}

// DeleteConfig describes a subcommand that removes one resource by ID.
type DeleteConfig struct {
	Use    string
	Short  string
	Long   string
	Noun   string
	Verb   string
	Delete func(ctx context.Context, client platform.Client, id string) (bool, error)
}

type deleteResult struct {
	ID      string `json:"id"      yaml:"id"`
	Deleted bool   `json:"deleted" yaml:"deleted"`
}

func createDeleteCommand(config DeleteConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   config.Use,
		Short: config.Short,
		Long:  config.Long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if !force {
				answer, err := promptLine(cmd, fmt.Sprintf("Really %s %s '%s'? (y/N): ", config.Verb, config.Noun, id))
				if err != nil {
					return err
				}

				if answer != "y" && answer != "yes" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")

					return nil
				}
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			deleted, err := config.Delete(cmd.Context(), client, id)
			if err != nil {
				return fmt.Errorf("failed to %s %s: %w", config.Verb, config.Noun, err)
			}

			message := fmt.Sprintf("%s '%s' %s", config.Noun, id, pastTense(config.Verb))
			if !deleted {
				message = fmt.Sprintf("%s '%s' was not %s", config.Noun, id, pastTense(config.Verb))
			}

			return renderMessage(cmd.OutOrStdout(), deleteResult{ID: id, Deleted: deleted}, message)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func pastTense(verb string) string {
	switch verb {
	case "reset":
		return "reset"
	case "release":
		return "released"
	default:
		return verb + "d"
	}
}

func isStructuredOutput() bool {
	output := currentOutput()

	return output == constants.FormatJSON || output == constants.FormatYAML
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}
