package platform

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/fivetwenty-io/platform-client/internal/constants"
)

// SortDirection orders list results.
type SortDirection string

// Sort directions.
const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ListParams holds the optional query of a list call. Zero values are not
// sent, so the server default applies.
type ListParams struct {
	Page          int
	PageSize      int
	SortBy        string
	SortDirection SortDirection
	// Filters are sent as extra query parameters, e.g. status=confirmed.
	Filters map[string]string
}

// NewListParams creates empty list params.
func NewListParams() *ListParams {
	return &ListParams{Filters: make(map[string]string)}
}

// WithPage sets the 1-based page number.
func (p *ListParams) WithPage(page int) *ListParams {
	p.Page = page

	return p
}

// WithPageSize sets the page size.
func (p *ListParams) WithPageSize(size int) *ListParams {
	p.PageSize = size

	return p
}

// WithSort sets the sort field and direction.
func (p *ListParams) WithSort(field string, direction SortDirection) *ListParams {
	p.SortBy = field
	p.SortDirection = direction

	return p
}

// WithFilter adds a filter query parameter.
func (p *ListParams) WithFilter(key, value string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string]string)
	}

	p.Filters[key] = value

	return p
}

// ToValues converts the params to URL query values. Only the fields that are
// set appear in the result. A nil receiver yields empty values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	keys := make([]string, 0, len(p.Filters))
	for key := range p.Filters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if p.Filters[key] != "" {
			values.Set(key, p.Filters[key])
		}
	}

	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}

	if p.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(p.PageSize))
	}

	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
	}

	if p.SortDirection != "" {
		values.Set("sortDirection", string(p.SortDirection))
	}

	return values
}

// clone returns a deep copy so helpers can page without touching the
// caller's params.
func (p *ListParams) clone() *ListParams {
	if p == nil {
		return NewListParams()
	}

	out := *p
	out.Filters = make(map[string]string, len(p.Filters))

	for key, value := range p.Filters {
		out.Filters[key] = value
	}

	return &out
}

// PaginationMeta describes the position of a page within a result set.
type PaginationMeta struct {
	Page            int  `json:"page"            yaml:"page"`
	PageSize        int  `json:"pageSize"        yaml:"page_size"`
	TotalCount      int  `json:"totalCount"      yaml:"total_count"`
	TotalPages      int  `json:"totalPages"      yaml:"total_pages"`
	HasNextPage     bool `json:"hasNextPage"     yaml:"has_next_page"`
	HasPreviousPage bool `json:"hasPreviousPage" yaml:"has_previous_page"`
}

// NewPaginationMeta derives the dependent fields from page, size and count.
func NewPaginationMeta(page, pageSize, totalCount int) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return PaginationMeta{
		Page:            page,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Consistent reports whether the meta obeys the pagination invariants.
func (m PaginationMeta) Consistent() bool {
	return m == NewPaginationMeta(m.Page, m.PageSize, m.TotalCount)
}

// PaginatedResult is one page of a list call.
type PaginatedResult[T any] struct {
	Data []T            `json:"data" yaml:"data"`
	Meta PaginationMeta `json:"meta" yaml:"meta"`
}

// Lister fetches one page. Resource List methods satisfy it.
type Lister[T any] func(ctx context.Context, params *ListParams) (*PaginatedResult[T], error)

// FetchAllPages walks pages starting at params.Page (or 1) while the server
// reports a next page. maxPages caps the walk; zero or less uses the default
// cap.
func FetchAllPages[T any](ctx context.Context, list Lister[T], params *ListParams, maxPages int) ([]T, error) {
	if maxPages <= 0 {
		maxPages = constants.DefaultMaxPages
	}

	query := params.clone()
	if query.Page <= 0 {
		query.Page = 1
	}

	var all []T

	for fetched := 0; fetched < maxPages; fetched++ {
		page, err := list(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", query.Page, err)
		}

		if page == nil {
			break
		}

		all = append(all, page.Data...)

		if !page.Meta.HasNextPage || len(page.Data) == 0 {
			break
		}

		query.Page++
	}

	return all, nil
}

// PaginationIterator yields the items of a list one at a time, fetching
// pages lazily.
type PaginationIterator[T any] struct {
	ctx     context.Context //nolint:containedctx // iterator is scoped to one walk
	list    Lister[T]
	params  *ListParams
	items   []T
	index   int
	hasMore bool
	err     error
}

// NewPaginationIterator creates an iterator. The first page is fetched on
// the first call to HasNext or Next.
func NewPaginationIterator[T any](ctx context.Context, list Lister[T], params *ListParams) *PaginationIterator[T] {
	query := params.clone()
	if query.Page <= 0 {
		query.Page = 1
	}

	return &PaginationIterator[T]{
		ctx:     ctx,
		list:    list,
		params:  query,
		hasMore: true,
	}
}

// HasNext reports whether another item is available. Fetch errors are kept
// and returned by Next and Err.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.index < len(it.items) {
		return true
	}

	if !it.hasMore || it.err != nil {
		return false
	}

	it.fetch()

	return it.index < len(it.items)
}

// Next returns the next item, or ErrNoMoreItems after the last one.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.items[it.index]
	it.index++

	return item, nil
}

// Err returns the error that stopped the iteration, if any.
func (it *PaginationIterator[T]) Err() error {
	return it.err
}

func (it *PaginationIterator[T]) fetch() {
	page, err := it.list(it.ctx, it.params)
	if err != nil {
		it.err = err
		it.hasMore = false

		return
	}

	it.items = nil
	it.index = 0

	if page == nil {
		it.hasMore = false

		return
	}

	it.items = page.Data
	it.hasMore = page.Meta.HasNextPage && len(page.Data) > 0
	it.params.Page++
}
