package listing

import (
	"fmt"
	"maps"
)

// View is the mutable table state of one screen: search, filters, sort and
// current page.
type View[T any] struct {
	schema   *Schema[T]
	query    Query
	sort     SortState
	page     int
	pageSize int
}

// State is a serialisable snapshot of a View.
type State struct {
	Query    Query     `json:"query"`
	Sort     SortState `json:"sort"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

func NewView[T any](schema *Schema[T], pageSize int, initial SortState) *View[T] {
	return &View[T]{
		schema:   schema,
		query:    Query{Filters: map[string]string{}},
		sort:     initial,
		page:     1,
		pageSize: pageSize,
	}
}

// ToggleSort applies a column header click and resets to the first page.
func (v *View[T]) ToggleSort(key string) error {
	if !v.schema.HasSort(key) {
		return fmt.Errorf("%w: sort %q", ErrUnknownColumn, key)
	}
	v.sort.Toggle(key)
	v.page = 1
	return nil
}

// SetSort sets an explicit sort and resets to the first page.
func (v *View[T]) SetSort(st SortState) error {
	if st.Key != "" && !v.schema.HasSort(st.Key) {
		return fmt.Errorf("%w: sort %q", ErrUnknownColumn, st.Key)
	}
	if st.Dir == "" {
		st.Dir = Asc
	}
	v.sort = st
	v.page = 1
	return nil
}

// SetQuery replaces the search and filters and resets to the first page.
func (v *View[T]) SetQuery(q Query) error {
	if err := v.schema.ValidateQuery(q); err != nil {
		return err
	}
	filters := map[string]string{}
	maps.Copy(filters, q.Filters)
	v.query = Query{Search: q.Search, Filters: filters}
	v.page = 1
	return nil
}

func (v *View[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

func (v *View[T]) Query() Query { return v.query }

func (v *View[T]) State() State {
	return State{Query: v.query, Sort: v.sort, Page: v.page, PageSize: v.pageSize}
}

// Visible returns every filtered and sorted row, ignoring pagination.
func (v *View[T]) Visible(items []T) []T {
	return v.schema.Sort(v.schema.Filter(items, v.query), v.sort)
}

// Apply filters, sorts and paginates items. The stored page is clamped to
// the available range.
func (v *View[T]) Apply(items []T) Page[T] {
	p := Paginate(v.Visible(items), v.page, v.pageSize)
	v.page = p.Page
	return p
}
