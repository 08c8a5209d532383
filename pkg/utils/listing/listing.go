// Package listing implements the filter, sort and paginate behaviour shared by
// every table in the dashboard.
package listing

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrUnknownColumn is returned for filter or sort names a schema does not know.
var ErrUnknownColumn = errors.New("unknown column")

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection accepts "asc"/"desc" (any case); anything else is ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// SortState is the current sort column and direction of a table.
type SortState struct {
	Key string    `json:"key"`
	Dir Direction `json:"dir"`
}

// Toggle applies a header click: the same column flips direction, a new column
// sorts ascending.
func (s *SortState) Toggle(key string) {
	if s.Key == key {
		if s.Dir == Asc {
			s.Dir = Desc
		} else {
			s.Dir = Asc
		}
		return
	}
	s.Key = key
	s.Dir = Asc
}

// Comparator orders two rows; negative means a sorts before b.
type Comparator[T any] func(a, b T) int

// Schema declares which fields of T can be searched, filtered and sorted.
type Schema[T any] struct {
	// Text fields are matched against the free-text search.
	Text []func(T) string
	// Exact fields back dropdown filters, keyed by filter name.
	Exact map[string]func(T) string
	// Sorts are keyed by column name.
	Sorts map[string]Comparator[T]
}

// Query is a free-text search plus dropdown filters.
type Query struct {
	Search  string            `json:"search,omitempty"`
	Filters map[string]string `json:"filters,omitempty"`
}

// Matches reports whether item passes every part of q.
func (s *Schema[T]) Matches(item T, q Query) bool {
	if needle := strings.ToLower(strings.TrimSpace(q.Search)); needle != "" {
		found := false
		for _, field := range s.Text {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for name, want := range q.Filters {
		if want == "" || strings.EqualFold(want, "all") {
			continue
		}
		field, ok := s.Exact[name]
		if !ok {
			continue
		}
		if field(item) != want {
			return false
		}
	}
	return true
}

// Filter returns the items matching q, in their original order.
func (s *Schema[T]) Filter(items []T, q Query) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if s.Matches(it, q) {
			out = append(out, it)
		}
	}
	return out
}

// ValidateQuery rejects filter names the schema does not know.
func (s *Schema[T]) ValidateQuery(q Query) error {
	for name := range q.Filters {
		if _, ok := s.Exact[name]; !ok {
			return fmt.Errorf("%w: filter %q", ErrUnknownColumn, name)
		}
	}
	return nil
}

// Validate rejects unknown filter names and sort keys.
func (s *Schema[T]) Validate(q Query, st SortState) error {
	if err := s.ValidateQuery(q); err != nil {
		return err
	}
	if st.Key != "" && !s.HasSort(st.Key) {
		return fmt.Errorf("%w: sort %q", ErrUnknownColumn, st.Key)
	}
	return nil
}

// HasSort reports whether key is a sortable column.
func (s *Schema[T]) HasSort(key string) bool {
	_, ok := s.Sorts[key]
	return ok
}

// Sort returns a sorted copy of items. An empty or unknown key keeps order.
func (s *Schema[T]) Sort(items []T, st SortState) []T {
	out := slices.Clone(items)
	cmp, ok := s.Sorts[st.Key]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		if st.Dir == Desc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return out
}

// Page is one page of results.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices items to the requested 1-based page, clamping the page into
// range.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = len(items)
		if size == 0 {
			size = 1
		}
	}
	total := len(items)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := min(start+size, total)
	result := make([]T, 0, end-start)
	result = append(result, items[start:end]...)
	return Page[T]{Items: result, Page: page, PageSize: size, Total: total, TotalPages: pages}
}

func CompareStrings(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func CompareInts(a, b int) int {
	return a - b
}

func CompareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func CompareTimes(a, b time.Time) int {
	return a.Compare(b)
}

// ComparePriority orders values by their position in order; unknown values
// sort last.
func ComparePriority(order []string) func(a, b string) int {
	rank := make(map[string]int, len(order))
	for i, v := range order {
		rank[strings.ToLower(v)] = i
	}
	lookup := func(v string) int {
		if r, ok := rank[strings.ToLower(v)]; ok {
			return r
		}
		return len(order)
	}
	return func(a, b string) int {
		return lookup(a) - lookup(b)
	}
}

// By adapts a field comparator to a row comparator.
func By[T, F any](field func(T) F, cmp func(a, b F) int) Comparator[T] {
	return func(a, b T) int { return cmp(field(a), field(b)) }
}
