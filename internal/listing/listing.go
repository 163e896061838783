// Package listing derives the visible page of a filtered, searched table.
// It backs every list view of the dashboard (schemes, beneficiaries, vendors,
// transactions, applications) and is pure: the same inputs always produce
// the same page.
package listing

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// FilterAll disables the category filter.
	FilterAll = "all"
	// DefaultPageSize applies when a table does not set its own or a caller passes <= 0.
	DefaultPageSize = 10
	// maxWindow is how many page numbers are shown around the current page.
	maxWindow = 5
)

// Config describes how one table is filtered and searched.
type Config[T any] struct {
	// Category returns the field the category filter compares against.
	Category func(T) string
	// SearchFields returns the fields the free-text search looks in.
	SearchFields func(T) []string
	PageSize     int
}

// Predicate is an extra filter ANDed with the category filter and search.
type Predicate[T any] func(T) bool

// Query is the user's view of a table: filter, search text and page.
type Query struct {
	Filter string
	Search string
	Page   int
}

// Result is the derived page.
type Result[T any] struct {
	Items      []T        `json:"items"`
	Pages      []PageItem `json:"pages"`
	TotalPages int        `json:"total_pages"`
	Matched    int        `json:"total_matched"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
}

// PageItem is either a page number or an ellipsis marking a gap.
// It encodes to JSON as a number or the string "...".
type PageItem struct {
	Number int
}

// Ellipsis is the gap marker in a page-number list.
var Ellipsis = PageItem{}

func Page(n int) PageItem {
	return PageItem{Number: n}
}

func (p PageItem) IsEllipsis() bool {
	return p.Number == 0
}

func (p PageItem) String() string {
	if p.IsEllipsis() {
		return "..."
	}
	return strconv.Itoa(p.Number)
}

func (p PageItem) MarshalJSON() ([]byte, error) {
	if p.IsEllipsis() {
		return []byte(`"..."`), nil
	}
	return []byte(strconv.Itoa(p.Number)), nil
}

func (p *PageItem) UnmarshalJSON(data []byte) error {
	if string(data) == `"..."` {
		*p = Ellipsis
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil || n < 1 {
		return fmt.Errorf("listing: invalid page item %s", data)
	}
	*p = Page(n)
	return nil
}

// Apply filters items, then slices out the requested page.
func Apply[T any](items []T, cfg Config[T], q Query, extra ...Predicate[T]) Result[T] {
	matched := Filter(items, cfg, q.Filter, q.Search, extra...)

	size := cfg.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := max(q.Page, 1)

	visible, total := Paginate(matched, page, size)
	return Result[T]{
		Items:      visible,
		Pages:      PageNumbers(page, total),
		TotalPages: total,
		Matched:    len(matched),
		Page:       page,
		PageSize:   size,
	}
}

// Filter keeps the items whose category equals filter (case-insensitively,
// "all" or "" matching everything), that contain search in any search field,
// and that satisfy every extra predicate. Search is compared lowercased but
// otherwise verbatim, surrounding spaces included. Order is preserved.
func Filter[T any](items []T, cfg Config[T], filter, search string, extra ...Predicate[T]) []T {
	filter = strings.TrimSpace(filter)
	search = strings.ToLower(search)

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if !MatchesCategory(cfg.Category, item, filter) {
			continue
		}
		if !matchesSearch(cfg.SearchFields, item, search) {
			continue
		}
		if !matchesAll(extra, item) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// MatchesCategory reports whether the item passes a category filter.
func MatchesCategory[T any](category func(T) string, item T, filter string) bool {
	if IsAll(filter) || category == nil {
		return true
	}
	return strings.EqualFold(category(item), filter)
}

// IsAll reports whether filter selects every category.
func IsAll(filter string) bool {
	return filter == "" || strings.EqualFold(filter, FilterAll)
}

func matchesSearch[T any](fields func(T) []string, item T, search string) bool {
	if search == "" || fields == nil {
		return true
	}
	for _, field := range fields(item) {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func matchesAll[T any](preds []Predicate[T], item T) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

// Paginate returns matched[(page-1)*size : page*size], clamped to the slice,
// and the total page count ceil(len/size). Pages past the end are empty.
func Paginate[T any](matched []T, page, size int) ([]T, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	page = max(page, 1)
	total := (len(matched) + size - 1) / size

	start := (page - 1) * size
	if start >= len(matched) {
		return []T{}, total
	}
	end := min(start+size, len(matched))
	return matched[start:end], total
}

// PageNumbers lists the page links to render. Up to five pages are listed
// outright; beyond that a window of five starting two before the current
// page is shown, with the first and last page pinned and an ellipsis
// wherever numbers are skipped.
func PageNumbers(current, total int) []PageItem {
	if total <= 0 {
		return []PageItem{}
	}
	if total <= maxWindow {
		pages := make([]PageItem, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, Page(i))
		}
		return pages
	}

	current = min(max(current, 1), total)
	start := max(1, current-2)
	end := min(total, start+maxWindow-1)

	pages := make([]PageItem, 0, maxWindow+4)
	if start > 1 {
		pages = append(pages, Page(1))
		if start > 2 {
			pages = append(pages, Ellipsis)
		}
	}
	for i := start; i <= end; i++ {
		pages = append(pages, Page(i))
	}
	if end < total {
		if end < total-1 {
			pages = append(pages, Ellipsis)
		}
		pages = append(pages, Page(total))
	}
	return pages
}
