package listing

import (
	"net/url"
	"strconv"
	"strings"
)

// State is the interactive state of one table. Changing what is matched
// (filter or search) sends the user back to the first page.
type State struct {
	filter string
	search string
	page   int
}

func NewState() *State {
	return &State{filter: FilterAll, page: 1}
}

func (s *State) SetFilter(filter string) {
	if filter == "" {
		filter = FilterAll
	}
	s.filter = filter
	s.page = 1
}

func (s *State) SetSearch(search string) {
	s.search = search
	s.page = 1
}

// SetPage moves to page, treating anything below 1 as 1.
func (s *State) SetPage(page int) {
	s.page = max(page, 1)
}

func (s *State) Filter() string { return s.filter }
func (s *State) Search() string { return s.search }
func (s *State) Page() int      { return s.page }

// Query snapshots the state for Apply.
func (s *State) Query() Query {
	return Query{Filter: s.filter, Search: s.search, Page: s.page}
}

// ParseQuery builds a Query from URL parameters: filterParam for the
// category, "q" for search and "page" for the page. Filter and search are
// applied before the page so a bare filter change lands on page 1.
func ParseQuery(values url.Values, filterParam string) Query {
	st := NewState()
	st.SetFilter(strings.TrimSpace(values.Get(filterParam)))
	st.SetSearch(values.Get("q"))
	if raw := values.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			st.SetPage(page)
		}
	}
	return st.Query()
}
