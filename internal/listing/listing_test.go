package listing

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     string
	Name   string
	Status string
	Tags   []string
}

var rowConfig = Config[row]{
	Category: func(r row) string { return r.Status },
	SearchFields: func(r row) []string {
		return append([]string{r.ID, r.Name}, r.Tags...)
	},
	PageSize: 5,
}

func rows(n int) []row {
	out := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		status := "active"
		if i%3 == 0 {
			status = "pending"
		}
		out = append(out, row{ID: fmt.Sprintf("R-%03d", i), Name: fmt.Sprintf("Row %d", i), Status: status})
	}
	return out
}

func TestApplyTwelveItemsPageSizeFive(t *testing.T) {
	items := rows(12)

	res := Apply(items, rowConfig, Query{Filter: FilterAll, Page: 1})

	assert.Equal(t, items[:5], res.Items)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, []PageItem{Page(1), Page(2), Page(3)}, res.Pages)
	assert.Equal(t, 12, res.Matched)
	assert.Equal(t, 5, res.PageSize)
}

func TestConcatenatedPagesReproduceMatches(t *testing.T) {
	items := rows(23)
	for _, filter := range []string{"all", "active", "PENDING"} {
		matched := Filter(items, rowConfig, filter, "")
		first := Apply(items, rowConfig, Query{Filter: filter, Page: 1})

		var all []row
		for p := 1; p <= first.TotalPages; p++ {
			all = append(all, Apply(items, rowConfig, Query{Filter: filter, Page: p}).Items...)
		}
		assert.Equal(t, matched, all, filter)
		assert.Equal(t, (len(matched)+4)/5, first.TotalPages, filter)
	}
}

func TestFilter(t *testing.T) {
	items := rows(9)

	t.Run("all matches everything", func(t *testing.T) {
		assert.Equal(t, items, Filter(items, rowConfig, "all", ""))
		assert.Equal(t, items, Filter(items, rowConfig, "ALL", ""))
		assert.Equal(t, items, Filter(items, rowConfig, "", ""))
	})

	t.Run("category is case-insensitive", func(t *testing.T) {
		got := Filter(items, rowConfig, "Pending", "")
		require.Len(t, got, 3)
		for _, r := range got {
			assert.Equal(t, "pending", r.Status)
		}
	})

	t.Run("unknown category matches nothing", func(t *testing.T) {
		assert.Empty(t, Filter(items, rowConfig, "archived", ""))
	})

	t.Run("search ORs across fields", func(t *testing.T) {
		tagged := append(rows(2), row{ID: "X-1", Name: "Other", Status: "active", Tags: []string{"Agriculture"}})
		assert.Len(t, Filter(tagged, rowConfig, "all", "agri"), 1)
		assert.Len(t, Filter(tagged, rowConfig, "all", "row 2"), 1)
		assert.Len(t, Filter(tagged, rowConfig, "all", "r-00"), 2)
	})

	t.Run("extra predicates are ANDed", func(t *testing.T) {
		odd := func(r row) bool { return strings.HasSuffix(r.ID, "1") || strings.HasSuffix(r.ID, "3") }
		got := Filter(items, rowConfig, "active", "", odd)
		require.Len(t, got, 1)
		assert.Equal(t, "R-001", got[0].ID)
	})
}

func TestSearchMatchingNothing(t *testing.T) {
	res := Apply(rows(12), rowConfig, Query{Filter: "all", Search: "zzz", Page: 1})

	assert.Equal(t, 0, res.TotalPages)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Pages)
}

func TestSearchKeepsSurroundingSpaces(t *testing.T) {
	res := Apply(rows(12), rowConfig, Query{Filter: "all", Search: "ROW 1", Page: 1})
	assert.Equal(t, 4, res.Matched)

	res = Apply(rows(12), rowConfig, Query{Filter: "all", Search: "row 1 ", Page: 1})
	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 0, res.TotalPages)
}

func TestApplyEdgeCases(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		res := Apply([]row{}, rowConfig, Query{Page: 1})
		assert.Equal(t, 0, res.TotalPages)
		assert.Empty(t, res.Items)
	})

	t.Run("page below one is page one", func(t *testing.T) {
		res := Apply(rows(12), rowConfig, Query{Page: -3})
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, "R-001", res.Items[0].ID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		res := Apply(rows(12), rowConfig, Query{Page: 9})
		assert.Empty(t, res.Items)
		assert.Equal(t, 3, res.TotalPages)
	})

	t.Run("last page is partial", func(t *testing.T) {
		res := Apply(rows(12), rowConfig, Query{Page: 3})
		assert.Len(t, res.Items, 2)
	})

	t.Run("non-positive page size falls back to default", func(t *testing.T) {
		cfg := rowConfig
		cfg.PageSize = 0
		res := Apply(rows(25), cfg, Query{Page: 1})
		assert.Equal(t, DefaultPageSize, res.PageSize)
		assert.Equal(t, 3, res.TotalPages)
	})
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		current, total int
		want           string
	}{
		{1, 0, ""},
		{1, 1, "1"},
		{3, 5, "1 2 3 4 5"},
		{1, 6, "1 2 3 4 5 6"},
		{1, 10, "1 2 3 4 5 ... 10"},
		{3, 10, "1 2 3 4 5 ... 10"},
		{4, 10, "1 2 3 4 5 6 ... 10"},
		{5, 10, "1 ... 3 4 5 6 7 ... 10"},
		{7, 10, "1 ... 5 6 7 8 9 10"},
		{9, 10, "1 ... 7 8 9 10"},
		{10, 10, "1 ... 8 9 10"},
		{42, 10, "1 ... 8 9 10"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d of %d", tt.current, tt.total), func(t *testing.T) {
			got := PageNumbers(tt.current, tt.total)
			parts := make([]string, len(got))
			for i, p := range got {
				parts[i] = p.String()
			}
			assert.Equal(t, tt.want, strings.Join(parts, " "))

			if tt.total > 5 {
				assert.Equal(t, Page(1), got[0])
				assert.Equal(t, Page(tt.total), got[len(got)-1])
			}
			for i, p := range got {
				if p.IsEllipsis() {
					assert.Greater(t, got[i+1].Number-got[i-1].Number, 1, "ellipsis must mark a gap")
				}
			}
		})
	}
}

func TestPageItemJSON(t *testing.T) {
	raw, err := json.Marshal(PageNumbers(5, 10))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,"...",3,4,5,6,7,"...",10]`, string(raw))

	var back []PageItem
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, PageNumbers(5, 10), back)

	assert.Error(t, json.Unmarshal([]byte(`[0]`), &back))
}

func TestStateResetsPage(t *testing.T) {
	st := NewState()
	assert.Equal(t, FilterAll, st.Filter())

	st.SetPage(3)
	st.SetSearch("food")
	assert.Equal(t, 1, st.Page())

	st.SetPage(4)
	st.SetFilter("active")
	assert.Equal(t, 1, st.Page())

	st.SetPage(2)
	assert.Equal(t, Query{Filter: "active", Search: "food", Page: 2}, st.Query())

	st.SetPage(0)
	assert.Equal(t, 1, st.Page())

	st.SetFilter("")
	assert.Equal(t, FilterAll, st.Filter())
}

func TestParseQuery(t *testing.T) {
	q := ParseQuery(url.Values{"status": {" pending "}, "q": {"rice"}, "page": {"2"}}, "status")
	assert.Equal(t, Query{Filter: "pending", Search: "rice", Page: 2}, q)

	q = ParseQuery(url.Values{"q": {" rice "}}, "status")
	assert.Equal(t, " rice ", q.Search)

	q = ParseQuery(url.Values{"page": {"abc"}}, "status")
	assert.Equal(t, Query{Filter: FilterAll, Page: 1}, q)
}
