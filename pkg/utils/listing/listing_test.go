package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type order struct {
	ID      string
	Status  string
	Domains int
	Date    time.Time
}

var day = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func orderSchema() *Schema[order] {
	return &Schema[order]{
		Text:  []func(order) string{func(o order) string { return o.ID }},
		Exact: map[string]func(order) string{"status": func(o order) string { return o.Status }},
		Sorts: map[string]Comparator[order]{
			"id":      By(func(o order) string { return o.ID }, CompareStrings),
			"domains": By(func(o order) int { return o.Domains }, CompareInts),
			"date":    By(func(o order) time.Time { return o.Date }, CompareTimes),
			"status":  By(func(o order) string { return o.Status }, ComparePriority([]string{"processing", "completed", "cancelled"})),
		},
	}
}

func sampleOrders() []order {
	return []order{
		{ID: "ORD-3", Status: "completed", Domains: 5, Date: day.AddDate(0, 0, 2)},
		{ID: "ORD-1", Status: "processing", Domains: 12, Date: day},
		{ID: "ORD-2", Status: "cancelled", Domains: 1, Date: day.AddDate(0, 0, 1)},
		{ID: "ord-4", Status: "processing", Domains: 7, Date: day.AddDate(0, 0, 3)},
	}
}

func ids(items []order) []string {
	out := make([]string, len(items))
	for i, o := range items {
		out[i] = o.ID
	}
	return out
}

func TestSortState_Toggle(t *testing.T) {
	var s SortState
	s.Toggle("domains")
	require.Equal(t, SortState{Key: "domains", Dir: Asc}, s)
	s.Toggle("domains")
	require.Equal(t, Desc, s.Dir)
	s.Toggle("date")
	require.Equal(t, SortState{Key: "date", Dir: Asc}, s)
}

func TestView_SortByDomainsThenToggle(t *testing.T) {
	v := NewView(orderSchema(), 10, SortState{})
	require.NoError(t, v.ToggleSort("domains"))
	require.Equal(t, []string{"ORD-2", "ORD-3", "ord-4", "ORD-1"}, ids(v.Apply(sampleOrders()).Items))

	require.NoError(t, v.ToggleSort("domains"))
	require.Equal(t, []string{"ORD-1", "ord-4", "ORD-3", "ORD-2"}, ids(v.Apply(sampleOrders()).Items))

	require.NoError(t, v.ToggleSort("date"))
	require.Equal(t, SortState{Key: "date", Dir: Asc}, v.State().Sort)
	require.Equal(t, []string{"ORD-1", "ORD-2", "ORD-3", "ord-4"}, ids(v.Apply(sampleOrders()).Items))

	require.Error(t, v.ToggleSort("nope"))
}

func TestView_PageResetsOnSort(t *testing.T) {
	v := NewView(orderSchema(), 2, SortState{Key: "id", Dir: Asc})
	v.SetPage(2)
	p := v.Apply(sampleOrders())
	require.Equal(t, 2, p.Page)
	require.Equal(t, 2, p.TotalPages)

	require.NoError(t, v.ToggleSort("status"))
	require.Equal(t, 1, v.State().Page)
	p = v.Apply(sampleOrders())
	require.Equal(t, []string{"ORD-1", "ord-4"}, ids(p.Items))
}

func TestView_PageClamped(t *testing.T) {
	v := NewView(orderSchema(), 3, SortState{})
	v.SetPage(99)
	p := v.Apply(sampleOrders())
	require.Equal(t, 2, p.Page)
	require.Len(t, p.Items, 1)
	require.Equal(t, 2, v.State().Page)
}

func TestFilter_SearchAndExactAreAnded(t *testing.T) {
	s := orderSchema()
	got := s.Filter(sampleOrders(), Query{Search: "ORD", Filters: map[string]string{"status": "processing"}})
	require.Equal(t, []string{"ORD-1", "ord-4"}, ids(got))

	got = s.Filter(sampleOrders(), Query{Search: "-2"})
	require.Equal(t, []string{"ORD-2"}, ids(got))

	got = s.Filter(sampleOrders(), Query{Filters: map[string]string{"status": "all"}})
	require.Len(t, got, 4)

	require.Error(t, s.ValidateQuery(Query{Filters: map[string]string{"provider": "x"}}))
}

func TestView_SetQueryResetsPage(t *testing.T) {
	v := NewView(orderSchema(), 1, SortState{})
	v.SetPage(3)
	require.NoError(t, v.SetQuery(Query{Filters: map[string]string{"status": "processing"}}))
	require.Equal(t, 1, v.State().Page)
	require.Equal(t, 2, v.Apply(sampleOrders()).Total)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]order{}, 3, 10)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 1, p.TotalPages)
	require.Empty(t, p.Items)
}

func TestComparePriority_UnknownLast(t *testing.T) {
	cmp := ComparePriority([]string{"Active", "Pending"})
	require.Negative(t, cmp("active", "pending"))
	require.Negative(t, cmp("Pending", "Expired"))
	require.Zero(t, cmp("Expired", "Other"))
}

func TestRankFuzzy(t *testing.T) {
	labels := []string{"acme-mail.com", "zeta.io", "acme.co"}
	got := RankFuzzy("acme", labels)
	require.Len(t, got, 2)
	require.Equal(t, "acme.co", got[0].Label)
	require.Equal(t, 2, got[0].Index)
	require.Nil(t, RankFuzzy("", labels))
}
