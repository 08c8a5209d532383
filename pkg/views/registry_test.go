package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
)

func TestSession_OrderSortClicks(t *testing.T) {
	s := NewRegistry(2).Session("abc")

	st, err := s.ToggleSort(TableOrders, "domains")
	require.NoError(t, err)
	require.Equal(t, listing.SortState{Key: "domains", Dir: listing.Asc}, st.Sort)

	page := s.Orders(store.SeedOrders())
	require.Len(t, page.Items[0].Domains, 1)

	st, err = s.ToggleSort(TableOrders, "domains")
	require.NoError(t, err)
	require.Equal(t, listing.Desc, st.Sort.Dir)
	page = s.Orders(store.SeedOrders())
	require.Equal(t, "ORD-1004", page.Items[0].ID)

	st, err = s.ToggleSort(TableOrders, "total")
	require.NoError(t, err)
	require.Equal(t, listing.SortState{Key: "total", Dir: listing.Asc}, st.Sort)

	_, err = s.ToggleSort(TableOrders, "colour")
	require.Error(t, err)
}

func TestSession_PageResets(t *testing.T) {
	s := NewRegistry(5).Session("abc")

	st, err := s.SetPage(TableDomains, 3)
	require.NoError(t, err)
	require.Equal(t, 3, st.Page)

	st, err = s.ToggleSort(TableDomains, "domain")
	require.NoError(t, err)
	require.Equal(t, 1, st.Page)

	_, _ = s.SetPage(TableDomains, 2)
	st, err = s.SetQuery(TableDomains, listing.Query{Filters: map[string]string{"provider": "Microsoft"}})
	require.NoError(t, err)
	require.Equal(t, 1, st.Page)

	_, _ = s.SetPage(TableDomains, 9)
	page := s.Domains(store.SeedDomains())
	require.Equal(t, 5, page.Total)
	require.Equal(t, 1, page.TotalPages)
	require.Equal(t, 1, page.Page)

	_, err = s.SetQuery(TableDomains, listing.Query{Filters: map[string]string{"colour": "red"}})
	require.Error(t, err)
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	r := NewRegistry(10)
	_, err := r.Session("a").ToggleSort(TableDomains, "domain")
	require.NoError(t, err)

	st, err := r.Session("b").State(TableDomains)
	require.NoError(t, err)
	require.Empty(t, st.Sort.Key)
	require.Same(t, r.Session(""), r.Session(DefaultSession))
}

func TestRegistry_EvictsLeastRecentlyUsed(t *testing.T) {
	r := NewRegistry(10)
	r.maxSessions = 2
	clock := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	a := r.Session("a")
	r.Session("b")
	r.Session("a")
	r.Session("c")

	require.Equal(t, 2, r.Len())
	require.Same(t, a, r.Session("a"))
}

func TestParseTable(t *testing.T) {
	tbl, err := ParseTable("inbox")
	require.NoError(t, err)
	require.Equal(t, TableInbox, tbl)

	_, err = ParseTable("users")
	require.ErrorIs(t, err, ErrUnknownTable)
}

func TestSession_VisibleDomainsIgnoresPaging(t *testing.T) {
	s := NewRegistry(2).Session("abc")
	_, err := s.SetQuery(TableDomains, listing.Query{Filters: map[string]string{"provider": "Microsoft"}})
	require.NoError(t, err)
	_, err = s.SetPage(TableDomains, 2)
	require.NoError(t, err)

	require.Equal(t, "Microsoft", s.DomainQuery().Filters["provider"])
	all := s.VisibleDomains(store.SeedDomains())
	require.Len(t, all, 5)
	require.Len(t, s.Domains(store.SeedDomains()).Items, 2)
}
