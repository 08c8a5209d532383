// Package views keeps the table state (search, filters, sort, page) of each
// dashboard session.
package views

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
)

type Table string

const (
	TableDomains       Table = "domains"
	TableOrders        Table = "orders"
	TableSubscriptions Table = "subscriptions"
	TableInbox         Table = "inbox"
)

// DefaultSession is used when a request carries no session id.
const DefaultSession = "default"

const defaultMaxSessions = 1000

// ErrUnknownTable is returned for table names without a view.
var ErrUnknownTable = errors.New("unknown table")

func ParseTable(s string) (Table, error) {
	switch t := Table(s); t {
	case TableDomains, TableOrders, TableSubscriptions, TableInbox:
		return t, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTable, s)
}

// tableView is the type-independent part of listing.View.
type tableView interface {
	ToggleSort(key string) error
	SetSort(st listing.SortState) error
	SetQuery(q listing.Query) error
	SetPage(page int)
	State() listing.State
}

// Session is the set of table views of one dashboard session.
type Session struct {
	mu       sync.Mutex
	lastSeen time.Time

	domains       *listing.View[store.Domain]
	orders        *listing.View[store.Order]
	subscriptions *listing.View[store.Subscription]
	inbox         *listing.View[store.Message]
}

func newSession(pageSize int) *Session {
	return &Session{
		domains:       listing.NewView(services.DomainSchema, pageSize, services.DefaultDomainSort),
		orders:        listing.NewView(services.OrderSchema, pageSize, services.DefaultOrderSort),
		subscriptions: listing.NewView(services.SubscriptionSchema, pageSize, services.DefaultSubscriptionSort),
		inbox:         listing.NewView(services.MessageSchema, pageSize, services.DefaultMessageSort),
	}
}

func (s *Session) view(t Table) (tableView, error) {
	switch t {
	case TableDomains:
		return s.domains, nil
	case TableOrders:
		return s.orders, nil
	case TableSubscriptions:
		return s.subscriptions, nil
	case TableInbox:
		return s.inbox, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownTable, t)
}

func (s *Session) with(t Table, fn func(v tableView) error) (listing.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.view(t)
	if err != nil {
		return listing.State{}, err
	}
	if err := fn(v); err != nil {
		return listing.State{}, err
	}
	return v.State(), nil
}

// ToggleSort applies a header click on column key.
func (s *Session) ToggleSort(t Table, key string) (listing.State, error) {
	return s.with(t, func(v tableView) error { return v.ToggleSort(key) })
}

func (s *Session) SetSort(t Table, st listing.SortState) (listing.State, error) {
	return s.with(t, func(v tableView) error { return v.SetSort(st) })
}

func (s *Session) SetQuery(t Table, q listing.Query) (listing.State, error) {
	return s.with(t, func(v tableView) error { return v.SetQuery(q) })
}

func (s *Session) SetPage(t Table, page int) (listing.State, error) {
	return s.with(t, func(v tableView) error {
		v.SetPage(page)
		return nil
	})
}

func (s *Session) State(t Table) (listing.State, error) {
	return s.with(t, func(tableView) error { return nil })
}

// Domains renders the current page of the domains table.
func (s *Session) Domains(items []store.Domain) listing.Page[store.Domain] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.domains.Apply(items)
}

// VisibleDomains is every filtered and sorted domain, as exported.
func (s *Session) VisibleDomains(items []store.Domain) []store.Domain {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.domains.Visible(items)
}

func (s *Session) DomainQuery() listing.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.domains.Query()
}

func (s *Session) Orders(items []store.Order) listing.Page[store.Order] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Apply(items)
}

func (s *Session) Subscriptions(items []store.Subscription) listing.Page[store.Subscription] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscriptions.Apply(items)
}

func (s *Session) Inbox(items []store.Message) listing.Page[store.Message] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inbox.Apply(items)
}

// Registry hands out sessions by id, evicting the least recently used one
// past maxSessions.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	pageSize    int
	maxSessions int
	now         func() time.Time
}

func NewRegistry(pageSize int) *Registry {
	return &Registry{
		sessions:    map[string]*Session{},
		pageSize:    pageSize,
		maxSessions: defaultMaxSessions,
		now:         time.Now,
	}
}

// Session returns the session for id, creating it on first use.
func (r *Registry) Session(id string) *Session {
	if id == "" {
		id = DefaultSession
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		if len(r.sessions) >= r.maxSessions {
			r.evictOldest()
		}
		s = newSession(r.pageSize)
		r.sessions[id] = s
	}
	s.lastSeen = r.now()
	return s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, s := range r.sessions {
		if oldestID == "" || s.lastSeen.Before(oldest) {
			oldestID, oldest = id, s.lastSeen
		}
	}
	delete(r.sessions, oldestID)
}
