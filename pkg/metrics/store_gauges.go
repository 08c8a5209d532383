package metrics

import (
	"github.com/vit0-9/mailr_api/pkg/eventbus"
	"github.com/vit0-9/mailr_api/pkg/store"
)

// Subscriber keeps the store gauges in step with store events.
type Subscriber struct {
	stores *store.Stores
	m      *collectors
}

func NewSubscriber(stores *store.Stores) *Subscriber {
	return &Subscriber{stores: stores, m: getMetrics()}
}

// Register subscribes to every store event on bus and primes the gauges.
func (s *Subscriber) Register(bus eventbus.EventBus) {
	bus.Subscribe(s.onDomains)
	bus.Subscribe(s.onOrders)
	bus.Subscribe(s.onSubscriptions)
	bus.Subscribe(s.onMessages)
	s.Refresh()
}

func (s *Subscriber) onDomains(e store.DomainsChanged) {
	s.m.storeEvents.WithLabelValues("domain", e.Action).Inc()
	s.refreshDomains()
}

func (s *Subscriber) onOrders(e store.OrdersChanged) {
	s.m.storeEvents.WithLabelValues("order", e.Action).Inc()
	s.refreshOrders()
}

func (s *Subscriber) onSubscriptions(e store.SubscriptionsChanged) {
	s.m.storeEvents.WithLabelValues("subscription", e.Action).Inc()
	s.m.availableSlots.Set(float64(s.stores.Subscriptions.AvailableSlots()))
}

func (s *Subscriber) onMessages(e store.MessagesChanged) {
	s.m.storeEvents.WithLabelValues("message", e.Action).Inc()
	s.m.unreadMessages.Set(float64(s.stores.Messages.UnreadCount()))
}

// Refresh recomputes every gauge from the stores.
func (s *Subscriber) Refresh() {
	s.refreshDomains()
	s.refreshOrders()
	s.m.availableSlots.Set(float64(s.stores.Subscriptions.AvailableSlots()))
	s.m.unreadMessages.Set(float64(s.stores.Messages.UnreadCount()))
}

func (s *Subscriber) refreshDomains() {
	s.m.domains.Reset()
	for _, d := range s.stores.Domains.List() {
		s.m.domains.WithLabelValues(d.Status).Inc()
	}
}

func (s *Subscriber) refreshOrders() {
	s.m.orders.Reset()
	for status, n := range s.stores.Orders.CountByStatus() {
		s.m.orders.WithLabelValues(string(status)).Set(float64(n))
	}
}
