package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderStore struct {
	items *OrderedMap[string, Order]
	bus   publisher
	now   func() time.Time
}

func NewOrderStore(bus publisher) *OrderStore {
	return &OrderStore{items: NewOrderedMap[string, Order](), bus: orNop(bus), now: time.Now}
}

func (s *OrderStore) Seed(orders []Order) {
	for _, o := range orders {
		s.items.Set(o.ID, o.clone())
	}
	s.bus.Publish(OrdersChanged{Action: ActionSeeded})
}

func (s *OrderStore) List() []Order {
	vals := s.items.Values()
	for i := range vals {
		vals[i] = vals[i].clone()
	}
	return vals
}

func (s *OrderStore) Get(id string) (Order, error) {
	o, ok := s.items.Get(id)
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o.clone(), nil
}

// Create stores a new processing order, assigning its ID and date.
func (s *OrderStore) Create(o Order) Order {
	o = o.clone()
	o.ID = fmt.Sprintf("ORD-%s", uuid.NewString()[:8])
	o.Date = s.now()
	o.Status = OrderProcessing
	s.items.Set(o.ID, o)
	s.bus.Publish(OrdersChanged{Action: ActionCreated, IDs: []string{o.ID}})
	return o.clone()
}

// Cancel moves a processing order to cancelled.
func (s *OrderStore) Cancel(id string) (Order, error) {
	var out Order
	err := s.items.Update(func(m *OrderedMap[string, Order]) error {
		o, ok := m.m[id]
		if !ok {
			return ErrOrderNotFound
		}
		if o.Status != OrderProcessing {
			return transitionError("order", id, o.Status, OrderCancelled)
		}
		o.Status = OrderCancelled
		for i := range o.Domains {
			o.Domains[i].Status = string(OrderCancelled)
		}
		m.m[id] = o
		out = o.clone()
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	s.bus.Publish(OrdersChanged{Action: ActionCancelled, IDs: []string{id}})
	return out, nil
}

// CountByStatus tallies orders per status.
func (s *OrderStore) CountByStatus() map[OrderStatus]int {
	out := map[OrderStatus]int{}
	for _, o := range s.items.Values() {
		out[o.Status]++
	}
	return out
}
