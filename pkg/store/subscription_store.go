package store

type SubscriptionStore struct {
	items *OrderedMap[string, Subscription]
	bus   publisher
}

func NewSubscriptionStore(bus publisher) *SubscriptionStore {
	return &SubscriptionStore{items: NewOrderedMap[string, Subscription](), bus: orNop(bus)}
}

func (s *SubscriptionStore) Seed(subs []Subscription) {
	for _, sub := range subs {
		s.items.Set(sub.ID, sub)
	}
	s.bus.Publish(SubscriptionsChanged{Action: ActionSeeded})
}

func (s *SubscriptionStore) List() []Subscription {
	return s.items.Values()
}

func (s *SubscriptionStore) Get(id string) (Subscription, error) {
	sub, ok := s.items.Get(id)
	if !ok {
		return Subscription{}, ErrSubscriptionNotFound
	}
	return sub, nil
}

// Cancel moves an active or trial subscription to canceled; its slots stop
// counting towards AvailableSlots.
func (s *SubscriptionStore) Cancel(id string) (Subscription, error) {
	var out Subscription
	err := s.items.Update(func(m *OrderedMap[string, Subscription]) error {
		sub, ok := m.m[id]
		if !ok {
			return ErrSubscriptionNotFound
		}
		if !sub.Live() {
			return transitionError("subscription", id, sub.Status, SubscriptionCanceled)
		}
		sub.Status = SubscriptionCanceled
		m.m[id] = sub
		out = sub
		return nil
	})
	if err != nil {
		return Subscription{}, err
	}
	s.bus.Publish(SubscriptionsChanged{Action: ActionCancelled, IDs: []string{id}})
	return out, nil
}

// AddSlots grows a live subscription by n domain slots.
func (s *SubscriptionStore) AddSlots(id string, n int) (Subscription, error) {
	var out Subscription
	err := s.items.Update(func(m *OrderedMap[string, Subscription]) error {
		sub, ok := m.m[id]
		if !ok {
			return ErrSubscriptionNotFound
		}
		if !sub.Live() {
			return transitionError("subscription", id, sub.Status, "extended")
		}
		sub.AvailableDomainSlots += n
		sub.Quantity += n
		m.m[id] = sub
		out = sub
		return nil
	})
	if err != nil {
		return Subscription{}, err
	}
	s.bus.Publish(SubscriptionsChanged{Action: ActionSlots, IDs: []string{id}})
	return out, nil
}

// AvailableSlots sums the free domain slots of live subscriptions.
func (s *SubscriptionStore) AvailableSlots() int {
	total := 0
	for _, sub := range s.items.Values() {
		if sub.Live() {
			total += sub.AvailableDomainSlots
		}
	}
	return total
}

// ConsumeSlots takes n slots from live subscriptions in table order. Nothing
// is consumed when fewer than n are available.
func (s *SubscriptionStore) ConsumeSlots(n int) error {
	var touched []string
	err := s.items.Update(func(m *OrderedMap[string, Subscription]) error {
		available := 0
		for _, sub := range m.valuesLocked() {
			if sub.Live() {
				available += sub.AvailableDomainSlots
			}
		}
		if n > available {
			return &SlotLimitError{Requested: n, Available: available}
		}
		remaining := n
		for _, id := range m.order {
			if remaining == 0 {
				break
			}
			sub := m.m[id]
			if !sub.Live() || sub.AvailableDomainSlots == 0 {
				continue
			}
			take := min(remaining, sub.AvailableDomainSlots)
			sub.AvailableDomainSlots -= take
			remaining -= take
			m.m[id] = sub
			touched = append(touched, id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(touched) > 0 {
		s.bus.Publish(SubscriptionsChanged{Action: ActionSlots, IDs: touched})
	}
	return nil
}
