package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DomainStore holds the operator's domains.
type DomainStore struct {
	items *OrderedMap[string, Domain]
	bus   publisher
	now   func() time.Time
}

func NewDomainStore(bus publisher) *DomainStore {
	return &DomainStore{items: NewOrderedMap[string, Domain](), bus: orNop(bus), now: time.Now}
}

func (s *DomainStore) publish(action string, ids ...string) {
	if len(ids) == 0 && action != ActionSeeded {
		return
	}
	s.bus.Publish(DomainsChanged{Action: action, IDs: ids})
}

// Seed inserts domains as-is, keeping their IDs.
func (s *DomainStore) Seed(domains []Domain) {
	for _, d := range domains {
		s.items.Set(d.ID, d.clone())
	}
	s.publish(ActionSeeded)
}

func (s *DomainStore) List() []Domain {
	vals := s.items.Values()
	for i := range vals {
		vals[i] = vals[i].clone()
	}
	return vals
}

func (s *DomainStore) Get(id string) (Domain, error) {
	d, ok := s.items.Get(id)
	if !ok {
		return Domain{}, ErrDomainNotFound
	}
	return d.clone(), nil
}

// Add inserts new domains, assigning IDs and creation times. Duplicate names
// are accepted.
func (s *DomainStore) Add(domains []Domain) []Domain {
	added := make([]Domain, 0, len(domains))
	ids := make([]string, 0, len(domains))
	_ = s.items.Update(func(m *OrderedMap[string, Domain]) error {
		for _, d := range domains {
			d = d.clone()
			d.ID = uuid.NewString()
			d.CreatedAt = s.now()
			m.setLocked(d.ID, d)
			added = append(added, d.clone())
			ids = append(ids, d.ID)
		}
		return nil
	})
	s.publish(ActionImported, ids...)
	return added
}

// Swap replaces the name (and optionally the forwarding URL) of a domain and
// puts it back to Pending.
func (s *DomainStore) Swap(id, newName, forwardingURL string) (Domain, Domain, error) {
	var before, after Domain
	err := s.items.Update(func(m *OrderedMap[string, Domain]) error {
		d, ok := m.m[id]
		if !ok {
			return ErrDomainNotFound
		}
		for _, other := range m.m {
			if other.ID != id && strings.EqualFold(other.Domain, newName) {
				return ErrDuplicateDomain
			}
		}
		before = d.clone()
		d.Domain = newName
		if forwardingURL != "" {
			d.ForwardingURL = forwardingURL
		}
		d.Status = DomainStatusPending
		m.m[id] = d
		after = d.clone()
		return nil
	})
	if err != nil {
		return Domain{}, Domain{}, err
	}
	s.publish(ActionSwapped, id)
	return before, after, nil
}

// SetForwarding updates the forwarding URL of every listed domain. Nothing is
// changed when any ID is unknown.
func (s *DomainStore) SetForwarding(ids []string, url string) ([]Domain, error) {
	var updated []Domain
	err := s.items.Update(func(m *OrderedMap[string, Domain]) error {
		for _, id := range ids {
			if _, ok := m.m[id]; !ok {
				return ErrDomainNotFound
			}
		}
		for _, id := range ids {
			d := m.m[id]
			d.ForwardingURL = url
			m.m[id] = d
			updated = append(updated, d.clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ActionForwarding, ids...)
	return updated, nil
}

// SetSelected sets the selected flag on the listed domains.
func (s *DomainStore) SetSelected(ids []string, selected bool) (int, error) {
	err := s.items.Update(func(m *OrderedMap[string, Domain]) error {
		for _, id := range ids {
			if _, ok := m.m[id]; !ok {
				return ErrDomainNotFound
			}
		}
		for _, id := range ids {
			d := m.m[id]
			d.Selected = selected
			m.m[id] = d
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.publish(ActionSelection, ids...)
	return len(ids), nil
}

// SetSelectedWhere sets the selected flag on every domain accepted by match
// and leaves the rest untouched.
func (s *DomainStore) SetSelectedWhere(match func(Domain) bool, selected bool) []string {
	var ids []string
	_ = s.items.Update(func(m *OrderedMap[string, Domain]) error {
		for _, id := range m.order {
			d := m.m[id]
			if !match(d) {
				continue
			}
			d.Selected = selected
			m.m[id] = d
			ids = append(ids, id)
		}
		return nil
	})
	s.publish(ActionSelection, ids...)
	return ids
}

// Selected returns the currently selected domains in table order.
func (s *DomainStore) Selected() []Domain {
	var out []Domain
	for _, d := range s.List() {
		if d.Selected {
			out = append(out, d)
		}
	}
	return out
}

func (s *DomainStore) SetStatus(id, status string) (Domain, error) {
	var out Domain
	err := s.items.Update(func(m *OrderedMap[string, Domain]) error {
		d, ok := m.m[id]
		if !ok {
			return ErrDomainNotFound
		}
		d.Status = status
		m.m[id] = d
		out = d.clone()
		return nil
	})
	if err != nil {
		return Domain{}, err
	}
	s.publish(ActionStatus, id)
	return out, nil
}

func (s *DomainStore) Delete(id string) error {
	if !s.items.Delete(id) {
		return ErrDomainNotFound
	}
	s.publish(ActionDeleted, id)
	return nil
}
