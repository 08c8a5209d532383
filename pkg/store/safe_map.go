package store

import "sync"

// OrderedMap is a mutex-guarded map that remembers insertion order.
type OrderedMap[K comparable, V any] struct {
	mu    sync.RWMutex
	m     map[K]V
	order []K
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: make(map[K]V)}
}

func (s *OrderedMap[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(key, value)
}

func (s *OrderedMap[K, V]) setLocked(key K, value V) {
	if _, ok := s.m[key]; !ok {
		s.order = append(s.order, key)
	}
	s.m[key] = value
}

func (s *OrderedMap[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, found := s.m[key]
	return val, found
}

func (s *OrderedMap[K, V]) Delete(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteLocked(key)
}

func (s *OrderedMap[K, V]) deleteLocked(key K) bool {
	if _, ok := s.m[key]; !ok {
		return false
	}
	delete(s.m, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Values returns the values in insertion order.
func (s *OrderedMap[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valuesLocked()
}

func (s *OrderedMap[K, V]) valuesLocked() []V {
	out := make([]V, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.m[k])
	}
	return out
}

func (s *OrderedMap[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Update runs fn with the write lock held.
func (s *OrderedMap[K, V]) Update(fn func(m *OrderedMap[K, V]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}
