// Package store provides the keyed, insertion-ordered collection shared by the
// cart and the favorites list, so both get identical dedup semantics.
package store

import "sync"

// AggregateStore keeps values unique by key in first-insertion order. All
// operations hold an exclusive lock; reads return copies, never live state.
type AggregateStore[T any] struct {
	mu    sync.Mutex
	keyOf func(T) string
	items map[string]T
	order []string
}

func New[T any](keyOf func(T) string) *AggregateStore[T] {
	return &AggregateStore[T]{
		keyOf: keyOf,
		items: make(map[string]T),
	}
}

// Upsert inserts v, or when its key already exists, replaces the existing
// value with merge(old, v). A nil merge replaces with the incoming value.
// Insertion order is kept on merge.
func (s *AggregateStore[T]) Upsert(v T, merge func(old, incoming T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.keyOf(v)
	if old, ok := s.items[key]; ok {
		if merge == nil {
			s.items[key] = v
		} else {
			s.items[key] = merge(old, v)
		}
		return
	}
	s.items[key] = v
	s.order = append(s.order, key)
}

// Remove deletes the value for key. Removing an absent key is a no-op.
func (s *AggregateStore[T]) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[key]; !ok {
		return
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *AggregateStore[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *AggregateStore[T]) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[key]
	return ok
}

// Values returns a snapshot in insertion order.
func (s *AggregateStore[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}

// Replace swaps the whole content for vs atomically, keeping the given order.
// Duplicate keys in vs collapse to the last occurrence.
func (s *AggregateStore[T]) Replace(vs []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T, len(vs))
	s.order = s.order[:0]
	for _, v := range vs {
		key := s.keyOf(v)
		if _, ok := s.items[key]; !ok {
			s.order = append(s.order, key)
		}
		s.items[key] = v
	}
}

func (s *AggregateStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
	s.order = nil
}

func (s *AggregateStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
