package store

import (
	"github.com/cockroachdb/swiss"
	"iter"
)

var _ Store[int, int] = (*Swiss[int, int])(nil)

// Swiss is a [Store] backed by a Swiss table, which is friendlier to large maps with frequent deletes.
// Iteration order is arbitrary.
type Swiss[K comparable, V any] struct {
	capacity int
	m        *swiss.Map[K, Entry[K, V]]
}

// NewSwiss creates an empty [Swiss] store with room for capacity entries before growing.
func NewSwiss[K comparable, V any](capacity int) *Swiss[K, V] {
	return &Swiss[K, V]{
		capacity: capacity,
		m:        swiss.New[K, Entry[K, V]](capacity),
	}
}

// SwissFactory returns a [Factory] for [Swiss] stores.
func SwissFactory[K comparable, V any](capacity int) Factory[K, V] {
	return func() Store[K, V] {
		return NewSwiss[K, V](capacity)
	}
}

func (s *Swiss[K, V]) Has(key K) bool {
	_, ok := s.m.Get(key)
	return ok
}

func (s *Swiss[K, V]) Get(key K) (Entry[K, V], bool) {
	return s.m.Get(key)
}

func (s *Swiss[K, V]) Put(entry Entry[K, V]) {
	s.m.Put(entry.Key.Get(), entry)
}

func (s *Swiss[K, V]) Remove(key K) (Entry[K, V], bool) {
	e, ok := s.m.Get(key)
	if !ok {
		return e, false
	}
	s.m.Delete(key)
	return e, true
}

func (s *Swiss[K, V]) Len() int {
	return s.m.Len()
}

func (s *Swiss[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		s.m.All(func(_ K, e Entry[K, V]) bool {
			return yield(e)
		})
	}
}

func (s *Swiss[K, V]) Clear() {
	s.m.Close()
	s.m = swiss.New[K, Entry[K, V]](s.capacity)
}
