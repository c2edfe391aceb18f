package store

import "iter"

var _ Store[int, int] = (*Hash[int, int])(nil)

// Hash is a [Store] backed by a builtin map.
// Iteration order is arbitrary.
type Hash[K comparable, V any] struct {
	m map[K]Entry[K, V]
}

// NewHash creates an empty [Hash] store.
func NewHash[K comparable, V any]() *Hash[K, V] {
	return &Hash[K, V]{m: map[K]Entry[K, V]{}}
}

// HashFactory returns a [Factory] for [Hash] stores.
func HashFactory[K comparable, V any]() Factory[K, V] {
	return func() Store[K, V] {
		return NewHash[K, V]()
	}
}

func (h *Hash[K, V]) Has(key K) bool {
	_, ok := h.m[key]
	return ok
}

func (h *Hash[K, V]) Get(key K) (Entry[K, V], bool) {
	e, ok := h.m[key]
	return e, ok
}

func (h *Hash[K, V]) Put(entry Entry[K, V]) {
	h.m[entry.Key.Get()] = entry
}

func (h *Hash[K, V]) Remove(key K) (Entry[K, V], bool) {
	e, ok := h.m[key]
	if !ok {
		return e, false
	}
	delete(h.m, key)
	return e, true
}

func (h *Hash[K, V]) Len() int {
	return len(h.m)
}

func (h *Hash[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, e := range h.m {
			if !yield(e) {
				return
			}
		}
	}
}

func (h *Hash[K, V]) Clear() {
	clear(h.m)
}
