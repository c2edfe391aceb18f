// Package store defines the backing map contract used on each side of a bidirectional map, along with hash and ordered implementations.
//
// Every entry holds one half of a split key and one half of a split value.
// Stores never rejoin or release halves themselves, that's the owner's job.
package store

import (
	"github.com/saylorsolutions/bimap/split"
	"iter"
)

// Entry is a key half and a value half, as held by a [Store].
// Stores also keep a shallow copy of the key beside its half, so any data the key points to is shared rather than duplicated.
type Entry[K, V any] struct {
	Key   *split.Half[K]
	Value *split.Half[V]
}

// Pair returns the values referenced by the entry.
func (e Entry[K, V]) Pair() (K, V) {
	return e.Key.Get(), e.Value.Get()
}

// Store is the minimal capability set needed to back one side of a bidirectional map.
type Store[K comparable, V any] interface {
	// Has returns true if the key is bound.
	Has(key K) bool
	// Get returns the entry bound to key.
	Get(key K) (Entry[K, V], bool)
	// Put binds the entry by its key value, replacing any existing binding.
	Put(entry Entry[K, V])
	// Remove unbinds key and returns the entry that was bound to it.
	Remove(key K) (Entry[K, V], bool)
	// Len returns the number of bound entries.
	Len() int
	// All iterates entries in the store's natural order.
	All() iter.Seq[Entry[K, V]]
	// Clear removes all entries.
	Clear()
}

// Ranger is a [Store] with sorted keys.
type Ranger[K comparable, V any] interface {
	Store[K, V]
	// Range iterates entries with keys in [lo, hi), in ascending order.
	Range(lo, hi K) iter.Seq[Entry[K, V]]
	// Backward iterates all entries in descending order.
	Backward() iter.Seq[Entry[K, V]]
}

// Factory creates an empty [Store].
type Factory[K comparable, V any] func() Store[K, V]
