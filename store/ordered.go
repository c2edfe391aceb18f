package store

import (
	"cmp"
	"github.com/google/btree"
	"iter"
)

const defaultDegree = 32

var _ Ranger[int, int] = (*Ordered[int, int])(nil)

// item carries the key value alongside the entry, so lookups can search by key alone.
type item[K, V any] struct {
	key   K
	entry Entry[K, V]
}

// Ordered is a [Ranger] backed by a B-tree.
// Iteration is in ascending key order.
type Ordered[K comparable, V any] struct {
	tree *btree.BTreeG[item[K, V]]
}

// NewOrdered creates an empty [Ordered] store using the natural ordering of K.
func NewOrdered[K cmp.Ordered, V any]() *Ordered[K, V] {
	return NewOrderedFunc[K, V](cmp.Compare[K])
}

// NewOrderedFunc creates an empty [Ordered] store using compare to order keys.
// Keys that compare as 0 must also be equal with ==.
func NewOrderedFunc[K comparable, V any](compare func(a, b K) int) *Ordered[K, V] {
	less := func(a, b item[K, V]) bool {
		return compare(a.key, b.key) < 0
	}
	return &Ordered[K, V]{tree: btree.NewG[item[K, V]](defaultDegree, less)}
}

// OrderedFactory returns a [Factory] for [Ordered] stores using the natural ordering of K.
func OrderedFactory[K cmp.Ordered, V any]() Factory[K, V] {
	return func() Store[K, V] {
		return NewOrdered[K, V]()
	}
}

// OrderedFuncFactory returns a [Factory] for [Ordered] stores using compare to order keys.
func OrderedFuncFactory[K comparable, V any](compare func(a, b K) int) Factory[K, V] {
	return func() Store[K, V] {
		return NewOrderedFunc[K, V](compare)
	}
}

func keyItem[K, V any](key K) item[K, V] {
	return item[K, V]{key: key}
}

func (o *Ordered[K, V]) Has(key K) bool {
	return o.tree.Has(keyItem[K, V](key))
}

func (o *Ordered[K, V]) Get(key K) (Entry[K, V], bool) {
	it, ok := o.tree.Get(keyItem[K, V](key))
	return it.entry, ok
}

func (o *Ordered[K, V]) Put(entry Entry[K, V]) {
	o.tree.ReplaceOrInsert(item[K, V]{key: entry.Key.Get(), entry: entry})
}

func (o *Ordered[K, V]) Remove(key K) (Entry[K, V], bool) {
	it, ok := o.tree.Delete(keyItem[K, V](key))
	return it.entry, ok
}

func (o *Ordered[K, V]) Len() int {
	return o.tree.Len()
}

func (o *Ordered[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		o.tree.Ascend(func(it item[K, V]) bool {
			return yield(it.entry)
		})
	}
}

func (o *Ordered[K, V]) Range(lo, hi K) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		o.tree.AscendRange(keyItem[K, V](lo), keyItem[K, V](hi), func(it item[K, V]) bool {
			return yield(it.entry)
		})
	}
}

func (o *Ordered[K, V]) Backward() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		o.tree.Descend(func(it item[K, V]) bool {
			return yield(it.entry)
		})
	}
}

func (o *Ordered[K, V]) Clear() {
	o.tree.Clear(false)
}
