// Package set provides a map-backed set, used for duplicate detection during consistency checks.
package set

import "iter"

// Set formalizes set semantics for a map of comparable values.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
// The returned [Set] will have no values if none are given.
func New[T comparable](vals ...T) Set[T] {
	s := Set[T]{}
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// FromSeq creates a new [Set] from all values yielded by seq.
func FromSeq[T comparable](seq iter.Seq[T]) Set[T] {
	s := Set[T]{}
	if seq == nil {
		return s
	}
	for v := range seq {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

// Insert adds val and returns false if it was already present.
// The Set must not be nil.
func (s Set[T]) Insert(val T) bool {
	if _, ok := s[val]; ok {
		return false
	}
	s[val] = struct{}{}
	return true
}

func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Equal returns true if both sets have exactly the same members.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Difference returns a new [Set] with the common values between sets removed.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	diff := Set[T]{}
	for v := range s {
		if !other.Has(v) {
			diff.Add(v)
		}
	}
	return diff
}
