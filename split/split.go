// Package split provides a single allocation that can be owned from two places at once.
//
// A value passed to [Split] is moved into one heap cell, and two [Half] handles are returned.
// Both halves read the same value, and neither is primary.
// The value is recovered intact with [Rejoin], which requires both halves of the same split.
// If halves are released without rejoining, the cell is reclaimed when the second one is released.
//
// Halves are not safe for concurrent use.
package split

import (
	"cmp"
	"fmt"
	"github.com/saylorsolutions/bimap/assert"
)

type cell[T any] struct {
	value   T
	refs    int
	release func(T)
}

// Half is one of the two handles produced by [Split].
// A Half is consumed by [Rejoin] or [Half.Release], and must not be used after that.
type Half[T any] struct {
	c *cell[T]
}

// Split moves value into a shared cell and returns the two halves that reference it.
func Split[T any](value T) (*Half[T], *Half[T]) {
	return SplitWith(value, nil)
}

// SplitWith is like [Split], but release is called with the value once both halves have been released without a [Rejoin].
// The release function may be nil.
func SplitWith[T any](value T, release func(T)) (*Half[T], *Half[T]) {
	c := &cell[T]{value: value, refs: 2, release: release}
	return &Half[T]{c: c}, &Half[T]{c: c}
}

func (h *Half[T]) live() *cell[T] {
	assert.Invariant("half is live", h != nil && h.c != nil)
	return h.c
}

// Get returns the shared value.
func (h *Half[T]) Get() T {
	return h.live().value
}

// Ptr returns a pointer to the shared value.
// The value must not be modified through it, since the other half observes the same memory.
func (h *Half[T]) Ptr() *T {
	return &h.live().value
}

// Shares returns true if both halves reference the same cell.
func (h *Half[T]) Shares(other *Half[T]) bool {
	if h == nil || other == nil || h.c == nil {
		return false
	}
	return h != other && h.c == other.c
}

// Live returns false once the Half has been consumed.
func (h *Half[T]) Live() bool {
	return h != nil && h.c != nil
}

func (h *Half[T]) String() string {
	return fmt.Sprint(h.Get())
}

// Release drops this Half without rejoining it.
// The value is reclaimed by whichever half is released second, and true is returned from that call.
func (h *Half[T]) Release() bool {
	c := h.live()
	h.c = nil
	c.refs--
	if c.refs > 0 {
		return false
	}
	value := c.value
	var mt T
	c.value = mt
	if c.release != nil {
		c.release(value)
	}
	return true
}

// Rejoin consumes both halves of a split and returns the original value.
//
// Passing halves from different splits, the same half twice, or a consumed half is a bug in the caller,
// and panics with an [*assert.Violation] rather than returning the wrong value.
func Rejoin[T any](a, b *Half[T]) T {
	assert.Invariant("rejoin with two distinct halves", a != b)
	ac, bc := a.live(), b.live()
	assert.Invariant("rejoin halves from the same split", ac == bc)
	a.c, b.c = nil, nil
	ac.refs = 0
	value := ac.value
	var mt T
	ac.value = mt
	return value
}

// Equal reports whether the values referenced by a and b are equal.
func Equal[T comparable](a, b *Half[T]) bool {
	return a.Get() == b.Get()
}

// Compare orders halves by their values.
func Compare[T cmp.Ordered](a, b *Half[T]) int {
	return cmp.Compare(a.Get(), b.Get())
}

// CompareFunc orders halves by their values with a custom comparison.
func CompareFunc[T any](a, b *Half[T], compare func(a, b T) int) int {
	return compare(a.Get(), b.Get())
}
