package bimap

import (
	"fmt"
	"github.com/saylorsolutions/bimap/assert"
	"github.com/saylorsolutions/bimap/iterx"
	"github.com/saylorsolutions/bimap/split"
	"github.com/saylorsolutions/bimap/store"
	"iter"
	"log/slog"
	"strings"
)

// Map is a generic bidirectional map between left and right values.
// Each left value maps to exactly one right value and vice versa.
//
// The zero value is ready to use, with hash stores on both sides.
// A Map must not be modified while one of its iterators is running, and is not concurrency safe.
type Map[L, R comparable] struct {
	left     store.Store[L, R]
	right    store.Store[R, L]
	newLeft  store.Factory[L, R]
	newRight store.Factory[R, L]
	log      *slog.Logger
}

func (m *Map[L, R]) init() {
	if m == nil {
		panic("nil Map")
	}
	if m.left != nil {
		return
	}
	if m.newLeft == nil {
		m.newLeft = store.HashFactory[L, R]()
	}
	if m.newRight == nil {
		m.newRight = store.HashFactory[R, L]()
	}
	m.left = m.newLeft()
	m.right = m.newRight()
}

func (m *Map[L, R]) checkLengths() {
	assert.True("left and right stores have equal length", m.left.Len() == m.right.Len())
}

// Len returns the number of pairs in the map.
func (m *Map[L, R]) Len() int {
	m.init()
	return m.left.Len()
}

func (m *Map[L, R]) IsEmpty() bool {
	return m.Len() == 0
}

func (m *Map[L, R]) ContainsLeft(left L) bool {
	m.init()
	return m.left.Has(left)
}

func (m *Map[L, R]) ContainsRight(right R) bool {
	m.init()
	return m.right.Has(right)
}

// GetLeft returns the right value paired with left.
func (m *Map[L, R]) GetLeft(left L) (R, bool) {
	m.init()
	e, ok := m.left.Get(left)
	if !ok {
		var mt R
		return mt, false
	}
	return e.Value.Get(), true
}

// GetRight returns the left value paired with right.
func (m *Map[L, R]) GetRight(right R) (L, bool) {
	m.init()
	e, ok := m.right.Get(right)
	if !ok {
		var mt L
		return mt, false
	}
	return e.Value.Get(), true
}

// GetLeftEntry returns the stored pair with the given left value.
func (m *Map[L, R]) GetLeftEntry(left L) (Pair[L, R], bool) {
	m.init()
	e, ok := m.left.Get(left)
	if !ok {
		return Pair[L, R]{}, false
	}
	l, r := e.Pair()
	return Pair[L, R]{Left: l, Right: r}, true
}

// GetRightEntry returns the stored pair with the given right value.
func (m *Map[L, R]) GetRightEntry(right R) (Pair[L, R], bool) {
	m.init()
	e, ok := m.right.Get(right)
	if !ok {
		return Pair[L, R]{}, false
	}
	r, l := e.Pair()
	return Pair[L, R]{Left: l, Right: r}, true
}

// RemoveLeft removes the pair with the given left value, and returns it.
// Nothing changes if the left value isn't present.
func (m *Map[L, R]) RemoveLeft(left L) (Pair[L, R], bool) {
	m.init()
	le, ok := m.left.Remove(left)
	if !ok {
		return Pair[L, R]{}, false
	}
	re, ok := m.right.Remove(le.Value.Get())
	assert.Invariant("right store holds the partner of a removed left entry", ok)
	m.checkLengths()
	return rejoin(le, re), true
}

// RemoveRight removes the pair with the given right value, and returns it.
// Nothing changes if the right value isn't present.
func (m *Map[L, R]) RemoveRight(right R) (Pair[L, R], bool) {
	m.init()
	re, ok := m.right.Remove(right)
	if !ok {
		return Pair[L, R]{}, false
	}
	le, ok := m.left.Remove(re.Value.Get())
	assert.Invariant("left store holds the partner of a removed right entry", ok)
	m.checkLengths()
	return rejoin(le, re), true
}

func rejoin[L, R comparable](le store.Entry[L, R], re store.Entry[R, L]) Pair[L, R] {
	return Pair[L, R]{
		Left:  split.Rejoin(le.Key, re.Value),
		Right: split.Rejoin(re.Key, le.Value),
	}
}

// TryInsert adds the pair only if neither value is present.
// Otherwise, a [*ConflictError] is returned with the pair unchanged, and the map isn't modified.
func (m *Map[L, R]) TryInsert(left L, right R) error {
	m.init()
	leftTaken, rightTaken := m.left.Has(left), m.right.Has(right)
	if leftTaken || rightTaken {
		if m.log != nil {
			m.log.Debug("Rejected conflicting pair", "left", left, "right", right, "leftTaken", leftTaken, "rightTaken", rightTaken)
		}
		return &ConflictError[L, R]{
			Pair:       Pair[L, R]{Left: left, Right: right},
			LeftTaken:  leftTaken,
			RightTaken: rightTaken,
		}
	}
	m.insertUnchecked(left, right)
	return nil
}

// Insert adds the pair, removing any pair that has the same left value or the same right value.
// The removed pairs are returned in the [Overwritten].
func (m *Map[L, R]) Insert(left L, right R) Overwritten[L, R] {
	m.init()
	var ow Overwritten[L, R]
	ow.byLeft, ow.hasLeft = m.RemoveLeft(left)
	// An identical pair was already removed by RemoveLeft, so it can't be found and reported again here.
	ow.byRight, ow.hasRight = m.RemoveRight(right)
	ow.same = ow.hasLeft && !ow.hasRight && ow.byLeft.Right == right
	m.insertUnchecked(left, right)
	if m.log != nil && ow.Count() > 0 {
		m.log.Debug("Insert displaced pairs", "left", left, "right", right, "displaced", ow.Count(), "same", ow.same)
	}
	return ow
}

func (m *Map[L, R]) insertUnchecked(left L, right R) {
	l1, l2 := split.Split(left)
	r1, r2 := split.Split(right)
	m.left.Put(store.Entry[L, R]{Key: l1, Value: r2})
	m.right.Put(store.Entry[R, L]{Key: r1, Value: l2})
	m.checkLengths()
}

// Extend inserts every pair from seq with [Map.Insert], so later pairs win on conflicts.
func (m *Map[L, R]) Extend(seq func(yield func(L, R) bool)) {
	m.init()
	if seq == nil {
		return
	}
	for left, right := range seq {
		m.Insert(left, right)
	}
}

// Clear removes all pairs.
func (m *Map[L, R]) Clear() {
	m.init()
	m.left.Clear()
	m.right.Clear()
}

// Clone creates a new [Map] with the same pairs and the same kinds of stores.
// Values are copied by assignment.
func (m *Map[L, R]) Clone() *Map[L, R] {
	m.init()
	clone := &Map[L, R]{
		newLeft:  m.newLeft,
		newRight: m.newRight,
		log:      m.log,
	}
	clone.init()
	for e := range m.left.All() {
		clone.insertUnchecked(e.Pair())
	}
	return clone
}

// Left iterates pairs in the natural order of the left store.
func (m *Map[L, R]) Left() iterx.Pairs[L, R] {
	m.init()
	return leftPairs(m.left.All())
}

// Right iterates pairs in the natural order of the right store.
// Pairs are still yielded as (left, right).
func (m *Map[L, R]) Right() iterx.Pairs[L, R] {
	m.init()
	return rightPairs[L, R](m.right.All())
}

// LeftRange iterates pairs with left values in [lo, hi), in ascending order.
// Returns [ErrUnordered] if the left store isn't a [store.Ranger].
func (m *Map[L, R]) LeftRange(lo, hi L) (iterx.Pairs[L, R], error) {
	m.init()
	ranger, ok := m.left.(store.Ranger[L, R])
	if !ok {
		return nil, fmt.Errorf("%w: left store %T", ErrUnordered, m.left)
	}
	return leftPairs(ranger.Range(lo, hi)), nil
}

// RightRange iterates pairs with right values in [lo, hi), in ascending order of right values.
// Returns [ErrUnordered] if the right store isn't a [store.Ranger].
func (m *Map[L, R]) RightRange(lo, hi R) (iterx.Pairs[L, R], error) {
	m.init()
	ranger, ok := m.right.(store.Ranger[R, L])
	if !ok {
		return nil, fmt.Errorf("%w: right store %T", ErrUnordered, m.right)
	}
	return rightPairs[L, R](ranger.Range(lo, hi)), nil
}

// LeftBackward iterates pairs in descending order of left values.
// Returns [ErrUnordered] if the left store isn't a [store.Ranger].
func (m *Map[L, R]) LeftBackward() (iterx.Pairs[L, R], error) {
	m.init()
	ranger, ok := m.left.(store.Ranger[L, R])
	if !ok {
		return nil, fmt.Errorf("%w: left store %T", ErrUnordered, m.left)
	}
	return leftPairs(ranger.Backward()), nil
}

// RightBackward iterates pairs in descending order of right values.
// Returns [ErrUnordered] if the right store isn't a [store.Ranger].
func (m *Map[L, R]) RightBackward() (iterx.Pairs[L, R], error) {
	m.init()
	ranger, ok := m.right.(store.Ranger[R, L])
	if !ok {
		return nil, fmt.Errorf("%w: right store %T", ErrUnordered, m.right)
	}
	return rightPairs[L, R](ranger.Backward()), nil
}

func leftPairs[L, R any](entries iter.Seq[store.Entry[L, R]]) iterx.Pairs[L, R] {
	return func(yield func(L, R) bool) {
		for e := range entries {
			if !yield(e.Pair()) {
				return
			}
		}
	}
}

func rightPairs[L, R any](entries iter.Seq[store.Entry[R, L]]) iterx.Pairs[L, R] {
	return func(yield func(L, R) bool) {
		for e := range entries {
			if !yield(e.Value.Get(), e.Key.Get()) {
				return
			}
		}
	}
}

func (m *Map[L, R]) String() string {
	var buf strings.Builder
	buf.WriteString("bimap[")
	first := true
	for left, right := range m.Left() {
		if !first {
			buf.WriteString(" ")
		}
		first = false
		buf.WriteString(fmt.Sprintf("%v:%v", left, right))
	}
	buf.WriteString("]")
	return buf.String()
}
