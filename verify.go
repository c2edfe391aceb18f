package bimap

import (
	"fmt"
	"github.com/saylorsolutions/bimap/assert"
	"github.com/saylorsolutions/bimap/set"
)

// Verify checks that the left and right stores agree on every pair, and that each stored value's halves come from the same split.
// Every problem found is reported in the returned error, which wraps [ErrInconsistent].
//
// This walks both stores, so it's intended for tests and debugging rather than routine use.
func (m *Map[L, R]) Verify() error {
	m.init()
	errs := assert.CollectErrors()
	errs.Check(m.left.Len() == m.right.Len(), "left store has %d entries, right store has %d", m.left.Len(), m.right.Len())

	rights := set.New[R]()
	for le := range m.left.All() {
		if !le.Key.Live() || !le.Value.Live() {
			errs.Addf("left store holds a consumed half")
			continue
		}
		left, right := le.Pair()
		errs.Check(rights.Insert(right), "right value %v is paired with more than one left value", right)
		re, ok := m.right.Get(right)
		if !ok {
			errs.Addf("left value %v is paired with %v, which is missing from the right store", left, right)
			continue
		}
		if !re.Value.Live() {
			errs.Addf("right store holds a consumed half for %v", right)
			continue
		}
		errs.Check(re.Value.Get() == left, "left value %v is paired with %v, but %v is paired with %v", left, right, right, re.Value.Get())
		errs.Check(le.Key.Shares(re.Value), "halves of left value %v come from different splits", left)
		errs.Check(le.Value.Shares(re.Key), "halves of right value %v come from different splits", right)
	}
	for re := range m.right.All() {
		if !re.Key.Live() || !re.Value.Live() {
			errs.Addf("right store holds a consumed half")
			continue
		}
		right, left := re.Pair()
		errs.Check(m.left.Has(left), "right value %v is paired with %v, which is missing from the left store", right, left)
	}
	if err := errs.Result(); err != nil {
		return fmt.Errorf("%w:\n%w", ErrInconsistent, err)
	}
	return nil
}
