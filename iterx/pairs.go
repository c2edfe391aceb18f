// Package iterx provides pair and value views over [iter.Seq] and [iter.Seq2] iterators.
//
// A [Pairs] always yields (left, right), no matter which side of a bidirectional map produced it.
package iterx

import "iter"

// Pairs is an iterator of (left, right) pairs.
type Pairs[L, R any] iter.Seq2[L, R]

// SelectMap translates any map to [Pairs], where keys are the left side.
// Iteration order is arbitrary.
func SelectMap[L comparable, R any](m map[L]R) Pairs[L, R] {
	return func(yield func(L, R) bool) {
		for left, right := range m {
			if !yield(left, right) {
				return
			}
		}
	}
}

func (i Pairs[L, R]) ForEach(handler func(left L, right R) bool) {
	if i == nil {
		return
	}
	i(handler)
}

// Filter yields only the pairs that satisfy pairFilter.
func (i Pairs[L, R]) Filter(pairFilter func(left L, right R) bool) Pairs[L, R] {
	return func(yield func(L, R) bool) {
		i.ForEach(func(left L, right R) bool {
			if pairFilter(left, right) {
				return yield(left, right)
			}
			return true
		})
	}
}

func (i Pairs[L, R]) FilterLefts(filter Filter[L]) Pairs[L, R] {
	if filter == nil {
		panic("nil filter")
	}
	return i.Filter(func(left L, _ R) bool {
		return filter(left)
	})
}

func (i Pairs[L, R]) FilterRights(filter Filter[R]) Pairs[L, R] {
	if filter == nil {
		panic("nil filter")
	}
	return i.Filter(func(_ L, right R) bool {
		return filter(right)
	})
}

func (i Pairs[L, R]) Lefts() Seq[L] {
	return func(yield func(L) bool) {
		i.ForEach(func(left L, _ R) bool {
			return yield(left)
		})
	}
}

func (i Pairs[L, R]) Rights() Seq[R] {
	return func(yield func(R) bool) {
		i.ForEach(func(_ L, right R) bool {
			return yield(right)
		})
	}
}

// Swap will produce [Pairs] with the left and right sides exchanged.
func (i Pairs[L, R]) Swap() Pairs[R, L] {
	return func(yield func(R, L) bool) {
		i.ForEach(func(left L, right R) bool {
			return yield(right, left)
		})
	}
}

func (i Pairs[L, R]) Count() int {
	var count int
	i.ForEach(func(_ L, _ R) bool {
		count++
		return true
	})
	return count
}

// Offset will skip the first N pairs during iteration.
func (i Pairs[L, R]) Offset(offset int) Pairs[L, R] {
	if offset <= 0 {
		return i
	}
	return func(yield func(L, R) bool) {
		var skipped int
		i.ForEach(func(left L, right R) bool {
			if skipped < offset {
				skipped++
				return true
			}
			return yield(left, right)
		})
	}
}

// Limit will limit how many pairs are yielded.
func (i Pairs[L, R]) Limit(limit int) Pairs[L, R] {
	if limit <= 0 {
		return func(yield func(L, R) bool) {}
	}
	return func(yield func(L, R) bool) {
		count := 0
		i.ForEach(func(left L, right R) bool {
			if !yield(left, right) {
				return false
			}
			count++
			return count < limit
		})
	}
}

func (i Pairs[L, R]) First() (firstLeft L, firstRight R, found bool) {
	i.ForEach(func(left L, right R) bool {
		firstLeft, firstRight, found = left, right, true
		return false
	})
	return
}

// Collect gathers pairs into a map keyed by the left side.
// If a left value repeats, the last right value wins.
func Collect[L comparable, R any](pairs Pairs[L, R]) map[L]R {
	m := map[L]R{}
	pairs.ForEach(func(left L, right R) bool {
		m[left] = right
		return true
	})
	return m
}
