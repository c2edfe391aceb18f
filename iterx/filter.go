package iterx

import "cmp"

// Filter reports whether a value should be yielded.
type Filter[T any] func(T) bool

// Is matches values equal to target.
func Is[T comparable](target T) Filter[T] {
	return func(val T) bool { return val == target }
}

// In matches any of the given values.
func In[T comparable](values ...T) Filter[T] {
	lookup := make(map[T]struct{}, len(values))
	for _, v := range values {
		lookup[v] = struct{}{}
	}
	return func(val T) bool {
		_, ok := lookup[val]
		return ok
	}
}

// Between matches values in [lo, hi), the same bounds used by range queries on ordered stores.
func Between[T cmp.Ordered](lo, hi T) Filter[T] {
	return func(val T) bool {
		return cmp.Compare(val, lo) >= 0 && cmp.Compare(val, hi) < 0
	}
}

// Not inverts f.
func (f Filter[T]) Not() Filter[T] {
	return func(val T) bool { return !f(val) }
}

// AllOf matches values that every filter matches, so no filters matches everything.
// Nil filters are skipped.
func AllOf[T any](filters ...Filter[T]) Filter[T] {
	return func(val T) bool {
		for _, f := range filters {
			if f != nil && !f(val) {
				return false
			}
		}
		return true
	}
}

// AnyOf matches values that at least one filter matches, so no filters matches nothing.
// Nil filters are skipped.
func AnyOf[T any](filters ...Filter[T]) Filter[T] {
	return func(val T) bool {
		for _, f := range filters {
			if f != nil && f(val) {
				return true
			}
		}
		return false
	}
}
