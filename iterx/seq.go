package iterx

import "iter"

// Seq is a single value iterator with some convenience methods.
type Seq[T any] iter.Seq[T]

// Select creates a [Seq] over the elements of a slice.
func Select[T any](slice []T) Seq[T] {
	return func(yield func(T) bool) {
		for _, element := range slice {
			if !yield(element) {
				return
			}
		}
	}
}

func (i Seq[T]) Slice() []T {
	var elements []T
	i.ForEach(func(element T) bool {
		elements = append(elements, element)
		return true
	})
	return elements
}

func (i Seq[T]) Filter(filter Filter[T]) Seq[T] {
	return func(yield func(T) bool) {
		if filter == nil {
			panic("nil filter")
		}
		i.ForEach(func(element T) bool {
			if filter(element) {
				return yield(element)
			}
			return true
		})
	}
}

func (i Seq[T]) ForEach(handler func(val T) bool) {
	if i == nil {
		return
	}
	i(handler)
}

func (i Seq[T]) Count() int {
	var count int
	i.ForEach(func(_ T) bool {
		count++
		return true
	})
	return count
}

// Offset skips the first offset elements.
func (i Seq[T]) Offset(offset int) Seq[T] {
	if offset <= 0 {
		return i
	}
	return func(yield func(T) bool) {
		var skipped int
		i.ForEach(func(element T) bool {
			if skipped < offset {
				skipped++
				return true
			}
			return yield(element)
		})
	}
}

// Limit yields at most limit elements.
func (i Seq[T]) Limit(limit int) Seq[T] {
	return func(yield func(T) bool) {
		if limit <= 0 {
			return
		}
		count := 0
		i.ForEach(func(element T) bool {
			if !yield(element) {
				return false
			}
			count++
			return count < limit
		})
	}
}
