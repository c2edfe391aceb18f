package bimap

import "fmt"

// Pair is a single left/right association.
type Pair[L, R any] struct {
	Left  L `json:"left"`
	Right R `json:"right"`
}

func (p Pair[L, R]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// OverwriteKind is the number of pairs displaced by [Map.Insert].
type OverwriteKind int

const (
	Zero OverwriteKind = iota
	One
	Two
)

func (k OverwriteKind) String() string {
	switch k {
	case Zero:
		return "zero"
	case One:
		return "one"
	case Two:
		return "two"
	default:
		return fmt.Sprintf("OverwriteKind(%d)", int(k))
	}
}

// Overwritten describes the pairs displaced by [Map.Insert].
//
// A pair displaced because its left value matched the new left value is reported by [Overwritten.ByLeft].
// A pair displaced because its right value matched the new right value is reported by [Overwritten.ByRight].
// Re-inserting a pair that's already present displaces exactly that one pair, reported by ByLeft, and [Overwritten.Same] returns true.
type Overwritten[L, R comparable] struct {
	byLeft, byRight   Pair[L, R]
	hasLeft, hasRight bool
	same              bool
}

func (o Overwritten[L, R]) Kind() OverwriteKind {
	return OverwriteKind(o.Count())
}

func (o Overwritten[L, R]) Count() int {
	var n int
	if o.hasLeft {
		n++
	}
	if o.hasRight {
		n++
	}
	return n
}

func (o Overwritten[L, R]) ByLeft() (Pair[L, R], bool) {
	return o.byLeft, o.hasLeft
}

func (o Overwritten[L, R]) ByRight() (Pair[L, R], bool) {
	return o.byRight, o.hasRight
}

// Pairs returns the displaced pairs, with the pair displaced by left first.
// Returns nil if nothing was displaced.
func (o Overwritten[L, R]) Pairs() []Pair[L, R] {
	var pairs []Pair[L, R]
	if o.hasLeft {
		pairs = append(pairs, o.byLeft)
	}
	if o.hasRight {
		pairs = append(pairs, o.byRight)
	}
	return pairs
}

// Same returns true if the only displaced pair is identical to the inserted one.
func (o Overwritten[L, R]) Same() bool {
	return o.same
}

func (o Overwritten[L, R]) String() string {
	return fmt.Sprintf("overwrote %s %v", o.Kind(), o.Pairs())
}
