package bimap

import (
	"cmp"
	"github.com/saylorsolutions/bimap/store"
	"log/slog"
)

// Option configures a [Map] at construction.
type Option[L, R comparable] func(m *Map[L, R])

// WithLeftStore sets the factory used to create the store keyed by left values.
func WithLeftStore[L, R comparable](factory store.Factory[L, R]) Option[L, R] {
	return func(m *Map[L, R]) {
		m.newLeft = factory
	}
}

// WithRightStore sets the factory used to create the store keyed by right values.
func WithRightStore[L, R comparable](factory store.Factory[R, L]) Option[L, R] {
	return func(m *Map[L, R]) {
		m.newRight = factory
	}
}

// WithLogger sets a logger that receives debug events for displaced and rejected pairs.
func WithLogger[L, R comparable](logger *slog.Logger) Option[L, R] {
	return func(m *Map[L, R]) {
		m.log = logger
	}
}

// New creates a new [Map] and initializes the internal stores.
// This isn't strictly required, because non-nil instances will be initialized with hash stores upon first use anyway.
func New[L, R comparable](opts ...Option[L, R]) *Map[L, R] {
	m := new(Map[L, R])
	for _, opt := range opts {
		opt(m)
	}
	m.init()
	return m
}

// NewOrdered creates a new [Map] with ordered stores on both sides, so both sides support range queries.
// Options are applied after the ordered stores are set, so they may override either side.
func NewOrdered[L, R cmp.Ordered](opts ...Option[L, R]) *Map[L, R] {
	return New(append([]Option[L, R]{
		WithLeftStore[L, R](store.OrderedFactory[L, R]()),
		WithRightStore[L, R](store.OrderedFactory[R, L]()),
	}, opts...)...)
}

// Collect creates a new [Map] from a sequence of pairs.
// Pairs are inserted with [Map.Insert], so later pairs win on conflicts.
func Collect[L, R comparable](seq func(yield func(L, R) bool), opts ...Option[L, R]) *Map[L, R] {
	m := New(opts...)
	m.Extend(seq)
	return m
}

// FromMap creates a new [Map] from a builtin map.
// If src has repeated values, it's not defined which key will be kept for that value.
func FromMap[L, R comparable](src map[L]R, opts ...Option[L, R]) *Map[L, R] {
	m := New(opts...)
	for left, right := range src {
		m.Insert(left, right)
	}
	return m
}

// NewSwiss creates a new [Map] with Swiss table stores on both sides, each sized for capacity pairs.
// Options are applied after the Swiss stores are set, so they may override either side.
func NewSwiss[L, R comparable](capacity int, opts ...Option[L, R]) *Map[L, R] {
	return New(append([]Option[L, R]{
		WithLeftStore[L, R](store.SwissFactory[L, R](capacity)),
		WithRightStore[L, R](store.SwissFactory[R, L](capacity)),
	}, opts...)...)
}
