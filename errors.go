package bimap

import (
	"errors"
	"fmt"
)

var (
	ErrConflict     = errors.New("pair conflicts with an existing entry")
	ErrUnordered    = errors.New("store is not ordered")
	ErrInconsistent = errors.New("bimap stores are inconsistent")
)

// ConflictError is returned from [Map.TryInsert] when either value of a pair is already present.
// The rejected pair is returned unchanged.
type ConflictError[L, R any] struct {
	Pair       Pair[L, R]
	LeftTaken  bool
	RightTaken bool
}

func (e *ConflictError[L, R]) Error() string {
	var side string
	switch {
	case e.LeftTaken && e.RightTaken:
		side = "left and right values exist"
	case e.LeftTaken:
		side = "left value exists"
	default:
		side = "right value exists"
	}
	return fmt.Sprintf("%s: %s in %v", ErrConflict.Error(), side, e.Pair)
}

func (e *ConflictError[L, R]) Unwrap() error {
	return ErrConflict
}
