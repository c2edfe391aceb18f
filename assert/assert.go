//go:build !noassert

package assert

import (
	"sync/atomic"
)

var disabled atomic.Bool

// Disable will disable evaluation of [True] and [TrueFunc] globally.
// [Invariant] is never disabled.
// This is concurrency safe, but can have side effects in other goroutines that use assertions.
func Disable() {
	disabled.Store(true)
}

// Enable can be used to re-enable assertion evaluation if Disable was called previously.
// Note that this is a global setting, and calling Disable or Enable can have unintended side effects in other goroutines that use assertions.
func Enable() {
	disabled.Store(false)
}

// True will panic with a [*Violation] if result is not true.
func True(label string, result bool) {
	if disabled.Load() {
		return
	}
	if !result {
		panic(newViolation(label))
	}
}

// TrueFunc will panic with a [*Violation] if assertion returns false.
// The assertion is not evaluated at all while assertions are disabled, so it's a good fit for expensive checks.
func TrueFunc(label string, assertion func() bool) {
	if disabled.Load() {
		return
	}
	if !assertion() {
		panic(newViolation(label))
	}
}
