/*
Package assert provides runtime assertion support for data structures that must never be observed in an inconsistent state.

There are a few patterns that are supported:
  - Collecting many possible errors into one, for full consistency reports.
  - Assertions that panic if they are violated.
  - Invariants that always panic, because continuing would hand corrupt data to the caller.

To turn off [True] and [TrueFunc] build with the 'noassert' flag.
[Invariant] can't be turned off.
For temporary changes, the Disable and Enable functions are also provided, but these should likely not be used in production code.

All failures panic with a [*Violation].
*/
package assert
