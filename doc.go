/*
Package bimap provides a bidirectional map: a collection of unique (left, right) pairs that can be looked up, inserted, and removed from either side.

A [Map] keeps two backing stores, one keyed by left values and one keyed by right values.
Each value is stored once. Inserting a pair splits each value into two halves with [split.Split], and each store holds one half of both values.
Removing a pair takes the entry out of both stores and rejoins the halves, so the caller gets back the original values.

# Overwrite semantics

[Map.Insert] always succeeds, and may displace zero, one, or two existing pairs to keep the map one-to-one.
The displaced pairs are reported in an [Overwritten].
[Map.TryInsert] refuses to displace anything and returns a [*ConflictError] instead.

# Backends

The zero value of a [Map] uses hash stores on both sides, and is ready to use.
Other backends from the [store] package may be chosen per side with [WithLeftStore] and [WithRightStore].
Range queries like [Map.LeftRange] are only available for sides backed by a [store.Ranger], such as [store.Ordered].

# Consistency

Every operation leaves both stores in agreement before it returns.
Disagreement between the stores can only come from a bug, and is never reported as an error from a normal operation.
It panics with an [*assert.Violation] instead of handing back the wrong pair.
[Map.Verify] performs a full consistency check, which is mostly useful in tests.

A Map is not safe for concurrent use. Callers that share one between goroutines must synchronize access themselves.
*/
package bimap
