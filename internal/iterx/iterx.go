package iterx

import (
	"iter"
)

// FromSlice exposes a slice as an iter.Seq without copying it. The caller
// must not mutate the slice while iterating.
func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// FromPairs zips parallel key and value slices into an iter.Seq2. Iteration
// stops at the shorter of the two, though callers are expected to keep them
// the same length.
func FromPairs[K, V any](keys []K, vals []V) iter.Seq2[K, V] {
	n := min(len(keys), len(vals))
	return func(yield func(K, V) bool) {
		for i := 0; i < n; i++ {
			if !yield(keys[i], vals[i]) {
				break
			}
		}
	}
}
