package iterutil

import (
	"iter"
)

// Union returns a new iterator that yields the union of the input iterators.
// The union is the set of values that are present in any of the input iterators.
func Union[V comparable](iters ...iter.Seq[V]) iter.Seq[V] {
	return iter.Seq[V](func(yield func(V) bool) {
		seen := map[V]int{}
		for _, seq := range iters {
			for v := range seq {
				seen[v]++
				if seen[v] == 1 && !yield(v) {
					return
				}
			}
		}
	})
}

// Map returns a new iterator that applies the function to each value from the input iterator.
// The output iterator yields the results of the function calls.
func Map[V, R any](seq iter.Seq[V], f func(V) R) iter.Seq[R] {
	return iter.Seq[R](func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	})
}
