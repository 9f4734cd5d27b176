package network

import (
	"fmt"
	"iter"
	"slices"
)

func checkPhases(phases []int64, atLeast int) error {
	if len(phases) < atLeast {
		return fmt.Errorf("%d phases, need at least %d: %w", len(phases), atLeast, ErrBadPhases)
	}
	sorted := slices.Sorted(slices.Values(phases))
	if len(slices.Compact(sorted)) != len(phases) {
		return fmt.Errorf("duplicated phase in %v: %w", phases, ErrBadPhases)
	}
	return nil
}

// Permutations yields every ordering of values. Yielded slices are owned by the caller.
func Permutations(values []int64) iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		perm := slices.Clone(values)
		n := len(perm)
		if n == 0 {
			return
		}
		// Heap's algorithm, iterative form
		c := make([]int, n)
		if !yield(slices.Clone(perm)) {
			return
		}
		for i := 1; i < n; {
			if c[i] < i {
				if i%2 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[c[i]], perm[i] = perm[i], perm[c[i]]
				}
				if !yield(slices.Clone(perm)) {
					return
				}
				c[i]++
				i = 1
			} else {
				c[i] = 0
				i++
			}
		}
	}
}
