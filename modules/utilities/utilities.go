package utilities

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Filter returns the items for which keep is true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	result := []T{}

	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}

	return result
}

// ArgsortStable returns the indices that would sort values ascending. Equal
// values keep their original relative order, so the result is invariant
// under any monotonic rescaling of values.
func ArgsortStable[T constraints.Ordered](values []T) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	return order
}

// MinIndex returns the index of the smallest value, -1 for an empty slice.
// Ties resolve to the earliest index.
func MinIndex[T constraints.Ordered](values []T) int {
	if len(values) == 0 {
		return -1
	}

	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] < values[best] {
			best = i
		}
	}

	return best
}
