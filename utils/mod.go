package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Count returns how many items satisfy keep.
func Count[T any](slice []T, keep func(T) bool) int {
	n := 0
	for _, v := range slice {
		if keep(v) {
			n++
		}
	}
	return n
}

// AtLeast clamps v to a lower bound.
func AtLeast[T constraints.Ordered](v, floor T) T {
	if v < floor {
		return floor
	}
	return v
}
