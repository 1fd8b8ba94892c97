package utils

import (
	"golang.org/x/exp/constraints"
)

// Generates a sequence of n elements given a generation function
func Iota[T any](n int, gen func(int) T) []T {
	values := make([]T, n)

	for i := range values {
		values[i] = gen(i)
	}

	return values
}

// Returns the items of a sequence matching a predicate, in order
func Filter[T any](input []T, predicate func(T) bool) []T {
	output := make([]T, 0, len(input))

	for _, value := range input {
		if predicate(value) {
			output = append(output, value)
		}
	}

	return output
}

// Returns the biggest item of a sequence
func Max[T constraints.Ordered](input []T) T {
	max := input[0]

	for _, item := range input {
		if item > max {
			max = item
		}
	}

	return max
}
