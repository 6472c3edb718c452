// Package compare provides comparison functions in the form expected by the
// sorting algorithms of the containers: negative when a orders before b,
// positive when it orders after, zero when they are equivalent.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse returns a comparison function ordering values in the opposite order
// of cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int { return cmp(b, a) }
}

// By returns a comparison function ordering values of type T by the ordered
// key that key extracts from them.
func By[T any, K constraints.Ordered](key func(T) K) func(T, T) int {
	return func(a, b T) int { return Function(key(a), key(b)) }
}

// Then returns a comparison function ordering values with cmp, and with next
// when cmp considers them equivalent.
func Then[T any](cmp, next func(T, T) int) func(T, T) int {
	return func(a, b T) int {
		if c := cmp(a, b); c != 0 {
			return c
		}
		return next(a, b)
	}
}
