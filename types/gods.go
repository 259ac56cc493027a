package types

import "github.com/emirpasic/gods/utils"

// FromGods adapts an untyped gods comparator such as utils.IntComparator.
// The comparator panics if it is handed a T it does not understand.
func FromGods[T any](c utils.Comparator) Comparator[T] {
	return func(e1, e2 T) int { return c(e1, e2) }
}

// ToGods erases the element type of c so it can drive gods containers
// and utils.Sort.
func ToGods[T any](c Comparator[T]) utils.Comparator {
	return func(a, b interface{}) int { return c(a.(T), b.(T)) }
}
