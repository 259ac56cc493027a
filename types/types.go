package types

import "cmp"

type (
	// Comparator is a total order over T: negative when e1 sorts before e2,
	// zero when they are equivalent, positive otherwise.
	Comparator[T any] func(e1, e2 T) int

	Predicate func(interface{}) bool

	Function func(interface{}) interface{}

	Consumer func(interface{})

	KeyFunction func(interface{}) string

	BinaryOperator func(e1, e2 interface{}) interface{}
)

// Array binds a sequence to the order it should be sorted by.
type Array[T any] struct {
	Data []T
	Cmp  Comparator[T]
}

func Ascending[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

func Descending[T cmp.Ordered]() Comparator[T] {
	return Reverse(Ascending[T]())
}

// Reverse inverts the order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(e1, e2 T) int { return c(e2, e1) }
}

// Counting wraps c so that every invocation increments *n.
func Counting[T any](c Comparator[T], n *int) Comparator[T] {
	return func(e1, e2 T) int {
		*n++
		return c(e1, e2)
	}
}
