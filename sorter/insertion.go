package sorter

import "github.com/kabu1204/go-sorting/types"

// InsertionSorter sorts by walking each element left until it meets a
// neighbor that does not sort after it.
type InsertionSorter[T any] struct {
	order types.Comparator[T]
}

func NewInsertionSorter[T any](order types.Comparator[T]) *InsertionSorter[T] {
	return &InsertionSorter[T]{order: order}
}

// insert moves values[k] left into the sorted prefix values[0:k].
func (s *InsertionSorter[T]) insert(values []T, k int) {
	for i := k; i > 0; i-- {
		if s.order(values[i-1], values[i]) <= 0 {
			return
		}
		types.Swap(values, i-1, i)
	}
}

func (s *InsertionSorter[T]) Sort(values []T) {
	traceSort(Insertion, len(values))
	for k := 1; k < len(values); k++ {
		s.insert(values, k)
	}
}
