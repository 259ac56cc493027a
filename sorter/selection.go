package sorter

import "github.com/kabu1204/go-sorting/types"

// SelectionSorter sorts by repeatedly swapping the smallest remaining
// element into place.
type SelectionSorter[T any] struct {
	order types.Comparator[T]
}

func NewSelectionSorter[T any](order types.Comparator[T]) *SelectionSorter[T] {
	return &SelectionSorter[T]{order: order}
}

// indexOfSmallest returns the first position in [start, finish) holding a
// minimal element. Requires start < finish.
func (s *SelectionSorter[T]) indexOfSmallest(values []T, start, finish int) int {
	smallest := start
	for i := start + 1; i < finish; i++ {
		if s.order(values[i], values[smallest]) < 0 {
			smallest = i
		}
	}
	return smallest
}

func (s *SelectionSorter[T]) Sort(values []T) {
	traceSort(Selection, len(values))
	for i := 0; i < len(values); i++ {
		types.Swap(values, i, s.indexOfSmallest(values, i, len(values)))
	}
}
