package sorter

import "github.com/kabu1204/go-sorting/types"

// MergeSorter is a top-down merge sort. Each call to Sort allocates one
// scratch buffer the size of the input and reuses it for every merge, so
// a MergeSorter keeps no state between calls.
type MergeSorter[T any] struct {
	order types.Comparator[T]
}

func NewMergeSorter[T any](order types.Comparator[T]) *MergeSorter[T] {
	return &MergeSorter[T]{order: order}
}

// merge combines the sorted runs values[lb:mid] and values[mid:ub]. Ties
// take from the left run.
func (s *MergeSorter[T]) merge(values, scratch []T, lb, mid, ub int) {
	i, j, n := lb, mid, 0

	for i < mid && j < ub {
		if s.order(values[i], values[j]) <= 0 {
			scratch[n] = values[i]
			i++
		} else {
			scratch[n] = values[j]
			j++
		}
		n++
	}
	n += copy(scratch[n:], values[i:mid])
	n += copy(scratch[n:], values[j:ub])

	copy(values[lb:ub], scratch[:n])
}

func (s *MergeSorter[T]) sort(values, scratch []T, lb, ub int) {
	if ub-lb <= 1 {
		return
	}
	mid := lb + (ub-lb)/2
	s.sort(values, scratch, lb, mid)
	s.sort(values, scratch, mid, ub)
	s.merge(values, scratch, lb, mid, ub)
}

func (s *MergeSorter[T]) Sort(values []T) {
	traceSort(Merge, len(values))
	if len(values) <= 1 {
		return
	}
	s.sort(values, make([]T, len(values)), 0, len(values))
}
