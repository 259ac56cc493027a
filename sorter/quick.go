package sorter

import "github.com/kabu1204/go-sorting/types"

// partitionFunc rearranges values[lb:ub] around a pivot so that
// values[lb:small] < pivot, values[small:equal] == pivot and
// values[equal:ub] > pivot.
type partitionFunc[T any] func(values []T, lb, ub int) (small, equal int)

// quicksort sorts values[lb:ub]. The pivot-equal run is already in its
// final place after partitioning and is never revisited. It recurses into
// the smaller side and loops on the larger one, so the stack stays
// O(log n) deep however the pivots fall.
func quicksort[T any](values []T, lb, ub int, partition partitionFunc[T]) {
	for ub-lb > 1 {
		small, equal := partition(values, lb, ub)
		if small-lb < ub-equal {
			quicksort(values, lb, small, partition)
			lb = equal
		} else {
			quicksort(values, equal, ub, partition)
			ub = small
		}
	}
}

// Quicksorter is a randomized quicksort with a three-way partition that
// sweeps three cursors from the left of the range.
type Quicksorter[T any] struct {
	order types.Comparator[T]
	rand  IntSource
}

func NewQuicksorter[T any](order types.Comparator[T], opts ...Option) *Quicksorter[T] {
	return &Quicksorter[T]{
		order: order,
		rand:  newOptions(opts).rand,
	}
}

// partition requires lb < ub.
func (s *Quicksorter[T]) partition(values []T, lb, ub int) (int, int) {
	pivot := values[lb+s.rand.IntN(ub-lb)]

	// +---------+---------+---------+--------+
	// |   <     |   =     |   >     |   ?    |
	// +---------+---------+---------+--------+
	// lb        small     equal     large    ub
	small, equal, large := lb, lb, lb
	for large < ub {
		c := s.order(values[large], pivot)
		switch {
		case c < 0:
			// Rotate the first equal element to the end of the equal run
			// before the smaller element takes its slot.
			if small != equal && equal != large {
				types.Swap(values, small, equal)
			}
			types.Swap(values, small, large)
			small++
			equal++
			large++
		case c == 0:
			types.Swap(values, equal, large)
			equal++
			large++
		default:
			large++
		}
	}

	return small, equal
}

func (s *Quicksorter[T]) Sort(values []T) {
	traceSort(Quick, len(values))
	quicksort(values, 0, len(values), s.partition)
}
