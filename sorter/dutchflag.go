package sorter

import "github.com/kabu1204/go-sorting/types"

// DutchFlagSorter is a randomized quicksort whose three-way partition
// grows the smaller region from the left and the larger region from the
// right, scanning the unclassified middle.
type DutchFlagSorter[T any] struct {
	order types.Comparator[T]
	rand  IntSource
}

func NewDutchFlagSorter[T any](order types.Comparator[T], opts ...Option) *DutchFlagSorter[T] {
	return &DutchFlagSorter[T]{
		order: order,
		rand:  newOptions(opts).rand,
	}
}

// partition requires lb < ub.
func (s *DutchFlagSorter[T]) partition(values []T, lb, ub int) (int, int) {
	pivot := values[lb+s.rand.IntN(ub-lb)]

	// +---------+---------+--------+--------+
	// |   <     |   =     |   ?    |   >    |
	// +---------+---------+--------+--------+
	// lb        small     equal    large    ub
	small, equal, large := lb, lb, ub
	for equal < large {
		c := s.order(values[equal], pivot)
		switch {
		case c < 0:
			types.Swap(values, small, equal)
			small++
			equal++
		case c == 0:
			equal++
		default:
			// The element swapped in from the right is unclassified, so
			// equal stays put.
			large--
			types.Swap(values, equal, large)
		}
	}

	return small, equal
}

func (s *DutchFlagSorter[T]) Sort(values []T) {
	traceSort(DutchFlag, len(values))
	quicksort(values, 0, len(values), s.partition)
}
