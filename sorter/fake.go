package sorter

import "github.com/kabu1204/go-sorting/types"

// FakeSorter satisfies Sorter without sorting anything. It exists so test
// suites can watch themselves fail.
type FakeSorter[T any] struct{}

func NewFakeSorter[T any](_ types.Comparator[T]) *FakeSorter[T] {
	return &FakeSorter[T]{}
}

func (s *FakeSorter[T]) Sort(values []T) {
	traceSort(Fake, len(values))
}
