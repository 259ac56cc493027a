package types

type Iterator[T any] interface {
	Next() (T, bool)
	Len() int // for slices: a definite number; for channels: -1
}

type sliceIterator[T any] struct {
	index int
	slice []T
}

func NewSliceIterator[T any](s []T) *sliceIterator[T] {
	return &sliceIterator[T]{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator[T]) hasNext() bool {
	return it.index < len(it.slice)-1
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.hasNext() {
		it.index++
		return it.slice[it.index], true
	}
	var zero T
	return zero, false
}

func (it *sliceIterator[T]) Len() int {
	return len(it.slice)
}

func (it *sliceIterator[T]) At(i int) T {
	return it.slice[i]
}

// Seek positions the iterator so that the next call to Next returns
// element i+1.
func (it *sliceIterator[T]) Seek(i int) bool {
	if i < -1 || i >= len(it.slice) {
		return false
	}
	it.index = i
	return true
}
