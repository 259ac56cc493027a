package stream

import "github.com/kabu1204/go-sorting/types"

func Of(elems ...interface{}) Stream {
	return &stream{
		source: func() types.Iterator[interface{}] {
			return types.NewSliceIterator(elems)
		},
		wrapper: defaultWrapper,
		Name:    "Of",
	}
}

// FromSlice streams the elements of a typed slice.
func FromSlice[T any](values []T) Stream {
	elems := make([]interface{}, len(values))
	for i, v := range values {
		elems[i] = v
	}
	return Of(elems...)
}

func defaultWrapper(this, next *stream) []Option {
	consumer := func(e interface{}) {
		next.consumer(e)
	}
	settler := func(size int64, opts ...Option) {
		this.apply(opts...)
		next.settler(size, opts...)
	}
	cleaner := func() {
		next.cleaner()
	}
	canceller := func() bool {
		return next.canceller()
	}
	return []Option{wrapConsumer(consumer), wrapSettler(settler), wrapCleaner(cleaner), wrapCanceller(canceller)}
}
