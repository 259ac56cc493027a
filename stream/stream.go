package stream

import (
	"github.com/kabu1204/go-sorting/sorter"
	"github.com/kabu1204/go-sorting/types"
)

type Stream interface {
	// stateless
	Filter(p types.Predicate) Stream
	Map(f types.Function) Stream
	Peek(f types.Consumer) Stream

	Parallel(n int) Stream // downstream stages consume on an n-worker pool

	// stateful
	Distinct(key types.KeyFunction) Stream
	Sorted(cmp types.Comparator[interface{}], alg sorter.Algorithm) Stream // stability depends on alg
	Limit(n int64) Stream                                                  // first n elems
	Skip(n int64) Stream                                                   // skip first n elems

	// termination
	ForEach(f types.Consumer)
	ToSlice() []interface{}
	Count() int64
	AllMatch(p types.Predicate) bool
	AnyMatch(p types.Predicate) bool
	Reduce(accumulator types.BinaryOperator) (interface{}, bool)
	FindFirst() (interface{}, bool)
}
