// Package verify checks the two properties every sorter promises: the
// output is ordered, and it is a permutation of the input.
package verify

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cornelk/hashmap"

	"github.com/kabu1204/go-sorting/sorter"
	"github.com/kabu1204/go-sorting/types"
)

var (
	// ErrNotSorted indicates adjacent elements out of order.
	ErrNotSorted = errors.New("sequence is not sorted")

	// ErrNotPermutation indicates elements were lost, duplicated or invented.
	ErrNotPermutation = errors.New("sequence is not a permutation of the input")
)

// KeyFunc maps an element to a string identifying it for multiset counting.
// Elements considered the same element must map to the same key.
type KeyFunc[T any] func(T) string

// FormatKey keys an element by its default formatting.
func FormatKey[T any](v T) string {
	return fmt.Sprint(v)
}

// FirstInversion returns the smallest i with order(values[i-1], values[i]) > 0,
// or -1 when values is sorted.
func FirstInversion[T any](values []T, order types.Comparator[T]) int {
	for i := 1; i < len(values); i++ {
		if order(values[i-1], values[i]) > 0 {
			return i
		}
	}
	return -1
}

func IsSorted[T any](values []T, order types.Comparator[T]) bool {
	return FirstInversion(values, order) < 0
}

// Mismatches returns, in ascending order, the keys whose occurrence counts
// differ between before and after.
func Mismatches[T any](before, after []T, key KeyFunc[T]) []string {
	counts := &hashmap.HashMap{}
	tally := func(values []T, delta int64) {
		for _, v := range values {
			actual, _ := counts.GetOrInsert(key(v), new(int64))
			atomic.AddInt64(actual.(*int64), delta)
		}
	}
	tally(before, 1)
	tally(after, -1)

	var keys []string
	for kv := range counts.Iter() {
		if atomic.LoadInt64(kv.Value.(*int64)) != 0 {
			keys = append(keys, kv.Key.(string))
		}
	}
	sorter.NewMergeSorter(types.Ascending[string]()).Sort(keys)

	return keys
}

func IsPermutation[T any](before, after []T, key KeyFunc[T]) bool {
	return len(before) == len(after) && len(Mismatches(before, after, key)) == 0
}

// Check reports the first property after violates, wrapping ErrNotSorted
// or ErrNotPermutation.
func Check[T any](before, after []T, order types.Comparator[T], key KeyFunc[T]) error {
	if len(before) != len(after) {
		return fmt.Errorf("%w: length changed from %d to %d", ErrNotPermutation, len(before), len(after))
	}
	if i := FirstInversion(after, order); i >= 0 {
		return fmt.Errorf("%w: positions %d and %d are out of order", ErrNotSorted, i-1, i)
	}
	if keys := Mismatches(before, after, key); len(keys) > 0 {
		return fmt.Errorf("%w: %d keys changed count, first %q", ErrNotPermutation, len(keys), keys[0])
	}
	return nil
}
