// Package sorter provides interchangeable in-place sorting algorithms over
// slices, each bound to a caller-supplied types.Comparator.
//
// Available algorithms:
//   - InsertionSorter: quadratic, linear on sorted input.
//   - SelectionSorter: quadratic comparisons, linear exchanges.
//   - MergeSorter: O(n log n) with one scratch buffer per Sort call.
//   - Quicksorter: randomized three-way partition that sweeps three
//     cursors left to right.
//   - DutchFlagSorter: randomized three-way partition with boundaries
//     growing in from both ends of the range.
//   - FakeSorter: does nothing, for checking that a test suite notices.
//
// Usage example:
//
//	s, err := sorter.New(sorter.Quick, types.Ascending[int]())
//	if err != nil {
//	    logrus.WithError(err).Fatal("Unknown algorithm")
//	}
//	s.Sort(values)
//
// None of the sorters is stable by contract and none is safe for
// concurrent use on the same slice. Quicksorters additionally own a random
// source, so a single instance must not be shared between goroutines.
package sorter
