package sorter

import (
	"fmt"
	"strings"

	"github.com/kabu1204/go-sorting/types"
)

// Sorter sorts a slice in place.
//
// After Sort returns, values is a permutation of its original contents and
// cmp(values[i-1], values[i]) <= 0 for every i in [1, len(values)), where
// cmp is the comparator the sorter was constructed with.
type Sorter[T any] interface {
	Sort(values []T)
}

// Algorithm selects a Sorter implementation.
type Algorithm int

const (
	Fake Algorithm = iota
	Insertion
	Selection
	Merge
	Quick
	DutchFlag
)

var algorithmNames = map[Algorithm]string{
	Fake:      "fake",
	Insertion: "insertion",
	Selection: "selection",
	Merge:     "merge",
	Quick:     "quick",
	DutchFlag: "dutch-flag",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms lists every algorithm that actually sorts, in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Insertion, Selection, Merge, Quick, DutchFlag}
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for alg, n := range algorithmNames {
		if n == normalized {
			return alg, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// New builds the sorter selected by alg, bound to order. Options are only
// meaningful for the quicksort variants and are ignored by the others.
func New[T any](alg Algorithm, order types.Comparator[T], opts ...Option) (Sorter[T], error) {
	switch alg {
	case Fake:
		return NewFakeSorter(order), nil
	case Insertion:
		return NewInsertionSorter(order), nil
	case Selection:
		return NewSelectionSorter(order), nil
	case Merge:
		return NewMergeSorter(order), nil
	case Quick:
		return NewQuicksorter(order, opts...), nil
	case DutchFlag:
		return NewDutchFlagSorter(order, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}
