package sorter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabu1204/go-sorting/types"
)

// scriptedSource replays offsets (modulo n) and counts how often it is asked.
type scriptedSource struct {
	offsets []int
	calls   int
}

func (s *scriptedSource) IntN(n int) int {
	offset := s.offsets[s.calls%len(s.offsets)]
	s.calls++

	return offset % n
}

func partitioners(src IntSource, order types.Comparator[int]) map[string]partitionFunc[int] {
	return map[string]partitionFunc[int]{
		"quick":      NewQuicksorter(order, WithRand(src)).partition,
		"dutch-flag": NewDutchFlagSorter(order, WithRand(src)).partition,
	}
}

func assertPartitioned(t *testing.T, values []int, lb, small, equal, ub, pivot int) {
	t.Helper()

	for i := lb; i < small; i++ {
		assert.Less(t, values[i], pivot, "index %d in the smaller region", i)
	}
	for i := small; i < equal; i++ {
		assert.Equal(t, pivot, values[i], "index %d in the equal region", i)
	}
	for i := equal; i < ub; i++ {
		assert.Greater(t, values[i], pivot, "index %d in the larger region", i)
	}
}

func TestPartitionLayout(t *testing.T) {
	t.Parallel()

	input := []int{5, 3, 3, 1, 4, 3, 9, 3, 0}
	// Offset 1 picks input[1] == 3 as the pivot.
	for name, partition := range partitioners(&scriptedSource{offsets: []int{1}}, types.Ascending[int]()) {
		t.Run(name, func(t *testing.T) {
			values := slices.Clone(input)
			small, equal := partition(values, 0, len(values))

			assert.Equal(t, 2, small)
			assert.Equal(t, 6, equal)
			assertPartitioned(t, values, 0, small, equal, len(values), 3)
			assert.ElementsMatch(t, input, values)
		})
	}
}

func TestPartitionSubrange(t *testing.T) {
	t.Parallel()

	input := []int{100, 7, 2, 7, 9, 1, 7, -100}
	// Offset 2 picks values[1+2] == 7.
	for name, partition := range partitioners(&scriptedSource{offsets: []int{2}}, types.Ascending[int]()) {
		t.Run(name, func(t *testing.T) {
			values := slices.Clone(input)
			small, equal := partition(values, 1, 7)

			assert.Equal(t, 100, values[0])
			assert.Equal(t, -100, values[7])
			assert.Equal(t, 3, small)
			assert.Equal(t, 6, equal)
			assertPartitioned(t, values, 1, small, equal, 7, 7)
		})
	}
}

func TestPartitionKeepsEqualRunWhileRotating(t *testing.T) {
	t.Parallel()

	// Pivot 4 at offset 0: the equal run exists when 2 and 1 arrive, which
	// exercises the two-swap rotation in the three-cursor partition.
	values := []int{4, 4, 9, 2, 8, 4, 1}
	s := NewQuicksorter(types.Ascending[int](), WithRand(&scriptedSource{offsets: []int{0}}))
	small, equal := s.partition(values, 0, len(values))

	assert.Equal(t, []int{2, 1, 4, 4, 4}, values[:5])
	assert.Equal(t, 2, small)
	assert.Equal(t, 5, equal)
	assert.ElementsMatch(t, []int{8, 9}, values[5:])
}

func TestAllEqualNeedsOnePartition(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 100, 5000} {
		values := slices.Repeat([]int{2}, n)

		for _, alg := range []Algorithm{Quick, DutchFlag} {
			src := &scriptedSource{offsets: []int{0, 1, 2}}
			calls := 0
			s, err := New(alg, types.Counting(types.Ascending[int](), &calls), WithRand(src))
			require.NoError(t, err)

			s.Sort(values)

			assert.Equal(t, slices.Repeat([]int{2}, n), values)
			assert.Equal(t, 1, src.calls, "%v should partition %d equal keys once", alg, n)
			assert.Equal(t, n, calls, "%v should compare each of %d keys once", alg, n)
		}
	}
}

func TestQuicksortAdversarialPivots(t *testing.T) {
	t.Parallel()

	// Always pivoting on the leftmost element of sorted or reversed input
	// is the quadratic case; it still has to sort.
	const n = 2000
	ascending := make([]int, n)
	for i := range ascending {
		ascending[i] = i
	}
	descending := slices.Clone(ascending)
	slices.Reverse(descending)

	for _, alg := range []Algorithm{Quick, DutchFlag} {
		for _, input := range [][]int{ascending, descending} {
			values := slices.Clone(input)
			s, err := New(alg, types.Ascending[int](), WithRand(&scriptedSource{offsets: []int{0}}))
			require.NoError(t, err)

			s.Sort(values)
			assert.Equal(t, ascending, values)
		}
	}
}

func TestMergePrefersLeftRunOnTies(t *testing.T) {
	t.Parallel()

	type pair struct{ key, run int }

	s := NewMergeSorter[pair](func(a, b pair) int { return a.key - b.key })
	values := []pair{{1, 0}, {3, 0}, {3, 0}, {1, 1}, {3, 1}, {4, 1}}
	scratch := make([]pair, len(values))

	s.merge(values, scratch, 0, 3, len(values))

	assert.Equal(t, []pair{{1, 0}, {1, 1}, {3, 0}, {3, 0}, {3, 1}, {4, 1}}, values)
}

func TestIndexOfSmallestPicksFirstOccurrence(t *testing.T) {
	t.Parallel()

	s := NewSelectionSorter(types.Ascending[int]())
	values := []int{4, 1, 3, 1, 0, 0}

	assert.Equal(t, 1, s.indexOfSmallest(values, 0, 4))
	assert.Equal(t, 4, s.indexOfSmallest(values, 0, len(values)))
	assert.Equal(t, 2, s.indexOfSmallest(values, 2, 3))
}

func TestInsertStopsAtFirstOrderedNeighbor(t *testing.T) {
	t.Parallel()

	calls := 0
	s := NewInsertionSorter(types.Counting(types.Ascending[int](), &calls))
	values := []int{1, 3, 5, 7, 4}

	s.insert(values, 4)

	assert.Equal(t, []int{1, 3, 4, 5, 7}, values)
	assert.Equal(t, 3, calls)
}

func TestWithSeedIsReproducible(t *testing.T) {
	t.Parallel()

	a := newOptions([]Option{WithSeed(9)}).rand
	b := newOptions([]Option{WithSeed(9)}).rand
	for i := 0; i < 16; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.NotNil(t, newOptions(nil).rand)
}
