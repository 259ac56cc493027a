package sorter_test

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/kabu1204/go-sorting/sorter"
	"github.com/kabu1204/go-sorting/types"
)

// record carries an identity alongside its sort key so tests can tell
// equal keys apart.
type record struct {
	key int
	id  int
}

var byKey types.Comparator[record] = func(a, b record) int { return a.key - b.key }

func newIntSorter(alg sorter.Algorithm, order types.Comparator[int]) sorter.Sorter[int] {
	s, err := sorter.New(alg, order, sorter.WithSeed(42))
	gomega.Expect(err).NotTo(gomega.HaveOccurred())

	return s
}

func sortedCopy(values []int) []int {
	expected := slices.Clone(values)
	slices.Sort(expected)

	return expected
}

func algorithmEntries() []ginkgo.TableEntry {
	entries := make([]ginkgo.TableEntry, 0, len(sorter.Algorithms()))
	for _, alg := range sorter.Algorithms() {
		entries = append(entries, ginkgo.Entry(alg.String(), alg))
	}

	return entries
}

var _ = ginkgo.Describe("Sorters", func() {
	ginkgo.DescribeTable("sorts the documented scenarios",
		func(alg sorter.Algorithm) {
			scenarios := []struct {
				input    []int
				expected []int
			}{
				{[]int{5, 3, 3, 1, 4, 3}, []int{1, 3, 3, 3, 4, 5}},
				{[]int{}, []int{}},
				{[]int{2, 2, 2, 2}, []int{2, 2, 2, 2}},
				{[]int{1}, []int{1}},
				{[]int{9, 8, 7, 6, 5}, []int{5, 6, 7, 8, 9}},
			}
			for _, sc := range scenarios {
				values := slices.Clone(sc.input)
				newIntSorter(alg, types.Ascending[int]()).Sort(values)
				gomega.Expect(values).To(gomega.Equal(sc.expected), "input %v", sc.input)
			}
		},
		algorithmEntries(),
	)

	ginkgo.DescribeTable("never calls the comparator on trivially sorted input",
		func(alg sorter.Algorithm) {
			for _, input := range [][]int{nil, {}, {7}} {
				calls := 0
				s := newIntSorter(alg, types.Counting(types.Ascending[int](), &calls))
				s.Sort(input)
				gomega.Expect(calls).To(gomega.BeZero())
			}
		},
		algorithmEntries(),
	)

	ginkgo.DescribeTable("produces a sorted permutation of random input",
		func(alg sorter.Algorithm) {
			rng := rand.New(rand.NewPCG(7, 11))
			for _, n := range []int{2, 3, 10, 31, 64, 257, 1000} {
				for _, spread := range []int{2, 10, n * 4} {
					values := make([]int, n)
					for i := range values {
						values[i] = rng.IntN(spread)
					}
					expected := sortedCopy(values)

					newIntSorter(alg, types.Ascending[int]()).Sort(values)
					gomega.Expect(values).To(gomega.Equal(expected), "n=%d spread=%d", n, spread)
				}
			}
		},
		algorithmEntries(),
	)

	ginkgo.DescribeTable("honours the comparator it was built with",
		func(alg sorter.Algorithm) {
			values := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
			newIntSorter(alg, types.Descending[int]()).Sort(values)
			gomega.Expect(values).To(gomega.Equal([]int{9, 6, 5, 5, 5, 4, 3, 3, 2, 1, 1}))

			words := []string{"pear", "apple", "fig", "banana", "apple"}
			s, err := sorter.New(alg, types.FromGods[string](utils.StringComparator))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			s.Sort(words)
			gomega.Expect(words).To(gomega.Equal([]string{"apple", "apple", "banana", "fig", "pear"}))
		},
		algorithmEntries(),
	)

	ginkgo.DescribeTable("keeps already sorted records in place element for element",
		func(alg sorter.Algorithm) {
			values := []record{{1, 0}, {2, 1}, {2, 2}, {2, 3}, {5, 4}, {8, 5}, {8, 6}}
			original := slices.Clone(values)

			s, err := sorter.New(alg, byKey)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			s.Sort(values)
			gomega.Expect(values).To(gomega.Equal(original))
		},
		ginkgo.Entry("insertion", sorter.Insertion),
		ginkgo.Entry("selection", sorter.Selection),
		ginkgo.Entry("merge", sorter.Merge),
	)

	ginkgo.DescribeTable("keeps already sorted records ordered by key",
		func(alg sorter.Algorithm) {
			values := []record{{1, 0}, {2, 1}, {2, 2}, {2, 3}, {5, 4}, {8, 5}, {8, 6}}

			s, err := sorter.New(alg, byKey, sorter.WithSeed(3))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			s.Sort(values)

			keys := make([]int, len(values))
			ids := make([]int, len(values))
			for i, r := range values {
				keys[i] = r.key
				ids[i] = r.id
			}
			gomega.Expect(keys).To(gomega.Equal([]int{1, 2, 2, 2, 5, 8, 8}))
			gomega.Expect(ids).To(gomega.ConsistOf(0, 1, 2, 3, 4, 5, 6))
		},
		ginkgo.Entry("quick", sorter.Quick),
		ginkgo.Entry("dutch-flag", sorter.DutchFlag),
	)

	ginkgo.DescribeTable("preserves the input order of equal keys",
		func(alg sorter.Algorithm) {
			values := []record{{3, 0}, {1, 1}, {3, 2}, {2, 3}, {1, 4}, {3, 5}, {2, 6}}

			s, err := sorter.New(alg, byKey)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			s.Sort(values)
			gomega.Expect(values).To(gomega.Equal([]record{
				{1, 1}, {1, 4}, {2, 3}, {2, 6}, {3, 0}, {3, 2}, {3, 5},
			}))
		},
		ginkgo.Entry("insertion", sorter.Insertion),
		ginkgo.Entry("merge", sorter.Merge),
	)

	ginkgo.It("makes one comparison per element on already sorted input with insertion sort", func() {
		values := make([]int, 500)
		for i := range values {
			values[i] = i / 3
		}

		calls := 0
		sorter.NewInsertionSorter(types.Counting(types.Ascending[int](), &calls)).Sort(values)
		gomega.Expect(calls).To(gomega.Equal(len(values) - 1))
	})

	ginkgo.Describe("FakeSorter", func() {
		ginkgo.It("leaves unsorted input untouched", func() {
			values := []int{5, 3, 3, 1, 4, 3}
			calls := 0
			s, err := sorter.New(sorter.Fake, types.Counting(types.Ascending[int](), &calls))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			s.Sort(values)
			gomega.Expect(values).To(gomega.Equal([]int{5, 3, 3, 1, 4, 3}))
			gomega.Expect(slices.IsSorted(values)).To(gomega.BeFalse())
			gomega.Expect(calls).To(gomega.BeZero())
		})

		ginkgo.It("is not listed among the real algorithms", func() {
			gomega.Expect(sorter.Algorithms()).NotTo(gomega.ContainElement(sorter.Fake))
		})
	})

	ginkgo.Describe("Algorithm selection", func() {
		ginkgo.It("round-trips every algorithm through its name", func() {
			for _, alg := range append(sorter.Algorithms(), sorter.Fake) {
				parsed, err := sorter.ParseAlgorithm(strings.ToUpper(alg.String()))
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(parsed).To(gomega.Equal(alg))
			}
		})

		ginkgo.It("rejects unknown names", func() {
			_, err := sorter.ParseAlgorithm("bogo")
			gomega.Expect(err).To(gomega.MatchError(sorter.ErrUnknownAlgorithm))
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("bogo"))
		})

		ginkgo.It("rejects unknown tags", func() {
			s, err := sorter.New(sorter.Algorithm(99), types.Ascending[int]())
			gomega.Expect(err).To(gomega.MatchError(sorter.ErrUnknownAlgorithm))
			gomega.Expect(s).To(gomega.BeNil())
			gomega.Expect(sorter.Algorithm(99).String()).To(gomega.Equal("Algorithm(99)"))
		})
	})
})
