package bench

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/kabu1204/go-sorting/sorter"
)

type resultKey struct {
	alg  sorter.Algorithm
	w    Workload
	size int
}

func compareResultKeys(a, b interface{}) int {
	ka, kb := a.(resultKey), b.(resultKey)
	if c := utils.IntComparator(int(ka.alg), int(kb.alg)); c != 0 {
		return c
	}
	if c := utils.IntComparator(int(ka.w), int(kb.w)); c != 0 {
		return c
	}
	return utils.IntComparator(ka.size, kb.size)
}

// Report holds results ordered by algorithm, then workload, then size.
type Report struct {
	results *treemap.Map
}

func (r *Report) Len() int {
	return r.results.Size()
}

func (r *Report) Results() []Result {
	out := make([]Result, 0, r.results.Size())
	it := r.results.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Result))
	}
	return out
}

// Failed lists results of real sorters that did not verify. The stub
// sorter is expected to fail and is left out.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results() {
		if res.Err != nil && res.Algorithm != sorter.Fake {
			failed = append(failed, res)
		}
	}
	return failed
}
