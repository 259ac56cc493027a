package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/kabu1204/go-sorting/metrics"
	"github.com/kabu1204/go-sorting/sorter"
	"github.com/kabu1204/go-sorting/types"
	"github.com/kabu1204/go-sorting/verify"
)

// Config selects what a Runner sorts.
type Config struct {
	Algorithms []sorter.Algorithm // Defaults to sorter.Algorithms().
	Workloads  []Workload         // Defaults to Workloads().
	Sizes      []int
	Seed       uint64
	Workers    int // Defaults to GOMAXPROCS.
}

// Result is the outcome of sorting one workload with one algorithm.
type Result struct {
	Algorithm   sorter.Algorithm
	Workload    Workload
	Size        int
	Comparisons int
	Duration    time.Duration
	Err         error
}

// Runner sorts every (algorithm, workload, size) combination of its Config.
type Runner struct {
	config  Config
	metrics *metrics.Metrics
}

// NewRunner validates cfg and fills in defaults. m may be nil.
func NewRunner(cfg Config, m *metrics.Metrics) (*Runner, error) {
	if len(cfg.Sizes) == 0 {
		return nil, fmt.Errorf("%w: no sizes given", ErrInvalidConfig)
	}
	for _, n := range cfg.Sizes {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative size %d", ErrInvalidConfig, n)
		}
	}
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = sorter.Algorithms()
	}
	if len(cfg.Workloads) == 0 {
		cfg.Workloads = Workloads()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return &Runner{config: cfg, metrics: m}, nil
}

// Run executes every task on a worker pool. Cancelling ctx stops new tasks
// from being submitted; Run then waits for the running ones and returns
// ctx.Err().
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	pool, err := ants.NewPool(r.config.Workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = treemap.NewWith(compareResultKeys)
	)

	logrus.WithFields(logrus.Fields{
		"algorithms": len(r.config.Algorithms),
		"workloads":  len(r.config.Workloads),
		"sizes":      r.config.Sizes,
		"workers":    r.config.Workers,
	}).Info("Starting sort benchmark")

submit:
	for _, alg := range r.config.Algorithms {
		for _, w := range r.config.Workloads {
			for _, n := range r.config.Sizes {
				if ctx.Err() != nil {
					break submit
				}

				wg.Add(1)
				task := func() {
					defer wg.Done()
					res := r.runOne(alg, w, n)
					mu.Lock()
					results.Put(resultKey{alg, w, n}, res)
					mu.Unlock()
				}
				if err := pool.Submit(task); err != nil {
					wg.Done()
					wg.Wait()

					return nil, fmt.Errorf("failed to submit %s on %s/%d: %w", alg, w, n, err)
				}
			}
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Report{results: results}, nil
}

func (r *Runner) runOne(alg sorter.Algorithm, w Workload, n int) Result {
	input := Generate(w, n, rand.New(rand.NewPCG(r.config.Seed, uint64(w)<<32|uint64(n))))
	values := slices.Clone(input)
	asc := types.Ascending[int]()

	res := Result{Algorithm: alg, Workload: w, Size: n}

	s, err := sorter.New(alg, types.Counting(asc, &res.Comparisons), sorter.WithSeed(r.config.Seed+uint64(alg)))
	if err != nil {
		res.Err = err
		return res
	}

	start := time.Now()
	s.Sort(values)
	res.Duration = time.Since(start)

	if err := verify.Check(input, values, asc, verify.FormatKey[int]); err != nil {
		res.Err = VerificationError{Algorithm: alg, Workload: w, Size: n, Err: err}
	} else if err := matchOracle(input, values); err != nil {
		res.Err = VerificationError{Algorithm: alg, Workload: w, Size: n, Err: err}
	}

	entry := logrus.WithFields(logrus.Fields{
		"algorithm":   alg.String(),
		"workload":    w.String(),
		"size":        n,
		"comparisons": res.Comparisons,
		"duration":    res.Duration,
	})
	switch {
	case res.Err != nil && alg == sorter.Fake:
		entry.WithError(res.Err).Debug("Stub sorter left input unsorted")
	case res.Err != nil:
		entry.WithError(res.Err).Warn("Sort failed verification")
	default:
		entry.Debug("Sort verified")
	}

	if r.metrics != nil {
		r.metrics.Observe(metrics.Sample{
			Algorithm:   alg.String(),
			Workload:    w.String(),
			Comparisons: res.Comparisons,
			Duration:    res.Duration,
			Failed:      res.Err != nil,
		})
	}

	return res
}

// matchOracle compares got with the input sorted by gods' reference sort.
func matchOracle(input, got []int) error {
	expected := make([]interface{}, len(input))
	for i, v := range input {
		expected[i] = v
	}
	utils.Sort(expected, utils.IntComparator)

	for i := range expected {
		if expected[i].(int) != got[i] {
			return fmt.Errorf("%w: position %d holds %d, want %d", ErrOracleMismatch, i, got[i], expected[i])
		}
	}

	return nil
}
