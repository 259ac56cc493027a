package stream

import (
	"sync"
	"sync/atomic"

	"github.com/cornelk/hashmap"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/kabu1204/go-sorting/sorter"
	"github.com/kabu1204/go-sorting/types"
)

// source <- Filter <- Sorted <- ToSlice
//
// Every stage is configured from the tail towards the head: a stage's
// wrapper receives the already configured downstream stage and returns the
// options that install its own consumer, settler, cleaner and canceller.

type Option func(*stream)
type wrapperType func(this, next *stream) []Option

type stream struct {
	source    func() types.Iterator[interface{}]
	prev      *stream
	wrapper   wrapperType
	consumer  types.Consumer
	settler   func(size int64, opts ...Option)
	cleaner   func()
	canceller func() bool
	parallel  int
	Name      string
}

func (s *stream) terminate() {
	head := s.setFunctor()
	it := s.source()
	head.settler(int64(it.Len()))
	for v, ok := it.Next(); ok && !head.canceller(); v, ok = it.Next() {
		head.consumer(v)
	}
	head.cleaner()
}

func (s *stream) apply(opts ...Option) {
	for _, o := range opts {
		o(s)
	}
}

func (s *stream) unwrap(next *stream) {
	s.apply(s.wrapper(s, next)...)
}

func wrapConsumer(c types.Consumer) Option        { return func(s *stream) { s.consumer = c } }
func wrapSettler(c func(int64, ...Option)) Option { return func(s *stream) { s.settler = c } }
func wrapCleaner(c func()) Option                 { return func(s *stream) { s.cleaner = c } }
func wrapCanceller(c func() bool) Option          { return func(s *stream) { s.canceller = c } }
func withParallel(n int) Option                   { return func(s *stream) { s.parallel = n } }

func (s *stream) setFunctor() *stream {
	s.unwrap(&stream{
		source:    s.source,
		prev:      s,
		consumer:  func(_ interface{}) {},
		settler:   func(_ int64, _ ...Option) {},
		cleaner:   func() {},
		canceller: func() bool { return false },
		Name:      "Tail",
	})
	p := s
	for ; p.prev != nil; p = p.prev {
		p.prev.unwrap(p)
	}
	return p
}

func newStream(prev *stream, wrapper wrapperType, name string) *stream {
	return &stream{
		source:  prev.source,
		prev:    prev,
		wrapper: wrapper,
		Name:    name,
	}
}

// stateless

func (s *stream) Filter(p types.Predicate) Stream {
	wrapper := func(this, next *stream) []Option {
		consumer := func(e interface{}) {
			if p(e) {
				next.consumer(e)
			}
		}
		return append(defaultWrapper(this, next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Filter")
}

func (s *stream) Map(f types.Function) Stream {
	wrapper := func(this, next *stream) []Option {
		consumer := func(e interface{}) {
			next.consumer(f(e))
		}
		return append(defaultWrapper(this, next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Map")
}

func (s *stream) Peek(f types.Consumer) Stream {
	wrapper := func(this, next *stream) []Option {
		consumer := func(e interface{}) {
			f(e)
			next.consumer(e)
		}
		return append(defaultWrapper(this, next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Peek")
}

func (s *stream) Parallel(n int) Stream {
	n = max(n, 1)
	wrapper := func(this, next *stream) []Option {
		var wg sync.WaitGroup
		var pool *ants.Pool
		settler := func(size int64, opts ...Option) {
			opts = append(opts, withParallel(n))
			this.apply(opts...)
			var err error
			if pool, err = ants.NewPool(n); err != nil {
				logrus.WithError(err).WithField("workers", n).Warn("Falling back to sequential consumption")
			}
			next.settler(size, opts...)
		}
		consumer := func(e interface{}) {
			if pool == nil {
				next.consumer(e)
				return
			}
			wg.Add(1)
			task := func() {
				defer wg.Done()
				next.consumer(e)
			}
			if err := pool.Submit(task); err != nil {
				wg.Done()
				next.consumer(e)
			}
		}
		cleaner := func() {
			wg.Wait()
			if pool != nil {
				pool.Release()
				pool = nil
			}
			next.cleaner()
		}
		return append(defaultWrapper(this, next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStream(s, wrapper, "Parallel")
}

// stateful

// Distinct forwards only the first element seen for each key.
func (s *stream) Distinct(key types.KeyFunction) Stream {
	wrapper := func(this, next *stream) []Option {
		var seen *hashmap.HashMap
		settler := func(size int64, opts ...Option) {
			this.apply(opts...)
			seen = &hashmap.HashMap{}
			next.settler(size, opts...)
		}
		consumer := func(e interface{}) {
			if _, loaded := seen.GetOrInsert(key(e), struct{}{}); !loaded {
				next.consumer(e)
			}
		}
		cleaner := func() {
			seen = nil
			next.cleaner()
		}
		return append(defaultWrapper(this, next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStream(s, wrapper, "Distinct")
}

// Sorted collects every upstream element, sorts them with alg and replays
// them downstream one at a time, so stages after it run sequentially.
// It panics if alg does not name a sorter.
func (s *stream) Sorted(cmp types.Comparator[interface{}], alg sorter.Algorithm) Stream {
	if _, err := sorter.New(alg, cmp); err != nil {
		panic(err)
	}
	wrapper := func(this, next *stream) []Option {
		var mu sync.Mutex
		var buffer []interface{}
		settler := func(capacity int64, opts ...Option) {
			this.apply(opts...)
			buffer = make([]interface{}, 0, capacity)
		}
		consumer := func(e interface{}) {
			if this.parallel > 0 {
				mu.Lock()
				defer mu.Unlock()
			}
			buffer = append(buffer, e)
		}
		cleaner := func() {
			sorted, _ := sorter.New(alg, cmp)
			sorted.Sort(buffer)
			next.settler(int64(len(buffer)), withParallel(0))
			for _, e := range buffer {
				if next.canceller() {
					break
				}
				next.consumer(e)
			}
			buffer = nil
			next.cleaner()
		}
		canceller := func() bool { return false }
		return append(defaultWrapper(this, next), wrapSettler(settler),
			wrapConsumer(consumer), wrapCleaner(cleaner), wrapCanceller(canceller))
	}
	return newStream(s, wrapper, "Sorted")
}

func (s *stream) Limit(n int64) Stream {
	n = max(n, 0)
	wrapper := func(this, next *stream) []Option {
		var cnt *int64
		settler := func(size int64, opts ...Option) {
			this.apply(opts...)
			cnt = new(int64)
			next.settler(min(size, n), opts...)
		}
		consumer := func(e interface{}) {
			for old := atomic.LoadInt64(cnt); old < n; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					next.consumer(e)
					break
				}
			}
		}
		canceller := func() bool {
			return atomic.LoadInt64(cnt) >= n || next.canceller()
		}
		return append(defaultWrapper(this, next), wrapSettler(settler),
			wrapConsumer(consumer), wrapCanceller(canceller))
	}
	return newStream(s, wrapper, "Limit")
}

func (s *stream) Skip(n int64) Stream {
	n = max(n, 0)
	wrapper := func(this, next *stream) []Option {
		var cnt *int64
		settler := func(size int64, opts ...Option) {
			this.apply(opts...)
			cnt = new(int64)
			next.settler(max(size-n, 0), opts...)
		}
		consumer := func(e interface{}) {
			for old := atomic.LoadInt64(cnt); old < n; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					return
				}
			}
			next.consumer(e)
		}
		return append(defaultWrapper(this, next), wrapSettler(settler), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Skip")
}

// termination

func (s *stream) ToSlice() []interface{} {
	var mu sync.Mutex
	var slice []interface{}
	wrapper := func(this, next *stream) []Option {
		settler := func(size int64, opts ...Option) {
			this.apply(opts...)
			slice = make([]interface{}, 0, size)
		}
		consumer := func(e interface{}) {
			mu.Lock()
			defer mu.Unlock()
			slice = append(slice, e)
		}
		return append(defaultWrapper(this, next), wrapSettler(settler), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "ToSlice").terminate()
	return slice
}

// ForEach calls f for every element. After Parallel, f runs concurrently.
func (s *stream) ForEach(f types.Consumer) {
	wrapper := func(this, next *stream) []Option {
		return append(defaultWrapper(this, next), wrapConsumer(f))
	}
	newStream(s, wrapper, "ForEach").terminate()
}

func (s *stream) Count() int64 {
	var cnt int64
	wrapper := func(this, next *stream) []Option {
		consumer := func(_ interface{}) { atomic.AddInt64(&cnt, 1) }
		return append(defaultWrapper(this, next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "Count").terminate()
	return atomic.LoadInt64(&cnt)
}

func (s *stream) AllMatch(p types.Predicate) bool {
	var failed atomic.Bool
	wrapper := func(this, next *stream) []Option {
		consumer := func(e interface{}) {
			if !p(e) {
				failed.Store(true)
			}
		}
		canceller := func() bool { return failed.Load() }
		return append(defaultWrapper(this, next), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newStream(s, wrapper, "AllMatch").terminate()
	return !failed.Load()
}

func (s *stream) AnyMatch(p types.Predicate) bool {
	var found atomic.Bool
	wrapper := func(this, next *stream) []Option {
		consumer := func(e interface{}) {
			if p(e) {
				found.Store(true)
			}
		}
		canceller := func() bool { return found.Load() }
		return append(defaultWrapper(this, next), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newStream(s, wrapper, "AnyMatch").terminate()
	return found.Load()
}

// Reduce folds the elements with accumulator. The second result is false
// when the stream is empty.
func (s *stream) Reduce(accumulator types.BinaryOperator) (interface{}, bool) {
	var mu sync.Mutex
	var result interface{}
	none := true
	wrapper := func(this, next *stream) []Option {
		consumer := func(e interface{}) {
			mu.Lock()
			defer mu.Unlock()
			if none {
				result = e
				none = false
			} else {
				result = accumulator(result, e)
			}
		}
		return append(defaultWrapper(this, next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "Reduce").terminate()
	return result, !none
}

// FindFirst returns the first element to reach it. After Parallel that is
// whichever worker got there first.
func (s *stream) FindFirst() (interface{}, bool) {
	var mu sync.Mutex
	var result interface{}
	none := true
	wrapper := func(this, next *stream) []Option {
		consumer := func(e interface{}) {
			mu.Lock()
			defer mu.Unlock()
			if none {
				result = e
				none = false
			}
		}
		canceller := func() bool {
			mu.Lock()
			defer mu.Unlock()
			return !none
		}
		return append(defaultWrapper(this, next), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newStream(s, wrapper, "FindFirst").terminate()
	return result, !none
}
