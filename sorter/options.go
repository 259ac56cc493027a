package sorter

import "math/rand/v2"

// IntSource yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type IntSource interface {
	IntN(n int) int
}

type options struct {
	rand IntSource
}

type Option func(*options)

// WithRand makes a quicksorter draw pivot positions from src.
func WithRand(src IntSource) Option {
	return func(o *options) { o.rand = src }
}

// WithSeed makes a quicksorter's pivot choices reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}
