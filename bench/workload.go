package bench

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrUnknownWorkload indicates a workload name that does not exist.
var ErrUnknownWorkload = errors.New("unknown workload")

// Workload selects the shape of a generated input.
type Workload int

const (
	Random Workload = iota
	Sorted
	Reversed
	FewUnique
	AllEqual
)

const fewUniqueKeys = 4

var workloadNames = map[Workload]string{
	Random:    "random",
	Sorted:    "sorted",
	Reversed:  "reversed",
	FewUnique: "few-unique",
	AllEqual:  "all-equal",
}

func (w Workload) String() string {
	if name, ok := workloadNames[w]; ok {
		return name
	}

	return fmt.Sprintf("Workload(%d)", int(w))
}

// Workloads lists every workload in declaration order.
func Workloads() []Workload {
	return []Workload{Random, Sorted, Reversed, FewUnique, AllEqual}
}

// ParseWorkload resolves a case-insensitive workload name.
func ParseWorkload(name string) (Workload, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for w, n := range workloadNames {
		if n == normalized {
			return w, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
}

// Generate builds an input of length n shaped like w.
func Generate(w Workload, n int, rng *rand.Rand) []int {
	values := make([]int, n)

	switch w {
	case Random:
		for i := range values {
			values[i] = rng.IntN(n * 4)
		}
	case Sorted:
		for i := range values {
			values[i] = i
		}
	case Reversed:
		for i := range values {
			values[i] = n - 1 - i
		}
	case FewUnique:
		for i := range values {
			values[i] = rng.IntN(fewUniqueKeys)
		}
	case AllEqual:
		for i := range values {
			values[i] = fewUniqueKeys
		}
	}

	return values
}
