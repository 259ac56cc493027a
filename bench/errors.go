package bench

import (
	"errors"
	"fmt"

	"github.com/kabu1204/go-sorting/sorter"
)

var (
	// ErrOracleMismatch indicates a result that differs from the reference sort.
	ErrOracleMismatch = errors.New("result differs from reference sort")

	// ErrInvalidConfig indicates a Config that cannot be run.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")
)

// VerificationError describes a sort whose output failed a check.
type VerificationError struct {
	Algorithm sorter.Algorithm
	Workload  Workload
	Size      int
	Err       error
}

// Error implements the error interface.
func (e VerificationError) Error() string {
	return fmt.Sprintf("%s on %s/%d: %v", e.Algorithm, e.Workload, e.Size, e.Err)
}

// Unwrap returns the underlying error for errors.Is compatibility.
func (e VerificationError) Unwrap() error {
	return e.Err
}
