package align

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeTolerance is returned when a tolerance bound is negative.
	ErrNegativeTolerance = errors.New("tolerance must not be negative")

	// ErrUnknownKind is returned for an unrecognized join kind.
	ErrUnknownKind = errors.New("unknown join kind")

	// ErrUnknownDuplicates is returned for an unrecognized duplicate policy.
	ErrUnknownDuplicates = errors.New("unknown duplicate policy")
)

// ErrToleranceLength indicates a per-element tolerance whose length does not
// match the left sequence.
type ErrToleranceLength struct {
	Expected int
	Actual   int
}

func (e *ErrToleranceLength) Error() string {
	return fmt.Sprintf("tolerance length mismatch: expected %d, got %d", e.Expected, e.Actual)
}
