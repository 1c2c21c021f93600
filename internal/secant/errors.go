package secant

import (
	"errors"
	"fmt"
)

// ErrMaxIterations matches every *MaxIterationsError via errors.Is.
var ErrMaxIterations = errors.New("secant: maximal iteration reached")

// MaxIterationsError reports that the iteration cap was exhausted without
// satisfying the convergence test.
type MaxIterationsError struct {
	Limit int
}

func (e *MaxIterationsError) Error() string {
	return fmt.Sprintf("Maximal iteration (%d) reached", e.Limit)
}

func (e *MaxIterationsError) Is(target error) bool {
	return target == ErrMaxIterations
}
