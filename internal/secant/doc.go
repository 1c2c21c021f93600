// Package secant finds roots of scalar functions with the secant method.
//
// The package exposes a small, immutable solver:
//
//   - [Solver]: holds tolerance, step and iteration cap, runs [Solver.Solve]
//   - [Builder]: fluent construction with documented defaults
//   - [Output]: converged approximation and the iteration it was found on
//   - [MaxIterationsError]: the only failure, returned on exhaustion
//
// # Example
//
//	solver := secant.NewBuilder[float64]().WithTolerance(1e-9).Build()
//	out, err := solver.Solve(1.0, func(x float64) float64 { return math.Cos(x) - x })
//	if err != nil {
//	    // errors.Is(err, secant.ErrMaxIterations)
//	}
//
// # Plateaus
//
// When two consecutive samples have bit-identical function values the slope
// is undefined. Solve treats this as convergence and returns the midpoint of
// the two samples instead of failing.
//
// # Thread Safety
//
// Solver values are never mutated by Solve and may be shared between
// goroutines. Observers passed to [Solver.SolveObserved] are per call.
package secant
