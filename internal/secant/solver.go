package secant

import "math"

// Solver runs the secant iteration with fixed parameters.
type Solver[T Float] struct {
	tolerance     T
	step          T
	maxIterations int
}

// Default returns a Solver with DefaultTolerance, DefaultStep and
// DefaultMaxIterations.
func Default[T Float]() Solver[T] {
	return Solver[T]{
		tolerance:     T(DefaultTolerance),
		step:          T(DefaultStep),
		maxIterations: DefaultMaxIterations,
	}
}

func (s Solver[T]) Tolerance() T       { return s.tolerance }
func (s Solver[T]) Step() T            { return s.step }
func (s Solver[T]) MaxIterations() int { return s.maxIterations }

// Solve approximates a root of f starting from x0.
//
// f is evaluated at most MaxIterations()+2 times. The only error is a
// *MaxIterationsError carrying the configured cap.
func (s Solver[T]) Solve(x0 T, f Func[T]) (Output[T], error) {
	return s.SolveObserved(x0, f, nil)
}

// SolveObserved is Solve with an observer notified once per loop pass,
// including the pass that terminates the solve. obs may be nil.
func (s Solver[T]) SolveObserved(x0 T, f Func[T], obs Observer[T]) (Output[T], error) {
	x1 := s.perturb(x0)

	y0 := f(x0)
	y1 := f(x1)

	for iter := 0; iter < s.maxIterations; iter++ {
		// exact comparison: only literal plateaus take this branch
		if y1 == y0 {
			mid := 0.5 * (x1 + x0)
			if obs != nil {
				obs.OnIteration(Iteration[T]{Iter: iter, X0: x0, Y0: y0, X1: x1, Y1: y1, Flat: true})
			}
			return Output[T]{X: mid, Iter: iter}, nil
		}

		dx := y1 * (x1 - x0) / (y1 - y0)
		x := x1 - dx

		if obs != nil {
			obs.OnIteration(Iteration[T]{Iter: iter, X0: x0, Y0: y0, X1: x1, Y1: y1, Dx: dx, X: x})
		}

		if abs(dx) < s.tolerance {
			return Output[T]{X: x, Iter: iter}, nil
		}

		x0, y0 = x1, y1
		x1 = x
		y1 = f(x1)
	}

	return Output[T]{}, &MaxIterationsError{Limit: s.maxIterations}
}

// perturb derives the second bootstrap sample, pushing away from zero on
// both sides so that x1 != x0 even for x0 == 0. The product is rounded
// before the step is added; the conversion rules out a fused multiply-add.
func (s Solver[T]) perturb(x0 T) T {
	if x0 >= 0 {
		return T((1+s.step)*x0) + s.step
	}
	return T((1+s.step)*x0) - s.step
}

func abs[T Float](v T) T {
	return T(math.Abs(float64(v)))
}
