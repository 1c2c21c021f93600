package secant

// Builder accumulates optional solver parameters. The zero value is ready to
// use; every method returns an updated copy so builders can be chained and
// shared without aliasing.
//
// Values are stored verbatim. A negative tolerance or a zero iteration cap is
// accepted here and only shows up when Solve runs.
type Builder[T Float] struct {
	tolerance     *T
	step          *T
	maxIterations *int
}

func NewBuilder[T Float]() Builder[T] {
	return Builder[T]{}
}

func (b Builder[T]) WithTolerance(tol T) Builder[T] {
	b.tolerance = &tol
	return b
}

func (b Builder[T]) WithStep(step T) Builder[T] {
	b.step = &step
	return b
}

func (b Builder[T]) WithMaxIterations(n int) Builder[T] {
	b.maxIterations = &n
	return b
}

// Build returns a Solver, filling unset fields with the package defaults.
func (b Builder[T]) Build() Solver[T] {
	s := Default[T]()
	if b.tolerance != nil {
		s.tolerance = *b.tolerance
	}
	if b.step != nil {
		s.step = *b.step
	}
	if b.maxIterations != nil {
		s.maxIterations = *b.maxIterations
	}
	return s
}
