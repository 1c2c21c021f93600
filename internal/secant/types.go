package secant

// Float is the set of real types the solver is instantiated over.
type Float interface {
	~float32 | ~float64
}

// Func is a function of one variable whose root is sought.
type Func[T Float] func(x T) T

const (
	DefaultTolerance     = 1.48e-8
	DefaultStep          = 1.0e-4
	DefaultMaxIterations = 50
)

// Output is a converged result. Iter is the 0-based loop index on which
// convergence was detected.
type Output[T Float] struct {
	X    T
	Iter int
}

// Iteration describes one pass of the secant loop. Dx and X are zero when
// Flat is set; in that case Solve returned the midpoint of X0 and X1.
type Iteration[T Float] struct {
	Iter int
	X0   T
	Y0   T
	X1   T
	Y1   T
	Dx   T
	X    T
	Flat bool
}

// Observer receives every iteration of an observed solve.
type Observer[T Float] interface {
	OnIteration(it Iteration[T])
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc[T Float] func(it Iteration[T])

func (f ObserverFunc[T]) OnIteration(it Iteration[T]) { f(it) }

// Trace records iterations in the order they happen.
type Trace[T Float] struct {
	Iterations []Iteration[T]
}

func (t *Trace[T]) OnIteration(it Iteration[T]) {
	t.Iterations = append(t.Iterations, it)
}

func (t *Trace[T]) Len() int { return len(t.Iterations) }

// Last returns the final recorded iteration.
func (t *Trace[T]) Last() (Iteration[T], bool) {
	if len(t.Iterations) == 0 {
		return Iteration[T]{}, false
	}
	return t.Iterations[len(t.Iterations)-1], true
}

// Reset drops all recorded iterations so the trace can be reused.
func (t *Trace[T]) Reset() {
	t.Iterations = t.Iterations[:0]
}
