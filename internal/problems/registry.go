package problems

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrUnknownProblem = errors.New("problems: unknown problem")

// Problem is a named scalar function with a sensible starting point. Root is
// NaN when no closed form is known or no real root exists.
type Problem struct {
	Name        string
	Description string
	Func        func(x float64) float64
	Guess       float64
	Root        float64
}

func (p Problem) HasRoot() bool { return !math.IsNaN(p.Root) }

// Func32 evaluates the problem in single precision.
func (p Problem) Func32() func(x float32) float32 {
	return func(x float32) float32 {
		return float32(p.Func(float64(x)))
	}
}

type Registry struct {
	problems map[string]func() Problem
}

func NewRegistry() *Registry {
	r := &Registry{problems: make(map[string]func() Problem)}

	r.problems["square"] = func() Problem {
		return Problem{
			Name: "square", Description: "x^2 (double root at 0)",
			Func:  func(x float64) float64 { return x * x },
			Guess: 1.0, Root: 0,
		}
	}
	r.problems["sqrt2"] = func() Problem {
		return Problem{
			Name: "sqrt2", Description: "x^2 - 2",
			Func:  func(x float64) float64 { return x*x - 2 },
			Guess: 1.0, Root: math.Sqrt2,
		}
	}
	r.problems["cos_minus_x"] = func() Problem {
		return Problem{
			Name: "cos_minus_x", Description: "cos(x) - x (Dottie number)",
			Func:  func(x float64) float64 { return math.Cos(x) - x },
			Guess: 1.0, Root: 0.7390851332151607,
		}
	}
	r.problems["cubic"] = func() Problem {
		return Problem{
			Name: "cubic", Description: "x^3 - 2x - 5 (Wallis)",
			Func:  func(x float64) float64 { return x*x*x - 2*x - 5 },
			Guess: 2.0, Root: 2.0945514815423265,
		}
	}
	r.problems["exp_minus_two"] = func() Problem {
		return Problem{
			Name: "exp_minus_two", Description: "e^x - 2",
			Func:  func(x float64) float64 { return math.Exp(x) - 2 },
			Guess: 0.0, Root: math.Ln2,
		}
	}
	r.problems["constant"] = func() Problem {
		return Problem{
			Name: "constant", Description: "f(x) = 3 (plateau everywhere)",
			Func:  func(float64) float64 { return 3 },
			Guess: 1.0, Root: math.NaN(),
		}
	}
	r.problems["no_root"] = func() Problem {
		return Problem{
			Name: "no_root", Description: "x^2 + 1 (no real root)",
			Func:  func(x float64) float64 { return x*x + 1 },
			Guess: 1.0, Root: math.NaN(),
		}
	}

	return r
}

func (r *Registry) Get(name string) (Problem, error) {
	fn, ok := r.problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %s", ErrUnknownProblem, name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
