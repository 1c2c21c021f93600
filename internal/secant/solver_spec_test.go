package secant_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rootfind/internal/secant"
)

var _ = Describe("Solver", func() {
	var solver secant.Solver[float64]

	BeforeEach(func() {
		solver = secant.Default[float64]()
	})

	Context("with a smooth function", func() {
		It("finds the double root of x^2", func() {
			out, err := solver.Solve(1.0, func(x float64) float64 { return x * x })
			Expect(err).NotTo(HaveOccurred())
			Expect(out.X).To(BeNumerically("~", 0.0, 1e-6))
		})

		It("is at least as accurate with a tighter tolerance", func() {
			tight := secant.NewBuilder[float64]().WithTolerance(1e-9).Build()
			out, err := tight.Solve(1.0, func(x float64) float64 { return x * x })
			Expect(err).NotTo(HaveOccurred())
			Expect(out.X).To(BeNumerically("~", 0.0, 1e-8))
		})

		It("solves cos(x) = x", func() {
			out, err := solver.Solve(1.0, func(x float64) float64 { return math.Cos(x) - x })
			Expect(err).NotTo(HaveOccurred())
			Expect(out.X).To(BeNumerically("~", 0.739085, 1e-6))
			Expect(out.Iter).To(BeNumerically("<", solver.MaxIterations()))
		})
	})

	Context("with a constant function", func() {
		It("returns the bootstrap midpoint on iteration 0", func() {
			out, err := solver.Solve(1.0, func(float64) float64 { return 42 })
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Iter).To(Equal(0))

			x0, step := 1.0, solver.Step()
			x1 := (1+step)*x0 + step
			Expect(out.X).To(Equal(0.5 * (x1 + x0)))
		})
	})

	Context("when the iteration cap is exhausted", func() {
		It("reports the configured limit", func() {
			capped := secant.NewBuilder[float64]().WithMaxIterations(1).Build()
			_, err := capped.Solve(1.0, func(x float64) float64 { return x * x })

			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, secant.ErrMaxIterations)).To(BeTrue())
			Expect(err).To(MatchError("Maximal iteration (1) reached"))

			var maxErr *secant.MaxIterationsError
			Expect(errors.As(err, &maxErr)).To(BeTrue())
			Expect(maxErr.Limit).To(Equal(1))
		})

		It("fails immediately with a zero cap", func() {
			calls := 0
			capped := secant.NewBuilder[float64]().WithMaxIterations(0).Build()
			_, err := capped.Solve(0.0, func(x float64) float64 {
				calls++
				return x - 1
			})

			Expect(err).To(MatchError("Maximal iteration (0) reached"))
			Expect(calls).To(Equal(2))
		})
	})

	Context("when observed", func() {
		It("records one iteration per loop pass", func() {
			var trace secant.Trace[float64]
			out, err := solver.SolveObserved(1.0, func(x float64) float64 { return x*x - 2 }, &trace)

			Expect(err).NotTo(HaveOccurred())
			Expect(trace.Iterations).To(HaveLen(out.Iter + 1))

			last, ok := trace.Last()
			Expect(ok).To(BeTrue())
			Expect(last.X).To(Equal(out.X))
			Expect(last.Flat).To(BeFalse())
		})
	})
})

var _ = Describe("Builder", func() {
	It("produces identical solvers regardless of call order", func() {
		a := secant.NewBuilder[float64]().WithStep(1e-3).WithMaxIterations(20).Build()
		b := secant.NewBuilder[float64]().WithMaxIterations(20).WithStep(1e-3).Build()
		Expect(a).To(Equal(b))
	})

	It("falls back to the documented defaults", func() {
		s := secant.NewBuilder[float64]().Build()
		Expect(s.Tolerance()).To(Equal(1.48e-8))
		Expect(s.Step()).To(Equal(1.0e-4))
		Expect(s.MaxIterations()).To(Equal(50))
	})
})
