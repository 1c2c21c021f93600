package secant

import (
	"math"
	"testing"
)

func BenchmarkSolve_CosMinusX(b *testing.B) {
	s := Default[float64]()
	f := func(x float64) float64 { return math.Cos(x) - x }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Solve(1.0, f)
	}
}

func BenchmarkSolve_Square(b *testing.B) {
	s := Default[float64]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Solve(1.0, square)
	}
}

func BenchmarkSolve_Float32(b *testing.B) {
	s := NewBuilder[float32]().WithTolerance(1e-5).Build()
	f := func(x float32) float32 { return x*x - 2 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Solve(1.0, f)
	}
}

func BenchmarkSolveObserved(b *testing.B) {
	s := Default[float64]()
	f := func(x float64) float64 { return math.Cos(x) - x }
	var trace Trace[float64]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trace.Reset()
		_, _ = s.SolveObserved(1.0, f, &trace)
	}
}
