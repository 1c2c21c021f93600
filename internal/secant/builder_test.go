package secant

import (
	"math"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default[float64]()

	if s.Tolerance() != 1.48e-8 {
		t.Errorf("tolerance = %g, want 1.48e-8", s.Tolerance())
	}
	if s.Step() != 1.0e-4 {
		t.Errorf("step = %g, want 1e-4", s.Step())
	}
	if s.MaxIterations() != 50 {
		t.Errorf("max iterations = %d, want 50", s.MaxIterations())
	}
}

func TestBuilder_EmptyMatchesDefault(t *testing.T) {
	if NewBuilder[float64]().Build() != Default[float64]() {
		t.Error("empty builder should build the default solver")
	}
	if NewBuilder[float32]().Build() != Default[float32]() {
		t.Error("empty float32 builder should build the default solver")
	}

	var zero Builder[float64]
	if zero.Build() != Default[float64]() {
		t.Error("zero-value builder should build the default solver")
	}
}

func TestBuilder_Overrides(t *testing.T) {
	s := NewBuilder[float64]().
		WithTolerance(1e-12).
		WithStep(0.01).
		WithMaxIterations(200).
		Build()

	if s.Tolerance() != 1e-12 {
		t.Errorf("tolerance = %g", s.Tolerance())
	}
	if s.Step() != 0.01 {
		t.Errorf("step = %g", s.Step())
	}
	if s.MaxIterations() != 200 {
		t.Errorf("max iterations = %d", s.MaxIterations())
	}
}

func TestBuilder_PartialOverride(t *testing.T) {
	s := NewBuilder[float64]().WithStep(0.5).Build()

	if s.Step() != 0.5 {
		t.Errorf("step = %g, want 0.5", s.Step())
	}
	if s.Tolerance() != DefaultTolerance {
		t.Errorf("tolerance = %g, want default", s.Tolerance())
	}
	if s.MaxIterations() != DefaultMaxIterations {
		t.Errorf("max iterations = %d, want default", s.MaxIterations())
	}
}

func TestBuilder_StoresValuesVerbatim(t *testing.T) {
	s := NewBuilder[float64]().
		WithTolerance(math.NaN()).
		WithStep(-3).
		WithMaxIterations(-1).
		Build()

	if !math.IsNaN(s.Tolerance()) {
		t.Errorf("tolerance = %g, want NaN", s.Tolerance())
	}
	if s.Step() != -3 {
		t.Errorf("step = %g, want -3", s.Step())
	}
	if s.MaxIterations() != -1 {
		t.Errorf("max iterations = %d, want -1", s.MaxIterations())
	}
}

func TestBuilder_LastCallWins(t *testing.T) {
	s := NewBuilder[float64]().WithTolerance(1).WithTolerance(2).Build()
	if s.Tolerance() != 2 {
		t.Errorf("tolerance = %g, want 2", s.Tolerance())
	}
}

func TestBuilder_CopiesDoNotAlias(t *testing.T) {
	base := NewBuilder[float64]().WithStep(1)
	derived := base.WithStep(2)

	if base.Build().Step() != 1 {
		t.Errorf("base step changed to %g", base.Build().Step())
	}
	if derived.Build().Step() != 2 {
		t.Errorf("derived step = %g, want 2", derived.Build().Step())
	}
}

func TestBuilder_OrderIndependent(t *testing.T) {
	a := NewBuilder[float64]().WithTolerance(1e-10).WithStep(1e-3).WithMaxIterations(30).Build()
	b := NewBuilder[float64]().WithMaxIterations(30).WithStep(1e-3).WithTolerance(1e-10).Build()

	if a != b {
		t.Fatalf("solvers differ: %+v vs %+v", a, b)
	}

	f := func(x float64) float64 { return math.Cos(x) - x }
	outA, errA := a.Solve(1.0, f)
	outB, errB := b.Solve(1.0, f)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if outA != outB {
		t.Errorf("outputs differ: %+v vs %+v", outA, outB)
	}
}

func TestBuilder_NegativeToleranceExhausts(t *testing.T) {
	s := NewBuilder[float64]().WithTolerance(-1).WithMaxIterations(5).Build()
	_, err := s.Solve(1.0, square)
	if err == nil {
		t.Fatal("negative tolerance can never be satisfied by |dx|")
	}
}
