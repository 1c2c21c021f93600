package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/rootfind/internal/secant"
)

func TestRegistry_Get(t *testing.T) {
	p, err := NewRegistry().Get("cos_minus_x")
	require.NoError(t, err)
	assert.Equal(t, "cos_minus_x", p.Name)
	assert.True(t, p.HasRoot(), "cos_minus_x should have a known root")
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := NewRegistry().Get("nope")
	assert.ErrorIs(t, err, ErrUnknownProblem)
	assert.Contains(t, err.Error(), "nope")
}

func TestRegistry_ListSorted(t *testing.T) {
	names := NewRegistry().List()
	require.Len(t, names, 7)
	assert.IsIncreasing(t, names)
}

func TestProblems_RootsAreRoots(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.List() {
		p, err := r.Get(name)
		require.NoError(t, err)
		if !p.HasRoot() {
			continue
		}
		assert.InDelta(t, 0, p.Func(p.Root), 1e-12, name)
	}
}

func TestProblems_SolveFromGuess(t *testing.T) {
	r := NewRegistry()
	solver := secant.Default[float64]()

	tests := []struct {
		name string
		tol  float64
	}{
		{"square", 1e-6},
		{"sqrt2", 1e-9},
		{"cos_minus_x", 1e-9},
		{"cubic", 1e-9},
		{"exp_minus_two", 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Get(tt.name)
			require.NoError(t, err)
			out, err := solver.Solve(p.Guess, p.Func)
			require.NoError(t, err)
			assert.InDelta(t, p.Root, out.X, tt.tol)
		})
	}
}

func TestProblems_Constant(t *testing.T) {
	p, err := NewRegistry().Get("constant")
	require.NoError(t, err)
	out, err := secant.Default[float64]().Solve(p.Guess, p.Func)
	require.NoError(t, err, "constant should converge on the plateau")
	assert.Equal(t, 0, out.Iter)
}

func TestProblems_NoRoot(t *testing.T) {
	p, err := NewRegistry().Get("no_root")
	require.NoError(t, err)
	assert.False(t, p.HasRoot())
}

func TestProblem_Func32(t *testing.T) {
	p, err := NewRegistry().Get("sqrt2")
	require.NoError(t, err)
	assert.Equal(t, float32(2), p.Func32()(2))
}
