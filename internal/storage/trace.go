package storage

import "github.com/san-kum/rootfind/internal/secant"

// WidenTrace converts a trace of any precision to float64 for storage.
func WidenTrace[T secant.Float](t *secant.Trace[T]) *secant.Trace[float64] {
	if t == nil {
		return nil
	}
	out := &secant.Trace[float64]{Iterations: make([]secant.Iteration[float64], 0, len(t.Iterations))}
	for _, it := range t.Iterations {
		out.OnIteration(secant.Iteration[float64]{
			Iter: it.Iter,
			X0:   float64(it.X0),
			Y0:   float64(it.Y0),
			X1:   float64(it.X1),
			Y1:   float64(it.Y1),
			Dx:   float64(it.Dx),
			X:    float64(it.X),
			Flat: it.Flat,
		})
	}
	return out
}
