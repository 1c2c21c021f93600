package report

import (
	"errors"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rootfind/internal/secant"
)

var ErrEmptyTrace = errors.New("report: nothing to plot")

const (
	plotHeight = 12
	plotWidth  = 70
)

// StepSizes returns log10|dx| for every non-plateau iteration with a finite,
// non-zero step.
func StepSizes(trace *secant.Trace[float64]) []float64 {
	if trace == nil {
		return nil
	}
	out := make([]float64, 0, trace.Len())
	for _, it := range trace.Iterations {
		if it.Flat {
			continue
		}
		v := math.Log10(math.Abs(it.Dx))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func PlotTrace(trace *secant.Trace[float64], caption string) (string, error) {
	return plot(StepSizes(trace), caption)
}

func PlotIterates(trace *secant.Trace[float64], caption string) (string, error) {
	if trace == nil {
		return "", ErrEmptyTrace
	}
	data := make([]float64, 0, trace.Len())
	for _, it := range trace.Iterations {
		x := it.X
		if it.Flat {
			x = 0.5 * (it.X0 + it.X1)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		data = append(data, x)
	}
	return plot(data, caption)
}

func plot(data []float64, caption string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyTrace
	}
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	), nil
}
