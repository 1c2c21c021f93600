package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/rootfind/internal/config"
	"github.com/san-kum/rootfind/internal/problems"
	"github.com/san-kum/rootfind/internal/report"
	"github.com/san-kum/rootfind/internal/secant"
	"github.com/san-kum/rootfind/internal/storage"
)

// resolveConfig layers defaults, preset, config file and explicit flags, in
// increasing order of precedence.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	problem := ""
	if len(args) > 0 {
		problem = args[0]
	}

	if preset != "" {
		name := problem
		if name == "" {
			name = cfg.Problem
		}
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if problem != "" {
		cfg.Problem = problem
	}

	flags := cmd.Flags()
	if flags.Changed("x0") {
		cfg.InitialGuess = x0
	} else if preset == "" && configFile == "" {
		if p, err := problems.NewRegistry().Get(cfg.Problem); err == nil {
			cfg.InitialGuess = p.Guess
		}
	}
	if flags.Changed("tol") {
		cfg.Solver.Tolerance = config.Float(tol)
	}
	if flags.Changed("step") {
		cfg.Solver.Step = config.Float(step)
	}
	if flags.Changed("max-iter") {
		cfg.Solver.MaxIterations = config.Int(maxIter)
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	problem, err := problems.NewRegistry().Get(cfg.Problem)
	if err != nil {
		return err
	}

	meta, trace, solveErr := solveProblem(cfg, problem)

	fmt.Println(report.Summary(meta))

	if showTrace {
		if err := printTrace(trace); err != nil {
			return err
		}
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(meta, trace)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return solveErr
}

// solveProblem dispatches on precision and returns run metadata, the widened
// trace and the solver error, if any.
func solveProblem(cfg *config.Config, problem problems.Problem) (storage.RunMetadata, *secant.Trace[float64], error) {
	meta := storage.RunMetadata{
		Problem:      problem.Name,
		InitialGuess: cfg.InitialGuess,
		Precision:    cfg.Precision,
	}

	var (
		trace *secant.Trace[float64]
		err   error
	)

	switch cfg.Precision {
	case 32:
		solver := cfg.Builder32().Build()
		meta.Tolerance = float64(solver.Tolerance())
		meta.Step = float64(solver.Step())
		meta.MaxIterations = solver.MaxIterations()

		f := problem.Func32()
		var t32 secant.Trace[float32]
		var out secant.Output[float32]
		out, err = solver.SolveObserved(float32(cfg.InitialGuess), func(x float32) float32 {
			meta.Evaluations++
			return f(x)
		}, &t32)
		meta.X, meta.Iter = float64(out.X), out.Iter
		trace = storage.WidenTrace(&t32)
	default:
		solver := cfg.Builder().Build()
		meta.Tolerance = solver.Tolerance()
		meta.Step = solver.Step()
		meta.MaxIterations = solver.MaxIterations()

		trace = &secant.Trace[float64]{}
		var out secant.Output[float64]
		out, err = solver.SolveObserved(cfg.InitialGuess, func(x float64) float64 {
			meta.Evaluations++
			return problem.Func(x)
		}, trace)
		meta.X, meta.Iter = out.X, out.Iter
	}

	if err != nil {
		meta.Error = err.Error()
	} else {
		meta.Converged = true
	}
	return meta, trace, err
}

func printTrace(trace *secant.Trace[float64]) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ITER\tX0\tX1\tY1\tDX\tX")
	for _, it := range trace.Iterations {
		if it.Flat {
			fmt.Fprintf(w, "%d\t%.10g\t%.10g\t%.4e\tflat\t%.10g\n", it.Iter, it.X0, it.X1, it.Y1, 0.5*(it.X0+it.X1))
			continue
		}
		fmt.Fprintf(w, "%d\t%.10g\t%.10g\t%.4e\t%.4e\t%.10g\n", it.Iter, it.X0, it.X1, it.Y1, it.Dx, it.X)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if line := report.Sparkline(report.StepSizes(trace)); line != "" {
		fmt.Printf("\nlog10|dx|  %s\n", line)
	}
	return nil
}
