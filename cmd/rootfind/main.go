package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/rootfind/internal/config"
	"github.com/san-kum/rootfind/internal/secant"
)

var (
	dataDir string
	// solve flags
	x0         float64
	tol        float64
	step       float64
	maxIter    int
	precision  int
	configFile string
	preset     string
	save       bool
	showTrace  bool
	// export flags
	exportOut string
)

// main registers the rootfind commands and exits with status 1 when a
// command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rootfind",
		Short:        "secant method root finder",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rootfind", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "find a root of a named problem",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().Float64Var(&x0, "x0", config.DefaultInitialGuess, "initial guess (overrides the problem's guess)")
	solveCmd.Flags().Float64Var(&tol, "tol", secant.DefaultTolerance, "convergence tolerance on |dx|")
	solveCmd.Flags().Float64Var(&step, "step", secant.DefaultStep, "perturbation for the second sample")
	solveCmd.Flags().IntVar(&maxIter, "max-iter", secant.DefaultMaxIterations, "iteration cap")
	solveCmd.Flags().IntVar(&precision, "precision", config.DefaultPrecision, "float precision (32 or 64)")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	solveCmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")
	solveCmd.Flags().BoolVar(&showTrace, "trace", false, "print every iteration")

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list built-in problems",
		RunE:  listProblems,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run with convergence plots",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write JSON to a file instead of stdout")

	rootCmd.AddCommand(solveCmd, problemsCmd, presetsCmd, listCmd, showCmd, exportCmd)
	return rootCmd
}
