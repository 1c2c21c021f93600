package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/rootfind/internal/config"
	"github.com/san-kum/rootfind/internal/problems"
	"github.com/san-kum/rootfind/internal/report"
	"github.com/san-kum/rootfind/internal/storage"
)

func listProblems(cmd *cobra.Command, args []string) error {
	registry := problems.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGUESS\tROOT\tDESCRIPTION")
	for _, name := range registry.List() {
		p, err := registry.Get(name)
		if err != nil {
			return err
		}
		root := "-"
		if p.HasRoot() {
			root = fmt.Sprintf("%.10g", p.Root)
		}
		fmt.Fprintf(w, "%s\t%g\t%s\t%s\n", p.Name, p.Guess, root, p.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for problem: %s\n", args[0])
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tTIME\tX0\tSTATUS\tX\tITER")

	for _, run := range runs {
		status := "failed"
		if run.Converged {
			status = "converged"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\t%.10g\t%d\n",
			run.ID,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.InitialGuess,
			status,
			run.X,
			run.Iter,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	fmt.Println(report.Summary(*meta))
	fmt.Println()

	graph, err := report.PlotTrace(trace, "log10|dx| per iteration")
	if err != nil && !errors.Is(err, report.ErrEmptyTrace) {
		return err
	}
	if graph != "" {
		fmt.Println(graph)
		fmt.Println()
	}

	graph, err = report.PlotIterates(trace, "x per iteration")
	if errors.Is(err, report.ErrEmptyTrace) {
		fmt.Println("no iterations recorded")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	if exportOut == "" {
		return storage.WriteJSON(os.Stdout, *meta, trace)
	}
	if err := storage.ExportJSON(exportOut, *meta, trace); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", runID, exportOut)
	return nil
}
