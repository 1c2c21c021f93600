package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rootfind/internal/storage"
)

// Summary renders a run as a bordered block.
func Summary(meta storage.RunMetadata) string {
	var status string
	if meta.Converged {
		status = StatusConverged.Render("CONVERGED")
	} else {
		status = StatusFailed.Render("FAILED")
	}

	title := Title.Render(meta.Problem)
	if meta.ID != "" {
		title += " " + Subtle.Render(meta.ID)
	}

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", status),
		"",
	}

	if meta.Converged {
		rows = append(rows,
			row("x", fmt.Sprintf("%.12g", meta.X)),
			row("iteration", fmt.Sprintf("%d", meta.Iter)),
		)
	} else if meta.Error != "" {
		rows = append(rows, row("error", meta.Error))
	}

	rows = append(rows,
		row("evaluations", fmt.Sprintf("%d", meta.Evaluations)),
		row("initial guess", fmt.Sprintf("%g", meta.InitialGuess)),
		row("tolerance", fmt.Sprintf("%g", meta.Tolerance)),
		row("step", fmt.Sprintf("%g", meta.Step)),
		row("max iterations", fmt.Sprintf("%d", meta.MaxIterations)),
		row("precision", fmt.Sprintf("float%d", meta.Precision)),
	)

	return Panel.Render(strings.Join(rows, "\n"))
}

func row(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value)
}
