// Package report renders solver results for the terminal.
//
//   - [Summary]: styled result block for a stored or fresh run
//   - [PlotTrace]: convergence plot of log10|dx| per iteration
//   - [PlotIterates]: plot of the iterate x per iteration
//   - [Sparkline]: one-line convergence sketch
package report
