// Package ui renders command results for the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"doctool/internal/report"
	"doctool/internal/toc"
)

var (
	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for applied changes
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for skip markers
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// FormatTocResult renders the outcome of one TOC rewrite.
func FormatTocResult(w io.Writer, path string, res toc.Result) {
	if res.Outcome == toc.Rewritten {
		entries := fmt.Sprintf("(%d entries)", res.Entries)
		fmt.Fprintf(w, "%s %s %s\n", successStyle.Render("✓"), path, dimStyle.Render(entries))
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", dimStyle.Render("-"), path, dimStyle.Render("unchanged"))
}

// FormatReportSummary renders the outcome of one report split.
func FormatReportSummary(w io.Writer, sum report.Summary) {
	for _, name := range sum.Updated {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), name)
	}
	for _, name := range sum.Skipped {
		fmt.Fprintf(w, "%s %s %s\n", warnStyle.Render("r"), name, dimStyle.Render("skipped"))
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf(
		"%d created, %d updated, %d skipped",
		len(sum.Created), len(sum.Updated), len(sum.Skipped))))
}
