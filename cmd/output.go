package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/itsmostafa/tocgen/internal/toc"
)

var (
	// errorStyle for the error label
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// dimStyle for labels and hints
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for rebuild indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// titleStyle for values worth noticing
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))
)

// printError writes err with a hint for the input errors users hit most.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("Error:"), err)

	var hint string
	switch {
	case errors.Is(err, toc.ErrMissingField):
		hint = `expected a JSON object like {"pages": [{"markdown": "...", "page_index": 0}]}`
	case errors.Is(err, toc.ErrMalformedInput):
		hint = "the input must be a complete UTF-8 JSON document"
	}
	if hint != "" {
		fmt.Fprintln(w, dimStyle.Render("hint: "+hint))
	}
}

// printStatus writes a labelled status line
func printStatus(w io.Writer, label, msg string) {
	fmt.Fprintf(w, "%s %s\n", dimStyle.Render(label), msg)
}

// printRebuilt writes the watch-mode rebuild indicator
func printRebuilt(w io.Writer, path string, headings int) {
	indicator := successStyle.Render("✓")
	fmt.Fprintf(w, "%s %s %s\n", indicator, titleStyle.Render(path), dimStyle.Render(fmt.Sprintf("(%d headings)", headings)))
}
