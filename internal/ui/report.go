package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	style := lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	fmt.Println(style.Render(message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Println(ErrorStyle.Render("Error: " + message))
}

// PrintQuery prints the generated query string
func PrintQuery(queryStr string) {
	if queryStr == "" {
		fmt.Println(DimStyle.Render("(empty query)"))
		return
	}
	fmt.Println(AccentStyle.Render(queryStr))
}

// PrintSessionSummary prints the session's telemetry counters
func PrintSessionSummary(counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	style := lipgloss.NewStyle().Foreground(ColorTextDim).Italic(true)
	summary := "Session:"
	for _, name := range names {
		summary += fmt.Sprintf(" %s=%d", name, counts[name])
	}
	fmt.Println(style.Render(summary))
}
