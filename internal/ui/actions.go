package ui

// actions.go holds the side-effect helpers for a built query. Failures
// here are transient and never touch the criteria or the query string.

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh/spinner"

	"xsearch/internal/api"
)

// CopyQuery writes the query string to the system clipboard
func CopyQuery(queryStr string) error {
	if err := clipboard.WriteAll(queryStr); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// OpenSearch launches the browser at the search URL behind a spinner
func OpenSearch(searchURL string) error {
	var openErr error

	err := spinner.New().
		Title("Opening browser...").
		Action(func() {
			openErr = api.OpenInBrowser(searchURL)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}
	return openErr
}
