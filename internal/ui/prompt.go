package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Action is the user's choice on the result screen
type Action string

const (
	ActionCopy Action = "copy"
	ActionOpen Action = "open"
	ActionEdit Action = "edit"
	ActionQuit Action = "quit"
)

// PromptForAction shows the generated query and asks what to do with it
func PromptForAction(queryStr string) (Action, error) {
	description := queryStr
	if description == "" {
		description = "(empty query)"
	}

	var action Action

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("Generated query").
				Description(description).
				Options(
					huh.NewOption("Copy to clipboard", ActionCopy),
					huh.NewOption("Open in browser", ActionOpen),
					huh.NewOption("Edit criteria", ActionEdit),
					huh.NewOption("Quit", ActionQuit),
				).
				Value(&action),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return ActionQuit, nil // Treat cancel as quit
	}

	return action, nil
}

// ConfirmOpen asks before launching the browser
func ConfirmOpen(host string) (bool, error) {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Open search on %s?", host)).
				Description("This launches your default browser").
				Affirmative("Yes, open it").
				Negative("Cancel").
				Value(&confirm),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return false, nil // Default to no on cancel
	}

	return confirm, nil
}
