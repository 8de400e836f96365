package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SplashModel is the TUI model for the startup splash
type SplashModel struct {
	width int
	done  bool
}

type splashTimeoutMsg struct{}

func waitForTimeout() tea.Cmd {
	return tea.Tick(1500*time.Millisecond, func(t time.Time) tea.Msg {
		return splashTimeoutMsg{}
	})
}

func (m SplashModel) Init() tea.Cmd {
	return waitForTimeout()
}

func (m SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg, splashTimeoutMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SplashModel) View() string {
	if m.done {
		return ""
	}

	layout := NewLayout(m.width)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(CenterText(TitleStyle.Render("xsearch"), layout.InnerWidth))
	b.WriteString("\n")
	b.WriteString(CenterText(RenderDim("advanced search query builder"), layout.InnerWidth))
	b.WriteString("\n\n")

	return BorderStyle.
		Width(layout.InnerWidth).
		Render(b.String())
}

// ShowSplash displays the splash screen briefly; any key skips it
func ShowSplash() {
	p := tea.NewProgram(SplashModel{width: DefaultWidth}, tea.WithAltScreen())
	p.Run()

	// Clear screen before continuing
	fmt.Print("\033[2J\033[H")
}
