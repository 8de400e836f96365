package ui

// editor.go is the criteria form: one text input per search parameter,
// toggle rows for the boolean filters, and a live preview of the
// generated query re-derived on every render.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"xsearch/internal/models"
	"xsearch/internal/query"
	"xsearch/internal/telemetry"
)

const labelWidth = 16

// textFieldSpec describes one text input row
type textFieldSpec struct {
	key         string // telemetry field key
	label       string
	placeholder string
}

var textFieldSpecs = []textFieldSpec{
	{"fromUser", "From user", "username, no @"},
	{"toUser", "To user", "username, no @"},
	{"mentionsUser", "Mentions", "username, no @"},
	{"exactPhrase", "Exact phrase", "happy hour"},
	{"anyWords", "Any of words", "react vue svelte"},
	{"excludeWords", "Exclude words", "spam ads"},
	{"hashtag", "Hashtag", "no # prefix"},
	{"smartSearch", "Smart search", "cat, dog, puppy (OR-grouped)"},
	{"sinceDate", "Since date", "YYYY-MM-DD"},
	{"untilDate", "Until date", "YYYY-MM-DD"},
	{"minRetweets", "Min retweets", "10"},
	{"minLikes", "Min likes", "100"},
	{"minReplies", "Min replies", "5"},
	{"language", "Language", "en"},
}

// flagRow is one boolean filter toggle
type flagRow struct {
	key   string
	label string
	on    bool
}

// EditorModel is the full-screen criteria form
type EditorModel struct {
	inputs    []textinput.Model
	flags     []flagRow
	focus     int
	focusVal  string // focused field's value at focus time, for touch detection
	layout    Layout
	tele      *telemetry.Context
	done      bool
	cancelled bool
}

// NewEditorModel creates the form prefilled from the given criteria
func NewEditorModel(c models.Criteria, tele *telemetry.Context) EditorModel {
	layout := DefaultLayout()

	initial := []string{
		c.FromUser, c.ToUser, c.MentionsUser, c.ExactPhrase,
		c.AnyWords, c.ExcludeWords, c.Hashtag, c.SmartSearch,
		c.SinceDate, c.UntilDate, c.MinRetweets, c.MinLikes,
		c.MinReplies, c.Language,
	}

	inputs := make([]textinput.Model, len(textFieldSpecs))
	for i, spec := range textFieldSpecs {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.CharLimit = 256
		ti.Width = layout.InnerWidth - labelWidth - 6
		ti.SetValue(initial[i])
		inputs[i] = ti
	}
	inputs[0].Focus()

	flags := []flagRow{
		{"nativeRetweets", "Native retweets only", c.NativeRetweets},
		{"hasImages", "Has images", c.HasImages},
		{"hasVideos", "Has videos", c.HasVideos},
		{"hasLinks", "Has links", c.HasLinks},
		{"verified", "Verified accounts", c.Verified},
		{"isRetweet", "Retweets", c.IsRetweet},
	}

	return EditorModel{
		inputs:   inputs,
		flags:    flags,
		layout:   layout,
		tele:     tele,
		focusVal: initial[0],
	}
}

func (m EditorModel) rowCount() int {
	return len(m.inputs) + len(m.flags)
}

// Criteria rebuilds the criteria value from the current field contents
func (m EditorModel) Criteria() models.Criteria {
	val := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	return models.Criteria{
		FromUser:       val(0),
		ToUser:         val(1),
		MentionsUser:   val(2),
		ExactPhrase:    val(3),
		AnyWords:       val(4),
		ExcludeWords:   val(5),
		Hashtag:        val(6),
		SmartSearch:    val(7),
		SinceDate:      val(8),
		UntilDate:      val(9),
		MinRetweets:    val(10),
		MinLikes:       val(11),
		MinReplies:     val(12),
		Language:       val(13),
		NativeRetweets: m.flags[0].on,
		HasImages:      m.flags[1].on,
		HasVideos:      m.flags[2].on,
		HasLinks:       m.flags[3].on,
		Verified:       m.flags[4].on,
		IsRetweet:      m.flags[5].on,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// moveFocus blurs the current row, notes a field_touched event if its
// value changed while focused, and focuses the target row.
func (m *EditorModel) moveFocus(delta int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
		if m.inputs[m.focus].Value() != m.focusVal && m.tele != nil {
			m.tele.Record(telemetry.EventFieldTouched,
				map[string]string{"field": textFieldSpecs[m.focus].key})
		}
	}

	m.focus += delta
	if m.focus < 0 {
		m.focus = m.rowCount() - 1
	} else if m.focus >= m.rowCount() {
		m.focus = 0
	}

	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
		m.focusVal = m.inputs[m.focus].Value()
	}
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width)
		for i := range m.inputs {
			m.inputs[i].Width = m.layout.InnerWidth - labelWidth - 6
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			m.moveFocus(0) // flush pending field_touched
			m.done = true
			return m, tea.Quit

		case "up", "shift+tab":
			m.moveFocus(-1)
			return m, nil

		case "down", "tab":
			m.moveFocus(1)
			return m, nil

		case " ":
			if m.focus >= len(m.inputs) {
				flag := &m.flags[m.focus-len(m.inputs)]
				flag.on = !flag.on
				if m.tele != nil {
					m.tele.Record(telemetry.EventFieldTouched,
						map[string]string{"field": flag.key})
				}
				return m, nil
			}
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m EditorModel) View() string {
	var content strings.Builder
	content.WriteString(ViewHeader("Advanced Search Builder", m.layout.InnerWidth))

	for i, spec := range textFieldSpecs {
		content.WriteString(m.renderLabel(spec.label, i == m.focus))
		content.WriteString(m.inputs[i].View())
		content.WriteString("\n")
	}

	content.WriteString("\n")
	for i, flag := range m.flags {
		focused := len(m.inputs)+i == m.focus
		box := "[ ]"
		if flag.on {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, flag.label)
		if focused {
			content.WriteString(SelectedStyle.Render(line))
		} else {
			content.WriteString(NormalStyle.Render(line))
		}
		content.WriteString("\n")
	}

	// Live preview, re-derived from the current field values
	content.WriteString("\n")
	content.WriteString(strings.Repeat("─", m.layout.InnerWidth))
	content.WriteString("\n")
	if q := query.Build(m.Criteria()); q != "" {
		content.WriteString(AccentStyle.Render(q))
	} else {
		content.WriteString(RenderDim("(empty query)"))
	}

	return BuildTwoBoxView(content.String(),
		"↑/↓: field | space: toggle | enter: done | esc: cancel",
		m.layout)
}

func (m EditorModel) renderLabel(label string, focused bool) string {
	padded := fmt.Sprintf("%-*s", labelWidth, label)
	if focused {
		return AccentStyle.Render(padded)
	}
	return DimStyle.Render(padded)
}

// Done reports whether the user confirmed the form
func (m EditorModel) Done() bool { return m.done }

// Cancelled reports whether the user pressed Esc
func (m EditorModel) Cancelled() bool { return m.cancelled }

// RunEditor runs the criteria form and returns the edited criteria.
// On cancel the initial criteria is returned unchanged.
func RunEditor(initial models.Criteria, tele *telemetry.Context) (models.Criteria, bool, error) {
	p := tea.NewProgram(NewEditorModel(initial, tele), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return initial, false, fmt.Errorf("editor error: %w", err)
	}

	result := finalModel.(EditorModel)
	if result.Cancelled() {
		return initial, true, nil
	}
	return result.Criteria(), false, nil
}
