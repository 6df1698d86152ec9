package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kartuli/internal/ui/theme"
)

// ChoiceMsg is emitted when an option is picked, by number key or enter.
type ChoiceMsg struct {
	Index  int
	Option string
}

// MultiChoice renders a fixed list of options. Once Reveal is called it
// shows the correct answer and the user's pick and ignores input.
type MultiChoice struct {
	Options  []string
	Selected int
	answer   string
	chosen   string
	revealed bool
}

// NewMultiChoice creates a selector over the given options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and emits ChoiceMsg on selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.pick(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(m.Options) {
				m.Selected = i
				return m, m.pick(i)
			}
		}
	}

	return m, nil
}

func (m MultiChoice) pick(i int) tea.Cmd {
	if i < 0 || i >= len(m.Options) {
		return nil
	}
	opt := m.Options[i]
	return func() tea.Msg { return ChoiceMsg{Index: i, Option: opt} }
}

// Reveal freezes the selector and marks the answer and the user's choice.
func (m *MultiChoice) Reveal(answer, chosen string) {
	m.revealed = true
	m.answer = answer
	m.chosen = chosen
}

// Revealed reports whether feedback is being shown.
func (m MultiChoice) Revealed() bool {
	return m.revealed
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.revealed && opt == m.answer:
			style = theme.Correct
			line += "  ✓"
		case m.revealed && opt == m.chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
