package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kartuli/internal/ui/theme"
)

// ConfirmedMsg is emitted when the user answers a Confirm prompt.
type ConfirmedMsg struct {
	ID  string
	Yes bool
}

// Confirm is a yes/no prompt. It is inactive until Ask is called.
type Confirm struct {
	ID       string
	Question string
	active   bool
}

// NewConfirm creates an inactive prompt.
func NewConfirm(id, question string) Confirm {
	return Confirm{ID: id, Question: question}
}

// Ask activates the prompt.
func (c *Confirm) Ask() { c.active = true }

// Active reports whether the prompt is waiting for an answer.
func (c Confirm) Active() bool { return c.active }

// Update resolves the prompt on y/enter or n/esc.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	if !c.active {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	var yes bool
	switch kmsg.String() {
	case "y", "Y", "enter":
		yes = true
	case "n", "N", "esc":
	default:
		return c, nil
	}

	c.active = false
	id := c.ID
	return c, func() tea.Msg { return ConfirmedMsg{ID: id, Yes: yes} }
}

// View renders the prompt, or nothing when inactive.
func (c Confirm) View() string {
	if !c.active {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(c.Question) +
		"  " + theme.Hint.Render("[y/N]")
}
