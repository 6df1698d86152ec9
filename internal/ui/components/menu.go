package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kartuli/internal/ui/theme"
)

// MenuItem represents a single entry in a vertical menu. Badge is rendered
// to the right of the label, e.g. a completion mark.
type MenuItem struct {
	Label    string
	Detail   string
	Badge    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "    "
		switch {
		case item.Disabled:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
			prefix = "  ▸ "
		}

		line := style.Render(prefix + item.Label)
		if item.Badge != "" {
			line += " " + theme.Badge.Render(item.Badge)
		}
		b.WriteString(line + "\n")
		if item.Detail != "" && i == m.Selected {
			b.WriteString(theme.Hint.Render("      "+item.Detail) + "\n")
		}
	}
	return b.String()
}
