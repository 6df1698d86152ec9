package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kartuli/internal/ui/theme"
)

// SubmitMsg is emitted when enter is pressed in a TextInput.
type SubmitMsg struct {
	Value string
}

// TextInput wraps bubbles/textinput for typed answers.
type TextInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if limit > 0 {
		ti.CharLimit = limit
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards keystrokes to the input and emits SubmitMsg on enter.
// Input is ignored after Submit until Reset.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.submitted {
		return t, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		v := t.Model.Value()
		return t, func() tea.Msg { return SubmitMsg{Value: v} }
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and the submitted mark.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.submitted = false
	t.valid = false
}
