package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(key(tea.KeyUp))
	assert.Equal(t, 1, m.Selected)
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd { ran = true; return nil }}})
	m.Update(key(tea.KeyEnter))
	assert.True(t, ran)
}

func TestMenuViewShowsBadge(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Basics", Badge: "✓ 100"}})
	assert.Contains(t, m.View(), "✓ 100")
}

func TestMultiChoiceNumberKeyPicks(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})
	mc, cmd := mc.Update(key('3'))
	require.NotNil(t, cmd)

	msg, ok := cmd().(ChoiceMsg)
	require.True(t, ok)
	assert.Equal(t, 2, msg.Index)
	assert.Equal(t, "c", msg.Option)
	assert.Equal(t, 2, mc.Selected)
}

func TestMultiChoiceOutOfRangeDigitIgnored(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b"})
	_, cmd := mc.Update(key('4'))
	assert.Nil(t, cmd)
}

func TestMultiChoiceRevealIgnoresInput(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"})
	mc.Reveal("a", "b")
	assert.True(t, mc.Revealed())

	_, cmd := mc.Update(key('1'))
	assert.Nil(t, cmd)

	view := mc.View()
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "✗")
}

func TestConfirm(t *testing.T) {
	c := NewConfirm("clear", "Clear all progress?")
	_, cmd := c.Update(key('y'))
	assert.Nil(t, cmd, "inactive prompt ignores keys")

	c.Ask()
	assert.True(t, c.Active())
	assert.Contains(t, c.View(), "Clear all progress?")

	c, cmd = c.Update(key('x'))
	assert.Nil(t, cmd)
	assert.True(t, c.Active())

	c, cmd = c.Update(key('n'))
	require.NotNil(t, cmd)
	assert.Equal(t, ConfirmedMsg{ID: "clear", Yes: false}, cmd())
	assert.False(t, c.Active())

	c.Ask()
	_, cmd = c.Update(key('y'))
	require.NotNil(t, cmd)
	assert.Equal(t, ConfirmedMsg{ID: "clear", Yes: true}, cmd())
}

func TestProgressBarClamps(t *testing.T) {
	assert.Equal(t, 100, NewProgressBar("", 140, true, 30).Percent)
	assert.Equal(t, 0, NewProgressBar("", -5, true, 30).Percent)
	assert.Contains(t, NewProgressBar("Grammar", 50, true, 40).View(), "50%")
}

func TestTextInputSubmit(t *testing.T) {
	ti := NewTextInput("type here", 0)
	ti.Model.SetValue("kali")

	ti, cmd := ti.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, SubmitMsg{Value: "kali"}, cmd())

	ti.Submit(true)
	_, cmd = ti.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)

	ti.Reset()
	assert.Empty(t, ti.Value())
}

func TestContentWidthBounds(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 64, ContentWidth(200))
	assert.Equal(t, 54, ContentWidth(60))
}
