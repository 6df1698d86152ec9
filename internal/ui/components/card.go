package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kartuli/internal/ui/theme"
)

// ContentWidth returns the uniform inner width shared by stacked sections
// so their borders line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Card wraps content in a rounded, centered box of the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// HighlightCard is a Card with an accent border, used for the active item.
func HighlightCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
