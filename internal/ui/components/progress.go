package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kartuli/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar for a whole percentage.
type ProgressBar struct {
	Label       string
	Percent     int
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar. Percent is clamped to 0..100.
func NewProgressBar(label string, percent int, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     min(max(percent, 0), 100),
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := max(p.Width-lipgloss.Width(result)-percentWidth, 4)
	filled := min(max(barWidth*p.Percent/100, 0), barWidth)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", p.Percent))
	}

	return result
}
