package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette built around the Georgian flag red with warm neutrals.
var (
	Primary   = lipgloss.Color("#E11D48") // Flag red
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#111827") // Charcoal
	BgCard    = lipgloss.Color("#1F2937") // Graphite
	Border    = lipgloss.Color("#374151") // Gray
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Georgian script is shown large and bold on cards.
	Script = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Phonetic = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Banner = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Badge = lipgloss.NewStyle().
		Foreground(Success)

	Tab = lipgloss.NewStyle().
		Foreground(TextDim).
		Padding(0, 1)

	ActiveTab = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
