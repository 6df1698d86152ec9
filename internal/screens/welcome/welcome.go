package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kartuli/internal/router"
	"github.com/abhisek/kartuli/internal/screen"
	"github.com/abhisek/kartuli/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	lettersEnd   = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// The opening letters of the Mkhedruli alphabet, revealed one per tick.
var letters = []string{"ა", "ბ", "გ", "დ", "ე", "ვ", "ზ", "თ", "ი", "კ", "ლ", "მ", "ნ", "ო", "პ"}

const tagline = "ისწავლე ქართული · learn Georgian"

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned || w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	shown := min(int(w.elapsed/tickInterval), len(letters))
	if w.elapsed >= lettersEnd {
		shown = len(letters)
	}

	letterStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	sections := []string{letterStyle.Render(strings.Join(letters[:shown], " "))}

	if w.elapsed >= lettersEnd {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
		)
	}

	if w.elapsed >= totalDur {
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
