package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/progress"
	"github.com/abhisek/kartuli/internal/router"
	"github.com/abhisek/kartuli/internal/screen"
	"github.com/abhisek/kartuli/internal/screens/home"
	"github.com/abhisek/kartuli/internal/screens/welcome"
	"github.com/abhisek/kartuli/internal/session"
	"github.com/abhisek/kartuli/internal/ui/layout"
)

// Options holds the dependencies shared by every screen.
type Options struct {
	Catalog  *catalog.Catalog
	Progress *progress.Store
	Hints    *progress.Hints
	Session  session.Options
	Logger   *zap.Logger

	// SkipWelcome starts directly on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates the root model, starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	homeFactory := func() screen.Screen {
		return home.New(home.Options{
			Catalog:  opts.Catalog,
			Progress: opts.Progress,
			Hints:    opts.Hints,
			Session:  opts.Session,
			Logger:   opts.Logger,
		})
	}

	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(first),
		log:    opts.Logger.Named("app"),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size, or nothing before the
// first WindowSizeMsg.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.log.Info("starting ui")
	if _, err := tea.NewProgram(m).Run(); err != nil {
		m.log.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
