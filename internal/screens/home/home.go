package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/progress"
	"github.com/abhisek/kartuli/internal/router"
	"github.com/abhisek/kartuli/internal/screen"
	"github.com/abhisek/kartuli/internal/screens/dashboard"
	"github.com/abhisek/kartuli/internal/screens/lesson"
	"github.com/abhisek/kartuli/internal/session"
	"github.com/abhisek/kartuli/internal/ui/components"
	"github.com/abhisek/kartuli/internal/ui/layout"
	"github.com/abhisek/kartuli/internal/ui/theme"
)

// Options wires the home screen to the catalog and persisted state.
type Options struct {
	Catalog  *catalog.Catalog
	Progress *progress.Store
	Hints    *progress.Hints
	Session  session.Options
	Logger   *zap.Logger
}

// HomeScreen lists lessons of one type at a time with completion badges.
type HomeScreen struct {
	opts     Options
	log      *zap.Logger
	types    []catalog.Type
	tab      int
	menu     components.Menu
	done     map[string]progress.Record
	summary  progress.Summary
	showHint bool
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.Resumer         = (*HomeScreen)(nil)
	_ screen.StatusProvider  = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a HomeScreen. Progress and hint state are read immediately.
func New(opts Options) *HomeScreen {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Session.Catalog == nil {
		opts.Session.Catalog = opts.Catalog
	}
	if opts.Session.Recorder == nil && opts.Progress != nil {
		opts.Session.Recorder = opts.Progress
	}
	if opts.Session.Logger == nil {
		opts.Session.Logger = log
	}

	h := &HomeScreen{
		opts: opts,
		log:  log.Named("home"),
	}
	h.types = opts.Catalog.Types()
	if opts.Hints != nil {
		h.showHint = !opts.Hints.Dismissed(context.Background())
	}
	h.reload()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume refreshes badges after a lesson or the dashboard is closed.
func (h *HomeScreen) Resume() tea.Cmd {
	h.reload()
	return nil
}

func (h *HomeScreen) reload() {
	var records []progress.Record
	if h.opts.Progress != nil {
		var err error
		records, err = h.opts.Progress.All(context.Background())
		if err != nil {
			h.log.Error("load progress", zap.Error(err))
		}
	}

	h.done = make(map[string]progress.Record, len(records))
	for _, r := range records {
		if r.Completed {
			h.done[r.LessonID] = r
		}
	}
	h.summary = progress.Summarize(records, h.opts.Catalog)
	h.rebuildMenu()
}

// Type returns the lesson type of the active tab.
func (h *HomeScreen) Type() catalog.Type {
	if len(h.types) == 0 {
		return ""
	}
	return h.types[h.tab]
}

func (h *HomeScreen) rebuildMenu() {
	selected := h.menu.Selected

	lessons := h.opts.Catalog.ByType(h.Type())
	items := make([]components.MenuItem, len(lessons))
	for i, l := range lessons {
		items[i] = components.MenuItem{
			Label:  l.Title,
			Detail: l.Description,
			Badge:  h.badge(l.ID),
			Action: h.open(l),
		}
	}

	h.menu = components.NewMenu(items)
	if selected < len(items) {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) badge(id string) string {
	r, ok := h.done[id]
	if !ok {
		return ""
	}
	if score, ok := r.ScoreValue(); ok {
		return fmt.Sprintf("✓ %d%%", score)
	}
	return "✓"
}

func (h *HomeScreen) open(l catalog.Lesson) func() tea.Cmd {
	return func() tea.Cmd {
		h.log.Debug("opening lesson", zap.String("lesson", l.ID))
		s := lesson.New(l, h.opts.Session)
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
}

func (h *HomeScreen) switchTab(delta int) {
	if len(h.types) == 0 {
		return
	}
	h.tab = (h.tab + delta + len(h.types)) % len(h.types)
	h.menu.Selected = 0
	h.rebuildMenu()
}

func (h *HomeScreen) selectTab(i int) {
	if i < 0 || i >= len(h.types) || i == h.tab {
		return
	}
	h.tab = i
	h.menu.Selected = 0
	h.rebuildMenu()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "right", "l", "tab":
			h.switchTab(1)
			return h, nil
		case "left", "h", "shift+tab":
			h.switchTab(-1)
			return h, nil
		case "p":
			d := dashboard.New(h.opts.Catalog, h.opts.Progress, h.log)
			return h, func() tea.Msg { return router.PushScreenMsg{Screen: d} }
		case "x":
			h.dismissHint()
			return h, nil
		case "q":
			return h, tea.Quit
		default:
			if k := kmsg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
				h.selectTab(int(k[0] - '1'))
				return h, nil
			}
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) dismissHint() {
	if !h.showHint {
		return
	}
	h.showHint = false
	if h.opts.Hints == nil {
		return
	}
	if err := h.opts.Hints.Dismiss(context.Background()); err != nil {
		h.log.Error("dismiss hint", zap.Error(err))
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	if h.showHint {
		sections = append(sections, components.Card(
			theme.Hint.Render("Tip: ←/→ switch lesson types · ↑/↓ pick a lesson · p shows your progress")+
				"\n"+theme.Hint.Render("press x to hide this tip"), cw))
	}

	sections = append(sections, h.renderTabs(), "")

	group := h.opts.Catalog.ByType(h.Type())
	completed := 0
	for _, l := range group {
		if _, ok := h.done[l.ID]; ok {
			completed++
		}
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("%d/%d done", completed, len(group)),
		progress.Percent(completed, len(group)), true, cw)
	sections = append(sections, bar.View(), "", components.Card(h.menu.View(), cw))

	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func (h *HomeScreen) renderTabs() string {
	tabs := make([]string, len(h.types))
	for i, t := range h.types {
		if i == h.tab {
			tabs[i] = theme.ActiveTab.Render(t.DisplayName())
		} else {
			tabs[i] = theme.Tab.Render(t.DisplayName())
		}
	}
	return strings.Join(tabs, " ")
}

func (h *HomeScreen) Title() string {
	return "Lessons"
}

// Status shows overall completion in the header.
func (h *HomeScreen) Status() string {
	o := h.summary.Overall
	return fmt.Sprintf("%d/%d lessons · %d%%", o.Completed, o.Total, o.Percent)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→/1-5", Description: "Type"},
		{Key: "↑↓", Description: "Lesson"},
		{Key: "Enter", Description: "Open"},
		{Key: "p", Description: "Progress"},
	}
	if h.showHint {
		hints = append(hints, layout.KeyHint{Key: "x", Description: "Hide tip"})
	}
	return append(hints, layout.KeyHint{Key: "q", Description: "Quit"})
}
