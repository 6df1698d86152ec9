package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/progress"
	"github.com/abhisek/kartuli/internal/screen"
	"github.com/abhisek/kartuli/internal/ui/components"
	"github.com/abhisek/kartuli/internal/ui/layout"
	"github.com/abhisek/kartuli/internal/ui/theme"
)

const (
	clearPrompt = "clear"
	recentLimit = 5
)

// DashboardScreen shows completion per lesson group and recent results.
type DashboardScreen struct {
	catalog *catalog.Catalog
	store   *progress.Store
	log     *zap.Logger
	summary progress.Summary
	confirm components.Confirm
	err     error
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a dashboard over the given progress store.
func New(c *catalog.Catalog, store *progress.Store, log *zap.Logger) *DashboardScreen {
	if log == nil {
		log = zap.NewNop()
	}
	d := &DashboardScreen{
		catalog: c,
		store:   store,
		log:     log.Named("dashboard"),
		confirm: components.NewConfirm(clearPrompt, "Clear all progress?"),
	}
	d.reload()
	return d
}

func (d *DashboardScreen) reload() {
	if d.store == nil {
		d.summary = progress.Summarize(nil, d.catalog)
		return
	}
	s, err := d.store.Summary(context.Background(), d.catalog)
	if err != nil {
		d.log.Error("load progress", zap.Error(err))
		d.err = err
		s = progress.Summarize(nil, d.catalog)
	}
	d.summary = s
}

// Summary returns the statistics currently shown.
func (d *DashboardScreen) Summary() progress.Summary {
	return d.summary
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Your Progress"
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ConfirmedMsg:
		if msg.ID == clearPrompt && msg.Yes {
			d.clear()
		}
		return d, nil

	case tea.KeyPressMsg:
		if d.confirm.Active() {
			var cmd tea.Cmd
			d.confirm, cmd = d.confirm.Update(msg)
			return d, cmd
		}
		if msg.String() == "c" && d.summary.Overall.Completed > 0 {
			d.confirm.Ask()
		}
	}
	return d, nil
}

func (d *DashboardScreen) clear() {
	if d.store == nil {
		return
	}
	if err := d.store.ClearAll(context.Background()); err != nil {
		d.log.Error("clear progress", zap.Error(err))
		d.err = err
		return
	}
	d.log.Info("progress cleared")
	d.reload()
}

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s := d.summary

	rows := []string{
		components.NewProgressBar(tallyLabel(s.Overall), s.Overall.Percent, true, cw-6).View(),
		"",
	}
	for _, g := range s.Groups {
		rows = append(rows, components.NewProgressBar(tallyLabel(g), g.Percent, true, cw-6).View())
	}

	if s.Scored > 0 {
		rows = append(rows, "", theme.Body.Render(fmt.Sprintf("Average score %d%% over %d lessons", s.AverageScore, s.Scored)))
	}

	if len(s.Recent) > 0 {
		rows = append(rows, "", theme.Subtitle.Render("Recently completed"))
		for _, r := range s.Recent[:min(len(s.Recent), recentLimit)] {
			rows = append(rows, d.renderRecent(r))
		}
	} else {
		rows = append(rows, "", theme.Hint.Render("No lessons completed yet."))
	}

	if d.err != nil {
		rows = append(rows, "", theme.Incorrect.Render("Progress could not be saved or loaded: "+d.err.Error()))
	}
	if d.confirm.Active() {
		rows = append(rows, "", d.confirm.View())
	}

	return layout.Center(components.Card(strings.Join(rows, "\n"), cw), width, height)
}

func tallyLabel(t progress.Tally) string {
	return fmt.Sprintf("%-10s %2d/%-2d", t.Label, t.Completed, t.Total)
}

func (d *DashboardScreen) renderRecent(r progress.Record) string {
	title := r.LessonID
	if l, ok := d.catalog.ByID(r.LessonID); ok {
		title = l.Title
	}
	line := theme.Body.Render(title)
	if score, ok := r.ScoreValue(); ok {
		line += "  " + theme.Badge.Render(fmt.Sprintf("%d%%", score))
	}
	if at, ok := r.CompletedTime(); ok {
		line += "  " + theme.Hint.Render(at.Local().Format(time.DateOnly))
	}
	return line
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.confirm.Active() {
		return []layout.KeyHint{
			{Key: "y", Description: "Clear"},
			{Key: "n", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "c", Description: "Clear progress"},
		{Key: "Esc", Description: "Back"},
	}
}
