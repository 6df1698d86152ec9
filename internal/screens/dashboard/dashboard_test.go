package dashboard

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/progress"
	"github.com/abhisek/kartuli/internal/store"
)

func seeded(t *testing.T, records ...progress.Record) *progress.Store {
	t.Helper()
	ps := progress.NewStore(store.NewMemoryKV(), zap.NewNop())
	for _, r := range records {
		require.NoError(t, ps.Upsert(context.Background(), r))
	}
	return ps
}

func feed(d *DashboardScreen, code rune) {
	_, cmd := d.Update(tea.KeyPressMsg{Code: code})
	if cmd != nil {
		d.Update(cmd())
	}
}

func TestSummaryFromStore(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ps := seeded(t,
		progress.Completion("alphabet-basics", 100, at),
		progress.Completion("grammar-cases", 60, at.Add(time.Hour)),
	)

	d := New(catalog.Default(), ps, nil)
	s := d.Summary()

	assert.Equal(t, 2, s.Overall.Completed)
	assert.Equal(t, 80, s.AverageScore)
	require.Len(t, s.Recent, 2)
	assert.Equal(t, "grammar-cases", s.Recent[0].LessonID)

	view := d.View(100, 40)
	assert.Contains(t, view, "Recently completed")
	assert.Contains(t, view, "Average score 80%")
}

func TestEmptyProgress(t *testing.T) {
	d := New(catalog.Default(), seeded(t), nil)
	assert.Contains(t, d.View(100, 40), "No lessons completed yet.")

	feed(d, 'c')
	assert.False(t, d.confirm.Active(), "nothing to clear")
}

func TestClearNeedsConfirmation(t *testing.T) {
	ps := seeded(t, progress.Completion("phrases-food", 90, time.Now()))
	d := New(catalog.Default(), ps, nil)

	feed(d, 'c')
	require.True(t, d.confirm.Active())
	assert.Contains(t, d.View(100, 40), "Clear all progress?")

	feed(d, 'n')
	assert.Equal(t, 1, d.Summary().Overall.Completed)

	feed(d, 'c')
	feed(d, 'y')
	assert.Zero(t, d.Summary().Overall.Completed)

	records, err := ps.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
