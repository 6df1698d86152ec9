package home

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
	"github.com/abhisek/kartuli/internal/router"
	"github.com/abhisek/kartuli/internal/screens/dashboard"
	"github.com/abhisek/kartuli/internal/screens/lesson"
	"github.com/abhisek/kartuli/internal/store"
)

func newHome(t *testing.T) (*HomeScreen, store.KV) {
	t.Helper()
	kv := store.NewMemoryKV()
	return New(Options{
		Catalog:  catalog.Default(),
		Progress: progress.NewStore(kv, zap.NewNop()),
		Hints:    progress.NewHints(kv, zap.NewNop()),
	}), kv
}

func press(h *HomeScreen, code rune) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func TestTabsCycleThroughTypes(t *testing.T) {
	h, _ := newHome(t)
	assert.Equal(t, catalog.TypeAlphabet, h.Type())
	assert.Len(t, h.menu.Items, 3)

	press(h, tea.KeyLeft)
	assert.Equal(t, h.types[len(h.types)-1], h.Type())

	press(h, tea.KeyRight)
	press(h, tea.KeyRight)
	assert.Equal(t, h.types[1], h.Type())
	assert.Len(t, h.menu.Items, catalog.Default().Count(h.Type()))
}

func TestEnterOpensLesson(t *testing.T) {
	h, _ := newHome(t)
	press(h, tea.KeyDown)

	cmd := press(h, tea.KeyEnter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)

	s, ok := msg.Screen.(*lesson.LessonScreen)
	require.True(t, ok)
	assert.Equal(t, "alphabet-intermediate", s.Controller().Lesson().ID)
}

func TestProgressKeyOpensDashboard(t *testing.T) {
	h, _ := newHome(t)
	cmd := press(h, 'p')
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &dashboard.DashboardScreen{}, msg.Screen)
}

func TestBadgesRefreshOnResume(t *testing.T) {
	h, kv := newHome(t)
	assert.Empty(t, h.menu.Items[0].Badge)

	ps := progress.NewStore(kv, zap.NewNop())
	require.NoError(t, ps.Upsert(context.Background(), progress.Completion("alphabet-basics", 80, time.Now())))

	h.Resume()
	assert.Equal(t, "✓ 80%", h.menu.Items[0].Badge)
	assert.Equal(t, "1/22 lessons · 5%", h.Status())
}

func TestHintDismissalPersists(t *testing.T) {
	h, kv := newHome(t)
	require.True(t, h.showHint)
	assert.Contains(t, h.View(100, 40), "press x to hide this tip")

	press(h, 'x')
	assert.False(t, h.showHint)
	assert.NotContains(t, h.View(100, 40), "press x to hide this tip")

	again := New(Options{
		Catalog: catalog.Default(),
		Hints:   progress.NewHints(kv, zap.NewNop()),
	})
	assert.False(t, again.showHint)
}

func TestLessonCompletionRecordedThroughHome(t *testing.T) {
	h, _ := newHome(t)
	press(h, tea.KeyLeft)
	require.Equal(t, catalog.TypeFlashcards, h.Type())

	msg := press(h, tea.KeyEnter)().(router.PushScreenMsg)
	ls := msg.Screen.(*lesson.LessonScreen)
	for range ls.Controller().View().Total {
		ls.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}

	h.Resume()
	assert.Equal(t, "✓ 100%", h.menu.Items[0].Badge)
}

func TestQuitKey(t *testing.T) {
	h, _ := newHome(t)
	cmd := press(h, 'q')
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNumberKeysSelectTab(t *testing.T) {
	h, _ := newHome(t)
	press(h, '4')
	assert.Equal(t, catalog.TypeGrammar, h.Type())

	press(h, '9')
	assert.Equal(t, catalog.TypeGrammar, h.Type(), "out of range is ignored")
}
