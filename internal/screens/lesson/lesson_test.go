package lesson

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/progress"
	"github.com/abhisek/kartuli/internal/router"
	"github.com/abhisek/kartuli/internal/session"
	"github.com/abhisek/kartuli/internal/ui/components"
)

type fakeRecorder struct {
	records []progress.Record
}

func (f *fakeRecorder) Upsert(_ context.Context, r progress.Record) error {
	f.records = append(f.records, r)
	return nil
}

func newScreen(t *testing.T, id string) (*LessonScreen, *fakeRecorder) {
	t.Helper()
	l, ok := catalog.Default().ByID(id)
	require.True(t, ok, "lesson %q", id)
	rec := &fakeRecorder{}
	return New(l, session.Options{
		Catalog:       catalog.Default(),
		Recorder:      rec,
		Rand:          rand.New(rand.NewPCG(7, 11)),
		FeedbackDelay: time.Millisecond,
	}), rec
}

func press(s *LessonScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

// deliver runs cmd and feeds its message back into the screen, following
// the chain until no command is left. Only this package's messages and
// component messages are fed back.
func deliver(s *LessonScreen, cmd tea.Cmd) tea.Msg {
	for cmd != nil {
		msg := cmd()
		switch msg.(type) {
		case feedbackDoneMsg, components.ChoiceMsg, components.SubmitMsg:
			_, cmd = s.Update(msg)
		default:
			return msg
		}
	}
	return nil
}

func currentRun(t *testing.T, s *LessonScreen) session.QuizInProgress {
	t.Helper()
	run, ok := s.ctrl.State().(session.QuizInProgress)
	require.True(t, ok, "expected a quiz, got %s", s.ctrl.Phase())
	return run
}

func TestBrowseToEndCompletesFlashcards(t *testing.T) {
	s, rec := newScreen(t, "flashcards-nouns-food")
	total := s.ctrl.View().Total

	press(s, tea.KeyLeft)
	assert.Equal(t, 0, s.ctrl.View().Index)

	for range total {
		press(s, tea.KeyRight)
	}

	assert.Equal(t, session.PhaseLessonCompleted, s.ctrl.Phase())
	require.Len(t, rec.records, 1)
	assert.Equal(t, "flashcards-nouns-food", rec.records[0].LessonID)
	assert.Contains(t, s.View(100, 30), "Lesson complete!")
}

func TestSpaceFlipsCard(t *testing.T) {
	s, _ := newScreen(t, "alphabet-basics")
	card := s.ctrl.View().Card

	assert.Contains(t, s.View(100, 30), "press space to reveal")
	press(s, ' ')
	assert.True(t, s.ctrl.View().Flipped)
	assert.Contains(t, s.View(100, 30), card.Phonetic)
}

func TestShowAllListsDeck(t *testing.T) {
	s, _ := newScreen(t, "phrases-greetings")
	press(s, 'a')
	v := s.ctrl.View()
	require.True(t, v.ShowAll)
	assert.Contains(t, s.View(120, 40), v.Cards[1].Answer)
}

func TestMultipleChoiceRound(t *testing.T) {
	s, rec := newScreen(t, "phrases-greetings")
	press(s, 'q')
	run := currentRun(t, s)
	n := run.Quiz.Len()

	for i := range n {
		q, ok := run.Quiz.Current()
		require.True(t, ok)
		assert.Equal(t, i, run.Quiz.Index())

		// pick the right option by its number key
		var key rune
		for j, opt := range q.Options {
			if opt == q.Answer {
				key = rune('1' + j)
			}
		}
		cmd := press(s, key)
		require.NotNil(t, cmd)

		// the ChoiceMsg locks the quiz and schedules the continuation
		_, tick := s.Update(cmd())
		require.NotNil(t, tick)
		assert.True(t, run.Quiz.Locked())
		assert.Nil(t, press(s, '1'), "input ignored while locked")

		deliver(s, tick)
	}

	assert.Equal(t, session.PhaseQuizCompleted, s.ctrl.Phase())
	assert.Equal(t, 100, s.ctrl.View().Score)
	require.Len(t, rec.records, 1)
	assert.Contains(t, s.View(100, 40), "Score: 100%")
}

func TestOptionsStableWhileAnswering(t *testing.T) {
	s, _ := newScreen(t, "phrases-food")
	press(s, 'q')
	before := append([]string(nil), s.choice.Options...)

	press(s, tea.KeyDown)
	press(s, tea.KeyUp)
	s.View(100, 30)

	assert.Equal(t, before, s.choice.Options)
}

func TestSpellingTypedAnswers(t *testing.T) {
	s, rec := newScreen(t, "spelling-bee-1")
	run := currentRun(t, s)
	require.Equal(t, 10, run.Quiz.Len())

	for range run.Quiz.Len() {
		q, _ := run.Quiz.Current()
		s.input.Model.SetValue("  " + q.Answer + " ")
		deliver(s, press(s, tea.KeyEnter))
	}

	assert.Equal(t, session.PhaseQuizCompleted, s.ctrl.Phase())
	assert.Equal(t, 100, s.ctrl.View().Score)
	require.Len(t, rec.records, 1)
	assert.Equal(t, "spelling-bee-1", rec.records[0].LessonID)
}

func TestStaleContinuationAfterRestart(t *testing.T) {
	s, _ := newScreen(t, "spelling-bee-1")
	old := currentRun(t, s)

	for range old.Quiz.Len() {
		s.input.Model.SetValue("wrong")
		deliver(s, press(s, tea.KeyEnter))
	}
	require.Equal(t, session.PhaseQuizCompleted, s.ctrl.Phase())
	assert.Equal(t, 0, s.ctrl.View().Score)

	press(s, 'r')
	fresh := currentRun(t, s)
	require.NotEqual(t, old.RunID, fresh.RunID)

	s.input.Model.SetValue("wrong")
	_, tick := s.Update(press(s, tea.KeyEnter)())
	require.NotNil(t, tick)

	s.Update(feedbackDoneMsg{runID: old.RunID})
	assert.Equal(t, 0, fresh.Quiz.Index(), "stale continuation must not advance")

	deliver(s, tick)
	assert.Equal(t, 1, fresh.Quiz.Index())
}

func TestGrammarDeckEndStartsQuiz(t *testing.T) {
	s, _ := newScreen(t, "grammar-basics")
	for range s.ctrl.View().Total {
		press(s, tea.KeyRight)
	}
	run := currentRun(t, s)
	assert.Equal(t, 5, run.Quiz.Len())
	assert.Len(t, s.choice.Options, 4)
}

func TestEnterOnCompletionPops(t *testing.T) {
	s, _ := newScreen(t, "flashcards-verbs")
	for range s.ctrl.View().Total {
		press(s, tea.KeyRight)
	}
	cmd := press(s, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestKeyHintsFollowPhase(t *testing.T) {
	s, _ := newScreen(t, "alphabet-basics")
	keys := func() []string {
		var out []string
		for _, h := range s.KeyHints() {
			out = append(out, h.Key)
		}
		return out
	}
	assert.Contains(t, keys(), "Space")
	assert.Contains(t, keys(), "q")

	press(s, 'q')
	assert.Contains(t, keys(), "1-4")
}

func TestTitleIsLessonTitle(t *testing.T) {
	s, _ := newScreen(t, "grammar-cases")
	l, _ := catalog.Default().ByID("grammar-cases")
	assert.Equal(t, l.Title, s.Title())
}
