package lesson

import (
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/kartuli/internal/catalog"
	"github.com/abhisek/kartuli/internal/quiz"
	"github.com/abhisek/kartuli/internal/router"
	"github.com/abhisek/kartuli/internal/screen"
	"github.com/abhisek/kartuli/internal/session"
	"github.com/abhisek/kartuli/internal/ui/components"
	"github.com/abhisek/kartuli/internal/ui/layout"
)

// answerLimit caps typed answers; the longest phonetic word is far shorter.
const answerLimit = 64

// LessonScreen runs one lesson through a session.Controller.
type LessonScreen struct {
	ctrl  *session.Controller
	log   *zap.Logger
	built question

	choice components.MultiChoice
	input  components.TextInput
}

// question identifies the quiz question the widgets were built for.
type question struct {
	run   uuid.UUID
	index int
}

var _ screen.Screen = (*LessonScreen)(nil)

// New creates a LessonScreen for l.
func New(l catalog.Lesson, opts session.Options) *LessonScreen {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &LessonScreen{
		ctrl: session.New(l, opts),
		log:  log.Named("lesson-screen"),
	}
	s.sync()
	return s
}

// Controller exposes the underlying session.
func (s *LessonScreen) Controller() *session.Controller {
	return s.ctrl
}

func (s *LessonScreen) Init() tea.Cmd {
	return s.focus()
}

// focus starts the cursor when a typed-answer question is showing.
func (s *LessonScreen) focus() tea.Cmd {
	if s.ctrl.Phase() == session.PhaseQuiz && s.mode() == quiz.FreeText {
		return s.input.Init()
	}
	return nil
}

func (s *LessonScreen) Title() string {
	return s.ctrl.Lesson().Title
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		s.ctrl.Continue(msg.runID)
		s.sync()
		return s, s.focus()

	case components.ChoiceMsg:
		fb, ok := s.ctrl.Select(msg.Option)
		if !ok {
			return s, nil
		}
		s.log.Debug("answered", zap.Int("option", msg.Index), zap.Bool("correct", fb.Result.Correct))
		s.choice.Reveal(fb.Result.CorrectAnswer, msg.Option)
		return s, continueAfter(fb.Delay, fb.RunID)

	case components.SubmitMsg:
		fb, ok := s.ctrl.SubmitText(msg.Value)
		if !ok {
			return s, nil
		}
		s.log.Debug("answered", zap.Bool("correct", fb.Result.Correct))
		s.input.Submit(fb.Result.Correct)
		return s, continueAfter(fb.Delay, fb.RunID)

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch s.ctrl.Phase() {
	case session.PhaseBrowsing:
		switch msg.String() {
		case "right", "l":
			s.ctrl.Next()
		case "left", "h":
			s.ctrl.Previous()
		case "space":
			s.ctrl.Flip()
		case "a":
			s.ctrl.ToggleShowAll()
		case "q":
			s.ctrl.StartQuiz()
		}
		s.sync()
		return s.focus()

	case session.PhaseQuiz:
		var cmd tea.Cmd
		if s.mode() == quiz.FreeText {
			s.input, cmd = s.input.Update(msg)
		} else {
			s.choice, cmd = s.choice.Update(msg)
		}
		return cmd

	case session.PhaseQuizCompleted, session.PhaseLessonCompleted:
		switch msg.String() {
		case "r":
			s.ctrl.Restart()
			s.sync()
			return s.focus()
		case "enter":
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return nil
}

func (s *LessonScreen) mode() quiz.Mode {
	if run, ok := s.ctrl.State().(session.QuizInProgress); ok {
		return run.Quiz.Mode()
	}
	return quiz.MultipleChoice
}

// sync rebuilds the answer widgets when the current question changes.
func (s *LessonScreen) sync() {
	run, ok := s.ctrl.State().(session.QuizInProgress)
	if !ok {
		s.built = question{}
		return
	}
	q := question{run: run.RunID, index: run.Quiz.Index()}
	if q == s.built {
		return
	}
	s.built = q

	cur, _ := run.Quiz.Current()
	s.choice = components.NewMultiChoice(cur.Options)
	s.input = components.NewTextInput("type your answer", answerLimit)
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	v := s.ctrl.View()
	switch v.Phase {
	case session.PhaseBrowsing:
		hints := []layout.KeyHint{{Key: "←→", Description: "Card"}}
		if v.Kind.Flip {
			hints = append(hints, layout.KeyHint{Key: "Space", Description: "Flip"})
		}
		if v.Kind.ShowAll {
			hints = append(hints, layout.KeyHint{Key: "a", Description: "All"})
		}
		if v.Kind.HasQuiz {
			hints = append(hints, layout.KeyHint{Key: "q", Description: "Quiz"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	case session.PhaseQuiz:
		if v.Mode == quiz.FreeText {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Check"},
				{Key: "Esc", Description: "Leave"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Pick"},
			{Key: "Esc", Description: "Leave"},
		}
	default:
		return []layout.KeyHint{
			{Key: "r", Description: "Again"},
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
}
