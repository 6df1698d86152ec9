package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/kartuli/internal/quiz"
)

// Phase identifies the active State variant.
type Phase int

const (
	PhaseBrowsing        Phase = iota // Stepping through cards
	PhaseQuiz                         // Answering questions
	PhaseQuizCompleted                // Quiz graded; terminal for the run
	PhaseLessonCompleted              // Deck finished; terminal for the run
)

func (p Phase) String() string {
	switch p {
	case PhaseBrowsing:
		return "browsing"
	case PhaseQuiz:
		return "quiz"
	case PhaseQuizCompleted:
		return "quiz-completed"
	case PhaseLessonCompleted:
		return "lesson-completed"
	default:
		return "unknown"
	}
}

// State is the controller state. It is exactly one of Browsing,
// QuizInProgress, QuizCompleted or LessonCompleted.
type State interface {
	Phase() Phase
	state()
}

// Browsing is the card-by-card view of the lesson.
type Browsing struct {
	Index   int
	Flipped bool
	ShowAll bool
}

// QuizInProgress holds a running quiz. RunID distinguishes this run from any
// earlier one so a stale feedback continuation can be recognised.
type QuizInProgress struct {
	Quiz  *quiz.Quiz
	RunID uuid.UUID
}

// QuizCompleted carries the graded outcome.
type QuizCompleted struct {
	Outcome quiz.Outcome
}

// LessonCompleted is reached by finishing the deck of a browse-only lesson.
type LessonCompleted struct {
	Score int
}

func (Browsing) Phase() Phase        { return PhaseBrowsing }
func (QuizInProgress) Phase() Phase  { return PhaseQuiz }
func (QuizCompleted) Phase() Phase   { return PhaseQuizCompleted }
func (LessonCompleted) Phase() Phase { return PhaseLessonCompleted }

func (Browsing) state()        {}
func (QuizInProgress) state()  {}
func (QuizCompleted) state()   {}
func (LessonCompleted) state() {}
